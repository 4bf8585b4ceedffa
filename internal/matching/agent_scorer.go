package matching

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"prom8eus-backend/internal/catalog"
)

// ErrNotAgent is returned when an agent-only operation receives a workflow
// solution.
var ErrNotAgent = errors.New("not an agent solution")

// Tier thresholds on the final boosted score.
const (
	generalistThreshold = 85
	specialistThreshold = 70
)

// Agent boost factors.
const (
	coreCapabilityBoost  = 1.2
	multiDomainBoost     = 1.15
	topModelBoost        = 1.1
	reliableVendorBoost  = 1.1
	completeProfileBoost = 1.05
)

const disclaimerBase = "AI agent performance varies with prompt quality, input data and model updates. Validate outputs before relying on them."

// ScoreAgent evaluates an agent-type solution under the caller's context.
// The tier is a pure function of the final boosted score.
func (e *Engine) ScoreAgent(sol catalog.Solution, ctx Context) (AgentScore, error) {
	if !sol.IsAgent() || sol.Agent == nil {
		return AgentScore{}, fmt.Errorf("%w: %s", ErrNotAgent, sol.ID)
	}
	meta := *sol.Agent
	caps := normalizeTokens(meta.Capabilities)
	domains := normalizeTokens(meta.Domains)

	capScore, requiredHits := capabilityScore(caps, ctx)
	domScore := agentDomainScore(domains, ctx)

	b := AgentBreakdown{
		CapabilityDepth:     capabilityDepth(caps),
		DomainBreadth:       domainBreadth(domains),
		DataQuality:         agentDataQuality(sol, meta),
		ModelQuality:        modelQualityScore(meta.Model),
		ProviderReliability: providerReliabilityScore(meta.Provider),
		Specialization:      capabilitySpecialization(caps),
	}

	w := e.cfg.AgentWeights
	overall := capScore*w.Capability +
		domScore*w.Domain +
		b.CapabilityDepth*w.CapabilityDepth +
		b.DomainBreadth*w.DomainBreadth +
		b.DataQuality*w.DataQuality +
		b.ModelQuality*w.ModelQuality +
		b.ProviderReliability*w.ProviderReliability

	if countCore(caps) >= 2 {
		overall *= coreCapabilityBoost
	}
	if distinctDomains(domains) >= 2 {
		overall *= multiDomainBoost
	}
	if b.ModelQuality >= 90 {
		overall *= topModelBoost
	}
	if b.ProviderReliability >= 90 {
		overall *= reliableVendorBoost
	}
	if b.DataQuality >= 80 {
		overall *= completeProfileBoost
	}
	if overall > 100 {
		overall = 100
	}
	rounded := int(math.Round(overall))

	tier := TierExperimental
	switch {
	case rounded >= generalistThreshold:
		tier = TierGeneralist
	case rounded >= specialistThreshold:
		tier = TierSpecialist
	}

	return AgentScore{
		AgentID:         sol.ID,
		CapabilityScore: capScore,
		DomainScore:     domScore,
		Overall:         rounded,
		Breakdown:       b,
		Confidence:      confidence(sol),
		Tier:            tier,
		Reasoning:       agentReasoning(tier, meta, caps, domains, ctx, requiredHits),
		Disclaimer:      agentDisclaimer(tier),
	}, nil
}

// capabilityScore blends required-capability coverage (60%) with user-query
// keyword coverage (40%). A single hint is used alone; no hint at all takes
// the neutral default. The second return value is the number of required
// capabilities the agent covers.
func capabilityScore(caps []string, ctx Context) (float64, int) {
	required := normalizeTokens(ctx.RequiredCapabilities)
	tokens := queryTokens(ctx.UserQuery)

	requiredHits := 0
	capSet := make(map[string]bool, len(caps))
	for _, c := range caps {
		capSet[c] = true
	}
	for _, r := range required {
		if capSet[r] {
			requiredHits++
		}
	}

	hasRequired := len(required) > 0
	hasQuery := len(tokens) > 0
	if !hasRequired && !hasQuery {
		return neutralScore, 0
	}

	requiredScore := 0.0
	if hasRequired {
		requiredScore = float64(requiredHits) / float64(len(required)) * 100
	}
	queryScore := 0.0
	if hasQuery {
		hits := 0
		for _, token := range tokens {
			for _, c := range caps {
				if strings.Contains(c, token) {
					hits++
					break
				}
			}
		}
		queryScore = float64(hits) / float64(len(tokens)) * 100
	}

	switch {
	case hasRequired && hasQuery:
		return requiredScore*0.6 + queryScore*0.4, requiredHits
	case hasRequired:
		return requiredScore, requiredHits
	default:
		return queryScore, requiredHits
	}
}

// agentDomainScore rewards direct and related business-domain coverage plus
// overlap with explicitly preferred domains.
func agentDomainScore(domains []string, ctx Context) float64 {
	domainHint := ctx.BusinessDomain != ""
	preferred := normalizeTokens(ctx.PreferredDomains)
	if !domainHint && len(preferred) == 0 {
		return neutralScore
	}

	domainSet := make(map[string]bool, len(domains))
	for _, d := range domains {
		domainSet[d] = true
	}

	score := 0.0
	if domainHint {
		want := normalizeDomain(ctx.BusinessDomain)
		if domainSet[want] {
			score += 50
		} else {
			for _, related := range relatedDomains[want] {
				if domainSet[related] {
					score += 30
					break
				}
			}
		}
	}
	if len(preferred) > 0 {
		hits := 0
		for _, p := range preferred {
			if domainSet[p] {
				hits++
			}
		}
		score += float64(hits) / float64(len(preferred)) * 50
	}
	if score > 100 {
		return 100
	}
	return score
}

// capabilityDepth rewards breadth and core coverage, penalizes thin sets.
func capabilityDepth(caps []string) float64 {
	score := 60.0
	if len(caps) >= 6 {
		score += 20
	}
	if countCore(caps) >= 2 {
		score += 15
	}
	if len(caps) <= 3 {
		score -= 20
	}
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// domainBreadth grades the number of distinct declared domains.
func domainBreadth(domains []string) float64 {
	switch n := distinctDomains(domains); {
	case n >= 3:
		return 90
	case n == 2:
		return 75
	case n == 1:
		return 60
	default:
		return 40
	}
}

// agentDataQuality measures profile completeness across seven fields.
func agentDataQuality(sol catalog.Solution, meta catalog.AgentMeta) float64 {
	present := 0
	if strings.TrimSpace(sol.Name) != "" {
		present++
	}
	if strings.TrimSpace(sol.Description) != "" {
		present++
	}
	if len(meta.Capabilities) > 0 {
		present++
	}
	if len(meta.Domains) > 0 {
		present++
	}
	if strings.TrimSpace(meta.Model) != "" {
		present++
	}
	if strings.TrimSpace(meta.Provider) != "" {
		present++
	}
	if sol.DocumentationURL != "" || sol.DemoURL != "" {
		present++
	}
	return float64(present) / 7 * 100
}

// capabilitySpecialization detects deep vertical skill: a known specialized
// pair scores highest, a rare single capability next.
func capabilitySpecialization(caps []string) float64 {
	capSet := make(map[string]bool, len(caps))
	for _, c := range caps {
		capSet[c] = true
	}
	for _, pair := range specializedCapabilityPairs {
		if capSet[pair[0]] && capSet[pair[1]] {
			return 90
		}
	}
	for _, c := range caps {
		if rareCapabilities[c] {
			return 80
		}
	}
	return 60
}

func countCore(caps []string) int {
	n := 0
	for _, c := range caps {
		if coreCapabilities[c] {
			n++
		}
	}
	return n
}

// distinctDomains counts distinct domains, ignoring the catch-all "other".
func distinctDomains(domains []string) int {
	seen := make(map[string]bool, len(domains))
	for _, d := range domains {
		if d == "" || d == "other" {
			continue
		}
		seen[d] = true
	}
	return len(seen)
}

// normalizeTokens lowercases, trims and underscores a token list, dropping
// empties. Order is preserved.
func normalizeTokens(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		t := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "_")
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// agentReasoning builds the ordered, deterministic reasoning list: tier
// statement first, then capability, domain, model and provider observations.
func agentReasoning(tier string, meta catalog.AgentMeta, caps, domains []string, ctx Context, requiredHits int) []string {
	reasons := make([]string, 0, 6)

	switch tier {
	case TierGeneralist:
		reasons = append(reasons, "Generalist agent: broad capability and domain coverage.")
	case TierSpecialist:
		reasons = append(reasons, "Specialist agent: strong coverage of a focused capability set.")
	default:
		reasons = append(reasons, "Experimental agent: limited coverage signals, evaluate carefully.")
	}

	core := make([]string, 0, len(caps))
	for _, c := range caps {
		if coreCapabilities[c] {
			core = append(core, c)
		}
	}
	switch {
	case len(caps) == 0:
		reasons = append(reasons, "No capabilities declared.")
	case len(core) > 0:
		reasons = append(reasons, fmt.Sprintf("Covers %d capabilities, %d core (%s).", len(caps), len(core), strings.Join(core, ", ")))
	default:
		reasons = append(reasons, fmt.Sprintf("Covers %d capabilities.", len(caps)))
	}

	if len(ctx.RequiredCapabilities) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %d of %d required capabilities.", requiredHits, len(ctx.RequiredCapabilities)))
	}

	switch n := distinctDomains(domains); {
	case n >= 2:
		reasons = append(reasons, fmt.Sprintf("Operates across %d domains: %s.", n, strings.Join(domains, ", ")))
	case n == 1:
		reasons = append(reasons, fmt.Sprintf("Single-domain focus: %s.", domains[0]))
	default:
		reasons = append(reasons, "No business domains declared.")
	}

	switch q := modelQualityScore(meta.Model); {
	case meta.Model == "":
		reasons = append(reasons, "Model not specified.")
	case q >= 90:
		reasons = append(reasons, fmt.Sprintf("Top-tier model: %s.", meta.Model))
	case q >= 70:
		reasons = append(reasons, fmt.Sprintf("Mid-tier model: %s.", meta.Model))
	default:
		reasons = append(reasons, fmt.Sprintf("Unrated model: %s.", meta.Model))
	}

	switch r := providerReliabilityScore(meta.Provider); {
	case meta.Provider == "":
		reasons = append(reasons, "Provider not specified.")
	case r >= 90:
		reasons = append(reasons, fmt.Sprintf("Major provider: %s.", meta.Provider))
	case r >= 80:
		reasons = append(reasons, fmt.Sprintf("Established provider: %s.", meta.Provider))
	default:
		reasons = append(reasons, fmt.Sprintf("Unrecognized provider: %s.", meta.Provider))
	}

	return reasons
}

func agentDisclaimer(tier string) string {
	switch tier {
	case TierExperimental:
		return disclaimerBase + " Experimental capabilities: pilot in a sandbox first."
	case TierSpecialist:
		return disclaimerBase + " Specialized use cases: confirm coverage of your domain before rollout."
	default:
		return disclaimerBase
	}
}
