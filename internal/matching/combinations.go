package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"prom8eus-backend/internal/catalog"
)

// Combination bonuses and caps.
const (
	multiSolutionBonus  = 10.0
	crossDomainBonus    = 15.0
	multiSolutionCap    = 95.0
	crossDomainCap      = 90.0
	crossDomainScore    = 85.0
	maxBundleSize       = 3
	maxCrossDomainPool  = 5
	maxPrerequisiteList = 8
)

// Combinations proposes solution bundles over a finished matching run:
// single- and multi-solution combinations for every high-priority subtask,
// plus cross-domain suites for business domains covered by several subtasks.
func (e *Engine) Combinations(matches []SubtaskMatch) []Combination {
	out := make([]Combination, 0, len(matches))

	for _, m := range matches {
		if m.Priority != catalog.PriorityHigh || len(m.Matches) == 0 {
			continue
		}
		out = append(out, singleCombination(m))
		if len(m.Matches) >= 2 {
			out = append(out, multiCombination(m))
		}
	}

	out = append(out, crossDomainCombinations(matches)...)

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityRank(out[i].Priority), priorityRank(out[j].Priority)
		if pi != pj {
			return pi > pj
		}
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func singleCombination(m SubtaskMatch) Combination {
	top := m.Matches[0]
	sols := []catalog.Solution{top.Solution}
	c := Combination{
		ID:                  m.SubtaskID + "-primary",
		Name:                fmt.Sprintf("%s for %s", top.Solution.Name, m.SubtaskName),
		Description:         fmt.Sprintf("Adopt %s as the primary automation for %q.", top.Solution.Name, m.SubtaskName),
		Solutions:           sols,
		Category:            top.Solution.Category,
		BusinessDomain:      m.BusinessDomain,
		AutomationPotential: combinedAutomation(sols, 0, multiSolutionCap),
		CombinedROI:         combinedROI(sols),
		MatchScore:          top.MatchScore,
		Priority:            m.Priority,
		SetupTime:           slowestSetup(sols),
		EstimatedCost:       combinedCost(sols),
		Prerequisites:       consolidatedPrerequisites(sols),
		Benefits: []string{
			"Fast path to value with a single integration",
			"Low coordination overhead",
		},
		Challenges: []string{
			"Single point of failure for the process",
		},
		RiskMitigations: []string{
			"Define a manual fallback for outages",
		},
		SuccessMetrics: []string{
			"Cycle time reduction",
			"Error rate reduction",
		},
	}
	finishCombination(&c)
	return c
}

func multiCombination(m SubtaskMatch) Combination {
	limit := maxBundleSize
	if len(m.Matches) < limit {
		limit = len(m.Matches)
	}
	sols := make([]catalog.Solution, 0, limit)
	for _, rec := range m.Matches[:limit] {
		sols = append(sols, rec.Solution)
	}
	sols = dedupeSolutions(sols)

	score := m.Matches[0].MatchScore + multiSolutionBonus
	if score > multiSolutionCap {
		score = multiSolutionCap
	}

	c := Combination{
		ID:                  m.SubtaskID + "-bundle",
		Name:                fmt.Sprintf("%s Automation Bundle", m.SubtaskName),
		Description:         fmt.Sprintf("Combine %d solutions to cover %q with redundancy.", len(sols), m.SubtaskName),
		Solutions:           sols,
		Category:            m.Matches[0].Solution.Category,
		BusinessDomain:      m.BusinessDomain,
		AutomationPotential: combinedAutomation(sols, multiSolutionBonus, multiSolutionCap),
		CombinedROI:         combinedROI(sols),
		MatchScore:          score,
		Priority:            m.Priority,
		SetupTime:           slowestSetup(sols),
		EstimatedCost:       combinedCost(sols),
		Prerequisites:       consolidatedPrerequisites(sols),
		Benefits: []string{
			"Redundant coverage of the subtask",
			"Higher combined automation potential",
		},
		Challenges: []string{
			"Overlapping functionality needs clear ownership",
			"More integrations to maintain",
		},
		RiskMitigations: []string{
			"Stage the rollout one solution at a time",
			"Define a manual fallback for outages",
		},
		SuccessMetrics: []string{
			"Cycle time reduction",
			"Coverage of subtask volume",
			"Error rate reduction",
		},
	}
	finishCombination(&c)
	return c
}

// crossDomainCombinations builds one suite per business domain that at least
// two subtasks share, pooling their top recommendations. The cross-domain
// value is structural (handoffs eliminated), so its match score is a fixed
// constant rather than recomputed.
func crossDomainCombinations(matches []SubtaskMatch) []Combination {
	domainOrder := make([]string, 0, len(matches))
	byDomain := make(map[string][]SubtaskMatch, len(matches))
	for _, m := range matches {
		if m.BusinessDomain == "" {
			continue
		}
		key := normalizeDomain(m.BusinessDomain)
		if _, ok := byDomain[key]; !ok {
			domainOrder = append(domainOrder, key)
		}
		byDomain[key] = append(byDomain[key], m)
	}

	out := make([]Combination, 0, len(domainOrder))
	for _, domain := range domainOrder {
		group := byDomain[domain]
		if len(group) < 2 {
			continue
		}
		sols := poolTopSolutions(group, maxCrossDomainPool)
		if len(sols) < 2 {
			continue
		}
		subtaskNames := make([]string, 0, len(group))
		for _, m := range group {
			subtaskNames = append(subtaskNames, m.SubtaskName)
		}

		c := Combination{
			ID:                  "domain-" + slugify(domain) + "-suite",
			Name:                fmt.Sprintf("%s Domain Suite", titleCase(domain)),
			Description:         fmt.Sprintf("Integrated automation across %s.", strings.Join(subtaskNames, ", ")),
			Solutions:           sols,
			BusinessDomain:      group[0].BusinessDomain,
			AutomationPotential: combinedAutomation(sols, crossDomainBonus, crossDomainCap),
			CombinedROI:         combinedROI(sols),
			MatchScore:          crossDomainScore,
			Priority:            catalog.PriorityHigh,
			SetupTime:           slowestSetup(sols),
			EstimatedCost:       combinedCost(sols),
			Prerequisites:       consolidatedPrerequisites(sols),
			Benefits: []string{
				"Eliminates handoffs between related processes",
				"Shared data model across the domain",
			},
			Challenges: []string{
				"Cross-team coordination required",
				"Larger initial integration effort",
			},
			RiskMitigations: []string{
				"Appoint a domain owner for the rollout",
				"Integrate one process at a time",
			},
			SuccessMetrics: []string{
				"End-to-end processing time",
				"Handoff count reduction",
				"Error rate reduction",
			},
		}
		finishCombination(&c)
		out = append(out, c)
	}
	return out
}

// poolTopSolutions gathers solutions rank by rank across the group so every
// subtask contributes its best candidates first. Duplicates are dropped.
func poolTopSolutions(group []SubtaskMatch, limit int) []catalog.Solution {
	out := make([]catalog.Solution, 0, limit)
	seen := make(map[string]bool, limit)
	for rank := 0; len(out) < limit; rank++ {
		advanced := false
		for _, m := range group {
			if rank >= len(m.Matches) {
				continue
			}
			advanced = true
			sol := m.Matches[rank].Solution
			if seen[sol.ID] {
				continue
			}
			seen[sol.ID] = true
			out = append(out, sol)
			if len(out) == limit {
				break
			}
		}
		if !advanced {
			break
		}
	}
	return out
}

// finishCombination fills the fields every combination derives the same way.
func finishCombination(c *Combination) {
	c.ImplementationOrder = implementationOrder(c.Solutions)
	deps := make(map[string][]string, len(c.Solutions))
	for _, sol := range c.Solutions {
		deps[sol.ID] = []string{}
	}
	c.Dependencies = deps
}

// implementationOrder sorts member ids by priority, then by setup speed.
func implementationOrder(sols []catalog.Solution) []string {
	ordered := make([]catalog.Solution, len(sols))
	copy(ordered, sols)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := priorityRank(ordered[i].Priority), priorityRank(ordered[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return setupSpeedRank(ordered[i].SetupTime) > setupSpeedRank(ordered[j].SetupTime)
	})
	ids := make([]string, len(ordered))
	for i, sol := range ordered {
		ids[i] = sol.ID
	}
	return ids
}

// combinedAutomation averages member automation potential, applies the
// combination bonus and caps the result.
func combinedAutomation(sols []catalog.Solution, bonus, limit float64) int {
	if len(sols) == 0 {
		return 0
	}
	sum := 0.0
	for _, sol := range sols {
		sum += float64(sol.AutomationPotential)
	}
	v := sum/float64(len(sols)) + bonus
	if v > limit {
		v = limit
	}
	return int(math.Round(v))
}

// combinedROI averages the member minima and maxima.
func combinedROI(sols []catalog.Solution) catalog.Range {
	if len(sols) == 0 {
		return catalog.Range{}
	}
	minSum, maxSum := 0.0, 0.0
	for _, sol := range sols {
		minSum += sol.EstimatedROI.Min
		maxSum += sol.EstimatedROI.Max
	}
	n := float64(len(sols))
	return catalog.Range{Min: minSum / n, Max: maxSum / n, Unit: "%"}
}

// slowestSetup returns the slowest member setup bucket, since a bundle is
// only live once its slowest member is.
func slowestSetup(sols []catalog.Solution) string {
	slowest := ""
	rank := 4
	for _, sol := range sols {
		if sol.SetupTime == "" {
			continue
		}
		if r := setupSpeedRank(sol.SetupTime); r < rank {
			rank = r
			slowest = sol.SetupTime
		}
	}
	return slowest
}

// combinedCost sums the member pricing ranges.
func combinedCost(sols []catalog.Solution) string {
	total := catalog.Range{Unit: "$/mo"}
	for _, sol := range sols {
		r, ok := pricingCostRanges[sol.Pricing]
		if !ok {
			continue
		}
		total.Min += r.Min
		total.Max += r.Max
	}
	if total.Min == 0 && total.Max == 0 {
		return "No cost"
	}
	return total.String()
}

// consolidatedPrerequisites merges member requirement items, deduplicated in
// first-seen order.
func consolidatedPrerequisites(sols []catalog.Solution) []string {
	out := make([]string, 0, maxPrerequisiteList)
	seen := make(map[string]bool, maxPrerequisiteList)
	for _, sol := range sols {
		for _, req := range sol.Requirements {
			for _, item := range req.Items {
				item = strings.TrimSpace(item)
				if item == "" || seen[strings.ToLower(item)] {
					continue
				}
				seen[strings.ToLower(item)] = true
				out = append(out, item)
				if len(out) == maxPrerequisiteList {
					return out
				}
			}
		}
	}
	return out
}

func dedupeSolutions(sols []catalog.Solution) []catalog.Solution {
	out := make([]catalog.Solution, 0, len(sols))
	seen := make(map[string]bool, len(sols))
	for _, sol := range sols {
		if seen[sol.ID] {
			continue
		}
		seen[sol.ID] = true
		out = append(out, sol)
	}
	return out
}

// slugify reduces a string to a lowercase dash-separated identifier.
func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
