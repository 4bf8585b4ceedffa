package matching

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"prom8eus-backend/internal/catalog"
)

// Match scores every candidate against every subtask and assembles the
// ranked per-subtask recommendation lists. Subtasks are processed
// concurrently; the output is fully deterministic regardless of scheduling.
func (e *Engine) Match(subtasks []Subtask, pool []catalog.Solution) Result {
	matches := make([]SubtaskMatch, len(subtasks))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(subtasks) {
		workers = len(subtasks)
	}
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range subtasks {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			matches[idx] = e.matchSubtask(subtasks[idx], pool)
		}(i)
	}
	wg.Wait()

	return Result{
		SubtaskMatches:  matches,
		Stats:           buildStats(matches),
		Recommendations: buildAdvice(matches),
	}
}

type scoredCandidate struct {
	solution catalog.Solution
	score    float64
}

// matchSubtask ranks the candidate pool for one subtask.
func (e *Engine) matchSubtask(st Subtask, pool []catalog.Solution) SubtaskMatch {
	candidates := make([]scoredCandidate, 0, len(pool))
	for _, sol := range pool {
		if catalog.Validate(sol) != nil {
			continue
		}
		score := e.matchScore(st, sol)
		if score <= e.cfg.MinMatchScore {
			continue
		}
		candidates = append(candidates, scoredCandidate{solution: sol, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		pi, pj := priorityRank(candidates[i].solution.Priority), priorityRank(candidates[j].solution.Priority)
		if pi != pj {
			return pi > pj
		}
		return candidates[i].solution.ID < candidates[j].solution.ID
	})

	target := st.AutomationPotential
	ctx := Context{
		BusinessDomain:   st.BusinessDomain,
		TargetAutomation: &target,
		UserQuery:        st.Name,
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		rec := Recommendation{
			Solution:     cand.solution,
			MatchScore:   cand.score,
			Reasoning:    e.matchReasons(st, cand.solution),
			Alternatives: alternativesFor(cand.solution, candidates),
			Steps:        implementationSteps(cand.solution.Type),
			CostEstimate: costEstimate(cand.solution.Pricing),
			ExpectedROI:  cand.solution.EstimatedROI,
			Score:        e.Score(cand.solution, ctx),
		}
		if cand.solution.IsAgent() {
			if agentScore, err := e.ScoreAgent(cand.solution, ctx); err == nil {
				rec.AgentScore = &agentScore
			}
		}
		recs = append(recs, rec)
	}
	for i := range recs {
		recs[i].Score.Ranking = i + 1
		if recs[i].AgentScore != nil {
			recs[i].AgentScore.Ranking = i + 1
		}
	}

	total := 0.0
	if len(recs) > 0 {
		sum := 0.0
		for _, rec := range recs {
			sum += rec.MatchScore
		}
		total = sum / float64(len(recs))
	}

	return SubtaskMatch{
		SubtaskID:           st.ID,
		SubtaskName:         st.Name,
		BusinessDomain:      st.BusinessDomain,
		AutomationPotential: st.AutomationPotential,
		Matches:             recs,
		TotalMatchScore:     total,
		Priority:            subtaskPriority(total, st.AutomationPotential),
		EstimatedROIPct:     averageROI(recs),
		TimeToValue:         modalTimeToValue(recs),
	}
}

// matchScore is the weighted sum over the eight matching criteria. Missing
// solution data scores its criterion zero; only absent caller hints earn
// neutral defaults, and subtask fields are data, not hints.
func (e *Engine) matchScore(st Subtask, sol catalog.Solution) float64 {
	w := e.cfg.MatchWeights
	return automationAlignment(st.AutomationPotential, sol.AutomationPotential)*w.Automation +
		categoryRelevance(subtaskCategory(st), sol.Category)*w.Category +
		easeScore(sol.Difficulty)*w.Difficulty +
		easeScore(sol.SetupTime)*w.SetupTime +
		ratingScore(sol.Metrics.UserRating)*w.Rating +
		easeScore(sol.Priority)*w.Priority +
		tagsRelevance(st.Keywords, sol.Tags)*w.Tags +
		domainAlignment(st.BusinessDomain, sol.Category)*w.Domain
}

// subtaskCategory falls back to the business domain when the subtask has no
// explicit category.
func subtaskCategory(st Subtask) string {
	if st.Category != "" {
		return st.Category
	}
	return st.BusinessDomain
}

// matchReasons derives the ordered reasoning list from the criterion scores.
func (e *Engine) matchReasons(st Subtask, sol catalog.Solution) []string {
	reasons := make([]string, 0, 6)

	if automationAlignment(st.AutomationPotential, sol.AutomationPotential) >= 80 {
		reasons = append(reasons, "Automation potential closely matches the subtask target.")
	}
	switch categoryRelevance(subtaskCategory(st), sol.Category) {
	case 100:
		reasons = append(reasons, fmt.Sprintf("Exact category fit: %s.", sol.Category))
	case 70:
		reasons = append(reasons, fmt.Sprintf("Related category: %s.", sol.Category))
	}
	if domainAlignment(st.BusinessDomain, sol.Category) == 100 {
		reasons = append(reasons, fmt.Sprintf("Serves the %s domain directly.", st.BusinessDomain))
	}
	if sol.Metrics.UserRating >= 4.4 {
		reasons = append(reasons, fmt.Sprintf("Strong user rating (%.1f/5).", sol.Metrics.UserRating))
	}
	if tagsRelevance(st.Keywords, sol.Tags) >= 60 && len(st.Keywords) > 0 && len(sol.Tags) > 0 {
		reasons = append(reasons, "Subtask keywords overlap with the solution's tags.")
	}
	if sol.SetupTime == catalog.SetupQuick {
		reasons = append(reasons, "Quick setup.")
	}
	if sol.Difficulty == catalog.DifficultyBeginner {
		reasons = append(reasons, "Beginner-friendly.")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Moderate overall fit across the matching criteria.")
	}
	return reasons
}

// alternativesFor picks up to three same-type, same-category candidates from
// the ranked list, excluding the solution itself.
func alternativesFor(sol catalog.Solution, ranked []scoredCandidate) []catalog.Solution {
	out := make([]catalog.Solution, 0, 3)
	for _, cand := range ranked {
		if cand.solution.ID == sol.ID {
			continue
		}
		if cand.solution.Type != sol.Type || !strings.EqualFold(cand.solution.Category, sol.Category) {
			continue
		}
		out = append(out, cand.solution)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func costEstimate(pricing string) string {
	if text, ok := pricingCostTexts[pricing]; ok {
		return text
	}
	return "Pricing not specified"
}

// subtaskPriority classifies a subtask from its aggregate match quality and
// its own automation potential.
func subtaskPriority(totalMatchScore float64, automationPotential int) string {
	switch {
	case totalMatchScore >= 80 && automationPotential >= 70:
		return catalog.PriorityHigh
	case totalMatchScore >= 60 && automationPotential >= 50:
		return catalog.PriorityMedium
	default:
		return catalog.PriorityLow
	}
}

// averageROI averages the midpoints of the recommendations' ROI ranges. A
// missing range contributes zero, the documented neutral fallback.
func averageROI(recs []Recommendation) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0.0
	for _, rec := range recs {
		sum += rec.ExpectedROI.Mid()
	}
	return sum / float64(len(recs))
}

// modalTimeToValue picks the most frequent non-empty bucket, ties broken by
// first occurrence.
func modalTimeToValue(recs []Recommendation) string {
	counts := make(map[string]int, len(recs))
	firstSeen := make(map[string]int, len(recs))
	for i, rec := range recs {
		bucket := rec.Solution.TimeToValue
		if bucket == "" {
			continue
		}
		if _, ok := firstSeen[bucket]; !ok {
			firstSeen[bucket] = i
		}
		counts[bucket]++
	}
	best := ""
	for bucket, count := range counts {
		if best == "" {
			best = bucket
			continue
		}
		if count > counts[best] || (count == counts[best] && firstSeen[bucket] < firstSeen[best]) {
			best = bucket
		}
	}
	return best
}

func buildStats(matches []SubtaskMatch) Stats {
	stats := Stats{SubtaskCount: len(matches)}
	scored := 0.0
	for _, m := range matches {
		if len(m.Matches) > 0 {
			stats.MatchedCount++
			scored += m.TotalMatchScore
		}
		switch m.Priority {
		case catalog.PriorityHigh:
			stats.HighPriority++
		case catalog.PriorityMedium:
			stats.MediumPriority++
		default:
			stats.LowPriority++
		}
	}
	if stats.MatchedCount > 0 {
		stats.AverageScore = scored / float64(stats.MatchedCount)
	}
	return stats
}

// buildAdvice derives the free-text run summary. Order and wording are fixed
// so identical inputs produce identical output.
func buildAdvice(matches []SubtaskMatch) []string {
	advice := make([]string, 0, 4)

	highNames := make([]string, 0, len(matches))
	unmatched := make([]string, 0, len(matches))
	agentPicks := 0
	for _, m := range matches {
		if m.Priority == catalog.PriorityHigh {
			highNames = append(highNames, m.SubtaskName)
		}
		if len(m.Matches) == 0 {
			unmatched = append(unmatched, m.SubtaskName)
		} else if m.Matches[0].Solution.IsAgent() {
			agentPicks++
		}
	}

	if len(highNames) > 0 {
		advice = append(advice, "Start with: "+strings.Join(highNames, ", ")+".")
	}
	if len(unmatched) > 0 {
		advice = append(advice, "No strong matches for: "+strings.Join(unmatched, ", ")+". Consider refining keywords or custom development.")
	}
	if agentPicks > 0 {
		advice = append(advice, "Validate agent-based picks with a limited pilot before full rollout.")
	}
	if len(advice) == 0 {
		advice = append(advice, "Review the ranked matches per subtask below.")
	}
	return advice
}
