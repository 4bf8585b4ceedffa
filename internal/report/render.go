package report

import (
	"fmt"
	"strings"
	"time"

	"prom8eus-backend/internal/matching"
	"prom8eus-backend/internal/matchruns"
)

// Render turns a completed match run into a markdown report. The output is a
// pure function of the run, so re-rendering the same run yields the same
// bytes.
func Render(run matchruns.Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Solution Match Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", run.ID)
	fmt.Fprintf(&b, "- Created: %s\n", run.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Subtasks: %d\n", run.SubtaskCount)
	fmt.Fprintf(&b, "- Candidate pool: %d solutions\n", run.PoolSize)

	if run.Output == nil {
		fmt.Fprintf(&b, "- Status: %s\n", run.Status)
		if run.ErrorMessage != "" {
			fmt.Fprintf(&b, "- Error: %s\n", run.ErrorMessage)
		}
		return b.String()
	}
	out := *run.Output

	stats := out.Result.Stats
	fmt.Fprintf(&b, "- Matched: %d of %d subtasks\n", stats.MatchedCount, stats.SubtaskCount)
	fmt.Fprintf(&b, "- Average match score: %s\n", formatScore(stats.AverageScore))
	fmt.Fprintf(&b, "- Priorities: %d high / %d medium / %d low\n",
		stats.HighPriority, stats.MediumPriority, stats.LowPriority)

	for _, m := range out.Result.SubtaskMatches {
		writeSubtask(&b, m)
	}

	if len(out.Combinations) > 0 {
		fmt.Fprintf(&b, "\n## Combinations\n")
		for _, combo := range out.Combinations {
			writeCombination(&b, combo)
		}
	}

	writeRoadmap(&b, out.Roadmap)

	if len(out.Result.Recommendations) > 0 {
		fmt.Fprintf(&b, "\n## Next Steps\n\n")
		for _, rec := range out.Result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}

func writeSubtask(b *strings.Builder, m matching.SubtaskMatch) {
	fmt.Fprintf(b, "\n## Subtask: %s\n\n", m.SubtaskName)
	fmt.Fprintf(b, "Priority %s, automation potential %d", m.Priority, m.AutomationPotential)
	if m.BusinessDomain != "" {
		fmt.Fprintf(b, ", domain %s", m.BusinessDomain)
	}
	fmt.Fprintf(b, ".\n")

	if len(m.Matches) == 0 {
		fmt.Fprintf(b, "\nNo solution cleared the minimum match score.\n")
		return
	}

	fmt.Fprintf(b, "Average score %s", formatScore(m.TotalMatchScore))
	if m.EstimatedROIPct > 0 {
		fmt.Fprintf(b, ", estimated ROI %s%%", formatScore(m.EstimatedROIPct))
	}
	if m.TimeToValue != "" {
		fmt.Fprintf(b, ", time to value %s", m.TimeToValue)
	}
	fmt.Fprintf(b, ".\n\n")

	fmt.Fprintf(b, "| # | Solution | Type | Match | Overall | Confidence |\n")
	fmt.Fprintf(b, "|---|----------|------|-------|---------|------------|\n")
	for i, rec := range m.Matches {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %d | %d |\n",
			i+1, rec.Solution.Name, rec.Solution.Type,
			formatScore(rec.MatchScore), rec.Score.Overall, rec.Score.Confidence)
	}

	top := m.Matches[0]
	fmt.Fprintf(b, "\nTop pick: **%s** (%s", top.Solution.Name, top.CostEstimate)
	if !top.ExpectedROI.IsZero() {
		fmt.Fprintf(b, ", ROI %s", top.ExpectedROI)
	}
	fmt.Fprintf(b, ")\n\n")
	for _, reason := range top.Reasoning {
		fmt.Fprintf(b, "- %s\n", reason)
	}
	if top.AgentScore != nil {
		fmt.Fprintf(b, "- %s agent (confidence %d). %s\n",
			top.AgentScore.Tier, top.AgentScore.Confidence, top.AgentScore.Disclaimer)
	}
	if len(top.Steps) > 0 {
		fmt.Fprintf(b, "\nImplementation steps:\n\n")
		for i, step := range top.Steps {
			fmt.Fprintf(b, "%d. %s\n", i+1, step)
		}
	}
}

func writeCombination(b *strings.Builder, combo matching.Combination) {
	fmt.Fprintf(b, "\n### %s\n\n", combo.Name)
	fmt.Fprintf(b, "%s\n\n", combo.Description)
	fmt.Fprintf(b, "- Match score: %s, priority %s\n", formatScore(combo.MatchScore), combo.Priority)
	fmt.Fprintf(b, "- Combined automation potential: %d\n", combo.AutomationPotential)
	if !combo.CombinedROI.IsZero() {
		fmt.Fprintf(b, "- Combined ROI: %s\n", combo.CombinedROI)
	}
	if combo.EstimatedCost != "" {
		fmt.Fprintf(b, "- Estimated cost: %s\n", combo.EstimatedCost)
	}
	if combo.SetupTime != "" {
		fmt.Fprintf(b, "- Setup time: %s\n", combo.SetupTime)
	}
	if len(combo.ImplementationOrder) > 0 {
		fmt.Fprintf(b, "- Implementation order: %s\n", strings.Join(combo.ImplementationOrder, " -> "))
	}
	if len(combo.Prerequisites) > 0 {
		fmt.Fprintf(b, "- Prerequisites: %s\n", strings.Join(combo.Prerequisites, ", "))
	}
}

func writeRoadmap(b *strings.Builder, roadmap matching.Roadmap) {
	fmt.Fprintf(b, "\n## Roadmap\n\n")
	fmt.Fprintf(b, "Total duration %s, total cost %s, expected ROI %s.\n",
		roadmap.TotalDuration, roadmap.TotalCost, roadmap.ExpectedROI)

	for _, phase := range roadmap.Phases {
		fmt.Fprintf(b, "\n### Phase %d: %s (%s)\n\n", phase.Number, phase.Name, phase.Duration)
		if len(phase.Subtasks) == 0 {
			fmt.Fprintf(b, "Nothing scheduled in this phase.\n")
			continue
		}
		fmt.Fprintf(b, "- Subtasks: %s\n", strings.Join(phase.Subtasks, ", "))
		fmt.Fprintf(b, "- Estimated cost: %s\n", phase.EstimatedCost)
		fmt.Fprintf(b, "- Required roles: %s\n", strings.Join(phase.RequiredRoles, ", "))
		for _, d := range phase.Deliverables {
			fmt.Fprintf(b, "- Deliverable: %s\n", d)
		}
	}

	if len(roadmap.CriticalPath) > 0 {
		fmt.Fprintf(b, "\nCritical path: %s\n", strings.Join(roadmap.CriticalPath, " -> "))
	}
}

// formatScore trims trailing zeros so 90.70 prints as 90.7 and 85.00 as 85.
func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
