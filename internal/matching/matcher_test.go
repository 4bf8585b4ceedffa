package matching

import (
	"reflect"
	"strings"
	"testing"

	"prom8eus-backend/internal/catalog"
)

func invoiceScenarioPool() []catalog.Solution {
	return []catalog.Solution{
		{
			ID:                  "invoice-processor",
			Type:                catalog.TypeAgent,
			Name:                "Invoice Processor",
			Category:            "Finance & Accounting",
			Status:              catalog.StatusActive,
			AutomationPotential: 95,
			Metrics:             catalog.Metrics{UserRating: 4.7},
			Agent: &catalog.AgentMeta{
				Model:        "gpt-4o",
				Provider:     "openai",
				Capabilities: []string{"ocr", "document_parsing"},
				Domains:      []string{"finance"},
			},
		},
		{
			ID:       "content-writer",
			Type:     catalog.TypeAgent,
			Name:     "Content Writer",
			Category: "Marketing & Sales",
			Agent: &catalog.AgentMeta{
				Model:        "claude-3.5-sonnet",
				Provider:     "anthropic",
				Capabilities: []string{"content_generation"},
				Domains:      []string{"marketing"},
			},
		},
	}
}

func TestMatchRanksInvoiceProcessorFirst(t *testing.T) {
	e := testEngine(t)
	subtasks := []Subtask{{
		ID:                  "st-invoice",
		Name:                "Invoice Processing",
		BusinessDomain:      "Finance",
		AutomationPotential: 90,
		Keywords:            []string{"invoice", "payment"},
	}}

	result := e.Match(subtasks, invoiceScenarioPool())
	if len(result.SubtaskMatches) != 1 {
		t.Fatalf("subtask matches = %d, want 1", len(result.SubtaskMatches))
	}
	m := result.SubtaskMatches[0]
	if len(m.Matches) != 1 {
		t.Fatalf("matches = %d, want the content writer filtered out", len(m.Matches))
	}
	top := m.Matches[0]
	if top.Solution.ID != "invoice-processor" {
		t.Fatalf("top match = %s, want invoice-processor", top.Solution.ID)
	}
	if top.MatchScore <= 60 {
		t.Fatalf("match score = %v, want > 60", top.MatchScore)
	}
	if top.Score.Ranking != 1 {
		t.Fatalf("score ranking = %d, want 1", top.Score.Ranking)
	}
	if top.AgentScore == nil {
		t.Fatalf("agent solution must carry an agent score")
	}
	if top.AgentScore.Ranking != 1 {
		t.Fatalf("agent score ranking = %d, want 1", top.AgentScore.Ranking)
	}
	if len(top.Reasoning) == 0 || top.Reasoning[0] != "Automation potential closely matches the subtask target." {
		t.Fatalf("reasoning = %v, want the automation reason first", top.Reasoning)
	}
	if m.Priority != catalog.PriorityMedium {
		t.Fatalf("subtask priority = %s, want Medium", m.Priority)
	}
}

func TestMatchDropsLowScores(t *testing.T) {
	e := testEngine(t)
	subtasks := []Subtask{
		{ID: "st-1", Name: "Invoice Processing", BusinessDomain: "finance", AutomationPotential: 90, Keywords: []string{"invoice", "payment"}},
		{ID: "st-2", Name: "Support Ticket Triage", BusinessDomain: "support", AutomationPotential: 70, Keywords: []string{"email", "triage"}},
		{ID: "st-3", Name: "Quarterly Report Generation", BusinessDomain: "data", AutomationPotential: 60},
		{ID: "st-4", Name: "Contract Review", BusinessDomain: "legal", AutomationPotential: 10},
	}

	result := e.Match(subtasks, catalog.SeedSolutions())
	floor := e.Config().MinMatchScore
	for _, m := range result.SubtaskMatches {
		for i, rec := range m.Matches {
			if rec.MatchScore <= floor {
				t.Fatalf("%s: match %s scored %v, at or below the floor %v", m.SubtaskID, rec.Solution.ID, rec.MatchScore, floor)
			}
			if rec.Score.Ranking != i+1 {
				t.Fatalf("%s: ranking = %d at position %d", m.SubtaskID, rec.Score.Ranking, i)
			}
			if i > 0 && rec.MatchScore > m.Matches[i-1].MatchScore {
				t.Fatalf("%s: matches not sorted by score", m.SubtaskID)
			}
		}
	}

	stats := result.Stats
	if stats.SubtaskCount != len(subtasks) {
		t.Fatalf("subtask count = %d, want %d", stats.SubtaskCount, len(subtasks))
	}
	if stats.MatchedCount > stats.SubtaskCount {
		t.Fatalf("matched count %d exceeds subtask count %d", stats.MatchedCount, stats.SubtaskCount)
	}
	if got := stats.HighPriority + stats.MediumPriority + stats.LowPriority; got != stats.SubtaskCount {
		t.Fatalf("priority buckets sum to %d, want %d", got, stats.SubtaskCount)
	}
}

func TestMatchDeterministic(t *testing.T) {
	e := testEngine(t)
	subtasks := []Subtask{
		{ID: "st-1", Name: "Invoice Processing", BusinessDomain: "finance", AutomationPotential: 90, Keywords: []string{"invoice"}},
		{ID: "st-2", Name: "Lead Enrichment", BusinessDomain: "marketing", AutomationPotential: 75},
		{ID: "st-3", Name: "Employee Onboarding", BusinessDomain: "hr", AutomationPotential: 65},
	}
	pool := catalog.SeedSolutions()

	first := e.Match(subtasks, pool)
	second := e.Match(subtasks, pool)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must produce identical results")
	}
}

func TestMatchTiebreaks(t *testing.T) {
	e := testEngine(t)

	base := func(id string) catalog.Solution {
		return catalog.Solution{
			ID:                  id,
			Type:                catalog.TypeWorkflow,
			Name:                "Ops Automation",
			Category:            "Operations",
			Difficulty:          catalog.DifficultyBeginner,
			SetupTime:           catalog.SetupQuick,
			AutomationPotential: 50,
			Workflow:            &catalog.WorkflowMeta{NodeCount: 5},
		}
	}
	subtasks := []Subtask{{ID: "st-ops", Name: "Ops Task", BusinessDomain: "operations", AutomationPotential: 50}}

	t.Run("priority_breaks_equal_scores", func(t *testing.T) {
		mediumTopRated := base("wf-medium")
		mediumTopRated.Priority = catalog.PriorityMedium
		mediumTopRated.Metrics.UserRating = 5.0
		highPriority := base("wf-high")
		highPriority.Priority = catalog.PriorityHigh
		highPriority.Metrics.UserRating = 3.5

		result := e.Match(subtasks, []catalog.Solution{mediumTopRated, highPriority})
		matches := result.SubtaskMatches[0].Matches
		if len(matches) != 2 {
			t.Fatalf("matches = %d, want 2", len(matches))
		}
		if matches[0].MatchScore != matches[1].MatchScore {
			t.Fatalf("fixture scores diverged: %v vs %v", matches[0].MatchScore, matches[1].MatchScore)
		}
		if matches[0].Solution.ID != "wf-high" {
			t.Fatalf("top match = %s, want the higher-priority wf-high", matches[0].Solution.ID)
		}
	})

	t.Run("id_breaks_full_ties", func(t *testing.T) {
		a := base("wf-a")
		b := base("wf-b")
		a.Priority, b.Priority = catalog.PriorityHigh, catalog.PriorityHigh

		result := e.Match(subtasks, []catalog.Solution{b, a})
		matches := result.SubtaskMatches[0].Matches
		if len(matches) != 2 {
			t.Fatalf("matches = %d, want 2", len(matches))
		}
		if matches[0].Solution.ID != "wf-a" || matches[1].Solution.ID != "wf-b" {
			t.Fatalf("tie not broken by id: got %s, %s", matches[0].Solution.ID, matches[1].Solution.ID)
		}
	})
}

func TestMatchSkipsInvalidSolutions(t *testing.T) {
	e := testEngine(t)
	pool := []catalog.Solution{
		fixtureWorkflow("wf-ok"),
		{ID: "wf-broken", Type: catalog.TypeWorkflow, Category: "Operations", Workflow: &catalog.WorkflowMeta{}},
	}
	subtasks := []Subtask{{ID: "st-1", Name: "Invoice Processing", BusinessDomain: "finance", AutomationPotential: 85}}

	result := e.Match(subtasks, pool)
	for _, rec := range result.SubtaskMatches[0].Matches {
		if rec.Solution.ID == "wf-broken" {
			t.Fatalf("invalid solution must be excluded from matching")
		}
	}
	if len(result.SubtaskMatches[0].Matches) != 1 {
		t.Fatalf("matches = %d, want just the valid solution", len(result.SubtaskMatches[0].Matches))
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	e := testEngine(t)

	t.Run("no_subtasks", func(t *testing.T) {
		result := e.Match(nil, catalog.SeedSolutions())
		if len(result.SubtaskMatches) != 0 {
			t.Fatalf("subtask matches = %d, want 0", len(result.SubtaskMatches))
		}
		if result.Stats.SubtaskCount != 0 {
			t.Fatalf("subtask count = %d, want 0", result.Stats.SubtaskCount)
		}
		if len(result.Recommendations) == 0 {
			t.Fatalf("advice must never be empty")
		}
	})

	t.Run("no_pool", func(t *testing.T) {
		result := e.Match([]Subtask{{ID: "st-x", Name: "Anything", AutomationPotential: 50}}, nil)
		m := result.SubtaskMatches[0]
		if len(m.Matches) != 0 {
			t.Fatalf("matches = %d, want 0", len(m.Matches))
		}
		if m.Priority != catalog.PriorityLow {
			t.Fatalf("priority = %s, want Low for an unmatched subtask", m.Priority)
		}
		joined := strings.Join(result.Recommendations, " ")
		if !strings.Contains(joined, "No strong matches for: Anything") {
			t.Fatalf("advice %q must call out the unmatched subtask", joined)
		}
	})
}

func TestSubtaskPriorityBands(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		potential int
		expected  string
	}{
		{name: "high", total: 85, potential: 75, expected: catalog.PriorityHigh},
		{name: "high_at_edges", total: 80, potential: 70, expected: catalog.PriorityHigh},
		{name: "medium_below_high_total", total: 79.9, potential: 90, expected: catalog.PriorityMedium},
		{name: "medium_at_edges", total: 60, potential: 50, expected: catalog.PriorityMedium},
		{name: "low_total", total: 59.9, potential: 90, expected: catalog.PriorityLow},
		{name: "low_potential", total: 90, potential: 40, expected: catalog.PriorityLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := subtaskPriority(tc.total, tc.potential); got != tc.expected {
				t.Fatalf("subtaskPriority(%v, %d) = %s, want %s", tc.total, tc.potential, got, tc.expected)
			}
		})
	}
}

func TestModalTimeToValue(t *testing.T) {
	recsWith := func(buckets ...string) []Recommendation {
		out := make([]Recommendation, len(buckets))
		for i, bucket := range buckets {
			out[i].Solution.TimeToValue = bucket
		}
		return out
	}
	cases := []struct {
		name     string
		recs     []Recommendation
		expected string
	}{
		{name: "majority_wins", recs: recsWith("1-2 weeks", "2-4 weeks", "1-2 weeks"), expected: "1-2 weeks"},
		{name: "tie_prefers_first_seen", recs: recsWith("2-4 weeks", "1-2 weeks"), expected: "2-4 weeks"},
		{name: "empty_buckets_skipped", recs: recsWith("", "3+ months"), expected: "3+ months"},
		{name: "no_buckets", recs: nil, expected: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := modalTimeToValue(tc.recs); got != tc.expected {
				t.Fatalf("modalTimeToValue = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestAlternativesSameTypeAndCategory(t *testing.T) {
	ops := func(id, category, typ string) scoredCandidate {
		return scoredCandidate{solution: catalog.Solution{ID: id, Type: typ, Name: id, Category: category}}
	}
	self := ops("wf-self", "Operations", catalog.TypeWorkflow)
	ranked := []scoredCandidate{
		self,
		ops("wf-alt-1", "Operations", catalog.TypeWorkflow),
		ops("ag-ops", "Operations", catalog.TypeAgent),
		ops("wf-marketing", "Marketing & Sales", catalog.TypeWorkflow),
		ops("wf-alt-2", "operations", catalog.TypeWorkflow),
		ops("wf-alt-3", "Operations", catalog.TypeWorkflow),
		ops("wf-alt-4", "Operations", catalog.TypeWorkflow),
	}

	alts := alternativesFor(self.solution, ranked)
	ids := make([]string, len(alts))
	for i, alt := range alts {
		ids[i] = alt.ID
	}
	expected := []string{"wf-alt-1", "wf-alt-2", "wf-alt-3"}
	if !reflect.DeepEqual(ids, expected) {
		t.Fatalf("alternatives = %v, want %v", ids, expected)
	}
}

func TestCostEstimate(t *testing.T) {
	cases := []struct {
		pricing  string
		expected string
	}{
		{pricing: catalog.PricingFree, expected: "No cost"},
		{pricing: catalog.PricingFreemium, expected: "$50-200/mo"},
		{pricing: catalog.PricingPaid, expected: "$200-1000/mo"},
		{pricing: catalog.PricingEnterprise, expected: "$1000+/mo"},
		{pricing: "", expected: "Pricing not specified"},
	}
	for _, tc := range cases {
		if got := costEstimate(tc.pricing); got != tc.expected {
			t.Fatalf("costEstimate(%q) = %q, want %q", tc.pricing, got, tc.expected)
		}
	}
}

func TestImplementationStepsByType(t *testing.T) {
	workflow := implementationSteps(catalog.TypeWorkflow)
	agent := implementationSteps(catalog.TypeAgent)
	if len(workflow) != 6 || len(agent) != 6 {
		t.Fatalf("step counts = %d/%d, want 6 each", len(workflow), len(agent))
	}
	if workflow[2] == agent[2] {
		t.Fatalf("workflow and agent plans must differ in the setup step")
	}
	for i := range workflow {
		if i != 2 && workflow[i] != agent[i] {
			t.Fatalf("step %d differs between types: %q vs %q", i, workflow[i], agent[i])
		}
	}
}
