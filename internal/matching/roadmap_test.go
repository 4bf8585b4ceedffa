package matching

import (
	"reflect"
	"testing"

	"prom8eus-backend/internal/catalog"
)

func roadmapMatch(name, priority string, score float64) SubtaskMatch {
	return SubtaskMatch{
		SubtaskID:       "st-" + slugify(name),
		SubtaskName:     name,
		Priority:        priority,
		TotalMatchScore: score,
	}
}

func TestRoadmapAlwaysThreePhases(t *testing.T) {
	e := testEngine(t)
	r := e.RoadmapFrom(nil)

	if len(r.Phases) != 3 {
		t.Fatalf("phases = %d, want 3 even with no input", len(r.Phases))
	}
	for i, p := range r.Phases {
		if p.Number != i+1 {
			t.Fatalf("phase number = %d at index %d", p.Number, i)
		}
		if p.Subtasks == nil || len(p.Subtasks) != 0 {
			t.Fatalf("phase %d subtasks = %v, want an empty list", p.Number, p.Subtasks)
		}
		if p.Deliverables == nil || len(p.Deliverables) != 0 {
			t.Fatalf("phase %d deliverables = %v, want an empty list", p.Number, p.Deliverables)
		}
		if p.DependsOnPrevious != (i > 0) {
			t.Fatalf("phase %d dependsOnPrevious = %v", p.Number, p.DependsOnPrevious)
		}
	}
	if r.TotalDuration != "0 weeks" {
		t.Fatalf("total duration = %q, want 0 weeks", r.TotalDuration)
	}
	if r.TotalCost.Min != 0 || r.TotalCost.Max != 0 {
		t.Fatalf("total cost = %+v, want zero", r.TotalCost)
	}
	if len(r.CriticalPath) != 0 {
		t.Fatalf("critical path = %v, want empty", r.CriticalPath)
	}
	wantDeps := map[string][]string{"Phase 1": {}, "Phase 2": {"Phase 1"}, "Phase 3": {"Phase 2"}}
	if !reflect.DeepEqual(r.PhaseDependencies, wantDeps) {
		t.Fatalf("phase dependencies = %v, want %v", r.PhaseDependencies, wantDeps)
	}
}

func TestRoadmapBucketsAndSorts(t *testing.T) {
	e := testEngine(t)
	matches := []SubtaskMatch{
		roadmapMatch("Invoice Processing", catalog.PriorityHigh, 82),
		roadmapMatch("B Task", catalog.PriorityMedium, 70),
		roadmapMatch("Contract Review", catalog.PriorityLow, 40),
		roadmapMatch("Expense Approval", catalog.PriorityHigh, 88),
		roadmapMatch("A Task", catalog.PriorityMedium, 70),
	}

	r := e.RoadmapFrom(matches)

	if want := []string{"Expense Approval", "Invoice Processing"}; !reflect.DeepEqual(r.Phases[0].Subtasks, want) {
		t.Fatalf("phase 1 subtasks = %v, want %v", r.Phases[0].Subtasks, want)
	}
	if want := []string{"A Task", "B Task"}; !reflect.DeepEqual(r.Phases[1].Subtasks, want) {
		t.Fatalf("phase 2 subtasks = %v, want score ties sorted by name %v", r.Phases[1].Subtasks, want)
	}
	if want := []string{"Contract Review"}; !reflect.DeepEqual(r.Phases[2].Subtasks, want) {
		t.Fatalf("phase 3 subtasks = %v, want %v", r.Phases[2].Subtasks, want)
	}

	if want := []string{"Expense Approval", "A Task", "Contract Review"}; !reflect.DeepEqual(r.CriticalPath, want) {
		t.Fatalf("critical path = %v, want the first subtask of each phase %v", r.CriticalPath, want)
	}
	if r.TotalDuration != "3-6 months" {
		t.Fatalf("total duration = %q, want 3-6 months with all phases populated", r.TotalDuration)
	}
	if r.TotalCost.Min != 25000 || r.TotalCost.Max != 68000 {
		t.Fatalf("total cost = %+v, want 25000-68000", r.TotalCost)
	}
	if r.ExpectedROI != (catalog.Range{Min: 200, Max: 400, Unit: "%"}) {
		t.Fatalf("expected ROI = %+v, want the fixed 200-400%%", r.ExpectedROI)
	}
}

func TestRoadmapTotalsSkipEmptyPhases(t *testing.T) {
	e := testEngine(t)

	t.Run("only_quick_wins", func(t *testing.T) {
		r := e.RoadmapFrom([]SubtaskMatch{roadmapMatch("Invoice Processing", catalog.PriorityHigh, 85)})
		if r.TotalDuration != "2-4 weeks" {
			t.Fatalf("total duration = %q, want 2-4 weeks", r.TotalDuration)
		}
		if r.TotalCost.Min != 2000 || r.TotalCost.Max != 8000 {
			t.Fatalf("total cost = %+v, want just phase 1", r.TotalCost)
		}
		if len(r.CriticalPath) != 1 {
			t.Fatalf("critical path = %v, want one entry", r.CriticalPath)
		}
	})

	t.Run("gap_in_the_middle", func(t *testing.T) {
		r := e.RoadmapFrom([]SubtaskMatch{
			roadmapMatch("Invoice Processing", catalog.PriorityHigh, 85),
			roadmapMatch("Contract Review", catalog.PriorityLow, 40),
		})
		if r.TotalDuration != "3-6 months" {
			t.Fatalf("total duration = %q, want the deepest populated phase to govern", r.TotalDuration)
		}
		if r.TotalCost.Min != 17000 || r.TotalCost.Max != 48000 {
			t.Fatalf("total cost = %+v, want phases 1 and 3 only", r.TotalCost)
		}
		if len(r.Phases[1].Subtasks) != 0 {
			t.Fatalf("phase 2 must stay empty, got %v", r.Phases[1].Subtasks)
		}
		if want := []string{"Invoice Processing", "Contract Review"}; !reflect.DeepEqual(r.CriticalPath, want) {
			t.Fatalf("critical path = %v, want %v", r.CriticalPath, want)
		}
	})
}
