package matching

import (
	"sort"

	"prom8eus-backend/internal/catalog"
)

// phaseBand holds the fixed illustrative figures for one roadmap phase.
// These are deliberate placeholders tied to the phase index, not derived
// from member solutions.
type phaseBand struct {
	name         string
	duration     string
	cost         catalog.Range
	roles        []string
	deliverables []string
}

var phaseBands = [3]phaseBand{
	{
		name:     "Quick Wins & High ROI",
		duration: "2-4 weeks",
		cost:     catalog.Range{Min: 2000, Max: 8000, Unit: "$"},
		roles:    []string{"Automation Engineer", "Business Analyst"},
		deliverables: []string{
			"Deployed quick-win automations",
			"Baseline metrics and ROI tracking",
		},
	},
	{
		name:     "Medium Priority Solutions",
		duration: "1-2 months",
		cost:     catalog.Range{Min: 8000, Max: 20000, Unit: "$"},
		roles:    []string{"Automation Engineer", "Business Analyst", "Integration Specialist"},
		deliverables: []string{
			"Integrated medium-complexity automations",
			"Operational runbooks and alerting",
		},
	},
	{
		name:     "Advanced Solutions & Optimization",
		duration: "2-3 months",
		cost:     catalog.Range{Min: 15000, Max: 40000, Unit: "$"},
		roles:    []string{"Automation Engineer", "Integration Specialist", "Solutions Architect"},
		deliverables: []string{
			"Advanced and cross-system automations",
			"Optimization review and scaling plan",
		},
	},
}

// totalDurationByDepth maps the deepest populated phase to the overall
// duration band.
var totalDurationByDepth = map[int]string{
	0: "0 weeks",
	1: "2-4 weeks",
	2: "2-3 months",
	3: "3-6 months",
}

var roadmapROI = catalog.Range{Min: 200, Max: 400, Unit: "%"}

// RoadmapFrom buckets subtask matches by priority into exactly three
// sequential phases. The roadmap always carries all three phases, empty or
// not, so consumers get a stable shape.
func (e *Engine) RoadmapFrom(matches []SubtaskMatch) Roadmap {
	buckets := [3][]SubtaskMatch{}
	for _, m := range matches {
		switch m.Priority {
		case catalog.PriorityHigh:
			buckets[0] = append(buckets[0], m)
		case catalog.PriorityMedium:
			buckets[1] = append(buckets[1], m)
		default:
			buckets[2] = append(buckets[2], m)
		}
	}
	for i := range buckets {
		sort.SliceStable(buckets[i], func(a, b int) bool {
			if buckets[i][a].TotalMatchScore != buckets[i][b].TotalMatchScore {
				return buckets[i][a].TotalMatchScore > buckets[i][b].TotalMatchScore
			}
			return buckets[i][a].SubtaskName < buckets[i][b].SubtaskName
		})
	}

	phases := make([]Phase, 3)
	depth := 0
	totalCost := catalog.Range{Unit: "$"}
	criticalPath := make([]string, 0, 3)
	for i, band := range phaseBands {
		names := make([]string, 0, len(buckets[i]))
		for _, m := range buckets[i] {
			names = append(names, m.SubtaskName)
		}
		deliverables := []string{}
		if len(names) > 0 {
			deliverables = band.deliverables
			depth = i + 1
			totalCost.Min += band.cost.Min
			totalCost.Max += band.cost.Max
			criticalPath = append(criticalPath, names[0])
		}
		phases[i] = Phase{
			Number:            i + 1,
			Name:              band.name,
			Duration:          band.duration,
			Subtasks:          names,
			Deliverables:      deliverables,
			DependsOnPrevious: i > 0,
			EstimatedCost:     band.cost,
			RequiredRoles:     band.roles,
		}
	}

	return Roadmap{
		Phases:        phases,
		TotalDuration: totalDurationByDepth[depth],
		TotalCost:     totalCost,
		ExpectedROI:   roadmapROI,
		CriticalPath:  criticalPath,
		PhaseDependencies: map[string][]string{
			"Phase 1": {},
			"Phase 2": {"Phase 1"},
			"Phase 3": {"Phase 2"},
		},
	}
}
