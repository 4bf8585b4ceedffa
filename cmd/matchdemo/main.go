package main

// Run the matching engine offline over the seed catalog:
//   go run ./cmd/matchdemo

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"prom8eus-backend/internal/catalog"
	"prom8eus-backend/internal/matching"
	"prom8eus-backend/internal/matchruns"
	"prom8eus-backend/internal/report"
)

func main() {
	outPath := flag.String("out", "./out/match_report.md", "output path for the rendered report")
	poolPath := flag.String("pool", "", "optional JSON file with a solutions array to match against")
	flag.Parse()

	pool := catalog.SeedSolutions()
	if *poolPath != "" {
		loaded, err := loadPool(*poolPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load pool failed: %v\n", err)
			os.Exit(1)
		}
		pool = loaded
	}

	engine, err := matching.NewEngine(matching.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine init failed: %v\n", err)
		os.Exit(1)
	}

	subtasks := sampleSubtasks()
	startedAt := time.Now().UTC()
	result := engine.Match(subtasks, pool)
	combos := engine.Combinations(result.SubtaskMatches)
	roadmap := engine.RoadmapFrom(result.SubtaskMatches)
	completedAt := time.Now().UTC()

	run := matchruns.Run{
		ID:           "demo",
		UserID:       "demo",
		SubtaskCount: len(subtasks),
		PoolSize:     len(pool),
		Status:       matchruns.StatusCompleted,
		Output: &matchruns.Output{
			Result:       result,
			Combinations: combos,
			Roadmap:      roadmap,
		},
		DurationMS:  float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
		CreatedAt:   startedAt,
		CompletedAt: &completedAt,
	}

	if err := writeOutputs(*outPath, run); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: matched %d subtasks against %d solutions, wrote %s\n", len(subtasks), len(pool), *outPath)
}

func loadPool(path string) ([]catalog.Solution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pool []catalog.Solution
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, err
	}
	return pool, nil
}

func writeOutputs(outPath string, run matchruns.Run) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(report.Render(run)), 0o644); err != nil {
		return err
	}

	outputPath := filepath.Join(dir, "match_output.json")
	payload, err := json.MarshalIndent(run.Output, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, payload, 0o644)
}

func sampleSubtasks() []matching.Subtask {
	return []matching.Subtask{
		{
			ID:                  "st-1",
			Name:                "Capture supplier invoices from email",
			BusinessDomain:      "Finance",
			AutomationPotential: 85,
			Keywords:            []string{"invoice", "ocr", "accounting"},
			Category:            "Finance & Accounting",
		},
		{
			ID:                  "st-2",
			Name:                "Route inbound support email by urgency",
			BusinessDomain:      "Customer Support",
			AutomationPotential: 70,
			Keywords:            []string{"email", "triage", "routing"},
			Category:            "Customer Support",
		},
		{
			ID:                  "st-3",
			Name:                "Enrich and score new CRM leads",
			BusinessDomain:      "Sales",
			AutomationPotential: 65,
			Keywords:            []string{"crm", "leads", "enrichment"},
			Category:            "Marketing & Sales",
		},
	}
}
