package matching

import "prom8eus-backend/internal/catalog"

// implementationSteps returns the six-step adoption guide for a solution.
// Step three is type-specific; everything else is shared.
func implementationSteps(solutionType string) []string {
	typeStep := "Configure the agent parameters and connect data sources"
	if solutionType == catalog.TypeWorkflow {
		typeStep = "Import the workflow template into your automation platform"
	}
	return []string{
		"Review the solution documentation and requirements",
		"Verify access to the required systems and data",
		typeStep,
		"Run a pilot on a limited slice of the process",
		"Validate outputs and tune the configuration",
		"Roll out to the full process and monitor results",
	}
}
