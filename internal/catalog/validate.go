package catalog

import (
	"fmt"
	"strings"
)

var (
	validDifficulties = map[string]bool{DifficultyBeginner: true, DifficultyIntermediate: true, DifficultyAdvanced: true}
	validSetupTimes   = map[string]bool{SetupQuick: true, SetupMedium: true, SetupLong: true}
	validDeployments  = map[string]bool{DeployCloud: true, DeployLocal: true, DeployHybrid: true}
	validStatuses     = map[string]bool{StatusActive: true, StatusBeta: true, StatusInactive: true, StatusDeprecated: true}
	validPriorities   = map[string]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}
	validPricings     = map[string]bool{PricingFree: true, PricingFreemium: true, PricingPaid: true, PricingEnterprise: true}
)

// Validate checks a solution for structural problems. Enum fields may be
// empty (they score as unknown), but a populated field must hold a known
// value. Agent entries must carry agent metadata, workflow entries workflow
// metadata.
func Validate(s Solution) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalid)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if strings.TrimSpace(s.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalid)
	}
	switch s.Type {
	case TypeWorkflow:
		if s.Workflow == nil {
			return fmt.Errorf("%w: workflow metadata is required for type %q", ErrInvalid, TypeWorkflow)
		}
	case TypeAgent:
		if s.Agent == nil {
			return fmt.Errorf("%w: agent metadata is required for type %q", ErrInvalid, TypeAgent)
		}
	default:
		return fmt.Errorf("%w: type must be %q or %q", ErrInvalid, TypeWorkflow, TypeAgent)
	}
	if s.AutomationPotential < 0 || s.AutomationPotential > 100 {
		return fmt.Errorf("%w: automationPotential must be between 0 and 100", ErrInvalid)
	}
	if s.Difficulty != "" && !validDifficulties[s.Difficulty] {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s.Difficulty)
	}
	if s.SetupTime != "" && !validSetupTimes[s.SetupTime] {
		return fmt.Errorf("%w: unknown setupTime %q", ErrInvalid, s.SetupTime)
	}
	if s.Deployment != "" && !validDeployments[s.Deployment] {
		return fmt.Errorf("%w: unknown deployment %q", ErrInvalid, s.Deployment)
	}
	if s.Status != "" && !validStatuses[s.Status] {
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, s.Status)
	}
	if s.Priority != "" && !validPriorities[s.Priority] {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalid, s.Priority)
	}
	if s.Pricing != "" && !validPricings[s.Pricing] {
		return fmt.Errorf("%w: unknown pricing %q", ErrInvalid, s.Pricing)
	}
	if s.Metrics.UserRating != 0 && (s.Metrics.UserRating < 1 || s.Metrics.UserRating > 5) {
		return fmt.Errorf("%w: metrics.userRating must be between 1 and 5", ErrInvalid)
	}
	if s.Metrics.SuccessRate < 0 || s.Metrics.SuccessRate > 100 {
		return fmt.Errorf("%w: metrics.successRate must be between 0 and 100", ErrInvalid)
	}
	return nil
}
