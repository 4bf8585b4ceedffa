package matching

import (
	"strings"

	"prom8eus-backend/internal/catalog"
)

// Neutral score applied whenever an optional context hint is absent. Missing
// context must never be penalized.
const neutralScore = 75.0

// statusScores maps lifecycle status to a quality signal.
var statusScores = map[string]float64{
	catalog.StatusActive:     100,
	catalog.StatusBeta:       70,
	catalog.StatusInactive:   50,
	catalog.StatusDeprecated: 20,
}

// easeScores grade Beginner/Quick/High style ladders: the easier or more
// urgent value scores higher. An empty or unknown value scores zero so that
// unspecified catalog entries sink in the matcher rather than float on
// invented data.
var easeScores = map[string]float64{
	catalog.DifficultyBeginner:     100,
	catalog.DifficultyIntermediate: 70,
	catalog.DifficultyAdvanced:     40,

	catalog.SetupQuick:  100,
	catalog.SetupMedium: 70,
	catalog.SetupLong:   40,

	// catalog.PriorityMedium shares the "Medium" string with SetupMedium
	// above (same 70), so it cannot appear twice in this literal.
	catalog.PriorityHigh: 100,
	catalog.PriorityLow:  40,
}

// deploymentScores grade deployment modes by operational reach.
var deploymentScores = map[string]float64{
	catalog.DeployCloud:  90,
	catalog.DeployHybrid: 75,
	catalog.DeployLocal:  60,
}

// pricingValueScores grade pricing tiers by cost pressure.
var pricingValueScores = map[string]float64{
	catalog.PricingFree:       100,
	catalog.PricingFreemium:   85,
	catalog.PricingPaid:       65,
	catalog.PricingEnterprise: 45,
}

// pricingCostTexts are the display cost estimates per pricing tier.
var pricingCostTexts = map[string]string{
	catalog.PricingFree:       "No cost",
	catalog.PricingFreemium:   "$50-200/mo",
	catalog.PricingPaid:       "$200-1000/mo",
	catalog.PricingEnterprise: "$1000+/mo",
}

// pricingCostRanges are the structured counterparts used for aggregation.
var pricingCostRanges = map[string]catalog.Range{
	catalog.PricingFree:       {Min: 0, Max: 0, Unit: "$/mo"},
	catalog.PricingFreemium:   {Min: 50, Max: 200, Unit: "$/mo"},
	catalog.PricingPaid:       {Min: 200, Max: 1000, Unit: "$/mo"},
	catalog.PricingEnterprise: {Min: 1000, Max: 1000, Unit: "$/mo"},
}

// timeToValueScores grade the free-text time-to-value buckets.
var timeToValueScores = map[string]float64{
	"immediate":  100,
	"1-2 weeks":  85,
	"2-4 weeks":  70,
	"1-2 months": 55,
	"3+ months":  40,
}

// domainCategories maps a business domain to the solution categories that
// serve it directly.
var domainCategories = map[string][]string{
	"finance":          {"Finance & Accounting"},
	"accounting":       {"Finance & Accounting"},
	"marketing":        {"Marketing & Sales"},
	"sales":            {"Marketing & Sales"},
	"hr":               {"HR & Recruiting"},
	"recruiting":       {"HR & Recruiting"},
	"customer-support": {"Customer Support"},
	"support":          {"Customer Support"},
	"it":               {"IT & Software Development"},
	"engineering":      {"IT & Software Development"},
	"data":             {"Data Analysis"},
	"analytics":        {"Data Analysis"},
	"operations":       {"Operations", "Data Analysis"},
	"legal":            {"Legal & Compliance"},
	"compliance":       {"Legal & Compliance"},
}

// relatedDomains maps a business domain to adjacent domains an agent may
// cover without a direct match.
var relatedDomains = map[string][]string{
	"finance":          {"accounting", "operations", "data"},
	"accounting":       {"finance", "operations"},
	"marketing":        {"sales", "data"},
	"sales":            {"marketing", "customer-support"},
	"hr":               {"recruiting", "operations"},
	"recruiting":       {"hr"},
	"customer-support": {"sales", "operations"},
	"support":          {"customer-support", "operations"},
	"it":               {"engineering", "data", "operations"},
	"engineering":      {"it", "data"},
	"data":             {"analytics", "it", "finance"},
	"analytics":        {"data", "marketing"},
	"operations":       {"finance", "hr", "it"},
	"legal":            {"compliance", "hr"},
	"compliance":       {"legal", "finance"},
}

// coreCapabilities are the broadly useful agent capabilities that mark a
// generalist.
var coreCapabilities = map[string]bool{
	"web_search":    true,
	"data_analysis": true,
	"file_io":       true,
	"email_send":    true,
}

// specializedCapabilityPairs mark deep vertical coverage when both members
// co-occur on one agent.
var specializedCapabilityPairs = [][2]string{
	{"code_generation", "code_review"},
	{"data_analysis", "sql"},
	{"web_search", "summarization"},
	{"ocr", "document_parsing"},
	{"email_send", "calendar"},
}

// rareCapabilities mark niche vertical skills.
var rareCapabilities = map[string]bool{
	"legal_review":       true,
	"medical_coding":     true,
	"fraud_detection":    true,
	"sentiment_analysis": true,
	"translation":        true,
}

// topTierModels and midTierModels grade agent base models.
var topTierModels = map[string]bool{
	"gpt-4":             true,
	"gpt-4o":            true,
	"gpt-4-turbo":       true,
	"claude-3-opus":     true,
	"claude-3.5-sonnet": true,
	"gemini-1.5-pro":    true,
	"o1":                true,
}

var midTierModels = map[string]bool{
	"gpt-3.5-turbo":    true,
	"gpt-4o-mini":      true,
	"claude-3-haiku":   true,
	"claude-3-sonnet":  true,
	"gemini-1.5-flash": true,
	"mistral-large":    true,
	"llama-3-70b":      true,
}

// majorProviders and establishedProviders grade agent vendors.
var majorProviders = map[string]bool{
	"openai":    true,
	"anthropic": true,
	"google":    true,
}

var establishedProviders = map[string]bool{
	"microsoft": true,
	"meta":      true,
	"mistral":   true,
	"cohere":    true,
	"amazon":    true,
	"deepseek":  true,
}

func statusScore(status string) float64 {
	if v, ok := statusScores[status]; ok {
		return v
	}
	return 50
}

func easeScore(value string) float64 {
	return easeScores[value]
}

func deploymentScore(deployment string) float64 {
	if v, ok := deploymentScores[deployment]; ok {
		return v
	}
	return 50
}

func timeToValueScore(bucket string) float64 {
	if v, ok := timeToValueScores[strings.ToLower(strings.TrimSpace(bucket))]; ok {
		return v
	}
	return 50
}

func modelQualityScore(model string) float64 {
	m := strings.ToLower(strings.TrimSpace(model))
	switch {
	case topTierModels[m]:
		return 90
	case midTierModels[m]:
		return 70
	default:
		return 60
	}
}

func providerReliabilityScore(provider string) float64 {
	p := strings.ToLower(strings.TrimSpace(provider))
	switch {
	case majorProviders[p]:
		return 90
	case establishedProviders[p]:
		return 80
	default:
		return 60
	}
}

// priorityRank orders High > Medium > Low > unknown for sorting.
func priorityRank(priority string) int {
	switch priority {
	case catalog.PriorityHigh:
		return 3
	case catalog.PriorityMedium:
		return 2
	case catalog.PriorityLow:
		return 1
	default:
		return 0
	}
}

// setupSpeedRank orders Quick > Medium > Long > unknown for sorting.
func setupSpeedRank(setupTime string) int {
	switch setupTime {
	case catalog.SetupQuick:
		return 3
	case catalog.SetupMedium:
		return 2
	case catalog.SetupLong:
		return 1
	default:
		return 0
	}
}

// tierRank orders Generalist > Specialist > Experimental.
func tierRank(tier string) int {
	switch tier {
	case TierGeneralist:
		return 3
	case TierSpecialist:
		return 2
	case TierExperimental:
		return 1
	default:
		return 0
	}
}

// ordinalIndex places enum values on their ladder for distance comparisons.
func ordinalIndex(value string) int {
	switch value {
	case catalog.DifficultyBeginner, catalog.SetupQuick, catalog.PriorityHigh:
		return 0
	// catalog.PriorityMedium is the same "Medium" string as SetupMedium and
	// is covered by it here.
	case catalog.DifficultyIntermediate, catalog.SetupMedium:
		return 1
	case catalog.DifficultyAdvanced, catalog.SetupLong, catalog.PriorityLow:
		return 2
	default:
		return -1
	}
}

// categoriesForDomain returns the categories serving a business domain.
func categoriesForDomain(domain string) []string {
	return domainCategories[normalizeDomain(domain)]
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
