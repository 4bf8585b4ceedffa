package matching

import (
	"strings"

	"prom8eus-backend/internal/catalog"
)

// automationAlignment bands the absolute difference between the desired and
// the offered automation potential.
func automationAlignment(target, potential int) float64 {
	diff := target - potential
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 10:
		return 100
	case diff <= 25:
		return 80
	case diff <= 40:
		return 60
	case diff <= 60:
		return 40
	default:
		return 20
	}
}

// categoryRelevance compares two category strings: exact case-insensitive
// match, then any shared word, then a low floor.
func categoryRelevance(want, have string) float64 {
	w := strings.ToLower(strings.TrimSpace(want))
	h := strings.ToLower(strings.TrimSpace(have))
	if w == "" || h == "" {
		return 30
	}
	if w == h {
		return 100
	}
	for _, wordA := range strings.FieldsFunc(w, isCategorySeparator) {
		for _, wordB := range strings.FieldsFunc(h, isCategorySeparator) {
			if wordA == wordB {
				return 70
			}
		}
	}
	return 30
}

func isCategorySeparator(r rune) bool {
	return r == ' ' || r == '&' || r == '/' || r == ',' || r == '-'
}

// tagsRelevance scores the fraction of keywords that appear as a substring
// of any tag, or vice versa. Either side empty scores the indifferent 50.
func tagsRelevance(keywords, tags []string) float64 {
	if len(keywords) == 0 || len(tags) == 0 {
		return 50
	}
	matched := 0
	for _, keyword := range keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		for _, tag := range tags {
			t := strings.ToLower(strings.TrimSpace(tag))
			if t == "" {
				continue
			}
			if strings.Contains(t, k) || strings.Contains(k, t) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(keywords)) * 100
}

// domainAlignment checks the solution category against the fixed
// domain-to-category table.
func domainAlignment(domain, category string) float64 {
	for _, c := range categoriesForDomain(domain) {
		if strings.EqualFold(c, category) {
			return 100
		}
	}
	return 30
}

// ordinalAlignment compares a hinted enum value against the solution's value
// by ladder distance. An unknown solution value scores the cautious 50.
func ordinalAlignment(want, have string) float64 {
	wi, hi := ordinalIndex(want), ordinalIndex(have)
	if wi < 0 || hi < 0 {
		return 50
	}
	diff := wi - hi
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 100
	case 1:
		return 70
	default:
		return 40
	}
}

// ratingScore maps the 1-5 user rating onto 0-100.
func ratingScore(userRating float64) float64 {
	score := userRating * 20
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// roiScore maps the parsed ROI midpoint onto 0-100.
func roiScore(roi catalog.Range) float64 {
	score := roi.Mid() / 5
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// costEffectiveness blends the pricing tier with the ROI evidence.
func costEffectiveness(pricing string, roi catalog.Range) float64 {
	base, known := pricingValueScores[pricing]
	if !known {
		base = 50
	}
	if roi.IsZero() {
		return base
	}
	return (base + roiScore(roi)) / 2
}

// scalability blends the deployment reach with usage evidence.
func scalability(deployment string, usageCount int) float64 {
	score := deploymentScore(deployment)
	if usageCount >= 500 {
		score += 10
	}
	if score > 100 {
		return 100
	}
	return score
}

// queryTokens splits a free-text query into lowercase tokens longer than two
// characters.
func queryTokens(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

// BuildBreakdown computes the twelve sub-scores for one solution under one
// context. Sub-scores driven by an absent hint take the neutral default.
func BuildBreakdown(sol catalog.Solution, ctx Context) Breakdown {
	b := Breakdown{
		Rating:            ratingScore(sol.Metrics.UserRating),
		CostEffectiveness: costEffectiveness(sol.Pricing, sol.EstimatedROI),
		Scalability:       scalability(sol.Deployment, sol.Metrics.UsageCount),
		DeploymentFit:     deploymentScore(sol.Deployment),
		StatusScore:       statusScore(sol.Status),
	}

	if ctx.TargetAutomation != nil {
		b.AutomationAlignment = automationAlignment(*ctx.TargetAutomation, sol.AutomationPotential)
	} else {
		b.AutomationAlignment = neutralScore
	}

	if ctx.BusinessDomain != "" {
		b.DomainAlignment = domainAlignment(ctx.BusinessDomain, sol.Category)
		b.CategoryMatch = 30
		for _, c := range categoriesForDomain(ctx.BusinessDomain) {
			if score := categoryRelevance(c, sol.Category); score > b.CategoryMatch {
				b.CategoryMatch = score
			}
		}
	} else {
		b.DomainAlignment = neutralScore
		b.CategoryMatch = neutralScore
	}

	if ctx.Difficulty != "" {
		b.DifficultyMatch = ordinalAlignment(ctx.Difficulty, sol.Difficulty)
	} else {
		b.DifficultyMatch = neutralScore
	}

	if ctx.SetupTime != "" {
		b.SetupTimeEfficiency = ordinalAlignment(ctx.SetupTime, sol.SetupTime)
	} else {
		b.SetupTimeEfficiency = neutralScore
	}

	if ctx.Priority != "" {
		b.PriorityAlignment = ordinalAlignment(ctx.Priority, sol.Priority)
	} else {
		b.PriorityAlignment = neutralScore
	}

	if ctx.UserQuery != "" {
		b.TagsRelevance = tagsRelevance(queryTokens(ctx.UserQuery), sol.Tags)
	} else {
		b.TagsRelevance = neutralScore
	}

	return b
}
