package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Range is a structured numeric interval with a unit, parsed once at the
// ingestion boundary so scoring code never re-parses display strings.
// A single value is stored with Min == Max.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}

// IsZero reports whether the range carries no information.
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 && r.Unit == "" }

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// String renders the range back into its display form, e.g. "200-400%".
func (r Range) String() string {
	min := formatNumber(r.Min)
	max := formatNumber(r.Max)
	prefix, suffix := "", ""
	switch {
	case r.Unit == "%":
		suffix = "%"
	case strings.HasPrefix(r.Unit, "$"):
		prefix = "$"
		suffix = strings.TrimPrefix(r.Unit, "$")
	default:
		suffix = r.Unit
	}
	if r.Min == r.Max {
		return prefix + min + suffix
	}
	return prefix + min + "-" + max + suffix
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UnmarshalJSON accepts either the structured form {"min":200,"max":400,
// "unit":"%"} or a display string like "200-400%". Display strings that do
// not parse leave the zero range; callers treat that as missing data rather
// than failing the surrounding document.
func (r *Range) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if parsed, ok := ParseRange(s); ok {
			*r = parsed
		} else {
			*r = Range{}
		}
		return nil
	}
	type plain Range
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Range(p)
	return nil
}

// ParseRange parses a display range of either kind, inferring the unit from
// the text. Dollar signs mean cost; everything else is treated as percent.
func ParseRange(s string) (Range, bool) {
	if strings.Contains(s, "$") {
		return ParseCostRange(s)
	}
	return ParseROI(s)
}

// ParseROI parses ROI display strings such as "200-400%", "150%" or "~300%"
// into a structured percentage range. ok is false when no number is present.
func ParseROI(s string) (Range, bool) {
	min, max, ok := parseInterval(s)
	if !ok {
		return Range{}, false
	}
	return Range{Min: min, Max: max, Unit: "%"}, true
}

// ParseCostRange parses cost display strings such as "$2,000-8,000",
// "$50-200/mo" or "$1000+/mo" into a structured dollar range. Open-ended
// values ("$1000+") collapse to Min == Max. "Free" and "No cost" parse to
// the zero-dollar range.
func ParseCostRange(s string) (Range, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "free" || trimmed == "no cost" {
		return Range{Unit: "$"}, true
	}
	unit := "$"
	if strings.Contains(trimmed, "/mo") || strings.Contains(trimmed, "/month") {
		unit = "$/mo"
	}
	min, max, ok := parseInterval(s)
	if !ok {
		return Range{}, false
	}
	return Range{Min: min, Max: max, Unit: unit}, true
}

// parseInterval extracts "A-B" or "A" from a decorated display string.
func parseInterval(s string) (min, max float64, ok bool) {
	cleaned := strings.NewReplacer(
		"~", "",
		"%", "",
		"$", "",
		",", "",
		" ", "",
		"/month", "",
		"/mo", "",
		"/yr", "",
		"+", "",
	).Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, 0, false
	}

	parts := strings.SplitN(cleaned, "-", 2)
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	max = min
	if len(parts) == 2 {
		max, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, false
		}
	}
	if max < min {
		min, max = max, min
	}
	return min, max, true
}
