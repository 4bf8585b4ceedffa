package catalog

import (
	"encoding/json"
	"testing"
)

func TestParseROI(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected Range
		ok       bool
	}{
		{name: "plain_range", in: "200-400%", expected: Range{Min: 200, Max: 400, Unit: "%"}, ok: true},
		{name: "single_value", in: "150%", expected: Range{Min: 150, Max: 150, Unit: "%"}, ok: true},
		{name: "approximate", in: "~300%", expected: Range{Min: 300, Max: 300, Unit: "%"}, ok: true},
		{name: "reversed_bounds_swapped", in: "400-200%", expected: Range{Min: 200, Max: 400, Unit: "%"}, ok: true},
		{name: "no_number", in: "n/a", ok: false},
		{name: "empty", in: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseROI(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("range = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestParseCostRange(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected Range
		ok       bool
	}{
		{name: "thousands_with_commas", in: "$2,000-8,000", expected: Range{Min: 2000, Max: 8000, Unit: "$"}, ok: true},
		{name: "monthly", in: "$50-200/mo", expected: Range{Min: 50, Max: 200, Unit: "$/mo"}, ok: true},
		{name: "open_ended_monthly", in: "$1000+/mo", expected: Range{Min: 1000, Max: 1000, Unit: "$/mo"}, ok: true},
		{name: "free", in: "Free", expected: Range{Unit: "$"}, ok: true},
		{name: "no_cost", in: "no cost", expected: Range{Unit: "$"}, ok: true},
		{name: "unparseable", in: "contact sales", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseCostRange(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("range = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	cases := []struct {
		r        Range
		expected string
	}{
		{r: Range{Min: 200, Max: 400, Unit: "%"}, expected: "200-400%"},
		{r: Range{Min: 150, Max: 150, Unit: "%"}, expected: "150%"},
		{r: Range{Min: 50, Max: 200, Unit: "$/mo"}, expected: "$50-200/mo"},
		{r: Range{Min: 2000, Max: 8000, Unit: "$"}, expected: "$2000-8000"},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.expected {
			t.Fatalf("String(%+v) = %q, want %q", tc.r, got, tc.expected)
		}
	}
}

func TestRangeUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected Range
	}{
		{name: "structured", in: `{"min":200,"max":400,"unit":"%"}`, expected: Range{Min: 200, Max: 400, Unit: "%"}},
		{name: "display_string", in: `"200-400%"`, expected: Range{Min: 200, Max: 400, Unit: "%"}},
		{name: "cost_string", in: `"$50-200/mo"`, expected: Range{Min: 50, Max: 200, Unit: "$/mo"}},
		{name: "junk_string_is_zero_not_error", in: `"call us"`, expected: Range{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Range
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got != tc.expected {
				t.Fatalf("range = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestRangeMid(t *testing.T) {
	if got := (Range{Min: 200, Max: 400}).Mid(); got != 300 {
		t.Fatalf("Mid = %v, want 300", got)
	}
	if got := (Range{}).Mid(); got != 0 {
		t.Fatalf("zero range Mid = %v, want 0", got)
	}
}
