package planner

import "testing"

func TestResolveMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		product  string
		variant  string
		category string
		want     int
	}{
		{"no_signal", "MV-LAV", "Mini Candle", "Lavender", CategoryMiniCandles, 1},
		{"twenty_units", "MV-LAV", "Mini Candle 20 un", "", CategoryMiniCandles, 20},
		{"twenty_units_no_space", "MV-LAV", "Mini Candle 20un", "", CategoryMiniCandles, 20},
		{"ten_units", "MV-LAV", "Mini Candle", "10 UN", CategoryMiniCandles, 10},
		{"five_units", "MV-LAV", "Mini Candle 5un", "", CategoryMiniCandles, 5},
		{"kit_of_four_by_sku", "MVK-SORT", "Mini Candle Kit", "", CategoryMiniCandles, 4},
		{"kit_of_four_by_text", "MV-X", "Mini Candle KIT 4", "", CategoryMiniCandles, 4},
		{"double_kit_of_four", "MVK-SORT", "Mini Candle 2 KIT", "", CategoryMiniCandles, 8},
		{"kit_of_three", "MV KIT 3", "Mini Candle Trio", "", CategoryMiniCandles, 3},
		{"spray_pair", "SPRAY-250", "Home Spray 2un", "", CategorySprayPrefix + "250ml", 2},
		{"pair_outside_spray", "MV-LAV", "Mini Candle 2un", "", CategoryMiniCandles, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text := CombinedText(tc.sku, tc.product, tc.variant)
			got := ResolveMultiplier(tc.sku, text, tc.category)
			if got != tc.want {
				t.Errorf("ResolveMultiplier(%q, %q, %q) = %d, want %d",
					tc.sku, text, tc.category, got, tc.want)
			}
		})
	}
}

// Explicit unit counts outrank kit codes: a row carrying both "10 UN" and
// "KIT 3" resolves to 10.
func TestResolveMultiplier_Precedence(t *testing.T) {
	sku := "MV KIT 3"
	text := CombinedText(sku, "Mini Candle 10 UN", "")
	if got := ResolveMultiplier(sku, text, CategoryMiniCandles); got != 10 {
		t.Errorf("multiplier = %d, want 10", got)
	}
}
