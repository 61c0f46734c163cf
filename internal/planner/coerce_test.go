package planner

import "testing"

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer", "3", "3"},
		{"decimal_comma", "1,5", "1.5"},
		{"decimal_point", "2.25", "2.25"},
		{"padded", "  4  ", "4"},
		{"empty", "", "0"},
		{"garbage", "abc", "0"},
		{"negative", "-2", "-2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceQuantity(tc.raw)
			if got.String() != tc.want {
				t.Errorf("CoerceQuantity(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCoerceMoney(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "42", "42"},
		{"brazilian_symbol", "R$ 12,50", "12.5"},
		{"brazilian_thousands", "R$ 1.234,56", "1234.56"},
		{"comma_decimal", "12,50", "12.5"},
		{"point_decimal", "12.50", "12.5"},
		{"empty", "", "0"},
		{"garbage", "n/a", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceMoney(tc.raw)
			if got.String() != tc.want {
				t.Errorf("CoerceMoney(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}
