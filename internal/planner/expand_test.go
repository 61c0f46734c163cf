package planner

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpand_JarBundle(t *testing.T) {
	line := OrderLine{SKU: "V100-CFB", Variant: "Cerj/Flor/Brisa"}
	class := Classify(line.SKU, "Candle Jar Trio", line.Variant)

	rawQty := decimal.NewFromInt(2)
	got := Expand(line, class, rawQty, rawQty)

	if len(got.Items) != 3 {
		t.Fatalf("expected 3 expansion items, got %d", len(got.Items))
	}
	seen := make(map[string]decimal.Decimal)
	for _, item := range got.Items {
		seen[item.Scent] = item.Quantity
	}
	for _, scent := range []string{"Cherry & Hazelnut", "Cherry Blossom", "Sea Breeze"} {
		qty, ok := seen[scent]
		if !ok {
			t.Errorf("missing bundle scent %q", scent)
			continue
		}
		// Each scent is credited the raw bundle count.
		if !qty.Equal(rawQty) {
			t.Errorf("scent %q quantity = %s, want %s", scent, qty, rawQty)
		}
	}
	// Packaging counts three jars per bundle.
	if want := decimal.NewFromInt(6); !got.PackagingUnits.Equal(want) {
		t.Errorf("packaging units = %s, want %s", got.PackagingUnits, want)
	}
}

func TestExpand_JarBundle_ByVariant(t *testing.T) {
	line := OrderLine{SKU: "V100-TRIO", Variant: "Cerj/Flor/Brisa"}
	class := Classify(line.SKU, "Candle Jar", line.Variant)

	one := decimal.NewFromInt(1)
	got := Expand(line, class, one, one)
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 expansion items, got %d", len(got.Items))
	}
}

func TestExpand_AssortedFootSoak(t *testing.T) {
	line := OrderLine{SKU: "ES-MIX", Variant: "Assorted"}
	class := Classify(line.SKU, "Foot Soak", line.Variant)

	physical := decimal.NewFromInt(6)
	got := Expand(line, class, physical, physical)

	if len(got.Items) != 3 {
		t.Fatalf("expected 3 expansion items, got %d", len(got.Items))
	}
	want := decimal.NewFromInt(2)
	for _, item := range got.Items {
		if !item.Quantity.Equal(want) {
			t.Errorf("scent %q quantity = %s, want %s", item.Scent, item.Quantity, want)
		}
	}
	if !got.PackagingUnits.Equal(physical) {
		t.Errorf("packaging units = %s, want %s", got.PackagingUnits, physical)
	}
}

// Assorted splits can land on thirds; the split must still sum back to the
// physical quantity it came from.
func TestExpand_AssortedFootSoak_Thirds(t *testing.T) {
	line := OrderLine{SKU: "ES-MIX", Variant: "Sortido"}
	class := Classify(line.SKU, "Foot Soak", line.Variant)

	physical := decimal.NewFromInt(2)
	got := Expand(line, class, physical, physical)

	total := decimal.Zero
	for _, item := range got.Items {
		total = total.Add(item.Quantity)
	}
	if !total.Round(6).Equal(physical) {
		t.Errorf("split total = %s, want %s", total, physical)
	}
}

func TestExpand_General(t *testing.T) {
	line := OrderLine{SKU: "MV-LAV", Variant: "Lavender (1 unidade)"}
	class := Classify(line.SKU, "Mini Candle", line.Variant)

	raw := decimal.NewFromInt(2)
	physical := decimal.NewFromInt(8) // kit of 4, two kits
	got := Expand(line, class, raw, physical)

	if len(got.Items) != 1 {
		t.Fatalf("expected 1 expansion item, got %d", len(got.Items))
	}
	if got.Items[0].Scent != "Lavender" {
		t.Errorf("scent = %q, want %q", got.Items[0].Scent, "Lavender")
	}
	if !got.Items[0].Quantity.Equal(physical) {
		t.Errorf("quantity = %s, want %s", got.Items[0].Quantity, physical)
	}
	if !got.PackagingUnits.Equal(physical) {
		t.Errorf("packaging units = %s, want %s", got.PackagingUnits, physical)
	}
}

func TestExpand_EmptyVariantFallsBack(t *testing.T) {
	line := OrderLine{SKU: "MV-X"}
	class := Classify(line.SKU, "Mini Candle", "")

	one := decimal.NewFromInt(1)
	got := Expand(line, class, one, one)
	if got.Items[0].Scent != FallbackScent {
		t.Errorf("scent = %q, want %q", got.Items[0].Scent, FallbackScent)
	}
}
