package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
)

// samplePlan builds a small plan with two categories, one urgent item, and
// material totals, enough to exercise every worksheet section.
func samplePlan() *planner.Plan {
	deadline := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	plan := &planner.Plan{
		Production: planner.ProductionLedger{
			planner.CategoryMiniCandles: &planner.CategoryPlan{
				Color: planner.ColorPurple,
				Scents: map[string]decimal.Decimal{
					"Lavender": decimal.NewFromInt(8),
					"Vanilla":  decimal.NewFromInt(3),
				},
			},
			planner.CategoryFootSoak: &planner.CategoryPlan{
				Color: planner.ColorGreen,
				Scents: map[string]decimal.Decimal{
					"Rosemary": decimal.RequireFromString("0.6666666666666667"),
				},
			},
		},
		Urgent: []planner.UrgencyRecord{
			{Deadline: deadline, Product: planner.CategoryMiniCandles + " - Lavender", Quantity: decimal.NewFromInt(8)},
		},
		Materials: planner.MaterialLedger{
			Packaging: map[string]decimal.Decimal{
				"Mini Candles (units)": decimal.NewFromInt(11),
				"Foot Soak (packs)":    decimal.NewFromInt(2),
			},
			WaxGrams:    decimal.NewFromInt(330),
			FragranceMl: decimal.NewFromInt(33),
		},
		Finance: planner.FinancialSummary{
			Revenue:           decimal.RequireFromString("132.00"),
			OrderCount:        2,
			AverageOrderValue: decimal.NewFromInt(66),
		},
		RowsRead:    3,
		RowsPlanned: 3,
	}
	return plan
}

func TestWriteExcel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := WriteExcel(samplePlan(), path); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Production")
	if err != nil {
		t.Fatalf("failed to read Production sheet: %v", err)
	}

	// Header plus one row per (category, scent) pair.
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0][0] != "Category" || rows[0][1] != "Scent" || rows[0][2] != "Qty" {
		t.Errorf("header row = %v", rows[0])
	}

	// Categories and scents come out in display (sorted) order.
	if rows[1][0] != planner.CategoryFootSoak || rows[1][1] != "Rosemary" {
		t.Errorf("first data row = %v", rows[1])
	}
	if rows[2][0] != planner.CategoryMiniCandles || rows[2][1] != "Lavender" || rows[2][2] != "8" {
		t.Errorf("second data row = %v", rows[2])
	}
}

func TestRenderHTML_Sections(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	out, err := RenderHTML(samplePlan(), "orders.xlsx", 10, now)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"7 Aromas - Production Center",
		"orders.xlsx",
		planner.CategoryMiniCandles,
		"Lavender",
		"11/06", // urgent deadline
		"Mini Candles (units)",
		"0.33", // wax in kg
		"132.00",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("worksheet missing %q", want)
		}
	}

	// Fractional foot-soak split prints with one decimal.
	if !strings.Contains(page, "0.7") {
		t.Error("worksheet missing rounded fractional quantity")
	}
}

func TestRenderHTML_EmptyPlan(t *testing.T) {
	plan := &planner.Plan{
		Production: make(planner.ProductionLedger),
		Materials: planner.MaterialLedger{
			Packaging: make(map[string]decimal.Decimal),
		},
	}

	out, err := RenderHTML(plan, "empty.csv", 10, time.Now())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected a rendered page")
	}
}

func TestTopScents_RankingAndCap(t *testing.T) {
	ledger := planner.ProductionLedger{
		"A": &planner.CategoryPlan{Scents: map[string]decimal.Decimal{
			"One":   decimal.NewFromInt(10),
			"Two":   decimal.NewFromInt(5),
			"Three": decimal.NewFromInt(1),
		}},
		"B": &planner.CategoryPlan{Scents: map[string]decimal.Decimal{
			"Four": decimal.NewFromInt(7),
		}},
	}

	bars := topScents(ledger, 3)
	if len(bars) != 3 {
		t.Fatalf("bars = %d, want 3", len(bars))
	}
	if bars[0].Label != "One (A)" || bars[0].Percent != 100 {
		t.Errorf("top bar = %+v", bars[0])
	}
	if bars[1].Label != "Four (B)" {
		t.Errorf("second bar = %+v", bars[1])
	}
	// 1/10 would be a 10 percent bar; at minimum it stays visible.
	for _, bar := range bars {
		if bar.Percent < 4 {
			t.Errorf("bar %q percent = %d, below visibility floor", bar.Label, bar.Percent)
		}
	}
}
