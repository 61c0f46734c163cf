// =============================================================================
// 7 Aromas Production Planner - Printable Worksheet
// =============================================================================
//
// Renders the plan as a self-contained HTML page the workshop prints and
// pins up: one color card per category listing scents and quantities, an
// urgency table, the stock-picking summary, material estimates, and a bar
// chart of the busiest scents. All styling is inline so the file needs no
// network access to print correctly.
//
// =============================================================================

package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
)

//go:embed templates/*.html
var templateFS embed.FS

// =============================================================================
// VIEW MODEL
// =============================================================================

// Worksheet is the template's view of one plan. All numbers arrive
// pre-formatted; the template only places them.
type Worksheet struct {
	Title       string
	Source      string
	GeneratedAt string

	TotalUnits string
	Revenue    string
	OrderCount int
	AvgOrder   string

	Urgent  []UrgentRow
	Picking []PickingRow
	WaxKg   string
	FragML  string

	TopScents  []ChartBar
	Categories []CategoryCard
}

// UrgentRow is one line of the urgency table.
type UrgentRow struct {
	Date    string
	Product string
	Qty     string
}

// PickingRow is one packaging-type count in the stock summary.
type PickingRow struct {
	Type  string
	Count string
}

// ChartBar is one bar of the top-scents chart. Percent is relative to the
// largest bar.
type ChartBar struct {
	Label   string
	Qty     string
	Percent int
}

// CategoryCard is one printable production card.
type CategoryCard struct {
	Name  string
	Color string
	Items []CardItem
}

// CardItem is one scent line inside a card.
type CardItem struct {
	Scent string
	Qty   string
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderHTML renders the printable worksheet. source names the input file in
// the page header; topN bounds the bar chart.
func RenderHTML(plan *planner.Plan, source string, topN int, now time.Time) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/worksheet.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse worksheet template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildWorksheet(plan, source, topN, now)); err != nil {
		return nil, fmt.Errorf("failed to render worksheet: %w", err)
	}
	return buf.Bytes(), nil
}

// buildWorksheet flattens the plan into the template view model.
func buildWorksheet(plan *planner.Plan, source string, topN int, now time.Time) *Worksheet {
	ws := &Worksheet{
		Title:       "7 Aromas - Production Center",
		Source:      source,
		GeneratedAt: now.Format("02/01/2006 15:04"),
		TotalUnits:  planner.FormatQuantity(plan.Production.TotalUnits()),
		Revenue:     plan.Finance.Revenue.StringFixed(2),
		OrderCount:  plan.Finance.OrderCount,
		AvgOrder:    plan.Finance.AverageOrderValue.StringFixed(2),
		WaxKg:       plan.Materials.WaxGrams.Div(decimal.NewFromInt(1000)).StringFixed(2),
		FragML:      plan.Materials.FragranceMl.StringFixed(0),
	}

	for _, record := range plan.Urgent {
		ws.Urgent = append(ws.Urgent, UrgentRow{
			Date:    record.Deadline.Format("02/01"),
			Product: record.Product,
			Qty:     planner.FormatQuantity(record.Quantity),
		})
	}

	for _, packaging := range plan.Materials.PackagingTypes() {
		ws.Picking = append(ws.Picking, PickingRow{
			Type:  packaging,
			Count: planner.FormatQuantity(plan.Materials.Packaging[packaging].Truncate(0)),
		})
	}

	ws.TopScents = topScents(plan.Production, topN)

	for _, category := range plan.Production.Categories() {
		cat := plan.Production[category]
		card := CategoryCard{Name: category, Color: string(cat.Color)}
		for _, scent := range sortedScents(cat) {
			qty := cat.Scents[scent]
			if !qty.IsPositive() {
				continue
			}
			card.Items = append(card.Items, CardItem{
				Scent: scent,
				Qty:   planner.FormatQuantity(qty),
			})
		}
		ws.Categories = append(ws.Categories, card)
	}

	return ws
}

// topScents ranks scents across all categories by accumulated quantity and
// keeps the busiest topN as chart bars.
func topScents(ledger planner.ProductionLedger, topN int) []ChartBar {
	type ranked struct {
		label string
		qty   decimal.Decimal
	}

	var all []ranked
	for category, cat := range ledger {
		for scent, qty := range cat.Scents {
			if qty.IsPositive() {
				all = append(all, ranked{label: scent + " (" + category + ")", qty: qty})
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].qty.Equal(all[j].qty) {
			return all[i].qty.GreaterThan(all[j].qty)
		}
		return all[i].label < all[j].label
	})

	if topN > 0 && len(all) > topN {
		all = all[:topN]
	}
	if len(all) == 0 {
		return nil
	}

	max := all[0].qty
	bars := make([]ChartBar, len(all))
	for i, entry := range all {
		percent := 100
		if max.IsPositive() {
			percent = int(entry.qty.Div(max).Mul(decimal.NewFromInt(100)).IntPart())
		}
		if percent < 4 {
			percent = 4 // keep tiny bars visible
		}
		bars[i] = ChartBar{
			Label:   entry.label,
			Qty:     planner.FormatQuantity(entry.qty),
			Percent: percent,
		}
	}
	return bars
}
