// =============================================================================
// 7 Aromas Production Planner - Excel Export
// =============================================================================
//
// Writes the flattened production plan to an XLSX workbook so the totals can
// be taken back into a spreadsheet. One "Production" sheet holds the
// (category, scent, quantity) triples in display order.
//
// =============================================================================

package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/planner"
)

const productionSheet = "Production"

// WriteExcel writes the plan's production ledger to an XLSX file at path.
func WriteExcel(plan *planner.Plan, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", productionSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Category", "Scent", "Qty"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(productionSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(productionSheet, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	rowNum := 2
	for _, category := range plan.Production.Categories() {
		cat := plan.Production[category]
		for _, scent := range sortedScents(cat) {
			qty, _ := cat.Scents[scent].Float64()
			cells := []interface{}{category, scent, qty}
			for i, value := range cells {
				cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
				if err := f.SetCellValue(productionSheet, cell, value); err != nil {
					return fmt.Errorf("failed to write row %d: %w", rowNum, err)
				}
			}
			rowNum++
		}
	}

	// Wide enough for the longest category label; scents get a bit less.
	f.SetColWidth(productionSheet, "A", "A", 28)
	f.SetColWidth(productionSheet, "B", "B", 24)
	f.SetColWidth(productionSheet, "C", "C", 8)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// sortedScents returns the category's scent names alphabetically, matching
// the worksheet card order.
func sortedScents(cat *planner.CategoryPlan) []string {
	scents := make([]string, 0, len(cat.Scents))
	for scent := range cat.Scents {
		scents = append(scents, scent)
	}
	sort.Strings(scents)
	return scents
}
