// =============================================================================
// 7 Aromas Production Planner - Tabular File Reader
// =============================================================================
//
// This module turns an uploaded order export into the loosely-typed table
// the planner consumes. It handles the file shapes marketplaces actually
// produce:
//   - XLSX workbooks (first sheet)
//   - Delimited text with either ";" or "," as the separator
//   - UTF-8 (with or without BOM) and Windows-1252/Latin-1 encodings
//
// The reader makes no schema assumptions beyond "first non-empty row is the
// header"; column semantics are the planner's concern.
//
// =============================================================================

package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is a parsed order export: a header row plus loosely-typed data rows.
type Table struct {
	// Headers are the column names in their original left-to-right order.
	Headers []string

	// Rows are the data rows as header -> cell maps. Cells are trimmed;
	// columns missing from a short row are present with an empty value.
	Rows []map[string]string

	// SourceFile is the path the table was read from.
	SourceFile string
}

// =============================================================================
// READING
// =============================================================================

// ReadFile parses an order-export file, dispatching on the extension.
// Anything that is not .xlsx/.xls is treated as delimited text.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readXLSX(path)
	default:
		return readDelimited(path)
	}
}

// readXLSX reads the first sheet of a workbook.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return buildTable(rows, path)
}

// readDelimited reads a CSV-like file. The separator is sniffed by parsing
// with ";" first and falling back to "," when that yields a single-column
// header, which is what a comma-separated file looks like under the wrong
// delimiter.
func readDelimited(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	data = decodeText(data)

	records, err := parseCSV(data, ';')
	if err != nil || len(records) == 0 || len(records[0]) < 2 {
		records, err = parseCSV(data, ',')
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
	}

	return buildTable(records, path)
}

// parseCSV parses the whole payload with one delimiter.
func parseCSV(data []byte, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	// Export rows are ragged; let the planner deal with short rows.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

// decodeText strips a UTF-8 BOM and, when the payload is not valid UTF-8,
// re-decodes it as Windows-1252 (the encoding older spreadsheet tools save
// "CSV" as).
func decodeText(data []byte) []byte {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return data
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return data
	}
	return decoded
}

// =============================================================================
// TABLE ASSEMBLY
// =============================================================================

// buildTable converts raw records into a Table, using the first non-empty
// record as the header row.
func buildTable(records [][]string, path string) (*Table, error) {
	start := 0
	for start < len(records) && isRowEmpty(records[start]) {
		start++
	}
	if start >= len(records) {
		return nil, fmt.Errorf("file is empty")
	}

	headers := cleanHeaders(records[start])

	table := &Table{
		Headers:    headers,
		Rows:       make([]map[string]string, 0, len(records)-start-1),
		SourceFile: path,
	}

	for _, record := range records[start+1:] {
		if isRowEmpty(record) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// cleanHeaders trims header cells and names blank ones by position so every
// column stays addressable.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, header := range raw {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = header
	}
	return headers
}

// isRowEmpty reports whether every cell in the record is blank.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
