// =============================================================================
// 7 Aromas Production Planner - Column Resolver
// =============================================================================
//
// Marketplace order exports do not have a fixed schema: column names vary by
// marketplace, locale, and export version. This module locates the column
// that supplies each semantic field by scanning normalized header names for
// known keyword substrings.
//
// RESOLUTION RULES:
//   - Keywords are tried in priority order; for each keyword, columns are
//     tried in their original left-to-right order. First hit wins.
//   - Matching is case-insensitive and diacritic-tolerant, so "Variação"
//     matches the keyword "VARIACAO".
//   - A field with no matching column resolves to "not found". Only the
//     caller decides which absences are fatal (SKU and QUANTITY are).
//
// The keyword lists live in data, not in control flow, so the rule set can
// be tested and extended independently.
//
// =============================================================================

package planner

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// SEMANTIC FIELDS
// =============================================================================

// Field identifies one semantic column of the input table.
type Field string

const (
	FieldSKU      Field = "SKU"
	FieldQuantity Field = "QUANTITY"
	FieldName     Field = "NAME"
	FieldVariant  Field = "VARIANT"
	FieldDeadline Field = "DEADLINE"
	FieldStatus   Field = "STATUS"
	FieldValue    Field = "VALUE"
	FieldOrderID  Field = "ORDER_ID"
)

// DefaultFieldKeywords maps each semantic field to its candidate keyword
// substrings, highest priority first. Keywords are matched against
// normalized headers (uppercased, diacritics stripped), so they are spelled
// plain-ASCII here. Portuguese variants cover the Shopee BR export this
// workshop receives. The application config may override individual lists.
var DefaultFieldKeywords = map[Field][]string{
	FieldSKU:      {"SKU"},
	FieldQuantity: {"QUANTIDADE", "QUANTITY", "QTY"},
	FieldName:     {"NOME DO PRODUTO", "PRODUCT NAME"},
	FieldVariant:  {"VARIACAO", "VARIATION", "VARIANT"},
	FieldDeadline: {"ENVIO", "SHIP"},
	FieldStatus:   {"STATUS"},
	FieldValue:    {"VALOR TOTAL", "TOTAL VALUE", "VALOR", "AMOUNT"},
	FieldOrderID:  {"ID DO PEDIDO", "ORDER ID", "PEDIDO", "ORDER"},
}

// =============================================================================
// COLUMN MAP
// =============================================================================

// ColumnMap records which input column supplies each semantic field. It is
// computed once per table and never mutated afterwards.
type ColumnMap map[Field]string

// Has reports whether the field resolved to a column.
func (m ColumnMap) Has(field Field) bool {
	_, ok := m[field]
	return ok
}

// Column returns the resolved column name for the field, or "" if absent.
func (m ColumnMap) Column(field Field) string {
	return m[field]
}

// Detected returns a human-readable "FIELD=column" list for every resolved
// field, in a stable order. Used in the fatal schema error message so the
// user can see what the resolver found in their file.
func (m ColumnMap) Detected() []string {
	order := []Field{
		FieldSKU, FieldQuantity, FieldName, FieldVariant,
		FieldDeadline, FieldStatus, FieldValue, FieldOrderID,
	}
	var out []string
	for _, field := range order {
		if col, ok := m[field]; ok {
			out = append(out, string(field)+"="+col)
		}
	}
	return out
}

// =============================================================================
// RESOLUTION
// =============================================================================

// ResolveColumns scans the header row with the default keyword lists.
func ResolveColumns(headers []string) ColumnMap {
	return ResolveColumnsWith(headers, DefaultFieldKeywords)
}

// ResolveColumnsWith scans the header row and builds the ColumnMap from the
// given keyword lists. Headers keep their original order; a header can
// satisfy more than one field.
func ResolveColumnsWith(headers []string, keywords map[Field][]string) ColumnMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	columns := make(ColumnMap, len(keywords))
	for field, candidates := range keywords {
		if col, ok := findColumn(headers, normalized, candidates); ok {
			columns[field] = col
		}
	}
	return columns
}

// findColumn tries each keyword in priority order against every normalized
// header and returns the first original header that matches.
func findColumn(headers, normalized []string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		for i, header := range normalized {
			if strings.Contains(header, keyword) {
				return headers[i], true
			}
		}
	}
	return "", false
}

// headerNormalizer strips combining marks after NFD decomposition, turning
// "Variação" into "Variacao".
var headerNormalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeHeader uppercases a header and strips diacritics and surrounding
// whitespace so keyword matching is spelling-tolerant.
func normalizeHeader(header string) string {
	stripped, _, err := transform.String(headerNormalizer, header)
	if err != nil {
		stripped = header
	}
	return strings.ToUpper(strings.TrimSpace(stripped))
}
