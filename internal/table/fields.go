package table

import (
	"fmt"
	"strings"
)

// FieldMap locates the input columns a run reads from. Text columns feed the
// extractors; the price column (optional) feeds the post-extraction
// overrides.
type FieldMap struct {
	SKU   int // -1 when absent
	Text  []int
	Price int // -1 when absent

	// Titles keeps the resolved header for each text column, in column order,
	// so prompts can label field values the way the sheet does.
	Titles map[int]string
}

// Column aliases as they appear across supplier sheets. Matching is
// case-insensitive and ignores surrounding whitespace.
var (
	skuAliases   = []string{"sku", "item sku", "artikelnummer"}
	priceAliases = []string{"price (eur)", "price", "价格(€)", "价格"}

	textAliasGroups = [][]string{
		{"title", "product title", "商品标题"},
		{"bullet points", "features", "产品卖点"},
		{"description", "product description", "详细参数"},
	}
)

// ResolveFields maps a header row to the columns the pipeline consumes.
// Every text alias group is optional individually, but at least one text
// column must resolve; SKU and price are optional. A resolved SKU column is
// also included as the first text field: supplier SKUs carry labeled
// declarations like "Colour Name: Blue Gold" that the extractors read.
func ResolveFields(header []string) (FieldMap, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	fm := FieldMap{SKU: -1, Price: -1, Titles: make(map[int]string)}
	fm.SKU = findColumn(norm, skuAliases)
	fm.Price = findColumn(norm, priceAliases)

	for _, group := range textAliasGroups {
		if idx := findColumn(norm, group); idx >= 0 {
			fm.Text = append(fm.Text, idx)
			fm.Titles[idx] = strings.TrimSpace(header[idx])
		}
	}
	if len(fm.Text) == 0 {
		return FieldMap{}, fmt.Errorf("no text columns found in header %v", header)
	}
	if fm.SKU >= 0 {
		fm.Text = append([]int{fm.SKU}, fm.Text...)
		fm.Titles[fm.SKU] = strings.TrimSpace(header[fm.SKU])
	}
	return fm, nil
}

func findColumn(norm []string, aliases []string) int {
	for _, a := range aliases {
		for i, h := range norm {
			if h == a {
				return i
			}
		}
	}
	return -1
}
