package table

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ecom-insights/listing-attributes/internal/extract"
)

func writeFixture(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "listings.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadParsesRecords(t *testing.T) {
	path := writeFixture(t, [][]any{
		{"SKU", "Title", "Bullet Points", "Description", "Price (EUR)"},
		{"HD-01", "Ionic dryer black", "1200W; storage case", "3 speed settings", "€59,99"},
		{"HD-02", "Travel dryer", "", "", "200"},
		{"HD-03", "", "", "", "not a price"},
	})

	wb, err := Load(path, nil)
	require.NoError(t, err)
	defer wb.Close()

	records := wb.Records()
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 2, first.Row)
	assert.Equal(t, "HD-01", first.SKU)
	require.Len(t, first.Fields, 4)
	assert.Equal(t, "SKU", first.Fields[0].Name)
	assert.Equal(t, "HD-01", first.Fields[0].Value)
	assert.Equal(t, "Title", first.Fields[1].Name)
	assert.Equal(t, "Ionic dryer black", first.Fields[1].Value)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 59.99, *first.Price, 0.001)
	assert.Equal(t, "HD-01 Ionic dryer black 1200W; storage case 3 speed settings", first.FlatText())

	second := records[1]
	require.NotNil(t, second.Price)
	assert.InDelta(t, 200, *second.Price, 0.001)

	third := records[2]
	assert.Nil(t, third.Price, "unparseable prices are skipped, not fatal")
	assert.Equal(t, "HD-03", third.FlatText())
}

func TestSKUContentFeedsExtraction(t *testing.T) {
	// Supplier SKUs often carry the only explicit color declaration.
	path := writeFixture(t, [][]any{
		{"SKU", "Title"},
		{"Colour Name: Blue Gold", "Hair dryer 1200W"},
	})

	wb, err := Load(path, nil)
	require.NoError(t, err)
	defer wb.Close()

	records := wb.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Colour Name: Blue Gold Hair dryer 1200W", records[0].FlatText())

	set := extract.Extract(records[0].FlatText())
	require.NotNil(t, set.Color)
	assert.Equal(t, "blue、gold", *set.Color)
}

func TestAppendAttributesRoundTrip(t *testing.T) {
	path := writeFixture(t, [][]any{
		{"SKU", "Title", "Price"},
		{"HD-01", "Black dryer", "49.99"},
		{"HD-02", "Blue dryer", "89.99"},
	})

	wb, err := Load(path, nil)
	require.NoError(t, err)

	black := "black"
	power := "1200W"
	blue := "blue"
	results := map[int]extract.AttributeSet{
		2: {Color: &black, Power: &power},
		3: {Color: &blue},
	}
	require.NoError(t, wb.AppendAttributes(results))

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Original header had three columns, so attributes start at column D.
	header, err := f.GetCellValue(sheet, "D1")
	require.NoError(t, err)
	assert.Equal(t, "Color", header)

	v, err := f.GetCellValue(sheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "black", v)

	v, err = f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "1200W", v)

	v, err = f.GetCellValue(sheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "blue", v)

	// Absent attribute leaves the cell empty.
	v, err = f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// Original data is untouched.
	v, err = f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Black dryer", v)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"€59,99", 59.99, true},
		{"59.99", 59.99, true},
		{"1,299.00", 1299, true},
		{"200", 200, true},
		{"n/a", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePrice(tt.in)
		assert.Equal(t, tt.ok, ok, "parsePrice(%q)", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 0.001, "parsePrice(%q)", tt.in)
		}
	}
}

func TestOutputPathKeepsExtension(t *testing.T) {
	out := OutputPath("/data/listings.xlsx", "extracted")
	assert.True(t, strings.HasPrefix(out, "/data/listings_extracted_"))
	assert.True(t, strings.HasSuffix(out, ".xlsx"))

	out = OutputPath("/data/listings.xlsx", "llm_enhanced")
	assert.True(t, strings.HasPrefix(out, "/data/listings_llm_enhanced_"))
}
