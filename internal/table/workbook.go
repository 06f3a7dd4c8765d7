// Package table reads supplier listing workbooks and writes the extracted
// attribute columns back next to the original data.
package table

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ecom-insights/listing-attributes/constants"
	"github.com/ecom-insights/listing-attributes/internal/extract"
	"github.com/ecom-insights/listing-attributes/internal/llm"
)

// Record is one listing row with its resolved text fields and price.
type Record struct {
	Row    int // 1-based sheet row
	SKU    string
	Fields []llm.Field
	Price  *float64
}

// FlatText concatenates the record's text fields for the rule-based pass.
func (r Record) FlatText() string {
	parts := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if f.Value != "" {
			parts = append(parts, f.Value)
		}
	}
	return strings.Join(parts, " ")
}

// Workbook wraps an open listing sheet: the resolved field map, the parsed
// records, and enough bookkeeping to append the attribute columns in place.
type Workbook struct {
	file      *excelize.File
	sheet     string
	fields    FieldMap
	records   []Record
	headerLen int
	log       *slog.Logger
}

// Load opens the workbook's first sheet, resolves its header, and parses
// every data row into a Record. Rows whose text columns are all empty are
// kept so row numbers stay aligned with the sheet.
func Load(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	fields, err := ResolveFields(rows[0])
	if err != nil {
		f.Close()
		return nil, err
	}

	wb := &Workbook{
		file:      f,
		sheet:     sheet,
		fields:    fields,
		headerLen: len(rows[0]),
		log:       logger,
	}
	for i, row := range rows[1:] {
		wb.records = append(wb.records, wb.parseRecord(i+2, row))
	}

	logger.Info("table.load.ok",
		"path", path,
		"sheet", sheet,
		"records", len(wb.records),
		"text_columns", len(fields.Text),
		"has_price", fields.Price >= 0,
	)
	return wb, nil
}

func (w *Workbook) parseRecord(rowNum int, row []string) Record {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rec := Record{Row: rowNum, SKU: cell(w.fields.SKU)}
	for _, idx := range w.fields.Text {
		rec.Fields = append(rec.Fields, llm.Field{
			Name:  w.fields.Titles[idx],
			Value: cell(idx),
		})
	}
	if raw := cell(w.fields.Price); raw != "" {
		if p, ok := parsePrice(raw); ok {
			rec.Price = &p
		} else {
			w.log.Warn("table.price.unparseable", "row", rowNum, "value", raw)
		}
	}
	return rec
}

// parsePrice tolerates currency symbols and European decimal commas.
func parsePrice(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			return r
		default:
			return -1
		}
	}, s)
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	p, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return p, true
}

// Records returns the parsed data rows in sheet order.
func (w *Workbook) Records() []Record { return w.records }

// AppendAttributes writes the ten attribute columns after the existing
// header and fills each row from the result keyed by sheet row number.
// Missing attributes leave the cell blank.
func (w *Workbook) AppendAttributes(results map[int]extract.AttributeSet) error {
	attrs := constants.Attributes()
	for i, attr := range attrs {
		cell, err := excelize.CoordinatesToCellName(w.headerLen+i+1, 1)
		if err != nil {
			return fmt.Errorf("attribute header cell: %w", err)
		}
		if err := w.file.SetCellValue(w.sheet, cell, constants.ColumnTitles[attr]); err != nil {
			return fmt.Errorf("write attribute header: %w", err)
		}
	}

	for _, rec := range w.records {
		set, ok := results[rec.Row]
		if !ok {
			continue
		}
		for i, attr := range attrs {
			v, ok := set.Get(attr)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(w.headerLen+i+1, rec.Row)
			if err != nil {
				return fmt.Errorf("attribute cell row %d: %w", rec.Row, err)
			}
			if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
				return fmt.Errorf("write attribute row %d: %w", rec.Row, err)
			}
		}
	}
	return nil
}

// SaveAs writes the workbook to path and closes the underlying file.
func (w *Workbook) SaveAs(path string) error {
	defer w.file.Close()
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	w.log.Info("table.save.ok", "path", path)
	return nil
}

// Close releases the workbook without saving.
func (w *Workbook) Close() error { return w.file.Close() }

// OutputPath derives the result file name from the input and a mode suffix,
// with a timestamp so repeated runs never clobber each other.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return fmt.Sprintf("%s_%s_%s%s", base, suffix, time.Now().Format("20060102_150405"), ext)
}
