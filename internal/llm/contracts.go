package llm

import (
	"context"

	"github.com/ecom-insights/listing-attributes/internal/extract"
)

// Field is one labeled source field of a record, e.g. ("Title", "...").
// Order is preserved when the prompt is built.
type Field struct {
	Name  string
	Value string
}

// ExtractRequest carries everything needed to extract attributes for one
// record over the remote completion service.
type ExtractRequest struct {
	RowID  int     // positional identity of the record in its source table
	Fields []Field // labeled free-text fields, in source order
	Price  *float64
}

// FieldExtractor produces the ten-attribute set for one record. A fully
// degraded call returns an empty set and a nil error: "no information" is a
// value here, not a failure. The raw JSON of the last model response is
// returned for auditing when available.
type FieldExtractor interface {
	ExtractAttributes(ctx context.Context, req ExtractRequest) (extract.AttributeSet, []byte, error)
}
