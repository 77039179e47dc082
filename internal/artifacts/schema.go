package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const (
	RegionPrefix = "region_"
	TypePrefix   = "type_"

	// NumericColumns is the number of leading numeric features (room count, area).
	NumericColumns = 2

	// NotFound is returned by Schema.Index for unknown columns.
	NotFound = -1
)

// Fold returns the case-folded form used for all column name comparisons.
// cases.Caser is stateful, so a fresh one is used per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Schema is the ordered list of feature columns fixed at training time.
type Schema struct {
	columns []string
	index   map[string]int
}

type columnsFile struct {
	DataColumns []string `json:"data_columns"`
}

// ParseSchema decodes a {"data_columns": [...]} descriptor.
func ParseSchema(b []byte, numeric []string) (*Schema, error) {
	var f columnsFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if f.DataColumns == nil {
		return nil, errors.New("missing data_columns")
	}
	return NewSchema(f.DataColumns, numeric)
}

// NewSchema validates columns and builds the lookup index.
// Columns 0 and 1 are the numeric features; when numeric is non-empty their
// names must match it.
func NewSchema(columns []string, numeric []string) (*Schema, error) {
	if len(columns) < NumericColumns {
		return nil, fmt.Errorf("need at least %d columns, got %d", NumericColumns, len(columns))
	}
	if len(numeric) != 0 && len(numeric) != NumericColumns {
		return nil, fmt.Errorf("expected %d numeric column names, got %d", NumericColumns, len(numeric))
	}
	s := &Schema{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range s.columns {
		key := Fold(c)
		if key == "" {
			return nil, fmt.Errorf("column %d: empty name", i)
		}
		if j, dup := s.index[key]; dup {
			return nil, fmt.Errorf("column %d: duplicate of column %d (%q)", i, j, c)
		}
		s.index[key] = i
		if i < NumericColumns {
			if hasPrefixFold(c, RegionPrefix) || hasPrefixFold(c, TypePrefix) {
				return nil, fmt.Errorf("column %d (%q) must be numeric, not one-hot", i, c)
			}
			if len(numeric) != 0 && key != Fold(numeric[i]) {
				return nil, fmt.Errorf("column %d is %q, want %q", i, c, numeric[i])
			}
		}
	}
	return s, nil
}

// Len is the feature vector length.
func (s *Schema) Len() int { return len(s.columns) }

// Columns returns a copy of the column names in schema order.
func (s *Schema) Columns() []string { return append([]string(nil), s.columns...) }

// Column returns the name at position i.
func (s *Schema) Column(i int) string { return s.columns[i] }

// Index returns the position of name, compared case-insensitively, or NotFound.
func (s *Schema) Index(name string) int {
	if i, ok := s.index[Fold(name)]; ok {
		return i
	}
	return NotFound
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
