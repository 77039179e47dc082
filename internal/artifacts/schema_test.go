package artifacts

import (
	"strings"
	"testing"
)

func TestParseSchema(t *testing.T) {
	s := mustSchema(t)
	if s.Len() != 6 {
		t.Fatalf("len=%d", s.Len())
	}
	if got := s.Index("region_hinjewadi"); got != 3 {
		t.Fatalf("index=%d", got)
	}
	if got := s.Index("TYPE_Villa"); got != 5 {
		t.Fatalf("case-insensitive index=%d", got)
	}
	if got := s.Index("region_baner"); got != NotFound {
		t.Fatalf("unknown column index=%d", got)
	}
	cols := s.Columns()
	cols[0] = "mutated"
	if s.Column(0) != "bhk" {
		t.Fatalf("Columns must return a copy")
	}
}

func TestParseSchema_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"data_columns":`,
		"missing field":   `{"columns":["bhk","area"]}`,
		"too short":       `{"data_columns":["bhk"]}`,
		"one-hot first":   `{"data_columns":["region_wakad","area","type_flat"]}`,
		"wrong numeric":   `{"data_columns":["bath","area","type_flat"]}`,
		"duplicate":       `{"data_columns":["bhk","area","type_flat","TYPE_FLAT"]}`,
		"empty name":      `{"data_columns":["bhk","area",""]}`,
	}
	for name, in := range cases {
		if _, err := ParseSchema([]byte(in), []string{"bhk", "area"}); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestNewSchema_NumericCheckDisabled(t *testing.T) {
	s, err := NewSchema([]string{"rooms", "sqft", "region_a"}, nil)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("len=%d", s.Len())
	}
	if _, err := NewSchema([]string{"rooms", "sqft"}, []string{"rooms"}); err == nil {
		t.Fatalf("expected error for a single expected numeric name")
	}
}

func TestDeriveVocabulary(t *testing.T) {
	v := DeriveVocabulary(mustSchema(t))
	if strings.Join(v.Regions, ",") != "wakad,hinjewadi" {
		t.Fatalf("regions=%v", v.Regions)
	}
	if strings.Join(v.Types, ",") != "flat,villa" {
		t.Fatalf("types=%v", v.Types)
	}
}

func TestDeriveVocabulary_RegionsMatchSchema(t *testing.T) {
	s := mustSchema(t)
	v := DeriveVocabulary(s)
	var want []string
	for _, c := range s.Columns()[NumericColumns:] {
		if strings.HasPrefix(c, RegionPrefix) {
			want = append(want, c)
		}
	}
	if len(want) != len(v.Regions) {
		t.Fatalf("got %d regions, schema has %d", len(v.Regions), len(want))
	}
	for i, r := range v.Regions {
		if strings.ToLower(RegionPrefix+r) != want[i] {
			t.Fatalf("region %d: %q does not map back to %q", i, r, want[i])
		}
	}
}

func TestFold(t *testing.T) {
	if Fold("  Wakad ") != "wakad" {
		t.Fatalf("fold=%q", Fold("  Wakad "))
	}
	if Fold("STRASSE") != Fold("strasse") {
		t.Fatalf("fold should be case-insensitive")
	}
}
