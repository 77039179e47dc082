package artifacts

import (
	"os"
	"path/filepath"
	"testing"
)

const testColumns = `{"data_columns":["bhk","area","region_wakad","region_hinjewadi","type_flat","type_villa"]}`

// testLinear predicts 50 for [2, 1000, 1, 0, 1, 0].
const testLinear = `{"kind":"linear","intercept":0,"coefficients":[4,0.03125,4.75,7.5,6,20],"columns":["bhk","area","region_wakad","region_hinjewadi","type_flat","type_villa"]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func mustSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := ParseSchema([]byte(testColumns), []string{"bhk", "area"})
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	return s
}
