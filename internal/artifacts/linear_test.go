package artifacts

import (
	"testing"
)

func TestLinearModel_Predict(t *testing.T) {
	s := mustSchema(t)
	m, err := DecodeModel([]byte(testLinear), ".json", s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Kind() != "linear" {
		t.Fatalf("kind=%s", m.Kind())
	}
	got, err := m.Predict([][]float64{{2, 1000, 1, 0, 1, 0}, {3, 1200, 0, 0, 1, 0}})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(got) != 2 || got[0] != 50 || got[1] != 55.5 {
		t.Fatalf("predictions=%v", got)
	}
	if _, err := m.Predict([][]float64{{1, 2}}); err == nil {
		t.Fatalf("expected width mismatch error")
	}
}

func TestDecodeLinear_YAMLAndTOML(t *testing.T) {
	s := mustSchema(t)
	yml := "intercept: 1.5\ncoefficients: [1, 0, 0, 0, 0, 0]\n"
	m, err := DecodeModel([]byte(yml), ".yaml", s)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if out, _ := m.Predict([][]float64{{2, 0, 0, 0, 0, 0}}); out[0] != 3.5 {
		t.Fatalf("yaml prediction=%v", out)
	}
	tml := "kind = \"linear\"\nintercept = 0.0\ncoefficients = [0.0, 2.0, 0.0, 0.0, 0.0, 0.0]\n"
	m, err = DecodeModel([]byte(tml), ".toml", s)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if out, _ := m.Predict([][]float64{{0, 10, 0, 0, 0, 0}}); out[0] != 20 {
		t.Fatalf("toml prediction=%v", out)
	}
}

func TestDecodeLinear_Invalid(t *testing.T) {
	s := mustSchema(t)
	cases := map[string]string{
		"bad json":         `{"coefficients":`,
		"no coefficients":  `{"intercept":1}`,
		"short":            `{"coefficients":[1,2,3]}`,
		"wrong kind":       `{"kind":"forest","coefficients":[1,1,1,1,1,1]}`,
		"misaligned":       `{"coefficients":[1,1,1,1,1,1],"columns":["bhk","area","region_hinjewadi","region_wakad","type_flat","type_villa"]}`,
		"column count":     `{"coefficients":[1,1,1,1,1,1],"columns":["bhk","area"]}`,
	}
	for name, in := range cases {
		if _, err := DecodeModel([]byte(in), ".json", s); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := DecodeModel([]byte(testLinear), ".pkl", s); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}
