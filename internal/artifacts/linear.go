package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LinearModel is an ordinary least squares regressor: y = intercept + w·x.
type LinearModel struct {
	Intercept    float64   `json:"intercept" yaml:"intercept" toml:"intercept"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients" toml:"coefficients"`
	// Columns is optional alignment metadata written by the exporter.
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty" toml:"columns,omitempty"`
	Type    string   `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
}

func (m *LinearModel) Kind() string { return "linear" }

func (m *LinearModel) Predict(rows [][]float64) ([]float64, error) {
	if err := checkRows(rows, len(m.Coefficients)); err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		sum := m.Intercept
		for j, v := range row {
			sum += m.Coefficients[j] * v
		}
		out[i] = sum
	}
	return out, nil
}

func decodeLinear(b []byte, ext string, schema *Schema) (*LinearModel, error) {
	var m LinearModel
	var err error
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &m)
	case ".toml":
		err = toml.Unmarshal(b, &m)
	default:
		err = json.Unmarshal(b, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if m.Type != "" && m.Type != "linear" {
		return nil, fmt.Errorf("model kind %q cannot be read from %s", m.Type, ext)
	}
	if len(m.Coefficients) == 0 {
		return nil, errors.New("missing coefficients")
	}
	if len(m.Coefficients) != schema.Len() {
		return nil, fmt.Errorf("model has %d coefficients, schema has %d columns", len(m.Coefficients), schema.Len())
	}
	for i, w := range m.Coefficients {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(m.Intercept) || math.IsInf(m.Intercept, 0) {
		return nil, errors.New("intercept is not finite")
	}
	if m.Columns != nil {
		if len(m.Columns) != schema.Len() {
			return nil, fmt.Errorf("model lists %d columns, schema has %d", len(m.Columns), schema.Len())
		}
		for i, c := range m.Columns {
			if Fold(c) != Fold(schema.Column(i)) {
				return nil, fmt.Errorf("column %d is %q in model, %q in schema", i, c, schema.Column(i))
			}
		}
	}
	return &m, nil
}
