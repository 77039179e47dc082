package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Model is a trained regressor. Predict returns one value per row; every row
// is aligned index-for-index with the schema the model was loaded against.
type Model interface {
	Kind() string
	Predict(rows [][]float64) ([]float64, error)
}

// ModelExtensions lists the supported model artifact extensions in the order
// the loader looks for them.
var ModelExtensions = []string{".json", ".yaml", ".yml", ".toml", ".pmml"}

// LoadModel reads a model artifact and binds it to schema.
func LoadModel(path string, schema *Schema) (Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeModel(b, strings.ToLower(filepath.Ext(path)), schema)
}

// DecodeModel decodes a model artifact given its file extension.
func DecodeModel(b []byte, ext string, schema *Schema) (Model, error) {
	switch ext {
	case ".json", ".yaml", ".yml", ".toml":
		return decodeLinear(b, ext, schema)
	case ".pmml":
		return decodeForest(b, schema)
	default:
		return nil, fmt.Errorf("unsupported model extension: %q", ext)
	}
}

func checkRows(rows [][]float64, width int) error {
	for i, r := range rows {
		if len(r) != width {
			return fmt.Errorf("row %d has %d features, model expects %d", i, len(r), width)
		}
	}
	return nil
}
