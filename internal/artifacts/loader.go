package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homeprice/internal/common/fsutil"
)

// Loader locates and reads the artifacts written by the training pipeline.
type Loader struct {
	// Dir holds the artifacts; a leading '~' is expanded.
	Dir string
	// ColumnsFile defaults to columns.json inside Dir.
	ColumnsFile string
	// ModelFile is optional; when empty Dir is scanned for model.<ext>.
	ModelFile string
	// NumericColumns are the expected names of schema columns 0 and 1 (optional).
	NumericColumns []string
}

// Artifacts is the immutable state shared by all requests after startup.
type Artifacts struct {
	Schema      *Schema
	Model       Model
	Vocabulary  Vocabulary
	ColumnsPath string
	ModelPath   string
	LoadedAt    time.Time
}

// Load reads the column schema then the model. Any failure is a *StartupError.
func (l Loader) Load() (*Artifacts, error) {
	columnsFile := l.ColumnsFile
	if columnsFile == "" {
		columnsFile = "columns.json"
	}
	colsPath, err := fsutil.Resolve(l.Dir, columnsFile)
	if err != nil {
		return nil, &StartupError{Artifact: "columns", Err: err}
	}
	b, err := os.ReadFile(colsPath)
	if err != nil {
		return nil, &StartupError{Artifact: "columns", Path: colsPath, Err: err}
	}
	schema, err := ParseSchema(b, l.NumericColumns)
	if err != nil {
		return nil, &StartupError{Artifact: "columns", Path: colsPath, Err: err}
	}

	modelPath, err := l.resolveModel()
	if err != nil {
		return nil, &StartupError{Artifact: "model", Err: err}
	}
	model, err := LoadModel(modelPath, schema)
	if err != nil {
		return nil, &StartupError{Artifact: "model", Path: modelPath, Err: err}
	}

	return &Artifacts{
		Schema:      schema,
		Model:       model,
		Vocabulary:  DeriveVocabulary(schema),
		ColumnsPath: colsPath,
		ModelPath:   modelPath,
		LoadedAt:    time.Now(),
	}, nil
}

func (l Loader) resolveModel() (string, error) {
	if l.ModelFile != "" {
		p, err := fsutil.Resolve(l.Dir, l.ModelFile)
		if err != nil {
			return "", err
		}
		if !fsutil.PathExists(p) {
			return "", fmt.Errorf("%s: %w", p, os.ErrNotExist)
		}
		return p, nil
	}
	return FindModel(l.Dir)
}

// FindModel scans dir for model.<ext> using the ModelExtensions order.
func FindModel(dir string) (string, error) {
	base, err := fsutil.Resolve(dir, ".")
	if err != nil {
		return "", err
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("read dir: %w", err)
	}
	found := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), "model") {
			found[ext] = filepath.Join(base, name)
		}
	}
	for _, ext := range ModelExtensions {
		if p, ok := found[ext]; ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("no model artifact in %s (want model%s): %w", base, strings.Join(ModelExtensions, "|model"), os.ErrNotExist)
}
