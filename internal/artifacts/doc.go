// Package artifacts loads the column schema and the trained model produced by
// the training pipeline. Load runs once at startup; the returned Artifacts are
// immutable and safe to share between goroutines.
//
//   - schema.go: column schema descriptor ({"data_columns": [...]}) and validation.
//   - vocabulary.go: region/type names derived from the one-hot columns.
//   - model.go: Model interface and decoding by file extension.
//   - linear.go: linear regression artifact (.json/.yaml/.yml/.toml).
//   - forest.go: PMML random forest regression artifact (.pmml).
//   - loader.go: Loader, path resolution and the StartupError taxonomy.
package artifacts
