package e2e

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

const testColumns = `{"data_columns":["bhk","area","region_wakad","region_hinjewadi","type_flat","type_villa"]}`

// testModel predicts 50 for [2, 1000, 1, 0, 1, 0] and 55.5 for [3, 1200, 0, 0, 1, 0].
const testModel = `{"kind":"linear","intercept":0,"coefficients":[4,0.03125,4.75,7.5,6,20],"columns":["bhk","area","region_wakad","region_hinjewadi","type_flat","type_villa"]}`

// createArtifactsDir writes the given files into a temporary artifacts directory.
func createArtifactsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write artifact %s: %v", p, err)
		}
	}
	return dir
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil { t.Fatalf("new req: %v", err) }
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do: %v", err) }
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func postJSON(t *testing.T, url string, payload string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewBufferString(payload))
	if err != nil { t.Fatalf("new req: %v", err) }
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil { t.Fatalf("do: %v", err) }
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}
