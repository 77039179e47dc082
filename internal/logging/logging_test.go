package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"off":   zerolog.Disabled,
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := New(Options{Level: "warn", Format: "json", Out: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer c.Close()
	l.Info().Msg("hidden")
	l.Warn().Str("artifact", "columns.json").Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, `"artifact":"columns.json"`) || !strings.Contains(out, `"service":"homeprice"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestNew_FileSink(t *testing.T) {
	var buf bytes.Buffer
	p := filepath.Join(t.TempDir(), "homeprice.log")
	l, c, err := New(Options{Format: "json", File: p, Out: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Info().Msg("to file")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "to file") {
		t.Fatalf("file sink missing line: %s", b)
	}
}
