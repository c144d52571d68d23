package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "skyline.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero reads nothing", 0, nil},
		{"negative reads nothing", -1, nil},
		{"partial", 5, all[5:]},
		{"exactly all", 10, all},
		{"more than exists", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read missing = %v, %v; want nil, nil", lines, err)
	}
}

func TestParse_SlogTextLine(t *testing.T) {
	line := `time=2024-01-03T21:30:00.123-03:00 level=WARN msg="apod load failed" service=skyline window=2024-01-01..2024-01-03 error="apod: remote rejected request (status 403): bad key"`
	e := Parse(line)

	if e.Level != "WARN" || e.Message != "apod load failed" {
		t.Fatalf("Parse = %#v", e)
	}
	if e.Clock() != "21:30:00" {
		t.Fatalf("Clock = %q, want 21:30:00", e.Clock())
	}
	want := []Attr{
		{"service", "skyline"},
		{"window", "2024-01-01..2024-01-03"},
		{"error", "apod: remote rejected request (status 403): bad key"},
	}
	if !reflect.DeepEqual(e.Attrs, want) {
		t.Fatalf("Attrs = %#v, want %#v", e.Attrs, want)
	}
	if e.Raw != line {
		t.Fatalf("Raw not preserved")
	}
}

func TestParse_FreeformLine(t *testing.T) {
	for _, line := range []string{"panic: something broke", `msg="unterminated`, ""} {
		e := Parse(line)
		if e.Message != line || e.Level != "" {
			t.Fatalf("Parse(%q) = %#v, want message passthrough", line, e)
		}
	}
}
