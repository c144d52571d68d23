package main

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-config", "/tmp/c.toml", "-prefs", "/tmp/p.toml", "-days", "30"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if opts.ConfigPath != "/tmp/c.toml" || opts.PrefsPath != "/tmp/p.toml" || opts.WindowDays != 30 {
		t.Fatalf("opts = %+v", opts)
	}

	opts, err = parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags without args returned error: %v", err)
	}
	if opts.WindowDays != 0 {
		t.Fatalf("WindowDays = %d, want 0 so the configured window applies", opts.WindowDays)
	}
}

func TestParseFlags_RejectsNonPositiveDays(t *testing.T) {
	for _, days := range []string{"0", "-3"} {
		var out strings.Builder
		_, err := parseFlags([]string{"-days", days}, &out)
		if err == nil {
			t.Fatalf("-days %s: expected error", days)
		}
		if !strings.Contains(err.Error(), "-days must be a positive") {
			t.Fatalf("-days %s: error = %v", days, err)
		}
		if !strings.Contains(out.String(), "Usage") {
			t.Fatalf("-days %s: usage not printed, got %q", days, out.String())
		}
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
}
