package ui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/five82/skyline/internal/apod"
)

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("missing"); got != names[0] {
		t.Fatalf("NextTheme unknown = %q, want %q", got, names[0])
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme unknown = %q, want Nightfox", got)
	}
}

func TestThemesDefineKindColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, kind := range []apod.MediaKind{apod.MediaImage, apod.MediaVideo} {
			if th.KindColors[kind] == "" {
				t.Fatalf("theme %s has no color for %s", name, kind)
			}
		}
	}
}

func TestErrorSummary(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		headline string
		hint     string
	}{
		{
			name:     "transport",
			err:      &apod.FetchError{Kind: apod.KindTransport, Err: context.DeadlineExceeded},
			headline: "Network error",
			hint:     "Check your connection",
		},
		{
			name:     "forbidden",
			err:      &apod.FetchError{Kind: apod.KindRemoteRejected, Status: http.StatusForbidden, Message: "API_KEY_INVALID"},
			headline: "Request rejected (HTTP 403)",
			hint:     "Check api_key",
		},
		{
			name:     "rate_limited",
			err:      &apod.FetchError{Kind: apod.KindRemoteRejected, Status: http.StatusTooManyRequests, Message: "OVER_RATE_LIMIT"},
			headline: "Request rejected (HTTP 429)",
			hint:     "Rate limit reached",
		},
		{
			name:     "malformed",
			err:      &apod.FetchError{Kind: apod.KindMalformedResponse, Message: "expected array"},
			headline: "Unexpected response",
			hint:     "Press r to retry",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			headline: "Load failed",
			hint:     "Press r to retry",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := errorSummary(tc.err)
			if !strings.HasPrefix(view.headline, tc.headline) {
				t.Fatalf("headline = %q, want prefix %q", view.headline, tc.headline)
			}
			if !strings.Contains(view.hint, tc.hint) {
				t.Fatalf("hint = %q, want %q", view.hint, tc.hint)
			}
			if view.detail == "" {
				t.Fatalf("detail is empty")
			}
		})
	}
}
