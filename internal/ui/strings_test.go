package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Orion", 10, "Orion"},
		{"trimmed", "  Orion  ", 10, "Orion"},
		{"ellipsis", "Andromeda Rising", 9, "Androm..."},
		{"tiny_limit", "Andromeda", 2, "An"},
		{"no_limit", "Andromeda", 0, "Andromeda"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	url := "https://apod.nasa.gov/apod/image/2403/very_long_file_name.jpg"
	got := truncateMiddle(url, 21)
	if len([]rune(got)) != 21 {
		t.Fatalf("got %q (%d runes), want 21", got, len([]rune(got)))
	}
	if got[:10] != "https://ap" {
		t.Fatalf("prefix lost: %q", got)
	}
}

func TestOneLine(t *testing.T) {
	if got := oneLine("Greg\n Smith \t(NASA)"); got != "Greg Smith (NASA)" {
		t.Fatalf("oneLine = %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight longer = %q", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-1, 0, 5); got != 0 {
		t.Fatalf("clamp low = %d", got)
	}
	if got := clamp(9, 0, 5); got != 5 {
		t.Fatalf("clamp high = %d", got)
	}
	if got := clamp(3, 0, -1); got != 0 {
		t.Fatalf("clamp empty range = %d", got)
	}
}
