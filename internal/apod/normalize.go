package apod

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// dateLayouts maps supported locales to their numeric date layout. The
// first entry is the fallback when nothing matches.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.Und, DateLayout},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.EuropeanPortuguese, "02/01/2006"},
	{language.AmericanEnglish, "01/02/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "02.01.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Japanese, "2006/01/02"},
	{language.Chinese, "2006/01/02"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, entry := range dateLayouts {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}()

// DateFormatter renders APOD dates for display.
type DateFormatter struct {
	layout string
}

// NewDateFormatter picks the closest supported layout for a BCP 47 locale.
// An empty locale yields the ISO layout.
func NewDateFormatter(locale string) (DateFormatter, error) {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return DateFormatter{layout: DateLayout}, nil
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return DateFormatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		idx = 0
	}
	return DateFormatter{layout: dateLayouts[idx].layout}, nil
}

// Format renders a YYYY-MM-DD date. Malformed input is returned as is.
func (f DateFormatter) Format(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	layout := f.layout
	if layout == "" {
		layout = DateLayout
	}
	return t.Format(layout)
}

var youtubeHosts = map[string]struct{}{
	"youtube.com":     {},
	"www.youtube.com": {},
	"m.youtube.com":   {},
}

// EmbedURL rewrites a YouTube watch URL (…/watch?v=ID) into its embeddable
// form (…/embed/ID). Any other URL, including one already in embed form,
// is returned unchanged.
func EmbedURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	if _, ok := youtubeHosts[strings.ToLower(u.Host)]; !ok {
		return raw
	}
	if strings.TrimSuffix(u.Path, "/") != "/watch" {
		return raw
	}
	id := strings.TrimSpace(u.Query().Get("v"))
	if id == "" {
		return raw
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	embed := url.URL{Scheme: scheme, Host: u.Host, Path: "/embed/" + id}
	return embed.String()
}

// Normalize turns an ascending APOD response into descending canonical
// records. Unsupported media types, records without a media URL, malformed
// dates and repeated dates are dropped.
func Normalize(raws []RawRecord, dates DateFormatter) []Record {
	ordered := slices.Clone(raws)
	slices.Reverse(ordered)

	out := make([]Record, 0, len(ordered))
	seen := make(map[string]struct{}, len(ordered))
	for _, raw := range ordered {
		rec, ok := normalizeOne(raw, dates)
		if !ok {
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func normalizeOne(raw RawRecord, dates DateFormatter) (Record, bool) {
	date := strings.TrimSpace(raw.Date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Record{}, false
	}
	mediaURL := strings.TrimSpace(raw.URL)
	if mediaURL == "" {
		return Record{}, false
	}

	rec := Record{
		ID:          date,
		Date:        date,
		DisplayDate: dates.Format(date),
		Title:       raw.Title,
		Explanation: raw.Explanation,
		Copyright:   strings.TrimSpace(raw.Copyright),
	}
	switch MediaKind(raw.MediaType) {
	case MediaImage:
		rec.Kind = MediaImage
		rec.MediaURL = mediaURL
		rec.HDURL = strings.TrimSpace(raw.HDURL)
	case MediaVideo:
		rec.Kind = MediaVideo
		rec.MediaURL = EmbedURL(mediaURL)
		rec.ThumbnailURL = strings.TrimSpace(raw.ThumbnailURL)
	default:
		return Record{}, false
	}
	return rec, true
}
