package apod

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isoDates() DateFormatter {
	f, _ := NewDateFormatter("")
	return f
}

func TestNormalize_ReversesToDescending(t *testing.T) {
	start := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)
	var raws []RawRecord
	for i := range 15 {
		raws = append(raws, RawRecord{
			Date:      start.AddDate(0, 0, i).Format(DateLayout),
			MediaType: "image",
			URL:       fmt.Sprintf("https://apod.nasa.gov/%d.jpg", i),
		})
	}

	records := Normalize(raws, isoDates())
	require.Len(t, records, 15)
	for i := 1; i < len(records); i++ {
		require.Greater(t, records[i-1].Date, records[i].Date, "records not strictly descending at %d", i)
	}

	ids := make(map[string]struct{}, len(records))
	for _, rec := range records {
		ids[rec.ID] = struct{}{}
	}
	require.Len(t, ids, len(records))

	// input is left untouched
	require.Equal(t, "2024-02-20", raws[0].Date)
}

func TestNormalize_Filters(t *testing.T) {
	raws := []RawRecord{
		{Date: "2024-03-01", MediaType: "image", URL: "https://apod.nasa.gov/1.jpg"},
		{Date: "2024-03-02", MediaType: "video", URL: ""},
		{Date: "2024-03-03", MediaType: "video", URL: "https://vimeo.com/123"},
		{Date: "2024-03-04", MediaType: "other", URL: "https://apod.nasa.gov/x.html"},
		{Date: "2024-03-05", MediaType: "audio", URL: "https://apod.nasa.gov/x.mp3"},
		{Date: "2024-03-06", MediaType: "Image", URL: "https://apod.nasa.gov/case.jpg"},
		{Date: "2024-03-07", MediaType: "image", URL: "   "},
		{Date: "03/08/2024", MediaType: "image", URL: "https://apod.nasa.gov/bad-date.jpg"},
		{Date: "2024-03-09", MediaType: "", URL: "https://apod.nasa.gov/none.jpg"},
	}

	records := Normalize(raws, isoDates())
	require.Len(t, records, 2)
	require.Equal(t, "2024-03-03", records[0].Date)
	require.Equal(t, "https://vimeo.com/123", records[0].MediaURL)
	require.Equal(t, "2024-03-01", records[1].Date)

	for _, rec := range records {
		require.Contains(t, []MediaKind{MediaImage, MediaVideo}, rec.Kind)
		require.NotEmpty(t, rec.MediaURL)
	}
}

func TestNormalize_DuplicateDatesKeepMostRecentEntry(t *testing.T) {
	raws := []RawRecord{
		{Date: "2024-03-01", MediaType: "image", URL: "https://apod.nasa.gov/old.jpg"},
		{Date: "2024-03-01", MediaType: "image", URL: "https://apod.nasa.gov/new.jpg"},
	}
	records := Normalize(raws, isoDates())
	require.Len(t, records, 1)
	require.Equal(t, "https://apod.nasa.gov/new.jpg", records[0].MediaURL)
}

func TestNormalize_KindSpecificURLs(t *testing.T) {
	raws := []RawRecord{
		{Date: "2024-03-01", MediaType: "image", URL: "https://apod.nasa.gov/1.jpg", HDURL: "https://apod.nasa.gov/1_hd.jpg", ThumbnailURL: "https://apod.nasa.gov/ignored.jpg"},
		{Date: "2024-03-02", MediaType: "video", URL: "https://youtube.com/watch?v=xyz", HDURL: "https://apod.nasa.gov/ignored_hd.jpg", ThumbnailURL: "https://img.youtube.com/vi/xyz/0.jpg"},
	}
	records := Normalize(raws, isoDates())
	require.Len(t, records, 2)

	video, image := records[0], records[1]
	require.Empty(t, video.HDURL)
	require.Equal(t, "https://img.youtube.com/vi/xyz/0.jpg", video.ThumbnailURL)
	require.Equal(t, "https://youtube.com/embed/xyz", video.MediaURL)
	require.Equal(t, "https://apod.nasa.gov/1_hd.jpg", image.HDURL)
	require.Empty(t, image.ThumbnailURL)
}

func TestNormalize_ImageURLsAreNotRewritten(t *testing.T) {
	raws := []RawRecord{{Date: "2024-03-01", MediaType: "image", URL: "https://www.youtube.com/watch?v=abc"}}
	records := Normalize(raws, isoDates())
	require.Equal(t, "https://www.youtube.com/watch?v=abc", records[0].MediaURL)
}

func TestNormalize_Empty(t *testing.T) {
	require.Empty(t, Normalize(nil, isoDates()))
}

func TestEmbedURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc123", "https://www.youtube.com/embed/abc123"},
		{"https://youtube.com/watch?v=abc123&t=42s", "https://youtube.com/embed/abc123"},
		{"http://m.youtube.com/watch?feature=share&v=q1", "http://m.youtube.com/embed/q1"},
		{"https://www.youtube.com/embed/abc123?rel=0", "https://www.youtube.com/embed/abc123?rel=0"},
		{"https://www.youtube.com/watch", "https://www.youtube.com/watch"},
		{"https://vimeo.com/watch?v=123", "https://vimeo.com/watch?v=123"},
		{"https://apod.nasa.gov/apod/image/x.mp4", "https://apod.nasa.gov/apod/image/x.mp4"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := EmbedURL(tc.in)
			require.Equal(t, tc.want, got)
			require.Equal(t, got, EmbedURL(got), "rewrite is not idempotent")
		})
	}
}

func TestDateFormatter(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"", "2024-01-02"},
		{"pt-BR", "02/01/2024"},
		{"pt", "02/01/2024"},
		{"en-US", "01/02/2024"},
		{"en-GB", "02/01/2024"},
		{"de-DE", "02.01.2024"},
		{"ja", "2024/01/02"},
	}
	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			f, err := NewDateFormatter(tc.locale)
			require.NoError(t, err)
			require.Equal(t, tc.want, f.Format("2024-01-02"))
		})
	}
}

func TestDateFormatter_MalformedDatePassesThrough(t *testing.T) {
	f, err := NewDateFormatter("pt-BR")
	require.NoError(t, err)
	require.Equal(t, "yesterday", f.Format("yesterday"))

	var zero DateFormatter
	require.Equal(t, "2024-01-02", zero.Format("2024-01-02"))
}

func TestRecordHelpers(t *testing.T) {
	rec := Record{Date: "2024-05-06", Copyright: "  "}
	require.Equal(t, time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC), rec.ParsedDate())
	require.False(t, rec.HasCopyright())

	rec = Record{Date: "nope", Copyright: "Jane Doe"}
	require.True(t, rec.ParsedDate().IsZero())
	require.True(t, rec.HasCopyright())

	require.Equal(t, "IMG", MediaImage.Label())
	require.Equal(t, "VID", MediaVideo.Label())
	require.Equal(t, "?", MediaKind("other").Label())
}
