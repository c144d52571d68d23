package apod

import (
	"strings"
	"time"
)

// DateLayout is the wire format of APOD dates.
const DateLayout = "2006-01-02"

// MediaKind classifies a record's content.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Label returns the short badge text used in list rows.
func (k MediaKind) Label() string {
	switch k {
	case MediaImage:
		return "IMG"
	case MediaVideo:
		return "VID"
	default:
		return "?"
	}
}

// RawRecord mirrors one element of the APOD response array.
type RawRecord struct {
	Date         string `json:"date"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	Copyright    string `json:"copyright"`
}

// Record is the normalized, render-ready form of a RawRecord.
type Record struct {
	ID           string
	Date         string
	Kind         MediaKind
	DisplayDate  string
	MediaURL     string
	HDURL        string
	ThumbnailURL string
	Title        string
	Explanation  string
	Copyright    string
}

// ParsedDate returns Date as a calendar day in UTC, or the zero time when
// Date is malformed.
func (r Record) ParsedDate() time.Time {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasCopyright reports whether the record carries attribution text.
func (r Record) HasCopyright() bool {
	return strings.TrimSpace(r.Copyright) != ""
}

// errorPayload covers the error shapes api.nasa.gov returns: the APOD
// service uses {"code":400,"msg":"..."} while the gateway uses
// {"error":{"code":"API_KEY_INVALID","message":"..."}}.
type errorPayload struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}

func (p errorPayload) text() string {
	if msg := strings.TrimSpace(p.Msg); msg != "" {
		return msg
	}
	switch v := p.Error.(type) {
	case string:
		if msg := strings.TrimSpace(v); msg != "" {
			return msg
		}
	case map[string]any:
		if msg, ok := v["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return strings.TrimSpace(msg)
		}
	}
	return strings.TrimSpace(p.Message)
}
