package apod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// RecordLoader defines the interface for loading a window of records.
// This interface is implemented by *Client and can be used for testing.
type RecordLoader interface {
	Load(ctx context.Context, windowDays int) ([]Record, error)
}

// Ensure Client implements RecordLoader at compile time.
var _ RecordLoader = (*Client)(nil)

const (
	DefaultBaseURL   = "https://api.nasa.gov/planetary/apod"
	DefaultAPIKey    = "DEMO_KEY"
	defaultUserAgent = "skyline/0.1"

	// maxBodyBytes bounds a response; a 100-day window is well under 1 MiB.
	maxBodyBytes = 8 << 20
)

// Options configure a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	APIKey     string
	Locale     string
	UserAgent  string
	HTTPClient *http.Client
	Clock      Clock
	Logger     *slog.Logger
}

// Client talks to the APOD HTTP API. It holds no mutable state and is safe
// for concurrent use; concurrent loads are not coordinated.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	userAgent string
	http      *http.Client
	clock     Clock
	dates     DateFormatter
	log       *slog.Logger
}

// NewClient validates opts and builds a Client.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	dates, err := NewDateFormatter(opts.Locale)
	if err != nil {
		return nil, err
	}

	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:   base,
		apiKey:    apiKey,
		userAgent: userAgent,
		http:      httpClient,
		clock:     clock,
		dates:     dates,
		log:       logger,
	}, nil
}

// Load fetches the windowDays-wide window ending today and returns its
// records most recent first. Failures are returned as *FetchError, except
// ErrInvalidWindow which is reported before any request is made.
func (c *Client) Load(ctx context.Context, windowDays int) ([]Record, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	window, err := NewWindow(c.clock.Now(), windowDays)
	if err != nil {
		return nil, err
	}
	window = window.Clamp()

	raws, err := c.fetch(ctx, window)
	if err != nil {
		c.log.Warn("apod load failed", slog.String("window", window.String()), slog.Any("error", err))
		return nil, err
	}
	records := Normalize(raws, c.dates)
	c.log.Info("apod load complete",
		slog.String("window", window.String()),
		slog.Int("received", len(raws)),
		slog.Int("kept", len(records)),
	)
	return records, nil
}

func (c *Client) fetch(ctx context.Context, window Window) ([]RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(window), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("apod request", slog.String("start_date", window.StartParam()), slog.String("end_date", window.EndParam()))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A rejection stays a rejection even when its payload is cut short.
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			c.log.Debug("apod error body unreadable", slog.Int("status", resp.StatusCode), slog.Any("error", err))
			body = nil
		}
		return nil, &FetchError{
			Kind:    KindRemoteRejected,
			Status:  resp.StatusCode,
			Message: rejectionMessage(resp.StatusCode, body),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return nil, &FetchError{Kind: KindMalformedResponse, Message: "response body too large"}
	}
	return decodeRecords(body)
}

func (c *Client) requestURL(window Window) string {
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	values.Set("start_date", window.StartParam())
	values.Set("end_date", window.EndParam())
	values.Set("thumbs", "true")

	u := *c.baseURL
	u.RawQuery = values.Encode()
	return u.String()
}

func decodeRecords(body []byte) ([]RawRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FetchError{Kind: KindMalformedResponse, Message: "body is not a JSON array"}
	}
	var raws []RawRecord
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, &FetchError{Kind: KindMalformedResponse, Err: fmt.Errorf("decode response: %w", err)}
	}
	return raws, nil
}

func rejectionMessage(status int, body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := payload.text(); msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// request URL and with it the API key.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return fmt.Errorf("%s request: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
