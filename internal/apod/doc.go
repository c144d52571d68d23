// Package apod provides an HTTP client for NASA's Astronomy Picture of the
// Day API and the pipeline that turns its responses into display records.
//
// # Overview
//
// A single call, Client.Load, computes a date window ending today, issues
// one GET request, validates the response and returns normalized records
// ordered most recent first. The package holds no state between calls;
// every Load is independent.
//
// # Architecture
//
//   - client.go: request construction, status handling, body decoding
//   - window.go: inclusive calendar-day windows and the injectable Clock
//   - normalize.go: ordering, filtering, URL rewriting and date display
//   - errors.go: the FetchError taxonomy
//   - types.go: wire and canonical record types
//
// # Client Usage
//
//	client, err := apod.NewClient(apod.Options{
//		APIKey:     cfg.APIKey,
//		Locale:     "pt-BR",
//		HTTPClient: &http.Client{Timeout: 15 * time.Second},
//	})
//	if err != nil {
//		return err
//	}
//	records, err := client.Load(ctx, 15)
//
// # Request
//
//	GET https://api.nasa.gov/planetary/apod?api_key=KEY&start_date=YYYY-MM-DD&end_date=YYYY-MM-DD&thumbs=true
//
// The window for N days spans today and the N-1 days before it, using the
// local calendar. The archive starts on 1995-06-16 and the service rejects
// earlier start dates, so windows are clamped to FirstDate. The service
// also limits keys by rate (DEMO_KEY allows 30 requests per hour per IP);
// such rejections surface as KindRemoteRejected with status 429.
//
// # Normalization
//
// The API returns records in ascending date order. Load reverses them and
// then keeps only:
//
//   - image records with a non-empty url
//   - video records with a non-empty url
//   - records whose date is a valid YYYY-MM-DD
//   - the first record seen for each date
//
// Video URLs of the form youtube.com/watch?v=ID are rewritten to
// youtube.com/embed/ID. The rewrite is idempotent.
//
// DisplayDate is produced by DateFormatter, which matches the configured
// BCP 47 locale against a fixed table of numeric layouts using
// golang.org/x/text/language. Unmatched locales fall back to YYYY-MM-DD.
//
// # Error Handling
//
// Load never substitutes data for a failure. Every failure after argument
// validation is a *FetchError:
//
//   - KindTransport: DNS, dial, TLS, timeout, reset, context cancellation
//   - KindRemoteRejected: non-2xx status, with the server's message when
//     the error body can be parsed
//   - KindMalformedResponse: body is not a JSON array of records
//
// Retries are not attempted; FetchError.Retryable tells the caller which
// failures are worth a manual refresh. The API key is stripped from
// transport error messages.
//
// # Timeouts
//
// The Client imposes no timeout of its own. Callers set one on the
// injected http.Client or through the context.
package apod
