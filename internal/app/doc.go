// Package app is the composition root for skyline.
//
// # Overview
//
// Run wires configuration, logging, the APOD client, the shared store and
// the Bubble Tea UI, then blocks until the user quits or the context is
// cancelled.
//
// # Components
//
//   - app.go: Run and dependency construction
//   - refresh.go: Refresher, the load-cycle policy used by the UI
//   - httpclient.go: the tuned http.Client carrying the request timeout
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/skyline/config.toml
//	       ├─────> logging.New()        Open the log file
//	       ├─────> apod.NewClient()     HTTP client with injected options
//	       ├─────> state.Store{}        Shared snapshot
//	       ├─────> NewRefresher()       Load policy
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Refresh (from a Bubble Tea command):
//	┌─────────────────────────────────────────┐
//	│ store.Begin()   ── pending? ignore      │
//	│ client.Load(ctx, windowDays)            │
//	│ store.Finish(gen, records, err)         │
//	│     └─> UI reads store.Snapshot()       │
//	└─────────────────────────────────────────┘
//
// # Refresh Policy
//
// There is no background polling. The UI triggers one refresh on start and
// one per manual request. A request made while a load is pending is
// ignored rather than queued. Failures are never retried automatically;
// the UI shows the error and waits for the user.
//
// # Timeouts
//
// The request timeout comes from timeout_seconds in the config and is set
// on the http.Client. Quitting the UI cancels the context, which aborts an
// in-flight request.
package app
