// Package state holds the thread-safe snapshot shared by the loader and the UI.
//
// # Overview
//
// The Store keeps the outcome of the most recent load cycle: the records,
// whether a load is pending, the last error and when it all changed. The
// refresher writes to it from a Bubble Tea command goroutine; the UI reads
// copies of it.
//
// # Load Cycle
//
//	gen, ok := store.Begin()   // false while another load is pending
//	if !ok {
//		return
//	}
//	records, err := client.Load(ctx, days)
//	store.Finish(gen, records, err)
//
// Begin enforces at most one load in flight. Finish drops outcomes whose
// generation is not the latest, so a late result can never overwrite a
// newer one.
//
// # Update Semantics
//
// Success replaces Records wholesale; records are never merged across
// cycles. Failure keeps the previous Records and sets LastError, so the UI
// can show what it had alongside the failure. Snapshot.Empty distinguishes
// "the window had no records" from "the load failed".
//
// # Thread Safety
//
// All methods take the internal RWMutex. Snapshot returns a deep enough
// copy (records slice and error wrapper) that callers may mutate it freely.
package state
