package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/skyline/internal/apod"
)

func mustBegin(t *testing.T, s *Store) uint64 {
	t.Helper()
	gen, ok := s.Begin()
	if !ok {
		t.Fatalf("Begin returned false, want a new load")
	}
	return gen
}

func TestStore_FinishAndSnapshotClone(t *testing.T) {
	var s Store

	gen := mustBegin(t, &s)
	if snap := s.Snapshot(); !snap.Loading {
		t.Fatalf("Loading = false after Begin")
	}

	before := time.Now()
	records := []apod.Record{{ID: "2024-01-02"}, {ID: "2024-01-01"}}
	if !s.Finish(gen, records, nil) {
		t.Fatalf("Finish returned false for current generation")
	}

	snap := s.Snapshot()
	if snap.Loading || !snap.Loaded {
		t.Fatalf("snapshot = %#v, want loaded and idle", snap)
	}
	if len(snap.Records) != 2 || snap.Records[0].ID != "2024-01-02" {
		t.Fatalf("snapshot records = %#v, want 2 records", snap.Records)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}

	// Neither the caller's slice nor a returned snapshot alias the store.
	records[0].ID = "mutated"
	snap.Records[1].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Records[0].ID != "2024-01-02" || snap2.Records[1].ID != "2024-01-01" {
		t.Fatalf("Snapshot should clone records; got %#v", snap2.Records)
	}
}

func TestStore_BeginRejectsWhilePending(t *testing.T) {
	var s Store

	gen := mustBegin(t, &s)
	if _, ok := s.Begin(); ok {
		t.Fatalf("second Begin returned true while a load is pending")
	}
	s.Finish(gen, nil, nil)

	if _, ok := s.Begin(); !ok {
		t.Fatalf("Begin returned false after the pending load finished")
	}
}

func TestStore_FinishIgnoresStaleGeneration(t *testing.T) {
	var s Store

	gen := mustBegin(t, &s)
	if s.Finish(gen+1, []apod.Record{{ID: "x"}}, nil) {
		t.Fatalf("Finish accepted an unknown generation")
	}
	if snap := s.Snapshot(); !snap.Loading || len(snap.Records) != 0 {
		t.Fatalf("snapshot changed by stale Finish: %#v", snap)
	}
	if !s.Finish(gen, nil, nil) {
		t.Fatalf("Finish rejected the current generation")
	}
	if s.Finish(gen, []apod.Record{{ID: "late"}}, nil) {
		t.Fatalf("Finish accepted the same generation twice")
	}
}

func TestStore_ErrorKeepsPreviousRecords(t *testing.T) {
	var s Store

	s.Finish(mustBegin(t, &s), []apod.Record{{ID: "2024-01-01"}}, nil)

	origErr := errors.New("boom")
	s.Finish(mustBegin(t, &s), nil, origErr)

	snap := s.Snapshot()
	if len(snap.Records) != 1 || snap.Records[0].ID != "2024-01-01" {
		t.Fatalf("records changed on error: %#v", snap.Records)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if snap.Empty() {
		t.Fatalf("Empty() = true for a failed load")
	}
}

func TestStore_SuccessReplacesWholesale(t *testing.T) {
	var s Store

	s.Finish(mustBegin(t, &s), []apod.Record{{ID: "a"}, {ID: "b"}}, nil)
	s.Finish(mustBegin(t, &s), []apod.Record{{ID: "c"}}, nil)

	snap := s.Snapshot()
	if len(snap.Records) != 1 || snap.Records[0].ID != "c" {
		t.Fatalf("records = %#v, want only c", snap.Records)
	}
}

func TestStore_EmptyVersusFailure(t *testing.T) {
	var s Store
	if s.Snapshot().Empty() {
		t.Fatalf("Empty() = true before any load")
	}

	s.Finish(mustBegin(t, &s), nil, nil)
	if !s.Snapshot().Empty() {
		t.Fatalf("Empty() = false after a successful empty load")
	}

	s.Finish(mustBegin(t, &s), nil, errors.New("offline"))
	if s.Snapshot().Empty() {
		t.Fatalf("Empty() = true after a failed load")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	for i := 1; i <= 3; i++ {
		s.Finish(mustBegin(t, &s), nil, errors.New("fail"))
		if got := s.Snapshot().ConsecutiveFailures; got != i {
			t.Fatalf("ConsecutiveFailures = %d, want %d", got, i)
		}
	}

	s.Finish(mustBegin(t, &s), []apod.Record{{ID: "ok"}}, nil)
	if got := s.Snapshot().ConsecutiveFailures; got != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", got)
	}
}
