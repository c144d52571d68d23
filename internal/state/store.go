package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/skyline/internal/apod"
)

// Snapshot represents the latest load cycle as seen by the UI.
type Snapshot struct {
	Records             []apod.Record
	Loaded              bool // at least one load succeeded
	Loading             bool
	LastError           error
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// Empty reports a successful load that produced no records. It is never
// true while the latest load failed.
func (s Snapshot) Empty() bool {
	return s.Loaded && s.LastError == nil && len(s.Records) == 0
}

// Store coordinates concurrent updates to the snapshot and enforces at most
// one load in flight.
type Store struct {
	mu         sync.RWMutex
	snapshot   Snapshot
	generation uint64
}

// Begin marks a load as started. It returns false, and changes nothing, when
// another load is still pending.
func (s *Store) Begin() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loading {
		return 0, false
	}
	s.generation++
	s.snapshot.Loading = true
	return s.generation, true
}

// Finish records the outcome of the load started by Begin. On success the
// records replace the previous ones wholesale; on failure the previous
// records are kept and the error is recorded. Outcomes for a generation
// other than the latest are dropped.
func (s *Store) Finish(gen uint64, records []apod.Record, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || !s.snapshot.Loading {
		return false
	}
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return true
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(items []apod.Record) []apod.Record {
	if len(items) == 0 {
		return nil
	}
	dup := make([]apod.Record, len(items))
	copy(dup, items)
	return dup
}
