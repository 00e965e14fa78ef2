package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("espn", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("espn", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("espn"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("espn")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksSkippedEvents(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSkippedEvents("espn", 2)
	rec.RecordSkippedEvents("espn", 0)
	rec.RecordSkippedEvents("espn", 1)

	if got := rec.SkippedEvents("espn"); got != 3 {
		t.Fatalf("expected 3 skipped events, got %d", got)
	}
	if got := rec.SkippedEvents("fixture"); got != 0 {
		t.Fatalf("expected untouched provider to report 0, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("espn", time.Millisecond, nil)
	rec.RecordSkippedEvents("espn", 1)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	if snap := rec.Snapshot("espn"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot from nil recorder, got %+v", snap)
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("espn", time.Millisecond, nil)
		}()
	}
	wg.Wait()

	if got := rec.ProviderCalls("espn"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}
