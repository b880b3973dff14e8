package metrics

import (
	"testing"
	"time"
)

func TestCollectorCountsStatuses(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(409, 20*time.Millisecond)
	c.Record(500, 30*time.Millisecond)

	snapshot := c.Snapshot()
	if got := snapshot["requestsTotal"].(uint64); got != 3 {
		t.Fatalf("expected 3 requests, got %d", got)
	}
	if got := snapshot["errorsTotal"].(uint64); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := snapshot["conflictsTotal"].(uint64); got != 1 {
		t.Fatalf("expected 1 conflict, got %d", got)
	}
	if got := snapshot["avgDurationMs"].(float64); got != 20 {
		t.Fatalf("expected avg 20ms, got %v", got)
	}
}

func TestCollectorEmptySnapshot(t *testing.T) {
	c := New()
	snapshot := c.Snapshot()
	if got := snapshot["avgDurationMs"].(float64); got != 0 {
		t.Fatalf("expected zero average for empty collector, got %v", got)
	}
}
