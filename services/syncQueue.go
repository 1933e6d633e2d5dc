package services

import (
	"log"
	"sync"
	"time"

	"codenexus/engine"
)

// SyncQueue serializes persistence per user: at most one write per user id is
// in flight, and a newer snapshot enqueued while a write runs replaces any
// still-queued stale one. Enqueue never blocks the caller; failed writes are
// retried with backoff and local state stays authoritative throughout.
type SyncQueue struct {
	store       ProgressStore
	maxAttempts int
	backoff     time.Duration

	mu    sync.Mutex
	slots map[uint]*syncSlot
}

type syncSlot struct {
	queued  *engine.Snapshot
	running bool
}

func NewSyncQueue(store ProgressStore) *SyncQueue {
	return &SyncQueue{
		store:       store,
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
		slots:       map[uint]*syncSlot{},
	}
}

// Enqueue schedules the snapshot for persistence. Coalesces: only the latest
// snapshot per user is kept while a write is in flight.
func (q *SyncQueue) Enqueue(snap engine.Snapshot) {
	q.mu.Lock()
	slot, ok := q.slots[snap.UserID]
	if !ok {
		slot = &syncSlot{}
		q.slots[snap.UserID] = slot
	}
	if slot.queued == nil || snap.Version >= slot.queued.Version {
		copied := snap.Clone()
		slot.queued = &copied
	}
	start := !slot.running
	if start {
		slot.running = true
	}
	q.mu.Unlock()

	if start {
		go q.drain(snap.UserID)
	}
}

func (q *SyncQueue) drain(userID uint) {
	for {
		q.mu.Lock()
		slot := q.slots[userID]
		if slot == nil || slot.queued == nil {
			if slot != nil {
				slot.running = false
			}
			q.mu.Unlock()
			return
		}
		snap := *slot.queued
		slot.queued = nil
		q.mu.Unlock()

		q.write(snap)
	}
}

func (q *SyncQueue) write(snap engine.Snapshot) {
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := q.store.SaveProgress(snap)
		if err == nil {
			if err := q.store.UpdateUserAccumulators(snap.UserID, snap.Points, snap.CurrentStreak); err != nil {
				log.Printf("Failed to update accumulators for user %d: %v", snap.UserID, err)
			}
			return
		}
		log.Printf("Progress save failed for user %d (attempt %d/%d): %v", snap.UserID, attempt, q.maxAttempts, err)
		if attempt < q.maxAttempts {
			time.Sleep(q.backoff * time.Duration(attempt))
		}
	}
	// give up for now; the next mutation re-enqueues the full snapshot, so
	// nothing is lost while local state stays authoritative
}

// Idle reports whether no writes are queued or in flight
func (q *SyncQueue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, slot := range q.slots {
		if slot.running || slot.queued != nil {
			return false
		}
	}
	return true
}

// Flush waits until the queue drains or the timeout elapses. Used on
// shutdown and in tests.
func (q *SyncQueue) Flush(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if q.Idle() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return q.Idle()
}
