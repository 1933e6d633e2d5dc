package services

import (
	"log"
	"sync"

	"codenexus/engine"
)

// ProgressService hosts the engine for live sessions: it holds the current
// in-memory snapshot per user, applies transitions under a per-user lock so
// rapid actions land in order, and hands every new snapshot to the sync
// queue. Reads that fail fall back to the empty snapshot instead of blocking
// the session.
type ProgressService struct {
	store ProgressStore
	queue *SyncQueue
	cfg   engine.Config

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
	cache map[uint]engine.Snapshot
}

func NewProgressService(store ProgressStore, cfg engine.Config) *ProgressService {
	return &ProgressService{
		store: store,
		queue: NewSyncQueue(store),
		cfg:   cfg,
		locks: map[uint]*sync.Mutex{},
		cache: map[uint]engine.Snapshot{},
	}
}

// Queue exposes the sync queue for shutdown flushing
func (s *ProgressService) Queue() *SyncQueue {
	return s.queue
}

func (s *ProgressService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Get returns the user's current snapshot, loading it on first access. A
// store read failure degrades to the all-zero snapshot; the caller surfaces
// a sync-error state rather than failing the session.
func (s *ProgressService) Get(userID uint) engine.Snapshot {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	return s.loadLocked(userID)
}

func (s *ProgressService) loadLocked(userID uint) engine.Snapshot {
	s.mu.Lock()
	snap, ok := s.cache[userID]
	s.mu.Unlock()
	if ok {
		return snap
	}

	snap, err := s.store.LoadProgress(userID)
	if err != nil {
		log.Printf("Progress load failed for user %d, starting from empty snapshot: %v", userID, err)
		snap = engine.NewSnapshot(userID)
	}
	s.mu.Lock()
	s.cache[userID] = snap
	s.mu.Unlock()
	return snap
}

func (s *ProgressService) commitLocked(snap engine.Snapshot) {
	s.mu.Lock()
	s.cache[snap.UserID] = snap
	s.mu.Unlock()
	s.queue.Enqueue(snap)
}

// SolveProblem applies the problem-completion transition and persists the
// result. Idempotent: a duplicate solve returns the unchanged snapshot and no
// events, and nothing is enqueued.
func (s *ProgressService) SolveProblem(userID, problemID uint, rewardPoints int, today string, todaysSet *engine.DailySet) (engine.Snapshot, []engine.Event) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap := s.loadLocked(userID)
	next, events := engine.MarkProblemSolved(snap, problemID, rewardPoints, today, todaysSet, s.cfg)
	if len(events) > 0 {
		s.commitLocked(next)
	}
	return next, events
}

// CompleteBlock applies the content-block transition and persists the result
func (s *ProgressService) CompleteBlock(userID uint, cat *engine.Catalog, moduleID, blockID uint, today string, todaysSet *engine.DailySet) (engine.Snapshot, []engine.Event) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap := s.loadLocked(userID)
	next, events := engine.MarkBlockComplete(snap, cat, moduleID, blockID, today, todaysSet, s.cfg)
	if len(events) > 0 {
		s.commitLocked(next)
	}
	return next, events
}

// Refresh reconciles the cached snapshot with freshly-fetched remote state.
// The merge rule unions completion sets instead of overwriting, so in-flight
// local optimistic state survives a concurrent remote update.
func (s *ProgressService) Refresh(userID uint, cat *engine.Catalog) (engine.Snapshot, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	remote, err := s.store.LoadProgress(userID)
	if err != nil {
		return s.loadLocked(userID), err
	}

	s.mu.Lock()
	local, ok := s.cache[userID]
	s.mu.Unlock()
	if !ok {
		s.mu.Lock()
		s.cache[userID] = remote
		s.mu.Unlock()
		return remote, nil
	}

	merged := engine.Merge(local, remote, cat, s.cfg)
	s.commitLocked(merged)
	return merged, nil
}

// Evict drops the cached snapshot after a final flush enqueue, e.g. on
// logout
func (s *ProgressService) Evict(userID uint) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	snap, ok := s.cache[userID]
	if ok {
		delete(s.cache, userID)
	}
	s.mu.Unlock()
	if ok {
		s.queue.Enqueue(snap)
	}
}
