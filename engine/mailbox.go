package engine

import (
	"sync"
	"sync/atomic"
)

// SnapshotMailbox hands snapshots from the scheduler to the render side with latest-value semantics.
// At most one snapshot is pending; publishing replaces it and the replaced one is lost
type SnapshotMailbox struct {
	mu        sync.Mutex
	slot      chan GameState
	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	published atomic.Uint64
	dropped   atomic.Uint64
}

// NewSnapshotMailbox creates an empty mailbox
func NewSnapshotMailbox() *SnapshotMailbox {
	return &SnapshotMailbox{
		slot: make(chan GameState, 1),
		done: make(chan struct{}),
	}
}

// Publish stores s as the pending snapshot, discarding any unread one. No-op after Close
func (m *SnapshotMailbox) Publish(s GameState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return
	}

	select {
	case <-m.slot:
		m.dropped.Add(1)
	default:
	}
	m.slot <- s
	m.published.Add(1)
}

// Snapshots delivers pending snapshots
func (m *SnapshotMailbox) Snapshots() <-chan GameState {
	return m.slot
}

// TryTake returns the pending snapshot if one is waiting
func (m *SnapshotMailbox) TryTake() (GameState, bool) {
	select {
	case s := <-m.slot:
		return s, true
	default:
		return GameState{}, false
	}
}

// Close signals the terminal transition. Safe to call more than once
func (m *SnapshotMailbox) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed.Store(true)
		m.mu.Unlock()
		close(m.done)
	})
}

// Done is closed once the game is over
func (m *SnapshotMailbox) Done() <-chan struct{} {
	return m.done
}

// Published returns how many snapshots were offered
func (m *SnapshotMailbox) Published() uint64 {
	return m.published.Load()
}

// Dropped returns how many snapshots were replaced before being read
func (m *SnapshotMailbox) Dropped() uint64 {
	return m.dropped.Load()
}
