package engine

import (
	"context"
	"testing"
	"time"
)

func TestClockStamp(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewClock(20*time.Millisecond, mock)

	first := clock.stamp(mock.Now())
	if first.Seq != 1 || first.Delta != 0 {
		t.Errorf("Expected first tick seq 1 delta 0, got seq %d delta %v", first.Seq, first.Delta)
	}

	second := clock.stamp(mock.Advance(20 * time.Millisecond))
	if second.Seq != 2 {
		t.Errorf("Expected seq 2, got %d", second.Seq)
	}
	if second.Delta < 0.0199 || second.Delta > 0.0201 {
		t.Errorf("Expected delta 0.02s, got %v", second.Delta)
	}

	late := clock.stamp(mock.Advance(55 * time.Millisecond))
	if late.Delta < 0.0549 || late.Delta > 0.0551 {
		t.Errorf("Expected delta 0.055s for a late tick, got %v", late.Delta)
	}
}

func TestClockNextDeadline(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewClock(20*time.Millisecond, NewMockTimeProvider(t0))

	tests := []struct {
		name string
		now  time.Duration
		want time.Duration
	}{
		{"on schedule", 10 * time.Millisecond, 20 * time.Millisecond},
		{"slightly late keeps cadence", 35 * time.Millisecond, 20 * time.Millisecond},
		{"far behind re-anchors", 100 * time.Millisecond, 120 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.nextDeadline(t0, t0.Add(tt.now))
			if want := t0.Add(tt.want); !got.Equal(want) {
				t.Errorf("Expected deadline %v, got %v", want, got)
			}
		})
	}
}

func TestClockStartAndStop(t *testing.T) {
	clock := NewClock(2*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	ticks := clock.Start(ctx)

	var last uint64
	for i := 0; i < 3; i++ {
		select {
		case tick := <-ticks:
			if tick.Seq <= last {
				t.Errorf("Expected increasing seq, got %d after %d", tick.Seq, last)
			}
			last = tick.Seq
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for tick")
		}
	}

	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ticks:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Expected tick channel to close after cancel")
		}
	}
}

func TestClockFireWithMockTime(t *testing.T) {
	const interval = 20 * time.Millisecond
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(t0)
	clock := NewClock(interval, mock)
	out := make(chan Tick, 1)

	take := func() Tick {
		t.Helper()
		select {
		case tick := <-out:
			return tick
		default:
			t.Fatal("Expected a delivered tick")
			return Tick{}
		}
	}

	deadline := t0.Add(interval)

	// On schedule
	mock.Advance(interval)
	deadline, wait := clock.fire(out, deadline)
	if wait != interval || !deadline.Equal(t0.Add(40*time.Millisecond)) {
		t.Errorf("Expected deadline +40ms wait 20ms, got %v wait %v", deadline.Sub(t0), wait)
	}
	if tick := take(); tick.Seq != 1 || tick.Delta != 0 {
		t.Errorf("Expected first tick seq 1 delta 0, got %+v", tick)
	}

	// Consumer busy: the tick is dropped
	out <- Tick{}
	mock.Advance(interval)
	deadline, _ = clock.fire(out, deadline)
	if clock.Dropped() != 1 {
		t.Errorf("Expected 1 dropped tick, got %d", clock.Dropped())
	}
	<-out

	// Next delivered tick continues the sequence and measures from the last delivered one
	mock.Advance(interval)
	deadline, _ = clock.fire(out, deadline)
	tick := take()
	if tick.Seq != 2 {
		t.Errorf("Expected dropped tick to not consume a sequence number, got seq %d", tick.Seq)
	}
	if tick.Delta < 0.0399 || tick.Delta > 0.0401 {
		t.Errorf("Expected delta 0.04s spanning the dropped tick, got %v", tick.Delta)
	}

	// Far behind: the deadline re-anchors to now
	mock.Advance(100 * time.Millisecond)
	deadline, wait = clock.fire(out, deadline)
	if want := t0.Add(180 * time.Millisecond); !deadline.Equal(want) || wait != interval {
		t.Errorf("Expected re-anchored deadline %v wait %v, got %v wait %v", want, interval, deadline, wait)
	}
	if tick := take(); tick.Delta < 0.0999 || tick.Delta > 0.1001 {
		t.Errorf("Expected delta 0.1s after lag, got %v", tick.Delta)
	}
}
