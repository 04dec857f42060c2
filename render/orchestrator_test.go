package render

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/snake/engine"
)

// recordingRenderer records calls and optionally fails
type recordingRenderer struct {
	mu        sync.Mutex
	ticks     []uint64
	gameOvers int
	failAt    uint64
	err       error
}

func (r *recordingRenderer) Render(state engine.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil && state.Tick == r.failAt {
		return r.err
	}
	r.ticks = append(r.ticks, state.Tick)
	return nil
}

func (r *recordingRenderer) RenderGameOver() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gameOvers++
	return nil
}

func runOrchestrator(t *testing.T, ctx context.Context, o *Orchestrator) error {
	t.Helper()
	result := make(chan error, 1)
	go func() { result <- o.Run(ctx) }()
	select {
	case err := <-result:
		return err
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for orchestrator")
		return nil
	}
}

func TestOrchestratorGameOverOnce(t *testing.T) {
	mailbox := engine.NewSnapshotMailbox()
	rec := &recordingRenderer{}
	o := NewOrchestrator(mailbox, rec)

	mailbox.Publish(engine.GameState{Tick: 1})
	mailbox.Publish(engine.GameState{Tick: 2})
	mailbox.Close()

	if err := runOrchestrator(t, context.Background(), o); err != nil {
		t.Fatalf("Expected nil after game over, got %v", err)
	}

	if rec.gameOvers != 1 {
		t.Errorf("Expected exactly one game over render, got %d", rec.gameOvers)
	}
	if len(rec.ticks) != 1 || rec.ticks[0] != 2 {
		t.Errorf("Expected only the latest pending snapshot (2) rendered, got %v", rec.ticks)
	}
	if o.Rendered() != 1 {
		t.Errorf("Expected Rendered() 1, got %d", o.Rendered())
	}
}

func TestOrchestratorRendersStream(t *testing.T) {
	mailbox := engine.NewSnapshotMailbox()
	rec := &recordingRenderer{}
	o := NewOrchestrator(mailbox, rec)

	result := make(chan error, 1)
	go func() { result <- o.Run(context.Background()) }()

	for i := uint64(1); i <= 5; i++ {
		mailbox.Publish(engine.GameState{Tick: i})
		time.Sleep(5 * time.Millisecond)
	}
	mailbox.Close()

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("Expected nil, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for orchestrator")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for i := 1; i < len(rec.ticks); i++ {
		if rec.ticks[i] <= rec.ticks[i-1] {
			t.Errorf("Expected rendered ticks in order, got %v", rec.ticks)
		}
	}
	if uint64(len(rec.ticks))+mailbox.Dropped() != mailbox.Published() {
		t.Errorf("Expected every snapshot rendered or dropped: rendered %d, dropped %d, published %d",
			len(rec.ticks), mailbox.Dropped(), mailbox.Published())
	}
	if rec.gameOvers != 1 {
		t.Errorf("Expected one game over render, got %d", rec.gameOvers)
	}
}

func TestOrchestratorRenderFailureIsFatal(t *testing.T) {
	mailbox := engine.NewSnapshotMailbox()
	cause := errors.New("screen gone")
	rec := &recordingRenderer{failAt: 1, err: cause}
	o := NewOrchestrator(mailbox, rec)

	mailbox.Publish(engine.GameState{Tick: 1})

	err := runOrchestrator(t, context.Background(), o)
	if !errors.Is(err, ErrRenderFailed) {
		t.Errorf("Expected ErrRenderFailed, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Expected underlying cause to be wrapped, got %v", err)
	}
	if rec.gameOvers != 0 {
		t.Errorf("Expected no game over render after failure, got %d", rec.gameOvers)
	}
}

func TestOrchestratorCancel(t *testing.T) {
	mailbox := engine.NewSnapshotMailbox()
	rec := &recordingRenderer{}
	o := NewOrchestrator(mailbox, rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runOrchestrator(t, ctx, o); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if rec.gameOvers != 0 {
		t.Errorf("Expected no game over render on cancel, got %d", rec.gameOvers)
	}
}

func TestFanout(t *testing.T) {
	cause := errors.New("boom")
	first := &recordingRenderer{}
	failing := &recordingRenderer{failAt: 3, err: cause}
	last := &recordingRenderer{}
	f := Fanout{first, failing, last}

	if err := f.Render(engine.GameState{Tick: 1}); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if err := f.Render(engine.GameState{Tick: 3}); !errors.Is(err, cause) {
		t.Errorf("Expected failure to propagate, got %v", err)
	}

	if len(first.ticks) != 2 {
		t.Errorf("Expected first renderer to see both snapshots, got %v", first.ticks)
	}
	if len(last.ticks) != 1 {
		t.Errorf("Expected renderers after a failure to be skipped, got %v", last.ticks)
	}

	if err := f.RenderGameOver(); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if first.gameOvers != 1 || failing.gameOvers != 1 || last.gameOvers != 1 {
		t.Error("Expected game over to reach every renderer")
	}
}
