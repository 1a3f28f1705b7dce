package intent

import (
	"sync"
	"testing"
	"time"
)

type fakeState struct {
	suspended   bool
	resumeKinds map[Kind]bool
}

func (f *fakeState) Suspended() bool { return f.suspended }

func (f *fakeState) IsResumeKind(k Kind) bool { return f.resumeKinds[k] }

type recordingCanceller struct {
	cancelled []Direction
}

func (r *recordingCanceller) CancelRepeat(dir Direction) {
	r.cancelled = append(r.cancelled, dir)
}

func moveAt(dir Direction, src Source, at time.Time) Intent {
	return Intent{Kind: KindMove, Direction: dir, Source: src, Timestamp: at}
}

func TestNormalizerCoalescesCrossSourceEchoes(t *testing.T) {
	n := NewNormalizer(&fakeState{}, 40*time.Millisecond)
	base := time.Now()

	if _, ok := n.Normalize(moveAt(DirRight, SourceKeyboard, base)); !ok {
		t.Fatal("first move should pass")
	}

	// Same direction, different source, inside the window: coalesced.
	if _, ok := n.Normalize(moveAt(DirRight, SourceGamepad, base.Add(10*time.Millisecond))); ok {
		t.Error("cross-source echo inside window should be coalesced")
	}

	// Outside the window it passes.
	if _, ok := n.Normalize(moveAt(DirRight, SourceGamepad, base.Add(100*time.Millisecond))); !ok {
		t.Error("move outside window should pass")
	}
}

func TestNormalizerSameSourceRepeatsPass(t *testing.T) {
	n := NewNormalizer(&fakeState{}, 40*time.Millisecond)
	base := time.Now()

	n.Normalize(moveAt(DirDown, SourceKeyboard, base))
	if _, ok := n.Normalize(moveAt(DirDown, SourceKeyboard, base.Add(5*time.Millisecond))); !ok {
		t.Error("same-source same-direction move is intentional and should pass")
	}
}

func TestNormalizerReversalCancelsRepeat(t *testing.T) {
	n := NewNormalizer(&fakeState{}, 40*time.Millisecond)
	rc := &recordingCanceller{}
	n.AddRepeatCanceller(rc)
	base := time.Now()

	n.Normalize(moveAt(DirRight, SourceKeyboard, base))

	rev, ok := n.Normalize(moveAt(DirLeft, SourceKeyboard, base.Add(5*time.Millisecond)))
	if !ok {
		t.Fatal("reversal move should pass")
	}
	if rev.Direction != DirLeft {
		t.Errorf("expected left, got %s", rev.Direction)
	}

	if len(rc.cancelled) != 1 || rc.cancelled[0] != DirRight {
		t.Errorf("expected right repeat cancelled, got %v", rc.cancelled)
	}

	// A stale repeat tick of the reversed direction is dropped.
	stale := moveAt(DirRight, SourceKeyboard, base.Add(6*time.Millisecond))
	stale.RepeatGeneration = 3
	if _, ok := n.Normalize(stale); ok {
		t.Error("stale repeat tick of reversed direction should be dropped")
	}

	// A fresh press of that direction passes again.
	fresh := moveAt(DirRight, SourceKeyboard, base.Add(200*time.Millisecond))
	if _, ok := n.Normalize(fresh); !ok {
		t.Error("fresh press of reversed direction should pass")
	}
}

func TestNormalizerSuspendedDropsAllButResumeClass(t *testing.T) {
	state := &fakeState{
		suspended:   true,
		resumeKinds: map[Kind]bool{KindResume: true},
	}
	n := NewNormalizer(state, 0)

	if _, ok := n.Normalize(Move(DirUp, SourceKeyboard)); ok {
		t.Error("move should be dropped while suspended")
	}
	if _, ok := n.Normalize(Activate(SourceKeyboard)); ok {
		t.Error("activate should be dropped while suspended")
	}
	if _, ok := n.Normalize(Back(SourceKeyboard)); ok {
		t.Error("back should be dropped while suspended")
	}
	if _, ok := n.Normalize(Resume()); !ok {
		t.Error("resume should pass while suspended")
	}
}

// SuspendFor resets the normalizer from the consumer's goroutine
// while the pump keeps normalizing; the race detector verifies the
// coalescing state survives that interleaving.
func TestNormalizerResetConcurrentWithNormalize(t *testing.T) {
	n := NewNormalizer(&fakeState{}, 40*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		base := time.Now()
		for i := 0; i < 1000; i++ {
			n.Normalize(moveAt(DirRight, SourceKeyboard, base.Add(time.Duration(i)*time.Millisecond)))
			n.Normalize(moveAt(DirLeft, SourceKeyboard, base.Add(time.Duration(i)*time.Millisecond)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			n.Reset()
		}
	}()

	wg.Wait()

	// State is coherent afterwards: a fresh move passes.
	if _, ok := n.Normalize(moveAt(DirUp, SourceKeyboard, time.Now())); !ok {
		t.Error("move after concurrent reset should pass")
	}
}

func TestNormalizerNeverCoalescesActivateOrBack(t *testing.T) {
	n := NewNormalizer(&fakeState{}, 40*time.Millisecond)

	for i := 0; i < 3; i++ {
		if _, ok := n.Normalize(Activate(SourceKeyboard)); !ok {
			t.Fatalf("activate %d should pass", i)
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := n.Normalize(Back(SourceGamepad)); !ok {
			t.Fatalf("back %d should pass", i)
		}
	}
}
