package garden

import "testing"

func TestSchedulerActivateDedupes(t *testing.T) {
	s := NewScheduler(16)
	s.Activate(3)
	s.Activate(3)
	s.Activate(5)
	s.Activate(-1)
	s.Activate(16)

	s.EndTick()
	if got := len(s.Active()); got != 2 {
		t.Fatalf("active set holds %d indices, want 2", got)
	}
}

func TestSchedulerDoubleBuffers(t *testing.T) {
	s := NewScheduler(16)
	s.Activate(1)
	s.EndTick()

	// Activation mid-tick lands in the next set, not the current one.
	s.Activate(2)
	if got := len(s.Active()); got != 1 || s.Active()[0] != 1 {
		t.Fatalf("active set = %v, want [1]", s.Active())
	}

	s.EndTick()
	if got := len(s.Active()); got != 1 || s.Active()[0] != 2 {
		t.Fatalf("active set after swap = %v, want [2]", s.Active())
	}

	// An index consumed by the swap can be re-activated.
	s.Activate(2)
	s.EndTick()
	if got := len(s.Active()); got != 1 || s.Active()[0] != 2 {
		t.Fatalf("re-activated set = %v, want [2]", s.Active())
	}
}

func TestSchedulerProcessedGuard(t *testing.T) {
	s := NewScheduler(8)
	s.BeginTick()
	if s.Processed(4) {
		t.Fatal("fresh tick must not report processed indices")
	}
	s.MarkProcessed(4)
	if !s.Processed(4) {
		t.Fatal("MarkProcessed must stick for the tick")
	}
	s.BeginTick()
	if s.Processed(4) {
		t.Fatal("BeginTick must clear the guard")
	}
	if s.Processed(-1) || s.Processed(99) {
		t.Fatal("out-of-range indices must never report processed")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(8)
	s.Activate(1)
	s.Activate(2)
	s.EndTick()
	s.Activate(3)
	s.MarkProcessed(1)

	s.Reset()
	if len(s.Active()) != 0 {
		t.Fatal("Reset must empty the active set")
	}
	if s.Processed(1) {
		t.Fatal("Reset must clear the processed guard")
	}
	s.Activate(3)
	s.EndTick()
	if got := len(s.Active()); got != 1 {
		t.Fatalf("activation after Reset yields %d indices, want 1", got)
	}
}
