package garden

// Scheduler owns the double-buffered active-index sets. Each tick the engines
// iterate the active set; indices inserted via Activate become live on the
// following tick. A cell that nothing re-activates goes dormant and is skipped
// until a neighbor write or a tool touches it again.
//
// The processed guard prevents a cell from being updated twice in one tick.
// It is marked only for cells that moved to a new index or were created this
// tick; a cell updated in place stays unmarked so later phases (gravity,
// erosion) can still act on it within the same tick.
type Scheduler struct {
	active    []int
	next      []int
	inNext    []bool
	processed []bool
}

// NewScheduler sizes the scheduler for a grid with total cells.
func NewScheduler(total int) *Scheduler {
	if total < 0 {
		total = 0
	}
	return &Scheduler{
		active:    make([]int, 0, total/4+1),
		next:      make([]int, 0, total/4+1),
		inNext:    make([]bool, total),
		processed: make([]bool, total),
	}
}

// Activate inserts i into the next tick's working set. Duplicate and
// out-of-range inserts are ignored.
func (s *Scheduler) Activate(i int) {
	if i < 0 || i >= len(s.inNext) || s.inNext[i] {
		return
	}
	s.inNext[i] = true
	s.next = append(s.next, i)
}

// Active exposes the current tick's working set. Callers must not mutate it.
func (s *Scheduler) Active() []int {
	return s.active
}

// Processed reports whether i was already claimed this tick.
func (s *Scheduler) Processed(i int) bool {
	return i >= 0 && i < len(s.processed) && s.processed[i]
}

// MarkProcessed flags i as handled for the remainder of the tick.
func (s *Scheduler) MarkProcessed(i int) {
	if i >= 0 && i < len(s.processed) {
		s.processed[i] = true
	}
}

// BeginTick clears the processed guard.
func (s *Scheduler) BeginTick() {
	for i := range s.processed {
		s.processed[i] = false
	}
}

// EndTick swaps the active and next sets and empties the new next set.
func (s *Scheduler) EndTick() {
	s.active, s.next = s.next, s.active[:0]
	for _, i := range s.active {
		s.inNext[i] = false
	}
}

// Reset empties both sets and all guards.
func (s *Scheduler) Reset() {
	s.active = s.active[:0]
	s.next = s.next[:0]
	for i := range s.inNext {
		s.inNext[i] = false
		s.processed[i] = false
	}
}
