package table

import (
	"sync"
	"time"
)

// Scheduler runs at most one pending task per table. Scheduling replaces
// the previous task; the sequence number lets the owner of the table
// state tell a live firing from a superseded one, since a timer callback
// can race the Cancel that tried to stop it.
type Scheduler struct {
	mu    sync.Mutex
	fire  func(tableID string, seq uint64)
	tasks map[string]*task
	seq   uint64
}

type task struct {
	timer    *time.Timer
	seq      uint64
	deadline time.Time
}

// NewScheduler returns a scheduler that invokes fire when a task is due.
func NewScheduler(fire func(tableID string, seq uint64)) *Scheduler {
	return &Scheduler{
		fire:  fire,
		tasks: make(map[string]*task),
	}
}

// Schedule arms the table's task for d from now, cancelling any pending
// one, and returns the deadline with the task's sequence number.
func (s *Scheduler) Schedule(tableID string, d time.Duration) (time.Time, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.tasks[tableID]; ok {
		prev.timer.Stop()
	}

	s.seq++
	seq := s.seq
	deadline := time.Now().Add(d)
	s.tasks[tableID] = &task{
		seq:      seq,
		deadline: deadline,
		timer: time.AfterFunc(d, func() {
			s.expire(tableID, seq)
		}),
	}
	return deadline, seq
}

func (s *Scheduler) expire(tableID string, seq uint64) {
	s.mu.Lock()
	cur, ok := s.tasks[tableID]
	if !ok || cur.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.tasks, tableID)
	s.mu.Unlock()

	s.fire(tableID, seq)
}

// Cancel stops the table's pending task, if any.
func (s *Scheduler) Cancel(tableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[tableID]; ok {
		t.timer.Stop()
		delete(s.tasks, tableID)
	}
}

// Deadline reports when the table's pending task fires.
func (s *Scheduler) Deadline(tableID string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[tableID]; ok {
		return t.deadline, true
	}
	return time.Time{}, false
}

// Stop cancels every pending task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, id)
	}
}
