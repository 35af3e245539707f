package table

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type firing struct {
	tableID string
	seq     uint64
}

func collectFirings() (*Scheduler, func() []firing) {
	var mu sync.Mutex
	var fired []firing
	s := NewScheduler(func(tableID string, seq uint64) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, firing{tableID, seq})
	})
	return s, func() []firing {
		mu.Lock()
		defer mu.Unlock()
		return append([]firing(nil), fired...)
	}
}

func TestScheduler_Fires(t *testing.T) {
	t.Parallel()

	s, fired := collectFirings()
	defer s.Stop()

	deadline, seq := s.Schedule("t1", 10*time.Millisecond)
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(fired()) == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, firing{"t1", seq}, fired()[0])

	// The task is consumed after firing.
	_, ok := s.Deadline("t1")
	assert.False(t, ok)
}

func TestScheduler_Cancel(t *testing.T) {
	t.Parallel()

	s, fired := collectFirings()
	defer s.Stop()

	s.Schedule("t1", 10*time.Millisecond)
	s.Cancel("t1")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, fired())
}

func TestScheduler_RescheduleSupersedes(t *testing.T) {
	t.Parallel()

	s, fired := collectFirings()
	defer s.Stop()

	_, first := s.Schedule("t1", 5*time.Millisecond)
	_, second := s.Schedule("t1", 20*time.Millisecond)
	assert.Greater(t, second, first)

	require.Eventually(t, func() bool {
		return len(fired()) == 1
	}, time.Second, time.Millisecond)

	// Only the second task fires; the first was replaced.
	assert.Equal(t, second, fired()[0].seq)
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, fired(), 1)
}

func TestScheduler_OneTaskPerTable(t *testing.T) {
	t.Parallel()

	s, fired := collectFirings()
	defer s.Stop()

	s.Schedule("t1", 10*time.Millisecond)
	s.Schedule("t2", 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(fired()) == 2
	}, time.Second, time.Millisecond)
}

func TestScheduler_Deadline(t *testing.T) {
	t.Parallel()

	s, _ := collectFirings()
	defer s.Stop()

	want, _ := s.Schedule("t1", time.Minute)
	got, ok := s.Deadline("t1")
	require.True(t, ok)
	assert.Equal(t, want, got)
}
