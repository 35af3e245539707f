package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BindResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AddTable(&Table{ID: "t1"})
	r.Bind("conn1", "t1", "seat1")

	ref, ok := r.Resolve("conn1")
	require.True(t, ok)
	assert.Equal(t, ConnRef{TableID: "t1", SeatID: "seat1"}, ref)

	connID, ok := r.ConnForSeat("t1", "seat1")
	require.True(t, ok)
	assert.Equal(t, "conn1", connID)

	_, ok = r.Resolve("unknown")
	assert.False(t, ok)
}

func TestRegistry_Rebind(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AddTable(&Table{ID: "t1"})
	r.Bind("conn1", "t1", "seat1")

	// A fresh connection takes over the seat; the old one is displaced.
	stale := r.Rebind("conn2", "t1", "seat1")
	assert.Equal(t, "conn1", stale)

	_, ok := r.Resolve("conn1")
	assert.False(t, ok)

	connID, ok := r.ConnForSeat("t1", "seat1")
	require.True(t, ok)
	assert.Equal(t, "conn2", connID)
}

func TestRegistry_Unbind(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AddTable(&Table{ID: "t1"})
	r.Bind("conn1", "t1", "seat1")

	ref, ok := r.Unbind("conn1")
	require.True(t, ok)
	assert.Equal(t, "seat1", ref.SeatID)

	// The seat keeps existing; only the connection mapping is gone.
	_, ok = r.ConnForSeat("t1", "seat1")
	assert.False(t, ok)

	_, ok = r.Unbind("conn1")
	assert.False(t, ok)
}

func TestRegistry_RemoveTable(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.AddTable(&Table{ID: "t1"})
	r.Bind("conn1", "t1", "seat1")
	r.Bind("conn2", "t1", "seat2")

	conns := r.RemoveTable("t1")
	assert.ElementsMatch(t, []string{"conn1", "conn2"}, conns)
	assert.Equal(t, 0, r.Count())

	_, ok := r.Resolve("conn1")
	assert.False(t, ok)
	_, ok = r.Table("t1")
	assert.False(t, ok)
}
