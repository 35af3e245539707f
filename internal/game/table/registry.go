package table

import "sync"

// ConnRef locates the seat a connection is bound to.
type ConnRef struct {
	TableID string
	SeatID  string
}

// Registry is the identity directory: it owns the table set and the
// bidirectional mapping between volatile connection ids and stable seat
// ids. Tables never reference connection ids themselves, so a reconnect
// is a pure rebind here.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
	conns  map[string]ConnRef           // connID -> seat
	seats  map[string]map[string]string // tableID -> seatID -> connID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[string]*Table),
		conns:  make(map[string]ConnRef),
		seats:  make(map[string]map[string]string),
	}
}

// AddTable registers a new table.
func (r *Registry) AddTable(t *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.ID] = t
	r.seats[t.ID] = make(map[string]string)
}

// Table looks a table up by id.
func (r *Registry) Table(id string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[id]
	return t, ok
}

// RemoveTable drops a table and every connection bound to it. It returns
// the connection ids that were bound so the caller can close them.
func (r *Registry) RemoveTable(id string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var conns []string
	for _, connID := range r.seats[id] {
		delete(r.conns, connID)
		conns = append(conns, connID)
	}
	delete(r.seats, id)
	delete(r.tables, id)
	return conns
}

// Bind attaches a connection to a seat. Any previous binding of the
// connection is replaced.
func (r *Registry) Bind(connID, tableID, seatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindLocked(connID, tableID, seatID)
}

func (r *Registry) bindLocked(connID, tableID, seatID string) {
	if prev, ok := r.conns[connID]; ok {
		if byID, ok := r.seats[prev.TableID]; ok && byID[prev.SeatID] == connID {
			delete(byID, prev.SeatID)
		}
	}
	r.conns[connID] = ConnRef{TableID: tableID, SeatID: seatID}
	if _, ok := r.seats[tableID]; !ok {
		r.seats[tableID] = make(map[string]string)
	}
	r.seats[tableID][seatID] = connID
}

// Rebind points a seat at a fresh connection, displacing any stale one.
// The displaced connection id is returned so the caller can close it.
func (r *Registry) Rebind(connID, tableID, seatID string) (stale string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if byID, ok := r.seats[tableID]; ok {
		if old, ok := byID[seatID]; ok && old != connID {
			delete(r.conns, old)
			stale = old
		}
	}
	r.bindLocked(connID, tableID, seatID)
	return stale
}

// Unbind detaches a connection, returning the seat it was bound to.
func (r *Registry) Unbind(connID string) (ConnRef, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.conns[connID]
	if !ok {
		return ConnRef{}, false
	}
	delete(r.conns, connID)
	if byID, ok := r.seats[ref.TableID]; ok && byID[ref.SeatID] == connID {
		delete(byID, ref.SeatID)
	}
	return ref, true
}

// Resolve maps a connection id to its seat.
func (r *Registry) Resolve(connID string) (ConnRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.conns[connID]
	return ref, ok
}

// ConnForSeat maps a seat back to its live connection id, if any.
func (r *Registry) ConnForSeat(tableID, seatID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connID, ok := r.seats[tableID][seatID]
	return connID, ok
}

// Tables returns a snapshot of the current table set.
func (r *Registry) Tables() []*Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tables := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		tables = append(tables, t)
	}
	return tables
}

// Count returns the number of live tables.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
