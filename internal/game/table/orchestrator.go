package table

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bonaken-game/bonaken/internal/apperrors"
	"github.com/bonaken-game/bonaken/internal/config"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// Orchestrator drives every table through the game phases. All actions
// are keyed by connection id, resolved to a seat through the Registry,
// and executed under the table lock. Timers fire back into the same
// lock, so a table only ever has one writer at a time.
type Orchestrator struct {
	registry *Registry
	notifier Notifier
	cfg      *config.GameConfig
	sched    *Scheduler
	stats    StatsRecorder // nil when stats are disabled
}

// New wires an orchestrator to its registry and transport.
func New(registry *Registry, notifier Notifier, cfg *config.GameConfig, stats StatsRecorder) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		notifier: notifier,
		cfg:      cfg,
		stats:    stats,
	}
	o.sched = NewScheduler(o.onTimer)
	return o
}

// Registry exposes the identity directory to the transport layer.
func (o *Orchestrator) Registry() *Registry { return o.registry }

// SeatNickname resolves a connection to the nickname of its seat.
func (o *Orchestrator) SeatNickname(connID string) (string, error) {
	var nickname string
	err := o.withSeat(connID, func(_ *Table, seat *Seat) error {
		nickname = seat.Nickname
		return nil
	})
	return nickname, err
}

// Stop cancels every pending timer.
func (o *Orchestrator) Stop() { o.sched.Stop() }

func (o *Orchestrator) broadcast(tableID string, msgType protocol.MessageType, payload any) {
	o.notifier.Broadcast(tableID, protocol.MustNewMessage(msgType, payload))
}

func (o *Orchestrator) sendSeat(tableID, seatID string, msgType protocol.MessageType, payload any) {
	o.notifier.SendSeat(tableID, seatID, protocol.MustNewMessage(msgType, payload))
}

// broadcastState sends every seat its own private snapshot.
func (o *Orchestrator) broadcastState(t *Table) {
	for _, s := range t.Seats {
		o.sendSeat(t.ID, s.ID, protocol.MsgTableState, t.snapshotFor(s.ID))
	}
}

// withSeat resolves a connection to its table and seat and runs fn under
// the table lock.
func (o *Orchestrator) withSeat(connID string, fn func(t *Table, seat *Seat) error) error {
	ref, ok := o.registry.Resolve(connID)
	if !ok {
		return apperrors.ErrNotInTable
	}
	t, ok := o.registry.Table(ref.TableID)
	if !ok {
		return apperrors.ErrTableNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seat := t.SeatByID(ref.SeatID)
	if seat == nil {
		return apperrors.ErrStaleConnection
	}
	t.touch()
	return fn(t, seat)
}

// --- Lobby ---

// CreateTable opens a table and seats the creator as host.
func (o *Orchestrator) CreateTable(connID string, p *protocol.CreateTablePayload) error {
	nickname := strings.TrimSpace(p.Nickname)
	if nickname == "" {
		return apperrors.ErrInvalidMessage("nickname is required")
	}
	maxSeats := p.MaxSeats
	if maxSeats == 0 {
		maxSeats = 5
	}
	if maxSeats < 2 || maxSeats > 5 {
		return apperrors.ErrInvalidMessage("a table seats 2 to 5 players")
	}

	name := strings.TrimSpace(p.TableName)
	if name == "" {
		name = nickname + "'s table"
	}

	host := &Seat{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Status:    rule.StatusSuf,
		IsHost:    true,
		Connected: true,
	}
	t := &Table{
		ID:           uuid.NewString()[:8],
		Name:         name,
		Phase:        PhaseLobby,
		Seats:        []*Seat{host},
		Settings:     Settings{Name: name, MaxSeats: maxSeats},
		DealerID:     host.ID,
		RematchVotes: make(map[string]bool),
		LastActivity: time.Now(),
	}

	o.registry.AddTable(t)
	o.registry.Bind(connID, t.ID, host.ID)
	log.Printf("🃏 Table %s created by %s (max %d seats)", t.ID, nickname, maxSeats)

	o.sendSeat(t.ID, host.ID, protocol.MsgTableCreated, protocol.TableCreatedPayload{
		TableID: t.ID,
		SeatID:  host.ID,
	})

	t.mu.Lock()
	defer t.mu.Unlock()
	o.broadcastState(t)
	return nil
}

// JoinTable seats a player at an open table.
func (o *Orchestrator) JoinTable(connID string, p *protocol.JoinTablePayload) error {
	nickname := strings.TrimSpace(p.Nickname)
	if nickname == "" {
		return apperrors.ErrInvalidMessage("nickname is required")
	}

	t, ok := o.registry.Table(p.TableID)
	if !ok {
		return apperrors.ErrTableNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.Phase != PhaseLobby {
		return apperrors.ErrGameStarted
	}
	if len(t.Seats) >= t.Settings.MaxSeats {
		return apperrors.ErrTableFull
	}
	for _, s := range t.Seats {
		if strings.EqualFold(s.Nickname, nickname) {
			return apperrors.ErrNicknameTaken
		}
	}

	seat := &Seat{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Status:    rule.StatusSuf,
		Connected: true,
	}
	t.Seats = append(t.Seats, seat)
	t.touch()
	o.registry.Bind(connID, t.ID, seat.ID)
	log.Printf("👤 %s joined table %s (%d/%d)", nickname, t.ID, len(t.Seats), t.Settings.MaxSeats)

	o.sendSeat(t.ID, seat.ID, protocol.MsgTableCreated, protocol.TableCreatedPayload{
		TableID: t.ID,
		SeatID:  seat.ID,
	})
	o.broadcastState(t)
	return nil
}

// StartTable begins the first round. Host only, two seats minimum.
func (o *Orchestrator) StartTable(connID string) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseLobby {
			return apperrors.ErrGameStarted
		}
		if !seat.IsHost {
			return apperrors.ErrNotHost
		}
		if len(t.Seats) < 2 {
			return apperrors.ErrTooFewSeats
		}

		t.RoundNumber = 1
		log.Printf("🚀 Table %s starting with %d seats", t.ID, len(t.Seats))
		return o.dealRound(t)
	})
}

// --- Connection lifecycle ---

// Disconnect handles a dropped connection. The seat stays: mid-game the
// timers keep the table moving and the player may reconnect; in the
// lobby the janitor reclaims the seat after the disconnect grace.
func (o *Orchestrator) Disconnect(connID string) {
	ref, ok := o.registry.Unbind(connID)
	if !ok {
		return
	}
	t, ok := o.registry.Table(ref.TableID)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seat := t.SeatByID(ref.SeatID)
	if seat == nil {
		return
	}

	seat.Connected = false
	seat.DisconnectedAt = time.Now()
	log.Printf("🔌 %s disconnected from table %s", seat.Nickname, t.ID)
	o.broadcast(t.ID, protocol.MsgSeatDisconnected, protocol.SeatConnectionPayload{
		SeatID:   seat.ID,
		Nickname: seat.Nickname,
	})
}

// removeSeatLocked drops a lobby seat, migrating host if needed and
// reclaiming the table when it empties.
func (o *Orchestrator) removeSeatLocked(t *Table, seat *Seat) {
	for i, s := range t.Seats {
		if s.ID == seat.ID {
			t.Seats = append(t.Seats[:i], t.Seats[i+1:]...)
			break
		}
	}
	log.Printf("🚪 %s left table %s", seat.Nickname, t.ID)

	if len(t.Seats) == 0 {
		o.sched.Cancel(t.ID)
		o.registry.RemoveTable(t.ID)
		log.Printf("🧹 Table %s removed (empty)", t.ID)
		return
	}

	if seat.IsHost {
		t.Seats[0].IsHost = true
		t.DealerID = t.Seats[0].ID
	}
	o.broadcastState(t)
}

// Reconnect rebinds a disconnected seat to a fresh connection. The seat
// keeps its hand, its turn and its original deadline: a reconnect never
// resets a running timer.
func (o *Orchestrator) Reconnect(connID string, p *protocol.ReconnectPayload) error {
	t, ok := o.registry.Table(p.TableID)
	if !ok {
		return apperrors.ErrTableNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seat := t.SeatByNickname(strings.TrimSpace(p.Nickname))
	if seat == nil {
		return apperrors.ErrNotInTable
	}
	if seat.Connected {
		if _, live := o.registry.ConnForSeat(t.ID, seat.ID); live {
			return apperrors.ErrNicknameTaken
		}
	}

	o.registry.Rebind(connID, t.ID, seat.ID)
	seat.Connected = true
	seat.DisconnectedAt = time.Time{}
	t.touch()
	log.Printf("🔁 %s reconnected to table %s", seat.Nickname, t.ID)

	o.broadcast(t.ID, protocol.MsgSeatReconnected, protocol.SeatConnectionPayload{
		SeatID:   seat.ID,
		Nickname: seat.Nickname,
	})
	o.sendSeat(t.ID, seat.ID, protocol.MsgTableState, t.snapshotFor(seat.ID))

	// Re-issue the turn prompt with the original deadline.
	if t.TurnSeatID == seat.ID {
		switch t.Phase {
		case PhaseBidding, PhaseCardSwap, PhaseTrumpSelection, PhasePlaying:
			o.sendSeat(t.ID, seat.ID, protocol.MsgTurnStarted, o.turnPayload(t, seat))
		}
	}
	return nil
}

// turnPayload builds the turn prompt for the seat currently on turn.
func (o *Orchestrator) turnPayload(t *Table, seat *Seat) protocol.TurnStartedPayload {
	p := protocol.TurnStartedPayload{SeatID: seat.ID}
	if t.Phase == PhasePlaying {
		p.LegalCardIDs = rule.LegalCardIDs(seat.Hand, t.CurrentTrick, t.Trump)
	}
	if !t.TurnDeadline.IsZero() {
		p.Deadline = t.TurnDeadline.UnixMilli()
	}
	return p
}

// --- Timers ---

// scheduleTurn arms the turn timer for the seat on turn. With timers
// disabled the table waits indefinitely for the player.
func (o *Orchestrator) scheduleTurn(t *Table) {
	d := o.cfg.TurnTimeoutDuration()
	if d <= 0 {
		o.sched.Cancel(t.ID)
		t.timerKind = timerNone
		t.TurnDeadline = time.Time{}
		return
	}
	deadline, seq := o.sched.Schedule(t.ID, d)
	t.timerKind = timerTurn
	t.timerSeq = seq
	t.TurnDeadline = deadline
}

// schedulePause arms a phase transition pause.
func (o *Orchestrator) schedulePause(t *Table, kind timerKind, d time.Duration) {
	if d <= 0 {
		d = time.Millisecond
	}
	_, seq := o.sched.Schedule(t.ID, d)
	t.timerKind = kind
	t.timerSeq = seq
	t.TurnDeadline = time.Time{}
}

// onTimer is the scheduler callback. It re-fetches the table, takes the
// lock, and verifies the firing against the table's current sequence
// number: a stale firing that lost the race to a player action is a
// no-op.
func (o *Orchestrator) onTimer(tableID string, seq uint64) {
	t, ok := o.registry.Table(tableID)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timerSeq != seq || t.timerKind == timerNone {
		return
	}
	kind := t.timerKind
	t.timerKind = timerNone
	t.TurnDeadline = time.Time{}

	switch kind {
	case timerTurn:
		o.handleTurnTimeout(t)
	case timerTrickPause:
		o.finishTrick(t)
	case timerRoundPause:
		o.startNextRound(t)
	case timerRedealPause:
		o.redeal(t)
	}
}

// --- Janitor ---

// Sweep reclaims idle tables and drops lobby seats whose player has been
// offline past the disconnect grace. It returns the number of tables
// removed.
func (o *Orchestrator) Sweep(now time.Time) int {
	removed := 0
	for _, t := range o.registry.Tables() {
		t.mu.Lock()

		if now.Sub(t.LastActivity) > o.cfg.TableInactivityDuration() {
			o.sched.Cancel(t.ID)
			o.registry.RemoveTable(t.ID)
			log.Printf("🧹 Table %s reclaimed after inactivity", t.ID)
			removed++
			t.mu.Unlock()
			continue
		}

		if t.Phase == PhaseLobby {
			grace := o.cfg.DisconnectGraceDuration()
			var expired []*Seat
			for _, s := range t.Seats {
				if !s.Connected && !s.DisconnectedAt.IsZero() && now.Sub(s.DisconnectedAt) > grace {
					expired = append(expired, s)
				}
			}
			for _, s := range expired {
				o.removeSeatLocked(t, s)
			}
		}
		t.mu.Unlock()
	}
	return removed
}

// RunJanitor sweeps periodically until the context is cancelled.
func (o *Orchestrator) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(o.cfg.SweepIntervalDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			o.Sweep(now)
		}
	}
}
