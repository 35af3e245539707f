// Package table owns the per-table phase state machine. Every mutation
// of a Table goes through the Orchestrator under the table lock; the
// pure rules live in internal/game/rule.
package table

import (
	"sync"
	"time"

	"github.com/bonaken-game/bonaken/internal/game/card"
	"github.com/bonaken-game/bonaken/internal/game/rule"
)

// Phase is the table's position in the game state machine.
type Phase string

const (
	PhaseLobby          Phase = "lobby"
	PhaseDealing        Phase = "dealing"
	PhaseBidding        Phase = "bidding"
	PhaseCardSwap       Phase = "card-swap"
	PhaseTrumpSelection Phase = "trump-selection"
	PhasePlaying        Phase = "playing"
	PhaseRoundEnd       Phase = "round-end"
	PhaseGameEnd        Phase = "game-end"
)

// Seat is a stable position at a table. The volatile connection id never
// appears here; the Registry is the only place that maps connections to
// seats.
type Seat struct {
	ID       string
	Nickname string
	Hand     []card.Card
	Status   rule.Status

	TricksWon   int
	TrickPoints int
	MeldPoints  int
	HasPassed   bool
	FalseMeld   bool

	MeldDeclared    bool
	PlayedThisRound bool

	IsHost         bool
	Connected      bool
	DisconnectedAt time.Time
}

// TableCard is a dealt table card awaiting the bid winner.
type TableCard struct {
	Card   card.Card
	FaceUp bool
}

// Settings are the host-chosen table parameters.
type Settings struct {
	Name     string
	MaxSeats int
}

type timerKind int

const (
	timerNone timerKind = iota
	timerTurn
	timerTrickPause
	timerRoundPause
	timerRedealPause
)

// Table is the aggregate root: the single authoritative game instance.
type Table struct {
	mu sync.Mutex

	ID       string
	Name     string
	Phase    Phase
	Seats    []*Seat
	Settings Settings

	DealerID     string
	TurnSeatID   string
	Trump        card.Trump
	CurrentBid   *rule.Bid
	BidWinnerID  string
	BiddingOrder []string

	TableCards    []TableCard
	CurrentTrick  []rule.PlayedCard
	SleepingCards []card.Card
	PlayedCount   int // cards in resolved tricks this round

	RoundNumber     int
	TurnDeadline    time.Time // zero when no turn timer runs
	LastTrickWinner string
	RematchVotes    map[string]bool
	LastActivity    time.Time

	timerKind timerKind
	timerSeq  uint64
}

// SeatByID returns the seat with the given stable id, or nil.
func (t *Table) SeatByID(id string) *Seat {
	for _, s := range t.Seats {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SeatByNickname returns the seat with the given nickname, or nil.
// Nicknames are unique per table, compared case-insensitively at join.
func (t *Table) SeatByNickname(nickname string) *Seat {
	for _, s := range t.Seats {
		if s.Nickname == nickname {
			return s
		}
	}
	return nil
}

// ActiveSeats returns the seats still on the ladder, in seat order.
func (t *Table) ActiveSeats() []*Seat {
	var active []*Seat
	for _, s := range t.Seats {
		if !s.Status.Terminal() {
			active = append(active, s)
		}
	}
	return active
}

// NextActiveSeat returns the first non-terminal seat clockwise of the
// given seat.
func (t *Table) NextActiveSeat(seatID string) *Seat {
	idx := -1
	for i, s := range t.Seats {
		if s.ID == seatID {
			idx = i
			break
		}
	}
	for i := 1; i <= len(t.Seats); i++ {
		s := t.Seats[(idx+i)%len(t.Seats)]
		if !s.Status.Terminal() {
			return s
		}
	}
	return nil
}

// CardsInRound counts every card the round accounts for. Mid-round this
// must always equal 32: hands, table cards, sleeping cards, the open
// trick and all resolved tricks together conserve the deck.
func (t *Table) CardsInRound() int {
	n := len(t.TableCards) + len(t.SleepingCards) + len(t.CurrentTrick) + t.PlayedCount
	for _, s := range t.Seats {
		n += len(s.Hand)
	}
	return n
}

func (t *Table) bidders() []rule.Bidder {
	bidders := make([]rule.Bidder, len(t.Seats))
	for i, s := range t.Seats {
		bidders[i] = rule.Bidder{SeatID: s.ID, Status: s.Status}
	}
	return bidders
}

func (t *Table) passedSeats() map[string]bool {
	passed := make(map[string]bool)
	for _, s := range t.Seats {
		if s.HasPassed {
			passed[s.ID] = true
		}
	}
	return passed
}

// touch refreshes the inactivity clock.
func (t *Table) touch() {
	t.LastActivity = time.Now()
}
