package table

import (
	"log"
	"math/rand"

	"github.com/bonaken-game/bonaken/internal/game/card"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// Automatic actions taken when a turn timer expires.
const (
	autoPass    = "auto-pass"
	autoDiscard = "auto-discard"
	autoTrump   = "auto-trump"
	autoPlay    = "auto-play"
)

// handleTurnTimeout acts for the seat that let its turn expire. The
// fallback is always a legal move, so a table full of absent players
// still plays itself to completion.
func (o *Orchestrator) handleTurnTimeout(t *Table) {
	seat := t.SeatByID(t.TurnSeatID)
	if seat == nil {
		return
	}

	switch t.Phase {
	case PhaseBidding:
		log.Printf("⏰ %s timed out bidding on table %s", seat.Nickname, t.ID)
		o.broadcast(t.ID, protocol.MsgTimerExpired, protocol.TimerExpiredPayload{
			SeatID:     seat.ID,
			AutoAction: autoPass,
		})
		o.applyPass(t, seat)

	case PhaseCardSwap:
		// Keep the original hand: discard as many cards off its front
		// as there are table cards.
		n := len(t.TableCards)
		discards := make([]card.Card, n)
		copy(discards, seat.Hand[:n])

		log.Printf("⏰ %s timed out swapping on table %s", seat.Nickname, t.ID)
		o.broadcast(t.ID, protocol.MsgTimerExpired, protocol.TimerExpiredPayload{
			SeatID:     seat.ID,
			AutoAction: autoDiscard,
		})
		if err := o.applySwap(t, seat, discards); err != nil {
			log.Printf("⚠️ Auto swap failed on table %s: %v", t.ID, err)
		}

	case PhaseTrumpSelection:
		suit := card.Suits[rand.Intn(len(card.Suits))]
		log.Printf("⏰ %s timed out selecting trump on table %s", seat.Nickname, t.ID)
		o.broadcast(t.ID, protocol.MsgTimerExpired, protocol.TimerExpiredPayload{
			SeatID:     seat.ID,
			AutoAction: autoTrump,
		})
		o.applyTrump(t, suit)

	case PhasePlaying:
		legal := rule.LegalCards(seat.Hand, t.CurrentTrick, t.Trump)
		if len(legal) == 0 {
			return
		}
		c := legal[rand.Intn(len(legal))]

		log.Printf("⏰ %s timed out playing on table %s", seat.Nickname, t.ID)
		o.broadcast(t.ID, protocol.MsgTimerExpired, protocol.TimerExpiredPayload{
			SeatID:     seat.ID,
			AutoAction: autoPlay,
		})
		o.applyPlay(t, seat, c)
	}
}
