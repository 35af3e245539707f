package table

import (
	"log"

	"github.com/bonaken-game/bonaken/internal/apperrors"
	"github.com/bonaken-game/bonaken/internal/game/card"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// SwapCards lets the bid winner absorb the table cards and discard the
// same number. Discards go to the sleeping cards and stay out of play.
func (o *Orchestrator) SwapCards(connID string, p *protocol.SwapCardsPayload) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseCardSwap {
			return apperrors.ErrWrongPhase
		}
		if t.TurnSeatID != seat.ID {
			return apperrors.ErrNotYourTurn
		}
		if len(p.DiscardCardIDs) != len(t.TableCards) {
			return apperrors.ErrInvalidSwap
		}

		discards := make([]card.Card, len(p.DiscardCardIDs))
		for i, id := range p.DiscardCardIDs {
			c, err := card.ParseID(id)
			if err != nil {
				return apperrors.ErrInvalidSwap
			}
			discards[i] = c
		}

		return o.applySwap(t, seat, discards)
	})
}

// applySwap merges the table cards into the hand and removes the
// discards. The discards must come out of the merged hand; duplicates
// or foreign cards reject the whole swap.
func (o *Orchestrator) applySwap(t *Table, seat *Seat, discards []card.Card) error {
	merged := make([]card.Card, 0, len(seat.Hand)+len(t.TableCards))
	merged = append(merged, seat.Hand...)
	for _, tc := range t.TableCards {
		merged = append(merged, tc.Card)
	}

	for _, d := range discards {
		var ok bool
		merged, ok = card.Remove(merged, d)
		if !ok {
			return apperrors.ErrInvalidSwap
		}
	}

	seat.Hand = merged
	t.SleepingCards = append(t.SleepingCards, discards...)
	t.TableCards = nil

	log.Printf("🔀 %s swapped %d cards on table %s", seat.Nickname, len(discards), t.ID)
	o.broadcast(t.ID, protocol.MsgCardsSwapped, protocol.CardsSwappedPayload{
		SeatID:       seat.ID,
		DiscardCount: len(discards),
	})
	o.sendSeat(t.ID, seat.ID, protocol.MsgHandDealt, protocol.HandDealtPayload{
		Hand: cardInfos(seat.Hand),
	})

	o.startTrumpSelection(t)
	return nil
}

// startTrumpSelection asks the bid winner for trump, or skips straight
// to play for a trumpless bid.
func (o *Orchestrator) startTrumpSelection(t *Table) {
	if t.CurrentBid != nil && t.CurrentBid.Type.Trumpless() {
		t.Trump = card.NoTrump
		o.startPlaying(t)
		return
	}

	t.Phase = PhaseTrumpSelection
	t.TurnSeatID = t.BidWinnerID
	o.broadcast(t.ID, protocol.MsgTrumpSelectionStart, protocol.TrumpSelectionStartedPayload{
		SeatID: t.BidWinnerID,
	})

	o.scheduleTurn(t)
	if !t.TurnDeadline.IsZero() {
		o.broadcast(t.ID, protocol.MsgTimerUpdate, protocol.TimerUpdatePayload{
			Deadline: t.TurnDeadline.UnixMilli(),
		})
	}
}

// SelectTrump fixes the trump suit for the round.
func (o *Orchestrator) SelectTrump(connID string, p *protocol.SelectTrumpPayload) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseTrumpSelection {
			return apperrors.ErrWrongPhase
		}
		if t.TurnSeatID != seat.ID {
			return apperrors.ErrNotYourTurn
		}

		suit, err := card.ParseSuit(p.Suit)
		if err != nil {
			return apperrors.ErrInvalidSuit
		}
		o.applyTrump(t, suit)
		return nil
	})
}

func (o *Orchestrator) applyTrump(t *Table, suit card.Suit) {
	t.Trump = card.TrumpSuit(suit)
	log.Printf("👑 Trump on table %s: %s", t.ID, suit)
	o.broadcast(t.ID, protocol.MsgTrumpSelected, protocol.TrumpSelectedPayload{
		Trump: suit.String(),
	})
	o.startPlaying(t)
}

// startPlaying opens trick play with the seat clockwise of the dealer.
func (o *Orchestrator) startPlaying(t *Table) {
	t.Phase = PhasePlaying
	leader := t.NextActiveSeat(t.DealerID)
	o.startTurn(t, leader)
}

// startTurn hands the turn to a seat and broadcasts its legal cards.
func (o *Orchestrator) startTurn(t *Table, seat *Seat) {
	t.TurnSeatID = seat.ID
	o.scheduleTurn(t)
	o.broadcast(t.ID, protocol.MsgTurnStarted, o.turnPayload(t, seat))
}

// DeclareMeld verifies a meld declaration against the true hand. A
// declaration is accepted once per round and only before the seat has
// played its first card. A false declaration voids the seat's meld
// points and forfeits its round.
func (o *Orchestrator) DeclareMeld(connID string, p *protocol.DeclareMeldPayload) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhasePlaying {
			return apperrors.ErrWrongPhase
		}
		if seat.Status.Terminal() {
			return apperrors.ErrWrongPhase
		}
		if seat.MeldDeclared || seat.PlayedThisRound {
			return apperrors.ErrWrongPhase
		}

		declared := make([]rule.Meld, len(p.Melds))
		for i, m := range p.Melds {
			meld := rule.Meld{Type: rule.MeldType(m.Type)}
			meld.Points = meld.Type.Points()
			for _, ci := range m.Cards {
				c, err := card.ParseID(ci.ID)
				if err != nil {
					return apperrors.ErrFalseMeld
				}
				meld.Cards = append(meld.Cards, c)
			}
			declared[i] = meld
		}

		seat.MeldDeclared = true
		if !rule.ValidateMelds(declared, seat.Hand, t.Trump) {
			seat.FalseMeld = true
			seat.MeldPoints = 0
			log.Printf("❌ %s declared a false meld on table %s", seat.Nickname, t.ID)
			return apperrors.ErrFalseMeld
		}

		seat.MeldPoints = rule.TotalMeldPoints(declared)
		log.Printf("✨ %s melds %d points on table %s", seat.Nickname, seat.MeldPoints, t.ID)
		o.broadcast(t.ID, protocol.MsgMeldDeclared, protocol.MeldDeclaredPayload{
			SeatID: seat.ID,
			Melds:  meldInfos(declared),
			Points: seat.MeldPoints,
		})
		return nil
	})
}

// PlayCard plays one card for the seat on turn.
func (o *Orchestrator) PlayCard(connID string, p *protocol.PlayCardPayload) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhasePlaying {
			return apperrors.ErrWrongPhase
		}
		if t.TurnSeatID != seat.ID {
			return apperrors.ErrNotYourTurn
		}

		c, err := card.ParseID(p.CardID)
		if err != nil {
			return apperrors.ErrCardNotInHand
		}
		if !card.Contains(seat.Hand, c) {
			return apperrors.ErrCardNotInHand
		}
		if !rule.IsLegalCard(c, seat.Hand, t.CurrentTrick, t.Trump) {
			return apperrors.ErrIllegalCard
		}

		o.applyPlay(t, seat, c)
		return nil
	})
}

// applyPlay commits a legal card to the trick and advances the turn. A
// full trick is resolved immediately; the cleared board follows after
// the display pause.
func (o *Orchestrator) applyPlay(t *Table, seat *Seat, c card.Card) {
	seat.Hand, _ = card.Remove(seat.Hand, c)
	seat.PlayedThisRound = true
	t.CurrentTrick = append(t.CurrentTrick, rule.PlayedCard{SeatID: seat.ID, Card: c})

	o.broadcast(t.ID, protocol.MsgCardPlayed, protocol.CardPlayedPayload{
		SeatID: seat.ID,
		Card:   cardInfo(c),
	})

	if len(t.CurrentTrick) < len(t.ActiveSeats()) {
		o.startTurn(t, t.NextActiveSeat(seat.ID))
		return
	}

	winner, points, err := rule.ResolveTrick(t.CurrentTrick, t.Trump)
	if err != nil {
		log.Printf("⚠️ Table %s trick resolution failed: %v", t.ID, err)
		return
	}

	winnerSeat := t.SeatByID(winner.SeatID)
	winnerSeat.TricksWon++
	winnerSeat.TrickPoints += points
	t.LastTrickWinner = winnerSeat.ID
	t.TurnSeatID = ""

	tricksWon := make(map[string]int, len(t.Seats))
	trickPoints := make(map[string]int, len(t.Seats))
	for _, s := range t.Seats {
		tricksWon[s.ID] = s.TricksWon
		trickPoints[s.ID] = s.TrickPoints
	}

	log.Printf("🏆 %s takes the trick (%d points) on table %s", winnerSeat.Nickname, points, t.ID)
	o.broadcast(t.ID, protocol.MsgTrickComplete, protocol.TrickCompletePayload{
		WinnerID:    winnerSeat.ID,
		Points:      points,
		TricksWon:   tricksWon,
		TrickPoints: trickPoints,
	})

	o.schedulePause(t, timerTrickPause, o.cfg.TrickPauseDuration())
}

// finishTrick clears the resolved trick after its display pause and
// either opens the next trick or closes the round.
func (o *Orchestrator) finishTrick(t *Table) {
	t.PlayedCount += len(t.CurrentTrick)
	t.CurrentTrick = nil
	o.broadcast(t.ID, protocol.MsgTrickCleared, struct{}{})

	for _, s := range t.ActiveSeats() {
		if len(s.Hand) > 0 {
			o.startTurn(t, t.SeatByID(t.LastTrickWinner))
			return
		}
	}
	o.finishRound(t)
}
