package table

import (
	"log"

	"github.com/bonaken-game/bonaken/internal/apperrors"
	"github.com/bonaken-game/bonaken/internal/game/card"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// dealRound shuffles, deals to every active seat and opens the auction.
// The first table card is dealt face up, the rest face down.
func (o *Orchestrator) dealRound(t *Table) error {
	active := t.ActiveSeats()
	res, err := card.Deal(len(active))
	if err != nil {
		return err
	}

	for _, s := range t.Seats {
		s.Hand = nil
		s.TricksWon = 0
		s.TrickPoints = 0
		s.MeldPoints = 0
		s.HasPassed = false
		s.FalseMeld = false
		s.MeldDeclared = false
		s.PlayedThisRound = false
	}
	for i, s := range active {
		s.Hand = res.Hands[i]
	}

	t.Phase = PhaseDealing
	t.Trump = card.NoTrump
	t.CurrentBid = nil
	t.BidWinnerID = ""
	t.CurrentTrick = nil
	t.PlayedCount = 0
	t.LastTrickWinner = ""
	t.SleepingCards = res.Sleeping
	t.TableCards = make([]TableCard, len(res.TableCards))
	for i, c := range res.TableCards {
		t.TableCards[i] = TableCard{Card: c, FaceUp: i == 0}
	}

	tableInfos := tableCardInfos(t.TableCards)
	for _, s := range active {
		o.sendSeat(t.ID, s.ID, protocol.MsgHandDealt, protocol.HandDealtPayload{
			Hand:       cardInfos(s.Hand),
			TableCards: tableInfos,
		})
	}
	log.Printf("🂠 Table %s round %d dealt to %d seats", t.ID, t.RoundNumber, len(active))

	o.startBidding(t)
	return nil
}

// startBidding opens the auction clockwise of the dealer.
func (o *Orchestrator) startBidding(t *Table) {
	t.Phase = PhaseBidding
	t.BiddingOrder = rule.BiddingOrder(t.bidders(), t.DealerID)
	t.TurnSeatID = t.BiddingOrder[0]

	o.broadcast(t.ID, protocol.MsgBiddingStarted, protocol.BiddingStartedPayload{
		BiddingOrder: t.BiddingOrder,
		FirstBidder:  t.TurnSeatID,
	})
	o.broadcastState(t)

	o.scheduleTurn(t)
	seat := t.SeatByID(t.TurnSeatID)
	o.broadcast(t.ID, protocol.MsgTurnStarted, o.turnPayload(t, seat))
}

// PlaceBid handles a bid from the seat on turn.
func (o *Orchestrator) PlaceBid(connID string, p *protocol.PlaceBidPayload) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseBidding {
			return apperrors.ErrWrongPhase
		}
		if t.TurnSeatID != seat.ID {
			return apperrors.ErrNotYourTurn
		}

		bidType, err := rule.ParseBidType(p.Type)
		if err != nil {
			return apperrors.ErrInvalidBid
		}
		bid := rule.Bid{SeatID: seat.ID, Type: bidType, Amount: p.Amount}
		if !rule.ValidateBid(bid, t.CurrentBid) {
			return apperrors.ErrInvalidBid
		}

		o.applyBid(t, seat, bid)
		return nil
	})
}

func (o *Orchestrator) applyBid(t *Table, seat *Seat, bid rule.Bid) {
	t.CurrentBid = &bid
	log.Printf("💰 %s bids %s %d on table %s", seat.Nickname, bid.Type, bid.Amount, t.ID)
	o.broadcast(t.ID, protocol.MsgBidPlaced, protocol.BidPlacedPayload{
		SeatID: seat.ID,
		Bid:    bidInfo(bid),
	})
	o.advanceBidding(t)
}

// PassBid handles a pass from the seat on turn.
func (o *Orchestrator) PassBid(connID string) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseBidding {
			return apperrors.ErrWrongPhase
		}
		if t.TurnSeatID != seat.ID {
			return apperrors.ErrNotYourTurn
		}
		o.applyPass(t, seat)
		return nil
	})
}

func (o *Orchestrator) applyPass(t *Table, seat *Seat) {
	seat.HasPassed = true
	o.broadcast(t.ID, protocol.MsgBidPassed, protocol.BidPassedPayload{SeatID: seat.ID})
	o.advanceBidding(t)
}

// advanceBidding hands the turn onward or closes the auction. A closed
// auction with a standing bid moves to the card swap; with no bid at all
// the hand is thrown in and redealt.
func (o *Orchestrator) advanceBidding(t *Table) {
	passed := t.passedSeats()
	complete, winnerID := rule.BiddingComplete(t.BiddingOrder, passed, t.CurrentBid)

	if !complete {
		next, _ := rule.NextBidder(t.BiddingOrder, t.TurnSeatID, passed)
		t.TurnSeatID = next
		o.scheduleTurn(t)
		o.broadcast(t.ID, protocol.MsgTurnStarted, o.turnPayload(t, t.SeatByID(next)))
		return
	}

	if winnerID == "" {
		log.Printf("🔄 Table %s: all passed, redealing", t.ID)
		t.TurnSeatID = ""
		o.broadcast(t.ID, protocol.MsgAllPassed, struct{}{})
		o.schedulePause(t, timerRedealPause, o.cfg.RedealPauseDuration())
		return
	}

	t.BidWinnerID = winnerID
	o.broadcast(t.ID, protocol.MsgBiddingComplete, protocol.BiddingCompletePayload{
		WinnerID: winnerID,
		Bid:      bidInfo(*t.CurrentBid),
	})
	o.startCardSwap(t)
}

// startCardSwap reveals the table cards to everyone and lets the bid
// winner exchange.
func (o *Orchestrator) startCardSwap(t *Table) {
	t.Phase = PhaseCardSwap
	t.TurnSeatID = t.BidWinnerID
	for i := range t.TableCards {
		t.TableCards[i].FaceUp = true
	}

	o.broadcast(t.ID, protocol.MsgCardSwapStarted, protocol.CardSwapStartedPayload{
		SeatID:     t.BidWinnerID,
		TableCards: tableCardInfos(t.TableCards),
	})

	o.scheduleTurn(t)
	if !t.TurnDeadline.IsZero() {
		o.broadcast(t.ID, protocol.MsgTimerUpdate, protocol.TimerUpdatePayload{
			Deadline: t.TurnDeadline.UnixMilli(),
		})
	}
}

// redeal rotates the dealer and deals again after a thrown-in hand.
func (o *Orchestrator) redeal(t *Table) {
	if next := t.NextActiveSeat(t.DealerID); next != nil {
		t.DealerID = next.ID
	}
	if err := o.dealRound(t); err != nil {
		log.Printf("⚠️ Table %s redeal failed: %v", t.ID, err)
	}
}
