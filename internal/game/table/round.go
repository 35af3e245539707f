package table

import (
	"context"
	"log"
	"time"

	"github.com/bonaken-game/bonaken/internal/apperrors"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// finishRound scores the finished round, applies the ladder transitions
// and either schedules the next round or ends the game.
func (o *Orchestrator) finishRound(t *Table) {
	t.Phase = PhaseRoundEnd
	t.TurnSeatID = ""
	o.sched.Cancel(t.ID)

	scores := make([]rule.SeatScore, len(t.Seats))
	for i, s := range t.Seats {
		scores[i] = rule.SeatScore{
			SeatID:      s.ID,
			Status:      s.Status,
			TricksWon:   s.TricksWon,
			TrickPoints: s.TrickPoints,
			MeldPoints:  s.MeldPoints,
			FalseMeld:   s.FalseMeld,
		}
	}

	result, err := rule.ScoreRound(scores, *t.CurrentBid, t.BidWinnerID)
	if err != nil {
		log.Printf("⚠️ Table %s scoring failed: %v", t.ID, err)
		return
	}

	payload := protocol.RoundResultPayload{
		BidWinnerID: result.BidWinnerID,
		Bid:         bidInfo(result.Bid),
		Achieved:    result.Achieved,
		Seats:       make(map[string]protocol.SeatResult, len(result.Seats)),
	}
	for _, s := range t.Seats {
		outcome := result.Seats[s.ID]
		s.Status = outcome.NewStatus
		payload.Seats[s.ID] = protocol.SeatResult{
			Won:         outcome.Won,
			OldStatus:   string(outcome.OldStatus),
			NewStatus:   string(outcome.NewStatus),
			TrickPoints: outcome.TrickPoints,
			MeldPoints:  outcome.MeldPoints,
		}
	}

	log.Printf("📊 Table %s round %d: bid %d by %s, achieved=%v",
		t.ID, t.RoundNumber, result.Bid.Amount, result.BidWinnerID, result.Achieved)
	o.broadcast(t.ID, protocol.MsgRoundResult, payload)

	statuses := make([]rule.Status, len(t.Seats))
	for i, s := range t.Seats {
		statuses[i] = s.Status
	}
	if rule.GameComplete(statuses) {
		o.endGame(t)
		return
	}

	o.schedulePause(t, timerRoundPause, o.cfg.RoundPauseDuration())
}

// startNextRound rotates the dealer past eliminated seats and deals.
func (o *Orchestrator) startNextRound(t *Table) {
	if next := t.NextActiveSeat(t.DealerID); next != nil {
		t.DealerID = next.ID
	}
	t.RoundNumber++
	if err := o.dealRound(t); err != nil {
		log.Printf("⚠️ Table %s deal failed: %v", t.ID, err)
	}
}

// endGame closes the table and records each player's final status.
func (o *Orchestrator) endGame(t *Table) {
	t.Phase = PhaseGameEnd
	t.RematchVotes = make(map[string]bool)
	o.sched.Cancel(t.ID)

	final := make(map[string]string, len(t.Seats))
	for _, s := range t.Seats {
		final[s.ID] = string(s.Status)
	}
	log.Printf("🏁 Table %s game over after %d rounds", t.ID, t.RoundNumber)
	o.broadcast(t.ID, protocol.MsgGameEnded, protocol.GameEndedPayload{FinalStatus: final})

	if o.stats == nil {
		return
	}
	results := make(map[string]rule.Status, len(t.Seats))
	for _, s := range t.Seats {
		results[s.Nickname] = s.Status
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for nickname, status := range results {
			if err := o.stats.RecordResult(ctx, nickname, status); err != nil {
				log.Printf("⚠️ Recording result for %s failed: %v", nickname, err)
			}
		}
	}()
}

// RequestRematch registers a rematch vote. When every seat has voted the
// ladder resets and a fresh game starts at the same table.
func (o *Orchestrator) RequestRematch(connID string) error {
	return o.withSeat(connID, func(t *Table, seat *Seat) error {
		if t.Phase != PhaseGameEnd {
			return apperrors.ErrWrongPhase
		}
		if t.RematchVotes[seat.ID] {
			return nil
		}

		t.RematchVotes[seat.ID] = true
		o.broadcast(t.ID, protocol.MsgRematchRequested, protocol.RematchRequestedPayload{
			SeatID:   seat.ID,
			Nickname: seat.Nickname,
			Votes:    len(t.RematchVotes),
			Needed:   len(t.Seats),
		})

		if len(t.RematchVotes) < len(t.Seats) {
			return nil
		}

		for _, s := range t.Seats {
			s.Status = rule.StatusSuf
		}
		t.RematchVotes = make(map[string]bool)
		if next := t.NextActiveSeat(t.DealerID); next != nil {
			t.DealerID = next.ID
		}
		t.RoundNumber = 1

		log.Printf("🔁 Table %s rematch starting", t.ID)
		o.broadcast(t.ID, protocol.MsgRematchStarted, struct{}{})
		return o.dealRound(t)
	})
}
