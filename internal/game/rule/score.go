package rule

import "fmt"

// Status is a seat's position on the six-stage elimination ladder.
type Status string

const (
	StatusSuf   Status = "suf"   // starting position
	StatusKrom  Status = "krom"  // one loss down
	StatusRecht Status = "recht" // one win up
	StatusWip   Status = "wip"   // on the tipping point
	StatusErin  Status = "erin"  // eliminated, buys the round
	StatusEruit Status = "eruit" // escaped, safe
)

// Terminal reports whether the status is absorbing: the seat no longer
// bids or plays until a rematch resets the ladder.
func (s Status) Terminal() bool {
	return s == StatusErin || s == StatusEruit
}

// AdvanceStatus is the ladder transition. It is a pure function of the
// old status and the round outcome, and idempotent on terminal states.
//
//	suf   win→ recht   lose→ krom
//	krom  win→ wip     lose→ erin
//	recht win→ eruit   lose→ wip
//	wip   win→ eruit   lose→ erin
func AdvanceStatus(s Status, won bool) Status {
	switch s {
	case StatusSuf:
		if won {
			return StatusRecht
		}
		return StatusKrom
	case StatusKrom:
		if won {
			return StatusWip
		}
		return StatusErin
	case StatusRecht:
		if won {
			return StatusEruit
		}
		return StatusWip
	case StatusWip:
		if won {
			return StatusEruit
		}
		return StatusErin
	}
	return s
}

// SeatScore is a seat's round tally fed into scoring. MeldPoints must
// already be zeroed for a seat caught on a false meld.
type SeatScore struct {
	SeatID      string
	Status      Status
	TricksWon   int
	TrickPoints int
	MeldPoints  int
	FalseMeld   bool
}

// SeatOutcome is one seat's line of a round result.
type SeatOutcome struct {
	Won         bool
	OldStatus   Status
	NewStatus   Status
	TrickPoints int
	MeldPoints  int
}

// RoundResult is the outcome of a finished round.
type RoundResult struct {
	BidWinnerID string
	Bid         Bid
	Achieved    bool
	Seats       map[string]SeatOutcome
}

// ScoreRound applies the bid outcome to every seat. The result is
// zero-sum: the bidder wins iff the bid was achieved, every other active
// seat wins iff the bidder failed. A false meld forces its seat to lose
// the round outright.
func ScoreRound(seats []SeatScore, bid Bid, winnerID string) (RoundResult, error) {
	var bidder *SeatScore
	for i := range seats {
		if seats[i].SeatID == winnerID {
			bidder = &seats[i]
			break
		}
	}
	if bidder == nil {
		return RoundResult{}, fmt.Errorf("bid winner %s not seated", winnerID)
	}

	var achieved bool
	switch bid.Type {
	case BidBonaak, BidBonaakRoem:
		// The bidder's side must take every trick.
		achieved = true
		for _, s := range seats {
			if s.SeatID == winnerID || s.Status.Terminal() {
				continue
			}
			if s.TricksWon > 0 {
				achieved = false
				break
			}
		}
	default:
		achieved = bidder.TrickPoints+bidder.MeldPoints >= bid.Amount
	}
	if bidder.FalseMeld {
		achieved = false
	}

	result := RoundResult{
		BidWinnerID: winnerID,
		Bid:         bid,
		Achieved:    achieved,
		Seats:       make(map[string]SeatOutcome, len(seats)),
	}

	for _, s := range seats {
		if s.Status.Terminal() {
			result.Seats[s.SeatID] = SeatOutcome{
				OldStatus:   s.Status,
				NewStatus:   s.Status,
				TrickPoints: s.TrickPoints,
				MeldPoints:  s.MeldPoints,
			}
			continue
		}

		won := achieved
		if s.SeatID != winnerID {
			won = !achieved
		}
		if s.FalseMeld {
			won = false
		}

		result.Seats[s.SeatID] = SeatOutcome{
			Won:         won,
			OldStatus:   s.Status,
			NewStatus:   AdvanceStatus(s.Status, won),
			TrickPoints: s.TrickPoints,
			MeldPoints:  s.MeldPoints,
		}
	}

	return result, nil
}

// GameComplete reports whether at most one seat is still climbing.
func GameComplete(statuses []Status) bool {
	active := 0
	for _, s := range statuses {
		if !s.Terminal() {
			active++
		}
	}
	return active <= 1
}
