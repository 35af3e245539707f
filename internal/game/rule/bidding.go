package rule

import "fmt"

// BidType is the escalation class of a bid.
type BidType string

const (
	BidNormal     BidType = "normal"
	BidBonaak     BidType = "bonaak"      // commits to winning every trick
	BidBonaakRoem BidType = "bonaak-roem" // bonaak plus declared meld points
)

// ParseBidType maps a wire name to a bid type.
func ParseBidType(s string) (BidType, error) {
	switch BidType(s) {
	case BidNormal, BidBonaak, BidBonaakRoem:
		return BidType(s), nil
	}
	return "", fmt.Errorf("unknown bid type %q", s)
}

// Trumpless reports whether the bid type plays without trump. No
// surviving bid type does; the hook keeps the phase machine honest
// should a trumpless variant return.
func (t BidType) Trumpless() bool { return false }

// Bid is the single current bid of a table.
type Bid struct {
	SeatID string
	Type   BidType
	Amount int
}

// ValidateBid checks a new bid against the current one.
//
// The opening bid is a normal bid of at least 25 in steps of 5, or a
// bonaak. Normal bids escalate above the current normal bid in steps of
// 5. Bonaak answers any non-bonaak bid; bonaak-roem answers a bonaak, or
// raises a prior bonaak-roem by amount.
func ValidateBid(next Bid, current *Bid) bool {
	if current == nil {
		switch next.Type {
		case BidNormal:
			return next.Amount >= 25 && next.Amount%5 == 0
		case BidBonaak:
			return true
		}
		return false
	}

	switch next.Type {
	case BidNormal:
		if current.Type != BidNormal {
			return false
		}
		return next.Amount > current.Amount && next.Amount%5 == 0

	case BidBonaak:
		// The highest plain bid; only bonaak-roem goes over it, and a
		// bonaak cannot answer another bonaak.
		return current.Type != BidBonaak && current.Type != BidBonaakRoem

	case BidBonaakRoem:
		if current.Type == BidBonaak {
			return true
		}
		if current.Type == BidBonaakRoem {
			return next.Amount > current.Amount
		}
		return false
	}

	return false
}

// Bidder pairs a seat with its ladder status for order computation.
type Bidder struct {
	SeatID string
	Status Status
}

// BiddingOrder starts immediately clockwise of the dealer and excludes
// seats with an absorbing status.
func BiddingOrder(seats []Bidder, dealerID string) []string {
	dealerIdx := 0
	for i, s := range seats {
		if s.SeatID == dealerID {
			dealerIdx = i
			break
		}
	}

	order := make([]string, 0, len(seats))
	for i := 1; i <= len(seats); i++ {
		s := seats[(dealerIdx+i)%len(seats)]
		if !s.Status.Terminal() {
			order = append(order, s.SeatID)
		}
	}
	return order
}

// NextBidder returns the next non-passed seat after current, wrapping.
// ok is false when every other bidder has passed.
func NextBidder(order []string, currentID string, passed map[string]bool) (string, bool) {
	currentIdx := -1
	for i, id := range order {
		if id == currentID {
			currentIdx = i
			break
		}
	}

	for i := 1; i <= len(order); i++ {
		id := order[(currentIdx+i)%len(order)]
		if !passed[id] {
			return id, true
		}
	}
	return "", false
}

// BiddingComplete reports whether the auction is over. With a bid and a
// single active bidder left, that bidder is the winner; with zero active
// bidders and no bid placed, the hand is thrown in for a redeal.
func BiddingComplete(order []string, passed map[string]bool, current *Bid) (complete bool, winnerID string) {
	var active []string
	for _, id := range order {
		if !passed[id] {
			active = append(active, id)
		}
	}

	if len(active) == 0 {
		return true, ""
	}
	if len(active) == 1 && current != nil {
		return true, active[0]
	}
	return false, ""
}
