package card

import "fmt"

// Distribution describes how 32 cards are split for a seat count.
type Distribution struct {
	PerSeat  int // cards dealt to each active seat
	Table    int // cards placed on the table for the bid winner
	Sleeping int // cards left out of the round entirely
}

// distributions is keyed by active seat count. Every entry conserves the
// full deck: seats*PerSeat + Table + Sleeping == 32.
var distributions = map[int]Distribution{
	2: {PerSeat: 15, Table: 2, Sleeping: 0},
	3: {PerSeat: 10, Table: 2, Sleeping: 0},
	4: {PerSeat: 7, Table: 2, Sleeping: 2},
	5: {PerSeat: 6, Table: 2, Sleeping: 0},
}

// DistributionFor returns the split for the given active seat count.
func DistributionFor(seats int) (Distribution, error) {
	d, ok := distributions[seats]
	if !ok {
		return Distribution{}, fmt.Errorf("no distribution for %d seats", seats)
	}
	return d, nil
}

// DealResult is one shuffled deal: Hands is indexed by seat order.
type DealResult struct {
	Hands      [][]Card
	TableCards []Card
	Sleeping   []Card
}

// Deal shuffles a fresh deck and splits it for the given seat count.
func Deal(seats int) (*DealResult, error) {
	dist, err := DistributionFor(seats)
	if err != nil {
		return nil, err
	}

	deck := NewDeck()
	deck.Shuffle()

	res := &DealResult{Hands: make([][]Card, seats)}
	idx := 0
	for i := 0; i < seats; i++ {
		hand := make([]Card, dist.PerSeat)
		copy(hand, deck[idx:idx+dist.PerSeat])
		res.Hands[i] = hand
		idx += dist.PerSeat
	}

	res.TableCards = append(res.TableCards, deck[idx:idx+dist.Table]...)
	idx += dist.Table
	res.Sleeping = append(res.Sleeping, deck[idx:idx+dist.Sleeping]...)

	return res, nil
}
