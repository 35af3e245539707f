package rule

import (
	"errors"

	"github.com/bonaken-game/bonaken/internal/game/card"
)

// ErrEmptyTrick is returned when resolving a trick with no cards.
var ErrEmptyTrick = errors.New("cannot resolve an empty trick")

// ResolveTrick determines the winning play and the trick's point value.
// If any trump was played the highest trump wins, otherwise the highest
// card of the led suit.
func ResolveTrick(trick []PlayedCard, trump card.Trump) (PlayedCard, int, error) {
	if len(trick) == 0 {
		return PlayedCard{}, 0, ErrEmptyTrick
	}

	points := 0
	for _, pc := range trick {
		points += pc.Card.Points(trump)
	}

	if trumpSuit, ok := trump.Suit(); ok {
		winner := PlayedCard{}
		best := -1
		for _, pc := range trick {
			if pc.Card.Suit != trumpSuit {
				continue
			}
			if v := card.TrumpStrength(pc.Card.Rank); v > best {
				best = v
				winner = pc
			}
		}
		if best >= 0 {
			return winner, points, nil
		}
	}

	ledSuit := trick[0].Card.Suit
	winner := trick[0]
	best := -1
	for _, pc := range trick {
		if pc.Card.Suit != ledSuit {
			continue
		}
		if v := card.PlainStrength(pc.Card.Rank); v > best {
			best = v
			winner = pc
		}
	}
	return winner, points, nil
}
