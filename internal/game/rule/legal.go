// Package rule holds the pure rules engines: card legality, trick
// resolution, meld detection, the auction and the status ladder. Nothing
// in here mutates shared state; the table orchestrator sequences it all.
package rule

import (
	"github.com/bonaken-game/bonaken/internal/game/card"
)

// PlayedCard is one entry of a trick, in play order.
type PlayedCard struct {
	SeatID string
	Card   card.Card
}

// LegalCards computes the subset of hand that may be played onto the
// trick so far. The result is always non-empty for a non-empty hand.
//
// Leimuiden rules: following the led suit is mandatory when possible,
// trumping in is always allowed, undertrumping is forbidden once the
// trick has been trumped, and the trump jack can never be forced.
func LegalCards(hand []card.Card, trick []PlayedCard, trump card.Trump) []card.Card {
	if len(trick) == 0 {
		return hand
	}

	ledSuit := trick[0].Card.Suit

	// Trumpless round: follow suit if able, otherwise anything goes.
	if trump.None() {
		ledCards := ofSuit(hand, ledSuit)
		if len(ledCards) > 0 {
			return ledCards
		}
		return hand
	}

	trumpSuit, _ := trump.Suit()
	trumpJack := card.Card{Suit: trumpSuit, Rank: card.Boer}

	ledCards := ofSuit(hand, ledSuit)
	trumpCards := ofSuit(hand, trumpSuit)
	var trumpNoJack []card.Card
	for _, c := range trumpCards {
		if c != trumpJack {
			trumpNoJack = append(trumpNoJack, c)
		}
	}
	var otherCards []card.Card
	for _, c := range hand {
		if c.Suit != ledSuit && c.Suit != trumpSuit {
			otherCards = append(otherCards, c)
		}
	}

	if ledSuit == trumpSuit {
		// Trump led: must follow with trump, but the jack alone does not
		// bind — overtrumping is never mandatory.
		if len(trumpNoJack) > 0 {
			return trumpCards
		}
		return hand
	}

	// Non-trump led. Work out whether the trick was already trumped and
	// what it takes to overtrump.
	highestTrump := -1
	for _, pc := range trick {
		if pc.Card.Suit == trumpSuit {
			if v := card.TrumpStrength(pc.Card.Rank); v > highestTrump {
				highestTrump = v
			}
		}
	}

	legal := make(map[card.Card]bool)
	for _, c := range ledCards {
		legal[c] = true
	}

	if highestTrump >= 0 {
		// Already trumped: only strictly higher trump may come in.
		var higherNoJack []card.Card
		for _, c := range trumpCards {
			if card.TrumpStrength(c.Rank) > highestTrump {
				legal[c] = true
				if c != trumpJack {
					higherNoJack = append(higherNoJack, c)
				}
			}
		}

		if len(ledCards) == 0 && len(higherNoJack) == 0 {
			// Neither led suit nor a binding higher trump: the seat may
			// undertrump or throw off.
			for _, c := range trumpCards {
				legal[c] = true
			}
			for _, c := range otherCards {
				legal[c] = true
			}
		}
	} else {
		// Not yet trumped: any trump is a legal voluntary jump-in.
		for _, c := range trumpCards {
			legal[c] = true
		}
		if len(ledCards) == 0 {
			for _, c := range otherCards {
				legal[c] = true
			}
		}
	}

	result := make([]card.Card, 0, len(legal))
	for _, c := range hand {
		if legal[c] {
			result = append(result, c)
		}
	}

	// Jack exemption: when the trump jack is the only legal card the
	// restriction is lifted entirely.
	if len(result) == 1 && result[0] == trumpJack {
		return hand
	}

	// An empty set would deadlock the trick; legalize the whole hand.
	if len(result) == 0 {
		return hand
	}

	return result
}

// LegalCardIDs returns the wire ids of LegalCards.
func LegalCardIDs(hand []card.Card, trick []PlayedCard, trump card.Trump) []string {
	legal := LegalCards(hand, trick, trump)
	ids := make([]string, len(legal))
	for i, c := range legal {
		ids[i] = c.ID()
	}
	return ids
}

// IsLegalCard reports whether the given card may be played.
func IsLegalCard(c card.Card, hand []card.Card, trick []PlayedCard, trump card.Trump) bool {
	for _, l := range LegalCards(hand, trick, trump) {
		if l == c {
			return true
		}
	}
	return false
}

func ofSuit(hand []card.Card, s card.Suit) []card.Card {
	var out []card.Card
	for _, c := range hand {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}
