package card

import "math/rand"

// Deck is an ordered pile of cards.
type Deck []Card

// NewDeck builds the fixed 32-card deck: 7 through ace in four suits.
func NewDeck() Deck {
	deck := make(Deck, 0, 32)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle randomizes the deck in place.
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Contains reports whether the pile holds the given card.
func Contains(cards []Card, c Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}

// Remove returns cards without the first occurrence of c, and whether it
// was found.
func Remove(cards []Card, c Card) ([]Card, bool) {
	for i, x := range cards {
		if x == c {
			out := make([]Card, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			out = append(out, cards[i+1:]...)
			return out, true
		}
	}
	return cards, false
}
