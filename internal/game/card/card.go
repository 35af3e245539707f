package card

import "fmt"

// Suit is one of the four Dutch suits.
type Suit int

// Rank is one of the eight piquet ranks.
type Rank int

const (
	Schoppen Suit = iota // spades
	Harten               // hearts
	Klaveren             // clubs
	Ruiten               // diamonds
)

const (
	Rank7 Rank = iota
	Rank8
	Rank9
	Rank10
	Boer  // jack
	Vrouw // queen
	Heer  // king
	Aas   // ace
)

var suitNames = map[Suit]string{
	Schoppen: "schoppen",
	Harten:   "harten",
	Klaveren: "klaveren",
	Ruiten:   "ruiten",
}

var suitSymbols = map[Suit]string{
	Schoppen: "♠",
	Harten:   "♥",
	Klaveren: "♣",
	Ruiten:   "♦",
}

var rankNames = map[Rank]string{
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	Boer:   "B",
	Vrouw:  "V",
	Heer:   "K",
	Aas:    "A",
}

// Suits lists all suits in dealing order.
var Suits = []Suit{Schoppen, Harten, Klaveren, Ruiten}

// Ranks lists all ranks low to high in plain order.
var Ranks = []Rank{Rank7, Rank8, Rank9, Rank10, Boer, Vrouw, Heer, Aas}

func (s Suit) String() string { return suitNames[s] }

// Symbol returns the suit glyph for log lines.
func (s Suit) Symbol() string { return suitSymbols[s] }

func (r Rank) String() string { return rankNames[r] }

// ParseSuit maps a wire name back to a suit.
func ParseSuit(name string) (Suit, error) {
	for s, n := range suitNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// ParseRank maps a wire name back to a rank.
func ParseRank(name string) (Rank, error) {
	for r, n := range rankNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank %q", name)
}

// Card is immutable; the 32 distinct values are identified by suit+rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// ID is the wire identifier, e.g. "harten-B".
func (c Card) ID() string {
	return c.Suit.String() + "-" + c.Rank.String()
}

func (c Card) String() string {
	return c.Suit.Symbol() + c.Rank.String()
}

// ParseID parses a wire identifier back into a card.
func ParseID(id string) (Card, error) {
	for _, s := range Suits {
		prefix := s.String() + "-"
		if len(id) > len(prefix) && id[:len(prefix)] == prefix {
			r, err := ParseRank(id[len(prefix):])
			if err != nil {
				return Card{}, err
			}
			return Card{Suit: s, Rank: r}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown card id %q", id)
}

// Trump is the explicit sum of a named trump suit and no-trump, so the
// rules code never special-cases a null suit.
type Trump struct {
	suit    Suit
	present bool
}

// NoTrump is the trumpless round marker.
var NoTrump = Trump{}

// TrumpSuit declares the given suit dominant.
func TrumpSuit(s Suit) Trump {
	return Trump{suit: s, present: true}
}

// None reports a trumpless round.
func (t Trump) None() bool { return !t.present }

// Is reports whether s is the trump suit.
func (t Trump) Is(s Suit) bool { return t.present && t.suit == s }

// Suit returns the trump suit; ok is false for NoTrump.
func (t Trump) Suit() (Suit, bool) { return t.suit, t.present }

func (t Trump) String() string {
	if !t.present {
		return "none"
	}
	return t.suit.String()
}

// trumpStrength ranks trump cards: B > 9 > A > 10 > K > V > 8 > 7.
var trumpStrength = map[Rank]int{
	Boer:   8,
	Rank9:  7,
	Aas:    6,
	Rank10: 5,
	Heer:   4,
	Vrouw:  3,
	Rank8:  2,
	Rank7:  1,
}

// plainStrength ranks non-trump cards: A > K > V > B > 10 > 9 > 8 > 7.
var plainStrength = map[Rank]int{
	Aas:    8,
	Heer:   7,
	Vrouw:  6,
	Boer:   5,
	Rank10: 4,
	Rank9:  3,
	Rank8:  2,
	Rank7:  1,
}

var trumpPoints = map[Rank]int{
	Boer:   20,
	Rank9:  14,
	Aas:    11,
	Rank10: 10,
	Heer:   3,
	Vrouw:  2,
	Rank8:  0,
	Rank7:  0,
}

var plainPoints = map[Rank]int{
	Aas:    11,
	Rank10: 10,
	Heer:   3,
	Vrouw:  2,
	Boer:   1,
	Rank9:  0,
	Rank8:  0,
	Rank7:  0,
}

// TrumpStrength returns the trump-order strength of a rank, higher wins.
func TrumpStrength(r Rank) int { return trumpStrength[r] }

// PlainStrength returns the plain-order strength of a rank, higher wins.
func PlainStrength(r Rank) int { return plainStrength[r] }

// Strength returns the card's strength within its own category.
// Trump and plain strengths are not comparable to each other.
func (c Card) Strength(trump Trump) int {
	if trump.Is(c.Suit) {
		return trumpStrength[c.Rank]
	}
	return plainStrength[c.Rank]
}

// Points returns the trick point value of the card for the given trump.
func (c Card) Points(trump Trump) int {
	if trump.Is(c.Suit) {
		return trumpPoints[c.Rank]
	}
	return plainPoints[c.Rank]
}
