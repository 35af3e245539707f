package rule

import (
	"sort"

	"github.com/bonaken-game/bonaken/internal/game/card"
)

// MeldType names a scoring combination ("roem").
type MeldType string

const (
	MeldStuk          MeldType = "stuk"           // queen + king of trump
	MeldDriekaart     MeldType = "driekaart"      // run of 3
	MeldDriekaartStuk MeldType = "driekaart-stuk" // run of 3 in trump spanning the stuk
	MeldVierkaart     MeldType = "vierkaart"      // run of 4
	MeldVijfkaart     MeldType = "vijfkaart"      // run of 5
	MeldZeskaart      MeldType = "zeskaart"       // run of 6 or more
	MeldVierBoeren    MeldType = "vier-boeren"    // four jacks
	MeldVierVrouwen   MeldType = "vier-vrouwen"   // four queens
	MeldVierHeren     MeldType = "vier-heren"     // four kings
	MeldVierAzen      MeldType = "vier-azen"      // four aces
)

var meldPoints = map[MeldType]int{
	MeldStuk:          20,
	MeldDriekaart:     20,
	MeldDriekaartStuk: 40,
	MeldVierkaart:     50,
	MeldVijfkaart:     100,
	MeldZeskaart:      100,
	MeldVierBoeren:    200,
	MeldVierVrouwen:   100,
	MeldVierHeren:     100,
	MeldVierAzen:      100,
}

// Points returns the score of a meld type.
func (m MeldType) Points() int { return meldPoints[m] }

// Meld is one scoring combination held in a hand.
type Meld struct {
	Type   MeldType
	Points int
	Cards  []card.Card
}

var fourOfAKind = []struct {
	rank card.Rank
	typ  MeldType
}{
	{card.Boer, MeldVierBoeren},
	{card.Vrouw, MeldVierVrouwen},
	{card.Heer, MeldVierHeren},
	{card.Aas, MeldVierAzen},
}

// DetectMelds derives every meld in the hand. Trumpless rounds score no
// melds at all.
func DetectMelds(hand []card.Card, trump card.Trump) []Meld {
	if trump.None() {
		return nil
	}
	trumpSuit, _ := trump.Suit()

	var melds []Meld

	// Stuk: queen + king of trump.
	queen := card.Card{Suit: trumpSuit, Rank: card.Vrouw}
	king := card.Card{Suit: trumpSuit, Rank: card.Heer}
	hasStuk := card.Contains(hand, queen) && card.Contains(hand, king)
	if hasStuk {
		melds = append(melds, Meld{
			Type:   MeldStuk,
			Points: MeldStuk.Points(),
			Cards:  []card.Card{queen, king},
		})
	}

	// Four of a kind across suits, jacks counting double the rest.
	for _, four := range fourOfAKind {
		var cards []card.Card
		for _, c := range hand {
			if c.Rank == four.rank {
				cards = append(cards, c)
			}
		}
		if len(cards) == 4 {
			melds = append(melds, Meld{Type: four.typ, Points: four.typ.Points(), Cards: cards})
		}
	}

	// Maximal consecutive plain-rank runs per suit.
	stukInRun := false
	for _, suit := range card.Suits {
		suitCards := ofSuit(hand, suit)
		if len(suitCards) < 3 {
			continue
		}

		sort.Slice(suitCards, func(i, j int) bool {
			return suitCards[i].Rank < suitCards[j].Rank
		})

		for _, run := range splitRuns(suitCards) {
			if len(run) < 3 {
				continue
			}

			spansStuk := suit == trumpSuit &&
				card.Contains(run, queen) && card.Contains(run, king)

			var typ MeldType
			switch {
			case len(run) >= 6:
				typ = MeldZeskaart
			case len(run) == 5:
				typ = MeldVijfkaart
			case len(run) == 4:
				typ = MeldVierkaart
			case spansStuk:
				typ = MeldDriekaartStuk
			default:
				typ = MeldDriekaart
			}

			if spansStuk {
				stukInRun = true
			}
			melds = append(melds, Meld{Type: typ, Points: typ.Points(), Cards: run})
		}
	}

	// A run that already spans the stuk absorbs the separate stuk meld.
	if hasStuk && stukInRun {
		for i, m := range melds {
			if m.Type == MeldStuk {
				melds = append(melds[:i], melds[i+1:]...)
				break
			}
		}
	}

	return melds
}

// splitRuns cuts rank-sorted cards of one suit into consecutive runs.
func splitRuns(sorted []card.Card) [][]card.Card {
	if len(sorted) == 0 {
		return nil
	}
	var runs [][]card.Card
	current := []card.Card{sorted[0]}
	for _, c := range sorted[1:] {
		if c.Rank == current[len(current)-1].Rank+1 {
			current = append(current, c)
		} else {
			runs = append(runs, current)
			current = []card.Card{c}
		}
	}
	return append(runs, current)
}

// ValidateMelds checks a declaration against the true hand: every
// declared meld must match a derived meld of the same type and cards.
// A failed validation is a false meld, not a recoverable request.
func ValidateMelds(declared []Meld, hand []card.Card, trump card.Trump) bool {
	if len(declared) == 0 {
		return true
	}
	if trump.None() {
		return false
	}

	actual := DetectMelds(hand, trump)
	for _, d := range declared {
		if !matchesAny(d, actual) {
			return false
		}
	}
	return true
}

func matchesAny(d Meld, actual []Meld) bool {
	for _, a := range actual {
		if a.Type != d.Type || len(a.Cards) != len(d.Cards) {
			continue
		}
		ok := true
		for _, c := range d.Cards {
			if !card.Contains(a.Cards, c) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// TotalMeldPoints sums a declaration.
func TotalMeldPoints(melds []Meld) int {
	total := 0
	for _, m := range melds {
		total += m.Points
	}
	return total
}
