package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonaken-game/bonaken/internal/game/card"
)

// cc parses card ids into cards, keeping test cases readable.
func cc(t *testing.T, ids ...string) []card.Card {
	t.Helper()
	cards := make([]card.Card, len(ids))
	for i, id := range ids {
		c, err := card.ParseID(id)
		require.NoError(t, err)
		cards[i] = c
	}
	return cards
}

func play(t *testing.T, ids ...string) []PlayedCard {
	t.Helper()
	trick := make([]PlayedCard, len(ids))
	for i, c := range cc(t, ids...) {
		trick[i] = PlayedCard{SeatID: "s", Card: c}
	}
	return trick
}

func ids(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID()
	}
	return out
}

func TestLegalCards(t *testing.T) {
	t.Parallel()

	harten := card.TrumpSuit(card.Harten)

	tests := []struct {
		name  string
		hand  []string
		trick []string
		trump card.Trump
		want  []string
	}{
		{
			name:  "leading plays anything",
			hand:  []string{"ruiten-A", "harten-7", "schoppen-K"},
			trick: nil,
			trump: harten,
			want:  []string{"ruiten-A", "harten-7", "schoppen-K"},
		},
		{
			name:  "must follow led suit, trump jump-in stays open",
			hand:  []string{"ruiten-A", "ruiten-7", "harten-9", "schoppen-K"},
			trick: []string{"ruiten-10"},
			trump: harten,
			want:  []string{"ruiten-A", "ruiten-7", "harten-9"},
		},
		{
			name:  "void in led suit without trump throws off",
			hand:  []string{"schoppen-K", "klaveren-7"},
			trick: []string{"ruiten-10"},
			trump: harten,
			want:  []string{"schoppen-K", "klaveren-7"},
		},
		{
			name:  "trumped trick forces overtrump",
			hand:  []string{"harten-9", "harten-V", "schoppen-A"},
			trick: []string{"ruiten-10", "harten-K"},
			trump: harten,
			want:  []string{"harten-9"},
		},
		{
			name:  "no higher trump and void frees the hand",
			hand:  []string{"harten-V", "schoppen-A"},
			trick: []string{"ruiten-10", "harten-9"},
			trump: harten,
			want:  []string{"harten-V", "schoppen-A"},
		},
		{
			name:  "trump led binds other trumps",
			hand:  []string{"harten-7", "harten-A", "ruiten-K"},
			trick: []string{"harten-10"},
			trump: harten,
			want:  []string{"harten-7", "harten-A"},
		},
		{
			name:  "trump led never forces a lone jack",
			hand:  []string{"harten-B", "ruiten-K", "schoppen-7"},
			trick: []string{"harten-10"},
			trump: harten,
			want:  []string{"harten-B", "ruiten-K", "schoppen-7"},
		},
		{
			name:  "sole jack as only overtrump frees the hand",
			hand:  []string{"harten-B", "schoppen-A"},
			trick: []string{"ruiten-10", "harten-9"},
			trump: harten,
			want:  []string{"harten-B", "schoppen-A"},
		},
		{
			name:  "trumpless follows suit",
			hand:  []string{"ruiten-7", "harten-B", "schoppen-A"},
			trick: []string{"ruiten-10"},
			trump: card.NoTrump,
			want:  []string{"ruiten-7"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LegalCards(cc(t, tt.hand...), play(t, tt.trick...), tt.trump)
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestLegalCards_NeverEmpty(t *testing.T) {
	t.Parallel()

	// Whatever the trick looks like, a non-empty hand keeps at least one
	// legal card, and every legal card comes from the hand.
	trump := card.TrumpSuit(card.Klaveren)
	deck := card.NewDeck()

	for lead := 0; lead < len(deck); lead++ {
		trick := []PlayedCard{{SeatID: "a", Card: deck[lead]}}
		for size := 1; size <= 6; size++ {
			hand := deck[(lead+1)%32:]
			if len(hand) > size {
				hand = hand[:size]
			}
			legal := LegalCards(hand, trick, trump)
			require.NotEmpty(t, legal, "lead %s hand %v", deck[lead], hand)
			for _, c := range legal {
				assert.True(t, card.Contains(hand, c))
			}
		}
	}
}

func TestIsLegalCard(t *testing.T) {
	t.Parallel()

	trump := card.TrumpSuit(card.Harten)
	hand := cc(t, "ruiten-A", "harten-9")
	trick := play(t, "ruiten-10")

	assert.True(t, IsLegalCard(cc(t, "ruiten-A")[0], hand, trick, trump))
	assert.True(t, IsLegalCard(cc(t, "harten-9")[0], hand, trick, trump))
	assert.False(t, IsLegalCard(cc(t, "schoppen-A")[0], hand, trick, trump))
}
