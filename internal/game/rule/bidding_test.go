package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBid_Opening(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bid  Bid
		want bool
	}{
		{"minimum normal bid", Bid{Type: BidNormal, Amount: 25}, true},
		{"higher multiple of five", Bid{Type: BidNormal, Amount: 40}, true},
		{"below minimum", Bid{Type: BidNormal, Amount: 20}, false},
		{"not a multiple of five", Bid{Type: BidNormal, Amount: 27}, false},
		{"opening bonaak", Bid{Type: BidBonaak}, true},
		{"opening bonaak-roem", Bid{Type: BidBonaakRoem, Amount: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBid(tt.bid, nil))
		})
	}
}

func TestValidateBid_Escalation(t *testing.T) {
	t.Parallel()

	normal30 := &Bid{SeatID: "a", Type: BidNormal, Amount: 30}
	bonaak := &Bid{SeatID: "a", Type: BidBonaak}
	roem20 := &Bid{SeatID: "a", Type: BidBonaakRoem, Amount: 20}

	tests := []struct {
		name    string
		next    Bid
		current *Bid
		want    bool
	}{
		{"raise normal", Bid{Type: BidNormal, Amount: 35}, normal30, true},
		{"equal normal rejected", Bid{Type: BidNormal, Amount: 30}, normal30, false},
		{"lower normal rejected", Bid{Type: BidNormal, Amount: 25}, normal30, false},
		{"off-grid raise rejected", Bid{Type: BidNormal, Amount: 33}, normal30, false},
		{"bonaak over normal", Bid{Type: BidBonaak}, normal30, true},
		{"bonaak over bonaak rejected", Bid{Type: BidBonaak}, bonaak, false},
		{"bonaak-roem answers bonaak", Bid{Type: BidBonaakRoem, Amount: 20}, bonaak, true},
		{"bonaak-roem over normal rejected", Bid{Type: BidBonaakRoem, Amount: 20}, normal30, false},
		{"bonaak-roem raises bonaak-roem", Bid{Type: BidBonaakRoem, Amount: 40}, roem20, true},
		{"equal bonaak-roem rejected", Bid{Type: BidBonaakRoem, Amount: 20}, roem20, false},
		{"normal over bonaak rejected", Bid{Type: BidNormal, Amount: 100}, bonaak, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBid(tt.next, tt.current))
		})
	}
}

func seatsForOrder() []Bidder {
	return []Bidder{
		{SeatID: "a", Status: StatusSuf},
		{SeatID: "b", Status: StatusSuf},
		{SeatID: "c", Status: StatusErin},
		{SeatID: "d", Status: StatusSuf},
	}
}

func TestBiddingOrder(t *testing.T) {
	t.Parallel()

	// Clockwise of the dealer, skipping eliminated seats.
	order := BiddingOrder(seatsForOrder(), "b")
	assert.Equal(t, []string{"d", "a", "b"}, order)

	// Dealer eliminated still anchors the rotation.
	order = BiddingOrder(seatsForOrder(), "c")
	assert.Equal(t, []string{"d", "a", "b"}, order)
}

func TestNextBidder(t *testing.T) {
	t.Parallel()

	order := []string{"a", "b", "c"}

	next, ok := NextBidder(order, "a", map[string]bool{})
	require.True(t, ok)
	assert.Equal(t, "b", next)

	// Passed seats are skipped, wrapping around.
	next, ok = NextBidder(order, "b", map[string]bool{"c": true})
	require.True(t, ok)
	assert.Equal(t, "a", next)

	_, ok = NextBidder(order, "b", map[string]bool{"a": true, "b": true, "c": true})
	assert.False(t, ok)
}

func TestBiddingComplete(t *testing.T) {
	t.Parallel()

	order := []string{"a", "b", "c"}
	bid := &Bid{SeatID: "a", Type: BidNormal, Amount: 25}

	// Auction still open while two seats remain.
	complete, _ := BiddingComplete(order, map[string]bool{"b": true}, bid)
	assert.False(t, complete)

	// One active seat and a standing bid close the auction.
	complete, winner := BiddingComplete(order, map[string]bool{"b": true, "c": true}, bid)
	assert.True(t, complete)
	assert.Equal(t, "a", winner)

	// Everyone passed without a bid: throw-in.
	complete, winner = BiddingComplete(order, map[string]bool{"a": true, "b": true, "c": true}, nil)
	assert.True(t, complete)
	assert.Empty(t, winner)

	// A single bidder left without any bid keeps the auction open.
	complete, _ = BiddingComplete(order, map[string]bool{"b": true, "c": true}, nil)
	assert.False(t, complete)
}
