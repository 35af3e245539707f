package protocol

// --- Shared DTOs ---

// CardInfo is the wire form of a card. ID is "<suit>-<rank>".
type CardInfo struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
	ID   string `json:"id"`
}

// TableCardInfo is a dealt table card. A face-down card travels with an
// empty CardInfo until the card-swap phase reveals it.
type TableCardInfo struct {
	Card   CardInfo `json:"card"`
	FaceUp bool     `json:"face_up"`
}

// SeatInfo is the public view of a seat: the hand is reduced to a count.
type SeatInfo struct {
	SeatID      string `json:"seat_id"`
	Nickname    string `json:"nickname"`
	Status      string `json:"status"`
	CardCount   int    `json:"card_count"`
	TricksWon   int    `json:"tricks_won"`
	TrickPoints int    `json:"trick_points"`
	MeldPoints  int    `json:"meld_points"`
	HasPassed   bool   `json:"has_passed"`
	IsHost      bool   `json:"is_host"`
	Connected   bool   `json:"connected"`
}

// BidInfo is the wire form of a bid.
type BidInfo struct {
	SeatID string `json:"seat_id"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// PlayedCardInfo is one entry of the current trick.
type PlayedCardInfo struct {
	SeatID string   `json:"seat_id"`
	Card   CardInfo `json:"card"`
}

// MeldInfo is a declared or detected meld.
type MeldInfo struct {
	Type   string     `json:"type"`
	Points int        `json:"points"`
	Cards  []CardInfo `json:"cards"`
}

// TableStateDTO is the sanitized snapshot sent on join/reconnect. Hand
// holds only the receiving seat's cards.
type TableStateDTO struct {
	TableID      string           `json:"table_id"`
	Name         string           `json:"name"`
	Phase        string           `json:"phase"`
	Seats        []SeatInfo       `json:"seats"`
	Hand         []CardInfo       `json:"hand,omitempty"`
	DealerID     string           `json:"dealer_id"`
	TurnSeatID   string           `json:"turn_seat_id,omitempty"`
	Trump        string           `json:"trump,omitempty"`
	CurrentBid   *BidInfo         `json:"current_bid,omitempty"`
	BidWinnerID  string           `json:"bid_winner_id,omitempty"`
	BiddingOrder []string         `json:"bidding_order,omitempty"`
	TableCards   []TableCardInfo  `json:"table_cards,omitempty"`
	CurrentTrick []PlayedCardInfo `json:"current_trick,omitempty"`
	RoundNumber  int              `json:"round_number"`
	TurnDeadline int64            `json:"turn_deadline,omitempty"` // unix ms
	MaxSeats     int              `json:"max_seats"`
}

// --- Client → server payloads ---

// CreateTablePayload opens a new table.
type CreateTablePayload struct {
	Nickname  string `json:"nickname"`
	TableName string `json:"table_name"`
	MaxSeats  int    `json:"max_seats"`
}

// JoinTablePayload seats a player at an existing table.
type JoinTablePayload struct {
	TableID  string `json:"table_id"`
	Nickname string `json:"nickname"`
}

// PlaceBidPayload places a bid of the given type and amount.
type PlaceBidPayload struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// SwapCardsPayload discards the listed card ids after absorbing the
// table cards.
type SwapCardsPayload struct {
	DiscardCardIDs []string `json:"discard_card_ids"`
}

// SelectTrumpPayload names the trump suit for the round.
type SelectTrumpPayload struct {
	Suit string `json:"suit"`
}

// DeclareMeldPayload announces melds for the round.
type DeclareMeldPayload struct {
	Melds []MeldInfo `json:"melds"`
}

// PlayCardPayload plays a single card by id.
type PlayCardPayload struct {
	CardID string `json:"card_id"`
}

// ReconnectPayload rebinds a disconnected seat to a new connection.
type ReconnectPayload struct {
	TableID  string `json:"table_id"`
	Nickname string `json:"nickname"`
}

// GetStatsPayload requests a player's lifetime record. An empty
// nickname means the requester's own seat.
type GetStatsPayload struct {
	Nickname string `json:"nickname,omitempty"`
}

// GetLeaderboardPayload pages through the leaderboard.
type GetLeaderboardPayload struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// --- Server → client payloads ---

// TableCreatedPayload acknowledges table creation to the host.
type TableCreatedPayload struct {
	TableID string `json:"table_id"`
	SeatID  string `json:"seat_id"`
}

// HandDealtPayload carries a seat's private hand and the table cards.
type HandDealtPayload struct {
	Hand       []CardInfo      `json:"hand"`
	TableCards []TableCardInfo `json:"table_cards"`
}

// BiddingStartedPayload opens the auction.
type BiddingStartedPayload struct {
	BiddingOrder []string `json:"bidding_order"`
	FirstBidder  string   `json:"first_bidder"`
}

// BidPlacedPayload broadcasts a placed bid.
type BidPlacedPayload struct {
	SeatID string  `json:"seat_id"`
	Bid    BidInfo `json:"bid"`
}

// BidPassedPayload broadcasts a pass.
type BidPassedPayload struct {
	SeatID string `json:"seat_id"`
}

// BiddingCompletePayload announces the auction winner.
type BiddingCompletePayload struct {
	WinnerID string  `json:"winner_id"`
	Bid      BidInfo `json:"bid"`
}

// CardSwapStartedPayload reveals the table cards to everyone and hands
// the turn to the bid winner.
type CardSwapStartedPayload struct {
	SeatID     string          `json:"seat_id"`
	TableCards []TableCardInfo `json:"table_cards"`
}

// CardsSwappedPayload broadcasts that the swap happened.
type CardsSwappedPayload struct {
	SeatID       string `json:"seat_id"`
	DiscardCount int    `json:"discard_count"`
}

// TrumpSelectionStartedPayload asks the bid winner for trump.
type TrumpSelectionStartedPayload struct {
	SeatID string `json:"seat_id"`
}

// TrumpSelectedPayload broadcasts the chosen trump suit.
type TrumpSelectedPayload struct {
	Trump string `json:"trump"`
}

// TurnStartedPayload hands the turn to a seat. LegalCardIDs is empty
// outside the playing phase. Deadline is unix ms, 0 when no timer runs.
type TurnStartedPayload struct {
	SeatID       string   `json:"seat_id"`
	LegalCardIDs []string `json:"legal_card_ids"`
	Deadline     int64    `json:"deadline,omitempty"`
}

// CardPlayedPayload broadcasts a played card.
type CardPlayedPayload struct {
	SeatID string   `json:"seat_id"`
	Card   CardInfo `json:"card"`
}

// MeldDeclaredPayload broadcasts accepted melds.
type MeldDeclaredPayload struct {
	SeatID string     `json:"seat_id"`
	Melds  []MeldInfo `json:"melds"`
	Points int        `json:"points"`
}

// TrickCompletePayload announces the trick winner.
type TrickCompletePayload struct {
	WinnerID    string         `json:"winner_id"`
	Points      int            `json:"points"`
	TricksWon   map[string]int `json:"tricks_won"`
	TrickPoints map[string]int `json:"trick_points"`
}

// SeatResult is one seat's line of a round result.
type SeatResult struct {
	Won         bool   `json:"won"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	TrickPoints int    `json:"trick_points"`
	MeldPoints  int    `json:"meld_points"`
}

// RoundResultPayload closes a round.
type RoundResultPayload struct {
	BidWinnerID string                `json:"bid_winner_id"`
	Bid         BidInfo               `json:"bid"`
	Achieved    bool                  `json:"achieved"`
	Seats       map[string]SeatResult `json:"seats"`
}

// GameEndedPayload closes the game with every seat's final status.
type GameEndedPayload struct {
	FinalStatus map[string]string `json:"final_status"`
}

// RematchRequestedPayload broadcasts a rematch vote.
type RematchRequestedPayload struct {
	SeatID   string `json:"seat_id"`
	Nickname string `json:"nickname"`
	Votes    int    `json:"votes"`
	Needed   int    `json:"needed"`
}

// TimerUpdatePayload broadcasts a fresh deadline.
type TimerUpdatePayload struct {
	Deadline int64 `json:"deadline"` // unix ms
}

// TimerExpiredPayload broadcasts which automatic action a timeout took.
type TimerExpiredPayload struct {
	SeatID     string `json:"seat_id"`
	AutoAction string `json:"auto_action"`
}

// SeatConnectionPayload reports a seat going offline or coming back.
type SeatConnectionPayload struct {
	SeatID   string `json:"seat_id"`
	Nickname string `json:"nickname"`
}

// ErrorPayload reports a rejected action to its actor.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
