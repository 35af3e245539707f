package protocol

import "encoding/json"

// Message is the wire envelope for every client/server exchange.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType names a message on the wire.
type MessageType string

// Client → server message types.
const (
	MsgCreateTable    MessageType = "create-table"
	MsgJoinTable      MessageType = "join-table"
	MsgStartTable     MessageType = "start-table"
	MsgPlaceBid       MessageType = "place-bid"
	MsgPassBid        MessageType = "pass-bid"
	MsgSwapCards      MessageType = "swap-cards"
	MsgSelectTrump    MessageType = "select-trump"
	MsgDeclareMeld    MessageType = "declare-meld"
	MsgPlayCard       MessageType = "play-card"
	MsgRequestRematch MessageType = "request-rematch"
	MsgReconnect      MessageType = "reconnect"
	MsgGetStats       MessageType = "get-stats"
	MsgGetLeaderboard MessageType = "get-leaderboard"
)

// Server → client message types.
const (
	MsgTableCreated        MessageType = "table-created"
	MsgTableState          MessageType = "table-state"
	MsgHandDealt           MessageType = "hand-dealt"
	MsgBiddingStarted      MessageType = "bidding-started"
	MsgBidPlaced           MessageType = "bid-placed"
	MsgBidPassed           MessageType = "bid-passed"
	MsgBiddingComplete     MessageType = "bidding-complete"
	MsgAllPassed           MessageType = "all-passed"
	MsgCardSwapStarted     MessageType = "card-swap-started"
	MsgCardsSwapped        MessageType = "cards-swapped"
	MsgTrumpSelectionStart MessageType = "trump-selection-started"
	MsgTrumpSelected       MessageType = "trump-selected"
	MsgTurnStarted         MessageType = "turn-started"
	MsgCardPlayed          MessageType = "card-played"
	MsgMeldDeclared        MessageType = "meld-declared"
	MsgTrickComplete       MessageType = "trick-complete"
	MsgTrickCleared        MessageType = "trick-cleared"
	MsgRoundResult         MessageType = "round-result"
	MsgGameEnded           MessageType = "game-ended"
	MsgRematchRequested    MessageType = "rematch-requested"
	MsgRematchStarted      MessageType = "rematch-started"
	MsgTimerUpdate         MessageType = "timer-update"
	MsgTimerExpired        MessageType = "timer-expired"
	MsgSeatDisconnected    MessageType = "seat-disconnected"
	MsgSeatReconnected     MessageType = "seat-reconnected"
	MsgStatsResult         MessageType = "stats-result"
	MsgLeaderboardResult   MessageType = "leaderboard-result"
	MsgError               MessageType = "error"
)
