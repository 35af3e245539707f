package protocol

// Error codes grouped by taxonomy: 1xxx protocol, 2xxx capacity,
// 3xxx validation, 4xxx stale reference.
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeTableNotFound = 2001
	ErrCodeTableFull     = 2002
	ErrCodeNicknameTaken = 2003
	ErrCodeNotInTable    = 2004
	ErrCodeGameStarted   = 2005
	ErrCodeTooFewSeats   = 2006
	ErrCodeNotHost       = 2007

	ErrCodeGameNotStarted = 3001
	ErrCodeNotYourTurn    = 3002
	ErrCodeWrongPhase     = 3003
	ErrCodeInvalidBid     = 3004
	ErrCodeIllegalCard    = 3005
	ErrCodeFalseMeld      = 3006
	ErrCodeInvalidSwap    = 3007
	ErrCodeInvalidSuit    = 3008
	ErrCodeCardNotInHand  = 3009

	ErrCodeStaleConnection = 4001
)

// ErrorMessages maps error codes to user-facing text.
var ErrorMessages = map[int]string{
	ErrCodeUnknown:         "unknown error",
	ErrCodeInvalidMsg:      "invalid message format",
	ErrCodeTableNotFound:   "table not found",
	ErrCodeTableFull:       "table is full",
	ErrCodeNicknameTaken:   "nickname already in use",
	ErrCodeNotInTable:      "you are not at a table",
	ErrCodeGameStarted:     "game already started",
	ErrCodeTooFewSeats:     "at least 2 players required",
	ErrCodeNotHost:         "only the host can do that",
	ErrCodeGameNotStarted:  "game has not started",
	ErrCodeNotYourTurn:     "it is not your turn",
	ErrCodeWrongPhase:      "action not allowed in this phase",
	ErrCodeInvalidBid:      "invalid bid",
	ErrCodeIllegalCard:     "that card may not be played",
	ErrCodeFalseMeld:       "declared meld does not match your hand",
	ErrCodeInvalidSwap:     "invalid card swap",
	ErrCodeInvalidSuit:     "invalid trump suit",
	ErrCodeCardNotInHand:   "card not in hand",
	ErrCodeStaleConnection: "connection is not bound to a seat",
}
