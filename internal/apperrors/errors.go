package apperrors

import (
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// GameError is a rejected action. Rejections never mutate table state and
// are reported only to the acting connection.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors, one per protocol error code.
var (
	ErrTableNotFound = &GameError{Code: protocol.ErrCodeTableNotFound, Message: protocol.ErrorMessages[protocol.ErrCodeTableNotFound]}
	ErrTableFull     = &GameError{Code: protocol.ErrCodeTableFull, Message: protocol.ErrorMessages[protocol.ErrCodeTableFull]}
	ErrNicknameTaken = &GameError{Code: protocol.ErrCodeNicknameTaken, Message: protocol.ErrorMessages[protocol.ErrCodeNicknameTaken]}
	ErrNotInTable    = &GameError{Code: protocol.ErrCodeNotInTable, Message: protocol.ErrorMessages[protocol.ErrCodeNotInTable]}
	ErrGameStarted   = &GameError{Code: protocol.ErrCodeGameStarted, Message: protocol.ErrorMessages[protocol.ErrCodeGameStarted]}
	ErrTooFewSeats   = &GameError{Code: protocol.ErrCodeTooFewSeats, Message: protocol.ErrorMessages[protocol.ErrCodeTooFewSeats]}
	ErrNotHost       = &GameError{Code: protocol.ErrCodeNotHost, Message: protocol.ErrorMessages[protocol.ErrCodeNotHost]}

	ErrGameNotStarted = &GameError{Code: protocol.ErrCodeGameNotStarted, Message: protocol.ErrorMessages[protocol.ErrCodeGameNotStarted]}
	ErrNotYourTurn    = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: protocol.ErrorMessages[protocol.ErrCodeNotYourTurn]}
	ErrWrongPhase     = &GameError{Code: protocol.ErrCodeWrongPhase, Message: protocol.ErrorMessages[protocol.ErrCodeWrongPhase]}
	ErrInvalidBid     = &GameError{Code: protocol.ErrCodeInvalidBid, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidBid]}
	ErrIllegalCard    = &GameError{Code: protocol.ErrCodeIllegalCard, Message: protocol.ErrorMessages[protocol.ErrCodeIllegalCard]}
	ErrFalseMeld      = &GameError{Code: protocol.ErrCodeFalseMeld, Message: protocol.ErrorMessages[protocol.ErrCodeFalseMeld]}
	ErrInvalidSwap    = &GameError{Code: protocol.ErrCodeInvalidSwap, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidSwap]}
	ErrInvalidSuit    = &GameError{Code: protocol.ErrCodeInvalidSuit, Message: protocol.ErrorMessages[protocol.ErrCodeInvalidSuit]}
	ErrCardNotInHand  = &GameError{Code: protocol.ErrCodeCardNotInHand, Message: protocol.ErrorMessages[protocol.ErrCodeCardNotInHand]}

	ErrStaleConnection = &GameError{Code: protocol.ErrCodeStaleConnection, Message: protocol.ErrorMessages[protocol.ErrCodeStaleConnection]}
)

// ErrInvalidMessage builds a malformed-request error with specific text.
func ErrInvalidMessage(text string) *GameError {
	return &GameError{Code: protocol.ErrCodeInvalidMsg, Message: text}
}
