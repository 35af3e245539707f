package table

import (
	"context"

	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// Notifier delivers outbound messages. The transport implements it; the
// orchestrator never touches sockets directly.
type Notifier interface {
	// Broadcast delivers a message to every connection seated at a table.
	Broadcast(tableID string, msg *protocol.Message)
	// SendSeat delivers a message to one seat's connection, silently
	// dropping it when the seat is offline.
	SendSeat(tableID, seatID string, msg *protocol.Message)
}

// StatsRecorder persists per-player outcomes when a game ends.
type StatsRecorder interface {
	RecordResult(ctx context.Context, nickname string, status rule.Status) error
}
