package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bonaken-game/bonaken/internal/apperrors"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

// Handler dispatches decoded client messages to the orchestrator and
// reports rejections back to the sender.
type Handler struct {
	server *Server
}

// NewHandler creates the message dispatcher.
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle routes one message. Every game action runs synchronously on
// the reader goroutine; the orchestrator serializes per table.
func (h *Handler) Handle(c *Client, msg *protocol.Message) {
	var err error

	switch msg.Type {
	case protocol.MsgCreateTable:
		err = parseAnd(c, msg, func(p *protocol.CreateTablePayload) error {
			return h.server.orchestrator.CreateTable(c.ID, p)
		})
	case protocol.MsgJoinTable:
		err = parseAnd(c, msg, func(p *protocol.JoinTablePayload) error {
			return h.server.orchestrator.JoinTable(c.ID, p)
		})
	case protocol.MsgStartTable:
		err = h.server.orchestrator.StartTable(c.ID)
	case protocol.MsgPlaceBid:
		err = parseAnd(c, msg, func(p *protocol.PlaceBidPayload) error {
			return h.server.orchestrator.PlaceBid(c.ID, p)
		})
	case protocol.MsgPassBid:
		err = h.server.orchestrator.PassBid(c.ID)
	case protocol.MsgSwapCards:
		err = parseAnd(c, msg, func(p *protocol.SwapCardsPayload) error {
			return h.server.orchestrator.SwapCards(c.ID, p)
		})
	case protocol.MsgSelectTrump:
		err = parseAnd(c, msg, func(p *protocol.SelectTrumpPayload) error {
			return h.server.orchestrator.SelectTrump(c.ID, p)
		})
	case protocol.MsgDeclareMeld:
		err = parseAnd(c, msg, func(p *protocol.DeclareMeldPayload) error {
			return h.server.orchestrator.DeclareMeld(c.ID, p)
		})
	case protocol.MsgPlayCard:
		err = parseAnd(c, msg, func(p *protocol.PlayCardPayload) error {
			return h.server.orchestrator.PlayCard(c.ID, p)
		})
	case protocol.MsgRequestRematch:
		err = h.server.orchestrator.RequestRematch(c.ID)
	case protocol.MsgReconnect:
		err = parseAnd(c, msg, func(p *protocol.ReconnectPayload) error {
			return h.server.orchestrator.Reconnect(c.ID, p)
		})
	case protocol.MsgGetStats:
		err = h.handleGetStats(c, msg)
	case protocol.MsgGetLeaderboard:
		err = h.handleGetLeaderboard(c, msg)
	default:
		c.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeInvalidMsg, "unknown message type"))
		return
	}

	if err != nil {
		h.sendError(c, err)
	}
}

// parseAnd decodes a payload and runs the action on success.
func parseAnd[T any](c *Client, msg *protocol.Message, action func(*T) error) error {
	p, err := protocol.ParsePayload[T](msg)
	if err != nil {
		return apperrors.ErrInvalidMessage("invalid payload")
	}
	return action(p)
}

func (h *Handler) sendError(c *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		c.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	log.Printf("⚠️ Internal error for client %s: %v", c.ID, err)
	c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
}

func (h *Handler) handleGetStats(c *Client, msg *protocol.Message) error {
	if h.server.stats == nil {
		return apperrors.ErrInvalidMessage("stats are disabled")
	}
	p, err := protocol.ParsePayload[protocol.GetStatsPayload](msg)
	if err != nil {
		return apperrors.ErrInvalidMessage("invalid payload")
	}

	nickname := p.Nickname
	if nickname == "" {
		nickname, err = h.server.orchestrator.SeatNickname(c.ID)
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	stats, err := h.server.stats.GetStats(ctx, nickname)
	if err != nil {
		return err
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, stats))
	return nil
}

func (h *Handler) handleGetLeaderboard(c *Client, msg *protocol.Message) error {
	if h.server.stats == nil {
		return apperrors.ErrInvalidMessage("stats are disabled")
	}
	p, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		return apperrors.ErrInvalidMessage("invalid payload")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	entries, err := h.server.stats.GetLeaderboard(ctx, p.Offset, p.Limit)
	if err != nil {
		return err
	}

	c.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, entries))
	return nil
}
