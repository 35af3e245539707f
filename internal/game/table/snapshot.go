package table

import (
	"github.com/bonaken-game/bonaken/internal/game/card"
	"github.com/bonaken-game/bonaken/internal/game/rule"
	"github.com/bonaken-game/bonaken/internal/protocol"
)

func cardInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit: c.Suit.String(),
		Rank: c.Rank.String(),
		ID:   c.ID(),
	}
}

func cardInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = cardInfo(c)
	}
	return infos
}

// tableCardInfos hides face-down cards behind an empty CardInfo.
func tableCardInfos(tcs []TableCard) []protocol.TableCardInfo {
	infos := make([]protocol.TableCardInfo, len(tcs))
	for i, tc := range tcs {
		infos[i] = protocol.TableCardInfo{FaceUp: tc.FaceUp}
		if tc.FaceUp {
			infos[i].Card = cardInfo(tc.Card)
		}
	}
	return infos
}

func trickInfos(trick []rule.PlayedCard) []protocol.PlayedCardInfo {
	infos := make([]protocol.PlayedCardInfo, len(trick))
	for i, pc := range trick {
		infos[i] = protocol.PlayedCardInfo{SeatID: pc.SeatID, Card: cardInfo(pc.Card)}
	}
	return infos
}

func bidInfo(b rule.Bid) protocol.BidInfo {
	return protocol.BidInfo{SeatID: b.SeatID, Type: string(b.Type), Amount: b.Amount}
}

func meldInfos(melds []rule.Meld) []protocol.MeldInfo {
	infos := make([]protocol.MeldInfo, len(melds))
	for i, m := range melds {
		infos[i] = protocol.MeldInfo{
			Type:   string(m.Type),
			Points: m.Points,
			Cards:  cardInfos(m.Cards),
		}
	}
	return infos
}

// snapshotFor builds the sanitized table state for one seat. Only that
// seat's own hand crosses the wire; everyone else is a card count.
func (t *Table) snapshotFor(seatID string) *protocol.TableStateDTO {
	dto := &protocol.TableStateDTO{
		TableID:      t.ID,
		Name:         t.Name,
		Phase:        string(t.Phase),
		Seats:        make([]protocol.SeatInfo, len(t.Seats)),
		DealerID:     t.DealerID,
		TurnSeatID:   t.TurnSeatID,
		BidWinnerID:  t.BidWinnerID,
		BiddingOrder: t.BiddingOrder,
		TableCards:   tableCardInfos(t.TableCards),
		CurrentTrick: trickInfos(t.CurrentTrick),
		RoundNumber:  t.RoundNumber,
		MaxSeats:     t.Settings.MaxSeats,
	}

	if s, ok := t.Trump.Suit(); ok {
		dto.Trump = s.String()
	}
	if t.CurrentBid != nil {
		b := bidInfo(*t.CurrentBid)
		dto.CurrentBid = &b
	}
	if !t.TurnDeadline.IsZero() {
		dto.TurnDeadline = t.TurnDeadline.UnixMilli()
	}

	for i, s := range t.Seats {
		dto.Seats[i] = protocol.SeatInfo{
			SeatID:      s.ID,
			Nickname:    s.Nickname,
			Status:      string(s.Status),
			CardCount:   len(s.Hand),
			TricksWon:   s.TricksWon,
			TrickPoints: s.TrickPoints,
			MeldPoints:  s.MeldPoints,
			HasPassed:   s.HasPassed,
			IsHost:      s.IsHost,
			Connected:   s.Connected,
		}
		if s.ID == seatID {
			dto.Hand = cardInfos(s.Hand)
		}
	}
	return dto
}
