package app

import "mighty/internal/domain"

// SeatView is the public view of one seat inside a snapshot.
type SeatView struct {
	Seat           int  `json:"seat"`
	HandCount      int  `json:"hand_count"`
	CapturedPoints int  `json:"captured_points"`
	Passed         bool `json:"passed"`
}

// SnapshotPayload is the seat-scoped view of a round: the receiving seat's
// own hand plus everything publicly visible. Hidden state (other hands, the
// unplayed friend seat) never appears.
type SnapshotPayload struct {
	Phase         domain.Phase        `json:"phase"`
	Seat          int                 `json:"seat"`
	Turn          int                 `json:"turn"`
	Hand          []domain.Card       `json:"hand"`
	Bid           *domain.Bid         `json:"bid,omitempty"`
	Giruda        domain.Suit         `json:"giruda"`
	PresidentSeat int                 `json:"president_seat"`
	FriendCard    *domain.Card        `json:"friend_card,omitempty"`
	NoFriend      bool                `json:"no_friend"`
	FriendSeat    int                 `json:"friend_seat"`
	Trick         []domain.PlayedCard `json:"trick"`
	JokerLeadSuit domain.Suit         `json:"joker_lead_suit,omitempty"`
	JokerCalled   bool                `json:"joker_called,omitempty"`
	TricksPlayed  int                 `json:"tricks_played"`
	Seats         []SeatView          `json:"seats"`
}

// Snapshot builds the private state event for one seat. Calling it twice
// yields the same view; it never mutates the round.
func (s *Service) Snapshot(r *domain.Round, seat int) Event {
	payload := SnapshotPayload{
		Phase:         r.Phase,
		Seat:          seat,
		Turn:          r.Turn,
		Hand:          sortedCopy(r.Players[seat].Hand, r.Giruda),
		Bid:           r.Bid,
		Giruda:        r.Giruda,
		PresidentSeat: r.PresidentSeat,
		NoFriend:      r.NoFriend,
		FriendSeat:    domain.NoSeat,
		Trick:         append([]domain.PlayedCard(nil), r.Trick...),
		JokerLeadSuit: r.JokerLeadSuit,
		JokerCalled:   r.JokerCalled,
		TricksPlayed:  r.TricksPlayed,
	}
	if r.Phase != domain.PhaseBidding {
		payload.FriendCard = r.FriendCard
	}
	if r.FriendRevealed {
		payload.FriendSeat = r.FriendSeat
	}
	for i := 0; i < domain.SeatCount; i++ {
		p := r.Players[i]
		points := 0
		for _, c := range p.Captured {
			if c.IsPointCard() {
				points++
			}
		}
		payload.Seats = append(payload.Seats, SeatView{
			Seat:           i,
			HandCount:      len(p.Hand),
			CapturedPoints: points,
			Passed:         r.Passed[i],
		})
	}
	return private(EventStateSnapshot, payload, seat)
}
