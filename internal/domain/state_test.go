package domain

import "testing"

func TestNextBidder(t *testing.T) {
	tests := []struct {
		name   string
		passed [SeatCount]bool
		bid    *Bid
		from   int
		want   int
	}{
		{name: "fresh auction", from: 0, want: 1},
		{name: "skips passed seat", passed: [SeatCount]bool{false, true}, from: 0, want: 2},
		{name: "skips standing bidder", bid: &Bid{Seat: 1, Score: 13}, from: 0, want: 2},
		{name: "wraps around", passed: [SeatCount]bool{true}, from: 3, want: 4},
		{
			name:   "auction decided",
			passed: [SeatCount]bool{true, false, true, true, true},
			bid:    &Bid{Seat: 1, Score: 14},
			from:   4,
			want:   NoSeat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound(0)
			r.Passed = tt.passed
			r.Bid = tt.bid
			if got := r.NextBidder(tt.from); got != tt.want {
				t.Fatalf("NextBidder(%d) = %d, want %d", tt.from, got, tt.want)
			}
		})
	}
}

func TestLeadSuit(t *testing.T) {
	r := NewRound(0)
	if r.LeadSuit() != SuitNone {
		t.Fatalf("empty trick must have no lead suit")
	}

	r.Trick = []PlayedCard{{Seat: 0, Card: Card{Suit: SuitHeart, Rank: 9}}}
	if r.LeadSuit() != SuitHeart {
		t.Fatalf("lead suit = %q, want heart", r.LeadSuit())
	}

	r.Trick = []PlayedCard{{Seat: 0, Card: Card{Suit: SuitJoker}}}
	r.JokerLeadSuit = SuitClub
	if r.LeadSuit() != SuitClub {
		t.Fatalf("joker lead must resolve to the declared suit, got %q", r.LeadSuit())
	}
}

func TestResetForRedealKeepsOpeningSeat(t *testing.T) {
	r := NewRound(2)
	r.Bid = &Bid{Seat: 0, Score: 14, Suit: SuitHeart}
	r.BidHistory = []Bid{*r.Bid}
	r.Passed = [SeatCount]bool{true, true, true, true, true}
	r.PassCount = SeatCount
	r.Giruda = SuitHeart
	r.Turn = 4

	r.ResetForRedeal()

	if r.Bid != nil || r.PassCount != 0 || r.Giruda != SuitNone {
		t.Fatalf("auction state survived the redeal: %+v", r)
	}
	if r.OpeningSeat != 2 || r.Turn != 2 {
		t.Fatalf("opening seat must survive the redeal: opening=%d turn=%d", r.OpeningSeat, r.Turn)
	}
}
