package domain

import (
	"reflect"
	"testing"
)

func TestResolveTrick(t *testing.T) {
	tests := []struct {
		name          string
		trick         []PlayedCard
		giruda        Suit
		jokerLeadSuit Suit
		jokerCalled   bool
		wantWinner    int
		wantPoints    int
	}{
		{
			name: "highest lead suit wins without trump",
			trick: []PlayedCard{
				{Seat: 0, Card: Card{Suit: SuitHeart, Rank: 9}},
				{Seat: 1, Card: Card{Suit: SuitHeart, Rank: 13}},
				{Seat: 2, Card: Card{Suit: SuitClub, Rank: 14}}, // off-suit ace is worthless
				{Seat: 3, Card: Card{Suit: SuitHeart, Rank: 2}},
				{Seat: 4, Card: Card{Suit: SuitHeart, Rank: 11}},
			},
			giruda:     SuitDiamond,
			wantWinner: 1,
			wantPoints: 3, // K, A, J
		},
		{
			name: "trump beats lead suit",
			trick: []PlayedCard{
				{Seat: 2, Card: Card{Suit: SuitHeart, Rank: 14}},
				{Seat: 3, Card: Card{Suit: SuitDiamond, Rank: 2}},
				{Seat: 4, Card: Card{Suit: SuitHeart, Rank: 13}},
				{Seat: 0, Card: Card{Suit: SuitHeart, Rank: 12}},
				{Seat: 1, Card: Card{Suit: SuitHeart, Rank: 11}},
			},
			giruda:     SuitDiamond,
			wantWinner: 3,
			wantPoints: 4,
		},
		{
			name: "joker beats trump",
			trick: []PlayedCard{
				{Seat: 0, Card: Card{Suit: SuitClub, Rank: 10}},
				{Seat: 1, Card: Card{Suit: SuitDiamond, Rank: 14}},
				{Seat: 2, Card: Card{Suit: SuitJoker, Rank: 0}},
				{Seat: 3, Card: Card{Suit: SuitClub, Rank: 4}},
				{Seat: 4, Card: Card{Suit: SuitClub, Rank: 5}},
			},
			giruda:     SuitDiamond,
			wantWinner: 2,
			wantPoints: 2,
		},
		{
			name: "mighty beats joker and trump",
			trick: []PlayedCard{
				{Seat: 0, Card: Card{Suit: SuitDiamond, Rank: 14}},
				{Seat: 1, Card: Card{Suit: SuitJoker, Rank: 0}},
				{Seat: 2, Card: Card{Suit: SuitSpade, Rank: 14}},
				{Seat: 3, Card: Card{Suit: SuitDiamond, Rank: 13}},
				{Seat: 4, Card: Card{Suit: SuitDiamond, Rank: 2}},
			},
			giruda:     SuitDiamond,
			wantWinner: 2,
			wantPoints: 3,
		},
		{
			name: "spade trump moves mighty to diamond ace",
			trick: []PlayedCard{
				{Seat: 0, Card: Card{Suit: SuitSpade, Rank: 14}},
				{Seat: 1, Card: Card{Suit: SuitDiamond, Rank: 14}},
				{Seat: 2, Card: Card{Suit: SuitSpade, Rank: 13}},
				{Seat: 3, Card: Card{Suit: SuitSpade, Rank: 2}},
				{Seat: 4, Card: Card{Suit: SuitSpade, Rank: 3}},
			},
			giruda:     SuitSpade,
			wantWinner: 1,
			wantPoints: 3,
		},
		{
			name: "joker lead declares the follow suit",
			trick: []PlayedCard{
				{Seat: 3, Card: Card{Suit: SuitJoker, Rank: 0}},
				{Seat: 4, Card: Card{Suit: SuitHeart, Rank: 14}},
				{Seat: 0, Card: Card{Suit: SuitHeart, Rank: 2}},
				{Seat: 1, Card: Card{Suit: SuitHeart, Rank: 3}},
				{Seat: 2, Card: Card{Suit: SuitHeart, Rank: 4}},
			},
			giruda:        SuitClub,
			jokerLeadSuit: SuitHeart,
			wantWinner:    3,
			wantPoints:    1,
		},
		{
			name: "called joker loses to everything",
			trick: []PlayedCard{
				{Seat: 1, Card: Card{Suit: SuitClub, Rank: 3}},
				{Seat: 2, Card: Card{Suit: SuitJoker, Rank: 0}},
				{Seat: 3, Card: Card{Suit: SuitClub, Rank: 2}},
				{Seat: 4, Card: Card{Suit: SuitClub, Rank: 8}},
				{Seat: 0, Card: Card{Suit: SuitClub, Rank: 6}},
			},
			giruda:      SuitHeart,
			jokerCalled: true,
			wantWinner:  4,
			wantPoints:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ResolveTrick(tt.trick, tt.giruda, tt.jokerLeadSuit, tt.jokerCalled)
			if res.WinnerSeat != tt.wantWinner {
				t.Fatalf("winner = %d, want %d", res.WinnerSeat, tt.wantWinner)
			}
			if len(res.PointCards) != tt.wantPoints {
				t.Fatalf("point cards = %d, want %d", len(res.PointCards), tt.wantPoints)
			}
		})
	}
}

func TestResolveTrickDeterministic(t *testing.T) {
	trick := []PlayedCard{
		{Seat: 0, Card: Card{Suit: SuitHeart, Rank: 10}},
		{Seat: 1, Card: Card{Suit: SuitSpade, Rank: 5}},
		{Seat: 2, Card: Card{Suit: SuitHeart, Rank: 12}},
		{Seat: 3, Card: Card{Suit: SuitJoker, Rank: 0}},
		{Seat: 4, Card: Card{Suit: SuitHeart, Rank: 14}},
	}
	first := ResolveTrick(trick, SuitSpade, SuitNone, false)
	for i := 0; i < 100; i++ {
		if got := ResolveTrick(trick, SuitSpade, SuitNone, false); !reflect.DeepEqual(got, first) {
			t.Fatalf("resolution differs on repeat: %+v vs %+v", got, first)
		}
	}
}

func TestMustFollowSuit(t *testing.T) {
	hand := []Card{
		{Suit: SuitHeart, Rank: 4},
		{Suit: SuitClub, Rank: 9},
		{Suit: SuitSpade, Rank: 14}, // mighty under club trump
		{Suit: SuitJoker, Rank: 0},
	}

	tests := []struct {
		name string
		card Card
		lead Suit
		want bool
	}{
		{name: "off-suit while holding lead suit", card: Card{Suit: SuitClub, Rank: 9}, lead: SuitHeart, want: true},
		{name: "following the lead suit", card: Card{Suit: SuitHeart, Rank: 4}, lead: SuitHeart, want: false},
		{name: "mighty is always legal", card: Card{Suit: SuitSpade, Rank: 14}, lead: SuitHeart, want: false},
		{name: "joker is always legal", card: Card{Suit: SuitJoker, Rank: 0}, lead: SuitHeart, want: false},
		{name: "void in lead suit", card: Card{Suit: SuitClub, Rank: 9}, lead: SuitDiamond, want: false},
		{name: "leading is unrestricted", card: Card{Suit: SuitClub, Rank: 9}, lead: SuitNone, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustFollowSuit(hand, tt.card, tt.lead, SuitClub); got != tt.want {
				t.Fatalf("MustFollowSuit(%v, lead %s) = %v, want %v", tt.card, tt.lead, got, tt.want)
			}
		})
	}

	// A spade ace that is not the mighty binds like any other card.
	if got := MustFollowSuit(hand, Card{Suit: SuitSpade, Rank: 14}, SuitHeart, SuitSpade); got != true {
		t.Fatalf("plain spade ace should be bound by follow-suit when spades are trump and the mighty moved")
	}
}

func TestValidDeal(t *testing.T) {
	noPoints := []Card{
		{Suit: SuitHeart, Rank: 2}, {Suit: SuitHeart, Rank: 3}, {Suit: SuitClub, Rank: 4},
		{Suit: SuitDiamond, Rank: 5}, {Suit: SuitSpade, Rank: 6}, {Suit: SuitClub, Rank: 7},
		{Suit: SuitHeart, Rank: 8}, {Suit: SuitDiamond, Rank: 9}, {Suit: SuitClub, Rank: 2},
		{Suit: SuitSpade, Rank: 3},
	}
	if ValidDeal(noPoints) {
		t.Fatalf("hand without point cards must be a misdeal")
	}

	onlyMighty := append(append([]Card{}, noPoints[:9]...), Card{Suit: SuitSpade, Rank: 14})
	if ValidDeal(onlyMighty) {
		t.Fatalf("hand whose only point card is the mighty must be a misdeal")
	}

	withKing := append(append([]Card{}, noPoints[:9]...), Card{Suit: SuitHeart, Rank: 13})
	if !ValidDeal(withKing) {
		t.Fatalf("hand with a non-mighty point card is valid")
	}
}
