package domain

// Phase represents the lifecycle stage of a Mighty round.
type Phase string

const (
	// PhaseLobby is the pre-game state where players join and ready up.
	PhaseLobby Phase = "lobby"
	// PhaseBidding runs the turn-ordered auction for the contract.
	PhaseBidding Phase = "bidding"
	// PhaseDiscarding has the president fold three cards after taking the kitty.
	PhaseDiscarding Phase = "discarding"
	// PhaseFriendSelection has the president name the friend card.
	PhaseFriendSelection Phase = "friend_selection"
	// PhasePlaying is the ten-trick card play.
	PhasePlaying Phase = "playing"
	// PhaseScored marks a finished, scored round awaiting the next deal.
	PhaseScored Phase = "scored"
)

const (
	// SeatCount is the fixed number of seats in a Mighty room.
	SeatCount = 5
	// HandSize is the number of cards each seat holds after the deal.
	HandSize = 10
	// KittySize is the number of face-down cards given to the president.
	KittySize = 3
	// DeckSize is the full deck including the joker.
	DeckSize = 53
	// TricksPerRound is the number of tricks in a complete round.
	TricksPerRound = 10
	// NoSeat marks an unset seat reference.
	NoSeat = -1
)

// Bid is a contract offer: the trump suit and the number of point cards
// promised. Suit may be SuitNone for a no-trump contract.
type Bid struct {
	Seat  int  `json:"seat"`
	Score int  `json:"score"`
	Suit  Suit `json:"suit"`
}

// PlayedCard is one card laid into the current trick, tagged with its seat.
type PlayedCard struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Player holds the per-seat state within a round.
type Player struct {
	Seat     int
	Hand     []Card
	Captured []Card // every card taken in won tricks; points are a filter over it
}

// Round is the authoritative state of a single Mighty deal. It is owned by
// exactly one room actor and never shared.
type Round struct {
	Phase       Phase
	Players     [SeatCount]*Player
	OpeningSeat int // seat that bids first this round
	Turn        int // seat currently on turn

	Bid        *Bid
	BidHistory []Bid
	Passed     [SeatCount]bool
	PassCount  int
	Giruda     Suit // trump suit of the standing bid; SuitNone = no trump

	PresidentSeat int
	Kitty         []Card
	Discarded     []Card
	// DiscardedPoints counts point cards folded by the president; they leave
	// play but still count toward the contract.
	DiscardedPoints int

	FriendCard     *Card
	FriendSeat     int // resolved at selection time, hidden until revealed
	NoFriend       bool
	FriendRevealed bool

	Trick         []PlayedCard
	JokerLeadSuit Suit // effective lead suit declared with a joker lead
	JokerCalled   bool // joker call is active for the current trick
	TricksPlayed  int
}

// NewRound returns an empty round in the bidding phase with the given
// opening seat on turn. Hands are dealt separately.
func NewRound(openingSeat int) *Round {
	r := &Round{
		Phase:         PhaseBidding,
		OpeningSeat:   openingSeat,
		Turn:          openingSeat,
		PresidentSeat: NoSeat,
		FriendSeat:    NoSeat,
	}
	for i := 0; i < SeatCount; i++ {
		r.Players[i] = &Player{Seat: i}
	}
	return r
}

// ResetForRedeal clears auction state ahead of a fresh deal, keeping the
// opening seat.
func (r *Round) ResetForRedeal() {
	r.Bid = nil
	r.BidHistory = nil
	r.Passed = [SeatCount]bool{}
	r.PassCount = 0
	r.Giruda = SuitNone
	r.Kitty = nil
	r.Turn = r.OpeningSeat
	for _, p := range r.Players {
		p.Hand = nil
	}
}

// LeadSuit returns the suit the current trick must follow, resolving a joker
// lead to its declared suit. SuitNone when no card has been led.
func (r *Round) LeadSuit() Suit {
	if len(r.Trick) == 0 {
		return SuitNone
	}
	if r.Trick[0].Card.IsJoker() {
		return r.JokerLeadSuit
	}
	return r.Trick[0].Card.Suit
}

// NextBidder returns the next seat still contesting the auction, skipping
// passed seats and the standing bidder. NoSeat means the auction is decided.
func (r *Round) NextBidder(from int) int {
	seat := from
	for i := 0; i < SeatCount; i++ {
		seat = (seat + 1) % SeatCount
		if r.Passed[seat] {
			continue
		}
		if r.Bid != nil && seat == r.Bid.Seat {
			continue
		}
		return seat
	}
	return NoSeat
}

// OnPresidentTeam reports whether the seat belongs to the president's side.
// The engine always computes on the true friend seat, disclosed or not.
func (r *Round) OnPresidentTeam(seat int) bool {
	return seat == r.PresidentSeat || (!r.NoFriend && seat == r.FriendSeat)
}

// CardsInPlay returns every card the round currently accounts for: hands,
// kitty, discard, the in-progress trick and all captures. At any point in a
// round this is a permutation of the full deck.
func (r *Round) CardsInPlay() []Card {
	out := make([]Card, 0, DeckSize)
	for _, p := range r.Players {
		out = append(out, p.Hand...)
		out = append(out, p.Captured...)
	}
	out = append(out, r.Kitty...)
	out = append(out, r.Discarded...)
	for _, pc := range r.Trick {
		out = append(out, pc.Card)
	}
	return out
}
