package app

import "mighty/internal/domain"

// EventKind names an outbound notification. The port layer maps kinds to
// wire opcodes.
type EventKind string

const (
	EventWelcome            EventKind = "welcome"
	EventPlayerJoined       EventKind = "player_joined"
	EventPlayerLeft         EventKind = "player_left"
	EventPlayerReady        EventKind = "player_ready"
	EventPlayerDisconnected EventKind = "player_disconnected"
	EventPlayerReconnected  EventKind = "player_reconnected"

	EventRoundStarted    EventKind = "round_started"
	EventHandDealt       EventKind = "hand_dealt"
	EventRedeal          EventKind = "redeal"
	EventBidUpdated      EventKind = "bid_updated"
	EventBidPassed       EventKind = "bid_passed"
	EventBiddingComplete EventKind = "bidding_complete"
	EventKittyDealt      EventKind = "kitty_dealt"
	EventDiscardComplete EventKind = "discard_complete"
	EventBidRevised      EventKind = "bid_revised"
	EventFriendSelected  EventKind = "friend_selected"
	EventCardPlayed      EventKind = "card_played"
	EventTrickCleared    EventKind = "trick_cleared"
	EventRoundScored     EventKind = "round_scored"
	EventGameOver        EventKind = "game_over"
	EventStateSnapshot   EventKind = "state_snapshot"
	EventError           EventKind = "error"
)

// Event is one outbound notification produced by an accepted command.
// Events of a command are delivered as a batch, in order. An empty Seats
// slice addresses every seat in the room.
type Event struct {
	Kind    EventKind
	Payload any
	Seats   []int
}

func broadcast(kind EventKind, payload any) Event {
	return Event{Kind: kind, Payload: payload}
}

func private(kind EventKind, payload any, seat int) Event {
	return Event{Kind: kind, Payload: payload, Seats: []int{seat}}
}

// RoundStartedPayload opens a round: who bids first.
type RoundStartedPayload struct {
	Round       int `json:"round"`
	OpeningSeat int `json:"opening_seat"`
}

// HandDealtPayload privately delivers a seat's current hand.
type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

// RedealPayload announces that the deal was voided and repeated.
type RedealPayload struct {
	Reason string `json:"reason"`
}

const (
	RedealReasonMisdeal = "misdeal"
	RedealReasonAllPass = "all_pass"
)

type BidUpdatedPayload struct {
	Seat     int         `json:"seat"`
	Score    int         `json:"score"`
	Suit     domain.Suit `json:"suit"`
	NextSeat int         `json:"next_seat"`
}

type BidPassedPayload struct {
	Seat     int `json:"seat"`
	NextSeat int `json:"next_seat"`
}

type BiddingCompletePayload struct {
	PresidentSeat int         `json:"president_seat"`
	Score         int         `json:"score"`
	Suit          domain.Suit `json:"suit"`
}

// KittyDealtPayload privately shows the president their merged 13-card hand.
type KittyDealtPayload struct {
	Kitty []domain.Card `json:"kitty"`
	Hand  []domain.Card `json:"hand"`
}

type DiscardCompletePayload struct {
	PresidentSeat int `json:"president_seat"`
}

type BidRevisedPayload struct {
	Score int         `json:"score"`
	Suit  domain.Suit `json:"suit"`
}

// FriendSelectedPayload reveals the named card, never the holder.
type FriendSelectedPayload struct {
	Card     *domain.Card `json:"card,omitempty"`
	NoFriend bool         `json:"no_friend"`
}

type CardPlayedPayload struct {
	Seat      int         `json:"seat"`
	Card      domain.Card `json:"card"`
	JokerSuit domain.Suit `json:"joker_suit,omitempty"`
	JokerCall bool        `json:"joker_call,omitempty"`
	// FriendSeat is set on the play that reveals the friend, NoSeat otherwise.
	FriendSeat int `json:"friend_seat"`
	NextSeat   int `json:"next_seat"`
}

type TrickClearedPayload struct {
	TrickNumber int           `json:"trick_number"`
	WinnerSeat  int           `json:"winner_seat"`
	PointCards  []domain.Card `json:"point_cards"`
}

type RoundScoredPayload struct {
	Success    bool                  `json:"success"`
	Captured   int                   `json:"captured"`
	BidScore   int                   `json:"bid_score"`
	Deltas     [domain.SeatCount]int `json:"deltas"`
	FriendSeat int                   `json:"friend_seat"`
	NoFriend   bool                  `json:"no_friend"`
	FriendCard *domain.Card          `json:"friend_card,omitempty"`
}

// GameOverPayload closes the session with final totals.
type GameOverPayload struct {
	Totals [domain.SeatCount]int `json:"totals"`
	Rounds int                   `json:"rounds"`
}
