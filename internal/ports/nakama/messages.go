package nakama

import (
	"mighty/internal/app"
	"mighty/internal/domain"
)

// Wire DTOs for client requests and port-level events. Game events from the
// app layer marshal their own payloads; these cover the envelope the port
// owns.

// CardMessage is the wire form of a card.
type CardMessage struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

func (m CardMessage) toDomain() domain.Card {
	return domain.Card{Suit: domain.Suit(m.Suit), Rank: m.Rank}
}

// SubmitBidRequest is the payload of OpSubmitBid.
type SubmitBidRequest struct {
	Score int    `json:"score"`
	Suit  string `json:"suit"`
}

// BidRevisionMessage is the optional raise carried by a discard request.
type BidRevisionMessage struct {
	Score int    `json:"score"`
	Suit  string `json:"suit"`
}

// DiscardRequest is the payload of OpDiscardAndRevise.
type DiscardRequest struct {
	Discards []CardMessage       `json:"discards"`
	Revision *BidRevisionMessage `json:"revision,omitempty"`
}

// SubmitFriendRequest is the payload of OpSubmitFriend. NoFriend set means
// Card is ignored.
type SubmitFriendRequest struct {
	NoFriend bool         `json:"no_friend"`
	Card     *CardMessage `json:"card,omitempty"`
}

// SubmitCardRequest is the payload of OpSubmitCard. JokerSuit is required on
// a joker lead; JokerCall only takes effect when leading the call card.
type SubmitCardRequest struct {
	Card      CardMessage `json:"card"`
	JokerSuit string      `json:"joker_suit,omitempty"`
	JokerCall bool        `json:"joker_call,omitempty"`
}

// WelcomePayload privately hands a joining player their seat and the bearer
// token that reclaims it after a disconnect.
type WelcomePayload struct {
	Seat       int    `json:"seat"`
	Token      string `json:"token"`
	RoomName   string `json:"room_name"`
	MaxPlayers int    `json:"max_players"`
}

// PlayerJoinedPayload announces a newly seated player.
type PlayerJoinedPayload struct {
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
}

// SeatPayload is the shared shape of seat-only notices: left, ready,
// disconnected, reconnected.
type SeatPayload struct {
	Seat int `json:"seat"`
}

// ErrorPayload is sent privately to the seat whose request was rejected.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// eventOpCode maps an app event kind to its wire opcode.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventWelcome:
		return OpWelcome, true
	case app.EventPlayerJoined:
		return OpPlayerJoined, true
	case app.EventPlayerLeft:
		return OpPlayerLeft, true
	case app.EventPlayerReady:
		return OpPlayerReady, true
	case app.EventPlayerDisconnected:
		return OpPlayerDisconnected, true
	case app.EventPlayerReconnected:
		return OpPlayerReconnected, true
	case app.EventRoundStarted:
		return OpRoundStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventRedeal:
		return OpRedeal, true
	case app.EventBidUpdated:
		return OpBidUpdated, true
	case app.EventBidPassed:
		return OpBidPassed, true
	case app.EventBiddingComplete:
		return OpBiddingComplete, true
	case app.EventKittyDealt:
		return OpKittyDealt, true
	case app.EventDiscardComplete:
		return OpDiscardComplete, true
	case app.EventBidRevised:
		return OpBidRevised, true
	case app.EventFriendSelected:
		return OpFriendSelected, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickCleared:
		return OpTrickCleared, true
	case app.EventRoundScored:
		return OpRoundScored, true
	case app.EventGameOver:
		return OpGameOver, true
	case app.EventStateSnapshot:
		return OpStateSnapshot, true
	case app.EventError:
		return OpError, true
	default:
		return 0, false
	}
}
