package domain

// Card power bands for trick comparison. Within a band the card rank breaks
// ties; across bands the higher band always wins.
const (
	powerMighty    = 1000
	powerJoker     = 900
	powerGiruda    = 800
	powerLeadSuit  = 700
	powerJokerDead = 0 // joker in a joker-called trick
)

// CardPower computes the strength of a played card for trick resolution.
// The joker outranks trump, the mighty outranks everything, and a
// joker-called joker loses to any card.
func CardPower(c Card, giruda, leadSuit Suit, jokerCalled bool) int {
	if c.IsJoker() {
		if jokerCalled {
			return powerJokerDead
		}
		return powerJoker
	}
	if c.IsMighty(giruda) {
		return powerMighty
	}
	if giruda != SuitNone && c.Suit == giruda {
		return powerGiruda + c.Rank
	}
	if c.Suit == leadSuit {
		return powerLeadSuit + c.Rank
	}
	return c.Rank
}

// TrickResult is the outcome of a resolved trick.
type TrickResult struct {
	WinnerSeat int
	PointCards []Card
}

// ResolveTrick determines the winning seat of a completed trick and the
// point cards it carried. Pure: same inputs, same result. jokerLeadSuit is
// the suit declared when the trick was opened with the joker.
func ResolveTrick(trick []PlayedCard, giruda, jokerLeadSuit Suit, jokerCalled bool) TrickResult {
	leadSuit := trick[0].Card.Suit
	if trick[0].Card.IsJoker() {
		leadSuit = jokerLeadSuit
	}

	res := TrickResult{WinnerSeat: trick[0].Seat}
	highest := -1
	for _, pc := range trick {
		if p := CardPower(pc.Card, giruda, leadSuit, jokerCalled); p > highest {
			highest = p
			res.WinnerSeat = pc.Seat
		}
		if pc.Card.IsPointCard() {
			res.PointCards = append(res.PointCards, pc.Card)
		}
	}
	return res
}

// MustFollowSuit reports whether playing card from hand violates the
// follow-suit obligation for the given lead suit. The mighty and the joker
// are exempt, and cards of the lead suit held behind them do not bind a
// player who is out of plain lead-suit cards.
func MustFollowSuit(hand []Card, card Card, leadSuit, giruda Suit) bool {
	if leadSuit == SuitNone {
		return false
	}
	if card.IsJoker() || card.IsMighty(giruda) {
		return false
	}
	if card.Suit == leadSuit {
		return false
	}
	for _, c := range hand {
		if c.IsJoker() || c.IsMighty(giruda) {
			continue
		}
		if c.Suit == leadSuit {
			return true
		}
	}
	return false
}

// HoldsJoker reports whether the hand still contains the joker, used to
// enforce a joker call.
func HoldsJoker(hand []Card) bool {
	for _, c := range hand {
		if c.IsJoker() {
			return true
		}
	}
	return false
}

// ValidDeal reports whether a dealt hand is playable: it must hold at least
// one point card other than the mighty, else the deal is void and repeated.
func ValidDeal(hand []Card) bool {
	mighty := MightyCard(SuitNone)
	for _, c := range hand {
		if c.IsPointCard() && c != mighty {
			return true
		}
	}
	return false
}
