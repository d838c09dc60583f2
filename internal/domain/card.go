package domain

import "sort"

// Suit identifies one of the four French suits, or the joker pseudo-suit.
type Suit string

const (
	SuitSpade   Suit = "spade"
	SuitDiamond Suit = "diamond"
	SuitHeart   Suit = "heart"
	SuitClub    Suit = "club"
	SuitJoker   Suit = "joker"
	// SuitNone marks the absence of a suit, e.g. a no-trump bid.
	SuitNone Suit = ""
)

// Card is a single card in the 53-card Mighty deck. Equality is by value.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"` // 2..14, 14 = ace; 0 for the joker
}

// JokerCallCard is the card whose lead may call out the joker.
var JokerCallCard = Card{Suit: SuitClub, Rank: 3}

func (c Card) IsJoker() bool {
	return c.Suit == SuitJoker
}

// IsPointCard reports whether the card counts toward the bid (10, J, Q, K, A).
func (c Card) IsPointCard() bool {
	return !c.IsJoker() && c.Rank >= 10
}

// IsMighty reports whether the card is the mighty under the given trump suit.
func (c Card) IsMighty(giruda Suit) bool {
	return c == MightyCard(giruda)
}

// MightyCard returns the mighty for the given trump suit: the spade ace, or
// the diamond ace when spades are trump.
func MightyCard(giruda Suit) Card {
	if giruda == SuitSpade {
		return Card{Suit: SuitDiamond, Rank: 14}
	}
	return Card{Suit: SuitSpade, Rank: 14}
}

// ValidCard reports whether the suit/rank pair names a card that exists in
// the deck.
func ValidCard(c Card) bool {
	if c.Suit == SuitJoker {
		return c.Rank == 0
	}
	switch c.Suit {
	case SuitSpade, SuitDiamond, SuitHeart, SuitClub:
		return c.Rank >= 2 && c.Rank <= 14
	default:
		return false
	}
}

// NewDeck returns the ordered 53-card deck: joker plus 2..A of each suit.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	deck = append(deck, Card{Suit: SuitJoker, Rank: 0})
	for _, s := range []Suit{SuitSpade, SuitDiamond, SuitHeart, SuitClub} {
		for r := 2; r <= 14; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// SortForDisplay orders cards the way clients present a hand: mighty first,
// then joker, then trump descending, then the remaining suits descending.
func SortForDisplay(cards []Card, giruda Suit) {
	suitOrder := map[Suit]int{SuitSpade: 0, SuitDiamond: 1, SuitHeart: 2, SuitClub: 3}
	key := func(c Card) [3]int {
		switch {
		case c.IsMighty(giruda):
			return [3]int{0, 0, 0}
		case c.IsJoker():
			return [3]int{1, 0, 0}
		case giruda != SuitNone && c.Suit == giruda:
			return [3]int{2, 0, -c.Rank}
		default:
			return [3]int{3, suitOrder[c.Suit], -c.Rank}
		}
	}
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := key(cards[i]), key(cards[j])
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
}

// RemoveCards removes the given cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	removeCounts := make(map[Card]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}
	updated := make([]Card, 0, len(hand))
	for _, c := range hand {
		if n, ok := removeCounts[c]; ok && n > 0 {
			removeCounts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}

// ContainsCard reports whether the hand holds the exact card.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}
