// Package app implements the game engine as a command pipeline: each
// accepted command applies exactly one transition to the round and returns
// the ordered batch of events to deliver. Rejected commands return a
// sentinel error and leave the round untouched.
package app

import (
	"math/rand"

	"mighty/internal/config"
	"mighty/internal/domain"
)

// Service executes game commands against a round. It holds no round state
// itself; the owning room actor passes its round into every call, so a
// single Service instance is safe per room.
type Service struct {
	rng   *rand.Rand
	rules *config.Rules
}

// NewService returns a Service using the given randomness source for deals.
func NewService(rng *rand.Rand, rules *config.Rules) *Service {
	return &Service{rng: rng, rules: rules}
}

// Rules exposes the table policy the service runs with.
func (s *Service) Rules() *config.Rules {
	return s.rules
}

// BidRevision is the optional raise submitted together with the discard.
type BidRevision struct {
	Score int
	Suit  domain.Suit
}

// StartRound deals a fresh round with the given opening seat. Invalid deals
// are repeated until every hand is playable.
func (s *Service) StartRound(roundNumber, openingSeat int) (*domain.Round, []Event) {
	r := domain.NewRound(openingSeat)
	events := []Event{broadcast(EventRoundStarted, RoundStartedPayload{
		Round:       roundNumber,
		OpeningSeat: openingSeat,
	})}

	s.deal(r)
	for !playableDeal(r) {
		events = append(events, broadcast(EventRedeal, RedealPayload{Reason: RedealReasonMisdeal}))
		r.ResetForRedeal()
		s.deal(r)
	}
	return r, append(events, handEvents(r)...)
}

// SubmitBid applies a contract offer from the seat on turn.
func (s *Service) SubmitBid(r *domain.Round, seat, score int, suit domain.Suit) ([]Event, error) {
	if r.Phase != domain.PhaseBidding {
		return nil, ErrWrongPhase
	}
	if r.Turn != seat {
		return nil, ErrNotYourTurn
	}
	if r.Passed[seat] {
		return nil, ErrAlreadyPassed
	}
	if !validBidSuit(suit) {
		return nil, ErrInvalidBidSuit
	}
	if score < s.rules.MinBid || score > s.rules.MaxBid {
		return nil, ErrBidOutOfRange
	}
	if r.Bid != nil && score <= r.Bid.Score {
		return nil, ErrBidTooLow
	}

	bid := domain.Bid{Seat: seat, Score: score, Suit: suit}
	r.Bid = &bid
	r.BidHistory = append(r.BidHistory, bid)
	r.Giruda = suit

	next := r.NextBidder(seat)
	if score == s.rules.MaxBid || next == domain.NoSeat {
		events := []Event{broadcast(EventBidUpdated, BidUpdatedPayload{
			Seat: seat, Score: score, Suit: suit, NextSeat: domain.NoSeat,
		})}
		return append(events, s.finishBidding(r)...), nil
	}
	r.Turn = next
	return []Event{broadcast(EventBidUpdated, BidUpdatedPayload{
		Seat: seat, Score: score, Suit: suit, NextSeat: next,
	})}, nil
}

// PassBid takes the seat on turn out of the auction for the rest of the
// round. The fifth pass without a standing bid invokes the all-pass policy.
func (s *Service) PassBid(r *domain.Round, seat int) ([]Event, error) {
	if r.Phase != domain.PhaseBidding {
		return nil, ErrWrongPhase
	}
	if r.Turn != seat {
		return nil, ErrNotYourTurn
	}
	if r.Passed[seat] {
		return nil, ErrAlreadyPassed
	}

	r.Passed[seat] = true
	r.PassCount++

	if r.PassCount == domain.SeatCount {
		events := []Event{broadcast(EventBidPassed, BidPassedPayload{Seat: seat, NextSeat: domain.NoSeat})}
		return append(events, s.resolveAllPass(r)...), nil
	}

	next := r.NextBidder(seat)
	if next == domain.NoSeat {
		events := []Event{broadcast(EventBidPassed, BidPassedPayload{Seat: seat, NextSeat: domain.NoSeat})}
		return append(events, s.finishBidding(r)...), nil
	}
	r.Turn = next
	return []Event{broadcast(EventBidPassed, BidPassedPayload{Seat: seat, NextSeat: next})}, nil
}

// DiscardAndRevise folds exactly three cards from the president's enlarged
// hand and optionally raises the contract. Both parts validate before either
// mutates.
func (s *Service) DiscardAndRevise(r *domain.Round, seat int, discards []domain.Card, rev *BidRevision) ([]Event, error) {
	if r.Phase != domain.PhaseDiscarding {
		return nil, ErrWrongPhase
	}
	if seat != r.PresidentSeat {
		return nil, ErrNotPresident
	}
	if len(discards) != domain.KittySize {
		return nil, ErrInvalidDiscard
	}
	hand := r.Players[seat].Hand
	seen := make(map[domain.Card]bool, len(discards))
	for _, c := range discards {
		if seen[c] || !domain.ContainsCard(hand, c) {
			return nil, ErrInvalidDiscard
		}
		seen[c] = true
	}
	if rev != nil {
		if !validBidSuit(rev.Suit) {
			return nil, ErrInvalidBidSuit
		}
		if rev.Score > s.rules.MaxBid {
			return nil, ErrInvalidRevision
		}
		if rev.Score != s.rules.MaxBid && rev.Score < r.Bid.Score+2 {
			return nil, ErrInvalidRevision
		}
	}

	r.Players[seat].Hand = domain.RemoveCards(hand, discards)
	r.Discarded = append([]domain.Card(nil), discards...)
	for _, c := range discards {
		if c.IsPointCard() {
			r.DiscardedPoints++
		}
	}

	events := []Event{broadcast(EventDiscardComplete, DiscardCompletePayload{PresidentSeat: seat})}
	if rev != nil {
		bid := domain.Bid{Seat: seat, Score: rev.Score, Suit: rev.Suit}
		r.Bid = &bid
		r.BidHistory = append(r.BidHistory, bid)
		r.Giruda = rev.Suit
		events = append(events, broadcast(EventBidRevised, BidRevisedPayload{Score: rev.Score, Suit: rev.Suit}))
	}

	r.Phase = domain.PhaseFriendSelection
	r.Turn = seat
	events = append(events, private(EventHandDealt, HandDealtPayload{
		Seat: seat,
		Hand: sortedCopy(r.Players[seat].Hand, r.Giruda),
	}, seat))
	return events, nil
}

// SelectFriend records the president's friend card, or no-friend when card
// is nil. The holding seat is resolved immediately but stays hidden until
// the card is played.
func (s *Service) SelectFriend(r *domain.Round, seat int, card *domain.Card) ([]Event, error) {
	if r.Phase != domain.PhaseFriendSelection {
		return nil, ErrWrongPhase
	}
	if seat != r.PresidentSeat {
		return nil, ErrNotPresident
	}
	if card == nil {
		r.NoFriend = true
	} else {
		c := *card
		if !domain.ValidCard(c) {
			return nil, ErrInvalidFriend
		}
		if domain.ContainsCard(r.Players[seat].Hand, c) || domain.ContainsCard(r.Discarded, c) {
			return nil, ErrInvalidFriend
		}
		r.FriendCard = &c
		for i, p := range r.Players {
			if domain.ContainsCard(p.Hand, c) {
				r.FriendSeat = i
				break
			}
		}
	}

	r.Phase = domain.PhasePlaying
	r.Turn = r.PresidentSeat
	return []Event{broadcast(EventFriendSelected, FriendSelectedPayload{
		Card:     r.FriendCard,
		NoFriend: r.NoFriend,
	})}, nil
}

// PlayCard lays one card into the current trick. jokerSuit declares the
// effective lead suit of a joker lead; callJoker arms a joker call and is
// only meaningful when leading the call card.
func (s *Service) PlayCard(r *domain.Round, seat int, card domain.Card, jokerSuit domain.Suit, callJoker bool) ([]Event, error) {
	if r.Phase != domain.PhasePlaying {
		return nil, ErrWrongPhase
	}
	if r.Turn != seat {
		return nil, ErrNotYourTurn
	}
	hand := r.Players[seat].Hand
	if !domain.ContainsCard(hand, card) {
		return nil, ErrCardNotHeld
	}

	leading := len(r.Trick) == 0
	if leading {
		if card.IsJoker() {
			switch jokerSuit {
			case domain.SuitSpade, domain.SuitDiamond, domain.SuitHeart, domain.SuitClub:
			default:
				return nil, ErrJokerSuitNeeded
			}
		} else {
			jokerSuit = domain.SuitNone
		}
		callJoker = callJoker && card == domain.JokerCallCard
	} else {
		if domain.MustFollowSuit(hand, card, r.LeadSuit(), r.Giruda) {
			return nil, ErrMustFollowSuit
		}
		if r.JokerCalled && !card.IsJoker() && domain.HoldsJoker(hand) {
			return nil, ErrJokerCallPending
		}
		jokerSuit = domain.SuitNone
		callJoker = false
	}

	if leading {
		r.JokerCalled = callJoker
		r.JokerLeadSuit = jokerSuit
	}
	r.Players[seat].Hand = domain.RemoveCards(hand, []domain.Card{card})
	r.Trick = append(r.Trick, domain.PlayedCard{Seat: seat, Card: card})

	played := CardPlayedPayload{
		Seat:       seat,
		Card:       card,
		JokerSuit:  jokerSuit,
		JokerCall:  callJoker,
		FriendSeat: domain.NoSeat,
	}
	if r.FriendCard != nil && !r.FriendRevealed && card == *r.FriendCard {
		r.FriendRevealed = true
		played.FriendSeat = r.FriendSeat
	}

	if len(r.Trick) < domain.SeatCount {
		r.Turn = (seat + 1) % domain.SeatCount
		played.NextSeat = r.Turn
		return []Event{broadcast(EventCardPlayed, played)}, nil
	}

	res := domain.ResolveTrick(r.Trick, r.Giruda, r.JokerLeadSuit, r.JokerCalled)
	winner := r.Players[res.WinnerSeat]
	for _, pc := range r.Trick {
		winner.Captured = append(winner.Captured, pc.Card)
	}
	r.Trick = nil
	r.JokerCalled = false
	r.JokerLeadSuit = domain.SuitNone
	r.TricksPlayed++
	r.Turn = res.WinnerSeat
	played.NextSeat = res.WinnerSeat

	events := []Event{
		broadcast(EventCardPlayed, played),
		broadcast(EventTrickCleared, TrickClearedPayload{
			TrickNumber: r.TricksPlayed,
			WinnerSeat:  res.WinnerSeat,
			PointCards:  res.PointCards,
		}),
	}
	if r.TricksPlayed < domain.TricksPerRound {
		return events, nil
	}

	r.Phase = domain.PhaseScored
	r.FriendRevealed = true
	result := r.ScoreRound(s.rules.MinBid, s.rules.Score)
	return append(events, broadcast(EventRoundScored, RoundScoredPayload{
		Success:    result.Success,
		Captured:   result.Captured,
		BidScore:   result.BidScore,
		Deltas:     result.Deltas,
		FriendSeat: r.FriendSeat,
		NoFriend:   r.NoFriend,
		FriendCard: r.FriendCard,
	})), nil
}

// resolveAllPass applies the configured policy after five passes with no bid.
func (s *Service) resolveAllPass(r *domain.Round) []Event {
	if s.rules.AllPassPolicy == config.AllPassDealerMinimum {
		bid := domain.Bid{Seat: r.OpeningSeat, Score: s.rules.MinBid, Suit: domain.SuitSpade}
		r.Bid = &bid
		r.BidHistory = append(r.BidHistory, bid)
		r.Giruda = bid.Suit
		return s.finishBidding(r)
	}

	events := []Event{broadcast(EventRedeal, RedealPayload{Reason: RedealReasonAllPass})}
	r.ResetForRedeal()
	s.deal(r)
	for !playableDeal(r) {
		events = append(events, broadcast(EventRedeal, RedealPayload{Reason: RedealReasonMisdeal}))
		r.ResetForRedeal()
		s.deal(r)
	}
	return append(events, handEvents(r)...)
}

// finishBidding seats the president, merges the kitty into their hand and
// moves the round to the discarding phase.
func (s *Service) finishBidding(r *domain.Round) []Event {
	r.PresidentSeat = r.Bid.Seat
	r.Giruda = r.Bid.Suit
	r.Phase = domain.PhaseDiscarding
	r.Turn = r.PresidentSeat

	p := r.Players[r.PresidentSeat]
	kitty := r.Kitty
	p.Hand = append(p.Hand, kitty...)
	r.Kitty = nil

	return []Event{
		broadcast(EventBiddingComplete, BiddingCompletePayload{
			PresidentSeat: r.PresidentSeat,
			Score:         r.Bid.Score,
			Suit:          r.Bid.Suit,
		}),
		private(EventKittyDealt, KittyDealtPayload{
			Kitty: kitty,
			Hand:  sortedCopy(p.Hand, r.Giruda),
		}, r.PresidentSeat),
	}
}

// deal shuffles a fresh deck into five hands and the kitty.
func (s *Service) deal(r *domain.Round) {
	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	for seat := 0; seat < domain.SeatCount; seat++ {
		lo := seat * domain.HandSize
		r.Players[seat].Hand = append([]domain.Card(nil), deck[lo:lo+domain.HandSize]...)
	}
	r.Kitty = append([]domain.Card(nil), deck[domain.SeatCount*domain.HandSize:]...)
}

func playableDeal(r *domain.Round) bool {
	for _, p := range r.Players {
		if !domain.ValidDeal(p.Hand) {
			return false
		}
	}
	return true
}

func handEvents(r *domain.Round) []Event {
	events := make([]Event, 0, domain.SeatCount)
	for seat := 0; seat < domain.SeatCount; seat++ {
		events = append(events, private(EventHandDealt, HandDealtPayload{
			Seat: seat,
			Hand: sortedCopy(r.Players[seat].Hand, domain.SuitNone),
		}, seat))
	}
	return events
}

func validBidSuit(suit domain.Suit) bool {
	switch suit {
	case domain.SuitSpade, domain.SuitDiamond, domain.SuitHeart, domain.SuitClub, domain.SuitNone:
		return true
	default:
		return false
	}
}

func sortedCopy(cards []domain.Card, giruda domain.Suit) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	domain.SortForDisplay(out, giruda)
	return out
}
