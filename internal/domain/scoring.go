package domain

// ScoreMultipliers parameterize how a round's base score is distributed.
// Defaults mirror the conventional table: the president swings double, the
// friend single, and a friendless president quadruple.
type ScoreMultipliers struct {
	President         int `json:"president"`
	Friend            int `json:"friend"`
	NoFriendPresident int `json:"no_friend_president"`
}

// RoundResult is the scored outcome of a completed round.
type RoundResult struct {
	Success  bool           `json:"success"`
	Captured int            `json:"captured"`
	BidScore int            `json:"bid_score"`
	Deltas   [SeatCount]int `json:"deltas"`
}

// CapturedPoints counts the point cards taken by the president's side,
// including the points folded at discard time.
func (r *Round) CapturedPoints() int {
	total := r.DiscardedPoints
	for seat, p := range r.Players {
		if !r.OnPresidentTeam(seat) {
			continue
		}
		for _, c := range p.Captured {
			if c.IsPointCard() {
				total++
			}
		}
	}
	return total
}

// ScoreRound compares the president side's captures against the contract
// and produces per-seat score deltas.
//
// On success the base is (captured - bid) + (bid - minBid)*2; on failure it
// is (bid - captured). The president gains or loses the base times their
// multiplier, the friend times theirs, and each opposition seat moves by
// the base in the opposite direction.
func (r *Round) ScoreRound(minBid int, m ScoreMultipliers) RoundResult {
	captured := r.CapturedPoints()
	res := RoundResult{Captured: captured, BidScore: r.Bid.Score}

	var base int
	if captured >= r.Bid.Score {
		res.Success = true
		base = (captured - r.Bid.Score) + (r.Bid.Score-minBid)*2
	} else {
		base = r.Bid.Score - captured
	}

	presidentFactor := m.President
	if r.NoFriend || r.FriendSeat == NoSeat {
		presidentFactor = m.NoFriendPresident
	}

	sign := 1
	if !res.Success {
		sign = -1
	}

	for seat := 0; seat < SeatCount; seat++ {
		switch {
		case seat == r.PresidentSeat:
			res.Deltas[seat] = sign * base * presidentFactor
		case !r.NoFriend && seat == r.FriendSeat:
			res.Deltas[seat] = sign * base * m.Friend
		default:
			res.Deltas[seat] = -sign * base
		}
	}
	return res
}
