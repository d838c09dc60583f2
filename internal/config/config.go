package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"mighty/internal/domain"
)

// AllPassPolicy selects what happens when every seat passes during bidding.
type AllPassPolicy string

const (
	// AllPassRedeal voids the round and deals again.
	AllPassRedeal AllPassPolicy = "redeal"
	// AllPassDealerMinimum forces the opening seat into a spade minimum bid.
	AllPassDealerMinimum AllPassPolicy = "dealer_minimum"
)

// Rules is the game policy for a room: auction bounds, scoring table and
// session housekeeping. Everything the card rules leave to the table.
type Rules struct {
	MinBid        int                     `json:"min_bid"`
	MaxBid        int                     `json:"max_bid"`
	AllPassPolicy AllPassPolicy           `json:"all_pass_policy"`
	Score         domain.ScoreMultipliers `json:"score"`
	// RoundLimit is the number of rounds before the session ends.
	RoundLimit int `json:"round_limit"`
	// TeardownGraceTicks is how many match ticks an in-game room survives
	// with every seat disconnected. Lobbies tear down immediately.
	TeardownGraceTicks int64 `json:"teardown_grace_ticks"`
	// BidTurnTimeoutTicks auto-passes a bidding seat that has been silent
	// this many ticks. Zero disables the timer.
	BidTurnTimeoutTicks int64 `json:"bid_turn_timeout_ticks"`
}

// DefaultRules returns the conventional table settings.
func DefaultRules() *Rules {
	return &Rules{
		MinBid:              13,
		MaxBid:              20,
		AllPassPolicy:       AllPassRedeal,
		Score:               domain.ScoreMultipliers{President: 2, Friend: 1, NoFriendPresident: 4},
		RoundLimit:          10,
		TeardownGraceTicks:  60,
		BidTurnTimeoutTicks: 0,
	}
}

var (
	rules    *Rules
	loadOnce sync.Once
	loadErr  error
)

// LoadRules loads the rules file once for the process. Later calls return
// the first result.
func LoadRules(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read rules config: %w", err)
			return
		}
		r := DefaultRules()
		if err := json.Unmarshal(data, r); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal rules config: %w", err)
			return
		}
		if err := r.Validate(); err != nil {
			loadErr = fmt.Errorf("invalid rules config: %w", err)
			return
		}
		rules = r
	})
	return loadErr
}

// GetRules returns the loaded rules, or the defaults when no file was loaded.
func GetRules() *Rules {
	if rules == nil {
		return DefaultRules()
	}
	return rules
}

// Validate rejects rule sets the engine cannot run with.
func (r *Rules) Validate() error {
	if r.MinBid < 1 || r.MaxBid <= r.MinBid {
		return fmt.Errorf("bid range %d..%d is not usable", r.MinBid, r.MaxBid)
	}
	if r.MaxBid > 20 {
		return fmt.Errorf("max bid %d exceeds the 20 point cards in the deck", r.MaxBid)
	}
	switch r.AllPassPolicy {
	case AllPassRedeal, AllPassDealerMinimum:
	default:
		return fmt.Errorf("unknown all-pass policy %q", r.AllPassPolicy)
	}
	if r.RoundLimit < 1 {
		return fmt.Errorf("round limit %d is not usable", r.RoundLimit)
	}
	return nil
}
