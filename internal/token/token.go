// Package token issues and verifies the reconnection tokens handed to each
// seat. A token is a bearer secret: whoever presents it may rebind the seat
// to a new connection, so it is only ever delivered to its own seat.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("reconnection token is invalid")
	ErrWrongRoom    = errors.New("reconnection token was issued for another room")
)

// SeatClaims binds a token to one seat of one match.
type SeatClaims struct {
	MatchID string `json:"match_id"`
	UserID  string `json:"user_id"`
	Seat    int    `json:"seat"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies seat tokens with a shared HMAC key.
type Issuer struct {
	key []byte
	ttl time.Duration
}

// NewIssuer returns an Issuer signing with key. ttl bounds how long a
// dropped player can still reclaim their seat.
func NewIssuer(key string, ttl time.Duration) *Issuer {
	return &Issuer{key: []byte(key), ttl: ttl}
}

// Issue creates a signed token for the given seat of the given match.
func (i *Issuer) Issue(matchID, userID string, seat int) (string, error) {
	now := time.Now()
	claims := SeatClaims{
		MatchID: matchID,
		UserID:  userID,
		Seat:    seat,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign seat token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and checks it was issued for matchID. The caller
// still owns the decision of whether the named seat can be rebound.
func (i *Issuer) Verify(tokenString, matchID string) (*SeatClaims, error) {
	claims := &SeatClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.MatchID != matchID {
		return nil, ErrWrongRoom
	}
	return claims, nil
}
