package app

import "errors"

// Validation errors returned by game commands. The port reports them to the
// requester only; room state is unchanged when any of these is returned.
var (
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrNotYourTurn      = errors.New("it is not this seat's turn")
	ErrAlreadyPassed    = errors.New("seat has already passed this auction")
	ErrBidOutOfRange    = errors.New("bid score is outside the legal range")
	ErrBidTooLow        = errors.New("bid score must exceed the standing bid")
	ErrInvalidBidSuit   = errors.New("bid suit is not a valid trump choice")
	ErrNotPresident     = errors.New("only the president may do this")
	ErrInvalidDiscard   = errors.New("discard selection is invalid")
	ErrInvalidRevision  = errors.New("bid revision violates the raise rule")
	ErrInvalidFriend    = errors.New("friend card selection is invalid")
	ErrCardNotHeld      = errors.New("card is not in this seat's hand")
	ErrMustFollowSuit   = errors.New("must follow the lead suit")
	ErrJokerSuitNeeded  = errors.New("a joker lead must declare a lead suit")
	ErrJokerCallPending = errors.New("the joker must be played on a joker call")
)
