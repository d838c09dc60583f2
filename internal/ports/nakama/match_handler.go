package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"mighty/internal/app"
	"mighty/internal/config"
	"mighty/internal/domain"
	"mighty/internal/token"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	// metadataReconnectToken is the join-metadata key carrying a seat token.
	metadataReconnectToken = "reconnect_token"

	envTokenSecret = "mighty_token_secret"
	envRulesPath   = "mighty_rules_path"

	defaultTokenSecret = "mighty-dev-secret"
	seatTokenTTL       = 24 * time.Hour
)

// matchLabel is the JSON label indexed by Nakama for room listing queries.
type matchLabel struct {
	Game       string `json:"game"`
	Name       string `json:"name"`
	Open       int    `json:"open"`
	Phase      string `json:"phase"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
}

// MatchState holds the authoritative runtime state for one room.
type MatchState struct {
	Seats        [domain.SeatCount]string    `json:"seats"` // user ids; empty string means the seat is free
	DisplayNames [domain.SeatCount]string    `json:"display_names"`
	Connected    [domain.SeatCount]bool      `json:"connected"`
	Ready        [domain.SeatCount]bool      `json:"ready"`
	TotalScores  [domain.SeatCount]int       `json:"total_scores"`
	RoundsPlayed int                         `json:"rounds_played"`
	OpeningSeat  int                         `json:"opening_seat"` // opening seat of the next deal
	RoomName     string                      `json:"room_name"`
	Tick         int64                       `json:"tick"`
	EmptySince   int64                       `json:"empty_since"` // tick when the last human disconnected mid-game
	TimerSeat    int                         `json:"timer_seat"`  // seat the bid turn timer watches
	TimerTick    int64                       `json:"timer_tick"`
	MatchID      string                      `json:"-"`
	Presences    map[string]runtime.Presence `json:"-"`
	App          *app.Service                `json:"-"`
	Round        *domain.Round               `json:"-"` // nil while in the lobby
	Rules        *config.Rules               `json:"-"`
	Tokens       *token.Issuer               `json:"-"`
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return domain.NoSeat
}

func (ms *MatchState) connectedCount() int {
	count := 0
	for _, c := range ms.Connected {
		if c {
			count++
		}
	}
	return count
}

func (ms *MatchState) allReady() bool {
	for i := range ms.Seats {
		if ms.Seats[i] == "" || !ms.Ready[i] || !ms.Connected[i] {
			return false
		}
	}
	return true
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path, ok := env[envRulesPath]; ok && path != "" {
		if err := config.LoadRules(path); err != nil {
			logger.Warn("MatchInit: Could not load rules config: %v", err)
		}
	}
	rules := config.GetRules()

	secret := env[envTokenSecret]
	if secret == "" {
		logger.Warn("MatchInit: %s not set, using the development secret.", envTokenSecret)
		secret = defaultTokenSecret
	}

	roomName := "room"
	if name, ok := params["name"].(string); ok && name != "" {
		roomName = name
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	state := &MatchState{
		RoomName:    roomName,
		MatchID:     matchID,
		OpeningSeat: 0,
		TimerSeat:   domain.NoSeat,
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(rand.New(rand.NewSource(time.Now().UnixNano())), rules),
		Rules:       rules,
		Tokens:      token.NewIssuer(secret, seatTokenTTL),
	}

	labelBytes, err := json.Marshal(mh.buildLabel(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	if matchState.MatchID == "" {
		matchState.MatchID, _ = ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	}

	// A presented token is validated even when the seat would be reachable
	// without it: a stale token must be rejected, not silently ignored.
	if tok, present := metadata[metadataReconnectToken]; present && tok != "" {
		claims, err := matchState.Tokens.Verify(tok, matchState.MatchID)
		if err != nil {
			logger.Warn("MatchJoinAttempt: Rejected token from %s: %v", presence.GetUserId(), err)
			return matchState, false, "invalid reconnection token"
		}
		if claims.UserID != presence.GetUserId() {
			return matchState, false, "token belongs to another user"
		}
		if claims.Seat < 0 || claims.Seat >= domain.SeatCount || matchState.Seats[claims.Seat] != claims.UserID {
			return matchState, false, "seat no longer held"
		}
		return matchState, true, ""
	}

	// Rejoin of a user who still holds a seat is always allowed.
	if matchState.seatOf(presence.GetUserId()) != domain.NoSeat {
		return matchState, true, ""
	}

	if matchState.Round != nil {
		return matchState, false, "game in progress"
	}
	if matchState.openSeatCount() <= 0 {
		return matchState, false, "room full"
	}
	return matchState, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if seat := matchState.seatOf(p.GetUserId()); seat != domain.NoSeat {
			mh.rebindSeat(matchState, dispatcher, logger, p, seat)
			continue
		}

		seat := domain.NoSeat
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				seat = i
				break
			}
		}
		if seat == domain.NoSeat {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		matchState.Seats[seat] = p.GetUserId()
		matchState.DisplayNames[seat] = p.GetUsername()
		matchState.Connected[seat] = true
		matchState.Ready[seat] = false

		signed, err := matchState.Tokens.Issue(matchState.MatchID, p.GetUserId(), seat)
		if err != nil {
			logger.Error("MatchJoin: Failed to issue seat token for %s: %v", p.GetUserId(), err)
		}
		mh.dispatch(matchState, dispatcher, logger, []app.Event{
			{Kind: app.EventWelcome, Payload: WelcomePayload{
				Seat:       seat,
				Token:      signed,
				RoomName:   matchState.RoomName,
				MaxPlayers: domain.SeatCount,
			}, Seats: []int{seat}},
			{Kind: app.EventPlayerJoined, Payload: PlayerJoinedPayload{
				Seat:        seat,
				DisplayName: matchState.DisplayNames[seat],
			}},
		})
	}

	matchState.EmptySince = 0
	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// rebindSeat reattaches a returning player to the seat they already hold and
// privately replays their view of the room. Safe to repeat.
func (mh *matchHandler) rebindSeat(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, p runtime.Presence, seat int) {
	state.Connected[seat] = true
	state.EmptySince = 0
	logger.Info("MatchJoin: User %s reclaimed seat %d.", p.GetUserId(), seat)

	signed, err := state.Tokens.Issue(state.MatchID, p.GetUserId(), seat)
	if err != nil {
		logger.Error("MatchJoin: Failed to reissue seat token for %s: %v", p.GetUserId(), err)
	}
	events := []app.Event{
		{Kind: app.EventWelcome, Payload: WelcomePayload{
			Seat:       seat,
			Token:      signed,
			RoomName:   state.RoomName,
			MaxPlayers: domain.SeatCount,
		}, Seats: []int{seat}},
		{Kind: app.EventPlayerReconnected, Payload: SeatPayload{Seat: seat}},
	}
	if state.Round != nil {
		events = append(events, state.App.Snapshot(state.Round, seat))
	}
	mh.dispatch(state, dispatcher, logger, events)
}

// MatchLeave is called when one or more players leave the match. In the
// lobby the seat is freed; mid-game the seat, hand and turn rights are kept.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		seat := matchState.seatOf(p.GetUserId())
		if seat == domain.NoSeat {
			continue
		}

		if matchState.Round == nil {
			matchState.Seats[seat] = ""
			matchState.DisplayNames[seat] = ""
			matchState.Connected[seat] = false
			matchState.Ready[seat] = false
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
			mh.dispatch(matchState, dispatcher, logger, []app.Event{
				{Kind: app.EventPlayerLeft, Payload: SeatPayload{Seat: seat}},
			})
		} else {
			matchState.Connected[seat] = false
			logger.Debug("MatchLeave: User %s disconnected, seat %d held.", p.GetUserId(), seat)
			mh.dispatch(matchState, dispatcher, logger, []app.Event{
				{Kind: app.EventPlayerDisconnected, Payload: SeatPayload{Seat: seat}},
			})
		}
	}

	if matchState.connectedCount() == 0 {
		if matchState.Round == nil {
			logger.Info("MatchLeave: Terminating empty lobby.")
			return nil
		}
		if matchState.EmptySince == 0 {
			matchState.EmptySince = tick
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	if matchState.EmptySince > 0 && matchState.connectedCount() == 0 &&
		tick-matchState.EmptySince >= matchState.Rules.TeardownGraceTicks {
		logger.Info("MatchLoop: Terminating abandoned room after grace period.")
		return nil
	}

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpReady:
			mh.handleReady(matchState, dispatcher, logger, msg)
		case OpSubmitBid:
			mh.handleSubmitBid(matchState, dispatcher, logger, msg)
		case OpPassBid:
			mh.handlePassBid(matchState, dispatcher, logger, msg)
		case OpDiscardAndRevise:
			mh.handleDiscard(matchState, dispatcher, logger, msg)
		case OpSubmitFriend:
			mh.handleSubmitFriend(matchState, dispatcher, logger, msg)
		case OpSubmitCard:
			mh.handleSubmitCard(matchState, dispatcher, logger, msg)
		case OpRequestState:
			mh.handleRequestState(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.runBidTimer(matchState, dispatcher, logger)
	return matchState
}

// runBidTimer auto-passes a bidding seat that has been silent too long.
// Disabled when the configured timeout is zero.
func (mh *matchHandler) runBidTimer(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Rules.BidTurnTimeoutTicks <= 0 || state.Round == nil || state.Round.Phase != domain.PhaseBidding {
		state.TimerSeat = domain.NoSeat
		return
	}
	if state.Round.Turn != state.TimerSeat {
		state.TimerSeat = state.Round.Turn
		state.TimerTick = state.Tick
		return
	}
	if state.Tick-state.TimerTick < state.Rules.BidTurnTimeoutTicks {
		return
	}

	seat := state.Round.Turn
	events, err := state.App.PassBid(state.Round, seat)
	if err != nil {
		logger.Error("runBidTimer: Auto-pass for seat %d failed: %v", seat, err)
		state.TimerSeat = domain.NoSeat
		return
	}
	logger.Info("runBidTimer: Seat %d auto-passed after %d silent ticks.", seat, state.Rules.BidTurnTimeoutTicks)
	state.TimerSeat = domain.NoSeat
	mh.dispatch(state, dispatcher, logger, events)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) handleReady(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := state.seatOf(msg.GetUserId())
	if seat == domain.NoSeat {
		return
	}
	if state.Round != nil {
		logger.Warn("handleReady: Seat %d sent ready during a round.", seat)
		return
	}
	state.Ready[seat] = true
	mh.dispatch(state, dispatcher, logger, []app.Event{
		{Kind: app.EventPlayerReady, Payload: SeatPayload{Seat: seat}},
	})

	if state.allReady() {
		mh.startRound(state, dispatcher, logger)
	}
}

// startRound deals the next round and broadcasts the opening events.
func (mh *matchHandler) startRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	round, events := state.App.StartRound(state.RoundsPlayed+1, state.OpeningSeat)
	state.Round = round
	logger.Info("startRound: Round %d started, opening seat %d.", state.RoundsPlayed+1, state.OpeningSeat)
	mh.dispatch(state, dispatcher, logger, events)
	mh.updateLabel(state, dispatcher, logger)
}

func (mh *matchHandler) handleSubmitBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	var req SubmitBidRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleSubmitBid: Malformed request from seat %d: %v", seat, err)
		mh.sendError(state, dispatcher, logger, seat, 400, "malformed bid request")
		return
	}
	events, err := state.App.SubmitBid(state.Round, seat, req.Score, domain.Suit(req.Suit))
	mh.finishCommand(state, dispatcher, logger, seat, events, err)
}

func (mh *matchHandler) handlePassBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	events, err := state.App.PassBid(state.Round, seat)
	mh.finishCommand(state, dispatcher, logger, seat, events, err)
}

func (mh *matchHandler) handleDiscard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	var req DiscardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleDiscard: Malformed request from seat %d: %v", seat, err)
		mh.sendError(state, dispatcher, logger, seat, 400, "malformed discard request")
		return
	}
	discards := make([]domain.Card, len(req.Discards))
	for i, cm := range req.Discards {
		discards[i] = cm.toDomain()
	}
	var rev *app.BidRevision
	if req.Revision != nil {
		rev = &app.BidRevision{Score: req.Revision.Score, Suit: domain.Suit(req.Revision.Suit)}
	}
	events, err := state.App.DiscardAndRevise(state.Round, seat, discards, rev)
	mh.finishCommand(state, dispatcher, logger, seat, events, err)
}

func (mh *matchHandler) handleSubmitFriend(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	var req SubmitFriendRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleSubmitFriend: Malformed request from seat %d: %v", seat, err)
		mh.sendError(state, dispatcher, logger, seat, 400, "malformed friend request")
		return
	}
	var card *domain.Card
	if !req.NoFriend {
		if req.Card == nil {
			mh.sendError(state, dispatcher, logger, seat, 400, "friend card missing")
			return
		}
		c := req.Card.toDomain()
		card = &c
	}
	events, err := state.App.SelectFriend(state.Round, seat, card)
	mh.finishCommand(state, dispatcher, logger, seat, events, err)
}

func (mh *matchHandler) handleSubmitCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	var req SubmitCardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		logger.Warn("handleSubmitCard: Malformed request from seat %d: %v", seat, err)
		mh.sendError(state, dispatcher, logger, seat, 400, "malformed card request")
		return
	}
	events, err := state.App.PlayCard(state.Round, seat, req.Card.toDomain(), domain.Suit(req.JokerSuit), req.JokerCall)
	mh.finishCommand(state, dispatcher, logger, seat, events, err)

	if err == nil && state.Round != nil && state.Round.Phase == domain.PhaseScored {
		mh.settleRound(state, dispatcher, logger)
	}
}

func (mh *matchHandler) handleRequestState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat, ok := mh.senderSeatInRound(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	mh.dispatch(state, dispatcher, logger, []app.Event{state.App.Snapshot(state.Round, seat)})
}

// settleRound applies the scored round to the session totals and either
// deals the next round or ends the game at the configured round limit.
func (mh *matchHandler) settleRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	result := state.Round.ScoreRound(state.Rules.MinBid, state.Rules.Score)
	for seat, delta := range result.Deltas {
		state.TotalScores[seat] += delta
	}
	state.RoundsPlayed++
	state.OpeningSeat = (state.Round.OpeningSeat + 1) % domain.SeatCount
	state.Round = nil

	if state.RoundsPlayed >= state.Rules.RoundLimit {
		logger.Info("settleRound: Game over after %d rounds.", state.RoundsPlayed)
		mh.dispatch(state, dispatcher, logger, []app.Event{
			{Kind: app.EventGameOver, Payload: app.GameOverPayload{
				Totals: state.TotalScores,
				Rounds: state.RoundsPlayed,
			}},
		})
		for i := range state.Ready {
			state.Ready[i] = false
		}
		state.RoundsPlayed = 0
		state.TotalScores = [domain.SeatCount]int{}
		mh.updateLabel(state, dispatcher, logger)
		return
	}

	mh.startRound(state, dispatcher, logger)
}

// senderSeatInRound resolves the sender's seat and rejects messages that
// arrive outside an active round.
func (mh *matchHandler) senderSeatInRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) (int, bool) {
	seat := state.seatOf(msg.GetUserId())
	if seat == domain.NoSeat {
		logger.Warn("MatchLoop: Message from unseated user %s.", msg.GetUserId())
		return domain.NoSeat, false
	}
	if state.Round == nil {
		mh.sendError(state, dispatcher, logger, seat, 409, "no active round")
		return seat, false
	}
	return seat, true
}

// finishCommand reports a rejected command privately or dispatches the
// accepted command's event batch.
func (mh *matchHandler) finishCommand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, events []app.Event, err error) {
	if err != nil {
		logger.Warn("MatchLoop: Seat %d command rejected: %v", seat, err)
		mh.sendError(state, dispatcher, logger, seat, commandErrorCode(err), err.Error())
		return
	}
	mh.dispatch(state, dispatcher, logger, events)
	mh.updateLabel(state, dispatcher, logger)
}

func commandErrorCode(err error) int {
	switch {
	case errors.Is(err, app.ErrWrongPhase), errors.Is(err, app.ErrNotYourTurn):
		return 409
	default:
		return 400
	}
}

// dispatch delivers an event batch in order. Events with seat recipients go
// only to those presences; targeted events with no connected recipient are
// dropped rather than widened to the room.
func (mh *matchHandler) dispatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, known := eventOpCode(ev.Kind)
		if !known {
			logger.Warn("dispatch: Unknown event kind: %v", ev.Kind)
			continue
		}
		bytes, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("dispatch: Failed to marshal event %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Seats) > 0 {
			for _, seat := range ev.Seats {
				userID := state.Seats[seat]
				if p, ok := state.Presences[userID]; ok && state.Connected[seat] {
					recipients = append(recipients, p)
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		if err := dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true); err != nil {
			logger.Error("dispatch: Broadcast of %v failed: %v", ev.Kind, err)
		}
	}
}

// sendError sends an ErrorPayload to a single seat.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat, code int, message string) {
	mh.dispatch(state, dispatcher, logger, []app.Event{
		{Kind: app.EventError, Payload: ErrorPayload{Code: code, Message: message}, Seats: []int{seat}},
	})
}

func (mh *matchHandler) buildLabel(state *MatchState) matchLabel {
	phase := string(domain.PhaseLobby)
	if state.Round != nil {
		phase = string(state.Round.Phase)
	}
	return matchLabel{
		Game:       "mighty",
		Name:       state.RoomName,
		Open:       state.openSeatCount(),
		Phase:      phase,
		Players:    domain.SeatCount - state.openSeatCount(),
		MaxPlayers: domain.SeatCount,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.buildLabel(state))
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
