package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"mighty/internal/app"
	"mighty/internal/config"
	"mighty/internal/domain"
	"mighty/internal/token"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type mockPresence struct {
	userID   string
	username string
}

func (m mockPresence) GetUserId() string { return m.userID }

func (m mockPresence) GetSessionId() string { return m.userID + "-session" }

func (m mockPresence) GetNodeId() string { return "node-1" }

func (m mockPresence) GetHidden() bool { return false }

func (m mockPresence) GetPersistence() bool { return false }

func (m mockPresence) GetUsername() string { return m.username }

func (m mockPresence) GetStatus() string { return "" }
func (m mockPresence) GetReason() runtime.PresenceReason {
	return runtime.PresenceReasonUnknown
}

type mockMatchData struct {
	mockPresence
	opCode int64
	data   []byte
}

func (m mockMatchData) GetOpCode() int64 { return m.opCode }

func (m mockMatchData) GetData() []byte { return m.data }

func (m mockMatchData) GetReliable() bool { return true }

func (m mockMatchData) GetReceiveTime() int64 { return 0 }

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages     []sentMessage
	labelUpdates int
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{
		opCode:     opCode,
		data:       append([]byte(nil), data...),
		recipients: append([]runtime.Presence(nil), presences...),
	})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

func (md *mockDispatcher) byOpCode(op int64) []sentMessage {
	var out []sentMessage
	for _, m := range md.messages {
		if m.opCode == op {
			out = append(out, m)
		}
	}
	return out
}

func newTestState(rules *config.Rules) *MatchState {
	if rules == nil {
		rules = config.DefaultRules()
	}
	return &MatchState{
		RoomName:  "table-1",
		MatchID:   "match-1",
		TimerSeat: domain.NoSeat,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(rand.New(rand.NewSource(1)), rules),
		Rules:     rules,
		Tokens:    token.NewIssuer("test-secret", time.Hour),
	}
}

func testPresence(i int) mockPresence {
	names := [5]string{"ann", "bo", "cho", "dana", "eun"}
	return mockPresence{userID: names[i] + "-id", username: names[i]}
}

func joinAll(t *testing.T, mh *matchHandler, state *MatchState, dispatcher *mockDispatcher) [5]mockPresence {
	t.Helper()
	ctx := context.Background()
	var presences [5]mockPresence
	for i := 0; i < domain.SeatCount; i++ {
		p := testPresence(i)
		presences[i] = p
		_, allowed, reason := mh.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, dispatcher, 1, state, p, nil)
		if !allowed {
			t.Fatalf("join attempt %d rejected: %s", i, reason)
		}
		mh.MatchJoin(ctx, noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.Presence{p})
	}
	return presences
}

func readyAll(t *testing.T, mh *matchHandler, state *MatchState, dispatcher *mockDispatcher, presences [5]mockPresence) {
	t.Helper()
	msgs := make([]runtime.MatchData, 0, domain.SeatCount)
	for _, p := range presences {
		msgs = append(msgs, mockMatchData{mockPresence: p, opCode: OpReady})
	}
	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, msgs)
	if state.Round == nil {
		t.Fatalf("round did not start with five ready players")
	}
}

func welcomeToken(t *testing.T, dispatcher *mockDispatcher, userID string) string {
	t.Helper()
	for _, m := range dispatcher.byOpCode(OpWelcome) {
		if len(m.recipients) != 1 || m.recipients[0].GetUserId() != userID {
			continue
		}
		var w WelcomePayload
		if err := json.Unmarshal(m.data, &w); err != nil {
			t.Fatalf("unmarshal welcome: %v", err)
		}
		return w.Token
	}
	t.Fatalf("no welcome message for %s", userID)
	return ""
}

func TestMatchJoinAssignsSeatsAndWelcomes(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}

	presences := joinAll(t, mh, state, dispatcher)

	for i, p := range presences {
		if state.Seats[i] != p.GetUserId() {
			t.Fatalf("seat %d = %q, want %q", i, state.Seats[i], p.GetUserId())
		}
		if !state.Connected[i] {
			t.Fatalf("seat %d not marked connected", i)
		}
	}

	welcomes := dispatcher.byOpCode(OpWelcome)
	if len(welcomes) != domain.SeatCount {
		t.Fatalf("welcome messages = %d, want %d", len(welcomes), domain.SeatCount)
	}
	for _, m := range welcomes {
		if len(m.recipients) != 1 {
			t.Fatalf("welcome must be private, got %d recipients", len(m.recipients))
		}
		var w WelcomePayload
		if err := json.Unmarshal(m.data, &w); err != nil {
			t.Fatalf("unmarshal welcome: %v", err)
		}
		if w.Token == "" || w.RoomName != "table-1" {
			t.Fatalf("welcome payload = %+v", w)
		}
	}

	joined := dispatcher.byOpCode(OpPlayerJoined)
	if len(joined) != domain.SeatCount {
		t.Fatalf("player_joined messages = %d, want %d", len(joined), domain.SeatCount)
	}
	for _, m := range joined {
		if len(m.recipients) != 0 {
			t.Fatalf("player_joined must broadcast to the room")
		}
	}
}

func TestMatchJoinAttemptRejectsWhenFull(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	joinAll(t, mh, state, dispatcher)

	extra := mockPresence{userID: "late-id", username: "late"}
	_, allowed, reason := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, extra, nil)
	if allowed {
		t.Fatalf("sixth join must be rejected")
	}
	if reason != "room full" {
		t.Fatalf("reason = %q, want room full", reason)
	}
}

func TestReadyAutoStartsRound(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	if state.Round.Phase != domain.PhaseBidding {
		t.Fatalf("phase = %q, want bidding", state.Round.Phase)
	}
	if len(dispatcher.byOpCode(OpRoundStarted)) != 1 {
		t.Fatalf("expected one round_started broadcast")
	}

	dealt := dispatcher.byOpCode(OpHandDealt)
	if len(dealt) != domain.SeatCount {
		t.Fatalf("hand_dealt messages = %d, want %d", len(dealt), domain.SeatCount)
	}
	for _, m := range dealt {
		if len(m.recipients) != 1 {
			t.Fatalf("hand_dealt must be private")
		}
		var payload app.HandDealtPayload
		if err := json.Unmarshal(m.data, &payload); err != nil {
			t.Fatalf("unmarshal hand_dealt: %v", err)
		}
		if len(payload.Hand) != domain.HandSize {
			t.Fatalf("dealt hand = %d cards", len(payload.Hand))
		}
		if m.recipients[0].GetUserId() != state.Seats[payload.Seat] {
			t.Fatalf("seat %d hand sent to %s", payload.Seat, m.recipients[0].GetUserId())
		}
	}
}

func TestWrongTurnBidGetsPrivateError(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	offender := (state.Round.Turn + 1) % domain.SeatCount
	body, _ := json.Marshal(SubmitBidRequest{Score: 13, Suit: "spade"})
	msg := mockMatchData{mockPresence: presences[offender], opCode: OpSubmitBid, data: body}
	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 3, state, []runtime.MatchData{msg})

	if state.Round.Bid != nil {
		t.Fatalf("rejected bid mutated the round")
	}
	errs := dispatcher.byOpCode(OpError)
	if len(errs) != 1 {
		t.Fatalf("error messages = %d, want 1", len(errs))
	}
	if len(errs[0].recipients) != 1 || errs[0].recipients[0].GetUserId() != presences[offender].GetUserId() {
		t.Fatalf("error must go only to the offender")
	}
}

func TestDisconnectMidGameKeepsSeat(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	leaver := presences[1]
	next := mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.Presence{leaver})
	if next == nil {
		t.Fatalf("in-game match must survive a disconnect")
	}

	if state.Seats[1] != leaver.GetUserId() {
		t.Fatalf("seat 1 was freed mid-game")
	}
	if state.Connected[1] {
		t.Fatalf("seat 1 still marked connected")
	}
	if len(state.Round.Players[1].Hand) != domain.HandSize {
		t.Fatalf("disconnected seat lost its hand")
	}
	if len(dispatcher.byOpCode(OpPlayerDisconnected)) != 1 {
		t.Fatalf("expected one player_disconnected broadcast")
	}
}

func TestReconnectIsIdempotent(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	leaver := presences[1]
	seatToken := welcomeToken(t, dispatcher, leaver.GetUserId())
	mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state, []runtime.Presence{leaver})

	seatsBefore := state.Seats
	metadata := map[string]string{metadataReconnectToken: seatToken}

	for attempt := 0; attempt < 2; attempt++ {
		_, allowed, reason := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 6, state, leaver, metadata)
		if !allowed {
			t.Fatalf("reconnect attempt %d rejected: %s", attempt, reason)
		}
		mh.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 6, state, []runtime.Presence{leaver})

		if state.Seats != seatsBefore {
			t.Fatalf("reconnect changed the seat map: %v", state.Seats)
		}
		if !state.Connected[1] {
			t.Fatalf("reconnected seat not marked connected")
		}
	}

	snapshots := dispatcher.byOpCode(OpStateSnapshot)
	if len(snapshots) != 2 {
		t.Fatalf("snapshot messages = %d, want one per reconnect", len(snapshots))
	}
	for _, m := range snapshots {
		if len(m.recipients) != 1 || m.recipients[0].GetUserId() != leaver.GetUserId() {
			t.Fatalf("snapshot must go only to the reconnecting seat")
		}
		var snap app.SnapshotPayload
		if err := json.Unmarshal(m.data, &snap); err != nil {
			t.Fatalf("unmarshal snapshot: %v", err)
		}
		if snap.Seat != 1 || len(snap.Hand) != domain.HandSize {
			t.Fatalf("snapshot = seat %d with %d cards", snap.Seat, len(snap.Hand))
		}
	}
}

func TestReconnectRejectsForeignToken(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	stranger := mockPresence{userID: "stranger-id", username: "stranger"}
	seatToken := welcomeToken(t, dispatcher, presences[1].GetUserId())
	metadata := map[string]string{metadataReconnectToken: seatToken}

	_, allowed, _ := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 6, state, stranger, metadata)
	if allowed {
		t.Fatalf("another user's token must not grant the seat")
	}

	badMetadata := map[string]string{metadataReconnectToken: "garbage"}
	_, allowed, _ = mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 6, state, presences[1], badMetadata)
	if allowed {
		t.Fatalf("a malformed token must be rejected")
	}
}

func TestLobbyLeaveFreesSeat(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}

	p0, p1 := testPresence(0), testPresence(1)
	for _, p := range []mockPresence{p0, p1} {
		mh.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.Presence{p})
	}

	mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.Presence{p0})
	if state.Seats[0] != "" || state.Ready[0] {
		t.Fatalf("lobby leave must free the seat")
	}
	if state.Seats[1] != p1.GetUserId() {
		t.Fatalf("other seat disturbed by leave")
	}
	if len(dispatcher.byOpCode(OpPlayerLeft)) != 1 {
		t.Fatalf("expected one player_left broadcast")
	}
}

func TestBidTimerAutoPasses(t *testing.T) {
	rules := config.DefaultRules()
	rules.BidTurnTimeoutTicks = 2
	mh := &matchHandler{}
	state := newTestState(rules)
	dispatcher := &mockDispatcher{}
	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	slow := state.Round.Turn
	for tick := int64(10); tick <= 12; tick++ {
		mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, tick, state, nil)
	}

	if !state.Round.Passed[slow] {
		t.Fatalf("silent seat %d was not auto-passed", slow)
	}
	if len(dispatcher.byOpCode(OpBidPassed)) != 1 {
		t.Fatalf("expected a bid_passed broadcast from the timer")
	}
}

func TestBuildLabelTracksPhase(t *testing.T) {
	mh := &matchHandler{}
	state := newTestState(nil)
	dispatcher := &mockDispatcher{}

	label := mh.buildLabel(state)
	if label.Game != "mighty" || label.Phase != "lobby" || label.Open != domain.SeatCount {
		t.Fatalf("lobby label = %+v", label)
	}

	presences := joinAll(t, mh, state, dispatcher)
	readyAll(t, mh, state, dispatcher, presences)

	label = mh.buildLabel(state)
	if label.Open != 0 || label.Phase != "bidding" || label.Players != domain.SeatCount {
		t.Fatalf("in-game label = %+v", label)
	}
}
