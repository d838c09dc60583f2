package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// CreateRoomRequest is the payload of the create_room RPC.
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// CreateRoomResponse returns the created room's match id.
type CreateRoomResponse struct {
	MatchID string `json:"match_id"`
	Name    string `json:"name"`
}

// RoomInfo is one entry of the list_rooms response.
type RoomInfo struct {
	MatchID    string `json:"match_id"`
	Name       string `json:"name"`
	Phase      string `json:"phase"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
}

// ListRoomsResponse is the payload returned by the list_rooms RPC.
type ListRoomsResponse struct {
	Rooms []RoomInfo `json:"rooms"`
}

// QuickMatchResponse is returned to clients asking for any open lobby.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcCreateRoom, rpcCreateRoom); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcListRooms, rpcListRooms); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch)
}

func rpcCreateRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CreateRoomRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("malformed create_room payload", 3)
		}
	}
	if req.Name == "" {
		req.Name = "room-" + uuid.NewString()[:8]
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameMighty, map[string]interface{}{"name": req.Name})
	if err != nil {
		logger.Error("rpcCreateRoom: MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(CreateRoomResponse{MatchID: matchID, Name: req.Name})
	return string(b), nil
}

func rpcListRooms(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	query := "+label.game:mighty"
	limit := 50
	authoritative := true
	minSize := 0
	maxSize := 5

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcListRooms: MatchList error: %v", err)
		return "", err
	}

	resp := ListRoomsResponse{Rooms: []RoomInfo{}}
	for _, m := range matches {
		var label matchLabel
		if err := json.Unmarshal([]byte(m.GetLabel().GetValue()), &label); err != nil {
			logger.Warn("rpcListRooms: Skipping match %s with unreadable label: %v", m.GetMatchId(), err)
			continue
		}
		resp.Rooms = append(resp.Rooms, RoomInfo{
			MatchID:    m.GetMatchId(),
			Name:       label.Name,
			Phase:      label.Phase,
			Players:    label.Players,
			MaxPlayers: label.MaxPlayers,
		})
	}

	b, _ := json.Marshal(resp)
	return string(b), nil
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Any open lobby of our game with at least one free seat.
	query := "+label.game:mighty +label.phase:lobby +label.open:>=1"

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 4

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcQuickMatch: MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		b, _ := json.Marshal(QuickMatchResponse{MatchID: matches[0].GetMatchId(), IsNew: false})
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameMighty, map[string]interface{}{"name": "room-" + uuid.NewString()[:8]})
	if err != nil {
		logger.Error("rpcQuickMatch: MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(QuickMatchResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
