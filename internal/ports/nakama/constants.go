package nakama

const (
	// MatchNameMighty is the authoritative match handler name registered with Nakama.
	MatchNameMighty = "mighty_match"

	// RpcCreateRoom creates a named room and returns its match id.
	RpcCreateRoom = "create_room"
	// RpcListRooms lists joinable rooms from the match label index.
	RpcListRooms = "list_rooms"
	// RpcQuickMatch finds or creates an open lobby.
	RpcQuickMatch = "quick_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpReady            int64 = 1
	OpSubmitBid        int64 = 2
	OpPassBid          int64 = 3
	OpDiscardAndRevise int64 = 4
	OpSubmitFriend     int64 = 5
	OpSubmitCard       int64 = 6
	OpRequestState     int64 = 7

	// Server -> Client events
	OpWelcome            int64 = 101 // send privately
	OpPlayerJoined       int64 = 102
	OpPlayerLeft         int64 = 103
	OpPlayerReady        int64 = 104
	OpPlayerDisconnected int64 = 105
	OpPlayerReconnected  int64 = 106
	OpRoundStarted       int64 = 110
	OpHandDealt          int64 = 111 // send privately
	OpRedeal             int64 = 112
	OpBidUpdated         int64 = 113
	OpBidPassed          int64 = 114
	OpBiddingComplete    int64 = 115
	OpKittyDealt         int64 = 116 // send privately
	OpDiscardComplete    int64 = 117
	OpBidRevised         int64 = 118
	OpFriendSelected     int64 = 119
	OpCardPlayed         int64 = 120
	OpTrickCleared       int64 = 121
	OpRoundScored        int64 = 122
	OpGameOver           int64 = 123
	OpStateSnapshot      int64 = 124 // send privately
	OpError              int64 = 125 // send privately
)
