package games

// TeamRef is the compact team block embedded in a game record.
// Fields are nil when the upstream competitor omits them.
type TeamRef struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Abbr *string `json:"abbr"`
}

// Game is the compact game shape exposed by the service.
// HomeTeam and AwayTeam are nil for events without competitions.
type Game struct {
	ID        *string  `json:"id"`
	HomeTeam  *TeamRef `json:"home_team"`
	AwayTeam  *TeamRef `json:"away_team"`
	Status    *string  `json:"status"`
	StartTime *string  `json:"start_time"`
}

// ListResponse is the payload returned by /api/games.
type ListResponse struct {
	Games []Game `json:"games"`
}

// NewListResponse builds a ListResponse, never encoding a null list.
func NewListResponse(items []Game) ListResponse {
	if items == nil {
		items = []Game{}
	}
	return ListResponse{Games: items}
}
