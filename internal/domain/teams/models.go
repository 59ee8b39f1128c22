package teams

// Team is the catalog entry returned by /api/teams.
type Team struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Abbr *string `json:"abbr"`
	Logo *string `json:"logo"`
}

// ListResponse is the payload returned by /api/teams.
type ListResponse struct {
	Teams []Team `json:"teams"`
}

// NewListResponse builds a ListResponse, never encoding a null list.
func NewListResponse(items []Team) ListResponse {
	if items == nil {
		items = []Team{}
	}
	return ListResponse{Teams: items}
}
