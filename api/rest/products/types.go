package products

// request payload for both lookup endpoints
type LookupRequest struct {
	Query string `json:"query" binding:"required"`
}
