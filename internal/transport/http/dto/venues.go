package dto

type VenueReq struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type VenueResp struct {
	VenueID    int64  `json:"venue_id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Capacity   int    `json:"capacity"`
	EventCount int    `json:"event_count"`
}
