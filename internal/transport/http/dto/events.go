package dto

import "time"

type CreateEventReq struct {
	VenueID   int64     `json:"venue_id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	EventDate time.Time `json:"event_date"`
	BasePrice float64   `json:"base_price"`
	Status    string    `json:"status,omitempty"`
}

type UpdateEventReq struct {
	Title     *string    `json:"title,omitempty"`
	EventType *string    `json:"event_type,omitempty"`
	EventDate *time.Time `json:"event_date,omitempty"`
	BasePrice *float64   `json:"base_price,omitempty"`
}

type EventResp struct {
	EventID   int64   `json:"event_id"`
	VenueID   int64   `json:"venue_id"`
	Title     string  `json:"title"`
	EventType string  `json:"event_type"`
	EventDate string  `json:"event_date"`
	BasePrice float64 `json:"base_price"`
	Status    string  `json:"status"`

	CancelledAt *string `json:"cancelled_at,omitempty"`

	VenueName string `json:"venue_name,omitempty"`
	VenueCity string `json:"venue_city,omitempty"`
}
