package domain

import (
	"strings"
	"time"
)

// ReasonCancelledByOrganizer is the fixed reason attached to cancellations
// initiated through the catalog API.
const ReasonCancelledByOrganizer = "Event cancelled by organizer"

type Event struct {
	EventID   int64
	VenueID   int64
	Title     string
	EventType string
	EventDate time.Time
	BasePrice float64

	Status      EventStatus
	CancelledAt *time.Time

	// Joined from venues on reads; never written through this entity.
	VenueName string
	VenueCity string
}

func NewEvent(venueID int64, title, eventType string, eventDate time.Time, basePrice float64, status EventStatus) (*Event, error) {
	title = strings.TrimSpace(title)
	eventType = strings.TrimSpace(eventType)

	if venueID <= 0 {
		return nil, ErrValidation("venue_id is required")
	}
	if title == "" || len(title) > 200 {
		return nil, ErrValidation("title is required and must be <= 200 chars")
	}
	if eventType == "" || len(eventType) > 80 {
		return nil, ErrValidation("event_type is required and must be <= 80 chars")
	}
	if eventDate.IsZero() {
		return nil, ErrValidation("event_date is required")
	}
	if basePrice < 0 {
		return nil, ErrValidation("base_price must be >= 0")
	}
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		return nil, ErrValidation("status must be one of: ACTIVE, CANCELLED")
	}

	return &Event{
		VenueID:   venueID,
		Title:     title,
		EventType: eventType,
		EventDate: eventDate.UTC(),
		BasePrice: basePrice,
		Status:    status,
	}, nil
}

// Cancel moves the event to CANCELLED and stamps CancelledAt once.
// Re-cancelling is rejected: the transition is monotonic and the timestamp is
// set exactly at the first (only) transition.
func (e *Event) Cancel(now time.Time) error {
	if e.Status == StatusCancelled {
		return ErrInvalidState("event already cancelled")
	}
	t := now.UTC()
	e.Status = StatusCancelled
	e.CancelledAt = &t
	return nil
}

func (e *Event) ApplyUpdate(title, eventType *string, eventDate *time.Time, basePrice *float64) error {
	if e.Status == StatusCancelled {
		return ErrInvalidState("cancelled event cannot be updated")
	}

	if title != nil {
		v := strings.TrimSpace(*title)
		if v == "" || len(v) > 200 {
			return ErrValidation("title must be non-empty and <= 200 chars")
		}
		e.Title = v
	}
	if eventType != nil {
		v := strings.TrimSpace(*eventType)
		if v == "" || len(v) > 80 {
			return ErrValidation("event_type must be non-empty and <= 80 chars")
		}
		e.EventType = v
	}
	if eventDate != nil {
		if eventDate.IsZero() {
			return ErrValidation("event_date must be a valid timestamp")
		}
		e.EventDate = eventDate.UTC()
	}
	if basePrice != nil {
		if *basePrice < 0 {
			return ErrValidation("base_price must be >= 0")
		}
		e.BasePrice = *basePrice
	}
	return nil
}
