package dto

import (
	"time"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

func ToEventResp(ev *domain.Event) EventResp {
	resp := EventResp{
		EventID:   ev.EventID,
		VenueID:   ev.VenueID,
		Title:     ev.Title,
		EventType: ev.EventType,
		EventDate: ev.EventDate.UTC().Format(time.RFC3339),
		BasePrice: ev.BasePrice,
		Status:    string(ev.Status),
		VenueName: ev.VenueName,
		VenueCity: ev.VenueCity,
	}
	if ev.CancelledAt != nil {
		s := ev.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &s
	}
	return resp
}

func ToEventResps(evs []*domain.Event) []EventResp {
	out := make([]EventResp, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ToEventResp(ev))
	}
	return out
}

func ToVenueResp(v *domain.Venue) VenueResp {
	return VenueResp{
		VenueID:    v.VenueID,
		Name:       v.Name,
		City:       v.City,
		Capacity:   v.Capacity,
		EventCount: v.EventCount,
	}
}

func ToVenueResps(vs []*domain.Venue) []VenueResp {
	out := make([]VenueResp, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToVenueResp(v))
	}
	return out
}
