package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PhaniVeludurthi/catalog-service/internal/application/event"
	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/dto"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/response"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	evs, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(evs))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("event_id must be a positive integer"))
		return
	}

	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev))
}

func (h *EventsHandler) ListByVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "venue_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("venue_id must be a positive integer"))
		return
	}

	evs, err := h.svc.ListByVenue(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(evs))
}

func (h *EventsHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	evs, err := h.svc.ListByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(evs))
}

func (h *EventsHandler) ListByCity(w http.ResponseWriter, r *http.Request) {
	evs, err := h.svc.ListByCity(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(evs))
}

func (h *EventsHandler) Search(w http.ResponseWriter, r *http.Request) {
	evs, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResps(evs))
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid JSON payload"))
		return
	}

	ev, err := h.svc.Create(r.Context(), event.CreateCmd{
		VenueID:   req.VenueID,
		Title:     req.Title,
		EventType: req.EventType,
		EventDate: req.EventDate,
		BasePrice: req.BasePrice,
		Status:    req.Status,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToEventResp(ev))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("event_id must be a positive integer"))
		return
	}

	var req dto.UpdateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid JSON payload"))
		return
	}

	ev, err := h.svc.Update(r.Context(), event.UpdateCmd{
		EventID:   id,
		Title:     req.Title,
		EventType: req.EventType,
		EventDate: req.EventDate,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev))
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("event_id must be a positive integer"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.NoContent(w)
}

// Cancel is the only status transition exposed over HTTP. The response
// reflects the persisted state; notifications ride behind it asynchronously.
func (h *EventsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "event_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("event_id must be a positive integer"))
		return
	}

	ev, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(ev))
}
