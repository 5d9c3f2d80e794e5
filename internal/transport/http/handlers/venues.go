package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PhaniVeludurthi/catalog-service/internal/application/venue"
	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/dto"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/response"
	"github.com/PhaniVeludurthi/catalog-service/internal/transport/http/validate"
)

type VenuesHandler struct {
	svc *venue.Service
}

func NewVenuesHandler(svc *venue.Service) *VenuesHandler {
	return &VenuesHandler{svc: svc}
}

func (h *VenuesHandler) List(w http.ResponseWriter, r *http.Request) {
	vs, err := h.svc.List(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVenueResps(vs))
}

func (h *VenuesHandler) ListByCity(w http.ResponseWriter, r *http.Request) {
	vs, err := h.svc.ListByCity(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVenueResps(vs))
}

func (h *VenuesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "venue_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("venue_id must be a positive integer"))
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVenueResp(v))
}

func (h *VenuesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VenueReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid JSON payload"))
		return
	}

	v, err := h.svc.Create(r.Context(), venue.UpsertCmd{Name: req.Name, City: req.City, Capacity: req.Capacity})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToVenueResp(v))
}

func (h *VenuesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "venue_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("venue_id must be a positive integer"))
		return
	}

	var req dto.VenueReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidation("invalid JSON payload"))
		return
	}

	v, err := h.svc.Update(r.Context(), id, venue.UpsertCmd{Name: req.Name, City: req.City, Capacity: req.Capacity})
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToVenueResp(v))
}

func (h *VenuesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "venue_id"))
	if !ok {
		response.Err(w, domain.ErrValidation("venue_id must be a positive integer"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.NoContent(w)
}
