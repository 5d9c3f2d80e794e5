package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/PhaniVeludurthi/catalog-service/internal/application/event"
	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type mockClock struct{ t time.Time }

func (m mockClock) Now() time.Time { return m.t }

// Minimal repo for handler testing.
type mockRepo struct {
	events map[int64]*domain.Event
}

func (m *mockRepo) Create(ctx context.Context, e *domain.Event) (int64, error) {
	id := int64(len(m.events) + 1)
	e.EventID = id
	m.events[id] = e
	return id, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound("event not found")
	}
	cp := *ev
	return &cp, nil
}

func (m *mockRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := m.events[e.EventID]; !ok {
		return domain.ErrNotFound("event not found")
	}
	cp := *e
	m.events[e.EventID] = &cp
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound("event not found")
	}
	delete(m.events, id)
	return nil
}

func (m *mockRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

func (m *mockRepo) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.VenueID == venueID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.Status == status {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockRepo) Search(ctx context.Context, query string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, ev := range m.events {
		if strings.Contains(strings.ToLower(ev.Title), strings.ToLower(query)) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type mockVenues struct{ known map[int64]bool }

func (m mockVenues) Exists(ctx context.Context, id int64) (bool, error) { return m.known[id], nil }

func newTestRouter(h *EventsHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1/events", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/status/{status}", h.ListByStatus)
		r.Get("/{event_id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{event_id}", h.Update)
		r.Delete("/{event_id}", h.Delete)
		r.Post("/{event_id}/cancel", h.Cancel)
	})
	return r
}

func newTestHandler(t *testing.T, now time.Time) (*EventsHandler, *mockRepo) {
	t.Helper()
	repo := &mockRepo{events: map[int64]*domain.Event{}}
	svc := event.New(repo, mockVenues{known: map[int64]bool{7: true}}, mockClock{t: now}, nil, nil, nil, 0)
	return NewEventsHandler(svc), repo
}

func TestEventsHandler_Get(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h, repo := newTestHandler(t, now)
	repo.events[1] = &domain.Event{
		EventID: 1, VenueID: 7, Title: "Jazz Night", EventType: "Concert",
		EventDate: now.Add(48 * time.Hour), BasePrice: 30, Status: domain.StatusActive,
	}
	router := newTestRouter(h)

	t.Run("returns_event", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Jazz Night")
	})

	t.Run("return_400_on_non_numeric_id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
	})

	t.Run("return_404_on_unknown_id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/999", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "not_found")
	})
}

func TestEventsHandler_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h, _ := newTestHandler(t, now)
	router := newTestRouter(h)

	t.Run("creates_event", func(t *testing.T) {
		body := `{"venue_id":7,"title":"Jazz Night","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":30}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var env struct {
			Data struct {
				EventID int64  `json:"event_id"`
				Status  string `json:"status"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, int64(1), env.Data.EventID)
		assert.Equal(t, "ACTIVE", env.Data.Status)
	})

	t.Run("explicit_status_is_accepted", func(t *testing.T) {
		body := `{"venue_id":7,"title":"Jazz Night","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":30,"status":"ACTIVE"}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ACTIVE"`)
	})

	t.Run("created_cancelled_carries_cancelled_at", func(t *testing.T) {
		body := `{"venue_id":7,"title":"Jazz Night","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":30,"status":"CANCELLED"}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var env struct {
			Data struct {
				Status      string  `json:"status"`
				CancelledAt *string `json:"cancelled_at"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "CANCELLED", env.Data.Status)
		assert.NotNil(t, env.Data.CancelledAt)
	})

	t.Run("bogus_status_is_rejected", func(t *testing.T) {
		body := `{"venue_id":7,"title":"Jazz Night","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":30,"status":"PAUSED"}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
	})

	t.Run("unknown_venue_is_rejected", func(t *testing.T) {
		body := `{"venue_id":99,"title":"Jazz Night","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":30}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "venue does not exist")
	})

	t.Run("unknown_fields_are_rejected", func(t *testing.T) {
		body := `{"venue_id":7,"title":"x","event_type":"Concert","event_date":"2025-09-01T20:00:00Z","base_price":1,"surprise":true}`
		req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEventsHandler_Cancel(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(repo *mockRepo, status domain.EventStatus) {
		ev := &domain.Event{
			EventID: 1, VenueID: 7, Title: "Jazz Night", EventType: "Concert",
			EventDate: now.Add(48 * time.Hour), BasePrice: 30, Status: status,
		}
		if status == domain.StatusCancelled {
			at := now.Add(-time.Hour)
			ev.CancelledAt = &at
		}
		repo.events[1] = ev
	}

	t.Run("cancel_returns_cancelled_event", func(t *testing.T) {
		h, repo := newTestHandler(t, now)
		seed(repo, domain.StatusActive)
		router := newTestRouter(h)

		req := httptest.NewRequest("POST", "/api/v1/events/1/cancel", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var env struct {
			Data struct {
				Status      string  `json:"status"`
				CancelledAt *string `json:"cancelled_at"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.Equal(t, "CANCELLED", env.Data.Status)
		if assert.NotNil(t, env.Data.CancelledAt) {
			assert.Equal(t, "2025-06-01T12:00:00Z", *env.Data.CancelledAt)
		}
	})

	t.Run("re_cancel_returns_409", func(t *testing.T) {
		h, repo := newTestHandler(t, now)
		seed(repo, domain.StatusCancelled)
		router := newTestRouter(h)

		req := httptest.NewRequest("POST", "/api/v1/events/1/cancel", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid_state")
	})

	t.Run("cancel_unknown_returns_404", func(t *testing.T) {
		h, _ := newTestHandler(t, now)
		router := newTestRouter(h)

		req := httptest.NewRequest("POST", "/api/v1/events/999/cancel", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEventsHandler_ListByStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h, repo := newTestHandler(t, now)
	repo.events[1] = &domain.Event{EventID: 1, VenueID: 7, Title: "A", EventType: "Concert", EventDate: now, BasePrice: 1, Status: domain.StatusActive}
	router := newTestRouter(h)

	t.Run("lowercase_status_is_accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/status/active", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"event_id":1`)
	})

	t.Run("unknown_status_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/status/paused", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEventsHandler_Search(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h, repo := newTestHandler(t, now)
	repo.events[1] = &domain.Event{EventID: 1, VenueID: 7, Title: "Jazz Night", EventType: "Concert", EventDate: now, BasePrice: 1, Status: domain.StatusActive}
	router := newTestRouter(h)

	t.Run("matches_title", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/search?q=jazz", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Jazz Night")
	})

	t.Run("blank_query_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events/search?q=%20", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEventsHandler_Delete(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	h, repo := newTestHandler(t, now)
	repo.events[1] = &domain.Event{EventID: 1, VenueID: 7, Title: "A", EventType: "Concert", EventDate: now, BasePrice: 1, Status: domain.StatusActive}
	router := newTestRouter(h)

	req := httptest.NewRequest("DELETE", "/api/v1/events/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, repo.events)
}
