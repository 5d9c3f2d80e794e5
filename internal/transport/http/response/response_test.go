package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

func TestErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ErrValidation("title is required"), http.StatusBadRequest, "validation_error"},
		{"not_found", domain.ErrNotFound("event not found"), http.StatusNotFound, "not_found"},
		{"invalid_state", domain.ErrInvalidState("event already cancelled"), http.StatusConflict, "invalid_state"},
		{"unauthorized", domain.ErrUnauthorized("missing token"), http.StatusUnauthorized, "unauthorized"},
		{"persistence", domain.ErrPersistence("update event", assert.AnError), http.StatusInternalServerError, "persistence_error"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Err(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

			var body ErrorBody
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestErrDoesNotLeakCause(t *testing.T) {
	rr := httptest.NewRecorder()
	Err(rr, domain.ErrPersistence("update event", assert.AnError))

	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}

func TestErrValidationMeta(t *testing.T) {
	rr := httptest.NewRecorder()
	Err(rr, domain.ErrValidationMeta("invalid payload", map[string]string{"field": "base_price"}))

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "base_price", body.Error.Meta["field"])
}

func TestData(t *testing.T) {
	rr := httptest.NewRecorder()
	Data(rr, http.StatusCreated, map[string]int{"event_id": 7})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"data":{"event_id":7}}`, rr.Body.String())
}
