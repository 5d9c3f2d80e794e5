package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/PhaniVeludurthi/catalog-service/internal/domain"
)

type Envelope struct {
	Data any `json:"data"`
}

type ErrorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Meta    map[string]string `json:"meta,omitempty"`
	} `json:"error"`
}

func Data(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Data: payload})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, code, message string, meta map[string]string) {
	var body ErrorBody
	body.Error.Code = code
	body.Error.Message = message
	body.Error.Meta = meta

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func Err(w http.ResponseWriter, err error) {
	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal_error", "unknown error", nil)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		if ae.Code == domain.CodePersistence {
			// keep the cause in logs only
			zlog.Error().Err(err).Msg("persistence failure")
		}
		Fail(w, statusFromCode(ae.Code), string(ae.Code), ae.Message, ae.Meta)
		return
	}

	// keep details in logs only
	zlog.Error().Err(err).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidState:
		return http.StatusConflict
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
