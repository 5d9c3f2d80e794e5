package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/PhaniVeludurthi/catalog-service/internal/correlation"
)

// CorrelationID propagates the inbound X-Correlation-ID, minting one when the
// caller did not send any, and echoes it back on the response.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corrID := r.Header.Get(correlation.Header)

		if corrID == "" {
			corrID = uuid.NewString()
		}

		w.Header().Set(correlation.Header, corrID)

		ctx := correlation.WithID(r.Context(), corrID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
