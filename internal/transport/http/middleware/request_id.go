package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Anand4756/assessment-Connectverse/internal/pkg/reqctx"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID tags each request with an id (incoming header or fresh uuid),
// echoes it back, and stores it in context for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := reqctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
