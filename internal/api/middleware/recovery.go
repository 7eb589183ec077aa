package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/plant-tracker/server/internal/api/types"
	"github.com/plant-tracker/server/pkg/apperr"
	"github.com/plant-tracker/server/pkg/logger"
)

// Recovery logs panics and downgrades them to the internal error body so
// that even a panicking handler keeps the fixed error shape on the wire.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.L().Error("panic recovered",
					zap.String("event", "error"),
					zap.String("code", string(apperr.CodeInternal)),
					zap.Int("statusCode", http.StatusInternalServerError),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(types.ErrorBody{ErrorCode: types.FromCode(apperr.CodeInternal)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
