package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/plant-tracker/server/internal/api/types"
	"github.com/plant-tracker/server/internal/metrics"
	"github.com/plant-tracker/server/pkg/apperr"
	"github.com/plant-tracker/server/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the single terminal action for every failed request: one
// structured log entry, then the fixed error body. The log is written
// before the response commits so rejected requests are always observable.
// Causes stay in the log; the body never carries internal detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.Classify(err)
	fields := []zap.Field{
		zap.String("event", "error"),
		zap.String("code", string(ae.Code)),
		zap.String("message", ae.Code.Message()),
		zap.Int("statusCode", ae.Code.Status()),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	}
	if cause := ae.Unwrap(); cause != nil {
		fields = append(fields, zap.NamedError("cause", cause))
	}
	logger.L().Error("request failed", fields...)

	writeJSON(w, ae.Code.Status(), types.ErrorBody{ErrorCode: types.FromCode(ae.Code)})
}

// writeValidationError rejects a payload the validation gate refused. The
// handler body must not have run.
func writeValidationError(w http.ResponseWriter, r *http.Request, issues []types.ValidationIssue) {
	logger.L().Error("validation failed",
		zap.String("event", "validation_error"),
		zap.String("code", string(apperr.CodeValidation)),
		zap.String("message", apperr.CodeValidation.Message()),
		zap.Int("statusCode", http.StatusBadRequest),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Any("validationErrors", issues),
	)
	metrics.ValidationFailuresTotal.Inc()

	writeJSON(w, http.StatusBadRequest, types.ErrorBody{
		ErrorCode:        types.FromCode(apperr.CodeValidation),
		ValidationErrors: issues,
	})
}
