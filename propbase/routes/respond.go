// propbase/routes/respond.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"propbase/propbase/apperrors"
	"propbase/propbase/utils/logging"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps a controller error to a status. Storage failures
// are logged with full detail and answered with storageMsg only; the
// driver error never reaches the client.
func respondError(w http.ResponseWriter, r *http.Request, err error, storageMsg string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, http.StatusNotFound, "Property not found")
	default:
		logging.ErrorLogger.Error("storage failure",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, storageMsg)
	}
}

// respondRecentError matches the recent-properties envelope, which
// carries a success flag even on failure.
func respondRecentError(w http.ResponseWriter, r *http.Request, err error) {
	logging.ErrorLogger.Error("storage failure",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   "Failed to fetch recent properties",
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
