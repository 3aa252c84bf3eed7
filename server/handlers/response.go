package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"np-server/apperrors"
	"np-server/models"
)

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Error encoding response", zap.Error(err))
	}
}

// writeError maps err to its status and writes {"detail": "<message>"}.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	logger.Error("Request failed",
		zap.Int("status", status),
		zap.String("kind", string(apperrors.KindOf(err))),
		zap.Error(err),
	)
	writeJSON(w, logger, status, models.ErrorResponse{Detail: err.Error()})
}
