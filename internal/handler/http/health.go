package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// health reports service liveness and whether the backing database answers a
// ping. A failed ping yields 500 with a generic message; ping failure detail
// stays in the server log.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.pinger.Ping(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.HealthResponse{
			Response: models.Response{Success: false, Message: "Server is unhealthy"},
			Database: "disconnected",
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Response: models.Response{Success: true, Message: "Server is healthy"},
		Database: "connected",
	}, http.StatusOK)
}
