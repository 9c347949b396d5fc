package list_client_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
)

const msgInvalidClientID = "invalid client id"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.ClientAppointments(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{clientId}/appointments - failed: client=%d, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
