package deactivate_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
	appointmentsService "github.com/salonworks/booking-service/internal/service/appointments"
)

const (
	msgInvalidClientID = "invalid client id"
	msgClientNotFound  = "client not found"
	msgNotAClient      = "only client accounts can be deactivated"
)

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

// Handle PATCH /api/v1/clients/{clientId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.DeactivateClient(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrUserNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgNotAClient)

		default:
			h.logger.Error("PATCH /clients/{clientId}/deactivate - failed: client=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
