package list_stylist_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
)

const msgInvalidStylistID = "invalid stylist id"

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

// Handle GET /api/v1/stylists/{stylistId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := strconv.ParseInt(mux.Vars(r)["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.StylistUpcoming(r.Context(), stylistID)
	if err != nil {
		h.logger.Error("GET /stylists/{stylistId}/appointments - failed: stylist=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
