package list_stylist_services

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
)

const msgInvalidStylistID = "invalid stylist id"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := strconv.ParseInt(mux.Vars(r)["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.StylistServices(r.Context(), stylistID)
	if err != nil {
		h.logger.Error("GET /stylists/{stylistId}/services - failed: stylist=%d, error=%v", stylistID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
