package remove_stylist_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
	catalogService "github.com/salonworks/booking-service/internal/service/catalog"
)

const (
	msgInvalidStylistID = "invalid stylist id"
	msgServiceNotFound  = "service not found"
	msgNotOffered       = "the stylist does not offer this service"
)

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

// Handle DELETE /api/v1/stylists/{stylistId}/services/{serviceName}?cancelAppointments=true
// With cancelAppointments the stylist's future valid appointments that include
// the service are cancelled together with the unlink.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	serviceName := vars["serviceName"]
	cancelAppointments := r.URL.Query().Get("cancelAppointments") == "true"

	result, err := h.service.WithdrawService(r.Context(), stylistID, serviceName, cancelAppointments)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalogService.ErrNotOffered):
			handlers.RespondError(w, http.StatusConflict, msgNotOffered)

		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /stylists/{stylistId}/services/{serviceName} - failed: stylist=%d, service=%q, error=%v",
				stylistID, serviceName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
