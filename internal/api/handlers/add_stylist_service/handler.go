package add_stylist_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
	catalogService "github.com/salonworks/booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStylistID   = "invalid stylist id"
	msgServiceNotFound    = "service not found"
	msgAlreadyOffered     = "the stylist already offers this service"
)

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	ServiceName string `json:"serviceName"`
}

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

// Handle POST /api/v1/stylists/{stylistId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := strconv.ParseInt(mux.Vars(r)["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists/{stylistId}/services - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.OfferService(r.Context(), stylistID, req.ServiceName); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalogService.ErrAlreadyOffered):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyOffered)

		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /stylists/{stylistId}/services - failed: stylist=%d, service=%q, error=%v",
				stylistID, req.ServiceName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
