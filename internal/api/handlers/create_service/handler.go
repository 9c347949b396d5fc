package create_service

import (
	"errors"
	"net/http"

	"github.com/salonworks/booking-service/internal/api/handlers"
	catalogService "github.com/salonworks/booking-service/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgServiceExists      = "a service with this name already exists"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceExists):
			handlers.RespondError(w, http.StatusConflict, msgServiceExists)

		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /services - failed: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
