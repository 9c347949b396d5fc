package book_appointment

import (
	"errors"
	"net/http"

	"github.com/salonworks/booking-service/internal/api/handlers"
	"github.com/salonworks/booking-service/internal/api/middleware"
	bookAppointment "github.com/salonworks/booking-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSlotTaken          = "the selected hour is already taken"
	msgHourNotBookable    = "the selected hour is outside working hours"
	msgDateInPast         = "the selected moment is in the past"
	msgClientNotFound     = "client not found"
	msgStylistNotFound    = "stylist not found"
	msgServiceNotFound    = "service not found"
	msgAccessDenied       = "booking for another client requires a manager account"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Clients book for themselves, managers pass the client explicitly.
	requesterID, _ := middleware.UserIDFromContext(r.Context())
	if req.ClientID == 0 {
		req.ClientID = requesterID
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	useCaseReq.RequesterID = requesterID

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - slot taken: stylist=%d, hour=%s", req.StylistID, req.Hour)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrHourNotBookable):
			handlers.RespondBadRequest(w, msgHourNotBookable)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookAppointment.ErrAccessDenied):
			h.logger.Warn("POST /appointments - user=%d may not book for client=%d", requesterID, req.ClientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookAppointment.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookAppointment.ErrStylistNotFound):
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, bookAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - failed: client=%d, stylist=%d, error=%v",
				req.ClientID, req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
