package get_available_hours

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
	"github.com/salonworks/booking-service/internal/domain"
	getAvailableHours "github.com/salonworks/booking-service/internal/usecase/get_available_hours"
)

const (
	msgInvalidStylistID = "invalid stylist id"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-hours?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableHours.Request{
		StylistID: stylistID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableHours.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /stylists/{stylistId}/available-hours - failed: stylist=%d, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
