package weekly_report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonworks/booking-service/internal/api/handlers"
	weeklyReport "github.com/salonworks/booking-service/internal/usecase/weekly_report"
)

const msgInvalidStylistID = "invalid stylist id"

type Handler struct {
	useCase WeeklyReportUseCase
	logger  Logger
}

func NewHandler(useCase WeeklyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/weekly-report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stylistID, err := strconv.ParseInt(mux.Vars(r)["stylistId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &weeklyReport.Request{StylistID: stylistID})
	if err != nil {
		switch {
		case errors.Is(err, weeklyReport.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /stylists/{stylistId}/weekly-report - failed: stylist=%d, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
