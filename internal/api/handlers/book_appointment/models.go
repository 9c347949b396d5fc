package book_appointment

import (
	"time"

	"github.com/salonworks/booking-service/internal/domain"
	bookAppointment "github.com/salonworks/booking-service/internal/usecase/book_appointment"
	"github.com/salonworks/booking-service/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ClientID  int64    `json:"clientId"`
	StylistID int64    `json:"stylistId"`
	Date      string   `json:"date"` // "2026-03-03"
	Hour      string   `json:"hour"` // "10:00"
	Services  []string `json:"services"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	hour, err := types.NewTimeStringFromString(r.Hour)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		ClientID:  r.ClientID,
		StylistID: r.StylistID,
		Date:      date,
		Hour:      hour,
		Services:  r.Services,
	}, nil
}
