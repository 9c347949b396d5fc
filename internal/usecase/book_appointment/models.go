package book_appointment

import (
	"time"

	"github.com/salonworks/booking-service/pkg/types"
)

// Request carries the booking input. RequesterID is the authenticated
// caller, taken from the transport layer rather than the body.
type Request struct {
	RequesterID int64 `json:"-"`

	ClientID  int64            `json:"clientId"`
	StylistID int64            `json:"stylistId"`
	Date      time.Time        `json:"date"`
	Hour      types.TimeString `json:"hour"`
	Services  []string         `json:"services"`
}

// BookedService is one service on the created appointment.
type BookedService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Response is the created appointment.
type Response struct {
	ID         int64           `json:"id"`
	ClientID   int64           `json:"clientId"`
	StylistID  int64           `json:"stylistId"`
	Date       string          `json:"date"`
	Hour       string          `json:"hour"`
	Status     string          `json:"status"`
	Services   []BookedService `json:"services"`
	TotalPrice float64         `json:"totalPrice"`
}
