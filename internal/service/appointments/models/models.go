package models

import (
	"github.com/salonworks/booking-service/internal/domain"
)

// AppointmentResponse is the external representation of one appointment.
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	StylistID int64  `json:"stylistId"`
	Date      string `json:"date"`
	Hour      string `json:"hour"`
	Status    string `json:"status"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// UserResponse is the external representation of one user account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserListResponse wraps a directory of user accounts.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// DeactivateClientResponse reports the result of a client deactivation.
type DeactivateClientResponse struct {
	ClientID              int64 `json:"clientId"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
}

// FromDomainAppointment converts a domain appointment into the response model.
func FromDomainAppointment(appt *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        appt.ID,
		ClientID:  appt.ClientID,
		StylistID: appt.StylistID,
		Date:      appt.ScheduledAt.Format(domain.DateFormat),
		Hour:      appt.Hour().String(),
		Status:    string(appt.Status),
	}
}

// FromDomainUsers converts a slice of domain users.
func FromDomainUsers(users []*domain.User) *UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, UserResponse{ID: u.ID, Username: u.Username})
	}
	return &UserListResponse{Users: items, Total: len(items)}
}

// FromDomainAppointments converts a slice of domain appointments.
func FromDomainAppointments(appts []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		items = append(items, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{Appointments: items, Total: len(items)}
}
