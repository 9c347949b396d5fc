package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonworks/booking-service/pkg/types"
)

func TestAppointmentStatusRules(t *testing.T) {
	tests := []struct {
		name      string
		status    AppointmentStatus
		canCancel bool
		terminal  bool
	}{
		{"valid is active", StatusValid, true, false},
		{"cancelled is terminal", StatusCancelled, false, true},
		{"completed is terminal", StatusCompleted, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.canCancel, a.CanBeCancelled())
			assert.Equal(t, tt.terminal, a.IsTerminal())
		})
	}
}

func TestAppointmentHour(t *testing.T) {
	a := &Appointment{ScheduledAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, types.TimeString("12:00"), a.Hour())
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("cancelled")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, status)

	_, ok = ParseStatus("pending")
	assert.False(t, ok)
}
