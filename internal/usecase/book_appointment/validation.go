package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/salonworks/booking-service/internal/domain"
)

// validateRequest checks the request shape before any data access.
func validateRequest(req *Request) error {
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Hour.IsZero() {
		return fmt.Errorf("%w: hour is required", ErrInvalidInput)
	}

	if err := req.Hour.Validate(); err != nil {
		return fmt.Errorf("%w: invalid hour format: %v", ErrInvalidInput, err)
	}

	if len(req.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, name := range req.Services {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: service name must not be blank", ErrInvalidInput)
		}
	}

	return nil
}

// validateMoment checks the combined date and hour against the current time.
// Booking exactly at the current instant is allowed; anything earlier is not.
func validateMoment(instant, now time.Time) error {
	if instant.Before(now) {
		return ErrInvalidDate
	}
	return nil
}

// normalizeServices trims and deduplicates the requested service names,
// keeping the first occurrence order.
func normalizeServices(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

// missingServices reports which requested names were not resolved.
func missingServices(requested []string, resolved []*domain.Service) []string {
	found := make(map[string]bool, len(resolved))
	for _, svc := range resolved {
		found[svc.Name] = true
	}

	missing := make([]string, 0)
	for _, name := range requested {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
