package domain

import "time"

// Service represents a catalog entry a stylist may offer, e.g. a
// haircut. Names are unique and act as the business key.
type Service struct {
	ID    int64
	Name  string
	Price float64

	CreatedAt time.Time
}

// TotalPrice sums the prices of a service selection.
func TotalPrice(services []Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}
