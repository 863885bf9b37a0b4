package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// TripSearcher queries the booking API for the trips matching a search.
type TripSearcher interface {
	// SearchTrips performs a single trip search.
	// Errors wrap ErrTransport, ErrMalformedResponse or are an *UpstreamError.
	SearchTrips(ctx context.Context, criteria SearchCriteria) (TripResponse, error)

	// BookingURL returns a deep link to the booking page prefilled with criteria.
	BookingURL(criteria SearchCriteria) string
}

// Notification is the message handed to a Notifier when cabins become available.
type Notification struct {
	// Criteria is the search that found the cabins
	Criteria SearchCriteria

	// Cabins lists the qualifying cabins
	Cabins []AvailableCabin

	// DepartureTime is the leg's departure timestamp
	DepartureTime string

	// BookingURL is a deep link to the booking page prefilled with the search
	BookingURL string
}

// Notifier delivers availability alerts to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
