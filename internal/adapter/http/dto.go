package http

// CheckResponse is the body returned by POST /api/v1/checks.
// @Description Result of a single cabin availability check
type CheckResponse struct {
	// RunID identifies the check in the service logs
	RunID string `json:"runId" example:"5f0c1d3e-8a53-4c39-9a4b-2f1ad8e4c1b7"`

	// Outcome is one of available, no_availability, transport_error, parse_error, upstream_error
	Outcome string `json:"outcome" example:"available"`

	// Available is true when at least one allow-listed cabin has berths left
	Available bool `json:"available" example:"true"`

	// Route is the searched route as ORIGIN-DESTINATION
	Route string `json:"route" example:"PIR-HER"`

	// Date is the searched departure date
	Date string `json:"date" example:"2025-06-01"`

	// Passengers is the searched party size
	Passengers int `json:"passengers" example:"2"`

	// DepartureTime is the inspected leg's departure as sent by the booking API
	DepartureTime string `json:"departureTime,omitempty" example:"2025-06-01T08:00"`

	// DepartureTimeLocal is DepartureTime rendered in the booking timezone
	DepartureTimeLocal string `json:"departureTimeLocal,omitempty" example:"Sun 01 Jun 2025 08:00 EEST"`

	// Cabins lists the qualifying cabins
	Cabins []CabinDTO `json:"cabins"`

	// UpstreamStatus is the booking API status for upstream_error outcomes
	UpstreamStatus int `json:"upstreamStatus,omitempty" example:"503"`

	// Error describes the failure for failure outcomes
	Error string `json:"error,omitempty"`

	// Notified is true when the alert email was accepted by the relay
	Notified bool `json:"notified" example:"true"`

	// NotifyError describes a failed notification
	NotifyError string `json:"notifyError,omitempty"`
}

// CabinDTO is a qualifying cabin category.
type CabinDTO struct {
	Code         string  `json:"code" example:"AB3"`
	Name         string  `json:"name" example:"Inside cabin 3 beds"`
	Availability int     `json:"availability" example:"2"`
	Price        float64 `json:"price" example:"120"`
}
