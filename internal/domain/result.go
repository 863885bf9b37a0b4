package domain

// Outcome tags the result of a single availability check.
type Outcome string

// Possible check outcomes.
const (
	// OutcomeAvailable means at least one allow-listed cabin has berths left
	OutcomeAvailable Outcome = "available"

	// OutcomeNoAvailability means the check ran but found nothing worth alerting on
	OutcomeNoAvailability Outcome = "no_availability"

	// OutcomeTransportError means the booking API could not be reached
	OutcomeTransportError Outcome = "transport_error"

	// OutcomeParseError means the booking API answered with an undecodable body
	OutcomeParseError Outcome = "parse_error"

	// OutcomeUpstreamError means the booking API answered with a non-200 status
	OutcomeUpstreamError Outcome = "upstream_error"
)

// IsFailure reports whether the outcome means the check itself failed.
func (o Outcome) IsFailure() bool {
	switch o {
	case OutcomeTransportError, OutcomeParseError, OutcomeUpstreamError:
		return true
	default:
		return false
	}
}

// CheckResult is the tagged result of a single availability check.
// Callers can tell "no cabins" apart from "the check failed" through Outcome.
type CheckResult struct {
	// RunID identifies the check in logs
	RunID string `json:"runId"`

	// Outcome tags what happened
	Outcome Outcome `json:"outcome"`

	// Criteria is the search the check ran with
	Criteria SearchCriteria `json:"criteria"`

	// Cabins lists qualifying cabins when Outcome is OutcomeAvailable
	Cabins []AvailableCabin `json:"cabins,omitempty"`

	// DepartureTime is the inspected leg's departure timestamp, if one was found
	DepartureTime string `json:"departureTime,omitempty"`

	// StatusCode is the upstream HTTP status when Outcome is OutcomeUpstreamError
	StatusCode int `json:"statusCode,omitempty"`

	// Err is the failure cause for failure outcomes
	Err error `json:"-"`

	// Notified is true when the notifier accepted the message
	Notified bool `json:"notified"`

	// NotifyErr is the notification failure, if any; it never changes Outcome
	NotifyErr error `json:"-"`
}

// Available reports whether qualifying cabins were found.
func (r CheckResult) Available() bool {
	return r.Outcome == OutcomeAvailable
}

// Error returns the failure message, or an empty string.
func (r CheckResult) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
