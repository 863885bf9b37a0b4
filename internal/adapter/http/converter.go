package http

import (
	"strings"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/timeutil"
)

// ToDomainCriteria applies the request overrides to the configured search.
func ToDomainCriteria(base domain.SearchCriteria, req *CheckRequest) domain.SearchCriteria {
	criteria := base
	if req == nil {
		return criteria
	}

	if date := strings.TrimSpace(req.Date); date != "" {
		criteria.Date = date
	}
	if req.Passengers != nil {
		criteria.Passengers = *req.Passengers
	}
	return criteria
}

// ToCheckResponse converts a check result to its API representation.
// The departure timestamp is rendered in timezone.
func ToCheckResponse(result domain.CheckResult, timezone string) CheckResponse {
	resp := CheckResponse{
		RunID:          result.RunID,
		Outcome:        string(result.Outcome),
		Available:      result.Available(),
		Route:          result.Criteria.Route(),
		Date:           result.Criteria.Date,
		Passengers:     result.Criteria.Passengers,
		DepartureTime:  result.DepartureTime,
		Cabins:         toCabinDTOs(result.Cabins),
		UpstreamStatus: result.StatusCode,
		Error:          result.Error(),
		Notified:       result.Notified,
	}

	if result.DepartureTime != "" {
		resp.DepartureTimeLocal = timeutil.FormatDeparture(result.DepartureTime, timezone)
	}
	if result.NotifyErr != nil {
		resp.NotifyError = result.NotifyErr.Error()
	}
	return resp
}

func toCabinDTOs(cabins []domain.AvailableCabin) []CabinDTO {
	dtos := make([]CabinDTO, 0, len(cabins))
	for _, c := range cabins {
		dtos = append(dtos, CabinDTO{
			Code:         c.Code,
			Name:         c.Name,
			Availability: c.Availability,
			Price:        c.Price,
		})
	}
	return dtos
}
