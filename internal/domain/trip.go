// Package domain contains the core entities and rules of the cabin availability checker.
// These entities mirror the booking API's trip search payload and carry no transport concerns.
package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TripResponse is the decoded body of a trip search: an ordered list of trip groups.
// Only the first group's first leg is decoded; later legs are checked for
// well-formed JSON and then dropped, so their contents cannot fail a check.
type TripResponse []TripGroup

// TripGroup is one group of scheduled departures returned by the booking API.
type TripGroup struct {
	// Trips is the ordered list of legs in this group
	Trips []TripLeg `json:"trips"`
}

// TripLeg is one scheduled departure carrying its own accommodation inventory.
type TripLeg struct {
	// DepartureDateTime is the departure timestamp as sent by the booking API
	DepartureDateTime string `json:"departureDateTime"`

	// Accommodations groups the purchasable options for this leg
	Accommodations Accommodations `json:"accommodations"`
}

// Accommodations holds the accommodation options of a leg by category.
type Accommodations struct {
	// Passenger lists cabin and seat categories for passengers
	Passenger []AccommodationOption `json:"passenger"`
}

// AccommodationOption is a purchasable cabin or seat category.
type AccommodationOption struct {
	// Code is the booking system's identifier (e.g., "AB3")
	Code string `json:"code"`

	// Name is the display name (e.g., "Inside cabin 3 beds")
	Name string `json:"name"`

	// WholeBerthAvailability is the number of whole berths still for sale
	WholeBerthAvailability int `json:"wholeBerthAvailability"`

	// Price is the cabin price in euros
	Price float64 `json:"price"`

	// invalid records a count or price that could not be read as a number
	invalid error
}

// AvailableCabin is an allow-listed accommodation option with remaining capacity.
type AvailableCabin struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Availability int     `json:"availability"`
	Price        float64 `json:"price"`
}

// FirstLeg returns the first group's first leg.
// It returns false if the response holds no groups or the first group has no trips.
func (r TripResponse) FirstLeg() (TripLeg, bool) {
	if len(r) == 0 || len(r[0].Trips) == 0 {
		return TripLeg{}, false
	}
	return r[0].Trips[0], true
}

// UnmarshalJSON decodes the group list, keeping only the leg a check inspects.
func (r *TripResponse) UnmarshalJSON(data []byte) error {
	var groups []struct {
		Trips []json.RawMessage `json:"trips"`
	}
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}
	if groups == nil {
		*r = nil
		return nil
	}

	resp := make(TripResponse, len(groups))
	if len(groups) > 0 && len(groups[0].Trips) > 0 {
		var leg TripLeg
		if err := json.Unmarshal(groups[0].Trips[0], &leg); err != nil {
			return err
		}
		resp[0].Trips = []TripLeg{leg}
	}
	*r = resp
	return nil
}

// UnmarshalJSON decodes an option, accepting numbers sent as strings or as
// integral floats. A value that is not a number at all is recorded on the
// option instead of failing the decode, so it only matters if the option is inspected.
func (o *AccommodationOption) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code                   string          `json:"code"`
		Name                   string          `json:"name"`
		WholeBerthAvailability json.RawMessage `json:"wholeBerthAvailability"`
		Price                  json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = AccommodationOption{Code: raw.Code, Name: raw.Name}

	count, err := parseNumber(raw.WholeBerthAvailability)
	if err == nil && count != math.Trunc(count) {
		err = fmt.Errorf("not a whole number: %s", raw.WholeBerthAvailability)
	}
	if err != nil {
		o.invalid = fmt.Errorf("option %q wholeBerthAvailability: %w", raw.Code, err)
		return nil
	}
	o.WholeBerthAvailability = int(count)

	price, err := parseNumber(raw.Price)
	if err != nil {
		o.invalid = fmt.Errorf("option %q price: %w", raw.Code, err)
		return nil
	}
	o.Price = price
	return nil
}

// Err returns the decoding problem recorded for the option, if any.
func (o AccommodationOption) Err() error {
	return o.invalid
}

// parseNumber reads a JSON number or a numeric string. Absent and null values read as zero.
func parseNumber(raw json.RawMessage) (float64, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return 0, nil
		}
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("not a number: %s", raw)
	}
	return n, nil
}
