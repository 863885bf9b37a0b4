package domain

import "strings"

// DefaultCabinCodes are the accommodation codes alerted on when none are configured.
var DefaultCabinCodes = []string{"AB3", "A3"}

// AllowList is the set of accommodation codes considered worth alerting on.
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from codes.
// Codes are trimmed and upper-cased; empty entries are ignored.
func NewAllowList(codes ...string) AllowList {
	allow := make(AllowList, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		allow[code] = struct{}{}
	}
	return allow
}

// Contains reports whether code is allow-listed (case-insensitive).
func (a AllowList) Contains(code string) bool {
	_, ok := a[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes returns the allow-listed codes in no particular order.
func (a AllowList) Codes() []string {
	codes := make([]string, 0, len(a))
	for code := range a {
		codes = append(codes, code)
	}
	return codes
}

// Matches checks if an accommodation option is allow-listed and still has whole berths.
func (a AllowList) Matches(opt AccommodationOption) bool {
	return a.Contains(opt.Code) && opt.WholeBerthAvailability > 0
}

// CheckOptions returns a malformed-response error for the first allow-listed
// option of leg whose count or price could not be decoded.
func CheckOptions(leg TripLeg, allow AllowList) error {
	for _, opt := range leg.Accommodations.Passenger {
		if opt.Err() != nil && allow.Contains(opt.Code) {
			return WrapMalformed(opt.Err())
		}
	}
	return nil
}

// SelectAvailableCabins returns the leg's accommodation options that match the allow-list,
// preserving the order the booking API returned them in.
func SelectAvailableCabins(leg TripLeg, allow AllowList) []AvailableCabin {
	var cabins []AvailableCabin
	for _, opt := range leg.Accommodations.Passenger {
		if opt.Err() != nil || !allow.Matches(opt) {
			continue
		}
		cabins = append(cabins, AvailableCabin{
			Code:         opt.Code,
			Name:         opt.Name,
			Availability: opt.WholeBerthAvailability,
			Price:        opt.Price,
		})
	}
	return cabins
}
