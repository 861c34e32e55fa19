package services

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/partner"
)

// ErrNoPartnerAvailable is returned when no delivery partner is available
// for the destination postal code. Placement treats this as a soft outcome:
// the order is still created, pending, and rematched later.
var ErrNoPartnerAvailable = errors.New("no delivery partner available for the postal code")

// PartnerMatcher is a domain service that picks a delivery partner for a
// destination postal code.
//
// Matching is exact on the postal code and returns the first available
// partner in the order the candidates were listed. There is no load
// balancing or proximity ranking; the first match wins.
//
// The matcher does not reserve: selection and the availability flip are
// separate steps, so two concurrent placements can pick the same partner.
type PartnerMatcher struct{}

// NewPartnerMatcher creates a new PartnerMatcher instance.
func NewPartnerMatcher() PartnerMatcher {
	return PartnerMatcher{}
}

// Match returns the first partner that is available and serves the postal
// code, or ErrNoPartnerAvailable when none does.
func (m PartnerMatcher) Match(candidates []*partner.Partner, code kernel.PostalCode) (*partner.Partner, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if candidate.CanServe(code) {
			return candidate, nil
		}
	}

	return nil, ErrNoPartnerAvailable
}
