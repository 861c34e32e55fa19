// Package partner provides the delivery partner read model used during
// matching. The engine reads partner state; registration and availability
// toggling belong to the partner-facing surface.
package partner

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
)

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through the NewPartner factory method.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// Partner is a delivery partner serving a single postal code.
type Partner struct {
	id         kernel.UUID
	name       string
	postalCode kernel.PostalCode
	available  bool

	isConstructed bool
}

// NewPartner creates a Partner.
func NewPartner(id kernel.UUID, name string, postalCode kernel.PostalCode, available bool) (*Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := postalCode.Validate(); err != nil {
		return nil, err
	}
	return &Partner{
		id:            id,
		name:          name,
		postalCode:    postalCode,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the Partner was created via NewPartner.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// PostalCode returns the postal code the partner serves.
func (p *Partner) PostalCode() kernel.PostalCode {
	return p.postalCode
}

// IsAvailable reports whether the partner can accept a delivery.
func (p *Partner) IsAvailable() bool {
	return p.available
}

// CanServe reports whether the partner is available and serves the given
// postal code.
func (p *Partner) CanServe(code kernel.PostalCode) bool {
	return p.available && p.postalCode.IsEqual(code)
}
