// Package partnerrepo provides persistence for delivery partner state. The
// engine reads partners for matching and flips availability on assignment;
// registration belongs to the partner-facing surface.
package partnerrepo

import (
	"github.com/google/uuid"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/partner"
)

// PartnerDTO represents one delivery partner row. Postal code and
// availability are indexed together: matching always filters on both.
type PartnerDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name       string `gorm:"type:text"`
	PostalCode string `gorm:"type:varchar(10);index:idx_partners_serving"`
	Available  bool   `gorm:"index:idx_partners_serving"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	postalCode, err := kernel.NewPostalCode(dto.PostalCode)
	if err != nil {
		return nil, err
	}

	return partner.NewPartner(id, dto.Name, postalCode, dto.Available)
}
