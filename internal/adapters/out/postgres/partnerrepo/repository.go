package partnerrepo

import (
	"context"

	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/partner"
	"foodcourt/internal/pkg/errs"
)

// GormPartnerRepository implements PartnerDirectory using GORM.
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// ListServing retrieves partners registered for the postal code in
// registration order, available or not. The matcher filters availability so
// that selection logic stays in the domain.
func (r *GormPartnerRepository) ListServing(ctx context.Context, code kernel.PostalCode) ([]*partner.Partner, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("postal_code = ?", code.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		partners = append(partners, p)
	}

	return partners, nil
}

// SetAvailability flips a partner's availability flag.
func (r *GormPartnerRepository) SetAvailability(ctx context.Context, id kernel.UUID, available bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", id.Bytes()).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}

	return nil
}
