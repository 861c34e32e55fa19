package offerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/fees"
	"foodcourt/internal/core/domain/model/offer"
)

// GormOfferRepository implements OfferProvider and PlatformFeeProvider
// using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// GetByCode retrieves the offer for the code, (nil, nil) when no offer with
// that code exists. The domain decides eligibility; this is a plain lookup.
func (r *GormOfferRepository) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	var dto OfferDTO
	err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return offerToDomain(dto)
}

// GetActive retrieves the platform fee configuration in effect: the most
// recently created active row. Returns (nil, nil) when none is active.
func (r *GormOfferRepository) GetActive(ctx context.Context) (*fees.PlatformFee, error) {
	var dto PlatformFeeDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("created_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return platformFeeToDomain(dto)
}
