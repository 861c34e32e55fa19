// Package offerrepo provides persistence for discount offers and platform
// fee configuration. Both are read models for the ordering engine; campaign
// management owns the writes.
package offerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/fees"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
)

// OfferDTO represents one discount offer row. The code is the natural key
// customers type at checkout.
type OfferDTO struct {
	Code string `gorm:"type:varchar(32);primaryKey"`

	Kind          string           `gorm:"type:varchar(16)"`
	Value         decimal.Decimal  `gorm:"type:numeric(10,2)"`
	MinOrderValue decimal.Decimal  `gorm:"type:numeric(10,2)"`
	MaxDiscount   *decimal.Decimal `gorm:"type:numeric(10,2)"`

	Scope        string     `gorm:"type:varchar(16)"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`

	Active     bool `gorm:"index"`
	ValidFrom  time.Time
	ValidUntil *time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// PlatformFeeDTO represents one platform fee configuration row. Several may
// coexist; the most recently created active one is in effect.
type PlatformFeeDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Percent   decimal.Decimal `gorm:"type:numeric(5,2)"`
	Active    bool            `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for platform fee entities.
func (PlatformFeeDTO) TableName() string {
	return "platform_fees"
}

func offerToDomain(dto OfferDTO) (*offer.Offer, error) {
	kind, err := offer.ParseDiscountKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	scope, err := offer.ParseScope(dto.Scope)
	if err != nil {
		return nil, err
	}

	var maxDiscount *kernel.Money
	if dto.MaxDiscount != nil {
		capped := kernel.NewMoney(*dto.MaxDiscount)
		maxDiscount = &capped
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurantID = &id
	}

	return offer.NewOffer(
		dto.Code,
		kind,
		kernel.NewMoney(dto.Value),
		kernel.NewMoney(dto.MinOrderValue),
		maxDiscount,
		scope,
		restaurantID,
		dto.Active,
		dto.ValidFrom,
		dto.ValidUntil,
	)
}

func platformFeeToDomain(dto PlatformFeeDTO) (*fees.PlatformFee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fees.NewPlatformFee(id, dto.Percent, dto.Active, dto.CreatedAt)
}
