// Package catalogrepo provides persistence for the menu read models: dishes
// and restaurant configuration. The ordering engine only reads these tables;
// menu management writes them through its own surface.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
)

// DishDTO represents one live menu entry row.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`

	Name      string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available bool
	PhotoRef  string `gorm:"type:text"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// RestaurantDTO represents one restaurant configuration row.
type RestaurantDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name       string          `gorm:"type:text"`
	FeePercent decimal.Decimal `gorm:"type:numeric(5,2)"`
	Active     bool
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func dishToPort(dto DishDTO) (ports.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Dish{}, err
	}

	return ports.Dish{
		ID:        id,
		Name:      dto.Name,
		Price:     kernel.NewMoney(dto.Price),
		Available: dto.Available,
		PhotoRef:  dto.PhotoRef,
	}, nil
}

func restaurantToPort(dto RestaurantDTO) (ports.RestaurantInfo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.RestaurantInfo{}, err
	}

	return ports.RestaurantInfo{
		ID:         id,
		Name:       dto.Name,
		FeePercent: dto.FeePercent,
		Active:     dto.Active,
	}, nil
}
