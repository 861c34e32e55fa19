package catalogrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// GormCatalogRepository implements DishCatalog and RestaurantDirectory
// using GORM. Reads only; no aggregate tracking.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetByIDs retrieves the dishes for the given IDs. Missing dishes are
// simply absent from the result; callers decide whether that fails them.
func (r *GormCatalogRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]ports.Dish, error) {
	if len(ids) == 0 {
		return []ports.Dish{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	dishes := make([]ports.Dish, 0, len(dtos))
	for _, dto := range dtos {
		dish, err := dishToPort(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

// Get retrieves a restaurant's configuration. Inactive restaurants are
// returned with their real Active flag; whether an inactive restaurant may
// take orders is the caller's decision, not a lookup failure.
func (r *GormCatalogRepository) Get(ctx context.Context, id kernel.UUID) (ports.RestaurantInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.RestaurantInfo{}, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RestaurantInfo{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return ports.RestaurantInfo{}, err
	}

	return restaurantToPort(dto)
}
