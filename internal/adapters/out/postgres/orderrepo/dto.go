// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as text and indexed together with the partner assignment:
// the rematch flow scans for pending unassigned rows, the guarded update
// filters by status.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID    *uuid.UUID `gorm:"type:uuid;index"`

	Status      string `gorm:"type:varchar(16);index"`
	PaymentMode string `gorm:"type:varchar(8)"`

	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2)"`
	RestaurantFee  decimal.Decimal `gorm:"type:numeric(10,2)"`
	PlatformFee    decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryCharge decimal.Decimal `gorm:"type:numeric(10,2)"`
	Discount       decimal.Decimal `gorm:"type:numeric(10,2)"`
	FinalTotal     decimal.Decimal `gorm:"type:numeric(10,2)"`

	DeliveryAddress string `gorm:"type:text"`
	PostalCode      string `gorm:"type:varchar(10);index"`

	PlacedAt    time.Time
	DeliveredAt *time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one frozen order line row. Lines are written once
// at placement and never updated.
type OrderLineDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`

	DishID    uuid.UUID       `gorm:"type:uuid"`
	Name      string          `gorm:"type:text"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Quantity  int
	PhotoRef  string `gorm:"type:text"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	breakdown := aggregate.Breakdown()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			DishID:    line.DishID().Bytes(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Decimal(),
			Quantity:  line.Quantity(),
			PhotoRef:  line.PhotoRef(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		PartnerID:    partnerID,

		Status:      aggregate.Status().String(),
		PaymentMode: aggregate.PaymentMode().String(),

		Subtotal:       breakdown.Subtotal().Decimal(),
		RestaurantFee:  breakdown.RestaurantFee().Decimal(),
		PlatformFee:    breakdown.PlatformFee().Decimal(),
		DeliveryCharge: breakdown.DeliveryCharge().Decimal(),
		Discount:       breakdown.Discount().Decimal(),
		FinalTotal:     breakdown.FinalTotal().Decimal(),

		DeliveryAddress: aggregate.DeliveryAddress(),
		PostalCode:      aggregate.PostalCode().String(),

		PlacedAt:    aggregate.PlacedAt(),
		DeliveredAt: aggregate.DeliveredAt(),

		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and breakdown using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		dishID, lineErr := kernel.UUIDFromBytes(lineDTO.DishID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(dishID, lineDTO.Name,
			kernel.NewMoney(lineDTO.UnitPrice), lineDTO.Quantity, lineDTO.PhotoRef)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	breakdown, err := order.RestoreBreakdown(
		kernel.NewMoney(dto.Subtotal),
		kernel.NewMoney(dto.RestaurantFee),
		kernel.NewMoney(dto.PlatformFee),
		kernel.NewMoney(dto.DeliveryCharge),
		kernel.NewMoney(dto.Discount),
		kernel.NewMoney(dto.FinalTotal),
	)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMode, err := order.ParsePaymentMode(dto.PaymentMode)
	if err != nil {
		return nil, err
	}

	postalCode, err := kernel.NewPostalCode(dto.PostalCode)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, restaurantID, partnerID,
		lines, breakdown, paymentMode, status,
		dto.DeliveryAddress, postalCode, dto.PlacedAt, dto.DeliveredAt)
}
