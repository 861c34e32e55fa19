package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order with its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist or lies outside the customer scope.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	sqlQuery := `
		SELECT
			id, customer_id, restaurant_id, partner_id,
			status, payment_mode,
			subtotal, restaurant_fee, platform_fee, delivery_charge, discount, final_total,
			delivery_address, postal_code,
			placed_at, delivered_at
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}

	if customerID := query.CustomerID(); customerID != nil {
		sqlQuery += " AND customer_id = ?"
		args = append(args, customerID.Bytes())
	}

	row := h.db.WithContext(ctx).Raw(sqlQuery, args...).Row()

	var (
		id, customerID, restaurantID uuid.UUID
		partnerID                    uuid.NullUUID
		subtotal, restaurantFee      decimal.Decimal
		platformFee, deliveryCharge  decimal.Decimal
		discount, finalTotal         decimal.Decimal
		deliveredAt                  sql.NullTime
		resp                         GetOrderQueryResponse
	)

	err := row.Scan(
		&id, &customerID, &restaurantID, &partnerID,
		&resp.Status, &resp.PaymentMode,
		&subtotal, &restaurantFee, &platformFee, &deliveryCharge, &discount, &finalTotal,
		&resp.DeliveryAddress, &resp.PostalCode,
		&resp.PlacedAt, &deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if partnerID.Valid {
		matched, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.PartnerID = &matched
	}
	if deliveredAt.Valid {
		stamped := deliveredAt.Time
		resp.DeliveredAt = &stamped
	}

	resp.Subtotal = kernel.NewMoney(subtotal)
	resp.RestaurantFee = kernel.NewMoney(restaurantFee)
	resp.PlatformFee = kernel.NewMoney(platformFee)
	resp.DeliveryCharge = kernel.NewMoney(deliveryCharge)
	resp.Discount = kernel.NewMoney(discount)
	resp.FinalTotal = kernel.NewMoney(finalTotal)

	if resp.Lines, err = h.loadLines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT dish_id, name, unit_price, quantity, photo_ref
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineView, 0)
	for rows.Next() {
		var (
			dishID    uuid.UUID
			unitPrice decimal.Decimal
			line      OrderLineView
		)

		if err = rows.Scan(&dishID, &line.Name, &unitPrice, &line.Quantity, &line.PhotoRef); err != nil {
			return nil, err
		}

		if line.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return nil, err
		}
		line.UnitPrice = kernel.NewMoney(unitPrice)
		line.Total = line.UnitPrice.MulInt(line.Quantity)

		lines = append(lines, line)
	}

	return lines, rows.Err()
}
