package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"foodcourt/internal/core/domain/model/kernel"
)

// ListOrdersQueryHandler lists order summaries for one party from the
// database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first; an empty
// result is an empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT id, status, final_total, placed_at, delivered_at
		FROM orders
		WHERE ` + scopeColumn(query.Scope()) + ` = ?
	`
	args := []any{query.PartyID().Bytes()}

	if statuses := query.Statuses(); len(statuses) > 0 {
		sqlQuery += " AND status IN (?)"
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		args = append(args, names)
	}

	sqlQuery += " ORDER BY placed_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			finalTotal  decimal.Decimal
			deliveredAt sql.NullTime
			summary     ListOrdersQueryResponse
		)

		if err = rows.Scan(&id, &summary.Status, &finalTotal, &summary.PlacedAt, &deliveredAt); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summary.FinalTotal = kernel.NewMoney(finalTotal)
		if deliveredAt.Valid {
			stamped := deliveredAt.Time
			summary.DeliveredAt = &stamped
		}

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func scopeColumn(scope ListScope) string {
	switch scope {
	case ScopeRestaurant:
		return "restaurant_id"
	case ScopePartner:
		return "partner_id"
	default:
		return "customer_id"
	}
}
