package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/order"
)

// Monetary amounts are serialized as fixed-point strings ("256.00") so
// clients never see binary floating-point artifacts.

// AddCartItemRequest is the body of POST /customers/:customer_id/cart/items.
type AddCartItemRequest struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /customers/:customer_id/orders.
type PlaceOrderRequest struct {
	RestaurantID    string `json:"restaurant_id"`
	PaymentMode     string `json:"payment_mode"`
	DeliveryAddress string `json:"delivery_address"`
	PostalCode      string `json:"postal_code"`
	OfferCode       string `json:"offer_code,omitempty"`
}

// UpdateOrderStatusRequest is the body of the restaurant and partner status
// endpoints.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ValidateOfferRequest is the body of POST /offers/validate.
type ValidateOfferRequest struct {
	Code         string `json:"code"`
	RestaurantID string `json:"restaurant_id"`
	OrderValue   string `json:"order_value"`
}

// OrderLine is one priced line of an order response.
type OrderLine struct {
	DishID    string `json:"dish_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
	PhotoRef  string `json:"photo_ref,omitempty"`
}

// OrderBreakdown is the pricing detail of an order response.
type OrderBreakdown struct {
	Subtotal       string `json:"subtotal"`
	RestaurantFee  string `json:"restaurant_fee"`
	PlatformFee    string `json:"platform_fee"`
	DeliveryCharge string `json:"delivery_charge"`
	Discount       string `json:"discount"`
	FinalTotal     string `json:"final_total"`
}

// Order is the full order view returned by placement and tracking.
type Order struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	RestaurantID string  `json:"restaurant_id"`
	PartnerID    *string `json:"partner_id,omitempty"`
	Status       string  `json:"status"`
	PaymentMode  string  `json:"payment_mode"`

	Lines     []OrderLine    `json:"lines"`
	Breakdown OrderBreakdown `json:"breakdown"`

	DeliveryAddress string `json:"delivery_address"`
	PostalCode      string `json:"postal_code"`

	PlacedAt    time.Time  `json:"placed_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// OrderSummary is one row of a list-orders response.
type OrderSummary struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	FinalTotal  string     `json:"final_total"`
	PlacedAt    time.Time  `json:"placed_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// CartItem is one line of a cart response.
type CartItem struct {
	DishID    string `json:"dish_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
	Available bool   `json:"available"`
}

// Cart is the body of GET /customers/:customer_id/cart.
type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal string     `json:"subtotal"`
}

// OfferValidation is the body of POST /offers/validate responses.
type OfferValidation struct {
	Valid       bool   `json:"valid"`
	Discount    string `json:"discount"`
	FinalAmount string `json:"final_amount"`
	Reason      string `json:"reason,omitempty"`
}

func orderFromAggregate(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLine{
			DishID:    line.DishID().String(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().String(),
			Quantity:  line.Quantity(),
			Total:     line.Total().String(),
			PhotoRef:  line.PhotoRef(),
		})
	}

	breakdown := o.Breakdown()
	response := Order{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		PaymentMode:  string(o.PaymentMode()),
		Lines:        lines,
		Breakdown: OrderBreakdown{
			Subtotal:       breakdown.Subtotal().String(),
			RestaurantFee:  breakdown.RestaurantFee().String(),
			PlatformFee:    breakdown.PlatformFee().String(),
			DeliveryCharge: breakdown.DeliveryCharge().String(),
			Discount:       breakdown.Discount().String(),
			FinalTotal:     breakdown.FinalTotal().String(),
		},
		DeliveryAddress: o.DeliveryAddress(),
		PostalCode:      o.PostalCode().String(),
		PlacedAt:        o.PlacedAt(),
		DeliveredAt:     o.DeliveredAt(),
	}
	if o.PartnerID() != nil {
		partnerID := o.PartnerID().String()
		response.PartnerID = &partnerID
	}
	return response
}

func orderFromQueryResponse(view queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, OrderLine{
			DishID:    line.DishID.String(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Total:     line.Total.String(),
			PhotoRef:  line.PhotoRef,
		})
	}

	response := Order{
		ID:           view.ID.String(),
		CustomerID:   view.CustomerID.String(),
		RestaurantID: view.RestaurantID.String(),
		Status:       view.Status,
		PaymentMode:  view.PaymentMode,
		Lines:        lines,
		Breakdown: OrderBreakdown{
			Subtotal:       view.Subtotal.String(),
			RestaurantFee:  view.RestaurantFee.String(),
			PlatformFee:    view.PlatformFee.String(),
			DeliveryCharge: view.DeliveryCharge.String(),
			Discount:       view.Discount.String(),
			FinalTotal:     view.FinalTotal.String(),
		},
		DeliveryAddress: view.DeliveryAddress,
		PostalCode:      view.PostalCode,
		PlacedAt:        view.PlacedAt,
		DeliveredAt:     view.DeliveredAt,
	}
	if view.PartnerID != nil {
		partnerID := view.PartnerID.String()
		response.PartnerID = &partnerID
	}
	return response
}

func orderSummaries(views []queries.ListOrdersQueryResponse) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(views))
	for _, view := range views {
		summaries = append(summaries, OrderSummary{
			ID:          view.ID.String(),
			Status:      view.Status,
			FinalTotal:  view.FinalTotal.String(),
			PlacedAt:    view.PlacedAt,
			DeliveredAt: view.DeliveredAt,
		})
	}
	return summaries
}

func cartFromQueryResponse(view queries.GetCartQueryResponse) Cart {
	items := make([]CartItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItem{
			DishID:    item.DishID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Total:     item.Total.String(),
			Available: item.Available,
		})
	}
	return Cart{Items: items, Subtotal: view.Subtotal.String()}
}
