package order

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError("order line must be created via NewLine")

const maxLineQuantity = 100

// Line is an order line snapshot. Dish name, unit price and photo reference
// are frozen at order-placement time, decoupled from the live menu: later
// menu edits must never retroactively alter a placed order.
type Line struct {
	dishID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	photoRef  string

	isConstructed bool
}

// NewLine creates an order line snapshot after validating its invariants:
// a valid dish reference, a non-empty name, a non-negative unit price, and
// a quantity between 1 and 100.
func NewLine(dishID kernel.UUID, name string, unitPrice kernel.Money, quantity int, photoRef string) (Line, error) {
	if err := dishID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("dish name")
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidError("unit price")
	}
	if quantity < 1 || quantity > maxLineQuantity {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return Line{
		dishID:        dishID,
		name:          name,
		unitPrice:     unitPrice,
		quantity:      quantity,
		photoRef:      photoRef,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// DishID returns the identity of the dish this line snapshots.
func (l Line) DishID() kernel.UUID {
	return l.dishID
}

// Name returns the dish name frozen at placement time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price frozen at placement time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// PhotoRef returns the dish photo reference frozen at placement time.
// May be empty.
func (l Line) PhotoRef() string {
	return l.photoRef
}

// Total returns unit price multiplied by quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}
