package services

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
)

// OfferResolver is a domain service that evaluates a discount code against an
// order context. Checkout and the standalone validation endpoint share this
// single resolve path, so a code can never validate differently in the two
// places.
//
// Evaluation is read-only: resolving never consumes the code.
type OfferResolver struct{}

// NewOfferResolver creates a new OfferResolver instance.
func NewOfferResolver() OfferResolver {
	return OfferResolver{}
}

// Resolve evaluates the offer and returns the discount it grants on the
// given subtotal. A nil offer means the lookup found no active offer for the
// code and yields ErrOfferNotFound; the remaining eligibility rules live on
// the Offer itself.
func (r OfferResolver) Resolve(o *offer.Offer, subtotal kernel.Money, restaurantID kernel.UUID, at time.Time) (kernel.Money, error) {
	if o == nil {
		return kernel.Money{}, offer.ErrOfferNotFound
	}
	return o.Discount(subtotal, restaurantID, at)
}
