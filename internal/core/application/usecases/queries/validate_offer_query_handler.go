package queries

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// ValidateOfferQueryHandler previews a discount code using the same
// resolution the checkout flow uses.
type ValidateOfferQueryHandler struct {
	offers   ports.OfferProvider
	resolver services.OfferResolver
}

// NewValidateOfferQueryHandler creates a handler for offer previews.
func NewValidateOfferQueryHandler(offers ports.OfferProvider) ValidateOfferQueryHandler {
	return ValidateOfferQueryHandler{
		offers:   offers,
		resolver: services.NewOfferResolver(),
	}
}

// Handle executes the preview. Business ineligibility comes back as an
// invalid result with a reason; only infrastructure failures return errors.
func (h ValidateOfferQueryHandler) Handle(ctx context.Context, query ValidateOfferQuery) (ValidateOfferQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidateOfferQueryResponse{}, err
	}

	found, err := h.offers.GetByCode(ctx, query.Code())
	if err != nil {
		return ValidateOfferQueryResponse{}, err
	}

	discount, err := h.resolver.Resolve(found, query.OrderValue(), query.RestaurantID(), time.Now().UTC())
	if err != nil {
		if reason, ok := ineligibilityReason(err); ok {
			return ValidateOfferQueryResponse{
				Valid:       false,
				Discount:    kernel.ZeroMoney(),
				FinalAmount: query.OrderValue(),
				Reason:      reason,
			}, nil
		}
		return ValidateOfferQueryResponse{}, err
	}

	return ValidateOfferQueryResponse{
		Valid:       true,
		Discount:    discount,
		FinalAmount: query.OrderValue().Sub(discount),
	}, nil
}

// ineligibilityReason maps domain rejections to preview reasons. Anything
// else is a real error.
func ineligibilityReason(err error) (string, bool) {
	switch {
	case errors.Is(err, offer.ErrOfferNotFound):
		return "offer not found", true
	case errors.Is(err, offer.ErrOfferNotActive):
		return "offer is not active", true
	case errors.Is(err, offer.ErrOfferScopeMismatch):
		return "offer is not valid for this restaurant", true
	case errors.Is(err, offer.ErrOfferBelowMinimum):
		return "order value is below the offer minimum", true
	default:
		return "", false
	}
}
