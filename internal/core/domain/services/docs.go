// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the ordering system. It
// implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PricingCalculator: composes the itemized charge breakdown for an order
//   - OfferResolver: evaluates a discount code against an order context
//   - PartnerMatcher: picks a delivery partner for a destination postal code
//
// All three services are pure: they read their inputs and return results
// without touching storage, which keeps the placement flow's persistence a
// single atomic step in the application layer.
package services
