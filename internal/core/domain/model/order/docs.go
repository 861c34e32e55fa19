// Package order provides domain entities and business logic for order
// management in the food-ordering platform. It implements the Order
// aggregate root with its priced breakdown, frozen line snapshots and
// actor-scoped lifecycle.
//
// The package includes:
//   - Order: the aggregate root binding identity, lines, breakdown and lifecycle
//   - Line: an immutable order line snapshot frozen at placement time
//   - Breakdown: the itemized monetary components summing to the final charge
//   - Status and ActorRole: a state machine enforcing the per-actor transition table
//   - PaymentMode: the recorded (never processed) payment method
//
// Key business rules:
//   - Orders start confirmed when a delivery partner was matched at
//     creation, pending otherwise
//   - Restaurants drive pending/confirmed/preparing/ready/cancelled;
//     delivery partners drive picked_up/delivered
//   - Ownership is checked before state: actors can only move orders that
//     belong to them
//   - delivered and cancelled are terminal; no transition skips a tier
//   - Menu changes never retroactively alter a placed order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
