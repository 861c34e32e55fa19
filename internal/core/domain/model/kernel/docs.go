// Package kernel provides core domain primitives for the ordering platform.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Money: A fixed-point monetary amount backed by decimal arithmetic
//   - PostalCode: A normalized delivery destination code used by partner matching
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
