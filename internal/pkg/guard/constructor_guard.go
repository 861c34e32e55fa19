// Package guard provides a defensive construction pattern for commands, queries
// and value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypass their constructor fail validation
// instead of silently carrying unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an object that was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its
// designated constructor. The zero value fails validation.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    // fields...
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(...) (PlaceOrderCommand, error) {
//	    cmd := PlaceOrderCommand{guard: guard.NewConstructorGuard()}
//	    // validate and set fields...
//	    return cmd, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it inside the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
