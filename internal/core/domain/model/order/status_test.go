package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodcourt/internal/pkg/errs"
)

func TestStatusValidate(t *testing.T) {
	t.Run("all lifecycle statuses are valid", func(t *testing.T) {
		for _, s := range []Status{
			StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
			StatusPickedUp, StatusDelivered, StatusCancelled,
		} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and arbitrary values are invalid", func(t *testing.T) {
		assert.Error(t, StatusUnknown.Validate())
		assert.Error(t, Status("shipped").Validate())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("parses a stored value", func(t *testing.T) {
		s, err := ParseStatus("picked_up")
		assert.NoError(t, err)
		assert.Equal(t, StatusPickedUp, s)
	})

	t.Run("rejects an unknown value", func(t *testing.T) {
		_, err := ParseStatus("done")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "preparing", StatusPreparing.String())
	assert.Equal(t, "unknown", Status("bogus").String())
	assert.Equal(t, "unknown", StatusUnknown.String())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
}

func TestParseActorRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		r, err := ParseActorRole("restaurant")
		assert.NoError(t, err)
		assert.Equal(t, ActorRestaurant, r)

		r, err = ParseActorRole("delivery_partner")
		assert.NoError(t, err)
		assert.Equal(t, ActorDeliveryPartner, r)
	})

	t.Run("customer holds no transitions", func(t *testing.T) {
		_, err := ParseActorRole("customer")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusTransitionBy(t *testing.T) {
	type move struct {
		actor  ActorRole
		from   Status
		to     Status
		wantOk bool
	}

	tests := []move{
		// restaurant side, every allowed hop
		{ActorRestaurant, StatusPending, StatusConfirmed, true},
		{ActorRestaurant, StatusPending, StatusPreparing, true},
		{ActorRestaurant, StatusPending, StatusCancelled, true},
		{ActorRestaurant, StatusConfirmed, StatusPreparing, true},
		{ActorRestaurant, StatusConfirmed, StatusCancelled, true},
		{ActorRestaurant, StatusPreparing, StatusReady, true},
		{ActorRestaurant, StatusPreparing, StatusCancelled, true},

		// restaurant side, rejected skips and reversals
		{ActorRestaurant, StatusPending, StatusReady, false},
		{ActorRestaurant, StatusPending, StatusDelivered, false},
		{ActorRestaurant, StatusConfirmed, StatusPending, false},
		{ActorRestaurant, StatusConfirmed, StatusReady, false},
		{ActorRestaurant, StatusPreparing, StatusConfirmed, false},
		{ActorRestaurant, StatusReady, StatusCancelled, false},
		{ActorRestaurant, StatusReady, StatusPickedUp, false},
		{ActorRestaurant, StatusPickedUp, StatusDelivered, false},

		// delivery partner side
		{ActorDeliveryPartner, StatusReady, StatusPickedUp, true},
		{ActorDeliveryPartner, StatusPickedUp, StatusDelivered, true},
		{ActorDeliveryPartner, StatusReady, StatusDelivered, false},
		{ActorDeliveryPartner, StatusPending, StatusPickedUp, false},
		{ActorDeliveryPartner, StatusConfirmed, StatusPickedUp, false},
		{ActorDeliveryPartner, StatusPreparing, StatusPickedUp, false},
		{ActorDeliveryPartner, StatusPickedUp, StatusCancelled, false},
		{ActorDeliveryPartner, StatusDelivered, StatusPickedUp, false},

		// terminal states stay terminal for both actors
		{ActorRestaurant, StatusDelivered, StatusPending, false},
		{ActorRestaurant, StatusCancelled, StatusConfirmed, false},
		{ActorDeliveryPartner, StatusDelivered, StatusDelivered, false},
		{ActorDeliveryPartner, StatusCancelled, StatusPickedUp, false},
	}

	for _, tt := range tests {
		name := string(tt.actor) + ": " + tt.from.String() + " -> " + tt.to.String()
		t.Run(name, func(t *testing.T) {
			got, err := tt.from.TransitionBy(tt.actor, tt.to)

			if tt.wantOk {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, got)
				return
			}

			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, StatusUnknown, got)
		})
	}

	t.Run("invalid target is rejected before the table lookup", func(t *testing.T) {
		_, err := StatusPending.TransitionBy(ActorRestaurant, Status("done"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("error names actor and both statuses", func(t *testing.T) {
		_, err := StatusReady.TransitionBy(ActorRestaurant, StatusDelivered)
		assert.EqualError(t, err,
			"invalid status transition: restaurant cannot move order from ready to delivered")
	})
}
