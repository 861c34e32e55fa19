package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

func mustLine(t *testing.T, name string, price int64, qty int) Line {
	t.Helper()
	l, err := NewLine(kernel.NewUUID(), name, kernel.NewMoneyFromInt(price), qty, "")
	require.NoError(t, err)
	return l
}

func mustBreakdown(t *testing.T) Breakdown {
	t.Helper()
	b, err := NewBreakdown(
		kernel.NewMoneyFromInt(200),
		kernel.NewMoneyFromInt(10),
		kernel.NewMoneyFromInt(6),
		kernel.NewMoneyFromInt(40),
		kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return b
}

func mustPostalCode(t *testing.T) kernel.PostalCode {
	t.Helper()
	code, err := kernel.NewPostalCode("560001")
	require.NoError(t, err)
	return code
}

func newTestOrder(t *testing.T, partnerID *kernel.UUID) *Order {
	t.Helper()
	o, err := NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		partnerID,
		[]Line{mustLine(t, "Dal Makhani", 180, 1)},
		mustBreakdown(t),
		PaymentModeCash,
		"12 MG Road, Bengaluru",
		mustPostalCode(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("pending when no partner was matched", func(t *testing.T) {
		o := newTestOrder(t, nil)

		assert.Equal(t, StatusPending, o.Status())
		assert.Nil(t, o.PartnerID())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("confirmed when a partner was matched at creation", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		o := newTestOrder(t, &partnerID)

		assert.Equal(t, StatusConfirmed, o.Status())
		require.NotNil(t, o.PartnerID())
		assert.True(t, o.PartnerID().IsEqual(partnerID))
	})

	t.Run("requires at least one line", func(t *testing.T) {
		_, err := NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			nil, mustBreakdown(t), PaymentModeCash,
			"12 MG Road, Bengaluru", mustPostalCode(t), time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a delivery address", func(t *testing.T) {
		_, err := NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]Line{mustLine(t, "Dal Makhani", 180, 1)}, mustBreakdown(t), PaymentModeCash,
			"", mustPostalCode(t), time.Now(),
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects an unconstructed breakdown", func(t *testing.T) {
		_, err := NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]Line{mustLine(t, "Dal Makhani", 180, 1)}, Breakdown{}, PaymentModeCash,
			"12 MG Road, Bengaluru", mustPostalCode(t), time.Now(),
		)
		assert.Error(t, err)
	})

	t.Run("rejects a zero placement time", func(t *testing.T) {
		_, err := NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]Line{mustLine(t, "Dal Makhani", 180, 1)}, mustBreakdown(t), PaymentModeCash,
			"12 MG Road, Bengaluru", mustPostalCode(t), time.Time{},
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("copies the lines slice", func(t *testing.T) {
		lines := []Line{mustLine(t, "Dal Makhani", 180, 1)}
		o, err := NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			lines, mustBreakdown(t), PaymentModeCash,
			"12 MG Road, Bengaluru", mustPostalCode(t), time.Now(),
		)
		require.NoError(t, err)

		lines[0] = Line{}
		assert.NoError(t, o.Lines()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores stored status and delivery timestamp", func(t *testing.T) {
		deliveredAt := time.Now().Add(-time.Hour)
		o, err := RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]Line{mustLine(t, "Dal Makhani", 180, 1)}, mustBreakdown(t), PaymentModeUPI,
			StatusDelivered, "12 MG Road, Bengaluru", mustPostalCode(t),
			time.Now().Add(-2*time.Hour), &deliveredAt,
		)

		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.True(t, o.DeliveredAt().Equal(deliveredAt))
	})

	t.Run("rejects an invalid stored status", func(t *testing.T) {
		_, err := RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			[]Line{mustLine(t, "Dal Makhani", 180, 1)}, mustBreakdown(t), PaymentModeUPI,
			Status("done"), "12 MG Road, Bengaluru", mustPostalCode(t),
			time.Now(), nil,
		)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("constructed order", func(t *testing.T) {
		assert.NoError(t, newTestOrder(t, nil).Validate())
	})

	t.Run("zero value and nil", func(t *testing.T) {
		var zero Order
		assert.ErrorIs(t, zero.Validate(), ErrOrderIsNotConstructed)

		var nilOrder *Order
		assert.ErrorIs(t, nilOrder.Validate(), ErrOrderIsNotConstructed)
	})
}

func TestOrderTransitionBy(t *testing.T) {
	t.Run("restaurant drives the order to ready", func(t *testing.T) {
		o := newTestOrder(t, nil)
		restaurantID := o.RestaurantID()
		now := time.Now()

		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusConfirmed, now))
		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusPreparing, now))
		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusReady, now))

		assert.Equal(t, StatusReady, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("ownership check runs before the state check", func(t *testing.T) {
		o := newTestOrder(t, nil)

		// delivered is not reachable from pending for a restaurant, but a
		// stranger must see the ownership error, not the transition error
		err := o.TransitionBy(ActorRestaurant, kernel.NewUUID(), StatusDelivered, time.Now())
		assert.ErrorIs(t, err, ErrActorNotOwner)
		assert.Equal(t, StatusPending, o.Status())
	})

	t.Run("partner cannot act on an unassigned order", func(t *testing.T) {
		o := newTestOrder(t, nil)

		err := o.TransitionBy(ActorDeliveryPartner, kernel.NewUUID(), StatusPickedUp, time.Now())
		assert.ErrorIs(t, err, ErrActorNotOwner)
	})

	t.Run("assigned partner picks up and delivers", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		o := newTestOrder(t, &partnerID)
		restaurantID := o.RestaurantID()
		now := time.Now()

		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusPreparing, now))
		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusReady, now))
		require.NoError(t, o.TransitionBy(ActorDeliveryPartner, partnerID, StatusPickedUp, now))

		assert.Nil(t, o.DeliveredAt())

		deliveredAt := now.Add(20 * time.Minute)
		require.NoError(t, o.TransitionBy(ActorDeliveryPartner, partnerID, StatusDelivered, deliveredAt))

		assert.Equal(t, StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.True(t, o.DeliveredAt().Equal(deliveredAt))
	})

	t.Run("a different partner cannot move an assigned order", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		o := newTestOrder(t, &partnerID)
		restaurantID := o.RestaurantID()
		now := time.Now()

		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusPreparing, now))
		require.NoError(t, o.TransitionBy(ActorRestaurant, restaurantID, StatusReady, now))

		err := o.TransitionBy(ActorDeliveryPartner, kernel.NewUUID(), StatusPickedUp, now)
		assert.ErrorIs(t, err, ErrActorNotOwner)
		assert.Equal(t, StatusReady, o.Status())
	})

	t.Run("rejected transition leaves the order untouched", func(t *testing.T) {
		o := newTestOrder(t, nil)

		err := o.TransitionBy(ActorRestaurant, o.RestaurantID(), StatusReady, time.Now())
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, StatusPending, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("unknown actor role", func(t *testing.T) {
		o := newTestOrder(t, nil)

		err := o.TransitionBy(ActorRole("customer"), o.CustomerID(), StatusCancelled, time.Now())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderAssignPartner(t *testing.T) {
	t.Run("pending unassigned order becomes confirmed", func(t *testing.T) {
		o := newTestOrder(t, nil)
		partnerID := kernel.NewUUID()

		require.NoError(t, o.AssignPartner(partnerID))

		assert.Equal(t, StatusConfirmed, o.Status())
		require.NotNil(t, o.PartnerID())
		assert.True(t, o.PartnerID().IsEqual(partnerID))
	})

	t.Run("rejects a second assignment", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		o := newTestOrder(t, &partnerID)

		err := o.AssignPartner(kernel.NewUUID())
		assert.ErrorIs(t, err, ErrPartnerAlreadyAssigned)
		assert.True(t, o.PartnerID().IsEqual(partnerID))
	})

	t.Run("rejects assignment once the order left pending", func(t *testing.T) {
		o := newTestOrder(t, nil)
		require.NoError(t, o.TransitionBy(ActorRestaurant, o.RestaurantID(), StatusCancelled, time.Now()))

		err := o.AssignPartner(kernel.NewUUID())
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.PartnerID())
	})
}

func TestOrderIsEqual(t *testing.T) {
	a := newTestOrder(t, nil)
	b := newTestOrder(t, nil)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
