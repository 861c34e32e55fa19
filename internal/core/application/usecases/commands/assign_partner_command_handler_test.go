package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/partner"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"
)

func TestAssignPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, nil, order.StatusPending)

	available, err := partner.NewPartner(kernel.NewUUID(), "Ravi", aggregate.PostalCode(), true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetFirstPendingUnassigned", ctx).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate, order.StatusPending).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	partners := new(MockPartnerDirectory)
	partners.On("ListServing", ctx, aggregate.PostalCode()).
		Return([]*partner.Partner{available}, nil).Once()
	partners.On("SetAvailability", ctx, available.ID(), false).Return(nil).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewAssignPartnerCommandHandler(factory, partners, publisher)
	cmd := commands.NewAssignPartnerCommand()
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, aggregate.Status())
	require.NotNil(t, aggregate.PartnerID())
	assert.True(t, aggregate.PartnerID().IsEqual(available.ID()))
	partners.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignPartnerCommandHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetFirstPendingUnassigned", ctx).
		Return(nil, errs.NewObjectNotFoundError("order", "pending")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPartnerCommandHandler(factory, new(MockPartnerDirectory), new(MockOrderEventPublisher))
	cmd := commands.NewAssignPartnerCommand()
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrNoPendingOrders)
}

func TestAssignPartnerCommandHandler_Handle_NoPartnerAvailable(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, nil, order.StatusPending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetFirstPendingUnassigned", ctx).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	partners := new(MockPartnerDirectory)
	partners.On("ListServing", ctx, aggregate.PostalCode()).
		Return([]*partner.Partner{}, nil).Once()

	h := commands.NewAssignPartnerCommandHandler(factory, partners, new(MockOrderEventPublisher))
	cmd := commands.NewAssignPartnerCommand()
	err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, services.ErrNoPartnerAvailable)
	assert.Equal(t, order.StatusPending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignPartnerCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAssignPartnerCommandHandler(
		new(MockOrderUoWFactory), new(MockPartnerDirectory), new(MockOrderEventPublisher))

	err := h.Handle(t.Context(), commands.AssignPartnerCommand{})

	assert.ErrorIs(t, err, commands.ErrAssignPartnerCommandIsNotConstructed)
}
