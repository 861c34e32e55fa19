package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/fees"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/offer"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/partner"
	"foodcourt/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstPendingUnassigned(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, customerID kernel.UUID) ([]ports.CartLine, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CartLine), args.Error(1)
}

func (m *MockCartStore) Put(ctx context.Context, customerID kernel.UUID, lines []ports.CartLine) error {
	args := m.Called(ctx, customerID, lines)
	return args.Error(0)
}

func (m *MockCartStore) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockDishCatalog struct{ mock.Mock }

func (m *MockDishCatalog) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]ports.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Dish), args.Error(1)
}

type MockRestaurantDirectory struct{ mock.Mock }

func (m *MockRestaurantDirectory) Get(ctx context.Context, id kernel.UUID) (ports.RestaurantInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.RestaurantInfo), args.Error(1)
}

type MockOfferProvider struct{ mock.Mock }

func (m *MockOfferProvider) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockPlatformFeeProvider struct{ mock.Mock }

func (m *MockPlatformFeeProvider) GetActive(ctx context.Context) (*fees.PlatformFee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fees.PlatformFee), args.Error(1)
}

type MockPartnerDirectory struct{ mock.Mock }

func (m *MockPartnerDirectory) ListServing(ctx context.Context, code kernel.PostalCode) ([]*partner.Partner, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

func (m *MockPartnerDirectory) SetAvailability(ctx context.Context, id kernel.UUID, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
