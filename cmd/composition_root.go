package cmd

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"foodcourt/internal/adapters/out/kafka/orderevents"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/catalogrepo"
	"foodcourt/internal/adapters/out/postgres/offerrepo"
	"foodcourt/internal/adapters/out/postgres/partnerrepo"
	"foodcourt/internal/adapters/out/redis/cartstore"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	carts        ports.CartStore
	catalog      *catalogrepo.GormCatalogRepository
	offers       *offerrepo.GormOfferRepository
	partners     *partnerrepo.GormPartnerRepository
	eventsWriter *orderevents.KafkaOrderEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	writer := orderevents.NewWriter(config.KafkaHost, config.KafkaOrderChangedTopic)

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:        cartstore.NewRedisCartStore(redisClient),
		catalog:      catalogrepo.NewGormCatalogRepository(gormDB),
		offers:       offerrepo.NewGormOfferRepository(gormDB),
		partners:     partnerrepo.NewGormPartnerRepository(gormDB),
		eventsWriter: orderevents.NewKafkaOrderEventPublisher(writer),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(
		f,
		c.carts,
		c.catalog,
		c.catalog,
		c.offers,
		c.offers,
		c.partners,
		c.eventsWriter,
		services.NewPricingCalculator(),
	)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.eventsWriter)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.partners, c.eventsWriter)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, c.catalog)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts, c.catalog)
}

func (c *CompositionRoot) CreateValidateOfferQueryHandler() queries.ValidateOfferQueryHandler {
	return queries.NewValidateOfferQueryHandler(c.offers)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
