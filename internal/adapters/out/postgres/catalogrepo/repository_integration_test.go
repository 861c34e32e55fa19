package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/catalogrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stretchr/testify/suite"
)

// CatalogRepositoryIntegrationTestSuite provides integration tests for the
// catalog read models using PostgreSQL containers.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&catalogrepo.DishDTO{}, &catalogrepo.RestaurantDTO{}))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dishes, restaurants").Error)

	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGet_ActiveRestaurant_ReturnsInfo() {
	ctx := context.Background()
	id := suite.seedRestaurant("Biryani House", true)

	info, err := suite.repository.Get(ctx, id)

	suite.Require().NoError(err)
	suite.True(info.ID.IsEqual(id))
	suite.Equal("Biryani House", info.Name)
	suite.True(info.FeePercent.Equal(decimal.NewFromInt(5)))
	suite.True(info.Active)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGet_InactiveRestaurant_ReturnsWithFlagCleared() {
	ctx := context.Background()
	id := suite.seedRestaurant("Closed Kitchen", false)

	info, err := suite.repository.Get(ctx, id)

	// A deactivated restaurant is a real object, not a missing one.
	suite.Require().NoError(err)
	suite.True(info.ID.IsEqual(id))
	suite.False(info.Active)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGet_NonExistentRestaurant_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetByIDs_ReturnsRequestedDishes() {
	ctx := context.Background()
	restaurantID := suite.seedRestaurant("Biryani House", true)
	served := suite.seedDish(restaurantID, "Veg Biryani", 100, true)
	gone := suite.seedDish(restaurantID, "Seasonal Special", 150, false)

	dishes, err := suite.repository.GetByIDs(ctx, []kernel.UUID{served, gone, kernel.NewUUID()})

	// Missing dishes are absent; unavailable ones come back flagged.
	suite.Require().NoError(err)
	suite.Require().Len(dishes, 2)

	byID := make(map[kernel.UUID]bool, len(dishes))
	for _, dish := range dishes {
		byID[dish.ID] = dish.Available
	}
	suite.True(byID[served])
	suite.False(byID[gone])
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetByIDs_NoIDs_ReturnsEmpty() {
	ctx := context.Background()

	dishes, err := suite.repository.GetByIDs(ctx, nil)

	suite.Require().NoError(err)
	suite.Empty(dishes)
}

func (suite *CatalogRepositoryIntegrationTestSuite) seedRestaurant(name string, active bool) kernel.UUID {
	dto := catalogrepo.RestaurantDTO{
		ID:         uuid.New(),
		Name:       name,
		FeePercent: decimal.NewFromInt(5),
		Active:     active,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	suite.Require().NoError(err)
	return id
}

func (suite *CatalogRepositoryIntegrationTestSuite) seedDish(restaurantID kernel.UUID, name string, price int64, available bool) kernel.UUID {
	dto := catalogrepo.DishDTO{
		ID:           uuid.New(),
		RestaurantID: restaurantID.Bytes(),
		Name:         name,
		Price:        decimal.NewFromInt(price),
		Available:    available,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	suite.Require().NoError(err)
	return id
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
