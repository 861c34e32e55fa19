package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodcourt/cmd"
	httpadapter "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres/catalogrepo"
	"foodcourt/internal/adapters/out/postgres/offerrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/partnerrepo"
	"foodcourt/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient)

	if configs.RematchJobEnabled {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager := jobs.NewJobManager(
			app.CreateAssignPartnerCommandHandler(),
			configs.RematchJobSchedule,
			logger,
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RematchJobSchedule:     goDotEnvVariable("REMATCH_JOB_SCHEDULE"),
	}

	enabled, err := strconv.ParseBool(goDotEnvVariable("REMATCH_JOB_ENABLED"))
	if err != nil {
		log.Fatalf("REMATCH_JOB_ENABLED must be a boolean: %v", err)
	}
	config.RematchJobEnabled = enabled

	if config.RematchJobSchedule == "" {
		config.RematchJobSchedule = jobs.DefaultRematchSchedule
	}

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&catalogrepo.DishDTO{},
		&catalogrepo.RestaurantDTO{},
		&offerrepo.OfferDTO{},
		&offerrepo.PlatformFeeDTO{},
		&partnerrepo.PartnerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAddCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateValidateOfferQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
