package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"orderstatus/cmd"
	_ "orderstatus/docs"
	httpadapter "orderstatus/internal/adapters/in/http"
	"orderstatus/internal/adapters/out/kafka"
	"orderstatus/internal/adapters/out/postgres/exceptionrepo"
	"orderstatus/internal/adapters/out/postgres/orderrepo"
	"orderstatus/internal/adapters/out/postgres/userrepo"
	"orderstatus/internal/core/ports"
	"orderstatus/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Order Status API
//	@version		1.0
//	@description	Order status transitions for a food delivery platform.
//	@BasePath		/
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	// An empty KAFKA_HOST disables event publishing; the interface must stay
	// a true nil in that case so the transition pipeline skips it.
	var publisher ports.OrderStatusPublisher
	if configs.KafkaHost != "" {
		kafkaPublisher, err := kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
		if err != nil {
			log.Fatalf("Error connecting to Kafka: %v", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		logger.Info("KAFKA_HOST is empty, status change events will not be published")
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		logger,
	)

	jobManager := jobs.NewJobManager(app.CreateFlagOverdueDeliveriesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; values may come straight from the process environment.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error initializing GORM: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &exceptionrepo.ExceptionDTO{}, &userrepo.UserDTO{})
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	validator, err := httpadapter.NewOpenAPIValidationMiddleware()
	if err != nil {
		log.Fatalf("Error loading OpenAPI contract: %v", err)
	}
	e.Use(validator)

	server := httpadapter.NewServer(
		app.CreateAcceptOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreatePrepareOrderCommandHandler(),
		app.CreateGiveOrderToCourierCommandHandler(),
		app.CreateStartOrderTransitCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateGetOrderStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
