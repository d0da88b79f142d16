package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/cmd"
	httpin "github.com/drakon-axiom/kit-maker-sub003/internal/adapters/in/http"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres/batchrepo"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres/orderrepo"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres/quoteactionrepo"
	"github.com/drakon-axiom/kit-maker-sub003/internal/adapters/out/postgres/shipmentrepo"
	"github.com/drakon-axiom/kit-maker-sub003/internal/generated/servers"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	publisher := app.Publisher()
	publisher.Start()
	defer publisher.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newWebServer(app)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	waitForShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
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
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		CarrierBaseURL:         goDotEnvVariable("CARRIER_BASE_URL"),
		CarrierAPIKey:          goDotEnvVariable("CARRIER_API_KEY"),
		EmailRelayURL:          goDotEnvVariable("EMAIL_RELAY_URL"),
		EmailRelayAPIKey:       goDotEnvVariable("EMAIL_RELAY_API_KEY"),
		SMSRelayURL:            goDotEnvVariable("SMS_RELAY_URL"),
		SMSRelayAPIKey:         goDotEnvVariable("SMS_RELAY_API_KEY"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&quoteactionrepo.QuoteActionDTO{},
		&batchrepo.BatchDTO{},
		&batchrepo.BatchStepDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func newWebServer(app cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateIssueQuoteCommandHandler(),
		app.CreateRecordCustomerDecisionCommandHandler(),
		app.CreateRenewQuoteCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateAdvanceFulfillmentCommandHandler(),
		app.CreateHoldOrderCommandHandler(),
		app.CreateResumeOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateBatchCommandHandler(),
		app.CreateStartBatchStepCommandHandler(),
		app.CreateCompleteBatchStepCommandHandler(),
		app.CreatePurchaseLabelCommandHandler(),
		app.CreateVoidLabelCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
		app.CreateGetBatchProgressQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	return e
}

func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
