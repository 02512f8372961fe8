package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/graphql"
	"fulfillment/internal/adapters/in/httpauth"
	"fulfillment/internal/adapters/in/natsconsumer"
	"fulfillment/internal/adapters/out/natspub"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/packagingrepo"
	"fulfillment/internal/identity"
	"fulfillment/internal/jobs"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/nats-io/nats.go"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	gormDB := mustOpenGorm(configs)
	mustMigrate(gormDB)

	identityDB := mustOpenIdentityStore(configs.IdentityDir)
	defer identityDB.Close()

	identityService, err := identity.NewService(identityDB, []byte(configs.TokenSecret), configs.TokenTTL)
	if err != nil {
		log.Fatalf("Identity service: %v", err)
	}

	verifier, err := identity.NewVerifier([]byte(configs.TokenSecret))
	if err != nil {
		log.Fatalf("Token verifier: %v", err)
	}

	natsConn := mustConnectNats(configs.NatsURL)
	defer natsConn.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, natspub.NewPublisher(natsConn))

	resolvers := graphql.NewResolvers(
		app.CreateStartPackagingCommandHandler(),
		app.CreateCompletePackagingCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateFailDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetNewPackagingRequestIdsQueryHandler(),
		app.CreateGetPackagingRequestQueryHandler(),
		app.CreateGetNewDeliveriesQueryHandler(),
		app.CreateGetDeliveryQueryHandler(),
	)

	schema, err := graphql.NewSchema(resolvers)
	if err != nil {
		log.Fatalf("GraphQL schema: %v", err)
	}

	router := echo.New()
	graphql.NewServer(schema, verifier).RegisterRoutes(router)
	httpauth.NewHandler(identityService).RegisterRoutes(router)

	createPackagingHandler := app.CreateCreatePackagingRequestCommandHandler()
	createDeliveryHandler := app.CreateCreateDeliveryCommandHandler()
	consumer := natsconsumer.NewConsumer(natsConn, &createPackagingHandler, &createDeliveryHandler, logger)
	if err = consumer.Start(); err != nil {
		log.Fatalf("Order consumer: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateDispatchOutboxCommandHandler(),
		app.CreatePurgeRecordsCommandHandler(),
		configs.OutboxBatchSize,
		configs.RetentionWindow,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Background jobs: %v", err)
	}

	startWebServer(router, configs.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err = router.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown", "error", err)
	}
	if err = consumer.Stop(); err != nil {
		logger.Error("Order consumer shutdown", "error", err)
	}
	jobManager.StopAll()
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		NatsURL:         goDotEnvVariable("NATS_URL"),
		IdentityDir:     goDotEnvVariable("IDENTITY_DIR"),
		TokenSecret:     goDotEnvVariable("TOKEN_SECRET"),
		TokenTTL:        durationEnvVariable("TOKEN_TTL", time.Hour),
		OutboxBatchSize: intEnvVariable("OUTBOX_BATCH_SIZE", 100),
		RetentionWindow: durationEnvVariable("RETENTION_WINDOW", 30*24*time.Hour),
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

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustOpenGorm(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&packagingrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&outboxrepo.EventDTO{},
	)
	if err != nil {
		log.Fatalf("Database migration: %v", err)
	}
}

func mustOpenIdentityStore(dir string) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		log.Fatalf("Identity store: %v", err)
	}
	return db
}

func mustConnectNats(url string) *nats.Conn {
	conn, err := nats.Connect(url,
		nats.Name("fulfillment"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		log.Fatalf("NATS connection: %v", err)
	}
	return conn
}

func startWebServer(router *echo.Echo, port string) {
	go func() {
		err := router.Start(fmt.Sprintf("0.0.0.0:%s", port))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()
}
