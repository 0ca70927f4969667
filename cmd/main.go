package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/atlasgoods/fulfillment-service/internal/app"
	"github.com/atlasgoods/fulfillment-service/internal/carrier"
	"github.com/atlasgoods/fulfillment-service/internal/config"
	"github.com/atlasgoods/fulfillment-service/internal/geo"
	"github.com/atlasgoods/fulfillment-service/internal/handler"
	"github.com/atlasgoods/fulfillment-service/internal/postgres"
	"github.com/atlasgoods/fulfillment-service/internal/repo"
	"github.com/atlasgoods/fulfillment-service/internal/service"
	"github.com/atlasgoods/fulfillment-service/pkg/cache"
	"github.com/atlasgoods/fulfillment-service/pkg/trm"

	_ "github.com/atlasgoods/fulfillment-service/docs"
	"github.com/joho/godotenv"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Order ingestion and fulfillment HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	carrierClient := carrier.New(logger, conf.Carrier)
	resolver := geo.NewResolver(logger, carrierClient, conf.Carrier.CityRefresh)

	verifier := service.NewSignatureVerifier(conf.Webhook.Secret)
	ingestService := service.NewIngestService(logger, txManager, orderRepo, resolver)
	fulfillmentService := service.NewFulfillmentService(logger, txManager, orderRepo, orderRepo, carrierClient, orderCache)

	webhookHandler := handler.NewWebhookHandler(logger, verifier, ingestService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, ingestService)
	httpHandler := handler.NewHTTPHandler(logger, fulfillmentService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(webhookHandler, httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, resolver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
