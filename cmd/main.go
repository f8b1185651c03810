package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/storekit/storefront-service/internal/app"
	"github.com/storekit/storefront-service/internal/cart"
	"github.com/storekit/storefront-service/internal/cartkv"
	"github.com/storekit/storefront-service/internal/checkout"
	"github.com/storekit/storefront-service/internal/config"
	"github.com/storekit/storefront-service/internal/handler"
	"github.com/storekit/storefront-service/internal/payment"
	"github.com/storekit/storefront-service/internal/postgres"
	"github.com/storekit/storefront-service/internal/repo"
	"github.com/storekit/storefront-service/internal/service"
	"github.com/storekit/storefront-service/pkg/cache"
	"github.com/storekit/storefront-service/pkg/trm"

	_ "github.com/storekit/storefront-service/docs"
)

// @title           Storefront Service API
// @version         1.0
// @description     Multi-tenant storefront cart, checkout and order API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to run migrations", postgres.Migrate(db, conf.Postgres.MigrationsPath))
	logger.Info("postgres connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer redisClient.Close()
	panicIfErr("failed to connect to redis", redisClient.Ping(context.Background()).Err())
	logger.Info("redis connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	snapshotCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	carts := cart.NewStore(logger, cartkv.NewRedis(redisClient))
	catalogService := service.NewCatalogService(logger, storeRepo, snapshotCache)
	assembler := checkout.NewAssembler(logger, catalogService, carts)
	gateway := payment.NewHTTPGateway(logger, conf.Gateway)
	orderService := service.NewOrderService(logger, txManager, storeRepo, carts, gateway)

	httpHandler := handler.NewHTTPHandler(logger, carts, assembler, orderService, catalogService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, catalogService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(snapshotCache, warmUpAdapter{svc: catalogService, count: conf.Cache.WarmUpStores})

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

type warmUpper interface {
	WarmUp(ctx context.Context, count int) error
}

type warmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a warmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUp(ctx, a.count)
}
