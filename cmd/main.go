package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/shop-order-core/internal/app"
	"github.com/SergeyBogomolovv/shop-order-core/internal/config"
	_ "github.com/SergeyBogomolovv/shop-order-core/internal/docs"
	"github.com/SergeyBogomolovv/shop-order-core/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-core/internal/events"
	"github.com/SergeyBogomolovv/shop-order-core/internal/handler"
	"github.com/SergeyBogomolovv/shop-order-core/internal/identity"
	"github.com/SergeyBogomolovv/shop-order-core/internal/middleware"
	"github.com/SergeyBogomolovv/shop-order-core/internal/payment"
	"github.com/SergeyBogomolovv/shop-order-core/internal/postgres"
	"github.com/SergeyBogomolovv/shop-order-core/internal/pricing"
	"github.com/SergeyBogomolovv/shop-order-core/internal/repo/memory"
	pgrepo "github.com/SergeyBogomolovv/shop-order-core/internal/repo/postgres"
	"github.com/SergeyBogomolovv/shop-order-core/internal/service"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/cache"
	"github.com/SergeyBogomolovv/shop-order-core/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Order Core API
// @version         1.0
// @description     Cart, checkout, payment, review and address API
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var starters []app.Starter

	store, txManager, closeStore := newStore(ctx, logger, conf)
	defer closeStore()

	var orderCache service.Cache
	if conf.Cache.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, conf.Cache.RedisURL)
		panicIfErr("failed to connect to redis", err)
		defer client.Close()
		orderCache = cache.NewRedisCache(logger, client, "order:", conf.Cache.TTL)
		logger.Info("redis cache connected")
	} else {
		lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
		orderCache = lru
		starters = append(starters, lru)
	}

	var publisher service.EventPublisher = events.NewLogPublisher(logger)
	if conf.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(logger, conf.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		starters = append(starters, kafkaPublisher)
	}

	ident := identity.NewContextProvider()
	settler := payment.NewSimulator(payment.Config{
		Latency:                 conf.Payment.Latency,
		BankTransferSuccessRate: conf.Payment.BankTransferSuccessRate,
		EWalletSuccessRate:      conf.Payment.EWalletSuccessRate,
	}, nil)

	cartService := service.NewCartService(logger, ident, store)
	cartService.Subscribe(cartChangedPublisher(publisher))

	orderService := service.NewOrderService(logger, service.OrderServiceDeps{
		Identity:  ident,
		TxManager: txManager,
		Repo:      store,
		Carts:     cartService,
		Addresses: store,
		Pricer:    pricing.NewEngine(conf.Pricing.ShippingFee),
		Cache:     orderCache,
		Events:    publisher,
		LeadTime:  conf.Pricing.DeliveryLeadTime,
	})
	paymentService := service.NewPaymentService(logger, ident, orderService, settler)
	reviewService := service.NewReviewService(logger, ident, store, orderService, publisher)
	addressService := service.NewAddressService(logger, ident, txManager, store)

	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewCartHandler(logger, cartService),
		handler.NewOrderHandler(logger, orderService, paymentService),
		handler.NewReviewHandler(logger, reviewService),
		handler.NewAddressHandler(logger, addressService),
		handler.NewAdminHandler(logger, middleware.RequireAdmin(conf.Auth.AdminRole), orderService, paymentService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService, paymentService))
	}
	app.SetStarters(append(starters, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

type store interface {
	service.CartRepo
	service.OrderRepo
	service.ReviewRepo
	service.AddressRepo
}

func newStore(ctx context.Context, logger *slog.Logger, conf config.Config) (store, trm.Manager, func()) {
	if conf.Store.Driver == "memory" {
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(), trm.NewMemoryManager(), func() {}
	}

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	return pgrepo.NewPostgresRepo(db), trm.NewManager(db), func() { db.Close() }
}

func cartChangedPublisher(publisher service.EventPublisher) service.CartObserver {
	return func(cart entities.Cart) {
		publisher.Publish(context.Background(), entities.Event{
			Type:       entities.EventCartChanged,
			Key:        cart.UserID,
			UserID:     cart.UserID,
			OccurredAt: time.Now().UTC(),
			Data: map[string]any{
				"unique_count":   cart.UniqueCount(),
				"total_quantity": cart.TotalQuantity(),
				"total_price":    cart.TotalPrice(),
			},
		})
	}
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
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
