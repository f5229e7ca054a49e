package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fullstep/storefront-cart/internal/app/cart/contracts"
	"github.com/fullstep/storefront-cart/internal/app/cart/domain"
	"github.com/fullstep/storefront-cart/internal/app/cart/engine"
	"github.com/fullstep/storefront-cart/internal/app/cart/notify"
	"github.com/fullstep/storefront-cart/internal/app/cart/projection"
	"github.com/fullstep/storefront-cart/internal/app/cart/store"
	"github.com/fullstep/storefront-cart/internal/app/catalog"
	"github.com/fullstep/storefront-cart/internal/app/contact"
	"github.com/fullstep/storefront-cart/internal/app/order"
	orderrepo "github.com/fullstep/storefront-cart/internal/app/order/repo"
	"github.com/fullstep/storefront-cart/internal/pkg/clock"
	committer "github.com/fullstep/storefront-cart/internal/pkg/committer"
	"github.com/fullstep/storefront-cart/internal/pkg/logger"
	"github.com/fullstep/storefront-cart/internal/transport/httpapi"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	addr := env("HTTP_ADDR", ":8080")
	storeBackend := env("CART_STORE", "memory")
	cartKey := env("CART_KEY", "fullstep-cart")
	logMode := env("LOG_MODE", "dev")

	lg, err := logger.New(logMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		lg.Info("shutdown signal received")
		cancel()
	}()

	var (
		snapshots contracts.SnapshotStore
		sink      contracts.OrderSink
	)

	switch storeBackend {
	case "spanner":
		db := env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db")
		client, err := spanner.NewClient(ctx, db)
		if err != nil {
			lg.Fatal("spanner client", "error", err)
		}
		defer client.Close()
		snapshots = store.NewSpannerStore(client, cartKey)
		sink = order.NewSpannerSink(
			orderrepo.NewOrderRepo(),
			orderrepo.NewOutboxRepo(),
			committer.NewAdapter(client),
			lg,
		)
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: env("REDIS_ADDR", "localhost:6379")})
		defer rdb.Close()
		snapshots = store.NewRedisStore(rdb, cartKey)
		sink = order.NewLogSink(lg)
	default:
		snapshots = store.NewMemoryStore()
		sink = order.NewLogSink(lg)
	}

	toasts := notify.NewEmitter(lg)
	eng := engine.New(ctx, snapshots, sink, toasts, clock.RealClock{}, lg)

	// The rendering layer subscribes once at setup: every state change logs
	// the freshly projected counter and total.
	eng.Subscribe(func(lines []domain.Line) {
		view := projection.Project(lines)
		lg.Debug("cart changed", "items", view.ItemCount, "total", view.GrandTotal)
	})

	fetcher := catalog.NewFetcher(
		env("CATALOG_URL", "https://fakestoreapi.com"),
		envInt("CATALOG_LIMIT", 6),
		10*time.Second,
	)
	submitter := contact.NewSubmitter(
		env("CONTACT_ENDPOINT", "https://formspree.io/f/placeholder"),
		10*time.Second,
	)

	if logMode == "prod" || logMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	httpapi.NewHandler(eng, fetcher, submitter, toasts, lg).Register(router)

	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		lg.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Error("http serve", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Warn("http shutdown", "error", err)
	}
	lg.Info("server stopped")
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
