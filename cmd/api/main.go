package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	accountrepo "github.com/gennaskitchen/service-api-go/internal/account/repo"
	cartrepo "github.com/gennaskitchen/service-api-go/internal/cart/repo"
	catalogrepo "github.com/gennaskitchen/service-api-go/internal/catalog/repo"
	"github.com/gennaskitchen/service-api-go/internal/router"
	"github.com/gennaskitchen/service-api-go/pkg/database"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting gennaskitchen api")

	// init db
	cfg := database.ConfigFromEnv()
	sqlDB, err := database.Connect(cfg)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer sqlDB.Close()

	// wrap with sqlx for convenience in repos/services
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")
	defer sqlxDB.Close()

	// ensure schema; the unique indexes created here back the Duplicate*
	// error mapping
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelBoot()
	if err := accountrepo.NewUserRepo(sqlxDB).EnsureTable(bootCtx); err != nil {
		sugar.Fatalf("ensure users table: %v", err)
	}
	if err := catalogrepo.NewProductRepo(sqlxDB).EnsureTable(bootCtx); err != nil {
		sugar.Fatalf("ensure products table: %v", err)
	}
	if err := cartrepo.NewCartRepo(sqlxDB).EnsureTable(bootCtx); err != nil {
		sugar.Fatalf("ensure cart_lines table: %v", err)
	}

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := os.Getenv("APP_HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:5000"
	}

	// mount http server
	handler := router.RegisterRoutes(sugar, sqlxDB)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// run server in background
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	sugar.Infof("service is running on %s; press Ctrl+C to stop", addr)

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ping db once more
	if err := sqlDB.PingContext(doneCtx); err != nil {
		sugar.Warnf("db ping on shutdown failed: %v", err)
	}

	// shutdown http server
	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
