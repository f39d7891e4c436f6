package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/auth"
	"attendance/dashboard/internal/commands"
	"attendance/dashboard/internal/metrics"
	"attendance/dashboard/internal/pkg/config"
	"attendance/dashboard/internal/router"
	"attendance/dashboard/internal/service"
	"attendance/dashboard/internal/store"

	"github.com/ardanlabs/conf"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := log.New(os.Stdout, "DASHBOARD : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := run(logger); err != nil {
		logger.Println("main: error:", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, err := config.Usage()
			if err != nil {
				return errors.Wrap(err, "generating usage")
			}
			fmt.Println(usage)
			return nil
		}
		return err
	}

	logger.Printf("main: config :\n%v\n", cfg)

	// =========================================================================
	// Store

	m := metrics.New()
	today := func() time.Time { return cfg.Today(time.Now()) }

	st := store.New(store.DefaultSeed(today()), store.WithObserver(m.StoreObserver()))

	// =========================================================================
	// Auth

	var sessions auth.Sessions
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logger.Println("main: redis close:", err)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			return errors.Wrapf(err, "connecting to redis at %s", cfg.Redis.Addr)
		}

		logger.Printf("main: refresh sessions in redis %s", cfg.Redis.Addr)
		sessions = auth.NewRedisSessions(client)
	} else {
		logger.Println("main: refresh sessions in memory")
		sessions = auth.NewMemorySessions()
	}

	users, err := auth.NewDirectory(auth.DefaultAccounts(), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a, err := auth.New(cfg.Auth.JWTKey, sessions, users)
	if err != nil {
		return errors.Wrap(err, "constructing auth")
	}

	// =========================================================================
	// API

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	r := router.NewRouter(
		web.NewApp(engine),
		st,
		a,
		m,
		service.NewExporter(cfg.Export.Dir),
		commands.TokenTTL{Access: cfg.Auth.AccessTTL, Refresh: cfg.Auth.RefreshTTL},
		cfg.Web.AllowedOrigins,
		today,
	)
	r.Init()

	api := http.Server{
		Addr:         cfg.Web.Host,
		Handler:      r.App,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Printf("main: API listening on %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-shutdown:
		logger.Printf("main: %v : start shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			_ = api.Close()
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}

	return nil
}
