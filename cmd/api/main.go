package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/TonAldo48/matematch-sub001/docs"
	"github.com/TonAldo48/matematch-sub001/internal/cache"
	"github.com/TonAldo48/matematch-sub001/internal/config"
	"github.com/TonAldo48/matematch-sub001/internal/database"
	"github.com/TonAldo48/matematch-sub001/internal/database/migration"
	handlers "github.com/TonAldo48/matematch-sub001/internal/http/handler"
	"github.com/TonAldo48/matematch-sub001/internal/http/middleware"
	"github.com/TonAldo48/matematch-sub001/internal/listings"
	"github.com/TonAldo48/matematch-sub001/internal/logging"
	"github.com/TonAldo48/matematch-sub001/internal/maps"
	"github.com/TonAldo48/matematch-sub001/internal/otel"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
	"github.com/TonAldo48/matematch-sub001/internal/repository/memory"
	"github.com/TonAldo48/matematch-sub001/internal/repository/postgres"
	"github.com/TonAldo48/matematch-sub001/internal/scraper"
	"github.com/TonAldo48/matematch-sub001/internal/service"
	"github.com/TonAldo48/matematch-sub001/internal/storage"
)

// maxBodyBytes leaves room for multipart framing around a 5 MiB avatar.
const maxBodyBytes = 6 << 20

type repositories struct {
	profiles  repository.ProfileRepository
	saved     repository.SavedListingRepository
	interests repository.InterestRepository
}

// @title MateMatch API
// @version 1.0
// @BasePath /
func main() {
	loc := logLocation()
	log := logging.Init(loc)

	if err := run(log, loc); err != nil {
		log.Error("server_exit", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(log *slog.Logger, loc *time.Location) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", slog.String("error", err.Error()))
		}
	}()

	var db *sql.DB
	var repos repositories
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			return err
		}
		repos = repositories{
			profiles:  postgres.NewProfilePostgres(db),
			saved:     postgres.NewSavedListingPostgres(db),
			interests: postgres.NewInterestPostgres(db),
		}
	} else {
		log.Warn("database_disabled", slog.String("store", "memory"))
		store := memory.New()
		repos = repositories{
			profiles:  store.Profiles(),
			saved:     store.SavedListings(),
			interests: store.Interests(),
		}
	}

	// Object storage is optional: without it avatars and snapshots are off.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
	} else {
		log.Warn("object_storage_disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	distanceCache, err := cache.NewDistanceCache(
		cache.WithSize(cfg.Cache.DistanceSize),
		cache.WithTTL(time.Duration(cfg.Cache.DistanceTTLSec)*time.Second),
		cache.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}

	fetcher := scraper.NewChromeFetcher(cfg.Scraper)
	defer fetcher.Close()

	mapsClient := maps.New(cfg.Maps, log)
	listingsClient := listings.New(cfg.Listings, log)
	pageScraper := scraper.New(fetcher, cfg.Scraper.AllowedHosts, log)

	deps := handlers.Dependencies{
		Metrics:   reg,
		Profiles:  service.NewProfileService(repos.profiles, objStore, log),
		Listings:  service.NewListingService(listingsClient, pageScraper, objStore, log),
		Distance:  service.NewDistanceService(mapsClient, distanceCache, log),
		Saved:     service.NewSavedService(repos.profiles, repos.saved),
		Interests: service.NewInterestService(repos.profiles, repos.interests, log),
	}
	if db != nil {
		deps.DB = db
	}

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             maxBodyBytes,
		DisableStartupMessage: true,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Server spans; handlers pass c.UserContext() on so service logs carry trace ids
	app.Use(otelfiber.Middleware())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(loc))
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", slog.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutdown")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// logLocation resolves LOG_TZ for log timestamps, defaulting to UTC.
func logLocation() *time.Location {
	name := os.Getenv("LOG_TZ")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
