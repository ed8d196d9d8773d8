package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"comparee/internal/adapter/cache"
	"comparee/internal/adapter/events"
	"comparee/internal/adapter/gsc"
	httpadapter "comparee/internal/adapter/http"
	"comparee/internal/adapter/lock"
	"comparee/internal/adapter/postgres"
	"comparee/internal/adapter/secrets"
	"comparee/internal/adapter/translation"
	"comparee/internal/adapter/usecase"
	"comparee/internal/config"
	"comparee/internal/core/port"
	"comparee/internal/db"
	"comparee/internal/worker"
)

const sitemapTimeout = 15 * time.Second

// main loads configuration, optionally runs migrations and the demo seed,
// wires adapters and use cases, then serves HTTP and runs the background
// workers until a termination signal arrives.
func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return err
		}
		logger.Info("demo data seeded")
	}

	var rdb redis.UniversalClient
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err = client.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		rdb = client
		logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	}

	var publisher port.EventPublisher = events.Noop{}
	if cfg.NATS.Enabled() {
		p, err := events.Connect(cfg.NATS.URL, cfg.NATS.ClientName, cfg.NATS.SubjectPrefix, logger)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
	}

	var secretReader gsc.SecretReader
	if cfg.GSC.ServiceAccountB64 == "" && cfg.GSC.ServiceAccountSecretID != "" {
		sm, err := secrets.NewAWSSecretsManager(ctx, cfg.AWS.Region)
		if err != nil {
			// The sync reports not_configured until this is fixed.
			logger.Warn("secrets manager unavailable", slog.Any("error", err))
		} else {
			secretReader = sm
		}
	}

	listingRepo := postgres.NewListingRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	indexRepo := postgres.NewIndexStatusRepository(pool)
	outbox := postgres.NewTranslationOutbox(pool)

	var categories port.CategoryResolver = listingRepo
	var jobLock port.JobLock = lock.NewLocal()
	if rdb != nil {
		categories = cache.NewCategoryResolver(listingRepo, rdb, cfg.Redis.KeyPrefix, cfg.Listing.SlugCacheTTL, logger)
		jobLock = lock.NewRedis(rdb, cfg.Redis.KeyPrefix)
	}

	campaigns := usecase.NewCampaignUseCase(campaignRepo, publisher, logger)
	listingOpts := usecase.ListingOptions{
		StableTieBreak: cfg.Listing.TieBreak == "id",
		Languages:      cfg.Translation.TargetLanguages,
		SweepTimeout:   cfg.Sweep.Timeout,
	}
	if cfg.Sweep.OnRead {
		listingOpts.SweepOnRead = campaigns
	}
	listings := usecase.NewListingUseCase(listingRepo, categories, listingOpts, logger)
	companies := usecase.NewCompanyUseCase(companyRepo, publisher, logger)

	gscSync := usecase.NewGSCSyncUseCase(usecase.GSCSyncConfig{
		Enabled:        cfg.GSC.Enabled,
		BaseURL:        cfg.Site.BaseURL,
		DailyQuota:     cfg.GSC.DailyQuota,
		Pacing:         cfg.GSC.Pacing,
		InspectTimeout: cfg.GSC.InspectTimeout,
		LockTTL:        cfg.GSC.LockTTL,
	},
		indexRepo,
		gsc.NewSitemap(cfg.Site.BaseURL, &http.Client{Timeout: sitemapTimeout}),
		gsc.NewProvider(gsc.Credentials{
			Base64JSON: cfg.GSC.ServiceAccountB64,
			SecretID:   cfg.GSC.ServiceAccountSecretID,
			SiteURL:    cfg.GSC.SiteURL,
		}, secretReader),
		jobLock,
		logger,
	)

	translationEnabled := cfg.Translation.ServiceURL != ""
	if !translationEnabled {
		logger.Warn("TRANSLATION_SERVICE_URL not set, translation jobs stay pending")
	}
	translations := usecase.NewTranslationUseCase(
		outbox,
		translation.NewClient(cfg.Translation.ServiceURL, cfg.Translation.APIKey, cfg.Translation.Timeout),
		usecase.TranslationConfig{
			Enabled:     translationEnabled,
			BatchSize:   cfg.Translation.BatchSize,
			MaxAttempts: cfg.Translation.MaxAttempts,
			Lease:       2 * cfg.Translation.Timeout,
		},
		logger,
	)

	var workers sync.WaitGroup
	if cfg.Sweep.Interval > 0 {
		sweeper := worker.NewBudgetSweeper(campaigns, cfg.Sweep.Interval, cfg.Sweep.Timeout, logger)
		workers.Add(1)
		go func() {
			defer workers.Done()
			sweeper.Start(ctx)
		}()
	}
	if translationEnabled {
		tw := worker.NewTranslationWorker(translations, cfg.Translation.PollInterval, logger)
		workers.Add(1)
		go func() {
			defer workers.Done()
			tw.Start(ctx)
		}()
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Listings:  listings,
		Companies: companies,
		Campaigns: campaigns,
		GSCSync:   gscSync,
	}, httpadapter.Options{
		Production:  cfg.IsProduction(),
		CronToken:   cfg.GSC.CronToken,
		AdminSecret: []byte(cfg.Admin.JWTSecret),
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		cancel()
		workers.Wait()
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	workers.Wait()
	return nil
}
