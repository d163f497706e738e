package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	applicationservice "scholarstream/contexts/admissions/application-service"
	authorizationadapter "scholarstream/contexts/admissions/application-service/adapters/authorization"
	"scholarstream/contexts/admissions/application-service/adapters/catalog"
	applicationpostgres "scholarstream/contexts/admissions/application-service/adapters/postgres"
	stripeadapter "scholarstream/contexts/admissions/application-service/adapters/stripe"
	"scholarstream/contexts/admissions/application-service/application/commands"
	applicationports "scholarstream/contexts/admissions/application-service/ports"
	scholarshipservice "scholarstream/contexts/admissions/scholarship-service"
	scholarshippostgres "scholarstream/contexts/admissions/scholarship-service/adapters/postgres"
	authorization "scholarstream/contexts/identity-access/authorization-service"
	authpostgres "scholarstream/contexts/identity-access/authorization-service/adapters/postgres"
	authcommands "scholarstream/contexts/identity-access/authorization-service/application/commands"
	identityservice "scholarstream/contexts/identity-access/identity-service"
	jwtadapter "scholarstream/contexts/identity-access/identity-service/adapters/jwt"
	"scholarstream/internal/platform/config"
	"scholarstream/internal/platform/db"
	"scholarstream/internal/platform/httpserver"
	"scholarstream/internal/platform/metrics"
	"scholarstream/internal/platform/ratelimit"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

const shutdownTimeout = 15 * time.Second

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	local    *ratelimit.LocalLimiter
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	return buildAPI(cfg, logger)
}

func buildAPI(cfg config.Config, logger *slog.Logger) (*APIApp, error) {
	app := &APIApp{logger: logger}

	verifier, err := jwtadapter.NewVerifier(jwtadapter.Config{
		Secret:       cfg.JWTSecret,
		PublicKeyPEM: cfg.JWTPublicKeyPEM,
		Issuer:       cfg.JWTIssuer,
		Audience:     cfg.JWTAudience,
		Leeway:       30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("identity verifier: %w", err)
	}
	identityModule := identityservice.NewModule(identityservice.Dependencies{Verifier: verifier, Logger: logger})

	registry := metrics.New()
	limiter, redisClient, err := buildRateLimiter(cfg, logger)
	if err != nil {
		return nil, err
	}
	app.redis = redisClient
	if local, ok := limiter.(*ratelimit.LocalLimiter); ok {
		app.local = local
	}

	checkoutConfig := commands.CheckoutConfig{ClientBaseURL: cfg.ClientBaseURL, Currency: cfg.PaymentCurrency}
	admins := authcommands.NewAdminEmails(cfg.AdminEmails)
	var modules httpserver.Modules
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("POSTGRES_DSN not set; using in-memory storage",
			"event", "bootstrap_in_memory_storage",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		modules = buildInMemoryModules(identityModule, admins, limiter, registry, checkoutConfig, logger)
		if strings.TrimSpace(cfg.StripeSecretKey) != "" {
			modules.Applications = rewireCheckout(modules, cfg, limiter, registry, checkoutConfig, logger)
		}
	} else {
		if strings.TrimSpace(cfg.StripeSecretKey) == "" {
			_ = app.Close()
			return nil, errors.New("STRIPE_SECRET_KEY is required when POSTGRES_DSN is set")
		}
		if cfg.AutoMigrate {
			if err := db.MigrateUp(cfg.PostgresDSN, logger); err != nil {
				_ = app.Close()
				return nil, err
			}
		}
		pg, err := db.Connect(cfg.PostgresDSN, db.PoolOptions{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.postgres = pg
		modules, err = buildPostgresModules(pg, identityModule, admins, limiter, registry, cfg, checkoutConfig, logger)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
	}

	app.server = httpserver.New(modules, registry, logger, normalizeAddr(cfg.HTTPPort))
	return app, nil
}

func buildPostgresModules(
	pg *db.Postgres,
	identityModule identityservice.Module,
	admins authcommands.AdminEmails,
	limiter applicationports.RateLimiter,
	registry *metrics.Metrics,
	cfg config.Config,
	checkoutConfig commands.CheckoutConfig,
	logger *slog.Logger,
) (httpserver.Modules, error) {
	authModule := authorization.NewModule(authorization.Dependencies{
		Repository: authpostgres.NewRepository(pg.DB, logger),
		Clock:      authpostgres.SystemClock{},
		Admins:     admins,
		Logger:     logger,
	})
	if err := promoteAdmins(authModule); err != nil {
		return httpserver.Modules{}, err
	}

	scholarshipModule := scholarshipservice.NewModule(scholarshipservice.Dependencies{
		Repository:  scholarshippostgres.NewRepository(pg.DB, logger),
		Authorizer:  authModule.Policy,
		Clock:       scholarshippostgres.SystemClock{},
		IDGenerator: scholarshippostgres.UUIDGenerator{},
		Logger:      logger,
	})

	applicationRepo := applicationpostgres.NewRepository(pg.DB, logger)
	applicationModule := applicationservice.NewModule(applicationservice.Dependencies{
		Repository:   applicationRepo,
		Authorizer:   authorizationadapter.Authorizer{Policy: authModule.Policy, Logger: logger},
		Scholarships: applicationRepo,
		Checkout:     stripeadapter.NewProvider(stripeadapter.Config{SecretKey: cfg.StripeSecretKey}, logger),
		RateLimiter:  limiter,
		Metrics:      registry,
		Clock:        applicationpostgres.SystemClock{},
		IDGenerator:  applicationpostgres.UUIDGenerator{},
		Config:       checkoutConfig,
		Logger:       logger,
	})

	return httpserver.Modules{
		Identity:      identityModule,
		Authorization: authModule,
		Scholarships:  scholarshipModule,
		Applications:  applicationModule,
	}, nil
}

// promoteAdmins grants the admin role to listed accounts that already exist.
func promoteAdmins(authModule authorization.Module) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := authModule.PromoteAdmins.Execute(ctx); err != nil {
		return fmt.Errorf("promote admin accounts: %w", err)
	}
	return nil
}

func buildInMemoryModules(
	identityModule identityservice.Module,
	admins authcommands.AdminEmails,
	limiter applicationports.RateLimiter,
	registry *metrics.Metrics,
	checkoutConfig commands.CheckoutConfig,
	logger *slog.Logger,
) httpserver.Modules {
	authModule := authorization.NewInMemoryModuleWithAdmins(admins, logger)
	scholarshipModule := scholarshipservice.NewInMemoryModule(authModule.Policy, logger)
	applicationModule := applicationservice.NewInMemoryModule(applicationservice.InMemoryDependencies{
		Authorizer:   authorizationadapter.Authorizer{Policy: authModule.Policy, Logger: logger},
		Scholarships: catalog.Reader{Source: scholarshipModule.Store},
		RateLimiter:  limiter,
		Metrics:      registry,
		Config:       checkoutConfig,
		Logger:       logger,
	})
	return httpserver.Modules{
		Identity:      identityModule,
		Authorization: authModule,
		Scholarships:  scholarshipModule,
		Applications:  applicationModule,
	}
}

// rewireCheckout keeps in-memory storage but talks to real Stripe, which is
// how the service is exercised against Stripe test mode locally.
func rewireCheckout(
	modules httpserver.Modules,
	cfg config.Config,
	limiter applicationports.RateLimiter,
	registry *metrics.Metrics,
	checkoutConfig commands.CheckoutConfig,
	logger *slog.Logger,
) applicationservice.Module {
	store := modules.Applications.Store
	module := applicationservice.NewModule(applicationservice.Dependencies{
		Repository:   store,
		Authorizer:   authorizationadapter.Authorizer{Policy: modules.Authorization.Policy, Logger: logger},
		Scholarships: catalog.Reader{Source: modules.Scholarships.Store},
		Checkout:     stripeadapter.NewProvider(stripeadapter.Config{SecretKey: cfg.StripeSecretKey}, logger),
		RateLimiter:  limiter,
		Metrics:      registry,
		Clock:        store,
		IDGenerator:  store,
		Config:       checkoutConfig,
		Logger:       logger,
	})
	module.Store = store
	return module
}

func buildRateLimiter(cfg config.Config, logger *slog.Logger) (applicationports.RateLimiter, *redis.Client, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return ratelimit.NewLocalLimiter(cfg.CheckoutRateLimit, cfg.CheckoutRateWindow), nil, nil
	}
	options, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(options)
	logger.Info("checkout rate limiter uses redis",
		"event", "bootstrap_redis_rate_limiter",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"addr", options.Addr,
	)
	return ratelimit.NewRedisLimiter(client, cfg.CheckoutRateLimit, cfg.CheckoutRateWindow, "scholarstream:ratelimit"), client, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *APIApp) Run(ctx context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}

	if a.local != nil {
		go a.local.RunSweeper(ctx)
	}
	errCh := make(chan error, 1)
	go func() { errCh <- a.server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (a *APIApp) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.postgres != nil {
		errs = append(errs, a.postgres.Close())
	}
	return errors.Join(errs...)
}

// RunMigrations applies ("up") or rolls back ("down") schema migrations using
// the process configuration.
func RunMigrations(direction string, steps int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "migrate")
	switch direction {
	case "up":
		return db.MigrateUp(cfg.PostgresDSN, logger)
	case "down":
		return db.MigrateDown(cfg.PostgresDSN, steps, logger)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
