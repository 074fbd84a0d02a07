// Command seed prepares a fresh database: it runs the migrations, creates the
// super admin and, with -content, adds the default services and pages.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"mehndi-service/internal/app"
	"mehndi-service/internal/config"
	"mehndi-service/internal/db"
	"mehndi-service/internal/domain/catalog"
	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/jwt"
	"mehndi-service/internal/repository/postgres"
	authUsecase "mehndi-service/internal/service/auth"
	catalogUsecase "mehndi-service/internal/service/catalog"
	pageUsecase "mehndi-service/internal/service/page"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type options struct {
	username string
	email    string
	password string
	content  bool
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	opts := options{}
	flag.StringVar(&opts.username, "username", cfg.SuperAdminUsername, "super admin username")
	flag.StringVar(&opts.email, "email", cfg.SuperAdminEmail, "super admin email")
	flag.StringVar(&opts.password, "password", cfg.SuperAdminPassword, "super admin password (min 8 characters)")
	flag.BoolVar(&opts.content, "content", false, "also seed the default services and pages")
	flag.Parse()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("seed failed", zap.Error(err))
		cancel()
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("seed completed")
}

func run(ctx context.Context, cfg *config.AppConfig, opts options, logger *zap.Logger) error {
	if opts.password == "" {
		return errors.New("super admin password is required (SUPER_ADMIN_PASSWORD or -password)")
	}

	pool, err := db.ConnectDB(ctx, db.PostgresConfig{URL: cfg.DatabaseURL, MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("migrations applied")

	jwtManager, err := jwt.Build(cfg.JWT())
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	authService := authUsecase.NewAuthService(postgres.NewAdminRepository(pool), jwtManager, nil, logger)
	if _, err := authService.EnsureSuperAdmin(ctx, opts.username, opts.email, opts.password); err != nil {
		return err
	}

	if !opts.content {
		return nil
	}

	catalogService := catalogUsecase.NewCatalogService(postgres.NewServiceRepository(pool), nil, logger)
	if err := seedServices(ctx, catalogService, logger); err != nil {
		return err
	}

	pageService := pageUsecase.NewPageService(postgres.NewPageRepository(pool), logger)
	return seedPages(ctx, pageService, logger)
}

// seedServices adds the default catalog only to an empty table.
func seedServices(ctx context.Context, svc *catalogUsecase.CatalogService, logger *zap.Logger) error {
	f := &catalog.ListFilters{Active: "all"}
	f.Limit = 1
	existing, err := svc.ListServices(ctx, f, true)
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		logger.Info("services already present, skipping", zap.Int64("count", existing.Total))
		return nil
	}

	for i := range defaultServices {
		if _, err := svc.CreateService(ctx, &defaultServices[i]); err != nil {
			return fmt.Errorf("failed to seed service %q: %w", defaultServices[i].Title, err)
		}
	}
	logger.Info("default services seeded", zap.Int("count", len(defaultServices)))
	return nil
}

// seedPages creates each default page that does not exist yet. Pages
// already edited by an admin are left alone.
func seedPages(ctx context.Context, svc *pageUsecase.PageService, logger *zap.Logger) error {
	for _, p := range defaultPages {
		_, err := svc.GetPage(ctx, p.slug, true)
		if err == nil {
			continue
		}
		if !errors.Is(err, xerrors.ErrNotFound) {
			return err
		}
		if _, _, err := svc.UpsertPage(ctx, p.slug, &p.req, ""); err != nil {
			return fmt.Errorf("failed to seed page %q: %w", p.slug, err)
		}
		logger.Info("default page seeded", zap.String("slug", p.slug))
	}
	return nil
}
