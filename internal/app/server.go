// internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mehndi-service/internal/config"
	"mehndi-service/internal/db"
	authHandler "mehndi-service/internal/handlers/auth"
	blogHandler "mehndi-service/internal/handlers/blog"
	bookingHandler "mehndi-service/internal/handlers/booking"
	catalogHandler "mehndi-service/internal/handlers/catalog"
	contactHandler "mehndi-service/internal/handlers/contact"
	dashboardHandler "mehndi-service/internal/handlers/dashboard"
	galleryHandler "mehndi-service/internal/handlers/gallery"
	healthHandler "mehndi-service/internal/handlers/health"
	pageHandler "mehndi-service/internal/handlers/page"
	uploadHandler "mehndi-service/internal/handlers/upload"
	wsHandler "mehndi-service/internal/handlers/websocket"
	"mehndi-service/internal/middleware"
	"mehndi-service/internal/notify"
	"mehndi-service/internal/pkg/jwt"
	"mehndi-service/internal/pkg/ratelimit"
	"mehndi-service/internal/pkg/storage"
	"mehndi-service/internal/pkg/validation"
	"mehndi-service/internal/repository/postgres"
	authUsecase "mehndi-service/internal/service/auth"
	blogUsecase "mehndi-service/internal/service/blog"
	bookingUsecase "mehndi-service/internal/service/booking"
	catalogUsecase "mehndi-service/internal/service/catalog"
	contactUsecase "mehndi-service/internal/service/contact"
	dashboardUsecase "mehndi-service/internal/service/dashboard"
	galleryUsecase "mehndi-service/internal/service/gallery"
	pageUsecase "mehndi-service/internal/service/page"
	uploadUsecase "mehndi-service/internal/service/upload"
	"mehndi-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg        *config.AppConfig
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger

	pool        *pgxpool.Pool
	redisClient *redis.Client
	publisher   *notify.Publisher
	authService *authUsecase.AuthService
	stopHub     context.CancelFunc
}

// NewLogger returns the development logger in development and the JSON
// production logger everywhere else.
func NewLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewServer loads the configuration, connects the stores and wires every
// handler. The returned server is ready for Start.
func NewServer(ctx context.Context) (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, engine: gin.New(), logger: logger}
	if err := s.wire(ctx); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *Server) wire(ctx context.Context) error {
	cfg := s.cfg
	logger := s.logger

	// ----- Validation -----
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	validation.SetLocation(loc)
	if err := validation.RegisterWithGin(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, db.PostgresConfig{URL: cfg.DatabaseURL, MaxConns: cfg.DBMaxConns})
	if err != nil {
		return err
	}
	s.pool = pool
	logger.Info("connected to postgres")

	if err := db.Migrate(pool); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// ----- Redis (optional) -----
	if cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(db.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			PoolSize: 10,
		})
		if err != nil {
			return err
		}
		s.redisClient = client
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	} else {
		logger.Warn("REDIS_ADDR not set, using in-process rate limiting")
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.Build(cfg.JWT())
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Rate Limiters -----
	var limiter ratelimit.Limiter
	var loginLimiter authUsecase.LoginLimiter
	if rl := cfg.RateLimit(); rl.Enabled {
		if s.redisClient != nil {
			limiter = ratelimit.NewRedisBucket(s.redisClient, rl)
		} else {
			limiter = ratelimit.NewLocal(rl)
		}
	}
	if s.redisClient != nil {
		loginLimiter = ratelimit.NewLoginLimiter(s.redisClient)
	}

	// ----- Storage -----
	files := storage.NewFileStore(cfg.Storage())

	// ----- Live Feed Hub -----
	hub := websocket.NewHub(logger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	s.stopHub = stopHub
	go hub.Run(hubCtx)

	// ----- Notifications -----
	dispatcher := notify.NewDispatcher(s.notifier(hub), 0, logger)

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)
	blogRepo := postgres.NewBlogRepository(pool)
	pageRepo := postgres.NewPageRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(adminRepo, jwtManager, loginLimiter, logger)
	s.authService = authService

	bookingService := bookingUsecase.NewBookingService(bookingRepo, dispatcher, logger)
	contactService := contactUsecase.NewContactService(contactRepo, dispatcher, logger)
	catalogService := catalogUsecase.NewCatalogService(serviceRepo, files, logger)
	galleryService := galleryUsecase.NewGalleryService(galleryRepo, files, logger)
	blogService := blogUsecase.NewBlogService(blogRepo, files, logger)
	pageService := pageUsecase.NewPageService(pageRepo, logger)
	dashboardService := dashboardUsecase.NewDashboardService(dashboardRepo, bookingRepo, contactRepo, validation.Today, logger)
	uploadService := uploadUsecase.NewUploadService(files, logger)

	// ----- Initialize Super Admin -----
	if err := s.initializeSuperAdmin(ctx); err != nil {
		// Don't fail startup, just log the error
		logger.Error("failed to initialize super admin", zap.Error(err))
	}

	// ----- Health -----
	required := map[string]healthHandler.Check{"postgres": pool.Ping}
	optional := map[string]healthHandler.Check{}
	if s.redisClient != nil {
		client := s.redisClient
		optional["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:      authHandler.NewAuthHandler(authService, logger),
		BookingHandler:   bookingHandler.NewBookingHandler(bookingService),
		ContactHandler:   contactHandler.NewContactHandler(contactService),
		CatalogHandler:   catalogHandler.NewCatalogHandler(catalogService),
		GalleryHandler:   galleryHandler.NewGalleryHandler(galleryService),
		BlogHandler:      blogHandler.NewBlogHandler(blogService),
		PageHandler:      pageHandler.NewPageHandler(pageService),
		DashboardHandler: dashboardHandler.NewDashboardHandler(dashboardService),
		UploadHandler:    uploadHandler.NewUploadHandler(uploadService, files.MaxBytes()),
		HealthHandler:    healthHandler.NewHealthHandler(required, optional, logger),
		WSHandler:        wsHandler.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins, logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(authService),
	}

	// ----- Router -----
	SetupRouter(s.engine, logger, handlers, RouterOptions{
		IsDevelopment:  cfg.IsDevelopment(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Limiter:        limiter,
		UploadDir:      files.Root(),
		UploadPath:     files.PublicPath(),
	})

	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// notifier combines the live feed with every configured notification
// channel.
func (s *Server) notifier(hub *websocket.Hub) notify.Notifier {
	fanout := notify.Fanout{hub}

	if s.cfg.SMTPEnabled() {
		fanout = append(fanout, notify.NewMailer(notify.MailConfig{
			Host:     s.cfg.SMTPHost,
			Port:     s.cfg.SMTPPort,
			Username: s.cfg.SMTPUser,
			Password: s.cfg.SMTPPass,
			From:     s.cfg.SMTPFrom,
			FromName: s.cfg.SMTPFromName,
			Secure:   s.cfg.SMTPSecure,
			To:       s.cfg.NotifyEmail,
		}))
		s.logger.Info("email notifications enabled", zap.String("to", s.cfg.NotifyEmail))
	}

	if s.cfg.RabbitMQURL != "" {
		s.publisher = notify.NewPublisher(s.cfg.RabbitMQURL, s.logger)
		fanout = append(fanout, s.publisher)
		s.logger.Info("broker notifications enabled")
	}

	return fanout
}

// initializeSuperAdmin creates the super admin if none exists yet.
func (s *Server) initializeSuperAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if s.cfg.SuperAdminPassword == "" {
		s.logger.Warn("SUPER_ADMIN_PASSWORD not set, skipping super admin bootstrap")
		return nil
	}
	if _, err := s.authService.EnsureSuperAdmin(ctx, s.cfg.SuperAdminUsername, s.cfg.SuperAdminEmail, s.cfg.SuperAdminPassword); err != nil {
		return fmt.Errorf("failed to ensure super admin exists: %w", err)
	}
	return nil
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr), zap.String("env", s.cfg.Env))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then releases the stores.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	s.close()
	_ = s.logger.Sync()
	return err
}

func (s *Server) close() {
	if s.stopHub != nil {
		s.stopHub()
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Warn("failed to close broker connection", zap.Error(err))
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
