// internal/app/router.go
package app

import (
	"net/http"

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
	"mehndi-service/internal/pkg/ratelimit"
	"mehndi-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler      *authHandler.AuthHandler
	BookingHandler   *bookingHandler.BookingHandler
	ContactHandler   *contactHandler.ContactHandler
	CatalogHandler   *catalogHandler.CatalogHandler
	GalleryHandler   *galleryHandler.GalleryHandler
	BlogHandler      *blogHandler.BlogHandler
	PageHandler      *pageHandler.PageHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	UploadHandler    *uploadHandler.UploadHandler
	HealthHandler    *healthHandler.HealthHandler
	WSHandler        *wsHandler.WebSocketHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// RouterOptions carries the settings the route table needs from config.
type RouterOptions struct {
	IsDevelopment  bool
	AllowedOrigins []string
	Limiter        ratelimit.Limiter
	UploadDir      string
	UploadPath     string
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers, opts RouterOptions) {
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.RecoveryMiddleware(logger),
		middleware.Logger(logger),
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(opts.IsDevelopment)),
		middleware.Compress(),
		middleware.CORS(opts.AllowedOrigins),
		middleware.RateLimit(opts.Limiter, logger),
		middleware.NormalizeIDParam(),
	)

	// ==================== Static Uploads ====================
	if opts.UploadDir != "" && opts.UploadPath != "" {
		r.Static(opts.UploadPath, opts.UploadDir)
	}

	api := r.Group("/api")

	// ==================== Health Check ====================
	api.GET("/health", h.HealthHandler.Health)

	// ==================== Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.AdminOnly()...)
	{
		authProtected.GET("/me", h.AuthHandler.Me)
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.PUT("/change-password", h.AuthHandler.ChangePassword)
	}

	admins := api.Group("/auth/admins")
	admins.Use(h.AuthMiddleware.SuperAdminOnly()...)
	{
		admins.GET("", h.AuthHandler.ListAdmins)
		admins.POST("", h.AuthHandler.CreateAdmin)
		admins.PATCH("/:id/status", h.AuthHandler.SetAdminStatus)
	}

	admin := h.AuthMiddleware.AdminOnly()
	optional := h.AuthMiddleware.OptionalAuth()

	// ==================== Bookings ====================
	bookings := api.Group("/bookings")
	{
		bookings.POST("", h.BookingHandler.CreateBooking)

		adminBookings := bookings.Group("")
		adminBookings.Use(admin...)
		adminBookings.GET("", h.BookingHandler.ListBookings)
		adminBookings.GET("/stats", h.BookingHandler.GetStats)
		adminBookings.POST("/bulk", h.BookingHandler.Bulk)
		adminBookings.GET("/:id", h.BookingHandler.GetBooking)
		adminBookings.GET("/:id/invoice", h.BookingHandler.Invoice)
		adminBookings.PUT("/:id", h.BookingHandler.UpdateBooking)
		adminBookings.PATCH("/:id/status", h.BookingHandler.UpdateStatus)
		adminBookings.DELETE("/:id", h.BookingHandler.DeleteBooking)
	}

	// ==================== Contact ====================
	contacts := api.Group("/contact")
	{
		contacts.POST("", h.ContactHandler.CreateContact)

		adminContacts := contacts.Group("")
		adminContacts.Use(admin...)
		adminContacts.GET("", h.ContactHandler.ListContacts)
		adminContacts.GET("/stats", h.ContactHandler.GetStats)
		adminContacts.GET("/:id", h.ContactHandler.GetContact)
		adminContacts.PATCH("/:id/status", h.ContactHandler.UpdateStatus)
		adminContacts.DELETE("/:id", h.ContactHandler.DeleteContact)
	}

	// ==================== Services ====================
	services := api.Group("/services")
	{
		services.GET("", optional, h.CatalogHandler.ListServices)

		adminServices := services.Group("")
		adminServices.Use(admin...)
		adminServices.GET("/stats", h.CatalogHandler.GetStats)
		adminServices.POST("", h.CatalogHandler.CreateService)
		adminServices.POST("/bulk", h.CatalogHandler.Bulk)
		adminServices.PUT("/:id", h.CatalogHandler.UpdateService)
		adminServices.PATCH("/:id/toggle", h.CatalogHandler.ToggleService)
		adminServices.DELETE("/:id", h.CatalogHandler.DeleteService)

		services.GET("/:id", optional, h.CatalogHandler.GetService)
	}

	// ==================== Gallery ====================
	gallery := api.Group("/gallery")
	{
		gallery.GET("", optional, h.GalleryHandler.ListItems)
		gallery.GET("/categories", optional, h.GalleryHandler.Categories)

		adminGallery := gallery.Group("")
		adminGallery.Use(admin...)
		adminGallery.GET("/stats", h.GalleryHandler.GetStats)
		adminGallery.POST("", h.GalleryHandler.CreateItem)
		adminGallery.POST("/bulk", h.GalleryHandler.Bulk)
		adminGallery.PUT("/:id", h.GalleryHandler.UpdateItem)
		adminGallery.DELETE("/:id", h.GalleryHandler.DeleteItem)

		gallery.GET("/:id", optional, h.GalleryHandler.GetItem)
	}

	// ==================== Blogs ====================
	blogs := api.Group("/blogs")
	{
		blogs.GET("", optional, h.BlogHandler.ListPosts)
		blogs.POST("/:id/like", h.BlogHandler.LikePost)

		adminBlogs := blogs.Group("")
		adminBlogs.Use(admin...)
		adminBlogs.GET("/stats", h.BlogHandler.GetStats)
		adminBlogs.POST("", h.BlogHandler.CreatePost)
		adminBlogs.POST("/bulk", h.BlogHandler.Bulk)
		adminBlogs.PUT("/:id", h.BlogHandler.UpdatePost)
		adminBlogs.DELETE("/:id", h.BlogHandler.DeletePost)

		blogs.GET("/:id", optional, h.BlogHandler.GetPost)
	}

	// ==================== Pages ====================
	pages := api.Group("/pages")
	{
		adminPages := pages.Group("")
		adminPages.Use(admin...)
		adminPages.GET("", h.PageHandler.ListPages)
		adminPages.PUT("/:slug", h.PageHandler.UpsertPage)
		adminPages.PATCH("/:slug/status", h.PageHandler.UpdateStatus)
		adminPages.DELETE("/:slug", h.PageHandler.DeletePage)

		pages.GET("/:slug", optional, h.PageHandler.GetPage)
	}

	// ==================== Dashboard ====================
	dashboard := api.Group("/admin")
	dashboard.Use(admin...)
	{
		dashboard.GET("/dashboard", h.DashboardHandler.Overview)
		dashboard.GET("/live", h.WSHandler.HandleConnection)
		dashboard.GET("/live/stats", h.WSHandler.GetStats)
	}

	// ==================== Uploads ====================
	uploads := api.Group("/upload")
	uploads.Use(admin...)
	{
		uploads.POST("/:type", h.UploadHandler.Upload)
		uploads.POST("/:type/multiple", h.UploadHandler.UploadMultiple)
		uploads.DELETE("/:type/:filename", h.UploadHandler.Delete)
	}

	// ==================== Fallbacks ====================
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "method not allowed", nil)
	})
}
