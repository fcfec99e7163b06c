package v1

import (
	"github.com/gin-gonic/gin"

	"godown/internal/domain/auth"
	"godown/internal/domain/catalogs/ledger"
	"godown/internal/domain/catalogs/party"
	"godown/internal/domain/catalogs/product"
	"godown/internal/domain/catalogs/warehouse"
	"godown/internal/domain/documents/invoice"
	"godown/internal/domain/documents/order"
	"godown/internal/infrastructure/http/v1/handlers"
	"godown/internal/infrastructure/http/v1/middleware"
	"godown/internal/infrastructure/storage/postgres"
	"godown/internal/infrastructure/storage/postgres/catalog_repo"
	"godown/internal/infrastructure/storage/postgres/document_repo"
	"godown/pkg/logger"
	"godown/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager coordinates transactions for all repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// Numerator for document number generation
	Numerator numerator.Generator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		// Protected endpoints
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCatalogRoutes registers catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	// --- PRODUCTS ---
	{
		repo := catalog_repo.NewProductRepo(cfg.TxManager)
		service := product.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewProductHandler(baseHandler, service)

		group := catalogs.Group("/products")
		group.GET("/by-sku/:sku", handler.FindBySKU)
		group.GET("/by-barcode/:barcode", handler.FindByBarcode)
		RegisterCatalogRoutes(group, handler)
	}

	// --- CHARGE LEDGERS ---
	{
		repo := catalog_repo.NewLedgerRepo(cfg.TxManager)
		service := ledger.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewLedgerHandler(baseHandler, service)
		RegisterCatalogRoutes(catalogs.Group("/ledgers"), handler)
	}

	// --- PARTIES ---
	{
		repo := catalog_repo.NewPartyRepo(cfg.TxManager)
		service := party.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewPartyHandler(baseHandler, service)

		group := catalogs.Group("/parties")
		group.GET("/by-gstin/:gstin", handler.FindByGSTIN)
		RegisterCatalogRoutes(group, handler)
	}

	// --- WAREHOUSES ---
	{
		repo := catalog_repo.NewWarehouseRepo(cfg.TxManager)
		service := warehouse.NewService(repo, cfg.TxManager, cfg.Numerator)
		handler := handlers.NewWarehouseHandler(baseHandler, service)

		group := catalogs.Group("/warehouses")
		group.GET("/default", handler.GetDefault)
		RegisterCatalogRoutes(group, handler)
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// Shared tax sources for invoice total computation
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	ledgerRepo := catalog_repo.NewLedgerRepo(cfg.TxManager)

	// --- SALES ORDER ---
	orderService := order.NewService(document_repo.NewOrderRepo(cfg.TxManager), cfg.Numerator, cfg.TxManager)
	{
		handler := handlers.NewOrderHandler(baseHandler, orderService)

		group := docsGroup.Group("/sales-order")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/cancel", handler.Cancel)
	}

	// --- SALES INVOICE ---
	{
		repo := document_repo.NewInvoiceRepo(cfg.TxManager)
		service := invoice.NewService(repo, productRepo, ledgerRepo, orderService, cfg.Numerator, cfg.TxManager)
		handler := handlers.NewInvoiceHandler(baseHandler, service)

		group := docsGroup.Group("/sales-invoice")
		group.POST("/preview-totals", handler.PreviewTotals)
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/post", handler.Post)
		group.POST("/:id/unpost", handler.Unpost)
	}
}
