package router

import (
	"context"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/config"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/feed"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/handler"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/infra"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/middleware"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/service"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App bundles the wired engine with the pieces the entrypoint drives
// directly: view-models for the initial load, the worker pool, and the
// change-feed subscriber.
type App struct {
	Engine *gin.Engine
	Pool   *worker.Pool

	Inventory    service.InventoryService
	Categories   service.CategoryService
	Suppliers    service.SupplierService
	Orders       service.OrderService
	Users        service.UserService
	Transactions service.TransactionService

	subscriber *feed.Subscriber
	itemRepo   repository.ItemRepository
	dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns the assembled application.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.Domain))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	pub := feed.NewPublisher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewItemRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	inventorySvc := service.NewInventoryService(itemRepo, txRepo, pub, dispatcher)
	categorySvc := service.NewCategoryService(categoryRepo, pub)
	supplierSvc := service.NewSupplierService(supplierRepo, pub)
	orderSvc := service.NewOrderService(orderRepo, itemRepo, txRepo, pub)
	userSvc := service.NewUserService(profileRepo, pub)
	transactionSvc := service.NewTransactionService(txRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(inventorySvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	usersH := handler.NewUsersHandler(userSvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	reportsH := handler.NewReportsHandler(inventorySvc, transactionSvc, dispatcher)

	// ── Worker pool ──────────────────────────────────────────────────────────
	pool := worker.NewPool(rdb)
	pool.Register(worker.QueueAlerts, worker.NewAlertWorker(mailer, rdb))
	pool.Register(worker.QueueReports, worker.NewReportWorker(reportsH.BuildTable, cfg.ReportStoragePath, mailer))

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		items := v1.Group("/items", anyRole)
		{
			items.GET("", itemsH.List)
			items.GET("/low-stock", itemsH.LowStock)
			items.GET("/stats", itemsH.Stats)
			items.GET("/export", reportsH.ExportItems)
			items.POST("", itemsH.Create)
			items.PATCH("/:id", itemsH.Update)
			items.DELETE("/:id", itemsH.Delete)
		}

		categories := v1.Group("/categories", anyRole)
		{
			categories.GET("", categoriesH.List)
			categories.POST("", categoriesH.Create)
			categories.PATCH("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		suppliers := v1.Group("/suppliers", anyRole)
		{
			suppliers.GET("", suppliersH.List)
			suppliers.POST("", suppliersH.Create)
			suppliers.PATCH("/:id", suppliersH.Update)
			suppliers.DELETE("/:id", suppliersH.Delete)
		}

		orders := v1.Group("/orders", anyRole)
		{
			orders.GET("", ordersH.List)
			orders.GET("/stats", ordersH.Stats)
			orders.GET("/today", ordersH.Today)
			orders.GET("/:id/items", ordersH.Items)
			orders.POST("", ordersH.Create)
			orders.PATCH("/:id/status", ordersH.UpdateStatus)
			orders.DELETE("/:id", ordersH.Delete)
		}

		// User administration — admin only
		users := v1.Group("/users", adminOnly)
		{
			users.GET("", usersH.List)
			users.GET("/stats", usersH.Stats)
			users.POST("", usersH.Create)
			users.PATCH("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		transactions := v1.Group("/transactions", anyRole)
		{
			transactions.GET("", transactionsH.List)
			transactions.GET("/today-count", transactionsH.TodayCount)
		}

		reports := v1.Group("/reports", anyRole)
		{
			reports.GET("/:type/export", reportsH.Export)
			reports.POST("/:type/generate", reportsH.Generate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &App{
		Engine:       r,
		Pool:         pool,
		Inventory:    inventorySvc,
		Categories:   categorySvc,
		Suppliers:    supplierSvc,
		Orders:       orderSvc,
		Users:        userSvc,
		Transactions: transactionSvc,
		subscriber:   feed.NewSubscriber(rdb),
		itemRepo:     itemRepo,
		dispatcher:   dispatcher,
	}
}

// WatchChanges subscribes every view-model to its table's change channel so
// writes from other instances re-run the owning Load.
func (a *App) WatchChanges(ctx context.Context) {
	a.subscriber.Watch(ctx, "inventory_items", a.Inventory)
	a.subscriber.Watch(ctx, "categories", a.Categories)
	a.subscriber.Watch(ctx, "suppliers", a.Suppliers)
	a.subscriber.Watch(ctx, "orders", a.Orders)
	a.subscriber.Watch(ctx, "profiles", a.Users)
	a.subscriber.Watch(ctx, "inventory_transactions", a.Transactions)
}

// StartBackground launches the worker pool and the low-stock sweep.
func (a *App) StartBackground(ctx context.Context, workers int) {
	a.Pool.Start(ctx, workers)
	worker.StartLowStockCron(ctx, worker.LowStockCronConfig{
		ItemRepo:   a.itemRepo,
		Dispatcher: a.dispatcher,
	})
}
