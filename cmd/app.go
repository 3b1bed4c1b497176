// Package cmd wires configuration, storage, services and the HTTP
// server into a runnable application.
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dashboard/api"
	apiclient "dashboard/api/client"
	apigeneral "dashboard/api/general"
	"dashboard/api/health"
	apilogin "dashboard/api/login"
	apimanagement "dashboard/api/management"
	apisales "dashboard/api/sales"
	catalogapp "dashboard/application/catalog"
	customerapp "dashboard/application/customer"
	geographyapp "dashboard/application/geography"
	salesapp "dashboard/application/sales"
	transactionapp "dashboard/application/transaction"
	"dashboard/config"
	"dashboard/domain/customer"
	"dashboard/domain/product"
	"dashboard/domain/stats"
	"dashboard/domain/transaction"
	"dashboard/infrastructure/persistence/memory"
	"dashboard/infrastructure/persistence/mysql"
	"dashboard/pkg/geo"
	"dashboard/pkg/logger"

	"go.uber.org/zap"
)

// App Application
type App struct {
	config *config.Config
	router *api.Router
}

type repositories struct {
	customers    customer.Repository
	transactions transaction.Repository
	products     product.Repository
	stats        stats.Repository
	sqlDB        *sql.DB
}

// NewApp Create the application from configuration
func NewApp(cfg *config.Config) (*App, error) {
	if err := logger.Init(&cfg.Log, cfg.App.Env); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env))

	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	customerService := customerapp.NewService(repos.customers)
	transactionService := transactionapp.NewService(repos.transactions)
	geographyService := geographyapp.NewService(repos.customers, geo.ISO3166)
	catalogService := catalogapp.NewService(repos.products)
	salesService := salesapp.NewService(repos.stats, repos.transactions)

	healthController := health.NewController(cfg, repos.sqlDB)
	clientController := apiclient.NewController(customerService, transactionService, geographyService, catalogService)
	loginController := apilogin.NewController(customerService)
	generalController := apigeneral.NewController(customerService, salesService)
	salesController := apisales.NewController(salesService)
	managementController := apimanagement.NewController(customerService)

	router := api.NewRouter(cfg,
		healthController,
		clientController,
		loginController,
		generalController,
		salesController,
		managementController,
	)
	router.SetupRoutes()

	return &App{config: cfg, router: router}, nil
}

// buildRepositories Select the persistence layer by configuration.
func buildRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.Database.Type == "memory" {
		logger.Info("Using in-memory persistence layer")
		return &repositories{
			customers:    memory.NewCustomerRepository(),
			transactions: memory.NewTransactionRepository(),
			products:     memory.NewProductRepository(nil, nil),
			stats:        memory.NewStatsRepository(nil),
		}, nil
	}

	dbConfig := &mysql.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}

	db, err := dbConfig.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.IsDevelopment() {
		if err := mysql.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	logger.Info("Connected to MySQL",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database))

	return &repositories{
		customers:    mysql.NewCustomerRepository(db),
		transactions: mysql.NewTransactionRepository(db),
		products:     mysql.NewProductRepository(db),
		stats:        mysql.NewStatsRepository(db),
		sqlDB:        sqlDB,
	}, nil
}

// Run Start the HTTP server and block until shutdown
func (a *App) Run() error {
	defer func() {
		_ = logger.Sync()
	}()

	srv := &http.Server{
		Addr:         ":" + a.config.Server.Port,
		Handler:      a.router.GetEngine(),
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// GetEngine Get the Gin engine (used in tests)
func (a *App) GetEngine() http.Handler {
	return a.router.GetEngine()
}
