package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"shared-ledger/internal/config"
	"shared-ledger/internal/db"
	categorydomain "shared-ledger/internal/domain/category"
	groupdomain "shared-ledger/internal/domain/group"
	ledgerdomain "shared-ledger/internal/domain/ledger"
	userdomain "shared-ledger/internal/domain/user"
	categoryrepo "shared-ledger/internal/repository/gormdb/category"
	grouprepo "shared-ledger/internal/repository/gormdb/group"
	ledgerrepo "shared-ledger/internal/repository/gormdb/ledger"
	userrepo "shared-ledger/internal/repository/gormdb/user"
	"shared-ledger/internal/repository/inmemory"
	"shared-ledger/internal/transport/httpserver"
	"shared-ledger/internal/transport/httpserver/handler"
	"shared-ledger/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	var reg *prometheus.Registry
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	log.Info("app: initializing router")
	router, err := BuildHandler(cfg, dbConn, reg, log)
	if err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

// BuildHandler builds the services on top of dbConn and mounts their handlers.
func BuildHandler(cfg config.Config, dbConn *gorm.DB, reg *prometheus.Registry, log logger.Logger) (http.Handler, error) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewGorm(dbConn), userdomain.NewBcryptHasher())
	groups := groupdomain.NewService(
		grouprepo.NewGorm(dbConn),
		users,
		inmemory.NewGroupListCache(),
		groupdomain.Config{ListCacheTTL: cfg.Cache.GroupsTTL},
	)
	categories := categorydomain.NewService(
		categoryrepo.NewGorm(dbConn),
		inmemory.NewCategoriesCache(),
		categorydomain.Config{CacheTTL: cfg.Cache.CategoriesTTL},
	)
	ledger := ledgerdomain.NewService(ledgerrepo.NewGorm(dbConn), groups, users)

	handlers := handler.New(users, groups, categories, ledger, sqlDB, log)
	return httpserver.NewRouter(cfg, handlers, reg, log), nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return db.Close(a.db)
}
