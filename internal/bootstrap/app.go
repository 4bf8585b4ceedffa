package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/account"
	googleauth "prom8eus-backend/internal/auth"
	"prom8eus-backend/internal/catalog"
	"prom8eus-backend/internal/feedback"
	"prom8eus-backend/internal/matching"
	"prom8eus-backend/internal/matchruns"
	"prom8eus-backend/internal/report"
	"prom8eus-backend/internal/shared/config"
	"prom8eus-backend/internal/shared/server"
	"prom8eus-backend/internal/shared/storage/db"
	"prom8eus-backend/internal/shared/storage/object"
	localstore "prom8eus-backend/internal/shared/storage/object/local"
	s3store "prom8eus-backend/internal/shared/storage/object/s3"
	"prom8eus-backend/internal/taskdocs"
	"prom8eus-backend/internal/usage"
	"prom8eus-backend/internal/users"
)

// App holds the shared dependencies wired by Build.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Engine *matching.Engine

	CatalogRepo  catalog.Repo
	MatchRepo    matchruns.Repo
	DocumentRepo taskdocs.Repo
	FeedbackRepo feedback.Repo
	UsersRepo    users.Repo

	CatalogService  *catalog.Service
	MatchService    *matchruns.Service
	DocumentService *taskdocs.Service
	FeedbackService *feedback.Service
	UsageService    *usage.Service
	AccountService  *account.Service
	UsersService    *users.Service

	CatalogHandler  *catalog.Handler
	MatchHandler    *matchruns.Handler
	ReportHandler   *report.Handler
	DocumentHandler *taskdocs.Handler
	FeedbackHandler *feedback.Handler
	UsageHandler    *usage.Handler
	AccountHandler  *account.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AccountHandler:  app.AccountHandler,
		CatalogHandler:  app.CatalogHandler,
		MatchHandler:    app.MatchHandler,
		ReportHandler:   app.ReportHandler,
		DocumentHandler: app.DocumentHandler,
		FeedbackHandler: app.FeedbackHandler,
		UsageHandler:    app.UsageHandler,
		UserHandler:     app.UsersHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildEngine(cfg config.Config) (*matching.Engine, error) {
	engineCfg := matching.DefaultConfig()
	if cfg.MatchMinScore >= 0 {
		engineCfg.MinMatchScore = cfg.MatchMinScore
	}
	return matching.NewEngine(engineCfg)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var catalogRepo catalog.Repo
	var matchRepo matchruns.Repo
	var docRepo taskdocs.Repo
	var fbRepo feedback.Repo
	var userRepo users.Repo

	if app.DB != nil {
		catalogRepo = &catalog.PGRepo{DB: app.DB}
		matchRepo = &matchruns.PGRepo{DB: app.DB}
		docRepo = &taskdocs.PGRepo{DB: app.DB}
		fbRepo = &feedback.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		catalogRepo = catalog.NewMemoryRepo()
		matchRepo = matchruns.NewMemoryRepo()
		docRepo = taskdocs.NewMemoryRepo()
		fbRepo = feedback.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var usageSvc *usage.Service
	if app.DB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		usageSvc = usage.NewService()
	}

	catalogSvc := catalog.NewService(catalogRepo)
	matchSvc, err := matchruns.NewService(matchRepo, catalogSvc, app.Engine, usageSvc, app.Config.MatchCacheSize)
	if err != nil {
		return err
	}
	docSvc := &taskdocs.Service{
		Store:           app.Store,
		Repo:            docRepo,
		StorageProvider: app.Config.ObjectStoreType,
	}
	fbSvc := &feedback.Service{Repo: fbRepo, Catalog: catalogSvc}
	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)
	accountSvc := account.NewService(matchRepo, docRepo, fbRepo, usageSvc, userRepo)

	app.CatalogRepo = catalogRepo
	app.MatchRepo = matchRepo
	app.DocumentRepo = docRepo
	app.FeedbackRepo = fbRepo
	app.UsersRepo = userRepo
	app.CatalogService = catalogSvc
	app.MatchService = matchSvc
	app.DocumentService = docSvc
	app.FeedbackService = fbSvc
	app.UsageService = usageSvc
	app.AccountService = accountSvc
	app.UsersService = userSvc
	app.CatalogHandler = catalog.NewHandler(catalogSvc)
	app.MatchHandler = matchruns.NewHandler(matchSvc)
	app.ReportHandler = report.NewHandler(matchSvc)
	app.DocumentHandler = taskdocs.NewHandler(docSvc)
	app.FeedbackHandler = feedback.NewHandler(fbSvc)
	app.UsageHandler = usage.NewHandler(usageSvc)
	app.AccountHandler = account.NewHandler(accountSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}
