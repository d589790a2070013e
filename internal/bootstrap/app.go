package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/generator"
	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/services/health"
	"resumebuilder-backend/internal/sessions"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/server"
	"resumebuilder-backend/internal/shared/storage/db"
	"resumebuilder-backend/internal/users"
)

// App holds the explicitly constructed dependency graph. There is one
// App per process; every store and registry lives here and nowhere
// else.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Registry       *sessions.MemoryRegistry
	UsersRepo      users.Repo
	ResumesRepo    resumes.Repo
	Generator      generator.Generator
	UsersService   *users.Service
	ResumesService *resumes.Service
	AuthService    *auth.Service
	ResumesHandler *resumes.Handler
	AuthHandler    *auth.Handler
	GoogleAuth     *auth.GoogleService
	Health         *health.Service
}

// Build prepares the application: storage backend selection, session
// registry, generator, services, handlers and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:    cfg,
		DB:        sqlDB,
		Registry:  sessions.NewMemoryRegistry(cfg.SessionSweepInterval),
		Generator: gen,
	}

	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ResumesService = resumes.NewService(app.ResumesRepo, app.Generator)
	app.AuthService = auth.NewService(app.UsersService, app.Registry, cfg.SessionTTL)

	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.AuthHandler = auth.NewHandler(app.AuthService, cfg.CookieSecure)
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		app.GoogleAuth = auth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			app.AuthHandler,
		)
	}
	app.Health = health.NewService(app.DB)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		Health:         app.Health,
		Registry:       app.Registry,
		AuthHandler:    app.AuthHandler,
		GoogleAuth:     app.GoogleAuth,
		ResumesHandler: app.ResumesHandler,
		UsersService:   app.UsersService,
	})

	return app, nil
}

// Close releases the resources held by the App: the session sweeper
// and, when present, the database pool.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if a.Registry != nil {
		a.Registry.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildGenerator(cfg config.Config) (generator.Generator, error) {
	if cfg.Generator == "openai" {
		return generator.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.GeneratorModel)
	}
	return generator.MockGenerator{}, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
