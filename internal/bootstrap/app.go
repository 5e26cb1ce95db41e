package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"peso-backend/internal/applications"
	googleauth "peso-backend/internal/auth"
	"peso-backend/internal/compliance"
	"peso-backend/internal/documents"
	"peso-backend/internal/jobs"
	"peso-backend/internal/locations"
	"peso-backend/internal/ocr"
	"peso-backend/internal/resumes"
	"peso-backend/internal/shared/config"
	"peso-backend/internal/shared/server"
	"peso-backend/internal/shared/storage/db"
	"peso-backend/internal/shared/storage/object"
	localstore "peso-backend/internal/shared/storage/object/local"
	s3store "peso-backend/internal/shared/storage/object/s3"
	"peso-backend/internal/textextract"
	"peso-backend/internal/users"
)

// App holds the wired application dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Ref    *locations.Reference

	UsersService        *users.Service
	JobsService         *jobs.Service
	ResumesService      *resumes.Service
	DocumentsService    *documents.Service
	ApplicationsService *applications.Service
	ComplianceService   *compliance.Service
	GoogleAuth          *googleauth.GoogleService
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

	ref, err := locations.Load()
	if err != nil {
		return nil, fmt.Errorf("load location reference: %w", err)
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Ref:    ref,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		UsersHandler:        users.NewHandler(app.UsersService),
		GoogleAuth:          app.GoogleAuth,
		LocationsHandler:    locations.NewHandler(app.Ref),
		JobsHandler:         jobs.NewHandler(app.JobsService),
		ResumesHandler:      resumes.NewHandler(app.ResumesService),
		DocumentsHandler:    documents.NewHandler(app.DocumentsService),
		ApplicationsHandler: applications.NewHandler(app.ApplicationsService),
		ComplianceHandler:   compliance.NewHandler(app.ComplianceService),
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var (
		userRepo        users.Repo
		jobRepo         jobs.Repo
		resumeRepo      resumes.Repo
		docRepo         documents.DocumentsRepo
		applicationRepo applications.Repo
		complianceRepo  compliance.Repo
	)
	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		docRepo = &documents.PGRepo{DB: app.DB}
		applicationRepo = &applications.PGRepo{DB: app.DB}
		complianceRepo = &compliance.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		docRepo = documents.NewMemoryRepo()
		applicationRepo = applications.NewMemoryRepo()
		complianceRepo = compliance.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store:           app.Store,
		Repo:            docRepo,
		StorageProvider: app.Config.ObjectStoreType,
	}

	app.UsersService = users.NewService(userRepo)
	app.JobsService = jobs.NewService(jobRepo)
	app.DocumentsService = docSvc
	app.ResumesService = &resumes.Service{
		Extract: textextract.New(ocr.NewFitzEngine()),
		Docs:    docSvc,
		Repo:    resumeRepo,
		Store:   app.Store,
		Ref:     app.Ref,
	}
	app.ApplicationsService = applications.NewService(applicationRepo, jobRepo, resumeRepo)
	app.ComplianceService = compliance.NewService(complianceRepo, app.Store)

	if app.Config.GoogleClientID != "" && app.Config.GoogleClientSecret != "" {
		app.GoogleAuth = googleauth.NewGoogleService(
			app.Config.GoogleClientID,
			app.Config.GoogleClientSecret,
			app.Config.GoogleRedirectURL,
			app.Config.UIRedirectURL,
			app.UsersService,
		)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
