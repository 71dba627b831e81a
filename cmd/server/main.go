package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "relief-backoffice/internal/api/http"
	"relief-backoffice/internal/config"
	"relief-backoffice/internal/logger"
	"relief-backoffice/internal/repository/postgres"
	"relief-backoffice/internal/security"
	"relief-backoffice/internal/service"

	"github.com/gorilla/csrf"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Relief Back Office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "environment", cfg.Environment)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	userSvc := service.NewUserService(store.UserRepository)
	donorSvc := service.NewDonorService(store.DonorRepository)
	donationSvc := service.NewDonationService(store.DonationRepository)
	projectSvc := service.NewProjectService(store.ProjectRepository)
	assignmentSvc := service.NewAssignmentService(store.AssignmentRepository)
	incidentSvc := service.NewIncidentService(store.IncidentRepository)
	adminSvc := service.NewAdminService(store.IncidentRepository)

	// Initialize HTTP layer
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret)
	auth := httpapi.NewAuthMiddleware(tokenManager, cfg.Auth.CookieName, cfg.Auth.LoginURL)
	flash := httpapi.NewFlashStore(cfg.Auth.SessionSecret)

	renderer, err := httpapi.NewTemplateRenderer()
	if err != nil {
		logger.Error("Failed to load templates", "error", err)
		log.Fatalf("Failed to load templates: %v", err)
	}
	errPages := httpapi.NewErrorPages(renderer, cfg.IsDevelopment())

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Users:       userSvc,
		Donors:      donorSvc,
		Donations:   donationSvc,
		Projects:    projectSvc,
		Assignments: assignmentSvc,
		Incidents:   incidentSvc,
		Admin:       adminSvc,
		Auth:        auth,
		Flash:       flash,
		Renderer:    renderer,
		Errors:      errPages,
	})

	protect := csrf.Protect(
		[]byte(cfg.Auth.CSRFSecret),
		csrf.Secure(!cfg.IsDevelopment()),
		csrf.Path("/"),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), protect(router)); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
