package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"devfinder/api/handler"
	apiMiddleware "devfinder/api/middleware"
	"devfinder/api/routes"
	"devfinder/config"
	"devfinder/internal/repository"
	"devfinder/internal/service"
	"devfinder/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}

	validate := validator.New()

	jwtManager := utils.JWTManager{
		Secret:          []byte(cfg.JWTSecret),
		SessionTokenTTL: cfg.SessionTokenTTL,
	}
	sessionIssuer := service.JWTSessionIssuer{Manager: &jwtManager}

	userRepo := repository.NewUserRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	emailSender := service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom)

	imageStore, err := service.NewS3ImageStore(context.Background(), service.S3ImageStoreConfig{
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		BaseEndpoint:  cfg.S3BaseEndpoint,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.WithError(err).Fatal("object storage setup failed")
	}

	authService := service.NewAuthService(
		userRepo,
		emailSender,
		service.BcryptPasswordHasher{Cost: 12},
		sessionIssuer,
		service.RealClock{},
		service.AuthConfig{
			SessionTokenTTL: cfg.SessionTokenTTL,
			TwoStepsCodeTTL: cfg.TwoStepsCodeTTL,
		},
		logger,
	)
	jobService := service.NewJobService(opportunityRepo, userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo, imageStore, service.RealClock{})

	userHandler := handler.NewUserHandler(authService, validate, logger)
	jobHandler := handler.NewJobHandler(jobService, validate, logger)
	projectHandler := handler.NewProjectHandler(projectService, validate, logger)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Users: userRepo}
	router := routes.NewRouter(app, userHandler, jobHandler, projectHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
