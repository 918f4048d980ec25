package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nsharma-dev/institute_admin/internal/config"
	"github.com/nsharma-dev/institute_admin/internal/db"
	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/httpserver"
	"github.com/nsharma-dev/institute_admin/internal/logging"
	"github.com/nsharma-dev/institute_admin/internal/mail"
	"github.com/nsharma-dev/institute_admin/internal/middleware"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/search"
	"github.com/nsharma-dev/institute_admin/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: gdb}
	validate := validator.New()

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers)
		defer producer.Close()
		publisher = producer
	}

	var courseIndex *search.CourseIndexer
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		courseIndex = &search.CourseIndexer{ES: esClient}
	}

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc: &service.AuthService{
				Repo:          gormRepo,
				Mailer:        mail.NewSMTPMailer(cfg),
				Events:        publisher,
				JWTSecret:     cfg.JWTSecret,
				RefreshSecret: cfg.RefreshSecret,
				AccessTTL:     cfg.AccessTTL,
				RefreshTTL:    cfg.RefreshTTL,
				FrontendURL:   cfg.FrontendURL,
				Validate:      validate,
			},
			Production: cfg.Production,
		},
		ProfileHandler: &httpserver.ProfileHTTP{
			Svc: &service.ProfileService{Repo: gormRepo, Validate: validate},
		},
		CourseHandler: &httpserver.CourseHTTP{
			Svc: &service.CourseService{Repo: gormRepo, Index: courseIndex, Validate: validate},
		},
		StudentHandler: &httpserver.StudentHTTP{
			Svc: &service.StudentService{Repo: gormRepo, Events: publisher, Validate: validate},
		},
		CertificateHandler: &httpserver.CertificateHTTP{
			Svc: &service.CertificateService{Repo: gormRepo, Events: publisher, Validate: validate},
		},
		CenterHandler: &httpserver.CenterHTTP{
			Svc: &service.CenterService{Repo: gormRepo, Events: publisher, Validate: validate},
		},
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
