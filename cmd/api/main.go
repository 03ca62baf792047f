package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/config"
	appointmentHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/appointment"
	appointmentTypeHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/appointmenttype"
	attachmentHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/attachment"
	authHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/auth"
	clientHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/client"
	financialHandler "github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler/financial"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/middleware"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository/memory"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/router"
	appointmentService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/appointment"
	appointmentTypeService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/appointmenttype"
	attachmentService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/attachment"
	authService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/auth"
	clientService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/client"
	financialService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/financial"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/auth"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/logger"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/metrics"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// One store per entity kind, injected into the repositories.
	clientStore := memory.NewStore[*model.Client]()
	appointmentStore := memory.NewStore[*model.Appointment]()
	financialStore := memory.NewStore[*model.FinancialRecord]()
	attachmentStore := memory.NewStore[*model.Attachment]()
	appointmentTypeStore := memory.NewStore[*model.AppointmentType]()

	clientRepo := memory.NewClientRepository(clientStore)
	appointmentRepo := memory.NewAppointmentRepository(appointmentStore)
	financialRepo := memory.NewFinancialRepository(financialStore)
	attachmentRepo := memory.NewAttachmentRepository(attachmentStore)
	appointmentTypeRepo := memory.NewAppointmentTypeRepository(appointmentTypeStore)

	validate := validator.New()
	jwtExpiry := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, jwtExpiry)

	authSvc := authService.NewService(jwtSvc, validate, jwtExpiry)
	clientSvc := clientService.NewService(clientRepo, validate)
	appointmentSvc := appointmentService.NewService(appointmentRepo, clientRepo, validate)
	financialSvc := financialService.NewService(financialRepo, validate)
	attachmentSvc := attachmentService.NewService(attachmentRepo, clientRepo, validate)
	appointmentTypeSvc := appointmentTypeService.NewService(appointmentTypeRepo, validate)

	if cfg.Seed.Email != "" {
		if _, err := authSvc.Register(cfg.Seed.Name, cfg.Seed.Email, cfg.Seed.Password); err != nil {
			log.Fatal(err, "failed to seed account")
		}
		log.WithFields(map[string]interface{}{"email": cfg.Seed.Email}).Info("seeded account")
	}

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	routerCfg := router.Config{
		CORS:    corsConfig,
		Metrics: metrics.NewMetrics("fluxopro"),
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimitRPS = cfg.RateLimit.RequestsPerSecond
		routerCfg.RateLimitBurst = cfg.RateLimit.Burst
	}

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		routerCfg,
		clientHandler.NewHandler(clientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		financialHandler.NewHandler(financialSvc),
		attachmentHandler.NewHandler(attachmentSvc),
		appointmentTypeHandler.NewHandler(appointmentTypeSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.WithFields(map[string]interface{}{"port": cfg.Server.Port}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
