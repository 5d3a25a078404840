package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinichq/clinic-api/internal/config"
	appointmentHandler "github.com/clinichq/clinic-api/internal/handler/appointment"
	branchHandler "github.com/clinichq/clinic-api/internal/handler/branch"
	patientHandler "github.com/clinichq/clinic-api/internal/handler/patient"
	"github.com/clinichq/clinic-api/internal/repository/mongo"
	"github.com/clinichq/clinic-api/internal/router"
	appointmentService "github.com/clinichq/clinic-api/internal/service/appointment"
	branchService "github.com/clinichq/clinic-api/internal/service/branch"
	patientService "github.com/clinichq/clinic-api/internal/service/patient"

	"github.com/clinichq/clinic-api/internal/handler"
	"github.com/clinichq/clinic-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	ctx := context.Background()
	db, err := mongo.NewDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Client().Disconnect(ctx)

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Initialize repositories
	patientRepo := mongo.NewPatientRepository(db)
	appointmentRepo := mongo.NewAppointmentRepository(db)
	branchRepo := mongo.NewBranchRepository(db)

	// Initialize services
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, branchRepo)
	branchSvc := branchService.NewService(branchRepo)

	// Initialize handlers
	h := handler.NewHandler()
	patientH := patientHandler.NewHandler(patientSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	branchH := branchHandler.NewHandler(branchSvc)

	// Setup router
	r := router.NewRouter(cfg, patientH, appointmentH, branchH, h)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
