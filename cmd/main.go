package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/get_appointment"
	getDashboardStatsHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/get_dashboard_stats"
	getHistoryHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/get_history"
	listAppointmentsHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/list_appointments"
	updateAppointmentHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/update_appointment"
	updateStatusHandler "github.com/karimjl/DCB-AppointmentService/internal/api/handlers/update_status"
	"github.com/karimjl/DCB-AppointmentService/internal/api/middleware"
	"github.com/karimjl/DCB-AppointmentService/internal/config"
	appointmentRepo "github.com/karimjl/DCB-AppointmentService/internal/infra/storage/appointment"
	appointmentsService "github.com/karimjl/DCB-AppointmentService/internal/service/appointments"
	statsService "github.com/karimjl/DCB-AppointmentService/internal/service/stats"
	createAppointmentUC "github.com/karimjl/DCB-AppointmentService/internal/usecase/create_appointment"
	updateAppointmentUC "github.com/karimjl/DCB-AppointmentService/internal/usecase/update_appointment"
	updateStatusUC "github.com/karimjl/DCB-AppointmentService/internal/usecase/update_status"
	"github.com/karimjl/DCB-AppointmentService/pkg/dbmetrics"
	"github.com/karimjl/DCB-AppointmentService/pkg/logger"
	"github.com/karimjl/DCB-AppointmentService/pkg/metrics"
	"github.com/karimjl/DCB-AppointmentService/pkg/simpletxmanager"
	"github.com/karimjl/DCB-AppointmentService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DCB-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by the write usecases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		repository *appointmentRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(repository, log)
	statsSvc := statsService.NewService(repository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(repository, txMgr, log)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(repository, txMgr, log)
	updateStatusUseCase := updateStatusUC.NewUseCase(repository, log)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getHistory := getHistoryHandler.NewHandler(appointmentsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(statsSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// History is registered before the {appointmentId} routes so mux does
	// not capture "history" as an identifier.
	api.HandleFunc("/appointments/history", getHistory.Handle).Methods(http.MethodGet)

	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPut)

	api.HandleFunc("/stats/dashboard", getDashboardStats.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
