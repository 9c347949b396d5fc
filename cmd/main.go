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
	"github.com/robfig/cron/v3"

	addStylistServiceHandler "github.com/salonworks/booking-service/internal/api/handlers/add_stylist_service"
	bookAppointmentHandler "github.com/salonworks/booking-service/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/salonworks/booking-service/internal/api/handlers/cancel_appointment"
	createServiceHandler "github.com/salonworks/booking-service/internal/api/handlers/create_service"
	deactivateClientHandler "github.com/salonworks/booking-service/internal/api/handlers/deactivate_client"
	getAvailableHoursHandler "github.com/salonworks/booking-service/internal/api/handlers/get_available_hours"
	listAddableServicesHandler "github.com/salonworks/booking-service/internal/api/handlers/list_addable_services"
	listClientAppointmentsHandler "github.com/salonworks/booking-service/internal/api/handlers/list_client_appointments"
	listClientsHandler "github.com/salonworks/booking-service/internal/api/handlers/list_clients"
	listServicesHandler "github.com/salonworks/booking-service/internal/api/handlers/list_services"
	listStylistAppointmentsHandler "github.com/salonworks/booking-service/internal/api/handlers/list_stylist_appointments"
	listStylistServicesHandler "github.com/salonworks/booking-service/internal/api/handlers/list_stylist_services"
	listStylistsHandler "github.com/salonworks/booking-service/internal/api/handlers/list_stylists"
	removeStylistServiceHandler "github.com/salonworks/booking-service/internal/api/handlers/remove_stylist_service"
	weeklyReportHandler "github.com/salonworks/booking-service/internal/api/handlers/weekly_report"
	"github.com/salonworks/booking-service/internal/api/middleware"
	"github.com/salonworks/booking-service/internal/config"
	appointmentRepo "github.com/salonworks/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/salonworks/booking-service/internal/infra/storage/catalog"
	userRepo "github.com/salonworks/booking-service/internal/infra/storage/user"
	appointmentsService "github.com/salonworks/booking-service/internal/service/appointments"
	catalogService "github.com/salonworks/booking-service/internal/service/catalog"
	bookAppointmentUC "github.com/salonworks/booking-service/internal/usecase/book_appointment"
	getAvailableHoursUC "github.com/salonworks/booking-service/internal/usecase/get_available_hours"
	weeklyReportUC "github.com/salonworks/booking-service/internal/usecase/weekly_report"
	"github.com/salonworks/booking-service/pkg/dbmetrics"
	"github.com/salonworks/booking-service/pkg/logger"
	"github.com/salonworks/booking-service/pkg/metrics"
	"github.com/salonworks/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
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

	// dbmetrics.DB tolerates a nil collector, so the same wiring serves
	// both the metrics-on and metrics-off configurations.
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	workDay := cfg.Schedule.WorkDay()
	log.Info("Working day: %02d:00 - %02d:00", workDay.StartHour, workDay.EndHour)

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, userRepository, txManager, log)
	catalogSvc := catalogService.NewService(catalogRepository, txManager, log)

	// Complete past appointments before accepting traffic, then keep
	// sweeping on the configured schedule.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := appointmentsSvc.SweepPastAppointments(startupCtx); err != nil {
		cancelStartup()
		log.Fatal("Startup sweep failed: %v", err)
	}
	cancelStartup()
	log.Info("Startup sweep finished")

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(cfg.Schedule.SweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := appointmentsSvc.SweepPastAppointments(ctx); err != nil {
			log.Error("Scheduled sweep failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule sweep (%q): %v", cfg.Schedule.SweepSpec, err)
	}
	sweeper.Start()
	log.Info("Sweep scheduled with spec %q", cfg.Schedule.SweepSpec)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		userRepository,
		txManager,
		workDay,
		log,
	)
	getAvailableHoursUseCase := getAvailableHoursUC.NewUseCase(appointmentRepository, workDay, log)
	weeklyReportUseCase := weeklyReportUC.NewUseCase(appointmentRepository, txManager, log)

	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAvailableHours := getAvailableHoursHandler.NewHandler(getAvailableHoursUseCase, log)
	weeklyReport := weeklyReportHandler.NewHandler(weeklyReportUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listClientAppointments := listClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listStylistAppointments := listStylistAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listClients := listClientsHandler.NewHandler(appointmentsSvc, log)
	listStylists := listStylistsHandler.NewHandler(appointmentsSvc, log)
	deactivateClient := deactivateClientHandler.NewHandler(appointmentsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStylistServices := listStylistServicesHandler.NewHandler(catalogSvc, log)
	listAddableServices := listAddableServicesHandler.NewHandler(catalogSvc, log)
	addStylistService := addStylistServiceHandler.NewHandler(catalogSvc, log)
	removeStylistService := removeStylistServiceHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists", listStylists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}/services", listStylistServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stylists/{stylistId}/available-hours", getAvailableHours.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/appointments", listClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/deactivate", deactivateClient.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stylists/{stylistId}/appointments", listStylistAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/addable-services", listAddableServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stylists/{stylistId}/weekly-report", weeklyReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stylists/{stylistId}/services", addStylistService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stylists/{stylistId}/services/{serviceName}", removeStylistService.Handle).Methods(http.MethodDelete)

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

	sweepCtx := sweeper.Stop()
	<-sweepCtx.Done()
	log.Info("Sweep scheduler stopped")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
