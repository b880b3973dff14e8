package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"lbc/internal/domain/audit"
	"lbc/internal/domain/booking"
	"lbc/internal/domain/calendar"
	"lbc/internal/domain/employee"
	"lbc/internal/domain/reports"
	"lbc/internal/domain/vacation"
	"lbc/internal/platform/config"
	"lbc/internal/platform/db"
	"lbc/internal/platform/metrics"
	"lbc/internal/transport/http/api"
	audithandler "lbc/internal/transport/http/handlers/audit"
	bookinghandler "lbc/internal/transport/http/handlers/booking"
	calendarhandler "lbc/internal/transport/http/handlers/calendar"
	employeehandler "lbc/internal/transport/http/handlers/employee"
	reportshandler "lbc/internal/transport/http/handlers/reports"
	vacationhandler "lbc/internal/transport/http/handlers/vacation"
	"lbc/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	employeeService := employee.NewService(pool)
	bookingService := booking.NewService(pool)
	vacationService := vacation.NewService(pool)
	auditService := audit.New(pool)
	reportsService := reports.NewService(employeeService, vacationService, cfg.ReportsDir)
	holidayCache := calendar.NewCache()

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Actor"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		employeeHandler := employeehandler.NewHandler(employeeService, auditService)
		employeeHandler.RegisterRoutes(r)

		bookingHandler := bookinghandler.NewHandler(bookingService, vacationService, auditService)
		bookingHandler.RegisterRoutes(r)

		vacationHandler := vacationhandler.NewHandler(vacationService, auditService)
		vacationHandler.RegisterRoutes(r)

		calendarHandler := calendarhandler.NewHandler(holidayCache)
		calendarHandler.RegisterRoutes(r)

		reportsHandler := reportshandler.NewHandler(reportsService, auditService)
		reportsHandler.RegisterRoutes(r)

		auditHandler := audithandler.NewHandler(auditService)
		auditHandler.RegisterRoutes(r)
	})

	log.Printf("LBC server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
