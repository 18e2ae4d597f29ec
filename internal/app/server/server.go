package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"

	"rosterd/internal/domain/export"
	"rosterd/internal/domain/holidays"
	"rosterd/internal/domain/pay"
	"rosterd/internal/domain/roster"
	"rosterd/internal/domain/settings"
	"rosterd/internal/domain/staff"
	"rosterd/internal/platform/config"
	"rosterd/internal/platform/db"
	"rosterd/internal/platform/metrics"
	"rosterd/internal/transport/http/api"
	exporthandler "rosterd/internal/transport/http/handlers/export"
	holidayhandler "rosterd/internal/transport/http/handlers/holidays"
	rosterhandler "rosterd/internal/transport/http/handlers/roster"
	settingshandler "rosterd/internal/transport/http/handlers/settings"
	staffhandler "rosterd/internal/transport/http/handlers/staff"
	"rosterd/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Money fields serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true

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
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := metrics.New()
	calendar := holidays.NewCalendar()
	calculator := pay.NewCalculator(calendar, cfg.HolidayLocation)

	staffStore := staff.NewStore(pool)
	settingsStore := settings.NewStore(pool)
	rosterStore := roster.NewStore(pool)
	rosterService := roster.NewService(rosterStore, settingsStore, calculator, calendar, collector)
	exportService := export.NewService(rosterService, staffStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
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

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		staffhandler.NewHandler(staffStore).RegisterRoutes(r)
		rosterhandler.NewHandler(rosterService).RegisterRoutes(r)
		settingshandler.NewHandler(settingsStore).RegisterRoutes(r)
		holidayhandler.NewHandler(calendar, cfg.HolidayLocation).RegisterRoutes(r)
		exporthandler.NewHandler(exportService).RegisterRoutes(r)
	})

	log.Printf("rosterd listening on %s (env=%s, payMode=%s)", cfg.Addr, cfg.Environment, cfg.PayMode)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
