package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riandyrn/otelchi"

	"cinebook/internal/domain"
	"cinebook/internal/history"
	"cinebook/internal/identity"
	"cinebook/internal/ledger"
	"cinebook/internal/localstore"
	"cinebook/internal/payment"
	appvalidator "cinebook/internal/validator"
	"cinebook/internal/vcs"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	sessionManager *scs.SessionManager

	movieRepo   domain.MovieRepository
	bookingRepo domain.BookingRepository
	userRepo    domain.UserRepository
	historyRepo domain.HistoryRepository

	paymentProvider domain.PaymentProvider
}

type config struct {
	port               int
	env                string
	dataDir            string
	fixtureSeed        int64
	paymentDelay       time.Duration
	sessionIdleTimeout time.Duration
	otelCollectorUrl   string
}

func Run() error {
	// A .env file is optional, flags still win over it.
	godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.dataDir, "data-dir", envString("CINEBOOK_DATA_DIR", "data"), "Directory for locally persisted state")
	flag.Int64Var(&cfg.fixtureSeed, "fixture-seed", 0, "Seed for fixture seat availability (0 = random)")
	flag.DurationVar(&cfg.paymentDelay, "payment-delay", 2*time.Second, "Simulated payment processing latency")
	flag.DurationVar(&cfg.sessionIdleTimeout, "session-idle-timeout", 20*time.Minute, "Session idle timeout")
	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector URL (empty disables telemetry)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store, err := localstore.New(cfg.dataDir)
	if err != nil {
		return err
	}

	userRepo, err := identity.NewRegistry(store)
	if err != nil {
		return err
	}

	historyRepo, err := history.NewRecorder(store)
	if err != nil {
		return err
	}

	// Movies and bookings are deliberately not persisted: the ledger reseeds
	// from fixtures on every start.
	bookingLedger := ledger.New(ledger.FixtureMovies(cfg.fixtureSeed))

	app := &Application{
		config:          cfg,
		logger:          logger,
		validator:       appvalidator.NewValidator(),
		sessionManager:  newSessionManager(cfg),
		movieRepo:       bookingLedger,
		bookingRepo:     bookingLedger,
		userRepo:        userRepo,
		historyRepo:     historyRepo,
		paymentProvider: payment.NewSimulatedProvider(cfg.paymentDelay),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func newSessionManager(cfg config) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.IdleTimeout = cfg.sessionIdleTimeout
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinebook-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.GetMovies)
	r.Route("/movies/{movieId}", func(r chi.Router) {
		r.Get("/", app.GetMovieById)

		r.Route("/showtimes/{showtimeId}", func(r chi.Router) {
			r.Get("/seats", app.GetSeatMapByShowtime)
			r.Get("/selection", app.GetSelection)
			r.Post("/selection", app.ToggleSeatSelection)
		})
	})

	r.Get("/history", app.GetViewingHistory)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/me", app.GetCurrentUser)
		r.Get("/users/me/bookings", app.GetBookingsOfUser)
		r.Post("/bookings", app.CreateBooking)
	})

	return r
}
