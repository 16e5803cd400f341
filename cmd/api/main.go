package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grx10/hris-backend-go/internal/config"
	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/fixtures"
	appHTTP "github.com/grx10/hris-backend-go/internal/handler/http"
	"github.com/grx10/hris-backend-go/internal/pkg/cron"
	"github.com/grx10/hris-backend-go/internal/pkg/database"
	"github.com/grx10/hris-backend-go/internal/pkg/gemini"
	"github.com/grx10/hris-backend-go/internal/pkg/jwt"
	"github.com/grx10/hris-backend-go/internal/pkg/oauth"
	"github.com/grx10/hris-backend-go/internal/pkg/sse"
	"github.com/grx10/hris-backend-go/internal/repository/memory"
	"github.com/grx10/hris-backend-go/internal/repository/postgresql"
	"github.com/grx10/hris-backend-go/internal/repository/sqlite"
	assistantService "github.com/grx10/hris-backend-go/internal/service/assistant"
	serviceAuth "github.com/grx10/hris-backend-go/internal/service/auth"
	employeeService "github.com/grx10/hris-backend-go/internal/service/employee"
	payrollService "github.com/grx10/hris-backend-go/internal/service/payroll"
	regularizationService "github.com/grx10/hris-backend-go/internal/service/regularization"
)

const version = "v1.0.0"

type stores struct {
	employees       employee.EmployeeRepository
	regularizations regularization.RegularizationRepository
	close           func()
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	demo, err := fixtures.LoadDemo()
	if err != nil {
		return err
	}
	if cfg.Store.SeedDemoData {
		if err := fixtures.Seed(ctx, demo, st.employees, st.regularizations); err != nil {
			return err
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration.String())

	scheduler := cron.NewScheduler()
	scheduler.AddJob("prune-revoked-tokens", 15*time.Minute, func(ctx context.Context) error {
		if n := JWTService.PruneRevokedTokens(); n > 0 {
			slog.Debug("pruned revoked tokens", "count", n)
		}
		return nil
	})
	scheduler.Start(ctx)
	defer scheduler.Stop()

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var (
		classifier assistant.Classifier
		drafter    assistant.Drafter
	)
	if cfg.GenAI.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
		if err != nil {
			return err
		}
		classifier, drafter = client, client
	} else {
		slog.Warn("GEMINI_API_KEY not set, the HR assistant will answer as unavailable")
	}

	authService := serviceAuth.NewAuthService(st.employees, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(st.employees, JWTService)
	hub := sse.NewHub()
	regularizationSvc := regularizationService.NewRegularizationService(st.regularizations, st.employees).
		WithNotifier(appHTTP.NewDecisionPublisher(hub))
	payrollSvc := payrollService.NewPayrollService(st.employees)
	actionRouter := assistantService.NewRouter(regularizationSvc, payrollSvc)
	chatSvc := assistantService.NewChatService(actionRouter, classifier, drafter, st.employees, demo.Policy)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, Version: version, FrontendURL: cfg.App.FrontendURL},
		JWTService,
		appHTTP.Handlers{
			Auth:           appHTTP.NewAuthHandler(authService, GoogleService, cfg.App.FrontendURL),
			Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
			Regularization: appHTTP.NewRegularizationHandler(regularizationSvc),
			Payroll:        appHTTP.NewPayrollHandler(payrollSvc),
			Assistant:      appHTTP.NewAssistantHandler(chatSvc, actionRouter),
			Events:         appHTTP.NewEventsHandler(hub),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(hub.Close)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "store", cfg.Store.Type, "env", cfg.App.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Store.Type {
	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.DefaultPoolOptions)
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			employees:       postgresql.NewEmployeeRepository(db),
			regularizations: postgresql.NewRegularizationRepository(db),
			close:           db.Close,
		}, nil

	case config.StoreSQLite:
		db, err := database.NewSQLiteDB(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite database: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			employees:       sqlite.NewEmployeeRepository(db),
			regularizations: sqlite.NewRegularizationRepository(db),
			close:           func() { db.Close() },
		}, nil
	}

	return &stores{
		employees:       memory.NewEmployeeRepository(),
		regularizations: memory.NewRegularizationRepository(),
		close:           func() {},
	}, nil
}
