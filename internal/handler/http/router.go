package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/handler/http/middleware"
	"github.com/grx10/hris-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	Version     string
	FrontendURL string
}

type Handlers struct {
	Auth           AuthHandler
	Employee       EmployeeHandler
	Regularization RegularizationHandler
	Payroll        PayrollHandler
	Assistant      AssistantHandler
	Events         EventsHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-grx10"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/me", h.Employee.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/{id}", h.Employee.GetEmployee)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Onboard)
					r.Post("/{id}/offboard", h.Employee.Offboard)
				})
			})

			r.Route("/regularizations", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionRegularizationCreate)).Post("/", h.Regularization.Submit)
				r.With(middleware.RequirePermission(user.PermissionRegularizationViewOwn)).Get("/my", h.Regularization.ListMine)
				r.Get("/approvals", h.Regularization.ListPendingApprovals)
				r.Get("/{id}", h.Regularization.Get)
				r.Post("/{id}/approve", h.Regularization.Approve)
				r.Post("/{id}/reject", h.Regularization.Reject)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPayrollViewOwn))
				r.Get("/payslip", h.Payroll.GetPayslip)
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Post("/chat", h.Assistant.Chat)
				r.Post("/actions", h.Assistant.Action)
				r.Post("/job-description", h.Assistant.JobDescription)
			})

			r.Get("/events", h.Events.Stream)
		})
	})
	return r
}
