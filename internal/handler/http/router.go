package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pontohub/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontohub/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	corsOrigin string,
	authHandler AuthHandler,
	userHandler UserHandler,
	timesheetHandler TimesheetHandler,
	hourBankHandler HourBankHandler,
	reportHandler ReportHandler,
	justificationHandler JustificationHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		// Public: the login screen shows a department selector.
		r.Get("/departments", masterHandler.ListDepartments)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Post("/password-reset", authHandler.RequestPasswordReset)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Post("/change-password", authHandler.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/password-reset", authHandler.ListPasswordResets)
					r.Post("/password-reset/{id}", authHandler.ResolvePasswordReset)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", userHandler.List)
					r.Post("/", userHandler.Create)
					r.Get("/{userID}", userHandler.Get)
					r.Put("/{userID}", userHandler.Update)
					r.Delete("/{userID}", userHandler.Delete)
				})
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Post("/punch", timesheetHandler.Punch)
				r.Get("/today", timesheetHandler.Today)
				r.Get("/records", timesheetHandler.ListMine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/users/{userID}/records", timesheetHandler.ListForUser)
					r.Put("/records/{recordID}", timesheetHandler.Adjust)
				})
			})

			r.Route("/hour-bank", func(r chi.Router) {
				r.Get("/me", hourBankHandler.Mine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/users/{userID}", hourBankHandler.ForUser)
					r.Get("/users/{userID}/{month}", hourBankHandler.ForUserMonth)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/users/{userID}/recalculate", hourBankHandler.Recalculate)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/me/{month}", reportHandler.Mine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/users/{userID}/{month}", reportHandler.ForUser)
					r.Get("/day/{date}", reportHandler.Day)
				})
			})

			r.Route("/justifications", func(r chi.Router) {
				r.Post("/", justificationHandler.Create)
				r.Get("/me", justificationHandler.Mine)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/pending", justificationHandler.Pending)
					r.Post("/{id}/review", justificationHandler.Review)
				})
			})

			// Master data, admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/departments", func(r chi.Router) {
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})

				r.Route("/functions", func(r chi.Router) {
					r.Get("/", masterHandler.ListFunctions)
					r.Post("/", masterHandler.CreateFunction)
					r.Put("/{id}", masterHandler.UpdateFunction)
					r.Delete("/{id}", masterHandler.DeleteFunction)
				})

				r.Route("/employment-types", func(r chi.Router) {
					r.Get("/", masterHandler.ListEmploymentTypes)
					r.Post("/", masterHandler.CreateEmploymentType)
					r.Put("/{id}", masterHandler.UpdateEmploymentType)
					r.Delete("/{id}", masterHandler.DeleteEmploymentType)
				})
			})
		})
	})

	return r
}
