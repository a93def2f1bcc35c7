package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nomina-ops/nomina-backend-go/internal/handler/http/middleware"
	"github.com/nomina-ops/nomina-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	shiftHandler ShiftHandler,
	payrollHandler PayrollHandler,
	deductionHandler DeductionHandler,
	companyHandler CompanyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListShifts)

				// Editing shifts requires an operator or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.EditorOnly)
					r.Post("/", shiftHandler.SetShift)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.ComputeForPeriod)
				r.Get("/periods", payrollHandler.ListPeriods)
			})

			r.Route("/deductions/{company}/{employee}", func(r chi.Router) {
				r.Get("/", deductionHandler.Read)

				r.Group(func(r chi.Router) {
					r.Use(middleware.EditorOnly)
					r.Put("/", deductionHandler.RecordEdit)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", companyHandler.ListCompanies)

				r.Route("/{company}", func(r chi.Router) {
					r.Route("/insurance-rates", func(r chi.Router) {
						r.Get("/", companyHandler.GetRateOverride)

						// Rate configuration is admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Put("/", companyHandler.UpsertRateOverride)
						})
					})

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", companyHandler.ListProfiles)
						r.Get("/{employee}", companyHandler.GetProfile)

						r.Group(func(r chi.Router) {
							r.Use(middleware.EditorOnly)
							r.Put("/{employee}", companyHandler.UpsertProfile)
						})
					})
				})
			})
		})
	})
	return r
}
