package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	appEnv string,
	frontendURL string,
	authService auth.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	attendanceHandler AttendanceHandler,
	settlementHandler SettlementHandler,
	faqHandler FAQHandler,
	complianceHandler ComplianceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/refresh", authHandler.Refresh)
			r.Get("/me", authHandler.Me)
		})

		// Requires a live session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionRequired(authService))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/users", authHandler.Users)
			})

			r.Route("/employees", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Get("/salary", payrollHandler.GetPayslip)
					r.Get("/leave-balances", leaveHandler.ListBalances)
					r.Get("/leave-requests", leaveHandler.ListRequests)
					r.Get("/attendance", attendanceHandler.ListRecords)
					r.Get("/attendance/summary", attendanceHandler.GetSummary)
				})
			})

			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", faqHandler.List)
				r.Get("/categories", faqHandler.Categories)
			})

			r.Route("/compliance", func(r chi.Router) {
				r.Get("/rules", complianceHandler.ListRules)
				r.Get("/tax-slab", complianceHandler.GetTaxSlab)
			})

			// Admin only
			r.Route("/settlements", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", settlementHandler.List)
				r.Post("/calculate", settlementHandler.Calculate)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", settlementHandler.GetByID)
					r.Post("/approve", settlementHandler.Approve)
					r.Post("/pay", settlementHandler.Pay)
					r.Post("/cancel", settlementHandler.Cancel)
				})
			})
		})
	})
	return r
}
