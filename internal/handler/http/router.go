package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	frontendURL string,
	accountHandler AccountHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	directoryHandler DirectoryHandler,
	payrollHandler PayrollHandler,
	announcementHandler AnnouncementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worknest-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// Account plumbing
	r.Post("/signup", accountHandler.Signup)
	r.Post("/login", accountHandler.Login)

	// Attendance
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/", attendanceHandler.Record)
		r.Get("/", attendanceHandler.List)
		r.Get("/summary", attendanceHandler.Summary)
		r.Get("/monthly", attendanceHandler.Monthly)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", attendanceHandler.AdminRecords)
			r.Get("/stats", attendanceHandler.AdminStats)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", attendanceHandler.Get)
			r.Put("/", attendanceHandler.Replace)
			r.Delete("/", attendanceHandler.Delete)
		})
	})

	// Leave ledger
	r.Route("/api", func(r chi.Router) {
		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/", leaveHandler.FileRequest)
			r.Get("/", leaveHandler.ListAll)
			r.Get("/employee/{id}", leaveHandler.ListByEmployee)
			r.Put("/{id}", leaveHandler.SetStatus)
		})
		r.Get("/leave-balance/{employee_id}", leaveHandler.Balance)
	})

	// Directory lookups
	r.Get("/employees", directoryHandler.ListEmployees)
	r.Get("/employees/{id}", directoryHandler.GetEmployee)
	r.Get("/departments", directoryHandler.ListDepartments)
	r.Get("/departments/{id}", directoryHandler.GetDepartment)

	// Payroll
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/", payrollHandler.Create)
		r.Get("/", payrollHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", payrollHandler.Get)
			r.Put("/", payrollHandler.Update)
			r.Delete("/", payrollHandler.Delete)
		})
	})

	// Announcements
	r.Route("/announcements", func(r chi.Router) {
		r.Post("/", announcementHandler.Create)
		r.Get("/", announcementHandler.List)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", announcementHandler.Get)
			r.Put("/", announcementHandler.Update)
			r.Delete("/", announcementHandler.Delete)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"WorkNest API is running!"}`))
	})

	return r
}
