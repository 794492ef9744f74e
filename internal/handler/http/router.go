package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/config"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/middleware"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/jwt"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Task         TaskHandler
	Diary        DiaryHandler
	Notification NotificationHandler
	Course       CourseHandler
	Master       MasterHandler
	Calendar     CalendarHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	// Locally stored uploads are served directly; an object store would
	// hand out its own URLs instead.
	if cfg.Storage.Type == "local" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Handle("/uploads/*", fs)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/verify-reset-code", h.Auth.VerifyResetCode)
			r.Post("/reset-password", h.Auth.ResetPassword)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.Me)
				r.Put("/me", h.User.UpdateProfile)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.User.List)
					r.Get("/{id}", h.User.Get)
					r.Patch("/status", h.User.SetStatus)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Get("/today", h.Attendance.Today)
				r.Get("/history", h.Attendance.History)
				r.Get("/overview", h.Attendance.Overview)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/sheet", h.Attendance.Sheet)
					r.Get("/by-date", h.Attendance.ByDate)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.MyLeaves)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/upcoming", h.Leave.Upcoming)
					r.Get("/history", h.Leave.Historical)
					r.Get("/active", h.Leave.ActiveOn)
					r.Patch("/status", h.Leave.UpdateStatus)
					r.Delete("/{id}", h.Leave.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/my", h.Task.MyTasks)
				r.Post("/submit", h.Task.Submit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Task.Create)
					r.Get("/today", h.Task.Today)
					r.Get("/open", h.Task.Open)
					r.Get("/completed", h.Task.Completed)
					r.Patch("/status", h.Task.UpdateStatus)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/diaries", func(r chi.Router) {
				r.Post("/", h.Diary.Submit)
				r.Get("/my", h.Diary.MyDiaries)
				r.Delete("/my/{id}", h.Diary.DeleteOwn)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Diary.ListAll)
					r.Patch("/status", h.Diary.UpdateStatus)
					r.Delete("/{id}", h.Diary.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Patch("/{id}/read", h.Notification.MarkRead)
				r.Delete("/", h.Notification.Clear)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/broadcast", h.Notification.Broadcast)
				})
			})

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", h.Course.List)
				r.Get("/{id}", h.Course.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Course.Create)
					r.Put("/{id}", h.Course.Update)
					r.Delete("/{id}", h.Course.Delete)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Master.ListTeams)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateTeam)
					r.Put("/{id}", h.Master.UpdateTeam)
					r.Delete("/{id}", h.Master.DeleteTeam)
				})
			})

			r.Route("/job-roles", func(r chi.Router) {
				r.Get("/", h.Master.ListJobRoles)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateJobRole)
					r.Put("/{id}", h.Master.UpdateJobRole)
					r.Delete("/{id}", h.Master.DeleteJobRole)
				})
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/events", h.Calendar.ListEvents)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/events", h.Calendar.CreateEvent)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/dashboard/stats", h.Dashboard.Stats)
			})
		})
	})
	return r
}
