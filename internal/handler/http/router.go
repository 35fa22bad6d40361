package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftops/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftops/workforce-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Timesheet    TimesheetHandler
	Report       ReportHandler
	Roster       RosterHandler
	User         UserHandler
	Master       MasterHandler
	Chat         ChatHandler
	Feed         FeedHandler
	Announcement AnnouncementHandler
	Notification NotificationHandler
	Settings     SettingsHandler
}

func NewRouter(jwtService jwt.Service, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/generate-password", h.Auth.GeneratePassword)
		})

		// Branding for the login page; the response carries no secrets.
		r.Get("/settings", h.Settings.Get)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", h.Timesheet.ListEntries)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Timesheet.CreateEntries)
					r.Get("/details", h.Timesheet.Details)
					r.Get("/filter-options", h.Timesheet.FilterOptions)
					r.Get("/employees", h.Timesheet.SearchEmployees)
					r.Get("/logs", h.Timesheet.ListLogs)
					r.Put("/invoices", h.Timesheet.UpdateInvoices)
					r.Post("/notifications/backfill", h.Timesheet.BackfillNotifications)
					r.Post("/import", h.Timesheet.Import)
					r.Get("/import/template", h.Timesheet.ImportTemplate)
					r.Put("/{id}", h.Timesheet.UpdateEntry)
					r.Delete("/{id}", h.Timesheet.DeleteEntry)
				})

				r.Get("/{id}", h.Timesheet.GetShift)
			})

			// Admin only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/employees", h.Report.EmployeeReport)
				r.Get("/employees/download", h.Report.DownloadEmployeePDF)
				r.Get("/clients", h.Report.ClientReport)
				r.Get("/clients/summary", h.Report.ClientSummary)
				r.Get("/clients/download", h.Report.DownloadClientPDF)
				r.Get("/excel", h.Report.DownloadExcel)
				r.Post("/mail", h.Report.QueueMail)
			})

			r.Get("/roster", h.Roster.View)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.User.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.User.List)
					r.Post("/", h.User.Create)
					r.Post("/with-password", h.User.CreateWithPassword)
					r.Get("/summary", h.User.Summary)
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			// Admin only
			r.Route("/master", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/locations", func(r chi.Router) {
					r.Post("/", h.Master.CreateLocation)
					r.Get("/", h.Master.ListLocations)
					r.Put("/{id}", h.Master.UpdateLocation)
					r.Delete("/{id}", h.Master.DeleteLocation)
				})
				r.Route("/events", func(r chi.Router) {
					r.Post("/", h.Master.CreateEvent)
					r.Get("/", h.Master.ListEvents)
					r.Put("/{id}", h.Master.UpdateEvent)
					r.Delete("/{id}", h.Master.DeleteEvent)
				})
				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", h.Master.CreateTask)
					r.Get("/", h.Master.ListTasks)
					r.Put("/{id}", h.Master.UpdateTask)
					r.Delete("/{id}", h.Master.DeleteTask)
				})
				r.Route("/clients", func(r chi.Router) {
					r.Post("/", h.Master.CreateClient)
					r.Get("/", h.Master.ListClients)
					r.Put("/{id}", h.Master.UpdateClient)
					r.Delete("/{id}", h.Master.DeleteClient)
				})
				r.Route("/attributes/{kind}", func(r chi.Router) {
					r.Post("/", h.Master.CreateAttribute)
					r.Get("/", h.Master.ListAttributes)
					r.Put("/{id}", h.Master.UpdateAttribute)
					r.Delete("/{id}", h.Master.DeleteAttribute)
				})
				r.Route("/templates", func(r chi.Router) {
					r.Post("/", h.Master.CreateTemplate)
					r.Get("/", h.Master.ListTemplates)
					r.Put("/{id}", h.Master.UpdateTemplate)
					r.Delete("/{id}", h.Master.DeleteTemplate)
				})
			})

			r.Route("/chat", func(r chi.Router) {
				r.Post("/conversations", h.Chat.CreateConversation)
				r.Get("/conversations", h.Chat.ListConversations)
				r.Get("/conversations/{id}/messages", h.Chat.ListMessages)
				r.Post("/messages", h.Chat.SendMessage)
			})

			r.Route("/feed", func(r chi.Router) {
				r.Post("/posts", h.Feed.CreatePost)
				r.Get("/posts", h.Feed.ListPosts)
				r.Get("/posts/{id}", h.Feed.GetPost)
				r.Post("/posts/{id}/comments", h.Feed.CreateComment)
				r.Post("/posts/{id}/like", h.Feed.ToggleLike)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Announcement.Create)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/push-settings", h.Notification.GetPushSettings)
				r.Put("/push-settings", h.Notification.SavePushSetting)
			})
			r.Post("/feedback", h.Notification.SaveFeedback)

			r.With(middleware.AdminOnly).Put("/settings", h.Settings.Update)

			r.Post("/attachments", h.Settings.UploadAttachment)
			r.Get("/attachments/{id}", h.Settings.ServeAttachment)
		})
	})
	return r
}
