package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/config"
	appHTTP "github.com/shiftops/workforce-backend-go/internal/handler/http"
	"github.com/shiftops/workforce-backend-go/internal/pkg/cron"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
	"github.com/shiftops/workforce-backend-go/internal/pkg/email"
	"github.com/shiftops/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftops/workforce-backend-go/internal/pkg/push"
	"github.com/shiftops/workforce-backend-go/internal/pkg/storage"
	"github.com/shiftops/workforce-backend-go/internal/pkg/whatsapp"
	"github.com/shiftops/workforce-backend-go/internal/repository/postgresql"
	announcementService "github.com/shiftops/workforce-backend-go/internal/service/announcement"
	serviceAuth "github.com/shiftops/workforce-backend-go/internal/service/auth"
	chatService "github.com/shiftops/workforce-backend-go/internal/service/chat"
	feedService "github.com/shiftops/workforce-backend-go/internal/service/feed"
	"github.com/shiftops/workforce-backend-go/internal/service/master"
	notificationService "github.com/shiftops/workforce-backend-go/internal/service/notification"
	reportService "github.com/shiftops/workforce-backend-go/internal/service/report"
	rosterService "github.com/shiftops/workforce-backend-go/internal/service/roster"
	settingsService "github.com/shiftops/workforce-backend-go/internal/service/settings"
	timesheetService "github.com/shiftops/workforce-backend-go/internal/service/timesheet"
	userService "github.com/shiftops/workforce-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	masterRepo := postgresql.NewMasterRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	chatRepo := postgresql.NewChatRepository(db)
	feedRepo := postgresql.NewFeedRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	whatsappClient := whatsapp.NewClient(cfg.WhatsApp.PhoneNumberID)
	pushSender, err := push.NewSender(cfg.Push.ProjectID, cfg.Push.CredentialsFile)
	if err != nil {
		log.Fatal("Failed to initialize push sender:", err)
	}

	reportSvc := reportService.NewReportService(reportRepo, masterRepo, settingsRepo, notificationRepo)
	notificationSvc := notificationService.NewNotificationService(
		notificationRepo,
		settingsRepo,
		userRepo,
		masterRepo,
		reportSvc,
		whatsappClient,
		pushSender,
		emailService,
		cfg.WhatsApp,
	)
	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		timesheetRepo,
		userRepo,
		masterRepo,
		settingsRepo,
		notificationSvc,
		emailService,
		cfg.App.FrontendURL,
	)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, emailService)
	userSvc := userService.NewUserService(db, userRepo, emailService, cfg.App.FrontendURL)
	masterSvc := master.NewMasterService(masterRepo)
	rosterSvc := rosterService.NewRosterService(rosterRepo)
	chatSvc := chatService.NewChatService(db, chatRepo, notificationSvc)
	feedSvc := feedService.NewFeedService(feedRepo)
	announcementSvc := announcementService.NewAnnouncementService(db, announcementRepo, notificationSvc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, fileStorage)

	scheduler := cron.NewScheduler()
	cron.NewNotificationJobs(notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(JWTService, cfg.App.FrontendURL, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Roster:       appHTTP.NewRosterHandler(rosterSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Chat:         appHTTP.NewChatHandler(chatSvc),
		Feed:         appHTTP.NewFeedHandler(feedSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
