package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/config"
	appHTTP "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/cron"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/email"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/jwt"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/storage"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/repository/postgresql"
	attendanceService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/attendance"
	serviceAuth "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/auth"
	calendarService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/calendar"
	courseService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/course"
	dashboardService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/dashboard"
	diaryService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
	leaveService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/master"
	notificationService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/notification"
	taskService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/task"
	userService "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	jobRoleRepo := postgresql.NewJobRoleRepository(db)
	resetRepo := postgresql.NewPasswordResetRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	diaryRepo := postgresql.NewDiaryRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	courseRepo := postgresql.NewCourseRepository(db)
	calendarRepo := postgresql.NewCalendarEventRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, teamRepo, jobRoleRepo, resetRepo, JWTService, emailService, fileService)
	userSvc := userService.NewUserService(userRepo, teamRepo, jobRoleRepo, fileService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notificationSvc)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo, fileService, notificationSvc)
	diarySvc := diaryService.NewDiaryService(diaryRepo, fileService, notificationSvc)
	courseSvc := courseService.NewCourseService(courseRepo, fileService)
	masterSvc := master.NewMasterService(teamRepo, jobRoleRepo, userRepo)
	calendarSvc := calendarService.NewCalendarService(calendarRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, leaveRepo, taskRepo)

	scheduler := cron.NewScheduler()
	cron.NewResetCodeJobs(resetRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Diary:        appHTTP.NewDiaryHandler(diarySvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
		Course:       appHTTP.NewCourseHandler(courseSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Calendar:     appHTTP.NewCalendarHandler(calendarSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
