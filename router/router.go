package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"school-management-backend/config"
	"school-management-backend/config/middleware"
	_ "school-management-backend/docs"
	"school-management-backend/handlers"
	"school-management-backend/repository"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	userRepo := repository.NewUserRepository()
	classRepo := repository.NewClassRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	overrideRepo := repository.NewDayOverrideRepository()
	homeworkRepo := repository.NewHomeworkRepository()
	noticeRepo := repository.NewNoticeRepository()
	eventRepo := repository.NewEventRepository()
	scheduleRepo := repository.NewClassScheduleRepository()
	feeRepo := repository.NewFeeRepository()

	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	classHandler := handlers.NewClassHandler(classRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)
	overrideHandler := handlers.NewDayOverrideHandler(overrideRepo, cfg.HolidayAPIURL)
	homeworkHandler := handlers.NewHomeworkHandler(homeworkRepo, userRepo)
	noticeHandler := handlers.NewNoticeHandler(noticeRepo)
	eventHandler := handlers.NewEventHandler(eventRepo, overrideRepo)
	scheduleHandler := handlers.NewClassScheduleHandler(scheduleRepo, userRepo, overrideRepo)
	feeHandler := handlers.NewFeeHandler(feeRepo, userRepo)

	// Health check & docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "School Management API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.AuthMiddleware(), middleware.ManagementMiddleware(), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users
	userGroup := api.Group("/users", middleware.AuthMiddleware())
	userGroup.Post("/change-password", authHandler.ChangePassword)
	userGroup.Get("/:id", userHandler.GetUserByID)
	userGroup.Put("/:id", middleware.ManagementMiddleware(), userHandler.UpdateUser)

	// Management-only administration
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.ManagementMiddleware())
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)

	// Classes
	api.Get("/classes", middleware.AuthMiddleware(), classHandler.GetAllClasses)
	api.Get("/classes/:id", middleware.AuthMiddleware(), classHandler.GetClassByID)
	api.Get("/classes/:className/students", middleware.AuthMiddleware(), middleware.TeacherOrManagementMiddleware(), userHandler.GetStudentsByClass)
	adminGroup.Post("/classes", classHandler.CreateClass)
	adminGroup.Put("/classes/:id", classHandler.UpdateClass)
	adminGroup.Delete("/classes/:id", classHandler.DeleteClass)

	// Attendance
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Post("/scan", attendanceHandler.ScanAttendance)
	attendanceGroup.Get("/me", attendanceHandler.GetMyAttendance)
	// Stats are computed from the caller's own claims, so students get them too.
	attendanceGroup.Get("/stats", attendanceHandler.GetAttendanceStats)

	staffAttendanceGroup := attendanceGroup.Group("/", middleware.TeacherOrManagementMiddleware())
	staffAttendanceGroup.Post("/mark", attendanceHandler.MarkAttendance)
	staffAttendanceGroup.Post("/mark-all", attendanceHandler.MarkAttendanceForAllUsers)
	staffAttendanceGroup.Get("/user/:userId", attendanceHandler.GetAttendance)

	managementAttendanceGroup := attendanceGroup.Group("/", middleware.ManagementMiddleware())
	managementAttendanceGroup.Get("/generate-qr", attendanceHandler.GenerateScanCode)

	// Calendar day overrides
	calendarGroup := api.Group("/calendar", middleware.AuthMiddleware())
	calendarGroup.Get("/day-overrides", overrideHandler.ListDayOverrides)
	calendarGroup.Get("/marked-days", overrideHandler.GetMarkedDays)

	managementCalendarGroup := calendarGroup.Group("/", middleware.ManagementMiddleware())
	managementCalendarGroup.Post("/day-overrides", overrideHandler.AddDayOverride)
	managementCalendarGroup.Put("/day-overrides/:date", overrideHandler.UpdateDayOverride)
	managementCalendarGroup.Delete("/day-overrides/:date", overrideHandler.RemoveDayOverride)
	managementCalendarGroup.Post("/import-holidays", overrideHandler.ImportHolidays)

	// Homework
	homeworkGroup := api.Group("/homework", middleware.AuthMiddleware())
	homeworkGroup.Get("/class/:className", homeworkHandler.GetHomeworkForClass)
	staffHomeworkGroup := homeworkGroup.Group("/", middleware.TeacherOrManagementMiddleware())
	staffHomeworkGroup.Post("/", homeworkHandler.CreateHomework)
	staffHomeworkGroup.Put("/:id", homeworkHandler.UpdateHomework)
	staffHomeworkGroup.Delete("/:id", homeworkHandler.DeleteHomework)

	// Notices
	noticeGroup := api.Group("/notices", middleware.AuthMiddleware())
	noticeGroup.Get("/", noticeHandler.GetNotices)
	staffNoticeGroup := noticeGroup.Group("/", middleware.TeacherOrManagementMiddleware())
	staffNoticeGroup.Post("/", noticeHandler.CreateNotice)
	staffNoticeGroup.Put("/:id", noticeHandler.UpdateNotice)
	staffNoticeGroup.Delete("/:id", noticeHandler.DeleteNotice)

	// Events
	eventGroup := api.Group("/events", middleware.AuthMiddleware())
	eventGroup.Get("/", eventHandler.GetEvents)
	managementEventGroup := eventGroup.Group("/", middleware.ManagementMiddleware())
	managementEventGroup.Post("/", eventHandler.CreateEvent)
	managementEventGroup.Put("/:id", eventHandler.UpdateEvent)
	managementEventGroup.Delete("/:id", eventHandler.DeleteEvent)

	// Class schedules
	scheduleGroup := api.Group("/schedules", middleware.AuthMiddleware())
	scheduleGroup.Get("/class/:className", scheduleHandler.GetScheduleForClass)
	managementScheduleGroup := scheduleGroup.Group("/", middleware.ManagementMiddleware())
	managementScheduleGroup.Post("/", scheduleHandler.CreateSchedule)
	managementScheduleGroup.Put("/:id", scheduleHandler.UpdateSchedule)
	managementScheduleGroup.Delete("/:id", scheduleHandler.DeleteSchedule)

	// Fees
	feeGroup := api.Group("/fees", middleware.AuthMiddleware())
	feeGroup.Get("/me", feeHandler.GetMyFees)
	feeGroup.Get("/student/:studentId", feeHandler.GetFeesForStudent)
	managementFeeGroup := feeGroup.Group("/", middleware.ManagementMiddleware())
	managementFeeGroup.Post("/", feeHandler.CreateFee)
	managementFeeGroup.Post("/:id/pay", feeHandler.PayFee)
	managementFeeGroup.Delete("/:id", feeHandler.DeleteFee)

	log.Println("All routes registered.")
}
