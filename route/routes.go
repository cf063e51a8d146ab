package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
	"github.com/endayshebocah/tckokuo/app/service"
	"github.com/endayshebocah/tckokuo/middleware"
	"github.com/endayshebocah/tckokuo/stream"
)

func SetupRoutes(app *fiber.App, pgDB *gorm.DB, mongoDB *mongo.Database, hub *stream.Hub) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	userRepo := repo.NewUserRepo(pgDB)
	recordRepo := repo.NewRecordRepo(mongoDB)
	complaintRepo := repo.NewComplaintRepo(mongoDB)
	attendanceRepo := repo.NewAttendanceRepo(mongoDB)
	notificationRepo := repo.NewNotificationRepo(mongoDB)
	optionRepo := repo.NewOptionRepo(mongoDB)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(recordRepo, complaintRepo, notificationRepo)
	reportService := service.NewReportService(recordRepo)
	complaintService := service.NewComplaintService(complaintRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, recordRepo)
	optionService := service.NewOptionService(optionRepo)
	notificationService := service.NewNotificationService(notificationRepo, recordRepo)

	v1.Post("/auth/login", authService.Login)

	app.Use("/ws", stream.Upgrade)
	app.Get("/ws", hub.Handler())

	protected := v1.Group("", middleware.AuthRequired())

	records := protected.Group("/records")
	records.Get("/", recordService.List)
	records.Post("/", recordService.Create)
	records.Post("/bulk/search", middleware.PermissionsRequired(model.PermBulkDelete), recordService.BulkSearch)
	records.Post("/bulk/delete", middleware.PermissionsRequired(model.PermBulkDelete), recordService.BulkDelete)
	records.Post("/merge", middleware.PermissionsRequired(model.PermDataRepair), recordService.MergeField)
	records.Get("/locations", recordService.Locations)
	records.Get("/:id", recordService.Detail)
	records.Patch("/:id", recordService.Update)
	records.Delete("/:id", recordService.SoftDelete)
	records.Post("/:id/restore", middleware.PermissionsRequired(model.PermTrash), recordService.Restore)
	records.Delete("/:id/permanent", middleware.PermissionsRequired(model.PermTrash), recordService.DeletePermanent)
	records.Post("/:id/photo", recordService.UploadPhoto)

	reports := protected.Group("/reports")
	reports.Get("/trash", middleware.PermissionsRequired(model.PermTrash), reportService.Trash)
	reports.Get("/evaluation-schedule", reportService.EvaluationSchedule)
	reports.Get("/skills-summary", middleware.PermissionsRequired(model.PermSkillSummary), reportService.SkillsSummary)
	reports.Post("/follow-up", middleware.PermissionsRequired(model.PermFollowUp), reportService.FollowUp)
	reports.Post("/trainer-performance", middleware.PermissionsRequired(model.PermTrainerReports), reportService.TrainerPerformance)

	complaints := protected.Group("/complaints", middleware.PermissionsRequired(model.PermComplaints))
	complaints.Get("/", complaintService.List)
	complaints.Post("/", complaintService.Create)
	complaints.Patch("/:id", complaintService.Update)
	complaints.Delete("/:id", complaintService.Delete)

	attendance := protected.Group("/attendance", middleware.PermissionsRequired(model.PermAttendance))
	attendance.Post("/", attendanceService.Save)
	attendance.Get("/participants", attendanceService.Participants)
	attendance.Get("/participant/:id", attendanceService.History)
	attendance.Post("/report", attendanceService.Report)

	protected.Get("/notifications", notificationService.Feed)

	options := protected.Group("/options")
	options.Get("/", optionService.Get)
	options.Post("/add", middleware.PermissionsRequired(model.PermDataRepair), optionService.Add)
	options.Post("/remove", middleware.PermissionsRequired(model.PermDataRepair), optionService.Remove)

	users := protected.Group("/users", middleware.PermissionsRequired(model.PermAccessManagement))
	users.Get("/", userService.List)
	users.Post("/", userService.Create)
	users.Put("/:id", userService.Update)
	users.Delete("/:id", userService.Delete)
}
