package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/endayshebocah/tckokuo/app/lifecycle"
	"github.com/endayshebocah/tckokuo/app/model"
	"github.com/endayshebocah/tckokuo/app/repo"
)

const activityWindow = 7 * 24 * time.Hour

type NotificationService struct {
	notifications repo.NotificationRepository
	records       repo.RecordRepository
}

func NewNotificationService(notifications repo.NotificationRepository, records repo.RecordRepository) *NotificationService {
	return &NotificationService{notifications: notifications, records: records}
}

// NotificationFeed is the bell popup payload: stored activity from the last
// week plus evaluation reminders derived on the fly.
type NotificationFeed struct {
	Activity    []model.ActivityNotification   `json:"activity"`
	Evaluations []model.EvaluationNotification `json:"evaluations"`
}

// /api/v1/notifications
func (s *NotificationService) Feed(c *fiber.Ctx) error {
	activity, err := s.notifications.FindRecent(c.Context(), time.Now().Add(-activityWindow))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load notifications",
		})
	}

	all, err := s.records.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load records",
		})
	}
	latest := lifecycle.LatestPerTrainee(lifecycle.Active(all))

	return c.JSON(model.SuccessResponse[NotificationFeed]{
		Success: true,
		Data: NotificationFeed{
			Activity:    activity,
			Evaluations: lifecycle.DueNotifications(latest, time.Now()),
		},
	})
}
