package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type ClassScheduleHandler struct {
	repo         *repository.ClassScheduleRepository
	userRepo     *repository.UserRepository
	overrideRepo repository.DayOverrideRepository
}

func NewClassScheduleHandler(repo *repository.ClassScheduleRepository, userRepo *repository.UserRepository, overrideRepo repository.DayOverrideRepository) *ClassScheduleHandler {
	return &ClassScheduleHandler{
		repo:         repo,
		userRepo:     userRepo,
		overrideRepo: overrideRepo,
	}
}

// SchedulePeriod is one concrete expanded timetable slot.
type SchedulePeriod struct {
	ScheduleID string `json:"schedule_id"`
	ClassName  string `json:"class_name"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Room       string `json:"room,omitempty"`
}

func (h *ClassScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var payload models.ClassScheduleCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		dtstart, _ := time.Parse("2006-01-02", payload.Date)
		if _, err := expandOccurrences(payload.RecurrenceRule, dtstart, dtstart, dtstart.AddDate(1, 0, 0)); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	schedule := &models.ClassSchedule{
		ClassName:      payload.ClassName,
		Subject:        payload.Subject,
		Date:           payload.Date,
		StartTime:      payload.StartTime,
		EndTime:        payload.EndTime,
		Room:           payload.Room,
		RecurrenceRule: payload.RecurrenceRule,
	}
	if payload.TeacherID != "" {
		teacherID, err := primitive.ObjectIDFromHex(payload.TeacherID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid teacher id"})
		}
		schedule.TeacherID = teacherID
	}

	if _, err := h.repo.Create(c.Context(), schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create class schedule"})
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// GetScheduleForClass expands a class's period rules over the requested
// range, skipping dates carrying a holiday override. Students always get
// their own class's timetable.
func (h *ClassScheduleHandler) GetScheduleForClass(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	className := c.Params("className")
	if claims.Role == "student" {
		user, err := h.userRepo.FindUserByID(c.Context(), claims.UserID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}
		className = user.ClassName
	}
	if className == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "class name is required"})
	}

	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedules, err := h.repo.FindRulesByClass(c.Context(), className)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load class schedules"})
	}

	holidays, err := holidayDatesInRange(c.Context(), h.overrideRepo, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load holiday calendar"})
	}

	periods := make([]SchedulePeriod, 0)
	for _, schedule := range schedules {
		dtstart, err := time.Parse("2006-01-02", schedule.Date)
		if err != nil {
			continue
		}

		dates, err := expandOccurrences(schedule.RecurrenceRule, dtstart, start, end)
		if err != nil {
			continue
		}

		for _, date := range dates {
			dateStr := date.Format("2006-01-02")
			if holidays[dateStr] {
				continue
			}
			periods = append(periods, SchedulePeriod{
				ScheduleID: schedule.ID.Hex(),
				ClassName:  schedule.ClassName,
				Subject:    schedule.Subject,
				Date:       dateStr,
				StartTime:  schedule.StartTime,
				EndTime:    schedule.EndTime,
				Room:       schedule.Room,
			})
		}
	}

	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Date != periods[j].Date {
			return periods[i].Date < periods[j].Date
		}
		return periods[i].StartTime < periods[j].StartTime
	})

	return c.Status(fiber.StatusOK).JSON(periods)
}

func (h *ClassScheduleHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid schedule id"})
	}

	var payload models.ClassScheduleUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.UpdateByID(c.Context(), id, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update class schedule"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "class schedule not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Class schedule updated successfully", "schedule_id": id.Hex()})
}

func (h *ClassScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid schedule id"})
	}

	result, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete class schedule"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "class schedule not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Class schedule deleted successfully", "schedule_id": id.Hex()})
}
