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

type EventHandler struct {
	repo         *repository.EventRepository
	overrideRepo repository.DayOverrideRepository
}

func NewEventHandler(repo *repository.EventRepository, overrideRepo repository.DayOverrideRepository) *EventHandler {
	return &EventHandler{
		repo:         repo,
		overrideRepo: overrideRepo,
	}
}

// EventOccurrence is one concrete expanded date of a stored event rule.
type EventOccurrence struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Audience    string `json:"audience"`
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var payload models.EventCreatePayload
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

	event := &models.Event{
		Title:          payload.Title,
		Description:    payload.Description,
		Date:           payload.Date,
		StartTime:      payload.StartTime,
		EndTime:        payload.EndTime,
		Audience:       payload.Audience,
		RecurrenceRule: payload.RecurrenceRule,
	}

	if _, err := h.repo.Create(c.Context(), event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetEvents expands every stored event rule over the requested range. Dates
// carrying a holiday override are dropped, and the audience filter follows
// the caller's role.
func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	start, end, err := parseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	events, err := h.repo.FindAllRules(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load events"})
	}

	holidays, err := holidayDatesInRange(c.Context(), h.overrideRepo, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load holiday calendar"})
	}

	occurrences := make([]EventOccurrence, 0)
	for _, event := range events {
		if !audienceVisibleTo(event.Audience, claims.Role) {
			continue
		}

		dtstart, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			continue
		}

		dates, err := expandOccurrences(event.RecurrenceRule, dtstart, start, end)
		if err != nil {
			continue
		}

		for _, date := range dates {
			dateStr := date.Format("2006-01-02")
			if holidays[dateStr] {
				continue
			}
			occurrences = append(occurrences, EventOccurrence{
				EventID:     event.ID.Hex(),
				Title:       event.Title,
				Description: event.Description,
				Date:        dateStr,
				StartTime:   event.StartTime,
				EndTime:     event.EndTime,
				Audience:    event.Audience,
			})
		}
	}

	sort.Slice(occurrences, func(i, j int) bool {
		if occurrences[i].Date != occurrences[j].Date {
			return occurrences[i].Date < occurrences[j].Date
		}
		return occurrences[i].StartTime < occurrences[j].StartTime
	})

	return c.Status(fiber.StatusOK).JSON(occurrences)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	var payload models.EventUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.UpdateByID(c.Context(), id, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update event"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Event updated successfully", "event_id": id.Hex()})
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	result, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete event"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Event deleted successfully", "event_id": id.Hex()})
}

func audienceVisibleTo(audience, role string) bool {
	switch role {
	case "student":
		return audience == "all" || audience == "students"
	case "teacher":
		return audience == "all" || audience == "teachers"
	default:
		return true
	}
}
