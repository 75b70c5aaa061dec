package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-management-backend/models"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type DayOverrideHandler struct {
	repo          repository.DayOverrideRepository
	holidayAPIURL string
}

func NewDayOverrideHandler(repo repository.DayOverrideRepository, holidayAPIURL string) *DayOverrideHandler {
	return &DayOverrideHandler{
		repo:          repo,
		holidayAPIURL: holidayAPIURL,
	}
}

func (h *DayOverrideHandler) AddDayOverride(c *fiber.Ctx) error {
	var payload models.DayOverrideCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	override := &models.DayOverride{
		Date:        payload.Date,
		DayType:     payload.DayType,
		HolidayType: payload.HolidayType,
		Description: payload.Description,
	}

	if _, err := h.repo.Create(c.Context(), override); err != nil {
		if err.Error() == "a day override for this date already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create day override"})
	}

	return c.Status(fiber.StatusCreated).JSON(override)
}

func (h *DayOverrideHandler) UpdateDayOverride(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, expected 2006-01-02"})
	}

	var payload models.DayOverrideUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	result, err := h.repo.UpdateByDate(c.Context(), date, &payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update day override"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No day override exists for this date"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Day override updated", "date": date})
}

func (h *DayOverrideHandler) RemoveDayOverride(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, expected 2006-01-02"})
	}

	result, err := h.repo.DeleteByDate(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete day override"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No day override exists for this date"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Day override removed", "date": date})
}

func (h *DayOverrideHandler) ListDayOverrides(c *fiber.Ctx) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	overrides, err := h.repo.FindByMonth(c.Context(), month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list day overrides"})
	}

	return c.Status(fiber.StatusOK).JSON(overrides)
}

// GetMarkedDays serves the calendar screen's {date: dayType} map.
func (h *DayOverrideHandler) GetMarkedDays(c *fiber.Ctx) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	marked, err := h.repo.MarkedDaysMap(c.Context(), month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load marked days"})
	}

	return c.Status(fiber.StatusOK).JSON(marked)
}

// ImportHolidays pulls the national holidays of a year from the external
// holiday API and upserts them as holiday overrides.
func (h *DayOverrideHandler) ImportHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().Format("2006")
	}

	holidays, err := util.FetchNationalHolidays(h.holidayAPIURL, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch holidays", "details": err.Error()})
	}

	imported := 0
	for date, name := range holidays {
		if err := h.repo.UpsertHoliday(c.Context(), date, name); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store holiday overrides"})
		}
		imported++
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "National holidays imported",
		"year":     year,
		"imported": imported,
	})
}
