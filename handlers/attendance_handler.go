package handlers

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	"school-management-backend/pkg/summary"
	util "school-management-backend/pkg/utils"
	"school-management-backend/repository"
)

type AttendanceHandler struct {
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo}
}

// MarkAttendance records an explicit status for one student on one date and
// returns the recomputed monthly summary.
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceMarkPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user_id"})
	}

	rec := models.AttendanceRecord{
		Date:     payload.Date,
		Status:   payload.Status,
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		Remarks:  payload.Remarks,
	}

	updated, err := h.repo.SaveRecord(c.Context(), userID, rec)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save attendance"})
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// MarkAttendanceForAllUsers marks a whole class roster in one call. Each
// entry is attempted independently; failures are collected per entry and the
// call always answers 200 with both result lists.
func (h *AttendanceHandler) MarkAttendanceForAllUsers(c *fiber.Ctx) error {
	var payload models.AttendanceBulkMarkPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	successful := []models.BulkMarkResult{}
	failed := []models.BulkMarkResult{}

	for _, entry := range payload.Records {
		if entry.UserID == "" {
			failed = append(failed, models.BulkMarkResult{Error: "user_id is required"})
			continue
		}

		userID, err := primitive.ObjectIDFromHex(entry.UserID)
		if err != nil {
			failed = append(failed, models.BulkMarkResult{UserID: entry.UserID, Error: "invalid user_id"})
			continue
		}

		if entry.Status == nil {
			failed = append(failed, models.BulkMarkResult{UserID: entry.UserID, Error: "status is required"})
			continue
		}

		var status string
		switch *entry.Status {
		case 1:
			status = models.StatusPresent
		case 2:
			status = models.StatusAbsent
		case 0:
			// "working" is a day classification, not a per-student status;
			// day overrides are managed through the calendar endpoints.
			failed = append(failed, models.BulkMarkResult{UserID: entry.UserID, Error: "status code 0 (working) is not a recordable attendance status"})
			continue
		default:
			failed = append(failed, models.BulkMarkResult{UserID: entry.UserID, Error: fmt.Sprintf("invalid status code %d", *entry.Status)})
			continue
		}

		rec := models.AttendanceRecord{Date: payload.Date, Status: status}
		if _, err := h.repo.SaveRecord(c.Context(), userID, rec); err != nil {
			failed = append(failed, models.BulkMarkResult{UserID: entry.UserID, Error: "failed to save attendance"})
			continue
		}

		successful = append(successful, models.BulkMarkResult{UserID: entry.UserID, Status: status})
	}

	return c.Status(fiber.StatusOK).JSON(models.BulkMarkResponse{
		Successful: successful,
		Errors:     failed,
	})
}

// ScanAttendance handles the daily QR scan. The first scan of the day writes
// a half-day check-in, any later scan completes the record as a full day.
// The check-in and check-out clock values are fixed, not the scan time.
func (h *AttendanceHandler) ScanAttendance(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	var payload models.ScanAttendancePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	scanCode, err := h.repo.FindScanCodeByValue(c.Context(), payload.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to look up scan code"})
	}
	if scanCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Scan code not found or invalid"})
	}

	if time.Now().After(scanCode.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Scan code has expired"})
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	if scanCode.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Scan code is not valid for today"})
	}

	existing, err := h.repo.FindSummary(c.Context(), claims.UserID, int(now.Month()), now.Year())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load attendance"})
	}

	var todayRec *models.AttendanceRecord
	if existing != nil {
		for i := range existing.Records {
			if existing.Records[i].Date == today {
				todayRec = &existing.Records[i]
				break
			}
		}
	}

	if todayRec != nil {
		// Second or later scan: complete the day. Repeats are harmless,
		// they re-apply the same check-out.
		rec := *todayRec
		rec.DayType = models.DayTypeFullDay
		rec.CheckOut = models.ScanCheckOutTime

		updated, err := h.repo.SaveRecord(c.Context(), claims.UserID, rec)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check out"})
		}

		// Usage tracking is best effort; the attendance write already landed.
		if _, err := h.repo.MarkScanCodeUsed(c.Context(), scanCode.ID, claims.UserID); err != nil {
			log.Printf("failed to record scan code usage: %v", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Checked out at " + models.ScanCheckOutTime,
			"summary": updated,
		})
	}

	rec := models.AttendanceRecord{
		Date:    today,
		Status:  models.StatusPresent,
		DayType: models.DayTypeHalfDay,
		CheckIn: models.ScanCheckInTime,
	}

	updated, err := h.repo.SaveRecord(c.Context(), claims.UserID, rec)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check in"})
	}

	if _, err := h.repo.MarkScanCodeUsed(c.Context(), scanCode.ID, claims.UserID); err != nil {
		log.Printf("failed to record scan code usage: %v", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Checked in at " + models.ScanCheckInTime,
		"summary": updated,
	})
}

// GenerateScanCode creates today's QR code and returns it as a base64 PNG.
func (h *AttendanceHandler) GenerateScanCode(c *fiber.Ctx) error {
	uniqueCode := uuid.New().String()
	today := time.Now()
	expiresAt := time.Date(today.Year(), today.Month(), today.Day(), 23, 0, 0, 0, today.Location())

	newCode := &models.ScanCode{
		ID:        primitive.NewObjectID(),
		Code:      uniqueCode,
		Date:      today.Format("2006-01-02"),
		ExpiresAt: expiresAt,
		UsedBy:    []primitive.ObjectID{},
		CreatedAt: today,
	}

	if _, err := h.repo.CreateScanCode(c.Context(), newCode); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store scan code"})
	}

	png, err := qrcode.Encode(uniqueCode, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render scan code image"})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Scan code created",
		"qr_code_image": "data:image/png;base64," + encodedString,
		"expires_at":    expiresAt,
	})
}

// GetAttendance returns a user's monthly summary. Missing summaries answer
// with a zeroed summary instead of 404 so the mobile calendar always renders.
func (h *AttendanceHandler) GetAttendance(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user id"})
	}

	return h.respondWithSummary(c, userID)
}

// GetMyAttendance is the student-facing variant of GetAttendance.
func (h *AttendanceHandler) GetMyAttendance(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	return h.respondWithSummary(c, claims.UserID)
}

func (h *AttendanceHandler) respondWithSummary(c *fiber.Ctx, userID primitive.ObjectID) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	s, err := h.repo.FindSummary(c.Context(), userID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load attendance"})
	}

	if s == nil {
		s = &models.MonthlySummary{
			UserID:    userID,
			Month:     month,
			Year:      year,
			Records:   []models.AttendanceRecord{},
			TotalDays: summary.DaysInMonth(month, year),
		}
	}

	return c.Status(fiber.StatusOK).JSON(s)
}

// GetAttendanceStats returns the current month's counters without the
// per-day records.
func (h *AttendanceHandler) GetAttendanceStats(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or token claims are invalid"})
	}

	now := time.Now()
	month, year := int(now.Month()), now.Year()

	s, err := h.repo.FindSummary(c.Context(), claims.UserID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load attendance"})
	}

	if s == nil {
		s = &models.MonthlySummary{
			Month:     month,
			Year:      year,
			TotalDays: summary.DaysInMonth(month, year),
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"month":        s.Month,
		"year":         s.Year,
		"total_days":   s.TotalDays,
		"present_days": s.PresentDays,
		"absent_days":  s.AbsentDays,
		"late_days":    s.LateDays,
		"holiday_days": s.HolidayDays,
		"leave_days":   s.LeaveDays,
		"working_days": s.WorkingDays,
		"percentage":   s.Percentage,
	})
}
