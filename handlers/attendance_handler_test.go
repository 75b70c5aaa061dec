package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"school-management-backend/models"
	"school-management-backend/pkg/paseto"
	"school-management-backend/pkg/summary"
)

// fakeAttendanceRepo stubs the attendance repository with per-method funcs so
// each test overrides only what it touches.
type fakeAttendanceRepo struct {
	createScanCodeFn      func(ctx context.Context, code *models.ScanCode) (*mongo.InsertOneResult, error)
	findScanCodeByValueFn func(ctx context.Context, value string) (*models.ScanCode, error)
	markScanCodeUsedFn    func(ctx context.Context, codeID, userID primitive.ObjectID) (*mongo.UpdateResult, error)
	saveRecordFn          func(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error)
	findSummaryFn         func(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error)
	overridesForMonthFn   func(ctx context.Context, month, year int) (map[string]string, error)
}

func (f *fakeAttendanceRepo) CreateScanCode(ctx context.Context, code *models.ScanCode) (*mongo.InsertOneResult, error) {
	if f.createScanCodeFn != nil {
		return f.createScanCodeFn(ctx, code)
	}
	return &mongo.InsertOneResult{InsertedID: code.ID}, nil
}

func (f *fakeAttendanceRepo) FindScanCodeByValue(ctx context.Context, value string) (*models.ScanCode, error) {
	if f.findScanCodeByValueFn != nil {
		return f.findScanCodeByValueFn(ctx, value)
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) MarkScanCodeUsed(ctx context.Context, codeID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	if f.markScanCodeUsedFn != nil {
		return f.markScanCodeUsedFn(ctx, codeID, userID)
	}
	return &mongo.UpdateResult{ModifiedCount: 1}, nil
}

func (f *fakeAttendanceRepo) SaveRecord(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
	if f.saveRecordFn != nil {
		return f.saveRecordFn(ctx, userID, rec)
	}
	return &models.MonthlySummary{UserID: userID, Records: []models.AttendanceRecord{rec}}, nil
}

func (f *fakeAttendanceRepo) FindSummary(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error) {
	if f.findSummaryFn != nil {
		return f.findSummaryFn(ctx, userID, month, year)
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) OverridesForMonth(ctx context.Context, month, year int) (map[string]string, error) {
	if f.overridesForMonthFn != nil {
		return f.overridesForMonthFn(ctx, month, year)
	}
	return map[string]string{}, nil
}

func newAttendanceTestApp(repo *fakeAttendanceRepo, claims *paseto.Claims) *fiber.App {
	app := fiber.New()
	if claims != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user", claims)
			return c.Next()
		})
	}

	h := NewAttendanceHandler(repo)
	app.Post("/attendance/scan", h.ScanAttendance)
	app.Post("/attendance/mark", h.MarkAttendance)
	app.Post("/attendance/mark-all", h.MarkAttendanceForAllUsers)
	app.Get("/attendance/me", h.GetMyAttendance)
	app.Get("/attendance/stats", h.GetAttendanceStats)
	app.Get("/attendance/user/:userId", h.GetAttendance)
	return app
}

func TestMarkAttendanceReturnsUpdatedSummary(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &fakeAttendanceRepo{
		saveRecordFn: func(ctx context.Context, gotUser primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, "2024-02-05", rec.Date)
			assert.Equal(t, models.StatusLate, rec.Status)
			return &models.MonthlySummary{
				UserID:      gotUser,
				Month:       2,
				Year:        2024,
				Records:     []models.AttendanceRecord{rec},
				TotalDays:   29,
				LateDays:    1,
				WorkingDays: 1,
			}, nil
		},
	}
	app := newAttendanceTestApp(repo, nil)

	body, _ := json.Marshal(fiber.Map{
		"user_id": userID.Hex(),
		"date":    "2024-02-05",
		"status":  "late",
	})
	req := httptest.NewRequest("POST", "/attendance/mark", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.MonthlySummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 1, got.LateDays)
	assert.Equal(t, 29, got.TotalDays)
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	app := newAttendanceTestApp(&fakeAttendanceRepo{}, nil)

	body, _ := json.Marshal(fiber.Map{
		"user_id": primitive.NewObjectID().Hex(),
		"date":    "2024-02-05",
		"status":  "holiday",
	})
	req := httptest.NewRequest("POST", "/attendance/mark", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMarkAttendanceForAllUsersPartialFailure(t *testing.T) {
	goodID := primitive.NewObjectID().Hex()
	otherID := primitive.NewObjectID().Hex()
	workingID := primitive.NewObjectID().Hex()

	repo := &fakeAttendanceRepo{
		saveRecordFn: func(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
			return &models.MonthlySummary{UserID: userID}, nil
		},
	}
	app := newAttendanceTestApp(repo, nil)

	present, absent, working := 1, 2, 0
	payload := models.AttendanceBulkMarkPayload{
		Date: "2024-02-05",
		Records: []models.BulkAttendanceEntry{
			{UserID: goodID, Status: &present},
			{UserID: otherID, Status: &absent},
			{UserID: workingID, Status: &working},
			{UserID: "not-a-hex-id", Status: &present},
			{UserID: goodID},
		},
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/attendance/mark-all", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	// Per-entry failures never fail the request as a whole.
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.BulkMarkResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Len(t, got.Successful, 2)
	assert.Len(t, got.Errors, 3)
	assert.Equal(t, models.StatusPresent, got.Successful[0].Status)
	assert.Equal(t, models.StatusAbsent, got.Successful[1].Status)
	assert.Contains(t, got.Errors[0].Error, "not a recordable attendance status")
}

func TestScanAttendanceFirstScanChecksIn(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	today := time.Now().Format("2006-01-02")

	var saved models.AttendanceRecord
	repo := &fakeAttendanceRepo{
		findScanCodeByValueFn: func(ctx context.Context, value string) (*models.ScanCode, error) {
			return &models.ScanCode{
				ID:        primitive.NewObjectID(),
				Code:      value,
				Date:      today,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		saveRecordFn: func(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
			saved = rec
			return &models.MonthlySummary{UserID: userID, Records: []models.AttendanceRecord{rec}}, nil
		},
	}
	app := newAttendanceTestApp(repo, claims)

	body, _ := json.Marshal(fiber.Map{"code": "abc-123"})
	req := httptest.NewRequest("POST", "/attendance/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, today, saved.Date)
	assert.Equal(t, models.StatusPresent, saved.Status)
	assert.Equal(t, models.DayTypeHalfDay, saved.DayType)
	assert.Equal(t, models.ScanCheckInTime, saved.CheckIn)
	assert.Empty(t, saved.CheckOut)
}

func TestScanAttendanceSecondScanChecksOut(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	now := time.Now()
	today := now.Format("2006-01-02")

	var saved models.AttendanceRecord
	repo := &fakeAttendanceRepo{
		findScanCodeByValueFn: func(ctx context.Context, value string) (*models.ScanCode, error) {
			return &models.ScanCode{
				ID:        primitive.NewObjectID(),
				Code:      value,
				Date:      today,
				ExpiresAt: now.Add(time.Hour),
			}, nil
		},
		findSummaryFn: func(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error) {
			return &models.MonthlySummary{
				UserID: userID,
				Month:  month,
				Year:   year,
				Records: []models.AttendanceRecord{{
					Date:    today,
					Status:  models.StatusPresent,
					DayType: models.DayTypeHalfDay,
					CheckIn: models.ScanCheckInTime,
				}},
			}, nil
		},
		saveRecordFn: func(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
			saved = rec
			return &models.MonthlySummary{UserID: userID, Records: []models.AttendanceRecord{rec}}, nil
		},
	}
	app := newAttendanceTestApp(repo, claims)

	body, _ := json.Marshal(fiber.Map{"code": "abc-123"})
	req := httptest.NewRequest("POST", "/attendance/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, models.DayTypeFullDay, saved.DayType)
	assert.Equal(t, models.ScanCheckInTime, saved.CheckIn)
	assert.Equal(t, models.ScanCheckOutTime, saved.CheckOut)
}

func TestScanAttendanceSucceedsWhenUsageTrackingFails(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	today := time.Now().Format("2006-01-02")

	repo := &fakeAttendanceRepo{
		findScanCodeByValueFn: func(ctx context.Context, value string) (*models.ScanCode, error) {
			return &models.ScanCode{
				ID:        primitive.NewObjectID(),
				Code:      value,
				Date:      today,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		markScanCodeUsedFn: func(ctx context.Context, codeID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
			return nil, fmt.Errorf("write concern error")
		},
	}
	app := newAttendanceTestApp(repo, claims)

	body, _ := json.Marshal(fiber.Map{"code": "abc-123"})
	req := httptest.NewRequest("POST", "/attendance/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	// The attendance record is already saved; usage tracking failures must
	// not fail the scan.
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestScanAttendanceUnknownCode(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	app := newAttendanceTestApp(&fakeAttendanceRepo{}, claims)

	body, _ := json.Marshal(fiber.Map{"code": "nope"})
	req := httptest.NewRequest("POST", "/attendance/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestScanAttendanceExpiredCode(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	repo := &fakeAttendanceRepo{
		findScanCodeByValueFn: func(ctx context.Context, value string) (*models.ScanCode, error) {
			return &models.ScanCode{
				ID:        primitive.NewObjectID(),
				Code:      value,
				Date:      time.Now().Format("2006-01-02"),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
	}
	app := newAttendanceTestApp(repo, claims)

	body, _ := json.Marshal(fiber.Map{"code": "stale"})
	req := httptest.NewRequest("POST", "/attendance/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetMyAttendanceMissingSummaryIsZeroed(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	app := newAttendanceTestApp(&fakeAttendanceRepo{}, claims)

	req := httptest.NewRequest("GET", "/attendance/me?month=2&year=2024", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.MonthlySummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, 2, got.Month)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 29, got.TotalDays)
	assert.Zero(t, got.PresentDays)
	assert.NotNil(t, got.Records)
	assert.Empty(t, got.Records)
}

func TestGetAttendanceInvalidMonth(t *testing.T) {
	app := newAttendanceTestApp(&fakeAttendanceRepo{}, nil)

	req := httptest.NewRequest("GET", fmt.Sprintf("/attendance/user/%s?month=13&year=2024", primitive.NewObjectID().Hex()), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAttendanceStatsOmitsRecords(t *testing.T) {
	claims := &paseto.Claims{UserID: primitive.NewObjectID(), Role: "student"}
	now := time.Now()
	repo := &fakeAttendanceRepo{
		findSummaryFn: func(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error) {
			return &models.MonthlySummary{
				UserID:      userID,
				Month:       month,
				Year:        year,
				Records:     []models.AttendanceRecord{{Date: now.Format("2006-01-02"), Status: models.StatusPresent}},
				TotalDays:   summary.DaysInMonth(month, year),
				PresentDays: 1,
				WorkingDays: 1,
				Percentage:  100,
			}, nil
		},
	}
	app := newAttendanceTestApp(repo, claims)

	req := httptest.NewRequest("GET", "/attendance/stats", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.NotContains(t, got, "records")
	assert.Equal(t, float64(1), got["present_days"])
	assert.Equal(t, float64(100), got["percentage"])
}
