package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"school-management-backend/models"
)

type fakeDayOverrideRepo struct {
	createFn        func(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error)
	findByDateFn    func(ctx context.Context, date string) (*models.DayOverride, error)
	findByMonthFn   func(ctx context.Context, month, year int) ([]models.DayOverride, error)
	updateByDateFn  func(ctx context.Context, date string, payload *models.DayOverrideUpdatePayload) (*mongo.UpdateResult, error)
	deleteByDateFn  func(ctx context.Context, date string) (*mongo.DeleteResult, error)
	markedDaysMapFn func(ctx context.Context, month, year int) (map[string]string, error)
	upsertHolidayFn func(ctx context.Context, date, name string) error
}

func (f *fakeDayOverrideRepo) Create(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error) {
	if f.createFn != nil {
		return f.createFn(ctx, override)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeDayOverrideRepo) FindByDate(ctx context.Context, date string) (*models.DayOverride, error) {
	if f.findByDateFn != nil {
		return f.findByDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeDayOverrideRepo) FindByMonth(ctx context.Context, month, year int) ([]models.DayOverride, error) {
	if f.findByMonthFn != nil {
		return f.findByMonthFn(ctx, month, year)
	}
	return []models.DayOverride{}, nil
}

func (f *fakeDayOverrideRepo) UpdateByDate(ctx context.Context, date string, payload *models.DayOverrideUpdatePayload) (*mongo.UpdateResult, error) {
	if f.updateByDateFn != nil {
		return f.updateByDateFn(ctx, date, payload)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (f *fakeDayOverrideRepo) DeleteByDate(ctx context.Context, date string) (*mongo.DeleteResult, error) {
	if f.deleteByDateFn != nil {
		return f.deleteByDateFn(ctx, date)
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeDayOverrideRepo) MarkedDaysMap(ctx context.Context, month, year int) (map[string]string, error) {
	if f.markedDaysMapFn != nil {
		return f.markedDaysMapFn(ctx, month, year)
	}
	return map[string]string{}, nil
}

func (f *fakeDayOverrideRepo) UpsertHoliday(ctx context.Context, date, name string) error {
	if f.upsertHolidayFn != nil {
		return f.upsertHolidayFn(ctx, date, name)
	}
	return nil
}

func newOverrideTestApp(repo *fakeDayOverrideRepo, holidayAPIURL string) *fiber.App {
	app := fiber.New()
	h := NewDayOverrideHandler(repo, holidayAPIURL)
	app.Post("/calendar/day-overrides", h.AddDayOverride)
	app.Put("/calendar/day-overrides/:date", h.UpdateDayOverride)
	app.Delete("/calendar/day-overrides/:date", h.RemoveDayOverride)
	app.Get("/calendar/day-overrides", h.ListDayOverrides)
	app.Get("/calendar/marked-days", h.GetMarkedDays)
	app.Post("/calendar/import-holidays", h.ImportHolidays)
	return app
}

func TestAddDayOverride(t *testing.T) {
	var created *models.DayOverride
	repo := &fakeDayOverrideRepo{
		createFn: func(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error) {
			created = override
			return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
		},
	}
	app := newOverrideTestApp(repo, "")

	body, _ := json.Marshal(fiber.Map{
		"date":        "2024-08-17",
		"day_type":    "holiday",
		"description": "Independence Day",
	})
	req := httptest.NewRequest("POST", "/calendar/day-overrides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, created)
	assert.Equal(t, "2024-08-17", created.Date)
	assert.Equal(t, models.DayTypeHoliday, created.DayType)
}

func TestAddDayOverrideDuplicateDate(t *testing.T) {
	repo := &fakeDayOverrideRepo{
		createFn: func(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error) {
			return nil, fmt.Errorf("a day override for this date already exists")
		},
	}
	app := newOverrideTestApp(repo, "")

	body, _ := json.Marshal(fiber.Map{
		"date":     "2024-08-17",
		"day_type": "holiday",
	})
	req := httptest.NewRequest("POST", "/calendar/day-overrides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAddDayOverrideRejectsBadDayType(t *testing.T) {
	app := newOverrideTestApp(&fakeDayOverrideRepo{}, "")

	body, _ := json.Marshal(fiber.Map{
		"date":     "2024-08-17",
		"day_type": "weekend",
	})
	req := httptest.NewRequest("POST", "/calendar/day-overrides", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateDayOverrideUnknownDate(t *testing.T) {
	repo := &fakeDayOverrideRepo{
		updateByDateFn: func(ctx context.Context, date string, payload *models.DayOverrideUpdatePayload) (*mongo.UpdateResult, error) {
			return &mongo.UpdateResult{MatchedCount: 0}, nil
		},
	}
	app := newOverrideTestApp(repo, "")

	body, _ := json.Marshal(fiber.Map{"day_type": "leave"})
	req := httptest.NewRequest("PUT", "/calendar/day-overrides/2024-03-01", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRemoveDayOverrideInvalidDate(t *testing.T) {
	app := newOverrideTestApp(&fakeDayOverrideRepo{}, "")

	req := httptest.NewRequest("DELETE", "/calendar/day-overrides/17-08-2024", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetMarkedDays(t *testing.T) {
	repo := &fakeDayOverrideRepo{
		markedDaysMapFn: func(ctx context.Context, month, year int) (map[string]string, error) {
			assert.Equal(t, 2, month)
			assert.Equal(t, 2024, year)
			return map[string]string{
				"2024-02-10": models.DayTypeHoliday,
				"2024-02-14": models.DayTypeLeave,
			}, nil
		},
	}
	app := newOverrideTestApp(repo, "")

	req := httptest.NewRequest("GET", "/calendar/marked-days?month=2&year=2024", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, models.DayTypeHoliday, got["2024-02-10"])
	assert.Equal(t, models.DayTypeLeave, got["2024-02-14"])
}

func TestImportHolidays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"holiday_date": "2024-01-01", "holiday_name": "New Year's Day", "is_national_holiday": true},
			{"holiday_date": "2024-05-01", "holiday_name": "Labour Day", "is_national_holiday": true}
		]`))
	}))
	defer server.Close()

	upserted := map[string]string{}
	repo := &fakeDayOverrideRepo{
		upsertHolidayFn: func(ctx context.Context, date, name string) error {
			upserted[date] = name
			return nil
		},
	}
	app := newOverrideTestApp(repo, server.URL)

	req := httptest.NewRequest("POST", "/calendar/import-holidays?year=2024", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Len(t, upserted, 2)
	assert.Equal(t, "New Year's Day", upserted["2024-01-01"])

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, float64(2), got["imported"])
}
