package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-management-backend/config"
	"school-management-backend/models"
	"school-management-backend/pkg/summary"
	util "school-management-backend/pkg/utils"
)

type AttendanceRepository interface {
	// --- Methods for scan codes ---
	CreateScanCode(ctx context.Context, code *models.ScanCode) (*mongo.InsertOneResult, error)
	FindScanCodeByValue(ctx context.Context, value string) (*models.ScanCode, error)
	MarkScanCodeUsed(ctx context.Context, codeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error)

	// --- Methods for monthly summaries ---
	SaveRecord(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error)
	FindSummary(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error)
	OverridesForMonth(ctx context.Context, month, year int) (map[string]string, error)
}

type attendanceRepository struct {
	summaryCollection  *mongo.Collection
	scanCodeCollection *mongo.Collection
	overrideCollection *mongo.Collection
	summaryLocks       *util.KeyedMutex
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		summaryCollection:  config.GetCollection(config.MonthlySummaryCollection),
		scanCodeCollection: config.GetCollection(config.ScanCodeCollection),
		overrideCollection: config.GetCollection(config.DayOverrideCollection),
		summaryLocks:       util.NewKeyedMutex(),
	}
}

func (r *attendanceRepository) CreateScanCode(ctx context.Context, code *models.ScanCode) (*mongo.InsertOneResult, error) {
	res, err := r.scanCodeCollection.InsertOne(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindScanCodeByValue(ctx context.Context, value string) (*models.ScanCode, error) {
	var code models.ScanCode
	err := r.scanCodeCollection.FindOne(ctx, bson.M{"code": value}).Decode(&code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up scan code: %w", err)
	}
	return &code, nil
}

func (r *attendanceRepository) MarkScanCodeUsed(ctx context.Context, codeID primitive.ObjectID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": codeID}
	update := bson.M{
		"$addToSet": bson.M{"used_by": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	res, err := r.scanCodeCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to mark scan code as used: %w", err)
	}
	return res, nil
}

// SaveRecord upserts rec into the monthly summary of its month, recomputes
// every counter against the day-override calendar and persists the result.
// The whole find-or-create-then-save sequence is serialized per
// (user, month, year), so two rapid scans for the same user cannot clobber
// each other's write.
func (r *attendanceRepository) SaveRecord(ctx context.Context, userID primitive.ObjectID, rec models.AttendanceRecord) (*models.MonthlySummary, error) {
	day, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid record date %q: %w", rec.Date, err)
	}
	month, year := int(day.Month()), day.Year()

	key := fmt.Sprintf("%s/%04d-%02d", userID.Hex(), year, month)
	r.summaryLocks.Lock(key)
	defer r.summaryLocks.Unlock(key)

	s, err := r.FindSummary(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &models.MonthlySummary{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Month:     month,
			Year:      year,
			Records:   []models.AttendanceRecord{},
			CreatedAt: time.Now(),
		}
	}

	summary.UpsertRecord(s, rec)

	overrides, err := r.OverridesForMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}
	summary.Recompute(s, overrides)
	s.UpdatedAt = time.Now()

	filter := bson.M{"user_id": userID, "month": month, "year": year}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.summaryCollection.ReplaceOne(ctx, filter, s, opts); err != nil {
		return nil, fmt.Errorf("failed to save monthly summary: %w", err)
	}
	return s, nil
}

func (r *attendanceRepository) FindSummary(ctx context.Context, userID primitive.ObjectID, month, year int) (*models.MonthlySummary, error) {
	var s models.MonthlySummary
	filter := bson.M{"user_id": userID, "month": month, "year": year}
	err := r.summaryCollection.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find monthly summary: %w", err)
	}
	return &s, nil
}

// OverridesForMonth loads the full override calendar of a month as a
// date -> dayType map. Dates are stored as "2006-01-02" strings, so a
// lexicographic range covers the month.
func (r *attendanceRepository) OverridesForMonth(ctx context.Context, month, year int) (map[string]string, error) {
	first := summary.DateOf(month, year, 1)
	last := summary.DateOf(month, year, summary.DaysInMonth(month, year))

	cursor, err := r.overrideCollection.Find(ctx, bson.M{
		"date": bson.M{"$gte": first, "$lte": last},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load day overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.DayOverride
	if err = cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode day overrides: %w", err)
	}

	result := make(map[string]string, len(overrides))
	for _, o := range overrides {
		result[o.Date] = o.DayType
	}
	return result, nil
}
