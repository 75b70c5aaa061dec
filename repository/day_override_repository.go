package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-management-backend/config"
	"school-management-backend/models"
	"school-management-backend/pkg/summary"
)

type DayOverrideRepository interface {
	Create(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error)
	FindByDate(ctx context.Context, date string) (*models.DayOverride, error)
	FindByMonth(ctx context.Context, month, year int) ([]models.DayOverride, error)
	UpdateByDate(ctx context.Context, date string, payload *models.DayOverrideUpdatePayload) (*mongo.UpdateResult, error)
	DeleteByDate(ctx context.Context, date string) (*mongo.DeleteResult, error)
	MarkedDaysMap(ctx context.Context, month, year int) (map[string]string, error)
	UpsertHoliday(ctx context.Context, date, name string) error
}

type dayOverrideRepository struct {
	collection *mongo.Collection
}

func NewDayOverrideRepository() DayOverrideRepository {
	return &dayOverrideRepository{
		collection: config.GetCollection(config.DayOverrideCollection),
	}
}

func (r *dayOverrideRepository) Create(ctx context.Context, override *models.DayOverride) (*mongo.InsertOneResult, error) {
	override.CreatedAt = time.Now()
	override.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, override)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("a day override for this date already exists")
		}
		return nil, fmt.Errorf("failed to create day override: %w", err)
	}
	return result, nil
}

func (r *dayOverrideRepository) FindByDate(ctx context.Context, date string) (*models.DayOverride, error) {
	var override models.DayOverride
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&override)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find day override: %w", err)
	}
	return &override, nil
}

func (r *dayOverrideRepository) FindByMonth(ctx context.Context, month, year int) ([]models.DayOverride, error) {
	first := summary.DateOf(month, year, 1)
	last := summary.DateOf(month, year, summary.DaysInMonth(month, year))

	cursor, err := r.collection.Find(ctx,
		bson.M{"date": bson.M{"$gte": first, "$lte": last}},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list day overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.DayOverride
	if err = cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode day overrides: %w", err)
	}

	if len(overrides) == 0 {
		return []models.DayOverride{}, nil
	}
	return overrides, nil
}

func (r *dayOverrideRepository) UpdateByDate(ctx context.Context, date string, payload *models.DayOverrideUpdatePayload) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"day_type":     payload.DayType,
		"holiday_type": payload.HolidayType,
		"description":  payload.Description,
		"updated_at":   time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"date": date}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update day override: %w", err)
	}
	return result, nil
}

func (r *dayOverrideRepository) DeleteByDate(ctx context.Context, date string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to delete day override: %w", err)
	}
	return result, nil
}

// MarkedDaysMap returns the month's overrides as a {date: dayType} map for
// the mobile calendar view.
func (r *dayOverrideRepository) MarkedDaysMap(ctx context.Context, month, year int) (map[string]string, error) {
	overrides, err := r.FindByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	marked := make(map[string]string, len(overrides))
	for _, o := range overrides {
		marked[o.Date] = o.DayType
	}
	return marked, nil
}

// UpsertHoliday writes a holiday override for date, overwriting whatever
// classification the date had. Used by the national-holiday import.
func (r *dayOverrideRepository) UpsertHoliday(ctx context.Context, date, name string) error {
	filter := bson.M{"date": date}
	update := bson.M{
		"$set": bson.M{
			"day_type":     models.DayTypeHoliday,
			"holiday_type": "national",
			"description":  name,
			"updated_at":   time.Now(),
		},
		"$setOnInsert": bson.M{
			"date":       date,
			"created_at": time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert holiday override: %w", err)
	}
	return nil
}
