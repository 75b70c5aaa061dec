package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"school-management-backend/config"
	"school-management-backend/models"
)

type ClassScheduleRepository struct {
	collection *mongo.Collection
}

func NewClassScheduleRepository() *ClassScheduleRepository {
	return &ClassScheduleRepository{
		collection: config.GetCollection(config.ClassScheduleCollection),
	}
}

func (r *ClassScheduleRepository) Create(ctx context.Context, schedule *models.ClassSchedule) (*mongo.InsertOneResult, error) {
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to create class schedule: %w", err)
	}
	return result, nil
}

func (r *ClassScheduleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClassSchedule, error) {
	var schedule models.ClassSchedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find class schedule: %w", err)
	}
	return &schedule, nil
}

// FindRulesByClass returns the stored period rules of one class; the handler
// expands recurrences over the requested range.
func (r *ClassScheduleRepository) FindRulesByClass(ctx context.Context, className string) ([]models.ClassSchedule, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"class_name": className})
	if err != nil {
		return nil, fmt.Errorf("failed to list class schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.ClassSchedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode class schedules: %w", err)
	}

	if len(schedules) == 0 {
		return []models.ClassSchedule{}, nil
	}
	return schedules, nil
}

func (r *ClassScheduleRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.ClassScheduleUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Subject != "" {
		set["subject"] = payload.Subject
	}
	if payload.TeacherID != "" {
		teacherID, err := primitive.ObjectIDFromHex(payload.TeacherID)
		if err != nil {
			return nil, fmt.Errorf("invalid teacher id: %w", err)
		}
		set["teacher_id"] = teacherID
	}
	if payload.Date != "" {
		set["date"] = payload.Date
	}
	if payload.StartTime != "" {
		set["start_time"] = payload.StartTime
	}
	if payload.EndTime != "" {
		set["end_time"] = payload.EndTime
	}
	if payload.Room != "" {
		set["room"] = payload.Room
	}
	if payload.RecurrenceRule != "" {
		set["recurrence_rule"] = payload.RecurrenceRule
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update class schedule: %w", err)
	}
	return result, nil
}

func (r *ClassScheduleRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete class schedule: %w", err)
	}
	return result, nil
}
