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

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		collection: config.GetCollection(config.EventCollection),
	}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*mongo.InsertOneResult, error) {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return result, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return &event, nil
}

// FindAllRules returns every stored event rule; recurrence expansion over a
// date range happens in the handler.
func (r *EventRepository) FindAllRules(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	if len(events) == 0 {
		return []models.Event{}, nil
	}
	return events, nil
}

func (r *EventRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.EventUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.Description != "" {
		set["description"] = payload.Description
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
	if payload.Audience != "" {
		set["audience"] = payload.Audience
	}
	if payload.RecurrenceRule != "" {
		set["recurrence_rule"] = payload.RecurrenceRule
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return result, nil
}

func (r *EventRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}
	return result, nil
}
