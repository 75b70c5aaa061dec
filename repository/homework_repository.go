package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-management-backend/config"
	"school-management-backend/models"
)

type HomeworkRepository struct {
	collection *mongo.Collection
}

func NewHomeworkRepository() *HomeworkRepository {
	return &HomeworkRepository{
		collection: config.GetCollection(config.HomeworkCollection),
	}
}

func (r *HomeworkRepository) Create(ctx context.Context, homework *models.Homework) (*mongo.InsertOneResult, error) {
	homework.ID = primitive.NewObjectID()
	homework.CreatedAt = time.Now()
	homework.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, homework)
	if err != nil {
		return nil, fmt.Errorf("failed to create homework: %w", err)
	}
	return result, nil
}

func (r *HomeworkRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Homework, error) {
	var homework models.Homework
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&homework)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find homework: %w", err)
	}
	return &homework, nil
}

// FindByClass lists a class's homework, optionally only entries due on or
// after dueAfter ("2006-01-02").
func (r *HomeworkRepository) FindByClass(ctx context.Context, className, dueAfter string) ([]models.Homework, error) {
	filter := bson.M{"class_name": className}
	if dueAfter != "" {
		filter["due_date"] = bson.M{"$gte": dueAfter}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list homework: %w", err)
	}
	defer cursor.Close(ctx)

	var homeworks []models.Homework
	if err = cursor.All(ctx, &homeworks); err != nil {
		return nil, fmt.Errorf("failed to decode homework: %w", err)
	}

	if len(homeworks) == 0 {
		return []models.Homework{}, nil
	}
	return homeworks, nil
}

func (r *HomeworkRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.HomeworkUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Subject != "" {
		set["subject"] = payload.Subject
	}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.Description != "" {
		set["description"] = payload.Description
	}
	if payload.DueDate != "" {
		set["due_date"] = payload.DueDate
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update homework: %w", err)
	}
	return result, nil
}

func (r *HomeworkRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete homework: %w", err)
	}
	return result, nil
}
