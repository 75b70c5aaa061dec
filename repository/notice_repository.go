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

type NoticeRepository struct {
	collection *mongo.Collection
}

func NewNoticeRepository() *NoticeRepository {
	return &NoticeRepository{
		collection: config.GetCollection(config.NoticeCollection),
	}
}

func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (*mongo.InsertOneResult, error) {
	notice.ID = primitive.NewObjectID()
	notice.CreatedAt = time.Now()
	notice.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, notice)
	if err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return result, nil
}

// FindForAudience lists notices visible to a role, newest first. Management
// sees everything.
func (r *NoticeRepository) FindForAudience(ctx context.Context, role string) ([]models.Notice, error) {
	filter := bson.M{}
	switch role {
	case "student":
		filter["audience"] = bson.M{"$in": []string{"all", "students"}}
	case "teacher":
		filter["audience"] = bson.M{"$in": []string{"all", "teachers"}}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer cursor.Close(ctx)

	var notices []models.Notice
	if err = cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("failed to decode notices: %w", err)
	}

	if len(notices) == 0 {
		return []models.Notice{}, nil
	}
	return notices, nil
}

func (r *NoticeRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, payload *models.NoticeUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Title != "" {
		set["title"] = payload.Title
	}
	if payload.Body != "" {
		set["body"] = payload.Body
	}
	if payload.Audience != "" {
		set["audience"] = payload.Audience
	}
	if payload.Date != "" {
		set["date"] = payload.Date
	}

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return result, nil
}

func (r *NoticeRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete notice: %w", err)
	}
	return result, nil
}
