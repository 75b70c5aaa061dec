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

type FeeRepository struct {
	collection *mongo.Collection
}

func NewFeeRepository() *FeeRepository {
	return &FeeRepository{
		collection: config.GetCollection(config.FeeCollection),
	}
}

func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) (*mongo.InsertOneResult, error) {
	fee.ID = primitive.NewObjectID()
	fee.Status = models.FeeStatusUnpaid
	fee.CreatedAt = time.Now()
	fee.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, fee)
	if err != nil {
		return nil, fmt.Errorf("failed to create fee: %w", err)
	}
	return result, nil
}

func (r *FeeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Fee, error) {
	var fee models.Fee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&fee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find fee: %w", err)
	}
	return &fee, nil
}

func (r *FeeRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Fee, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"student_id": studentID},
		options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list fees: %w", err)
	}
	defer cursor.Close(ctx)

	var fees []models.Fee
	if err = cursor.All(ctx, &fees); err != nil {
		return nil, fmt.Errorf("failed to decode fees: %w", err)
	}

	if len(fees) == 0 {
		return []models.Fee{}, nil
	}
	return fees, nil
}

// MarkPaid flips an unpaid fee to paid. The status filter makes a repeated
// payment call a no-op instead of overwriting the original payment record.
func (r *FeeRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, method, remarks string) (*mongo.UpdateResult, error) {
	now := time.Now()
	filter := bson.M{"_id": id, "status": models.FeeStatusUnpaid}
	update := bson.M{"$set": bson.M{
		"status":     models.FeeStatusPaid,
		"paid_at":    now,
		"method":     method,
		"remarks":    remarks,
		"updated_at": now,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to record fee payment: %w", err)
	}
	return result, nil
}

func (r *FeeRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete fee: %w", err)
	}
	return result, nil
}
