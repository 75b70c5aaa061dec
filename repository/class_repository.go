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

type ClassRepository interface {
	CreateClass(ctx context.Context, class *models.SchoolClass) (*mongo.InsertOneResult, error)
	GetAllClasses(ctx context.Context) ([]models.SchoolClass, error)
	GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.SchoolClass, error)
	FindClassByName(ctx context.Context, name string) (*models.SchoolClass, error)
	UpdateClass(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteClass(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type classRepository struct {
	collection *mongo.Collection
}

func NewClassRepository() ClassRepository {
	return &classRepository{
		collection: config.GetCollection(config.ClassCollection),
	}
}

func (r *classRepository) CreateClass(ctx context.Context, class *models.SchoolClass) (*mongo.InsertOneResult, error) {
	class.ID = primitive.NewObjectID()
	class.CreatedAt = time.Now()
	class.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("class name already exists")
		}
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return result, nil
}

func (r *classRepository) GetAllClasses(ctx context.Context) ([]models.SchoolClass, error) {
	var classes []models.SchoolClass
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "grade", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find classes: %w", err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("failed to decode classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) GetClassByID(ctx context.Context, id primitive.ObjectID) (*models.SchoolClass, error) {
	var class models.SchoolClass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("class not found")
		}
		return nil, fmt.Errorf("failed to find class by ID: %w", err)
	}
	return &class, nil
}

func (r *classRepository) FindClassByName(ctx context.Context, name string) (*models.SchoolClass, error) {
	var class models.SchoolClass
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&class)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find class by name: %w", err)
	}
	return &class, nil
}

func (r *classRepository) UpdateClass(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}
	return result, nil
}

func (r *classRepository) DeleteClass(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete class: %w", err)
	}
	return result, nil
}
