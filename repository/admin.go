package repository

import (
	"context"
	"time"

	"go-storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
}

type mongoAdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepository{collection: db.Collection("admins")}
}

func (r *mongoAdminRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return nil, err
	}

	admin.ID = result.InsertedID.(primitive.ObjectID)

	return admin, nil
}

func (r *mongoAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *mongoAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}
