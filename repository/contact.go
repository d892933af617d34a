package repository

import (
	"context"
	"time"

	"go-storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{collection: db.Collection("contacts")}
}

func (r *mongoContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return nil, err
	}

	contact.ID = result.InsertedID.(primitive.ObjectID)

	return contact, nil
}

func (r *mongoContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *mongoContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact); err != nil {
		return nil, err
	}

	return &contact, nil
}

func (r *mongoContactRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Contact, error) {
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var contact models.Contact
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&contact)
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (r *mongoContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
