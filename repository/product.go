package repository

import (
	"context"
	"regexp"
	"time"

	"go-storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductFilter composes the public listing filters. Featured is a
// pointer so "not filtered" and "featured=false" stay distinct.
type ProductFilter struct {
	Category string
	Featured *bool
	Search   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	FindAllForAdmin(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{collection: db.Collection("products")}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	product.ID = result.InsertedID.(primitive.ObjectID)

	return product, nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

// FindAll lists active products only; the filters narrow the result
// further. Search is a case-insensitive substring match against title
// or description.
func (r *mongoProductRepository) FindAll(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := bson.M{"isActive": true}

	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	return r.find(ctx, query)
}

// FindAllForAdmin bypasses the isActive restriction so soft-hidden
// products stay visible in the back office.
func (r *mongoProductRepository) FindAllForAdmin(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoProductRepository) find(ctx context.Context, query bson.M) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *mongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Product, error) {
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
