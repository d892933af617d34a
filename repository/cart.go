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

type CartRepository interface {
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	UpdateItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (*models.Cart, error)
	Clear(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
}

type mongoCartRepository struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		carts:    db.Collection("carts"),
		products: db.Collection("products"),
	}
}

func (r *mongoCartRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.carts.FindOne(ctx, bson.M{"user": userID}).Decode(&cart); err != nil {
		return nil, err
	}

	return r.populate(ctx, &cart)
}

func (r *mongoCartRepository) Create(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	now := time.Now()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	result, err := r.carts.InsertOne(ctx, cart)
	if err != nil {
		return nil, err
	}

	cart.ID = result.InsertedID.(primitive.ObjectID)

	return r.populate(ctx, cart)
}

// UpdateItems rewrites the whole item list. Items are normalized to
// raw product ids before persisting; the upsert covers the lazy-create
// path.
func (r *mongoCartRepository) UpdateItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (*models.Cart, error) {
	update := bson.M{
		"$set": bson.M{
			"items":     models.NormalizeItems(items),
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"user":      userID,
			"createdAt": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var cart models.Cart
	err := r.carts.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&cart)
	if err != nil {
		return nil, err
	}

	return r.populate(ctx, &cart)
}

func (r *mongoCartRepository) Clear(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	return r.UpdateItems(ctx, userID, []models.CartItem{})
}

// populate resolves line-item product references to full products in a
// single $in query. A reference to a product that no longer exists is
// left in raw-id form rather than dropped.
func (r *mongoCartRepository) populate(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if len(cart.Items) == 0 {
		return cart, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product.ProductID())
	}

	opts := options.Find().SetProjection(bson.M{
		"title": 1, "image": 1, "price": 1, "stock": 1,
	})

	cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for i, item := range cart.Items {
		if p, ok := byID[item.Product.ProductID()]; ok {
			cart.Items[i].Product = models.RefExpanded(p)
		}
	}

	return cart, nil
}
