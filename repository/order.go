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

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Order, error)
}

type mongoOrderRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
	users    *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
		users:    db.Collection("users"),
	}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	order.ID = result.InsertedID.(primitive.ObjectID)

	r.populate(ctx, order)

	return order, nil
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}

	r.populate(ctx, &order)

	return &order, nil
}

func (r *mongoOrderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *mongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoOrderRepository) find(ctx context.Context, query bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	for i := range orders {
		r.populate(ctx, &orders[i])
	}

	return orders, nil
}

func (r *mongoOrderRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Order, error) {
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := r.orders.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": patch}, opts).Decode(&order)
	if err != nil {
		return nil, err
	}

	r.populate(ctx, &order)

	return &order, nil
}

// populate expands item product references (title, image, price) and
// attaches the owning user (name, email) for display. Prices on the
// line items themselves are never touched: those are the frozen
// snapshot values. Population is best-effort; a missing product stays
// a raw id.
func (r *mongoOrderRepository) populate(ctx context.Context, order *models.Order) {
	if len(order.Items) > 0 {
		ids := make([]primitive.ObjectID, 0, len(order.Items))
		for _, item := range order.Items {
			ids = append(ids, item.Product.ProductID())
		}

		opts := options.Find().SetProjection(bson.M{"title": 1, "image": 1, "price": 1})

		cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
		if err == nil {
			var products []models.Product
			if err := cursor.All(ctx, &products); err == nil {
				byID := make(map[primitive.ObjectID]*models.Product, len(products))
				for i := range products {
					byID[products[i].ID] = &products[i]
				}

				for i, item := range order.Items {
					if p, ok := byID[item.Product.ProductID()]; ok {
						order.Items[i].Product = models.RefExpanded(p)
					}
				}
			}
		}
	}

	var user models.User
	opts := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})
	if err := r.users.FindOne(ctx, bson.M{"_id": order.UserID}, opts).Decode(&user); err == nil {
		order.User = &user
	}
}
