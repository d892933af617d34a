// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"go-storefront/models"
	"go-storefront/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}

	return nil, args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	args := m.Called(ctx, admin)
	if v := args.Get(0); v != nil {
		return v.(*models.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if v := args.Get(0); v != nil {
		return v.(*models.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Admin), args.Error(1)
	}

	return nil, args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if v := args.Get(0); v != nil {
		return v.(*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) FindAllForAdmin(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Product, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) Create(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	args := m.Called(ctx, cart)
	if v := args.Get(0); v != nil {
		return v.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) UpdateItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (*models.Cart, error) {
	args := m.Called(ctx, userID, items)
	if v := args.Get(0); v != nil {
		return v.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) Clear(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	if v := args.Get(0); v != nil {
		return v.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Order, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	args := m.Called(ctx, contact)
	if v := args.Get(0); v != nil {
		return v.(*models.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactRepository) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) (*models.Contact, error) {
	args := m.Called(ctx, id, patch)
	if v := args.Get(0); v != nil {
		return v.(*models.Contact), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
