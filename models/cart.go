package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a pending purchase intention. At most one item per
// product is allowed in a cart.
type CartItem struct {
	Product  ProductRef `bson:"product" json:"product"`
	Quantity int        `bson:"quantity" json:"quantity"`
}

// Cart is the per-user mutable collection of line items. It is created
// lazily on first use and cleared, not deleted, after checkout.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FindItem returns the index of the line item referencing productID,
// or -1. Matching goes through ProductRef.ProductID so expanded and
// raw references compare equal.
func (c *Cart) FindItem(productID primitive.ObjectID) int {
	for i, item := range c.Items {
		if item.Product.ProductID() == productID {
			return i
		}
	}

	return -1
}

// NormalizeItems returns a copy of items with every product reference
// reduced to its raw-id form, the shape that gets persisted.
func NormalizeItems(items []CartItem) []CartItem {
	normalized := make([]CartItem, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, CartItem{
			Product:  item.Product.Normalized(),
			Quantity: item.Quantity,
		})
	}

	return normalized
}
