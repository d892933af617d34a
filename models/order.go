package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus reports whether s is one of the five recognized
// status values.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}

	return "", false
}

// orderTransitions is the fulfilment state machine:
// pending -> processing -> shipped -> delivered, with cancellation
// allowed from any non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// status change.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// BillingDetails is the checkout address block captured on the order.
type BillingDetails struct {
	FirstName     string `bson:"firstName" json:"firstName"`
	LastName      string `bson:"lastName" json:"lastName"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone" json:"phone"`
	Province      string `bson:"province" json:"province"`
	District      string `bson:"district" json:"district"`
	City          string `bson:"city" json:"city"`
	StreetAddress string `bson:"streetAddress" json:"streetAddress"`
	ZipCode       string `bson:"zipCode" json:"zipCode"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// OrderItem snapshots a purchased line. Price is captured at order
// time and must never be recomputed from the live product.
type OrderItem struct {
	Product  ProductRef `bson:"product" json:"product"`
	Quantity int        `bson:"quantity" json:"quantity"`
	Price    float64    `bson:"price" json:"price"`
}

// Order is the immutable record of a completed checkout.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"user" json:"userId"`
	User           *User              `bson:"-" json:"user,omitempty"`
	Items          []OrderItem        `bson:"items" json:"items"`
	BillingDetails BillingDetails     `bson:"billingDetails" json:"billingDetails"`
	TotalAmount    float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingCost   float64            `bson:"shippingCost" json:"shippingCost"`
	PaymentMethod  string             `bson:"paymentMethod" json:"paymentMethod"`
	Status         OrderStatus        `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
