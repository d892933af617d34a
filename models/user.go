package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered storefront customer
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	DateOfBirth string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar      string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Public returns the profile shape sent to clients, without the
// password hash.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"dateOfBirth": u.DateOfBirth,
		"location":    u.Location,
		"phone":       u.Phone,
		"avatar":      u.Avatar,
	}
}
