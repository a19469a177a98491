package post

import (
	"errors"
	"time"
)

type Post struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	// reference to the owning category, resolved on demand
	CategoryID string    `bson:"category" json:"category"`
	// reference to the author; never populated by any mutation today
	UserID    string    `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

var ErrNotFound = errors.New("post not found")

type CreateRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"required,min=1,max=5000"`
	CategoryID  string `validate:"required"`
}

// with pointers if optional, it will be nil
type UpdateRequest struct {
	Title       *string `validate:"omitempty,min=1,max=200"`
	Description *string `validate:"omitempty,min=1,max=5000"`
}
