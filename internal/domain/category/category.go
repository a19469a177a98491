package category

import "errors"

type Category struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

var ErrNotFound = errors.New("category not found")
