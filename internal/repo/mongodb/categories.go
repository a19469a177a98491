package mongodb

import (
	"context"
	"errors"

	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/domain/category"
	"github.com/inkpost/inkpost/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type categoryDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d categoryDoc) toDomain() category.Category {
	return category.Category{
		ID:   d.ID.Hex(),
		Name: d.Name,
	}
}

type CategoriesRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewCategoriesRepo(database *mongo.Database, prom *observability.Prom) *CategoriesRepo {
	return &CategoriesRepo{col: database.Collection("categories"), prom: prom}
}

func (r *CategoriesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *CategoriesRepo) Create(ctx context.Context, name string) (category.Category, error) {
	doc := categoryDoc{
		ID:   primitive.NewObjectID(),
		Name: name,
	}

	err := r.observe("categories.create", func() error {
		_, err := r.col.InsertOne(ctx, doc)
		return err
	})

	if err != nil {
		return category.Category{}, err
	}

	return doc.toDomain(), nil
}

func (r *CategoriesRepo) GetByID(ctx context.Context, id string) (category.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return category.Category{}, db.ErrInvalidID
	}

	var doc categoryDoc

	err = r.observe("categories.get_by_id", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return category.Category{}, category.ErrNotFound
		}

		return category.Category{}, err
	}

	return doc.toDomain(), nil
}
