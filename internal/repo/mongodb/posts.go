package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/domain/post"
	"github.com/inkpost/inkpost/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	Category    primitive.ObjectID  `bson:"category"`
	User        *primitive.ObjectID `bson:"user,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}

func (d postDoc) toDomain() post.Post {
	p := post.Post{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CategoryID:  d.Category.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.User != nil {
		p.UserID = d.User.Hex()
	}

	return p
}

type PostsRepo struct {
	col  *mongo.Collection
	prom *observability.Prom
}

func NewPostsRepo(database *mongo.Database, prom *observability.Prom) *PostsRepo {
	return &PostsRepo{col: database.Collection("posts"), prom: prom}
}

func (r *PostsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *PostsRepo) Create(ctx context.Context, req post.CreateRequest) (post.Post, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)

	if err != nil {
		return post.Post{}, db.ErrInvalidID
	}

	now := time.Now().UTC()

	doc := postDoc{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		// referential integrity is advisory: the category is not checked
		Category:  categoryID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = r.observe("posts.create", func() error {
		_, err := r.col.InsertOne(ctx, doc)
		return err
	})

	if err != nil {
		return post.Post{}, err
	}

	return doc.toDomain(), nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id string) (post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return post.Post{}, db.ErrInvalidID
	}

	var doc postDoc

	err = r.observe("posts.get_by_id", func() error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return post.Post{}, post.ErrNotFound
		}

		return post.Post{}, err
	}

	return doc.toDomain(), nil
}

// List returns every post in the store's natural order; no pagination.
func (r *PostsRepo) List(ctx context.Context) ([]post.Post, error) {
	return r.find(ctx, "posts.list", bson.M{})
}

// ListByCategory backs the Category.posts relationship field.
func (r *PostsRepo) ListByCategory(ctx context.Context, categoryID string) ([]post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)

	if err != nil {
		return nil, db.ErrInvalidID
	}

	return r.find(ctx, "posts.list_by_category", bson.M{"category": oid})
}

func (r *PostsRepo) find(ctx context.Context, op string, filter bson.M) ([]post.Post, error) {
	var docs []postDoc

	err := r.observe(op, func() error {
		cursor, err := r.col.Find(ctx, filter)

		if err != nil {
			return err
		}

		return cursor.All(ctx, &docs)
	})

	if err != nil {
		return nil, err
	}

	out := make([]post.Post, 0, len(docs))

	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}

	return out, nil
}

func (r *PostsRepo) Update(ctx context.Context, id string, req post.UpdateRequest) (post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return post.Post{}, db.ErrInvalidID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}

	if req.Title != nil {
		set["title"] = *req.Title
	}

	if req.Description != nil {
		set["description"] = *req.Description
	}

	var doc postDoc

	err = r.observe("posts.update", func() error {
		return r.col.FindOneAndUpdate(
			ctx,
			bson.M{"_id": oid},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return post.Post{}, post.ErrNotFound
		}

		return post.Post{}, err
	}

	return doc.toDomain(), nil
}

// Delete removes the post and returns its final state.
func (r *PostsRepo) Delete(ctx context.Context, id string) (post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return post.Post{}, db.ErrInvalidID
	}

	var doc postDoc

	err = r.observe("posts.delete", func() error {
		return r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	})

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return post.Post{}, post.ErrNotFound
		}

		return post.Post{}, err
	}

	return doc.toDomain(), nil
}
