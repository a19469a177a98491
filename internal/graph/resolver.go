// Package graph binds the GraphQL schema to the document store. The root
// Resolver holds every dependency a resolver needs; resolvers themselves are
// stateless functions of (arguments, store).
package graph

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/inkpost/inkpost/internal/auth"
	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/domain/category"
	"github.com/inkpost/inkpost/internal/domain/post"
	"github.com/inkpost/inkpost/internal/domain/user"
	"github.com/inkpost/inkpost/internal/observability"
)

// Keep these interfaces small so tests can fake them easily.

type UsersStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
}

type PostsStore interface {
	Create(ctx context.Context, req post.CreateRequest) (post.Post, error)
	GetByID(ctx context.Context, id string) (post.Post, error)
	List(ctx context.Context) ([]post.Post, error)
	ListByCategory(ctx context.Context, categoryID string) ([]post.Post, error)
	Update(ctx context.Context, id string, req post.UpdateRequest) (post.Post, error)
	Delete(ctx context.Context, id string) (post.Post, error)
}

type CategoriesStore interface {
	Create(ctx context.Context, name string) (category.Category, error)
	GetByID(ctx context.Context, id string) (category.Category, error)
}

type Resolver struct {
	users      UsersStore
	posts      PostsStore
	categories CategoriesStore
	jwt        *auth.Manager
	validate   *validator.Validate
	bcryptCost int
	log        *slog.Logger
	prom       *observability.Prom
}

type Deps struct {
	Users      UsersStore
	Posts      PostsStore
	Categories CategoriesStore
	JWT        *auth.Manager
	BcryptCost int
	Log        *slog.Logger
	Prom       *observability.Prom // optional
}

func NewResolver(deps Deps) *Resolver {
	log := deps.Log

	if log == nil {
		log = slog.Default()
	}

	return &Resolver{
		users:      deps.Users,
		posts:      deps.Posts,
		categories: deps.Categories,
		jwt:        deps.JWT,
		validate:   validator.New(),
		bcryptCost: deps.BcryptCost,
		log:        log,
		prom:       deps.Prom,
	}
}

// observeOp records metrics for one root operation; used with a named error
// return so the deferred call sees the final outcome.
func (r *Resolver) observeOp(op string, start time.Time, err *error) {
	if r.prom != nil {
		r.prom.ObserveGraphQL(op, start, *err)
	}
}

// storeErr logs the raw store error and returns the opaque client-safe one.
func (r *Resolver) storeErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, db.ErrInvalidID) {
		return errBadInput("malformed id")
	}

	r.log.ErrorContext(ctx, "store operation failed", "op", op, "err", err)
	return errInternal()
}

func (r *Resolver) validateInput(req any) error {
	err := r.validate.Struct(req)

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors

	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errBadInput(fe.Field() + " failed " + fe.Tag() + " validation")
	}

	return errBadInput("invalid input")
}
