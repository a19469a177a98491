package graph

import (
	"context"
	"errors"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/inkpost/inkpost/internal/db"
	"github.com/inkpost/inkpost/internal/domain/post"
	"github.com/inkpost/inkpost/internal/domain/user"
)

// User resolves the caller's own record from a presented access token.
// Verification failure is a hard, typed error; it never falls through to an
// unresolved lookup.
func (r *Resolver) User(ctx context.Context, args struct{ AccessToken string }) (res *UserResolver, err error) {
	defer r.observeOp("user", time.Now(), &err)

	claims, verr := r.jwt.VerifyAccessToken(args.AccessToken)

	if verr != nil {
		return nil, errUnauthenticated()
	}

	u, gerr := r.users.GetByID(ctx, claims.User.ID)

	if gerr != nil {
		// a verified token naming no stored user is still not authenticated
		if errors.Is(gerr, user.ErrNotFound) || errors.Is(gerr, db.ErrInvalidID) {
			return nil, errUnauthenticated()
		}

		return nil, r.storeErr(ctx, "user", gerr)
	}

	return &UserResolver{u: u}, nil
}

func (r *Resolver) UserByID(ctx context.Context, args struct{ ID graphql.ID }) (res *UserResolver, err error) {
	defer r.observeOp("userById", time.Now(), &err)

	u, gerr := r.users.GetByID(ctx, string(args.ID))

	if gerr != nil {
		if errors.Is(gerr, user.ErrNotFound) {
			return nil, nil
		}

		return nil, r.storeErr(ctx, "userById", gerr)
	}

	return &UserResolver{u: u}, nil
}

func (r *Resolver) Posts(ctx context.Context) (res []*PostResolver, err error) {
	defer r.observeOp("posts", time.Now(), &err)

	items, lerr := r.posts.List(ctx)

	if lerr != nil {
		return nil, r.storeErr(ctx, "posts", lerr)
	}

	return r.postResolvers(items), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (res *PostResolver, err error) {
	defer r.observeOp("post", time.Now(), &err)

	p, gerr := r.posts.GetByID(ctx, string(args.ID))

	if gerr != nil {
		if errors.Is(gerr, post.ErrNotFound) {
			return nil, nil
		}

		return nil, r.storeErr(ctx, "post", gerr)
	}

	return &PostResolver{p: p, root: r}, nil
}
