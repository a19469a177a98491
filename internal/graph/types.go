package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/inkpost/inkpost/internal/domain/category"
	"github.com/inkpost/inkpost/internal/domain/post"
	"github.com/inkpost/inkpost/internal/domain/user"
)

// UserResolver exposes the public shape of a user; the password hash is not
// reachable from the schema at all.
type UserResolver struct {
	u user.User
}

func (r *UserResolver) Username() string { return r.u.Username }

func (r *UserResolver) Email() string { return r.u.Email }

func (r *UserResolver) CreatedAt() graphql.Time { return graphql.Time{Time: r.u.CreatedAt} }

func (r *UserResolver) UpdatedAt() graphql.Time { return graphql.Time{Time: r.u.UpdatedAt} }

type PostResolver struct {
	p    post.Post
	root *Resolver
}

func (r *PostResolver) ID() graphql.ID { return graphql.ID(r.p.ID) }

func (r *PostResolver) Title() string { return r.p.Title }

func (r *PostResolver) Description() string { return r.p.Description }

// Category looks up the referenced category. Referential integrity is
// advisory, so a dangling reference resolves to null rather than an error.
func (r *PostResolver) Category(ctx context.Context) (*CategoryResolver, error) {
	c, err := r.root.categories.GetByID(ctx, r.p.CategoryID)

	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, nil
		}

		return nil, r.root.storeErr(ctx, "post.category", err)
	}

	return &CategoryResolver{c: c, root: r.root}, nil
}

type CategoryResolver struct {
	c    category.Category
	root *Resolver
}

func (r *CategoryResolver) ID() graphql.ID { return graphql.ID(r.c.ID) }

func (r *CategoryResolver) Name() string { return r.c.Name }

// Posts scans the posts collection for this category's id; there is no
// stored back-reference.
func (r *CategoryResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	items, err := r.root.posts.ListByCategory(ctx, r.c.ID)

	if err != nil {
		return nil, r.root.storeErr(ctx, "category.posts", err)
	}

	return r.root.postResolvers(items), nil
}

type AccessResolver struct {
	userID      string
	accessToken string
}

func (r *AccessResolver) ID() graphql.ID { return graphql.ID(r.userID) }

func (r *AccessResolver) AccessToken() string { return r.accessToken }

func (r *Resolver) postResolvers(items []post.Post) []*PostResolver {
	out := make([]*PostResolver, 0, len(items))

	for _, p := range items {
		out = append(out, &PostResolver{p: p, root: r})
	}

	return out
}
