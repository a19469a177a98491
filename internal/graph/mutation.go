package graph

import (
	"context"
	"errors"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/inkpost/inkpost/internal/domain/post"
	"github.com/inkpost/inkpost/internal/domain/user"
	"github.com/inkpost/inkpost/internal/security"
)

func (r *Resolver) Register(ctx context.Context, args struct {
	Username string
	Email    string
	Password string
}) (res *UserResolver, err error) {
	defer r.observeOp("register", time.Now(), &err)

	req := user.RegisterRequest{
		Username: args.Username,
		Email:    args.Email,
		Password: args.Password,
	}

	if verr := r.validateInput(req); verr != nil {
		return nil, verr
	}

	hash, herr := security.HashPassword(req.Password, r.bcryptCost)

	if herr != nil {
		r.log.ErrorContext(ctx, "password hash failed", "err", herr)
		return nil, errInternal()
	}

	u, cerr := r.users.Create(ctx, req.Username, req.Email, hash)

	if cerr != nil {
		if errors.Is(cerr, user.ErrEmailAlreadyUsed) {
			return nil, errEmailTaken()
		}

		return nil, r.storeErr(ctx, "register", cerr)
	}

	return &UserResolver{u: u}, nil
}

// Login verifies credentials and issues a signed access token. Unknown email
// and wrong password produce the same typed error.
func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (res *AccessResolver, err error) {
	defer r.observeOp("login", time.Now(), &err)

	u, gerr := r.users.GetByEmail(ctx, args.Email)

	if gerr != nil {
		if errors.Is(gerr, user.ErrNotFound) {
			return nil, errInvalidCredentials()
		}

		return nil, r.storeErr(ctx, "login", gerr)
	}

	if cerr := security.CheckPassword(u.PasswordHash, args.Password); cerr != nil {
		return nil, errInvalidCredentials()
	}

	token, terr := r.jwt.GenerateAccessToken(u.ID)

	if terr != nil {
		r.log.ErrorContext(ctx, "token signing failed", "err", terr)
		return nil, errInternal()
	}

	return &AccessResolver{userID: u.ID, accessToken: token}, nil
}

func (r *Resolver) AddPost(ctx context.Context, args struct {
	Title       string
	Description string
	Category    graphql.ID
}) (res *PostResolver, err error) {
	defer r.observeOp("addPost", time.Now(), &err)

	req := post.CreateRequest{
		Title:       args.Title,
		Description: args.Description,
		CategoryID:  string(args.Category),
	}

	if verr := r.validateInput(req); verr != nil {
		return nil, verr
	}

	p, cerr := r.posts.Create(ctx, req)

	if cerr != nil {
		return nil, r.storeErr(ctx, "addPost", cerr)
	}

	return &PostResolver{p: p, root: r}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID          graphql.ID
	Title       *string
	Description *string
}) (res *PostResolver, err error) {
	defer r.observeOp("updatePost", time.Now(), &err)

	req := post.UpdateRequest{
		Title:       args.Title,
		Description: args.Description,
	}

	if verr := r.validateInput(req); verr != nil {
		return nil, verr
	}

	p, uerr := r.posts.Update(ctx, string(args.ID), req)

	if uerr != nil {
		if errors.Is(uerr, post.ErrNotFound) {
			return nil, nil
		}

		return nil, r.storeErr(ctx, "updatePost", uerr)
	}

	return &PostResolver{p: p, root: r}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (res *PostResolver, err error) {
	defer r.observeOp("deletePost", time.Now(), &err)

	p, derr := r.posts.Delete(ctx, string(args.ID))

	if derr != nil {
		if errors.Is(derr, post.ErrNotFound) {
			return nil, nil
		}

		return nil, r.storeErr(ctx, "deletePost", derr)
	}

	return &PostResolver{p: p, root: r}, nil
}

func (r *Resolver) AddCategory(ctx context.Context, args struct{ Name string }) (res *CategoryResolver, err error) {
	defer r.observeOp("addCategory", time.Now(), &err)

	if args.Name == "" {
		return nil, errBadInput("name must not be empty")
	}

	c, cerr := r.categories.Create(ctx, args.Name)

	if cerr != nil {
		return nil, r.storeErr(ctx, "addCategory", cerr)
	}

	return &CategoryResolver{c: c, root: r}, nil
}
