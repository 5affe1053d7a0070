//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Gateway=Gateway"
package post

import (
	"context"
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

type (
	Post struct {
		ID         string
		Title      string
		Content    string
		Author     Author
		CreatedAt  time.Time
		IsLiked    bool
		LikesCount int
	}

	Author struct {
		ID   string
		Name string
	}

	Draft struct {
		Title   string
		Content string
	}

	// Gateway is the posts resource surface of the backend.
	Gateway interface {
		List(ctx context.Context, query string) ([]Post, error)
		Get(ctx context.Context, id string) (Post, error)
		Create(ctx context.Context, draft Draft) (Post, error)
		Update(ctx context.Context, id string, draft Draft) (Post, error)
		Delete(ctx context.Context, id string) error
		ToggleLike(ctx context.Context, id string) error
	}
)
