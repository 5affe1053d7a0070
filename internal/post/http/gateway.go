package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	"github.com/atulub35/outsider-client-go/internal/post"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
)

type gateway struct {
	client pkghttp.Client
	state  *apierror.CallState
}

func NewGateway(client pkghttp.Client) (post.Gateway, *apierror.CallState) {
	state := &apierror.CallState{}
	return gateway{client: client, state: state}, state
}

func (g gateway) List(ctx context.Context, query string) ([]post.Post, error) {
	g.state.Begin()

	var body []postOut
	req := g.client.NewRequest(ctx).SetResult(&body)
	if query != "" {
		req.SetQueryParam("query", query)
	}

	resp, err := req.Get("/posts")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return nil, fmt.Errorf("request post.list: %w", err)
	}
	g.state.Finish(nil)

	posts := make([]post.Post, 0, len(body))
	for _, out := range body {
		posts = append(posts, out.toPost())
	}
	return posts, nil
}

func (g gateway) Get(ctx context.Context, id string) (post.Post, error) {
	g.state.Begin()

	var body postOut
	resp, err := g.client.NewRequest(ctx).
		SetResult(&body).
		SetPathParam("postID", id).
		Get("/posts/{postID}")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		var apiErr *apierror.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == nethttp.StatusNotFound {
			return post.Post{}, post.ErrPostNotFound
		}
		return post.Post{}, fmt.Errorf("request post.get: %w", err)
	}
	g.state.Finish(nil)

	return body.toPost(), nil
}

func (g gateway) Create(ctx context.Context, draft post.Draft) (post.Post, error) {
	g.state.Begin()

	var body postOut
	resp, err := g.client.NewRequest(ctx).
		SetBody(draftIn{Title: draft.Title, Content: draft.Content}).
		SetResult(&body).
		Post("/posts")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return post.Post{}, fmt.Errorf("request post.create: %w", err)
	}
	g.state.Finish(nil)

	return body.toPost(), nil
}

func (g gateway) Update(ctx context.Context, id string, draft post.Draft) (post.Post, error) {
	g.state.Begin()

	var body postOut
	resp, err := g.client.NewRequest(ctx).
		SetBody(draftIn{Title: draft.Title, Content: draft.Content}).
		SetResult(&body).
		SetPathParam("postID", id).
		Put("/posts/{postID}")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return post.Post{}, fmt.Errorf("request post.update: %w", err)
	}
	g.state.Finish(nil)

	return body.toPost(), nil
}

func (g gateway) Delete(ctx context.Context, id string) error {
	g.state.Begin()

	resp, err := g.client.NewRequest(ctx).
		SetPathParam("postID", id).
		Delete("/posts/{postID}")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return fmt.Errorf("request post.delete: %w", err)
	}
	g.state.Finish(nil)

	return nil
}

func (g gateway) ToggleLike(ctx context.Context, id string) error {
	g.state.Begin()

	resp, err := g.client.NewRequest(ctx).
		SetBody(struct{}{}).
		SetPathParam("postID", id).
		Post("/posts/{postID}/like")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return fmt.Errorf("request post.toggleLike: %w", err)
	}
	g.state.Finish(nil)

	return nil
}

type (
	draftIn struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}

	postOut struct {
		ID         string    `json:"id"`
		Title      string    `json:"title"`
		Content    string    `json:"content"`
		Author     authorOut `json:"author"`
		CreatedAt  time.Time `json:"createdAt"`
		IsLiked    bool      `json:"is_liked"`
		LikesCount int       `json:"likes_count"`
	}

	authorOut struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

func (o postOut) toPost() post.Post {
	return post.Post{
		ID:         o.ID,
		Title:      o.Title,
		Content:    o.Content,
		Author:     post.Author(o.Author),
		CreatedAt:  o.CreatedAt,
		IsLiked:    o.IsLiked,
		LikesCount: o.LikesCount,
	}
}
