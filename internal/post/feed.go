package post

import (
	"context"
	"fmt"
	"sync"
)

// Feed holds the locally displayed post collection. Like toggling is
// optimistic: the flip is applied before the call resolves and rolled
// back to the captured pre-toggle value when the call fails. The
// rollback strategy is applied uniformly, the feed never falls back
// to a full re-fetch to reconcile a like.
type Feed struct {
	gateway Gateway

	mu        sync.Mutex
	posts     []Post
	lastQuery string
}

func NewFeed(gateway Gateway) *Feed {
	return &Feed{gateway: gateway}
}

// Refresh replaces the collection with the backend's view for the
// given query.
func (f *Feed) Refresh(ctx context.Context, query string) error {
	posts, err := f.gateway.List(ctx, query)
	if err != nil {
		return fmt.Errorf("refresh feed: %w", err)
	}

	f.mu.Lock()
	f.posts = posts
	f.lastQuery = query
	f.mu.Unlock()

	return nil
}

func (f *Feed) Posts() []Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	posts := make([]Post, len(f.posts))
	copy(posts, f.posts)
	return posts
}

// Create pushes the draft to the backend, then refreshes the
// collection for the last query. Creation alone decides the outcome:
// when the follow-up refresh fails, the created post is appended
// locally and the refresh failure stays in the gateway call state.
func (f *Feed) Create(ctx context.Context, draft Draft) (Post, error) {
	created, err := f.gateway.Create(ctx, draft)
	if err != nil {
		return Post{}, err
	}

	f.mu.Lock()
	query := f.lastQuery
	f.mu.Unlock()

	if err := f.Refresh(ctx, query); err != nil {
		f.mu.Lock()
		f.posts = append(f.posts, created)
		f.mu.Unlock()
	}
	return created, nil
}

func (f *Feed) Update(ctx context.Context, id string, draft Draft) (Post, error) {
	updated, err := f.gateway.Update(ctx, id, draft)
	if err != nil {
		return Post{}, err
	}

	f.mu.Lock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i] = updated
			break
		}
	}
	f.mu.Unlock()

	return updated, nil
}

func (f *Feed) Delete(ctx context.Context, id string) error {
	err := f.gateway.Delete(ctx, id)
	if err != nil {
		return err
	}

	f.mu.Lock()
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			break
		}
	}
	f.mu.Unlock()

	return nil
}

// ToggleLike flips IsLiked and moves LikesCount by one in a single
// mutation, so the pair never drifts apart, then reconciles against
// the call result.
func (f *Feed) ToggleLike(ctx context.Context, id string) error {
	f.mu.Lock()
	idx := f.indexOf(id)
	if idx < 0 {
		f.mu.Unlock()
		return ErrPostNotFound
	}

	snapshot := f.posts[idx]
	f.posts[idx] = toggled(snapshot)
	f.mu.Unlock()

	err := f.gateway.ToggleLike(ctx, id)
	if err == nil {
		return nil
	}

	f.mu.Lock()
	if idx := f.indexOf(id); idx >= 0 {
		f.posts[idx] = snapshot
	}
	f.mu.Unlock()

	return fmt.Errorf("toggle like: %w", err)
}

func (f *Feed) indexOf(id string) int {
	for i := range f.posts {
		if f.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func toggled(p Post) Post {
	if p.IsLiked {
		p.IsLiked = false
		p.LikesCount--
	} else {
		p.IsLiked = true
		p.LikesCount++
	}
	return p
}
