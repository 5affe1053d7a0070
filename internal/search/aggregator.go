package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/atulub35/outsider-client-go/internal/post"
	"github.com/atulub35/outsider-client-go/internal/user"
	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
	pkgworker "github.com/atulub35/outsider-client-go/pkg/worker"
)

const DefaultDebounce = 300 * time.Millisecond

// ResultSet is replaced wholesale per completed query, never merged
// incrementally.
type ResultSet struct {
	Posts []post.Post
	Users []user.User
}

type AggregatorOption func(*Aggregator)

func WithDebounce(d time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		a.debounce = d
	}
}

// Aggregator fans a query out to the posts and users endpoints
// concurrently, debounced per keystroke. Completion order of rounds is
// not guaranteed by the transport, so every round carries a generation
// number and only the latest generation may commit its result.
type Aggregator struct {
	posts    post.Gateway
	users    user.Gateway
	logger   pkglog.Logger
	debounce time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	generation  uint64
	results     ResultSet
	subscribers []func(ResultSet)
}

func NewAggregator(posts post.Gateway, users user.Gateway, logger pkglog.Logger, opts ...AggregatorOption) *Aggregator {
	aggregator := &Aggregator{
		posts:    posts,
		users:    users,
		logger:   logger,
		debounce: DefaultDebounce,
	}

	for _, opt := range opts {
		opt(aggregator)
	}

	return aggregator
}

// SetQuery registers a keystroke: it resets the debounce timer so the
// fetch fires only after a quiet period. A blank query short-circuits
// to an empty result set without touching the network and supersedes
// any round still in flight.
func (a *Aggregator) SetQuery(ctx context.Context, query string) {
	a.mu.Lock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	a.generation++
	generation := a.generation

	if strings.TrimSpace(query) == "" {
		a.results = ResultSet{}
		subscribers := make([]func(ResultSet), len(a.subscribers))
		copy(subscribers, a.subscribers)
		a.mu.Unlock()

		for _, fn := range subscribers {
			fn(ResultSet{})
		}
		return
	}

	a.timer = time.AfterFunc(a.debounce, func() {
		a.runRound(ctx, query, generation)
	})
	a.mu.Unlock()
}

func (a *Aggregator) Results() ResultSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.results
}

// Subscribe registers a result observer, called after every committed
// round.
func (a *Aggregator) Subscribe(fn func(ResultSet)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

// Close cancels a pending debounced round.
func (a *Aggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.generation++
}

// runRound performs the dual fetch. The result set is atomic: when
// either fetch fails the whole round fails and the previous result
// set is retained.
func (a *Aggregator) runRound(ctx context.Context, query string, generation uint64) {
	var (
		posts []post.Post
		users []user.User
	)

	group := pkgworker.NewFailFastGroup(ctx)
	group.Do(func(ctx context.Context) error {
		var err error
		posts, err = a.posts.List(ctx, query)
		return err
	})
	group.Do(func(ctx context.Context) error {
		var err error
		users, err = a.users.List(ctx, query)
		return err
	})

	err := group.Wait()
	if err != nil {
		a.logger.WithError(err).WithField("query", query).Warn(ctx, "search round failed")
		return
	}

	a.commit(generation, ResultSet{Posts: posts, Users: users})
}

func (a *Aggregator) commit(generation uint64, results ResultSet) {
	a.mu.Lock()

	// A newer query has started since this round fired, its result
	// owns the state now.
	if generation != a.generation {
		a.mu.Unlock()
		return
	}

	a.results = results
	subscribers := make([]func(ResultSet), len(a.subscribers))
	copy(subscribers, a.subscribers)
	a.mu.Unlock()

	for _, fn := range subscribers {
		fn(results)
	}
}
