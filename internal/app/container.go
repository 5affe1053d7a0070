package app

import (
	"context"
	"errors"

	"github.com/atulub35/outsider-client-go/internal/metrics"
	metricshttp "github.com/atulub35/outsider-client-go/internal/metrics/http"
	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	internalhttp "github.com/atulub35/outsider-client-go/internal/pkg/http"
	"github.com/atulub35/outsider-client-go/internal/post"
	posthttp "github.com/atulub35/outsider-client-go/internal/post/http"
	"github.com/atulub35/outsider-client-go/internal/search"
	"github.com/atulub35/outsider-client-go/internal/session"
	sessionhttp "github.com/atulub35/outsider-client-go/internal/session/http"
	"github.com/atulub35/outsider-client-go/internal/user"
	userhttp "github.com/atulub35/outsider-client-go/internal/user/http"
	pkgenv "github.com/atulub35/outsider-client-go/pkg/env"
	pkgevent "github.com/atulub35/outsider-client-go/pkg/event"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
	pkglazy "github.com/atulub35/outsider-client-go/pkg/lazy"
	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
	pkgtime "github.com/atulub35/outsider-client-go/pkg/time"
)

// Container wires the whole client. The session manager, token store
// and invalidation dispatcher are process-wide singletons with an
// explicit lifecycle: construct, Initialize, use, discard.
type Container struct {
	Session *session.Manager
	Auth    session.AuthGateway
	Posts   post.Gateway
	Feed    *post.Feed
	Users   user.Gateway
	Search  *search.Aggregator
	Metrics *metrics.Poller

	PostsCallState   *apierror.CallState
	UsersCallState   *apierror.CallState
	MetricsCallState *apierror.CallState
}

// MustInitContainer builds the client against the given base URL, or
// against the OUTSIDER_SERVICE_URL environment when baseURL is empty.
// SEARCH_DEBOUNCE and METRICS_POLL_INTERVAL tune the search debounce
// and the metrics poll interval.
func MustInitContainer(
	clients *internalhttp.ClientFactory,
	baseURL string,
	store session.TokenStore,
	navigator session.Navigator,
	clock pkgtime.Clock,
	logger pkglog.Logger,
) *Container {
	// The unauthorized hook needs the dispatcher, the dispatcher
	// needs the session manager, the manager needs a gateway built on
	// the client carrying the hook. The lazy loader breaks the cycle:
	// by the time any request can fail, wiring has completed.
	var dispatcher pkgevent.Dispatcher
	dispatcherLoader := pkglazy.New(func() (pkgevent.Dispatcher, error) {
		if dispatcher == nil {
			return nil, errors.New("invalidation dispatcher is not wired yet")
		}
		return dispatcher, nil
	})

	clientOpts := []pkghttp.ClientOption{
		pkghttp.WithBearerAuth(store.Token),
		pkghttp.WithUnauthorizedHandler(func(ctx context.Context) {
			if err := store.Clear(); err != nil {
				logger.WithError(err).Warn(ctx, "failed to clear token on unauthorized response")
			}

			err := dispatcherLoader.MustLoad().Dispatch(ctx, []pkgevent.Event{session.NewEventSessionInvalidated()})
			if err != nil {
				logger.WithError(err).Error(ctx, "failed to dispatch session invalidation")
			}
		}),
	}

	var client pkghttp.Client
	if baseURL != "" {
		client = clients.InitClient(internalhttp.DestinationOutsider, baseURL, clientOpts...)
	} else {
		client = clients.MustInitClient(internalhttp.DestinationOutsider, clientOpts...)
	}

	authGateway := sessionhttp.NewAuthGateway(client)
	manager := session.NewManager(store, authGateway, navigator, clock, logger)
	dispatcher = pkgevent.NewDispatcher(map[string][]pkgevent.Handler{
		session.EventTypeSessionInvalidated: {manager.InvalidationHandler()},
	})

	postGateway, postsState := posthttp.NewGateway(client)
	userGateway, usersState := userhttp.NewGateway(client)
	metricsGateway, metricsState := metricshttp.NewGateway(client)

	searchDebounce := pkgenv.ParseDurationDefault("SEARCH_DEBOUNCE", search.DefaultDebounce)
	metricsPollInterval := pkgenv.ParseDurationDefault("METRICS_POLL_INTERVAL", metrics.DefaultPollInterval)

	return &Container{
		Session: manager,
		Auth:    authGateway,
		Posts:   postGateway,
		Feed:    post.NewFeed(postGateway),
		Users:   userGateway,
		Search:  search.NewAggregator(postGateway, userGateway, logger, search.WithDebounce(searchDebounce)),
		Metrics: metrics.NewPoller(metricsGateway, logger, metrics.WithPollInterval(metricsPollInterval)),

		PostsCallState:   postsState,
		UsersCallState:   usersState,
		MetricsCallState: metricsState,
	}
}
