package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	"github.com/atulub35/outsider-client-go/internal/post"
	posthttp "github.com/atulub35/outsider-client-go/internal/post/http"
	"github.com/atulub35/outsider-client-go/internal/session"
	sessionhttp "github.com/atulub35/outsider-client-go/internal/session/http"
	sessionmock "github.com/atulub35/outsider-client-go/internal/session/mock"
	pkgevent "github.com/atulub35/outsider-client-go/pkg/event"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
	pkglogstub "github.com/atulub35/outsider-client-go/pkg/log/stub"
	pkgtime "github.com/atulub35/outsider-client-go/pkg/time"
)

func TestGateway_List_AttachesBearerToken(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "1", "title": "first"}})
	}))
	defer server.Close()

	store := session.NewMemoryTokenStore()
	require.NoError(t, store.Save("stored-token"))

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("outsider", server.URL),
		pkghttp.WithBearerAuth(store.Token),
	)

	gateway, state := posthttp.NewGateway(client)
	posts, err := gateway.List(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Bearer stored-token", authHeader)
	require.Len(t, posts, 1)
	assert.Equal(t, post.Post{ID: "1", Title: "first"}, posts[0])
	assert.False(t, state.Loading())
	assert.Empty(t, state.ErrorMessage())
}

func TestGateway_List_OmitsHeaderWithoutToken(t *testing.T) {
	var hasAuthHeader bool
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, hasAuthHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("outsider", server.URL),
		pkghttp.WithBearerAuth(session.NewMemoryTokenStore().Token),
	)

	gateway, _ := posthttp.NewGateway(client)
	_, err := gateway.List(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, hasAuthHeader)
}

// A rejected credential anywhere in the client tears the whole session
// down: token cleared, state dropped to unauthenticated, one forced
// navigation to login, and no error message left behind for the view.
func TestGateway_UnauthorizedResponse_InvalidatesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu          sync.Mutex
		authHeaders []string
	)
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		mu.Lock()
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		mu.Unlock()
		w.WriteHeader(nethttp.StatusUnauthorized)
	}))
	defer server.Close()

	store := session.NewMemoryTokenStore()
	navigator := sessionmock.NewNavigator(ctrl)
	navigator.EXPECT().ToLogin(gomock.Any()).Times(1)
	logger := pkglogstub.NewLogger()

	var dispatcher pkgevent.Dispatcher
	client := pkghttp.NewClient(
		pkghttp.WithClientDestination("outsider", server.URL),
		pkghttp.WithBearerAuth(store.Token),
		pkghttp.WithUnauthorizedHandler(func(ctx context.Context) {
			_ = store.Clear()
			_ = dispatcher.Dispatch(ctx, []pkgevent.Event{session.NewEventSessionInvalidated()})
		}),
	)

	manager := session.NewManager(store, sessionhttp.NewAuthGateway(client), navigator, pkgtime.NewAdjustableClock(), logger)
	dispatcher = pkgevent.NewDispatcher(map[string][]pkgevent.Handler{
		session.EventTypeSessionInvalidated: {manager.InvalidationHandler()},
	})

	require.NoError(t, manager.Login(session.User{ID: "1", Name: "somebody"}, "stored-token"))
	require.True(t, manager.Session().IsAuthenticated())

	gateway, state := posthttp.NewGateway(client)

	ctx := context.Background()
	_, err := gateway.List(ctx, "")
	require.Error(t, err)
	assert.True(t, apierror.IsAuth(err))

	_, ok := store.Token()
	assert.False(t, ok)
	assert.Equal(t, session.StateUnauthenticated, manager.Session().State)
	assert.Empty(t, state.ErrorMessage())
	assert.False(t, state.Loading())

	// A second rejected call finds the session already settled: the
	// token header is gone and no further navigation happens.
	_, err = gateway.List(ctx, "")
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, authHeaders, 2)
	assert.Equal(t, "Bearer stored-token", authHeaders[0])
	assert.Empty(t, authHeaders[1])
}

func TestGateway_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("outsider", server.URL))

	gateway, _ := posthttp.NewGateway(client)
	_, err := gateway.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
