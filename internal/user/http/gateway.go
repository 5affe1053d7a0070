package http

import (
	"context"
	"fmt"

	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	"github.com/atulub35/outsider-client-go/internal/user"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
)

type gateway struct {
	client pkghttp.Client
	state  *apierror.CallState
}

func NewGateway(client pkghttp.Client) (user.Gateway, *apierror.CallState) {
	state := &apierror.CallState{}
	return gateway{client: client, state: state}, state
}

func (g gateway) List(ctx context.Context, query string) ([]user.User, error) {
	g.state.Begin()

	var body []userOut
	req := g.client.NewRequest(ctx).SetResult(&body)
	if query != "" {
		req.SetQueryParam("query", query)
	}

	resp, err := req.Get("/users")
	if err := apierror.FromResponse(resp, err); err != nil {
		g.state.Finish(err)
		return nil, fmt.Errorf("request user.list: %w", err)
	}
	g.state.Finish(nil)

	users := make([]user.User, 0, len(body))
	for _, out := range body {
		users = append(users, user.User(out))
	}
	return users, nil
}

type userOut struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
