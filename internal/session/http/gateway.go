package http

import (
	"context"
	"fmt"

	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
	"github.com/atulub35/outsider-client-go/internal/session"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
)

type authGateway struct {
	client pkghttp.Client
}

func NewAuthGateway(client pkghttp.Client) session.AuthGateway {
	return authGateway{client: client}
}

func (g authGateway) Register(ctx context.Context, name, email, password string) (session.Credentials, error) {
	var body credentialsOut
	resp, err := g.client.NewRequest(ctx).
		SetBody(registerIn{Name: name, Email: email, Password: password}).
		SetResult(&body).
		Post("/auth/register")
	if err := apierror.FromResponse(resp, err); err != nil {
		return session.Credentials{}, fmt.Errorf("request auth.register: %w", err)
	}

	return credentialsFromResponse(body)
}

func (g authGateway) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	var body credentialsOut
	resp, err := g.client.NewRequest(ctx).
		SetBody(loginIn{Email: email, Password: password}).
		SetResult(&body).
		Post("/auth/login")
	if err := apierror.FromResponse(resp, err); err != nil {
		return session.Credentials{}, fmt.Errorf("request auth.login: %w", err)
	}

	return credentialsFromResponse(body)
}

func (g authGateway) Me(ctx context.Context) (session.User, error) {
	var body userOut
	resp, err := g.client.NewRequest(ctx).
		SetResult(&body).
		Get("/auth/me")
	if err := apierror.FromResponse(resp, err); err != nil {
		return session.User{}, fmt.Errorf("request auth.me: %w", err)
	}

	user, err := userFromResponse(body)
	if err != nil {
		return session.User{}, fmt.Errorf("auth.me response: %w", err)
	}

	return user, nil
}

func credentialsFromResponse(body credentialsOut) (session.Credentials, error) {
	user, err := userFromResponse(body.User)
	if err != nil {
		return session.Credentials{}, fmt.Errorf("auth response: %w", err)
	}
	if body.Token == "" {
		return session.Credentials{}, &apierror.Error{
			Kind:    apierror.KindValidation,
			Message: "auth response misses token",
		}
	}

	return session.Credentials{User: user, Token: body.Token}, nil
}

func userFromResponse(body userOut) (session.User, error) {
	if body.ID == "" {
		return session.User{}, &apierror.Error{
			Kind:    apierror.KindValidation,
			Message: "auth response misses user id",
		}
	}

	return session.User{
		ID:    body.ID,
		Name:  body.Name,
		Email: body.Email,
	}, nil
}

type (
	registerIn struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	credentialsOut struct {
		User  userOut `json:"user"`
		Token string  `json:"token"`
	}

	userOut struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)
