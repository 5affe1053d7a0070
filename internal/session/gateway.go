//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AuthGateway=AuthGateway,Navigator=Navigator"
package session

import (
	"context"
)

type Credentials struct {
	User  User
	Token string
}

// AuthGateway is the backend authentication surface. Register and
// Login validate credentials server-side and hand back a fresh token,
// Me validates the currently stored one.
type AuthGateway interface {
	Register(ctx context.Context, name, email, password string) (Credentials, error)
	Login(ctx context.Context, email, password string) (Credentials, error)
	Me(ctx context.Context) (User, error)
}

// Navigator forces the UI to its login entry point. Navigating to an
// already-current login route must be a no-op.
type Navigator interface {
	ToLogin(ctx context.Context)
}
