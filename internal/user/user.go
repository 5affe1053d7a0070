//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Gateway=Gateway"
package user

import (
	"context"
)

type User struct {
	ID    string
	Name  string
	Email string
}

// Gateway is the user directory surface of the backend.
type Gateway interface {
	List(ctx context.Context, query string) ([]User, error)
}
