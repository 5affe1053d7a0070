package session

import (
	"errors"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type State int

const (
	StateInitializing State = iota
	StateAuthenticated
	StateUnauthenticated
)

type User struct {
	ID    string
	Name  string
	Email string
}

// Session is a snapshot of the authentication state. UI gates must
// block while Loading is true and must not render protected content
// nor redirect away before initialization settles.
type Session struct {
	State State
	User  *User
}

func (s Session) IsAuthenticated() bool {
	return s.State == StateAuthenticated
}

func (s Session) Loading() bool {
	return s.State == StateInitializing
}
