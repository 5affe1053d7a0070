package apierror

import (
	"errors"
	"sync"
)

// CallState is the loading/error pair shared by every operation of a
// single gateway instance. Concurrent operations race on it: the last
// completion wins, regardless of issue order. Auth errors are never
// written into the message, the session invalidation redirect is the
// user-visible signal for those.
type CallState struct {
	mu      sync.Mutex
	loading bool
	message string
}

func (s *CallState) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.message = ""
}

func (s *CallState) Finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err == nil || IsAuth(err) {
		return
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		s.message = apiErr.Message
	} else {
		s.message = GenericMessage
	}
}

func (s *CallState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage returns the last stored human-readable failure, empty
// when the last completed call succeeded.
func (s *CallState) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
