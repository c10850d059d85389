package session

import (
	"errors"

	"github.com/rpatel-116/uniclash/internal/role"
)

var (
	// ErrUnauthenticated means no live session backs the request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden means the session role is not in the operation's permitted set.
	ErrForbidden = errors.New("insufficient role")
)

// Authorize decides whether the session may run an operation restricted to the
// given roles. It is a pure predicate: the decision depends only on the
// session and the permitted set, and it must run before the operation has any
// side effects. A nil session means the caller never logged in.
func Authorize(s *Session, permitted ...role.Role) error {
	if s == nil {
		return ErrUnauthenticated
	}
	for _, role := range permitted {
		if s.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
