package kernel

import (
	"errors"

	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

// ErrIdentityIsNotConstructed is returned when an Identity instance was not
// created through the NewIdentity factory function.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is a value object that represents an already-authenticated caller.
// It carries the verified user id, username, and operator flag handed over by
// the external authentication service. The core trusts these values verbatim;
// no authentication decisions are made against it beyond ownership and
// operator checks at the API boundary.
//
// Identity is immutable and safe for concurrent use. The zero value is invalid
// and must be constructed via NewIdentity.
type Identity struct {
	userID   int64
	username string
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewIdentity creates a validated caller identity.
// The user id must be positive and the username must not be empty.
func NewIdentity(userID int64, username string, isAdmin bool) (Identity, error) {
	if userID <= 0 {
		return Identity{}, errs.NewValueIsInvalidError("userID")
	}
	if username == "" {
		return Identity{}, errs.NewValueIsRequiredError("username")
	}

	return Identity{
		userID:   userID,
		username: username,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Identity was created through NewIdentity.
func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

// UserID returns the verified user id.
func (i Identity) UserID() int64 {
	return i.userID
}

// Username returns the verified username.
func (i Identity) Username() string {
	return i.username
}

// IsAdmin reports whether the caller is an operator.
func (i Identity) IsAdmin() bool {
	return i.isAdmin
}
