package users

import (
	"context"
)

// Repository is the persistence abstraction over the user collection.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a new user and returns it with ID and CreatedAt set.
	// Inserting a duplicate username or email yields common.ErrorAlreadyExists;
	// uniqueness is enforced by the store itself, not by a pre-check.
	Create(ctx context.Context, user *User) (*User, error)

	// FindByUsernameOrEmail returns the user whose username matches
	// identifier exactly or whose email matches the lowercased identifier.
	// Yields common.ErrorNotFound when there is no match.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error)

	// FindByUsername returns the user with the exact username.
	// Yields common.ErrorNotFound when there is no match.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Exists reports whether the username or the email is already taken.
	Exists(ctx context.Context, username, email string) (bool, error)
}
