package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, write comments and posts, and opt into
// automatic replies to their own comments.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	IsAdmin   bool      // Admin users may manage other users' content
	IsActive  bool      // Inactive users cannot log in
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp

	// AutoReplyEnabled turns on the deferred auto-reply to comments
	// created by this user.
	AutoReplyEnabled bool
	// AutoReplyDelaySeconds is how long the auto-reply waits before firing.
	AutoReplyDelaySeconds int64
}

// AutoReplyDelay returns the configured delay as a duration.
func (u User) AutoReplyDelay() time.Duration {
	return time.Duration(u.AutoReplyDelaySeconds) * time.Second
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication, registration, and the auto-reply preference.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the email already exists.
	Register(ctx context.Context, name, email, password string) error

	// Login verifies user credentials and returns a JWT token.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, email, password string) (string, error)

	GetByID(ctx context.Context, id int64) (User, error)

	// UpdateAutoReply sets the auto-reply preference for a user.
	// Returns ErrBadParamInput when delaySeconds is negative.
	UpdateAutoReply(ctx context.Context, id int64, enabled bool, delaySeconds int64) (User, error)
}
