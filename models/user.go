package models

import "time"

// User is a marketplace account. A user is either a buyer or a seller,
// never both.
type User struct {
	// UserID is the database identifier, embedded into issued tokens as "id".
	UserID int64 `json:"id"`

	// Username is a display name. It is not unique.
	Username string `json:"username"`

	// Email is unique across all users and is the login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is "buyer" or "seller".
	Role string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
