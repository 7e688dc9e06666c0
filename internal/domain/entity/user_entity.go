package entity

import "time"

// User is the aggregate root for the account domain.
// Usernames are email-shaped and unique; Password holds a bcrypt hash,
// never plaintext.
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
