package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the raw password.
type User struct {
	ID            string
	Name          string
	Email         string
	ContactNumber string
	Password      string
	CreatedAt     time.Time
}
