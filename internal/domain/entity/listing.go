package entity

import "time"

// Image bounds enforced when a listing is created.
const (
	MinImages = 1
	MaxImages = 10
)

// Listing is a vehicle-for-sale record. OwnerEmail is a weak reference to
// User.Email: no referential integrity is enforced at write time.
type Listing struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	OwnerEmail  string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
