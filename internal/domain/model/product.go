package model

import "time"

// Product describes a catalog item owned by a single user.
// ID is a server-generated UUID; the record is only visible to its owner.
type Product struct {
	ID          string
	UserID      int64
	Name        string
	Description string
	Quantity    int
	Price       float64
	CreatedAt   time.Time
}
