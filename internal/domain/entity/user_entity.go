package entity

import (
	"strconv"
	"time"
)

// User is the aggregate root for the identity domain. Password holds a
// bcrypt hash. Cart maps item keys to non-negative quantities; it is seeded
// at signup and only ever mutated through the cart engine.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Cart      map[string]int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCart returns a cart pre-seeded with slots "0".."size-1" at quantity 0,
// matching the shape the storefront frontend renders from.
func NewCart(size int) map[string]int {
	cart := make(map[string]int, size)
	for i := 0; i < size; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}
