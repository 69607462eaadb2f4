package repository

import (
	"context"

	"github.com/shoppy/storefront/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Cart mutations are single atomic operations at the store level; callers
// never read-modify-write the cart map themselves.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// IncrementCartItem adds 1 to cart[itemKey], treating a missing key as 0.
	IncrementCartItem(ctx context.Context, id, itemKey string) error
	// DecrementCartItem subtracts 1 from cart[itemKey] with a floor of 0.
	DecrementCartItem(ctx context.Context, id, itemKey string) error
	// GetCart returns the full cart map verbatim.
	GetCart(ctx context.Context, id string) (map[string]int, error)
}
