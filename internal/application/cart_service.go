package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	repo "github.com/shoppy/storefront/internal/domain/repository"
)

var ErrUserNotFound = errors.New("user not found")

// CartService is the only component that mutates a user's cart. Each
// mutation is a single atomic operation at the store, so concurrent
// requests for the same user never lose updates and quantities never go
// negative.
type CartService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewCartService(r repo.UserRepository, logger *logrus.Logger) *CartService {
	return &CartService{Repo: r, Logger: logger}
}

// AddItem increments the quantity for itemKey by 1. A key never seen before
// starts at 0; item keys are opaque and not checked against the catalog.
func (s *CartService) AddItem(ctx context.Context, userID, itemKey string) error {
	if err := s.Repo.IncrementCartItem(ctx, userID, itemKey); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "item": itemKey}).Debug("cart add")
	}
	return nil
}

// RemoveItem decrements the quantity for itemKey by 1, never below 0; at 0
// the call is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemKey string) error {
	if err := s.Repo.DecrementCartItem(ctx, userID, itemKey); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": userID, "item": itemKey}).Debug("cart remove")
	}
	return nil
}

// GetCart returns the user's full cart map.
func (s *CartService) GetCart(ctx context.Context, userID string) (map[string]int, error) {
	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return cart, nil
}
