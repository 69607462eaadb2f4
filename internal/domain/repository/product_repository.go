package repository

import (
	"context"

	"github.com/shoppy/storefront/internal/domain/entity"
)

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	DeleteByNum(ctx context.Context, num int) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]entity.Product, error)
	Latest(ctx context.Context, limit int) ([]entity.Product, error)
	// NextNum returns the next application-level sequential product id.
	NextNum(ctx context.Context) (int, error)
}
