package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoppy/storefront/internal/domain/entity"
	"github.com/shoppy/storefront/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, num, name, image, category, new_price, old_price, date, available`

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (num, name, image, category, new_price, old_price, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date
	`, p.Num, p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice, p.Available)

	return row.Scan(&p.ID, &p.Date)
}

func (r *ProductRepository) DeleteByNum(ctx context.Context, num int) (*entity.Product, error) {
	p := &entity.Product{}
	row := r.pool.QueryRow(ctx, `
		DELETE FROM products WHERE num = $1
		RETURNING `+productColumns, num)
	if err := scanProduct(row, p); err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products ORDER BY num
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, category string, limit int) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE category = $1
		ORDER BY num
		LIMIT $2
	`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Latest returns the most recently added products in insertion order.
func (r *ProductRepository) Latest(ctx context.Context, limit int) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+` FROM (
			SELECT `+productColumns+` FROM products ORDER BY num DESC LIMIT $1
		) latest ORDER BY num
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *ProductRepository) NextNum(ctx context.Context) (int, error) {
	var next int
	row := r.pool.QueryRow(ctx, `SELECT COALESCE(MAX(num), 0) + 1 FROM products`)
	if err := row.Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(&p.ID, &p.Num, &p.Name, &p.Image, &p.Category,
		&p.NewPrice, &p.OldPrice, &p.Date, &p.Available)
}

func collectProducts(rows pgx.Rows) ([]entity.Product, error) {
	out := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
