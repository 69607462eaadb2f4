package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoppy/storefront/internal/domain/entity"
	"github.com/shoppy/storefront/internal/domain/repository"
)

const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02" // e.g. a forged token carrying a non-uuid id
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, cart)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Password, u.Cart)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, cart, created_at, updated_at
		FROM users
		WHERE `+column+` = $1
	`, value)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Cart,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

// IncrementCartItem adds 1 to a single cart slot in one statement. The
// COALESCE treats a missing key as 0, so the map extends on demand; the
// whole mutation is atomic at the store, so concurrent adds never lose an
// increment.
func (r *UserRepository) IncrementCartItem(ctx context.Context, id, itemKey string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET cart = jsonb_set(cart, ARRAY[$2], to_jsonb(COALESCE((cart->>$2)::int, 0) + 1), true),
		    updated_at = now()
		WHERE id = $1
	`, id, itemKey)
	if err != nil {
		return mapNotFound(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DecrementCartItem subtracts 1 with a floor of 0; a slot at 0 stays 0.
func (r *UserRepository) DecrementCartItem(ctx context.Context, id, itemKey string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET cart = jsonb_set(cart, ARRAY[$2], to_jsonb(GREATEST(COALESCE((cart->>$2)::int, 0) - 1, 0)), true),
		    updated_at = now()
		WHERE id = $1
	`, id, itemKey)
	if err != nil {
		return mapNotFound(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) GetCart(ctx context.Context, id string) (map[string]int, error) {
	var cart map[string]int
	row := r.pool.QueryRow(ctx, `SELECT cart FROM users WHERE id = $1`, id)
	if err := row.Scan(&cart); err != nil {
		return nil, mapNotFound(err)
	}
	return cart, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidText {
		return repository.ErrNotFound
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
