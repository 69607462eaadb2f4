package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shoppy/storefront/internal/domain/entity"
	"github.com/shoppy/storefront/internal/domain/repository"
)

// memUserRepo is an in-memory UserRepository whose cart mutations are atomic
// under a mutex, mirroring the single-statement JSONB updates of the
// postgres implementation.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) IncrementCartItem(_ context.Context, id, itemKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Cart[itemKey]++
	return nil
}

func (m *memUserRepo) DecrementCartItem(_ context.Context, id, itemKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if u.Cart[itemKey] > 0 {
		u.Cart[itemKey]--
	}
	return nil
}

func (m *memUserRepo) GetCart(_ context.Context, id string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := make(map[string]int, len(u.Cart))
	for k, v := range u.Cart {
		out[k] = v
	}
	return out, nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func seedUser(t *testing.T, repo *memUserRepo) string {
	t.Helper()
	u := &entity.User{Name: "T", Email: "t@example.com", Password: "x", Cart: entity.NewCart(300)}
	require.NoError(t, repo.Create(context.Background(), u))
	return u.ID
}

func TestCartService_AddItem(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	uid := seedUser(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, uid, "5"))
	cart, err := svc.GetCart(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 1, cart["5"])

	// a key outside the seeded range extends the map
	require.NoError(t, svc.AddItem(ctx, uid, "9000"))
	cart, err = svc.GetCart(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 1, cart["9000"])
}

func TestCartService_RemoveItem_FloorAtZero(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	uid := seedUser(t, repo)
	ctx := context.Background()

	// removing at 0 is a no-op
	require.NoError(t, svc.RemoveItem(ctx, uid, "7"))
	cart, err := svc.GetCart(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 0, cart["7"])
}

func TestCartService_AddThenRemove_NetZero(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	uid := seedUser(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, uid, "5"))
	require.NoError(t, svc.RemoveItem(ctx, uid, "5"))
	cart, err := svc.GetCart(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 0, cart["5"])
}

func TestCartService_UserNotFound(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	ctx := context.Background()

	require.ErrorIs(t, svc.AddItem(ctx, "nope", "1"), ErrUserNotFound)
	require.ErrorIs(t, svc.RemoveItem(ctx, "nope", "1"), ErrUserNotFound)
	_, err := svc.GetCart(ctx, "nope")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCartService_ConcurrentAdds_NoLostIncrements(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	uid := seedUser(t, repo)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = svc.AddItem(ctx, uid, "5")
		}()
	}
	wg.Wait()

	cart, err := svc.GetCart(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, workers, cart["5"])
}

func TestCartService_QuantitiesNeverNegative(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewCartService(repo, nil)
	uid := seedUser(t, repo)
	ctx := context.Background()

	ops := []struct {
		add bool
		key string
	}{
		{false, "1"}, {true, "1"}, {false, "1"}, {false, "1"},
		{true, "2"}, {true, "2"}, {false, "2"}, {false, "2"}, {false, "2"},
	}
	for _, op := range ops {
		if op.add {
			require.NoError(t, svc.AddItem(ctx, uid, op.key))
		} else {
			require.NoError(t, svc.RemoveItem(ctx, uid, op.key))
		}
	}

	cart, err := svc.GetCart(ctx, uid)
	require.NoError(t, err)
	for k, q := range cart {
		require.GreaterOrEqual(t, q, 0, "cart[%s] went negative", k)
	}
}
