package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	app "github.com/shoppy/storefront/internal/application"
	"github.com/shoppy/storefront/internal/domain/entity"
	"github.com/shoppy/storefront/internal/domain/repository"
	"github.com/shoppy/storefront/internal/interface/middleware"
	"github.com/shoppy/storefront/pkg/helpers"
	"github.com/shoppy/storefront/pkg/validation"
)

// fakeUserRepo is an in-memory UserRepository with atomic cart mutations.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = "u-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) IncrementCartItem(_ context.Context, id, itemKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Cart[itemKey]++
	return nil
}

func (f *fakeUserRepo) DecrementCartItem(_ context.Context, id, itemKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if u.Cart[itemKey] > 0 {
		u.Cart[itemKey]--
	}
	return nil
}

func (f *fakeUserRepo) GetCart(_ context.Context, id string) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := make(map[string]int, len(u.Cart))
	for k, v := range u.Cart {
		out[k] = v
	}
	return out, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// newTestServer wires signup/login and the token-gated cart routes the way
// the router modules do, backed by the fake repository.
func newTestServer(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	tm := helpers.NewTokenManager("test-secret", time.Hour)
	userSvc := app.NewUserService(repo, tm, nil, nil, 300, false)
	cartSvc := app.NewCartService(repo, nil)
	logger := helpers.NewLogger("test", "production")

	uh := NewUserHandler(userSvc, logger)
	ch := NewCartHandler(cartSvc, logger)

	r := gin.New()
	r.POST("/signup", uh.Signup)
	r.POST("/login", uh.Login)

	auth := r.Group("/")
	auth.Use(middleware.FetchUser(tm))
	auth.POST("/addtocart", ch.AddToCart)
	auth.POST("/removefromcart", ch.RemoveFromCart)
	auth.POST("/getcart", ch.GetCart)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status: got %d want %d body=%s", w.Code, want, w.Body.String())
	}
}
