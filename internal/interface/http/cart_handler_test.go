package handlers

import (
	"net/http"
	"testing"
)

func TestCartFlow(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestServer(repo)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	// add item "5"
	w = doJSON(t, r, http.MethodPost, "/addtocart", token, map[string]string{"itemId": "5"})
	mustStatus(t, w, http.StatusOK)
	if msg := decodeBody(t, w)["message"]; msg != "Added to cart" {
		t.Fatalf("unexpected ack: %v", msg)
	}

	// cart shows quantity 1
	w = doJSON(t, r, http.MethodPost, "/getcart", token, nil)
	mustStatus(t, w, http.StatusOK)
	cart := decodeBody(t, w)
	if cart["5"] != float64(1) {
		t.Fatalf("cart[5]: got %v want 1", cart["5"])
	}

	// remove brings it back to 0
	w = doJSON(t, r, http.MethodPost, "/removefromcart", token, map[string]string{"itemId": "5"})
	mustStatus(t, w, http.StatusOK)
	if msg := decodeBody(t, w)["message"]; msg != "Removed" {
		t.Fatalf("unexpected ack: %v", msg)
	}

	w = doJSON(t, r, http.MethodPost, "/getcart", token, nil)
	mustStatus(t, w, http.StatusOK)
	cart = decodeBody(t, w)
	if cart["5"] != float64(0) {
		t.Fatalf("cart[5]: got %v want 0", cart["5"])
	}
}

func TestAddToCart_Unauthenticated(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestServer(repo)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	// no token: rejected before business logic runs
	w = doJSON(t, r, http.MethodPost, "/addtocart", "", map[string]string{"itemId": "5"})
	mustStatus(t, w, http.StatusUnauthorized)

	// and no mutation happened
	for _, u := range repo.users {
		if u.Cart["5"] != 0 {
			t.Fatalf("cart mutated by unauthenticated request: %v", u.Cart["5"])
		}
	}
}

func TestGetCart_UserDeleted(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestServer(repo)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)
	token, _ := decodeBody(t, w)["token"].(string)

	// token references an identity that no longer exists
	repo.mu.Lock()
	for id := range repo.users {
		delete(repo.users, id)
	}
	repo.mu.Unlock()

	w = doJSON(t, r, http.MethodPost, "/getcart", token, nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestRemoveFromCart_AtZeroIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestServer(repo)

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)
	token, _ := decodeBody(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodPost, "/removefromcart", token, map[string]string{"itemId": "9"})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/getcart", token, nil)
	mustStatus(t, w, http.StatusOK)
	if q := decodeBody(t, w)["9"]; q != float64(0) {
		t.Fatalf("cart[9]: got %v want 0", q)
	}
}
