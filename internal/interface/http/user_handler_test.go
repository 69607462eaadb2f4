package handlers

import (
	"net/http"
	"testing"
)

func TestSignup_IssuesToken(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Fatalf("expected success=true, body=%v", body)
	}
	if tok, _ := body["token"].(string); tok == "" {
		t.Fatalf("expected a token, body=%v", body)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Mallory", "email": "a@x.com", "password": "different123",
	})
	mustStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	if body["success"] != false {
		t.Fatalf("expected success=false, body=%v", body)
	}
	if _, ok := body["token"]; ok {
		t.Fatalf("duplicate signup must not issue a token, body=%v", body)
	}
}

func TestSignup_InvalidPayload(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	// password below the minimum length
	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "short",
	})
	mustStatus(t, w, http.StatusBadRequest)
}

func TestLogin_WrongEmail(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "nobody@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	if body["errors"] != "Wrong Email ID" {
		t.Fatalf("unexpected errors: %v", body)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "not-the-password",
	})
	mustStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	if body["errors"] != "Wrong Password" {
		t.Fatalf("unexpected errors: %v", body)
	}
}

func TestLogin_Success(t *testing.T) {
	r := newTestServer(newFakeUserRepo())

	w := doJSON(t, r, http.MethodPost, "/signup", "", map[string]string{
		"name": "Alice", "email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "a@x.com", "password": "password123",
	})
	mustStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	if tok, _ := body["token"].(string); tok == "" {
		t.Fatalf("expected a token, body=%v", body)
	}
}
