package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "maria@example.com" {
			t.Fatalf("unexpected credentials %+v", creds)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(AuthResponse{
			Token: "session-token",
			User:  User{ID: "u1", Name: "Maria", Role: "manager"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), Credentials{Email: "maria@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.Name != "Maria" {
		t.Fatalf("unexpected user %+v", resp.User)
	}
	if tok, ok := c.Tokens().Token(); !ok || tok != "session-token" {
		t.Fatalf("token not stored: %q %v", tok, ok)
	}
}

func TestRegisterStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(AuthResponse{Token: "fresh-token"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Register(context.Background(), RegisterRequest{
		Name: "Maria", Email: "maria@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tok, _ := c.Tokens().Token(); tok != "fresh-token" {
		t.Fatalf("token not stored: %q", tok)
	}
}

func TestLogoutClearsTokenDespiteNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // backend unreachable

	c := New(srv.URL)
	c.Tokens().SetToken("doomed")

	err := c.Logout(context.Background())
	if !IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if _, ok := c.Tokens().Token(); ok {
		t.Fatalf("token must be cleared even when the logout call fails")
	}
}

func TestLogoutRequestCarriesNoToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens().SetToken("doomed")
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	// Local invalidation happens before the network call, so the request
	// goes out unauthenticated.
	if auth != "" {
		t.Fatalf("logout request carried token %q", auth)
	}
}

func TestGoogleLoginURL(t *testing.T) {
	c := New("http://localhost:5000")
	got := c.GoogleLoginURL()
	if got != "http://localhost:5000/api/auth/google" {
		t.Fatalf("GoogleLoginURL = %q", got)
	}
}

func TestPasswordFlows(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	if err := c.ForgotPassword(ctx, "maria@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if err := c.ResetPassword(ctx, ResetPasswordRequest{Token: "reset-123", NewPassword: "s3cret"}); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if err := c.ChangePassword(ctx, ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	want := strings.Join([]string{
		"POST /api/auth/forgot-password",
		"POST /api/auth/reset-password",
		"POST /api/auth/change-password",
	}, ",")
	if strings.Join(paths, ",") != want {
		t.Fatalf("unexpected call sequence %v", paths)
	}
}

func TestAuthValidation(t *testing.T) {
	c := New("http://localhost:5000")
	ctx := context.Background()

	if _, err := c.Login(ctx, Credentials{Email: "", Password: "x"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if _, err := c.Register(ctx, RegisterRequest{Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing password")
	}
	if err := c.ForgotPassword(ctx, ""); err == nil {
		t.Fatalf("expected error for missing email")
	}
}
