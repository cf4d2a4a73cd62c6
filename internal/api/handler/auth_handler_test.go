package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	recoverFn  func(ctx context.Context, email string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) RecoverPassword(ctx context.Context, email string) error {
	return s.recoverFn(ctx, email)
}

func TestAuthHandler_Register_Form(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "ann@example.com" || in.FirstName != "Ann" || in.LastName != "Lee" || in.Password != "pw" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: 1, Email: in.Email}, nil
		},
	}
	h := NewAuthHandler(stub)

	rec := call(t, h.Register, formRequest(http.MethodPost, "/register",
		"email=ann%40example.com&first_name=Ann&last_name=Lee&password=pw"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := message(t, rec); got != "User created successfully" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAuthHandler_Register_JSON(t *testing.T) {
	called := false
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			called = true
			return &domain.User{Email: in.Email}, nil
		},
	}

	rec := call(t, NewAuthHandler(stub).Register, jsonRequest(http.MethodPost, "/register",
		`{"email":"ann@example.com","first_name":"Ann","last_name":"Lee","password":"pw"}`))

	if rec.Code != http.StatusCreated || !called {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}

	rec := call(t, NewAuthHandler(stub).Register, formRequest(http.MethodPost, "/register",
		"email=ann%40example.com&first_name=Ann&last_name=Lee&password=pw"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if got := message(t, rec); got != "That email already exists" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	rec := call(t, NewAuthHandler(stub).Register, formRequest(http.MethodPost, "/register", "email=ann%40example.com"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "test@test.com" || password != "123456" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Email: email}, nil
		},
	}

	rec := call(t, NewAuthHandler(stub).Login, jsonRequest(http.MethodPost, "/login",
		`{"email":"test@test.com","password":"123456"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.AccessToken != "token123" || resp.Message != "Login succeeded" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_Form(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "t", &domain.User{Email: email}, nil
		},
	}

	rec := call(t, NewAuthHandler(stub).Login, formRequest(http.MethodPost, "/login", "email=test%40test.com&password=123456"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}

	rec := call(t, NewAuthHandler(stub).Login, jsonRequest(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"bad"}`))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := message(t, rec); got != "You entered a bad email or password" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}

	rec := call(t, NewAuthHandler(stub).Login, jsonRequest(http.MethodPost, "/login", "{"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_RetrievePassword(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"sent", nil, http.StatusOK, "Password sent to test@test.com"},
		{"unknown", domain.ErrUserNotFound, http.StatusUnauthorized, "That email does not exist"},
		{"throttled", domain.ErrRecoveryThrottled, http.StatusTooManyRequests, ""},
		{"mail failure", errors.New("smtp down"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		stub := &stubAuthService{
			recoverFn: func(_ context.Context, email string) error {
				if email != "test@test.com" {
					t.Fatalf("unexpected email %q", email)
				}
				return tc.err
			},
		}

		rec := call(t, NewAuthHandler(stub).RetrievePassword,
			httptest.NewRequest(http.MethodGet, "/retrieve_password/test@test.com", nil), "email", "test@test.com")

		if rec.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}
		if tc.msg != "" && message(t, rec) != tc.msg {
			t.Fatalf("%s: unexpected message %q", tc.name, message(t, rec))
		}
	}
}
