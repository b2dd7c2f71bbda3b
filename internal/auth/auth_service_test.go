package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"devconnect-service/internal/models"
	"devconnect-service/internal/user"

	"github.com/golang-jwt/jwt/v5"
)

type fakeAuthRepo struct {
	byEmail map[string]*models.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: make(map[string]*models.User)}
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return errors.New("duplicate email")
	}
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeAuthRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func (f *fakeRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if f.revoked == nil {
		f.revoked = make(map[string]time.Duration)
	}
	f.revoked[token] = ttl
	return nil
}

func newTestAuthService() (*AuthService, *fakeAuthRepo, *fakeRevoker) {
	repo := newFakeAuthRepo()
	revoker := &fakeRevoker{}
	svc := NewAuthService(repo, revoker, "test-secret", 24*time.Hour)
	return svc, repo, revoker
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesEmailAndHashesPassword", func(t *testing.T) {
		svc, repo, _ := newTestAuthService()

		resp, err := svc.Signup(ctx, &models.SignupRequest{
			FirstName: "Alice",
			Email:     "  Alice@DevConnect.DEV ",
			Password:  "Sup3rSecret",
		})
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		if resp.Email != "alice@devconnect.dev" {
			t.Errorf("email not normalized: %s", resp.Email)
		}
		stored := repo.byEmail["alice@devconnect.dev"]
		if stored == nil {
			t.Fatal("user not stored under normalized email")
		}
		if stored.Password == "Sup3rSecret" || stored.Password == "" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		req := &models.SignupRequest{FirstName: "Alice", Email: "alice@devconnect.dev", Password: "Sup3rSecret"}
		if _, err := svc.Signup(ctx, req); err != nil {
			t.Fatalf("first signup failed: %v", err)
		}
		if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("WeakPasswords", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
			_, err := svc.Signup(ctx, &models.SignupRequest{FirstName: "Alice", Email: "a@b.dev", Password: password})
			if !errors.Is(err, ErrWeakPassword) {
				t.Errorf("password %q: expected ErrWeakPassword, got %v", password, err)
			}
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService()

	if _, err := svc.Signup(ctx, &models.SignupRequest{
		FirstName: "Alice",
		Email:     "alice@devconnect.dev",
		Password:  "Sup3rSecret",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	t.Run("IssuesValidToken", func(t *testing.T) {
		resp, err := svc.Login(ctx, &models.LoginRequest{Email: "alice@devconnect.dev", Password: "Sup3rSecret"})
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if resp.User.Email != "alice@devconnect.dev" {
			t.Errorf("unexpected user in response: %+v", resp.User)
		}

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("token does not verify: %v", err)
		}
		claims := token.Claims.(jwt.MapClaims)
		if claims["email"] != "alice@devconnect.dev" {
			t.Errorf("token email claim = %v", claims["email"])
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if _, err := svc.Login(ctx, &models.LoginRequest{Email: "alice@devconnect.dev", Password: "WrongPass1"}); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		if _, err := svc.Login(ctx, &models.LoginRequest{Email: "nobody@devconnect.dev", Password: "Sup3rSecret"}); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, revoker := newTestAuthService()

	if _, err := svc.Signup(ctx, &models.SignupRequest{
		FirstName: "Alice",
		Email:     "alice@devconnect.dev",
		Password:  "Sup3rSecret",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "alice@devconnect.dev", Password: "Sup3rSecret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := revoker.revoked[resp.Token]
	if !ok {
		t.Fatal("token was not revoked")
	}
	if ttl <= 0 || ttl > 24*time.Hour {
		t.Errorf("revocation ttl out of range: %v", ttl)
	}
}

func TestLogoutGarbageToken(t *testing.T) {
	svc, _, revoker := newTestAuthService()

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of garbage token should be a no-op, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Error("garbage token should not be denylisted")
	}
}
