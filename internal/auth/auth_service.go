package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"devconnect-service/internal/models"
	"devconnect-service/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must contain upper and lower case letters and a digit")
)

// TokenRevoker is the slice of TokenStore the service needs for logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

type AuthService struct {
	repo      AuthRepository
	tokens    TokenRevoker
	jwtSecret string
	jwtExpire time.Duration
}

func NewAuthService(repo AuthRepository, tokens TokenRevoker, secret string, expire time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		jwtSecret: secret,
		jwtExpire: expire,
	}
}

// Signup registers a new user with a lowercase-normalized unique email.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error) {
	if !models.IsStrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  string(hashed),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	resp := u.Response()
	return &resp, nil
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(s.jwtExpire).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: tokenString, User: u.Response()}, nil
}

// Logout denylists the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		// already unusable, nothing to revoke
		return nil
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	return s.tokens.Revoke(ctx, tokenString, time.Until(exp.Time))
}
