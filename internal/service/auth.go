package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/linkstash/linkstash-go/internal/crypto"
	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so responses never reveal which emails are registered.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrEmailRequired     = errors.New("email is required")
	ErrEmailInvalid      = errors.New("email must be a valid email address")
	ErrPasswordRequired  = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrFirstNameRequired = errors.New("firstName is required")
	ErrLastNameRequired  = errors.New("lastName is required")
	ErrEmailTaken        = errors.New("email already taken")
)

const minPasswordLength = 6

// AuthService handles signup and signin.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account and returns a bearer token for it.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.TokenResponse, error) {
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return model.TokenResponse{}, err
	}
	if req.FirstName == "" {
		return model.TokenResponse{}, ErrFirstNameRequired
	}
	if req.LastName == "" {
		return model.TokenResponse{}, ErrLastNameRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.TokenResponse{}, ErrEmailTaken
		}
		return model.TokenResponse{}, err
	}

	return s.signToken(user.ID, user.Email)
}

// Signin verifies credentials and returns a bearer token.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (model.TokenResponse, error) {
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return model.TokenResponse{}, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	return s.signToken(user.ID, user.Email)
}

// signToken issues the signed bearer token carrying the user id and email.
func (s *AuthService) signToken(userID int64, email string) (model.TokenResponse, error) {
	token, err := crypto.GenerateToken(userID, email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{AccessToken: token}, nil
}

// validateCredentials enforces the shared email/password rules for signup and
// signin. Signin applies them too, so malformed requests fail fast as 400s
// without touching the database.
func validateCredentials(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
