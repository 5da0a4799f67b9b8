package model

import "time"

// User represents a user in the database. PasswordHash never leaves the
// process; API responses use UserResponse instead.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SigninRequest represents a user signin request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued after signup or signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// EditUserRequest represents a partial profile update. Nil fields are left
// unchanged.
type EditUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MeResponse is the payload for GET /users/me: the id and email claims from
// the token alongside the resolved user record.
type MeResponse struct {
	ID    int64        `json:"id"`
	Email string       `json:"email"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a User row into its API shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
