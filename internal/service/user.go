package service

import (
	"context"
	"errors"
	"net/mail"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

var ErrNoFieldsToUpdate = errors.New("at least one of email, firstName or lastName is required")

// UserService handles profile reads and edits.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// EditUser applies a partial profile update. Nil request fields are left
// unchanged; the returned response never includes the password hash.
func (s *UserService) EditUser(ctx context.Context, userID int64, req model.EditUserRequest) (model.UserResponse, error) {
	if req.Email == nil && req.FirstName == nil && req.LastName == nil {
		return model.UserResponse{}, ErrNoFieldsToUpdate
	}
	if req.Email != nil {
		if *req.Email == "" {
			return model.UserResponse{}, ErrEmailRequired
		}
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return model.UserResponse{}, ErrEmailInvalid
		}
	}
	if req.FirstName != nil && *req.FirstName == "" {
		return model.UserResponse{}, ErrFirstNameRequired
	}
	if req.LastName != nil && *req.LastName == "" {
		return model.UserResponse{}, ErrLastNameRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.NewUserResponse(user), nil
}
