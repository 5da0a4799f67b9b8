package service

import (
	"context"

	"github.com/linkstash/linkstash-go/internal/model"
)

// UserStore is the user persistence surface the services depend on.
// Satisfied by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// BookmarkStore is the bookmark persistence surface the services depend on.
// Satisfied by repository.BookmarkRepository.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error)
}
