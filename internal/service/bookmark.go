package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/linkstash/linkstash-go/internal/model"
)

var (
	ErrLinkRequired  = errors.New("link is required")
	ErrTitleRequired = errors.New("title is required")
)

// BookmarkService handles bookmark business logic. Every operation is scoped
// to the authenticated user's id; no call can cross user boundaries.
type BookmarkService struct {
	bookmarks BookmarkStore
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(bookmarks BookmarkStore) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// Store creates a new bookmark for a user and returns the persisted record.
func (s *BookmarkService) Store(ctx context.Context, userID int64, req model.CreateBookmarkRequest) (model.BookmarkResponse, error) {
	if req.Link == "" {
		return model.BookmarkResponse{}, ErrLinkRequired
	}
	if req.Title == "" {
		return model.BookmarkResponse{}, ErrTitleRequired
	}

	bookmark := &model.Bookmark{
		UserID: userID,
		Link:   req.Link,
		Title:  req.Title,
		Description: sql.NullString{
			String: req.Description,
			Valid:  req.Description != "",
		},
	}

	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return model.BookmarkResponse{}, err
	}

	return model.NewBookmarkResponse(bookmark), nil
}

// All returns the user's bookmarks in insertion order, empty when none exist.
func (s *BookmarkService) All(ctx context.Context, userID int64) ([]model.BookmarkResponse, error) {
	bookmarks, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.BookmarkResponse, len(bookmarks))
	for i := range bookmarks {
		result[i] = model.NewBookmarkResponse(&bookmarks[i])
	}
	return result, nil
}

// Get returns the bookmark only if it exists and is owned by the user;
// absence (including another user's bookmark) is a nil response, not an error.
func (s *BookmarkService) Get(ctx context.Context, userID, bookmarkID int64) (*model.BookmarkResponse, error) {
	bookmark, err := s.bookmarks.GetByID(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, nil
	}

	resp := model.NewBookmarkResponse(bookmark)
	return &resp, nil
}
