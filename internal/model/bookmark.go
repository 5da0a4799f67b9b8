package model

import (
	"database/sql"
	"time"
)

// Bookmark represents a saved link owned by a single user.
type Bookmark struct {
	ID          int64
	UserID      int64
	Link        string
	Title       string
	Description sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateBookmarkRequest represents a bookmark creation request.
type CreateBookmarkRequest struct {
	Link        string `json:"link"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BookmarkResponse represents a bookmark in API responses.
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBookmarkResponse converts a Bookmark row into its API shape.
func NewBookmarkResponse(b *Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Link:        b.Link,
		Title:       b.Title,
		Description: b.Description.String,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
