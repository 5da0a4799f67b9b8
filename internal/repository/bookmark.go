package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/linkstash/linkstash-go/internal/model"
)

// BookmarkRepository handles bookmark persistence operations.
type BookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new BookmarkRepository.
func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Create inserts a new bookmark and sets the generated ID on the struct,
// then reads the row back so the returned timestamps match the database.
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	query := `INSERT INTO bookmarks (user_id, link, title, description) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, bookmark.UserID, bookmark.Link, bookmark.Title, bookmark.Description)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	bookmark.ID = id

	created, err := r.GetByID(ctx, bookmark.UserID, id)
	if err != nil {
		return err
	}
	if created != nil {
		bookmark.CreatedAt = created.CreatedAt
		bookmark.UpdatedAt = created.UpdatedAt
	}

	return nil
}

// GetByID retrieves a bookmark by id, scoped to its owner. Returns (nil, nil)
// when no bookmark with that id belongs to the user.
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*model.Bookmark, error) {
	query := `SELECT id, user_id, link, title, description, created_at, updated_at
		FROM bookmarks WHERE id = ? AND user_id = ?`

	bookmark := &model.Bookmark{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&bookmark.ID, &bookmark.UserID, &bookmark.Link, &bookmark.Title,
		&bookmark.Description, &bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return bookmark, nil
}

// ListByUser retrieves all bookmarks owned by a user in insertion order.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	query := `SELECT id, user_id, link, title, description, created_at, updated_at
		FROM bookmarks WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Link, &b.Title,
			&b.Description, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}
