package service

import (
	"context"

	"github.com/linkstash/linkstash-go/internal/model"
	"github.com/linkstash/linkstash-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore with the repository's contract,
// including its sentinel errors.
type fakeUserStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

// fakeBookmarkStore is an in-memory BookmarkStore preserving insertion order.
type fakeBookmarkStore struct {
	bookmarks []model.Bookmark
	nextID    int64
}

func (f *fakeBookmarkStore) Create(_ context.Context, bookmark *model.Bookmark) error {
	f.nextID++
	bookmark.ID = f.nextID
	f.bookmarks = append(f.bookmarks, *bookmark)
	return nil
}

func (f *fakeBookmarkStore) GetByID(_ context.Context, userID, id int64) (*model.Bookmark, error) {
	for i := range f.bookmarks {
		if f.bookmarks[i].ID == id && f.bookmarks[i].UserID == userID {
			copied := f.bookmarks[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookmarkStore) ListByUser(_ context.Context, userID int64) ([]model.Bookmark, error) {
	var result []model.Bookmark
	for i := range f.bookmarks {
		if f.bookmarks[i].UserID == userID {
			result = append(result, f.bookmarks[i])
		}
	}
	return result, nil
}
