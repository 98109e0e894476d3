package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserAccountView is the admin directory row. It carries the audit columns
// the authorized view leaves out.
type UserAccountView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock
type UserQueries interface {
	ListAll(ctx context.Context) ([]*UserAccountView, error)
}

type UserReadStore interface {
	FindAll(ctx context.Context) ([]*UserAccountView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) ListAll(ctx context.Context) ([]*UserAccountView, error) {
	return q.store.FindAll(ctx)
}
