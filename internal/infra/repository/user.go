package repository

import (
	"context"

	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, username, display_name, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().String(), u.Username(), u.DisplayName(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// Delete removes the account row. Accounts referenced by bookings are kept;
// the foreign key surfaces as KindForeignKeyViolated.
func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
