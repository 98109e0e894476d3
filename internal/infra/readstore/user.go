package readstore

import (
	"context"
	"errors"

	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

const userViewColumns = `
	id, email, username, display_name, role, is_active, created_at`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := scanUserView(r.db.QueryRow(ctx,
		`SELECT `+userViewColumns+`, password_hash FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

// FindByIdentity resolves a login identity against username first, then
// e-mail, mirroring the login flow of the store frontend. Returns the view
// plus the stored password hash for credential verification.
func (r *UserReadStore) FindByIdentity(ctx context.Context, identity string) (*queries.AuthorizedUserView, string, error) {
	view, hash, err := scanUserView(r.db.QueryRow(ctx,
		`SELECT `+userViewColumns+`, password_hash
		 FROM users
		 WHERE username = $1 OR email = lower($1)
		 ORDER BY (username = $1) DESC
		 LIMIT 1`,
		identity,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by identity", err)
	}
	return view, hash, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserAccountView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, username, display_name, role, is_active, last_login, created_at
		 FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query users", err)
	}
	defer rows.Close()

	var views []*queries.UserAccountView
	for rows.Next() {
		var view queries.UserAccountView
		err := rows.Scan(
			&view.ID, &view.Email, &view.Username, &view.DisplayName,
			&view.Role, &view.IsActive, &view.LastLogin, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return views, nil
}

func (r *UserReadStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func scanUserView(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := row.Scan(
		&view.ID, &view.Email, &view.Username, &view.DisplayName,
		&view.Role, &view.IsActive, &view.CreatedAt, &hash,
	)
	if err != nil {
		return nil, "", err
	}
	return &view, hash, nil
}
