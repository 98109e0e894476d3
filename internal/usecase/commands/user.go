package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/pkg/errs"
)

var (
	ErrUserHasBookings  = errs.New("user is referenced by bookings")
	ErrCannotDeleteSelf = errs.New("cannot delete own account")
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock
type UserCommands interface {
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error
}

type userCommandsImpl struct {
	repo UserRepository
}

func NewUserCommands(repo UserRepository) UserCommands {
	return &userCommandsImpl{repo: repo}
}

// DeleteUser removes an account from the admin directory. The acting admin
// cannot remove itself, and accounts with booking history stay in place so
// their bookings keep a valid owner.
func (uc *userCommandsImpl) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return ErrCannotDeleteSelf
	}
	if err := uc.repo.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrUserHasBookings)
		}
		return err
	}
	return nil
}
