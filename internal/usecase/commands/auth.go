package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/infra"
	"github.com/psu6810110220/StoreGame/internal/pkg/errs"
	"github.com/psu6810110220/StoreGame/internal/pkg/jwt"
	"github.com/psu6810110220/StoreGame/internal/pkg/password"
	"github.com/psu6810110220/StoreGame/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserAlreadyExists  = errs.New("username or email already registered")
	ErrUserInactive       = errs.New("account is deactivated")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidUserInput   = errs.New("invalid user input")
)

type RegisterInput struct {
	Email       string
	Username    string
	DisplayName string
	Password    string
}

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, identity, rawPassword string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	repo       UserRepository
	reads      UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(repo UserRepository, reads UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{repo: repo, reads: reads, jwtService: jwtService}
}

func (uc *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	username, err := user.ValidateUsername(in.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	exists, err := uc.reads.ExistsByUsernameOrEmail(ctx, username, email.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	displayName := in.DisplayName
	if displayName == "" {
		displayName = username
	}

	u := user.NewUser(email, username, displayName, hash, user.RoleUser)
	if err := uc.repo.Create(ctx, u); err != nil {
		// Uniqueness is also enforced by the database; two concurrent
		// registrations can both pass the existence check.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrUserAlreadyExists)
		}
		return nil, err
	}

	return uc.reads.FindByID(ctx, u.ID())
}

func (uc *authCommandsImpl) Login(ctx context.Context, identity, rawPassword string) (*LoginResult, error) {
	view, hash, err := uc.reads.FindByIdentity(ctx, identity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}
	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is corrupt")
	}
	token, err := uc.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	// Login must not fail because the audit column could not be written.
	if err := uc.repo.UpdateLastLogin(ctx, view.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err)
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (uc *authCommandsImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := uc.reads.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return view, nil
}
