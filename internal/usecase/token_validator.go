package usecase

import (
	"github.com/google/uuid"

	"github.com/psu6810110220/StoreGame/internal/domain/user"
	"github.com/psu6810110220/StoreGame/internal/pkg/errs"
	"github.com/psu6810110220/StoreGame/internal/pkg/jwt"
)

var ErrUnauthenticated = errs.New("unauthenticated")

// AuthenticatedUser is the identity the middleware attaches to a request.
type AuthenticatedUser struct {
	ID   uuid.UUID
	Role user.Role
}

type TokenValidator interface {
	Validate(token string) (*AuthenticatedUser, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) Validate(token string) (*AuthenticatedUser, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrUnauthenticated)
	}
	return &AuthenticatedUser{ID: claims.UserID, Role: role}, nil
}
