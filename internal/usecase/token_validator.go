package usecase

import (
	"github.com/google/uuid"

	"tourdesk/internal/domain/staff"
	"tourdesk/internal/pkg/jwt"
)

// TokenValidator resolves an access token to a staff identity for the auth
// middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (t *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.StaffID, role, nil
}
