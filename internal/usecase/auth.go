package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"tourdesk/internal/domain/staff"
	"tourdesk/internal/pkg/config"
	"tourdesk/internal/pkg/jwt"
	"tourdesk/internal/pkg/password"
)

var (
	ErrStaffNotFound        = errors.New("staff account not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")

	ErrMalformedStaffAccount = errors.New("malformed staff account entry")
)

// staffIDNamespace makes directory IDs stable across restarts; accounts are
// provisioned through the environment, not a table.
var staffIDNamespace = uuid.MustParse("8d6a1f9e-4c1b-4f7a-9f3e-2b9c54c1a0d7")

type AuthorizedStaff struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type staffAccount struct {
	id           uuid.UUID
	email        string
	passwordHash string
	role         staff.Role
}

// StaffDirectory holds the staff accounts configured via
// AUTH_STAFF_ACCOUNTS, each entry "email:bcrypt-hash:role".
type StaffDirectory struct {
	byEmail map[string]staffAccount
	byID    map[uuid.UUID]staffAccount
}

func NewStaffDirectory(cfg config.AuthConfig) (*StaffDirectory, error) {
	dir := &StaffDirectory{
		byEmail: make(map[string]staffAccount, len(cfg.StaffAccounts)),
		byID:    make(map[uuid.UUID]staffAccount, len(cfg.StaffAccounts)),
	}
	for _, entry := range cfg.StaffAccounts {
		// bcrypt hashes contain '$' but never ':', so a plain split is safe.
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, ErrMalformedStaffAccount
		}
		email, err := staff.NewEmail(parts[0])
		if err != nil {
			return nil, ErrMalformedStaffAccount
		}
		role, err := staff.NewRole(parts[2])
		if err != nil {
			return nil, ErrMalformedStaffAccount
		}
		account := staffAccount{
			id:           uuid.NewSHA1(staffIDNamespace, []byte(email.String())),
			email:        email.String(),
			passwordHash: parts[1],
			role:         role,
		}
		dir.byEmail[account.email] = account
		dir.byID[account.id] = account
	}
	return dir, nil
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials staff.Credentials) (string, *AuthorizedStaff, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaff, error)
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type authUseCaseImpl struct {
	directory  *StaffDirectory
	jwtService *jwt.Service
}

func NewAuthUseCase(directory *StaffDirectory, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		directory:  directory,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, credentials staff.Credentials) (string, *AuthorizedStaff, error) {
	account, ok := a.directory.byEmail[credentials.Email.String()]
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(account.passwordHash, credentials.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.id, account.email, account.role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, &AuthorizedStaff{
		ID:    account.id,
		Email: account.email,
		Role:  account.role.String(),
	}, nil
}

func (a *authUseCaseImpl) GetCurrentStaff(_ context.Context, staffID uuid.UUID) (*AuthorizedStaff, error) {
	account, ok := a.directory.byID[staffID]
	if !ok {
		return nil, ErrStaffNotFound
	}
	return &AuthorizedStaff{
		ID:    account.id,
		Email: account.email,
		Role:  account.role.String(),
	}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.StaffID, role, nil
}
