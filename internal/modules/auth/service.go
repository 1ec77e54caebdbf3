package auth

import (
	"context"
	"strings"

	"heiwahouse/internal/domain"
	jwtsvc "heiwahouse/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	admins AdminRepository
	jwt    *jwtsvc.Service
}

func NewService(admins AdminRepository, jwt *jwtsvc.Service) *Service {
	return &Service{admins: admins, jwt: jwt}
}

// Login checks the dashboard credentials and issues a bearer token. A wrong
// email and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, string(admin.Role))
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}
