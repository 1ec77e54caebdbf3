package auth

import (
	"context"
	"testing"
	"time"

	"heiwahouse/internal/domain"
	jwtsvc "heiwahouse/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func testAdmin(t *testing.T, password string) *domain.AdminUser {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.AdminUser{
		ID:           1,
		Email:        "admin@heiwa.house",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
}

func TestLogin(t *testing.T) {
	admins := new(MockAdminRepository)
	admins.On("GetByEmail", mock.Anything, "admin@heiwa.house").
		Return(testAdmin(t, "correct horse"), nil)

	tokens := jwtsvc.New("test-secret", time.Hour)
	service := NewService(admins, tokens)

	token, admin, err := service.Login(context.Background(), "admin@heiwa.house", "correct horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), admin.ID)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	admins := new(MockAdminRepository)
	admins.On("GetByEmail", mock.Anything, "admin@heiwa.house").
		Return(testAdmin(t, "correct horse"), nil)

	service := NewService(admins, jwtsvc.New("test-secret", time.Hour))

	_, _, err := service.Login(context.Background(), "  Admin@Heiwa.House  ", "correct horse")

	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	admins := new(MockAdminRepository)
	admins.On("GetByEmail", mock.Anything, "admin@heiwa.house").
		Return(testAdmin(t, "correct horse"), nil)

	service := NewService(admins, jwtsvc.New("test-secret", time.Hour))

	_, _, err := service.Login(context.Background(), "admin@heiwa.house", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	admins := new(MockAdminRepository)
	admins.On("GetByEmail", mock.Anything, "nobody@heiwa.house").
		Return(nil, gorm.ErrRecordNotFound)

	service := NewService(admins, jwtsvc.New("test-secret", time.Hour))

	_, _, err := service.Login(context.Background(), "nobody@heiwa.house", "anything")

	// Unknown accounts and bad passwords are indistinguishable to the caller.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
