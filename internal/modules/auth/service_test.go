package auth

import (
	"context"
	"testing"

	"courtbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 11
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubIssuer struct{}

func (stubIssuer) Generate(userID int64, role string) (string, error) {
	return "token-for-test", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "New@Example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, stubIssuer{})
	user, token, err := service.Register(context.Background(), RegisterRequest{
		Email:    "New@Example.com",
		Password: "secret-pass",
		Name:     "New User",
		Role:     "customer",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "token-for-test", token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-pass")))
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "dup@example.com").Return(&domain.User{ID: 1}, nil)

	service := NewService(users, stubIssuer{})
	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "dup@example.com",
		Password: "secret-pass",
		Name:     "Dup",
		Role:     "owner",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	service := NewService(new(MockUserRepository), stubIssuer{})
	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "x@example.com",
		Password: "secret-pass",
		Name:     "X",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "u@example.com").Return(&domain.User{
		ID: 3, Email: "u@example.com", PasswordHash: string(hash), Role: domain.RoleCustomer,
	}, nil)
	users.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

	service := NewService(users, stubIssuer{})

	user, token, err := service.Login(context.Background(), LoginRequest{Email: "u@example.com", Password: "right-pass"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "token-for-test", token)

	_, _, err = service.Login(context.Background(), LoginRequest{Email: "u@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = service.Login(context.Background(), LoginRequest{Email: "missing@example.com", Password: "right-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
