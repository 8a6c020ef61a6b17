package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Customer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     entity.RoleCustomer,
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()

			return nil
		})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "asha@example.com", output.User.Email)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret-password",
		Role:     entity.RoleAdmin,
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestUserService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "taken@example.com",
		Password: "secret-password",
		Role:     entity.RoleCustomer,
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered, err)
}

func TestUserService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed-password", nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "race@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Asha",
		Email:    "race@example.com",
		Password: "secret-password",
		Role:     entity.RoleCustomer,
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered, err)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "asha@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret-password", "hashed-password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"customer"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)

	// Same error as an unknown email so the response never reveals which
	// of the two failed.
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestUserService_Login_FindError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "asha@example.com").
		Return(nil, errors.New("database error"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "asha@example.com",
		Password: "secret-password",
	})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to find user by email")
}
