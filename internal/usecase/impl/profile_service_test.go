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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	hasher      *mockService.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().AddressRepo().Return(addressRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		AddressRepo: addressRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		hasher:      hasher,
	}
}

func testAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		FullName:   "Asha Rao",
		Phone:      "+91-9999999999",
		Street:     "14 Lakeview Road",
		City:       "Pune",
		State:      "Maharashtra",
		PostalCode: "411001",
		Country:    "India",
	}
}

func TestProfileService_UpdateProfile_NameAndPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	newName := "Asha R."
	newPassword := "new-password"

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID, Name: "Asha", PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, actor, usecase.UpdateProfileInput{
		Name:     &newName,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", user.Name)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestProfileService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	empty := ""

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID, Name: "Asha"}, nil)

	user, err := fx.service.UpdateProfile(ctx, actor, usecase.UpdateProfileInput{Name: &empty})
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestProfileService_AddAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()

	fx.addressRepo.EXPECT().
		FindByOwner(ctx, actor.AccountID).
		Return(nil, nil)
	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			address.ID = uuid.New()

			return nil
		})

	address, err := fx.service.AddAddress(ctx, actor, testAddressInput())
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, actor.AccountID, address.OwnerID)
}

func TestProfileService_AddAddress_NewDefaultDemotesOthers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	input := testAddressInput()
	input.IsDefault = true

	fx.addressRepo.EXPECT().
		FindByOwner(ctx, actor.AccountID).
		Return([]*entity.Address{{ID: uuid.New(), OwnerID: actor.AccountID, IsDefault: true}}, nil)
	fx.addressRepo.EXPECT().ClearDefault(ctx, actor.AccountID).Return(nil)
	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			address.ID = uuid.New()

			return nil
		})

	address, err := fx.service.AddAddress(ctx, actor, input)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestProfileService_AddAddress_LaterNonDefaultStaysNonDefault(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()

	fx.addressRepo.EXPECT().
		FindByOwner(ctx, actor.AccountID).
		Return([]*entity.Address{{ID: uuid.New(), OwnerID: actor.AccountID, IsDefault: true}}, nil)
	fx.addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := fx.service.AddAddress(ctx, actor, testAddressInput())
	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestProfileService_UpdateAddress_PromoteClearsPreviousDefault(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()
	input := testAddressInput()
	input.IsDefault = true

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID, IsDefault: false}, nil)
	fx.addressRepo.EXPECT().ClearDefault(ctx, actor.AccountID).Return(nil)
	fx.addressRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := fx.service.UpdateAddress(ctx, actor, addressID, input)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "Pune", address.City)
}

func TestProfileService_UpdateAddress_OtherOwnerReadsNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: uuid.New()}, nil)

	address, err := fx.service.UpdateAddress(ctx, actor, addressID, testAddressInput())
	assert.Error(t, err)
	assert.Nil(t, address)
	assert.Equal(t, domainerrors.ErrAddressNotFound, err)
}

func TestProfileService_RemoveAddress_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().Delete(ctx, addressID).Return(nil)

	err := fx.service.RemoveAddress(ctx, actor, addressID)
	require.NoError(t, err)
}

func TestProfileService_RemoveAddress_UnknownAddress(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(nil, repository.ErrAddressNotFound)

	err := fx.service.RemoveAddress(ctx, actor, addressID)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrAddressNotFound, err)
}

func TestProfileService_ListAddresses(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	actor := customerActor()
	stored := []*entity.Address{
		{ID: uuid.New(), OwnerID: actor.AccountID, IsDefault: true},
		{ID: uuid.New(), OwnerID: actor.AccountID},
	}

	fx.addressRepo.EXPECT().FindByOwner(ctx, actor.AccountID).Return(stored, nil)

	addresses, err := fx.service.ListAddresses(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, stored, addresses)
}
