package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the acting account.
func (srv *profileService) GetProfile(ctx context.Context, actor usecase.Actor) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the provided field changes to the acting account.
func (srv *profileService) UpdateProfile(ctx context.Context, actor usecase.Actor, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
		}
		user.Name = *input.Name
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

// ListAddresses retrieves the actor's address book, default first.
func (srv *profileService) ListAddresses(ctx context.Context, actor usecase.Actor) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByOwner(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// AddAddress creates a new delivery address. The first address of an account
// becomes the default; flagging a later one as default demotes the rest.
func (srv *profileService) AddAddress(ctx context.Context, actor usecase.Actor, input usecase.AddressInput) (*entity.Address, error) {
	var created *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		existing, err := addressRepo.FindByOwner(ctx, actor.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load address book")
		}

		address := addressFromInput(actor.AccountID, input)
		if len(existing) == 0 {
			address.IsDefault = true
		} else if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, actor.AccountID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		created = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Address added", slog.Any("userID", actor.AccountID), slog.Any("addressID", created.ID))

	return created, nil
}

// UpdateAddress replaces the fields of an address owned by the actor.
func (srv *profileService) UpdateAddress(ctx context.Context, actor usecase.Actor, addressID uuid.UUID, input usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := srv.ownedAddress(ctx, addressRepo, actor, addressID)
		if err != nil {
			return err
		}

		if input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, actor.AccountID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		address.FullName = input.FullName
		address.Phone = input.Phone
		address.Street = input.Street
		address.City = input.City
		address.State = input.State
		address.PostalCode = input.PostalCode
		address.Country = input.Country
		address.IsDefault = address.IsDefault || input.IsDefault

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveAddress deletes an address owned by the actor.
func (srv *profileService) RemoveAddress(ctx context.Context, actor usecase.Actor, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := srv.ownedAddress(ctx, addressRepo, actor, addressID); err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
}

// ownedAddress loads an address and verifies the actor owns it. Addresses of
// other accounts read as not found so IDs cannot be probed.
func (srv *profileService) ownedAddress(ctx context.Context, addressRepo repository.AddressRepository, actor usecase.Actor, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to load address")
	}
	if address.OwnerID != actor.AccountID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

func addressFromInput(ownerID uuid.UUID, input usecase.AddressInput) *entity.Address {
	return &entity.Address{
		OwnerID:    ownerID,
		FullName:   input.FullName,
		Phone:      input.Phone,
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}
}
