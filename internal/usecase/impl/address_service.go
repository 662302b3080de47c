package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
// Each account has exactly one default address as long as it has any.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the address book, default first then newest.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		addresses, err = repoFactory.AddressRepo().ListByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress adds an address. The first address always becomes the default.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.Address{UserID: userID}
	applyAddressInput(address, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		return mapAddressError(addressRepo.Create(ctx, address))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// UpdateAddress edits an address. Unsetting the default flag on the default address is ignored,
// since the book must keep one default.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	var address *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		var err error
		address, err = addressRepo.FindByID(ctx, userID, addressID)
		if err != nil {
			return mapAddressError(err)
		}

		wasDefault := address.IsDefault
		applyAddressInput(address, input)
		address.IsDefault = wasDefault || input.IsDefault

		if address.IsDefault && !wasDefault {
			if err := addressRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		return mapAddressError(addressRepo.Update(ctx, address))
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an address. Deleting the default promotes the newest remaining one.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := addressRepo.FindByID(ctx, userID, addressID)
		if err != nil {
			return mapAddressError(err)
		}

		if err := addressRepo.Delete(ctx, userID, addressID); err != nil {
			return mapAddressError(err)
		}
		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		// Without a default, ListByUser is ordered newest first.
		return mapAddressError(addressRepo.SetDefault(ctx, userID, remaining[0].ID))
	})
}

// SetDefaultAddress makes one address the default and clears the flag on the others.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if _, err := addressRepo.FindByID(ctx, userID, addressID); err != nil {
			return mapAddressError(err)
		}
		if err := addressRepo.ClearDefault(ctx, userID); err != nil {
			return err
		}

		return mapAddressError(addressRepo.SetDefault(ctx, userID, addressID))
	})
}

func validateAddressInput(input *usecase.AddressInput) error {
	required := []struct{ field, value string }{
		{"full name", input.FullName},
		{"phone", input.Phone},
		{"address line 1", input.AddressLine1},
		{"city", input.City},
		{"postal code", input.PostalCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "%s is required", r.field)
		}
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude must be given together")
	}

	return nil
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.FullName = strings.TrimSpace(input.FullName)
	address.Phone = strings.TrimSpace(input.Phone)
	address.AddressLine1 = strings.TrimSpace(input.AddressLine1)
	address.AddressLine2 = strings.TrimSpace(input.AddressLine2)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.TrimSpace(input.State)
	address.PostalCode = strings.TrimSpace(input.PostalCode)
	address.Country = strings.TrimSpace(input.Country)
	address.Latitude = input.Latitude
	address.Longitude = input.Longitude
	address.IsDefault = input.IsDefault
}

func mapAddressError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrAddressNotFound):
		return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
	case errors.Is(err, repository.ErrDefaultAddressConflict):
		return errors.Wrap(domainerrors.ErrDefaultAddressConflict, "default address changed concurrently")
	default:
		return errors.Wrap(err, "failed to access address book")
	}
}
