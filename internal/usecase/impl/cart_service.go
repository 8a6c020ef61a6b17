package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart resolves the actor's cart against the live catalog.
func (srv *cartService) GetCart(ctx context.Context, actor usecase.Actor) (*usecase.CartView, error) {
	return srv.buildView(ctx, actor)
}

// AddItem adds quantity units of a product, merging with any existing line.
// The merged quantity is capped by the available stock.
func (srv *cartService) AddItem(ctx context.Context, actor usecase.Actor, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	product, err := srv.purchasableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByCustomer(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	merged := quantity
	if line := cart.Line(productID); line != nil {
		merged += line.Quantity
	}
	if merged > product.Stock {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	if err := srv.cartRepo.SaveLine(ctx, actor.AccountID, &entity.CartLine{
		ProductID: productID,
		Quantity:  merged,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save cart line")
	}

	srv.log(ctx).Debug("Cart line added", slog.Any("userID", actor.AccountID), slog.Any("productID", productID), slog.Int("quantity", merged))

	return srv.buildView(ctx, actor)
}

// SetItemQuantity replaces the line quantity. A quantity of zero or less
// removes the line.
func (srv *cartService) SetItemQuantity(ctx context.Context, actor usecase.Actor, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity <= 0 {
		return srv.RemoveItem(ctx, actor, productID)
	}

	product, err := srv.purchasableProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	if err := srv.cartRepo.SaveLine(ctx, actor.AccountID, &entity.CartLine{
		ProductID: productID,
		Quantity:  quantity,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save cart line")
	}

	return srv.buildView(ctx, actor)
}

// RemoveItem deletes the line for the product. Removing an absent line is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, actor usecase.Actor, productID uuid.UUID) (*usecase.CartView, error) {
	if err := srv.cartRepo.RemoveLine(ctx, actor.AccountID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart line")
	}

	return srv.buildView(ctx, actor)
}

// Clear empties the actor's cart.
func (srv *cartService) Clear(ctx context.Context, actor usecase.Actor) error {
	if err := srv.cartRepo.Clear(ctx, actor.AccountID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// purchasableProduct loads a product and checks it can be added to a cart.
func (srv *cartService) purchasableProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !product.Purchasable() {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	return product, nil
}

// buildView joins the persisted lines with their current product data.
// Lines whose product has vanished from the catalog are skipped.
func (srv *cartService) buildView(ctx context.Context, actor usecase.Actor) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByCustomer(ctx, actor.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	view := &usecase.CartView{Items: make([]usecase.CartItemView, 0, len(cart.Lines))}
	for _, line := range cart.Lines {
		product, err := srv.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to resolve cart line")
		}

		lineTotal := product.Price * int64(line.Quantity)
		view.Items = append(view.Items, usecase.CartItemView{
			Product:   product,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal += lineTotal
	}

	return view, nil
}
