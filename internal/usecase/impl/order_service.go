package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderNumberPrefix tags the human-facing order token, followed by the
// creation time in unix milliseconds.
const orderNumberPrefix = "BF"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	policy     pricing.Policy
	pagination *config.PaginationConfig
	now        func() time.Time
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var pagination *config.PaginationConfig
	if params.Config != nil {
		pagination = params.Config.Pagination
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		policy:     policyFromConfig(params.Config),
		pagination: pagination,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout prices the actor's cart and converts it into an order. The whole
// operation runs in one transaction: every stock decrement, the order insert
// and the cart clear commit together or not at all, so two concurrent
// checkouts can never oversell a product.
func (srv *orderService) Checkout(ctx context.Context, actor usecase.Actor, input usecase.CheckoutInput) (*entity.Order, error) {
	if !input.Delivery.IsValid() {
		return nil, domainerrors.ErrUnknownDeliveryMethod.WithDetails(input.Delivery.String())
	}
	if !input.Payment.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method")
	}

	var created *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		cart, err := cartRepo.FindByCustomer(ctx, actor.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return domainerrors.ErrCartEmpty
		}

		customer, err := repoFactory.UserRepo().FindByID(ctx, actor.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load customer")
		}

		address, err := repoFactory.AddressRepo().FindByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to load address")
		}
		if address.OwnerID != actor.AccountID {
			return domainerrors.ErrAddressNotFound
		}

		items, lines, sellerID, err := srv.resolveCart(ctx, productRepo, cart)
		if err != nil {
			return err
		}

		summary, err := srv.policy.Quote(lines, input.Delivery)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrInvalidCart):
				return domainerrors.ErrInvalidCart
			case errors.Is(err, pricing.ErrUnknownDeliveryMethod):
				return domainerrors.ErrUnknownDeliveryMethod.WithDetails(input.Delivery.String())
			default:
				return errors.Wrap(err, "failed to price cart")
			}
		}

		createdAt := srv.now()
		eta, err := srv.policy.EstimatedDelivery(input.Delivery, createdAt)
		if err != nil {
			return domainerrors.ErrUnknownDeliveryMethod.WithDetails(input.Delivery.String())
		}

		// Asynchronously settled payments leave the order pending until the
		// provider callback confirms or cancels it.
		status := entity.OrderStatusConfirmed
		if input.Payment.Asynchronous() {
			status = entity.OrderStatusPending
		}

		order := &entity.Order{
			OrderNumber: orderNumberPrefix + strconv.FormatInt(createdAt.UnixMilli(), 10),
			Items:       items,
			Address: entity.OrderAddress{
				FullName:   address.FullName,
				Phone:      address.Phone,
				Street:     address.Street,
				City:       address.City,
				State:      address.State,
				PostalCode: address.PostalCode,
				Country:    address.Country,
			},
			Delivery:          input.Delivery,
			Payment:           input.Payment,
			Subtotal:          summary.Subtotal,
			Shipping:          summary.Shipping,
			Tax:               summary.Tax,
			Discount:          summary.Discount,
			Total:             summary.Total,
			Status:            status,
			SellerID:          sellerID,
			CustomerID:        customer.ID,
			CustomerName:      customer.Name,
			CustomerEmail:     customer.Email,
			CreatedAt:         createdAt,
			EstimatedDelivery: eta,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.Clear(ctx, actor.AccountID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", actor.AccountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("userID", actor.AccountID),
		slog.String("orderNumber", created.OrderNumber),
		slog.Int64("total", created.Total),
	)

	return created, nil
}

// resolveCart snapshots every cart line against the live catalog and
// decrements stock inside the running transaction. All lines must belong to
// a single seller.
func (srv *orderService) resolveCart(ctx context.Context, productRepo repository.ProductRepository, cart *entity.Cart) ([]entity.OrderItem, []pricing.Line, uuid.UUID, error) {
	items := make([]entity.OrderItem, 0, len(cart.Lines))
	lines := make([]pricing.Line, 0, len(cart.Lines))

	var sellerID uuid.UUID
	for _, line := range cart.Lines {
		product, err := productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, nil, uuid.Nil, domainerrors.ErrProductNotFound
			}

			return nil, nil, uuid.Nil, errors.Wrap(err, "failed to load product")
		}

		// The product may have been delisted or drained since the line was
		// added to the cart; re-check it against the live catalog.
		if !product.Purchasable() {
			return nil, nil, uuid.Nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
		}

		if sellerID == uuid.Nil {
			sellerID = product.SellerID
		} else if sellerID != product.SellerID {
			return nil, nil, uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("cart mixes products from different sellers")
		}

		if err := productRepo.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, nil, uuid.Nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
			}

			return nil, nil, uuid.Nil, errors.Wrap(err, "failed to decrement stock")
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
		lines = append(lines, pricing.Line{
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
		})
	}

	return items, lines, sellerID, nil
}

// GetOrder retrieves an order visible to the actor. Orders outside the
// actor's scope read as not found.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if !srv.visibleTo(actor, order) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrders retrieves the actor's order page, newest first. The visible
// scope follows the role: customers see their own orders, sellers the orders
// they fulfil, admins everything.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor, input usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	page, limit, offset := pageWindow(srv.pagination, input.Page, input.Limit)

	query := repository.ListOrdersQuery{
		Status: input.Status,
		Offset: offset,
		Limit:  limit,
	}
	switch {
	case actor.IsAdmin():
	case actor.IsSeller():
		sellerID := actor.AccountID
		query.SellerID = &sellerID
	default:
		customerID := actor.AccountID
		query.CustomerID = &customerID
	}

	orders, total, err := srv.orderRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.ListOrdersOutput{
		Orders:     orders,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// AdvanceStatus applies a lifecycle transition inside a transaction so a
// cancellation and its restock commit together.
func (srv *orderService) AdvanceStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order")
		}
		if !srv.visibleTo(actor, order) {
			return domainerrors.ErrOrderNotFound
		}

		// Customers may only cancel; fulfilment is driven by the seller or an admin.
		if !actor.IsAdmin() && !actor.IsSeller() && target != entity.OrderStatusCancelled {
			return domainerrors.ErrForbidden
		}

		if !order.Status.CanTransitionTo(target) {
			return domainerrors.ErrInvalidTransition.WithDetails(order.Status.String() + " -> " + target.String())
		}

		if target == entity.OrderStatusCancelled {
			if err := srv.restock(ctx, repoFactory.ProductRepo(), order); err != nil {
				return err
			}
		}

		order.Status = target
		if target == entity.OrderStatusDelivered {
			deliveredAt := srv.now()
			order.DeliveredAt = &deliveredAt
		}

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", updated.OrderNumber),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// ConfirmPayment settles an asynchronously paid order. Success confirms it;
// failure cancels it and restocks every line.
func (srv *orderService) ConfirmPayment(ctx context.Context, input usecase.ConfirmPaymentInput) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByOrderNumber(ctx, input.OrderNumber)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order")
		}

		if !order.Payment.Asynchronous() || order.Status != entity.OrderStatusPending {
			return domainerrors.ErrInvalidTransition.WithDetails("order is not awaiting payment")
		}

		if input.Success {
			order.Status = entity.OrderStatusConfirmed
		} else {
			if err := srv.restock(ctx, repoFactory.ProductRepo(), order); err != nil {
				return err
			}
			order.Status = entity.OrderStatusCancelled
		}

		if err := orderRepo.UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment callback processed",
		slog.String("orderNumber", updated.OrderNumber),
		slog.Bool("success", input.Success),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// restock returns every line's units to the catalog when an order is cancelled.
func (srv *orderService) restock(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order) error {
	for _, item := range order.Items {
		if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			// A product hard-deleted since the order was placed has nothing
			// left to restock.
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return errors.Wrap(err, "failed to restock product")
		}
	}

	return nil
}

// visibleTo reports whether the actor may see the order.
func (srv *orderService) visibleTo(actor usecase.Actor, order *entity.Order) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsSeller():
		return order.SellerID == actor.AccountID
	default:
		return order.CustomerID == actor.AccountID
	}
}
