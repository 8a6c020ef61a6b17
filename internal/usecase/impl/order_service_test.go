package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     *orderService
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	now         time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	factory.EXPECT().OrderRepo().Return(orderRepo).Maybe()
	factory.EXPECT().ProductRepo().Return(productRepo).Maybe()
	factory.EXPECT().CartRepo().Return(cartRepo).Maybe()
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().AddressRepo().Return(addressRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	now := time.Date(2024, 4, 25, 8, 0, 0, 0, time.UTC)

	service := &orderService{
		txManager:  txManager,
		orderRepo:  orderRepo,
		policy:     pricing.DefaultPolicy(),
		pagination: newTestPagination(),
		now:        func() time.Time { return now },
		logger:     newDiscardLogger(),
	}

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		now:         now,
	}
}

func customerActor() usecase.Actor {
	return usecase.Actor{AccountID: uuid.New(), Role: entity.RoleCustomer}
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	sellerID := uuid.New()
	addressID := uuid.New()

	shirt := &entity.Product{
		ID:       uuid.New(),
		Name:     "Linen Shirt",
		Price:    2000,
		Stock:    10,
		Status:   entity.ProductStatusActive,
		SellerID: sellerID,
	}
	belt := &entity.Product{
		ID:       uuid.New(),
		Name:     "Leather Belt",
		Price:    1000,
		Stock:    5,
		Status:   entity.ProductStatusActive,
		SellerID: sellerID,
	}

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines: []entity.CartLine{
				{ProductID: shirt.ID, Quantity: 2},
				{ProductID: belt.ID, Quantity: 2},
			},
		}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID, Name: "Asha", Email: "asha@example.com"}, nil)

	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID, City: "Pune"}, nil)

	fx.productRepo.EXPECT().FindByID(ctx, shirt.ID).Return(shirt, nil)
	fx.productRepo.EXPECT().FindByID(ctx, belt.ID).Return(belt, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, shirt.ID, 2).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, belt.ID, 2).Return(nil)

	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.cartRepo.EXPECT().Clear(ctx, actor.AccountID).Return(nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// 6000 over the 5000 threshold earns the 10% discount.
	assert.Equal(t, int64(6000), order.Subtotal)
	assert.Equal(t, int64(50), order.Shipping)
	assert.Equal(t, int64(1080), order.Tax)
	assert.Equal(t, int64(600), order.Discount)
	assert.Equal(t, int64(6530), order.Total)

	assert.Equal(t, "BF"+strconv.FormatInt(fx.now.UnixMilli(), 10), order.OrderNumber)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, sellerID, order.SellerID)
	assert.Equal(t, actor.AccountID, order.CustomerID)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "Pune", order.Address.City)
	assert.Equal(t, fx.now.Add(7*24*time.Hour), order.EstimatedDelivery)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Linen Shirt", order.Items[0].Name)
	assert.Equal(t, int64(2000), order.Items[0].UnitPrice)
}

func TestOrderService_Checkout_CashOnDeliveryStaysPending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	socks := &entity.Product{
		ID:       uuid.New(),
		Name:     "Wool Socks",
		Price:    300,
		Stock:    20,
		Status:   entity.ProductStatusActive,
		SellerID: uuid.New(),
	}

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines:      []entity.CartLine{{ProductID: socks.ID, Quantity: 3}},
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, socks.ID).Return(socks, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, socks.ID, 3).Return(nil)
	fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, actor.AccountID).Return(nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryExpress,
		Payment:   entity.PaymentCashOnDelivery,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, int64(150), order.Shipping)
	assert.Equal(t, fx.now.Add(3*24*time.Hour), order.EstimatedDelivery)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{CustomerID: actor.AccountID}, nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: uuid.New(),
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrCartEmpty, err)
}

func TestOrderService_Checkout_UnknownDeliveryMethod(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.Checkout(context.Background(), customerActor(), usecase.CheckoutInput{
		AddressID: uuid.New(),
		Delivery:  entity.DeliveryMethod("pigeon"),
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "UNKNOWN_DELIVERY_METHOD", appErrorCode(t, err))
}

func TestOrderService_Checkout_AddressOfAnotherAccount(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines:      []entity.CartLine{{ProductID: uuid.New(), Quantity: 1}},
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: uuid.New()}, nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrAddressNotFound, err)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	jacket := &entity.Product{
		ID:       uuid.New(),
		Name:     "Denim Jacket",
		Price:    2500,
		Stock:    1,
		Status:   entity.ProductStatusActive,
		SellerID: uuid.New(),
	}

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines:      []entity.CartLine{{ProductID: jacket.ID, Quantity: 3}},
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, jacket.ID).Return(jacket, nil)
	fx.productRepo.EXPECT().
		DecrementStock(ctx, jacket.ID, 3).
		Return(repository.ErrInsufficientStock)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErrorCode(t, err))
}

func TestOrderService_Checkout_DelistedProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	// Delisted after the line was added to the cart; stock alone would suffice.
	coat := &entity.Product{
		ID:       uuid.New(),
		Name:     "Trench Coat",
		Price:    4500,
		Stock:    8,
		Status:   entity.ProductStatusInactive,
		SellerID: uuid.New(),
	}

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines:      []entity.CartLine{{ProductID: coat.ID, Quantity: 1}},
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, coat.ID).Return(coat, nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "OUT_OF_STOCK", appErrorCode(t, err))
	fx.productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_MixedSellers(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	addressID := uuid.New()

	scarf := &entity.Product{
		ID:       uuid.New(),
		Name:     "Silk Scarf",
		Price:    900,
		Stock:    4,
		Status:   entity.ProductStatusActive,
		SellerID: uuid.New(),
	}
	boots := &entity.Product{
		ID:       uuid.New(),
		Name:     "Hiking Boots",
		Price:    3200,
		Stock:    4,
		Status:   entity.ProductStatusActive,
		SellerID: uuid.New(),
	}

	fx.cartRepo.EXPECT().
		FindByCustomer(ctx, actor.AccountID).
		Return(&entity.Cart{
			CustomerID: actor.AccountID,
			Lines: []entity.CartLine{
				{ProductID: scarf.ID, Quantity: 1},
				{ProductID: boots.ID, Quantity: 1},
			},
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, actor.AccountID).
		Return(&entity.User{ID: actor.AccountID}, nil)
	fx.addressRepo.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, OwnerID: actor.AccountID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, scarf.ID).Return(scarf, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, scarf.ID, 1).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, boots.ID).Return(boots, nil)

	order, err := fx.service.Checkout(ctx, actor, usecase.CheckoutInput{
		AddressID: addressID,
		Delivery:  entity.DeliveryStandard,
		Payment:   entity.PaymentCard,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
	assert.Contains(t, err.Error(), "different sellers")
}

func TestOrderService_GetOrder_InvisibleToOtherCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: uuid.New()}, nil)

	order, err := fx.service.GetOrder(ctx, actor, orderID)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_GetOrder_SellerSeesOwnOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, SellerID: actor.AccountID, CustomerID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, actor, orderID)
	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_ListOrders_CustomerScope(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()

	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListOrdersQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
			require.NotNil(t, query.CustomerID)
			assert.Equal(t, actor.AccountID, *query.CustomerID)
			assert.Nil(t, query.SellerID)
			assert.Equal(t, 10, query.Offset)
			assert.Equal(t, 10, query.Limit)

			return []*entity.Order{{CustomerID: actor.AccountID}}, 25, nil
		})

	output, err := fx.service.ListOrders(ctx, actor, usecase.ListOrdersInput{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, output.Orders, 1)
	assert.Equal(t, 2, output.Pagination.Page)
	assert.Equal(t, int64(25), output.Pagination.Total)
	assert.Equal(t, 3, output.Pagination.TotalPages)
}

func TestOrderService_ListOrders_AdminSeesAllAndLimitIsClamped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

	fx.orderRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListOrdersQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
			assert.Nil(t, query.CustomerID)
			assert.Nil(t, query.SellerID)
			assert.Equal(t, 100, query.Limit)

			return nil, 0, nil
		})

	_, err := fx.service.ListOrders(ctx, actor, usecase.ListOrdersInput{Page: 1, Limit: 500})
	require.NoError(t, err)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	status := entity.OrderStatus("misplaced")
	_, err := fx.service.ListOrders(context.Background(), customerActor(), usecase.ListOrdersInput{Status: &status})
	assert.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestOrderService_AdvanceStatus_SellerMovesForward(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, SellerID: actor.AccountID, Status: entity.OrderStatusConfirmed}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Nil(t, order.DeliveredAt)
}

func TestOrderService_AdvanceStatus_DeliveredStampsTimestamp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, SellerID: actor.AccountID, Status: entity.OrderStatusShipped}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, fx.now, *order.DeliveredAt)
}

func TestOrderService_AdvanceStatus_SkippingAStateIsRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, SellerID: actor.AccountID, Status: entity.OrderStatusPending}, nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusShipped)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "INVALID_TRANSITION", appErrorCode(t, err))
}

func TestOrderService_AdvanceStatus_TerminalStateIsFrozen(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusCancelled)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "INVALID_TRANSITION", appErrorCode(t, err))
}

func TestOrderService_AdvanceStatus_CustomerMayOnlyCancel(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, CustomerID: actor.AccountID, Status: entity.OrderStatusConfirmed}, nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusProcessing)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestOrderService_AdvanceStatus_CancelRestocksEveryLine(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()
	shirtID := uuid.New()
	beltID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: actor.AccountID,
			Status:     entity.OrderStatusConfirmed,
			Items: []entity.OrderItem{
				{ProductID: shirtID, Quantity: 2},
				{ProductID: beltID, Quantity: 1},
			},
		}, nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, shirtID, 2).Return(nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, beltID, 1).Return(nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_AdvanceStatus_RestockSkipsVanishedProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := customerActor()
	orderID := uuid.New()
	goneID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			CustomerID: actor.AccountID,
			Status:     entity.OrderStatusPending,
			Items:      []entity.OrderItem{{ProductID: goneID, Quantity: 1}},
		}, nil)
	fx.productRepo.EXPECT().
		IncrementStock(ctx, goneID, 1).
		Return(repository.ErrProductNotFound)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_AdvanceStatus_UpdateError(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, SellerID: actor.AccountID, Status: entity.OrderStatusConfirmed}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("database error"))

	order, err := fx.service.AdvanceStatus(ctx, actor, orderID, entity.OrderStatusProcessing)
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "failed to update order status")
}

func TestOrderService_ConfirmPayment_SuccessConfirms(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "BF1714032000000").
		Return(&entity.Order{
			OrderNumber: "BF1714032000000",
			Payment:     entity.PaymentCashOnDelivery,
			Status:      entity.OrderStatusPending,
		}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		OrderNumber: "BF1714032000000",
		Success:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
}

func TestOrderService_ConfirmPayment_FailureCancelsAndRestocks(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	sandalsID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "BF1714032000000").
		Return(&entity.Order{
			OrderNumber: "BF1714032000000",
			Payment:     entity.PaymentCashOnDelivery,
			Status:      entity.OrderStatusPending,
			Items:       []entity.OrderItem{{ProductID: sandalsID, Quantity: 2}},
		}, nil)
	fx.productRepo.EXPECT().IncrementStock(ctx, sandalsID, 2).Return(nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		OrderNumber: "BF1714032000000",
		Success:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_ConfirmPayment_NotAwaitingPayment(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "BF1714032000000").
		Return(&entity.Order{
			OrderNumber: "BF1714032000000",
			Payment:     entity.PaymentCard,
			Status:      entity.OrderStatusConfirmed,
		}, nil)

	order, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{
		OrderNumber: "BF1714032000000",
		Success:     true,
	})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, "INVALID_TRANSITION", appErrorCode(t, err))
}

func TestOrderService_ConfirmPayment_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByOrderNumber(ctx, "BF0").
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.ConfirmPayment(ctx, usecase.ConfirmPaymentInput{OrderNumber: "BF0", Success: true})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}
