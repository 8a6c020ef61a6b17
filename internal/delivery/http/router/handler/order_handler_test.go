package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentCallbackFixtures struct {
	handler *OrderHandler
	uc      *mockUsecase.MockOrderUsecase
	echo    *echo.Echo
}

func createPaymentCallbackTest(t *testing.T, configuredToken string) paymentCallbackFixtures {
	t.Helper()

	uc := mockUsecase.NewMockOrderUsecase(t)
	cfg := &config.Config{Payment: &config.PaymentConfig{CallbackToken: configuredToken}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()

	return paymentCallbackFixtures{
		handler: NewOrderHandler(uc, cfg, logger),
		uc:      uc,
		echo:    e,
	}
}

func (fx paymentCallbackFixtures) perform(t *testing.T, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(callbackTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.PaymentCallback(c))

	return rec
}

func TestOrderHandler_PaymentCallback_ValidToken(t *testing.T) {
	fx := createPaymentCallbackTest(t, "provider-secret")

	order := &entity.Order{
		OrderNumber: "BF1714032000000",
		Status:      entity.OrderStatusConfirmed,
		Payment:     entity.PaymentCashOnDelivery,
	}
	fx.uc.EXPECT().
		ConfirmPayment(mock.Anything, usecase.ConfirmPaymentInput{OrderNumber: "BF1714032000000", Success: true}).
		Return(order, nil)

	rec := fx.perform(t, "provider-secret", `{"orderNumber":"BF1714032000000","success":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BF1714032000000")
	assert.Contains(t, rec.Body.String(), "confirmed")
}

func TestOrderHandler_PaymentCallback_WrongToken(t *testing.T) {
	fx := createPaymentCallbackTest(t, "provider-secret")

	rec := fx.perform(t, "guessed-token", `{"orderNumber":"BF1714032000000","success":true}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.uc.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything)
}

func TestOrderHandler_PaymentCallback_MissingToken(t *testing.T) {
	fx := createPaymentCallbackTest(t, "provider-secret")

	rec := fx.perform(t, "", `{"orderNumber":"BF1714032000000","success":false}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.uc.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything)
}

func TestOrderHandler_PaymentCallback_UnconfiguredTokenRejectsAll(t *testing.T) {
	fx := createPaymentCallbackTest(t, "")

	rec := fx.perform(t, "anything", `{"orderNumber":"BF1714032000000","success":true}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.uc.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything)
}
