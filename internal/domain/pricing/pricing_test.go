package pricing

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_StandardDeliveryWithDiscount(t *testing.T) {
	policy := DefaultPolicy()

	summary, err := policy.Quote([]Line{{UnitPrice: 2999, Quantity: 2}}, entity.DeliveryStandard)

	require.NoError(t, err)
	assert.Equal(t, int64(5998), summary.Subtotal)
	assert.Equal(t, int64(50), summary.Shipping)
	// 5998 * 0.18 = 1079.64, rounded half-up.
	assert.Equal(t, int64(1080), summary.Tax)
	// Subtotal exceeds 5000, so 10% of 5998 rounded half-up.
	assert.Equal(t, int64(600), summary.Discount)
	assert.Equal(t, int64(6528), summary.Total)
}

func TestQuote_ExpressDeliveryBelowDiscountThreshold(t *testing.T) {
	policy := DefaultPolicy()

	summary, err := policy.Quote([]Line{{UnitPrice: 899, Quantity: 1}}, entity.DeliveryExpress)

	require.NoError(t, err)
	assert.Equal(t, int64(899), summary.Subtotal)
	assert.Equal(t, int64(150), summary.Shipping)
	assert.Equal(t, int64(162), summary.Tax)
	assert.Equal(t, int64(0), summary.Discount)
	assert.Equal(t, int64(1211), summary.Total)
}

func TestQuote_SubtotalIsCommutative(t *testing.T) {
	policy := DefaultPolicy()
	lines := []Line{
		{UnitPrice: 1250, Quantity: 3},
		{UnitPrice: 499, Quantity: 1},
		{UnitPrice: 2999, Quantity: 2},
	}
	reversed := []Line{lines[2], lines[1], lines[0]}

	forward, err := policy.Quote(lines, entity.DeliveryStandard)
	require.NoError(t, err)
	backward, err := policy.Quote(reversed, entity.DeliveryStandard)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
	assert.Equal(t, int64(1250*3+499+2999*2), forward.Subtotal)
}

func TestQuote_TotalNeverNegative(t *testing.T) {
	policy := DefaultPolicy()
	// A pathological policy granting more discount than the order is worth.
	policy.DiscountRate = 5.0
	policy.DiscountThreshold = 0

	summary, err := policy.Quote([]Line{{UnitPrice: 100, Quantity: 1}}, entity.DeliveryStandard)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Total)
	assert.Equal(t, summary.Subtotal+summary.Shipping+summary.Tax, summary.Discount)
}

func TestQuote_RejectsInvalidLines(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		name  string
		lines []Line
	}{
		{"zero quantity", []Line{{UnitPrice: 100, Quantity: 0}}},
		{"negative quantity", []Line{{UnitPrice: 100, Quantity: -2}}},
		{"negative price", []Line{{UnitPrice: -1, Quantity: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := policy.Quote(tc.lines, entity.DeliveryStandard)
			assert.ErrorIs(t, err, ErrInvalidCart)
		})
	}
}

func TestQuote_UnknownDeliveryMethod(t *testing.T) {
	policy := DefaultPolicy()

	_, err := policy.Quote([]Line{{UnitPrice: 100, Quantity: 1}}, entity.DeliveryMethod("drone"))

	assert.ErrorIs(t, err, ErrUnknownDeliveryMethod)
}

func TestQuote_EmptyCartPricesToShippingPlusTax(t *testing.T) {
	policy := DefaultPolicy()

	summary, err := policy.Quote(nil, entity.DeliveryStandard)

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Subtotal)
	assert.Equal(t, int64(50), summary.Total)
}

func TestEstimatedDelivery(t *testing.T) {
	policy := DefaultPolicy()
	from := time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		method entity.DeliveryMethod
		days   int
	}{
		{entity.DeliveryStandard, 7},
		{entity.DeliveryExpress, 3},
		{entity.DeliveryOvernight, 1},
	}

	for _, tc := range cases {
		t.Run(tc.method.String(), func(t *testing.T) {
			eta, err := policy.EstimatedDelivery(tc.method, from)
			require.NoError(t, err)
			assert.Equal(t, from.Add(time.Duration(tc.days)*24*time.Hour), eta)
		})
	}

	_, err := policy.EstimatedDelivery(entity.DeliveryMethod("pigeon"), from)
	assert.ErrorIs(t, err, ErrUnknownDeliveryMethod)
}
