// Package pricing implements the order pricing engine: a pure computation that
// turns resolved cart lines, a delivery method and the configured discount
// policy into a priced summary. Callers persist the result; nothing here does.
package pricing

import (
	"math"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain errors reported by the engine.
var (
	// ErrInvalidCart is returned when a line carries a non-positive quantity or
	// a negative unit price.
	ErrInvalidCart = errors.New("cart line has non-positive quantity or negative price")
	// ErrUnknownDeliveryMethod is returned when no charge is configured for the
	// requested delivery method.
	ErrUnknownDeliveryMethod = errors.New("unknown delivery method")
)

// Line is a resolved cart line: a unit price snapshot and a quantity.
type Line struct {
	UnitPrice int64
	Quantity  int
}

// Summary is the priced result of a quote. All amounts are non-negative and
// Total = Subtotal + Shipping + Tax - Discount, clamped at zero.
type Summary struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Discount int64
	Total    int64
}

// Policy carries the configured business rules the engine applies. The tax
// rate, delivery charges and discount rule are deployment configuration, not
// constants of the engine.
type Policy struct {
	// TaxRate is the fraction of the subtotal charged as tax, e.g. 0.18.
	TaxRate float64
	// DeliveryCharges maps each supported delivery method to its flat charge.
	DeliveryCharges map[entity.DeliveryMethod]int64
	// DeliveryLeadDays maps each supported delivery method to its lead time in days.
	DeliveryLeadDays map[entity.DeliveryMethod]int
	// DiscountThreshold is the subtotal above which the discount applies.
	DiscountThreshold int64
	// DiscountRate is the fraction of the subtotal granted as discount, e.g. 0.10.
	DiscountRate float64
}

// DefaultPolicy returns the policy matching the storefront's launch
// jurisdiction: 18% GST, 10% off above 5000, and the standard delivery table.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate: 0.18,
		DeliveryCharges: map[entity.DeliveryMethod]int64{
			entity.DeliveryStandard:  50,
			entity.DeliveryExpress:   150,
			entity.DeliveryOvernight: 250,
		},
		DeliveryLeadDays: map[entity.DeliveryMethod]int{
			entity.DeliveryStandard:  7,
			entity.DeliveryExpress:   3,
			entity.DeliveryOvernight: 1,
		},
		DiscountThreshold: 5000,
		DiscountRate:      0.10,
	}
}

// Quote prices the given lines for the given delivery method.
// The computation is pure: it has no side effects and touches no storage.
func (p Policy) Quote(lines []Line, delivery entity.DeliveryMethod) (*Summary, error) {
	var subtotal int64
	for _, line := range lines {
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			return nil, errors.WithStack(ErrInvalidCart)
		}
		subtotal += line.UnitPrice * int64(line.Quantity)
	}

	shipping, ok := p.DeliveryCharges[delivery]
	if !ok {
		return nil, errors.Wrap(ErrUnknownDeliveryMethod, delivery.String())
	}

	tax := roundHalfUp(float64(subtotal) * p.TaxRate)

	var discount int64
	if subtotal > p.DiscountThreshold {
		discount = roundHalfUp(float64(subtotal) * p.DiscountRate)
	}
	// The discount never pushes the total below zero.
	if max := subtotal + shipping + tax; discount > max {
		discount = max
	}

	return &Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal + shipping + tax - discount,
	}, nil
}

// EstimatedDelivery returns from plus the configured lead time of the delivery
// method: exactly lead-days times 24 hours.
func (p Policy) EstimatedDelivery(delivery entity.DeliveryMethod, from time.Time) (time.Time, error) {
	days, ok := p.DeliveryLeadDays[delivery]
	if !ok {
		return time.Time{}, errors.Wrap(ErrUnknownDeliveryMethod, delivery.String())
	}

	return from.Add(time.Duration(days) * 24 * time.Hour), nil
}

// roundHalfUp rounds a fractional currency amount to the nearest whole unit,
// with .5 rounding upward.
func roundHalfUp(amount float64) int64 {
	return int64(math.Floor(amount + 0.5))
}
