// Package impl contains the implementation of the application's business logic.
package impl

import (
	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

const (
	fallbackDefaultLimit = 10
	fallbackMaxLimit     = 100
)

// pageWindow normalizes a 1-based page and limit against the configured
// bounds and returns the effective page, limit and offset.
func pageWindow(cfg *config.PaginationConfig, page, limit int) (int, int, int) {
	defaultLimit := fallbackDefaultLimit
	maxLimit := fallbackMaxLimit
	if cfg != nil {
		if cfg.DefaultLimit > 0 {
			defaultLimit = cfg.DefaultLimit
		}
		if cfg.MaxLimit > 0 {
			maxLimit = cfg.MaxLimit
		}
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit, (page - 1) * limit
}

// policyFromConfig builds the pricing policy from deployment configuration,
// falling back to the default policy for anything left unset.
func policyFromConfig(cfg *config.Config) pricing.Policy {
	policy := pricing.DefaultPolicy()
	if cfg == nil || cfg.Pricing == nil {
		return policy
	}

	pc := cfg.Pricing
	if pc.TaxRate > 0 {
		policy.TaxRate = pc.TaxRate
	}
	if pc.DiscountRate > 0 {
		policy.DiscountRate = pc.DiscountRate
	}
	if pc.DiscountThreshold > 0 {
		policy.DiscountThreshold = pc.DiscountThreshold
	}
	if len(pc.DeliveryCharges) > 0 {
		charges := make(map[entity.DeliveryMethod]int64, len(pc.DeliveryCharges))
		for method, charge := range pc.DeliveryCharges {
			charges[entity.DeliveryMethod(method)] = charge
		}
		policy.DeliveryCharges = charges
	}
	if len(pc.DeliveryLeadDays) > 0 {
		leadDays := make(map[entity.DeliveryMethod]int, len(pc.DeliveryLeadDays))
		for method, days := range pc.DeliveryLeadDays {
			leadDays[entity.DeliveryMethod(method)] = days
		}
		policy.DeliveryLeadDays = leadDays
	}

	return policy
}
