package services

import (
	"context"

	"ensabun/internal/apperr"
)

// ProductTypeLookup is the read used by the integrity check.
type ProductTypeLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// IntegrityChecker confirms that a referenced product type exists before a
// product write. The check and the write are separate store round trips, so
// a type deleted in between leaves a dangling reference.
type IntegrityChecker struct {
	types ProductTypeLookup
}

// NewIntegrityChecker creates a new IntegrityChecker.
func NewIntegrityChecker(types ProductTypeLookup) *IntegrityChecker {
	return &IntegrityChecker{types: types}
}

// CheckProductType fails with a validation error for an empty id, a
// reference error for an unknown id, and a store error if the lookup fails.
func (c *IntegrityChecker) CheckProductType(ctx context.Context, id int64) error {
	if id == 0 {
		return apperr.Validation("productTypeID is required")
	}
	exists, err := c.types.Exists(ctx, id)
	if err != nil {
		return apperr.Store("Error verifying productTypeID", err)
	}
	if !exists {
		return apperr.Reference("Invalid productTypeID")
	}
	return nil
}
