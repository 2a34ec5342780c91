package repositories

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"ensabun/internal/models"
	"ensabun/internal/query"
)

// ProductTypeRepository defines the interface for product type data access.
type ProductTypeRepository interface {
	GetAll(ctx context.Context) ([]models.ProductType, error)
	GetByID(ctx context.Context, id int64) (*models.ProductType, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CountProducts(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, label string) (int64, error)
	Update(ctx context.Context, id int64, label string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SQLProductTypeRepository implements ProductTypeRepository on a Store.
type SQLProductTypeRepository struct {
	store Store
}

// NewSQLProductTypeRepository creates a new instance of SQLProductTypeRepository.
func NewSQLProductTypeRepository(store Store) *SQLProductTypeRepository {
	return &SQLProductTypeRepository{store: store}
}

// GetAll retrieves all product types ordered by id.
func (r *SQLProductTypeRepository) GetAll(ctx context.Context) ([]models.ProductType, error) {
	types := []models.ProductType{}
	if err := r.store.Select(ctx, query.ListProductTypes(), &types); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get all product types")
	}
	return types, nil
}

// GetByID retrieves one product type, or ErrNotFound.
func (r *SQLProductTypeRepository) GetByID(ctx context.Context, id int64) (*models.ProductType, error) {
	var types []models.ProductType
	if err := r.store.Select(ctx, query.ProductTypeByID(id), &types); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get product type %d", id)
	}
	if len(types) == 0 {
		return nil, ErrNotFound
	}
	return &types[0], nil
}

// Exists reports whether a product type with the given id is stored.
func (r *SQLProductTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var ids []int64
	if err := r.store.Select(ctx, query.ProductTypeExists(id), &ids); err != nil {
		return false, pkgerrors.Wrapf(err, "failed to look up product type %d", id)
	}
	return len(ids) > 0, nil
}

// CountProducts counts products referencing the product type.
func (r *SQLProductTypeRepository) CountProducts(ctx context.Context, id int64) (int64, error) {
	var counts []int64
	if err := r.store.Select(ctx, query.CountProductsOfType(id), &counts); err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to count products of type %d", id)
	}
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0], nil
}

// Create inserts a product type and returns its generated id.
func (r *SQLProductTypeRepository) Create(ctx context.Context, label string) (int64, error) {
	res, err := r.store.Exec(ctx, query.InsertProductType(label))
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to create product type")
	}
	return res.InsertID, nil
}

// Update renames a product type and returns the affected row count.
func (r *SQLProductTypeRepository) Update(ctx context.Context, id int64, label string) (int64, error) {
	res, err := r.store.Exec(ctx, query.UpdateProductType(id, label))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to update product type %d", id)
	}
	return res.AffectedRows, nil
}

// Delete removes a product type and returns the affected row count.
func (r *SQLProductTypeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.store.Exec(ctx, query.DeleteProductType(id))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to delete product type %d", id)
	}
	return res.AffectedRows, nil
}
