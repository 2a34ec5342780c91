package repositories

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"ensabun/internal/models"
	"ensabun/internal/query"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.ProductDetail, error)
	GetByID(ctx context.Context, id int64) (*models.ProductDetail, error)
	SearchByName(ctx context.Context, name string) ([]models.ProductDetail, error)
	GetByType(ctx context.Context, typeID int64) ([]models.ProductDetail, error)
	GetLowStock(ctx context.Context, threshold string) ([]models.ProductDetail, error)
	Create(ctx context.Context, row query.ProductRow) (int64, error)
	Update(ctx context.Context, id int64, sets []query.Assignment) (int64, error)
	UpdateType(ctx context.Context, id, typeID int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// SQLProductRepository implements ProductRepository on a Store.
type SQLProductRepository struct {
	store Store
}

// NewSQLProductRepository creates a new instance of SQLProductRepository.
func NewSQLProductRepository(store Store) *SQLProductRepository {
	return &SQLProductRepository{store: store}
}

func (r *SQLProductRepository) list(ctx context.Context, q query.Query, what string) ([]models.ProductDetail, error) {
	products := []models.ProductDetail{}
	if err := r.store.Select(ctx, q, &products); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get %s", what)
	}
	return products, nil
}

// GetAll retrieves all products ordered by id.
func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.ProductDetail, error) {
	return r.list(ctx, query.ListProducts(), "all products")
}

// GetByID retrieves one product, or ErrNotFound.
func (r *SQLProductRepository) GetByID(ctx context.Context, id int64) (*models.ProductDetail, error) {
	products, err := r.list(ctx, query.ProductByID(id), "product")
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return &products[0], nil
}

// SearchByName retrieves products whose name contains name.
func (r *SQLProductRepository) SearchByName(ctx context.Context, name string) ([]models.ProductDetail, error) {
	return r.list(ctx, query.SearchProducts(name), "products by name")
}

// GetByType retrieves the products of one type.
func (r *SQLProductRepository) GetByType(ctx context.Context, typeID int64) ([]models.ProductDetail, error) {
	return r.list(ctx, query.ProductsByType(typeID), "products by type")
}

// GetLowStock retrieves products at or below the stock threshold.
func (r *SQLProductRepository) GetLowStock(ctx context.Context, threshold string) ([]models.ProductDetail, error) {
	return r.list(ctx, query.LowStockProducts(threshold), "low stock products")
}

// Create inserts a product and returns its generated id.
func (r *SQLProductRepository) Create(ctx context.Context, row query.ProductRow) (int64, error) {
	res, err := r.store.Exec(ctx, query.InsertProduct(row))
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to create product")
	}
	return res.InsertID, nil
}

// Update sets the given columns and returns the affected row count.
func (r *SQLProductRepository) Update(ctx context.Context, id int64, sets []query.Assignment) (int64, error) {
	q, err := query.UpdateProduct(id, sets)
	if err != nil {
		return 0, err
	}
	res, err := r.store.Exec(ctx, q)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to update product %d", id)
	}
	return res.AffectedRows, nil
}

// UpdateType changes the product type of one product.
func (r *SQLProductRepository) UpdateType(ctx context.Context, id, typeID int64) (int64, error) {
	res, err := r.store.Exec(ctx, query.UpdateProductTypeRef(id, typeID))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to update type of product %d", id)
	}
	return res.AffectedRows, nil
}

// Delete removes a product and returns the affected row count.
func (r *SQLProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.store.Exec(ctx, query.DeleteProduct(id))
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to delete product %d", id)
	}
	return res.AffectedRows, nil
}
