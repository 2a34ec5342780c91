package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"ensabun/internal/apperr"
	"ensabun/internal/models"
	"ensabun/internal/query"
	"ensabun/internal/repositories"
)

// DefaultLowStockThreshold is used when the low-stock request names none.
const DefaultLowStockThreshold = "10"

const requiredProductFields = "productName and productTypeID are required"

type productCreate struct {
	ProductName   string  `json:"productName" validate:"required,max=255"`
	TotalCost     float64 `json:"totalCost" validate:"gte=0"`
	SalePrice     float64 `json:"salePrice" validate:"gte=0"`
	StockAmount   int64   `json:"stockAmount" validate:"gte=0"`
	ProductTypeID int64   `json:"productTypeID" validate:"required"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	integrity *IntegrityChecker
	validate  *validator.Validate
	notifier
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, types ProductTypeLookup, events EventPublisher, log logrus.FieldLogger) *ProductService {
	return &ProductService{
		repo:      repo,
		integrity: NewIntegrityChecker(types),
		validate:  newValidator(),
		notifier:  notifier{events: events, log: log},
	}
}

// GetAllProducts retrieves all products with their type labels.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.ProductDetail, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Store("Error fetching products", err)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.ProductDetail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperr.Store("Error fetching product", err)
	}
	return p, nil
}

// SearchProducts returns products whose name contains name.
func (s *ProductService) SearchProducts(ctx context.Context, name string) ([]models.ProductDetail, error) {
	products, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperr.Store("Error searching products", err)
	}
	return products, nil
}

// GetProductsByType returns the products of one type.
func (s *ProductService) GetProductsByType(ctx context.Context, typeID int64) ([]models.ProductDetail, error) {
	products, err := s.repo.GetByType(ctx, typeID)
	if err != nil {
		return nil, apperr.Store("Error fetching products by type", err)
	}
	return products, nil
}

// GetLowStockProducts returns products with stock at or below threshold,
// lowest stock first. threshold is passed to the store unparsed.
func (s *ProductService) GetLowStockProducts(ctx context.Context, threshold string) ([]models.ProductDetail, error) {
	products, err := s.repo.GetLowStock(ctx, threshold)
	if err != nil {
		return nil, apperr.Store("Error fetching low stock products", err)
	}
	return products, nil
}

// CreateProduct validates the body, checks the referenced type and inserts
// the product. Absent or null numeric fields default to 0.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput) (int64, error) {
	body := productCreate{
		ProductName:   strings.TrimSpace(in.ProductName.Value),
		TotalCost:     in.TotalCost.Value,
		SalePrice:     in.SalePrice.Value,
		StockAmount:   in.StockAmount.Value,
		ProductTypeID: in.ProductTypeID.Value,
	}
	if err := s.validate.Struct(body); err != nil {
		return 0, toValidationError(err, requiredProductFields)
	}
	if err := s.integrity.CheckProductType(ctx, body.ProductTypeID); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, query.ProductRow{
		ProductName:   body.ProductName,
		TotalCost:     body.TotalCost,
		SalePrice:     body.SalePrice,
		StockAmount:   body.StockAmount,
		ProductTypeID: body.ProductTypeID,
	})
	if err != nil {
		return 0, apperr.Store("Error creating product", err)
	}
	s.notify(ctx, EventProductCreated, map[string]interface{}{
		"productID":     id,
		"productName":   body.ProductName,
		"productTypeID": body.ProductTypeID,
	})
	return id, nil
}

// UpdateProduct writes only the fields present in the body. Nothing is
// written when the body carries no updatable field or names an unknown type.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) (int64, error) {
	sets, err := s.assignments(in)
	if err != nil {
		return 0, err
	}
	if len(sets) == 0 {
		return 0, apperr.Validation("No fields to update")
	}
	if in.ProductTypeID.Set {
		if err := s.integrity.CheckProductType(ctx, in.ProductTypeID.Value); err != nil {
			return 0, err
		}
	}

	affected, err := s.repo.Update(ctx, id, sets)
	if err != nil {
		return 0, apperr.Store("Error updating product", err)
	}
	if affected == 0 {
		return 0, apperr.NotFound("Product not found")
	}

	changed := map[string]interface{}{"productID": id}
	for _, a := range sets {
		changed[a.Column] = a.Value
	}
	s.notify(ctx, EventProductUpdated, changed)
	return affected, nil
}

// UpdateProductType moves a product to another existing type.
func (s *ProductService) UpdateProductType(ctx context.Context, id int64, ref models.ProductTypeRef) (int64, error) {
	if err := s.integrity.CheckProductType(ctx, ref.ProductTypeID.Value); err != nil {
		return 0, err
	}
	affected, err := s.repo.UpdateType(ctx, id, ref.ProductTypeID.Value)
	if err != nil {
		return 0, apperr.Store("Error updating product type", err)
	}
	if affected == 0 {
		return 0, apperr.NotFound("Product not found")
	}
	s.notify(ctx, EventProductTypeChanged, map[string]int64{
		"productID":     id,
		"productTypeID": ref.ProductTypeID.Value,
	})
	return affected, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperr.Store("Error deleting product", err)
	}
	if affected == 0 {
		return 0, apperr.NotFound("Product not found")
	}
	s.notify(ctx, EventProductDeleted, map[string]int64{"productID": id})
	return affected, nil
}

// assignments validates each present field and returns them in column order.
func (s *ProductService) assignments(in models.ProductInput) ([]query.Assignment, error) {
	var sets []query.Assignment

	if in.ProductName.Set {
		name := strings.TrimSpace(in.ProductName.Value)
		if in.ProductName.Null || name == "" {
			return nil, apperr.Validation("productName cannot be empty")
		}
		if err := checkVar(s.validate, "productName", name, "max=255"); err != nil {
			return nil, err
		}
		sets = append(sets, query.Assignment{Column: "productName", Value: name})
	}
	for _, f := range []struct {
		column string
		value  models.Optional[float64]
	}{
		{"totalCost", in.TotalCost},
		{"salePrice", in.SalePrice},
	} {
		if !f.value.Set {
			continue
		}
		if f.value.Null {
			return nil, apperr.Validation(f.column + " cannot be null")
		}
		if err := checkVar(s.validate, f.column, f.value.Value, "gte=0"); err != nil {
			return nil, err
		}
		sets = append(sets, query.Assignment{Column: f.column, Value: f.value.Value})
	}
	if in.StockAmount.Set {
		if in.StockAmount.Null {
			return nil, apperr.Validation("stockAmount cannot be null")
		}
		if err := checkVar(s.validate, "stockAmount", in.StockAmount.Value, "gte=0"); err != nil {
			return nil, err
		}
		sets = append(sets, query.Assignment{Column: "stockAmount", Value: in.StockAmount.Value})
	}
	if in.ProductTypeID.Set {
		if !in.ProductTypeID.Present() || in.ProductTypeID.Value == 0 {
			return nil, apperr.Validation("productTypeID cannot be empty")
		}
		sets = append(sets, query.Assignment{Column: "productTypeID", Value: in.ProductTypeID.Value})
	}
	return sets, nil
}
