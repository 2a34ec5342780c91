package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"ensabun/internal/apperr"
	"ensabun/internal/models"
	"ensabun/internal/repositories"
)

type productTypeLabel struct {
	ProductType string `json:"productType" validate:"required,max=100"`
}

// ProductTypeService handles business logic related to product types.
type ProductTypeService struct {
	repo     repositories.ProductTypeRepository
	validate *validator.Validate
	notifier
}

// NewProductTypeService creates a new ProductTypeService. events may be nil.
func NewProductTypeService(repo repositories.ProductTypeRepository, events EventPublisher, log logrus.FieldLogger) *ProductTypeService {
	return &ProductTypeService{
		repo:     repo,
		validate: newValidator(),
		notifier: notifier{events: events, log: log},
	}
}

// GetAllProductTypes retrieves every product type ordered by id.
func (s *ProductTypeService) GetAllProductTypes(ctx context.Context) ([]models.ProductType, error) {
	types, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Store("Error fetching product types", err)
	}
	return types, nil
}

// GetProductTypeByID retrieves a single product type.
func (s *ProductTypeService) GetProductTypeByID(ctx context.Context, id int64) (*models.ProductType, error) {
	pt, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("Product type not found")
	}
	if err != nil {
		return nil, apperr.Store("Error fetching product type", err)
	}
	return pt, nil
}

// CreateProductType stores a new label and returns the created row.
func (s *ProductTypeService) CreateProductType(ctx context.Context, in models.ProductTypeInput) (*models.ProductType, error) {
	label, err := s.label(in)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, label)
	if err != nil {
		return nil, apperr.Store("Error creating product type", err)
	}
	created := &models.ProductType{ProductTypeID: id, ProductType: label}
	s.notify(ctx, EventProductTypeCreated, created)
	return created, nil
}

// UpdateProductType renames a product type and returns the affected rows.
func (s *ProductTypeService) UpdateProductType(ctx context.Context, id int64, in models.ProductTypeInput) (int64, error) {
	label, err := s.label(in)
	if err != nil {
		return 0, err
	}
	affected, err := s.repo.Update(ctx, id, label)
	if err != nil {
		return 0, apperr.Store("Error updating product type", err)
	}
	if affected == 0 {
		return 0, apperr.NotFound("Product type not found")
	}
	s.notify(ctx, EventProductTypeUpdated, models.ProductType{ProductTypeID: id, ProductType: label})
	return affected, nil
}

// DeleteProductType removes a product type that no product references.
// The dependent count and the delete are separate round trips.
func (s *ProductTypeService) DeleteProductType(ctx context.Context, id int64) (int64, error) {
	dependents, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return 0, apperr.Store("Error deleting product type", err)
	}
	if dependents > 0 {
		return 0, apperr.Conflict("Cannot delete product type. There are products using this type.")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperr.Store("Error deleting product type", err)
	}
	if affected == 0 {
		return 0, apperr.NotFound("Product type not found")
	}
	s.notify(ctx, EventProductTypeDeleted, map[string]int64{"productTypeID": id})
	return affected, nil
}

func (s *ProductTypeService) label(in models.ProductTypeInput) (string, error) {
	body := productTypeLabel{ProductType: strings.TrimSpace(in.ProductType.Value)}
	if err := s.validate.Struct(body); err != nil {
		return "", toValidationError(err, "productType is required")
	}
	return body.ProductType, nil
}
