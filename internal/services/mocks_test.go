package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ensabun/internal/models"
	"ensabun/internal/query"
	"ensabun/internal/repositories"
)

// some returns an Optional holding v, as if the field was sent.
func some[T any](v T) models.Optional[T] {
	return models.Optional[T]{Set: true, Value: v}
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) details(args mock.Arguments) ([]models.ProductDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductDetail), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.ProductDetail, error) {
	return m.details(m.Called(ctx))
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductDetail), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, name string) ([]models.ProductDetail, error) {
	return m.details(m.Called(ctx, name))
}

func (m *MockProductRepository) GetByType(ctx context.Context, typeID int64) ([]models.ProductDetail, error) {
	return m.details(m.Called(ctx, typeID))
}

func (m *MockProductRepository) GetLowStock(ctx context.Context, threshold string) ([]models.ProductDetail, error) {
	return m.details(m.Called(ctx, threshold))
}

func (m *MockProductRepository) Create(ctx context.Context, row query.ProductRow) (int64, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, sets []query.Assignment) (int64, error) {
	args := m.Called(ctx, id, sets)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateType(ctx context.Context, id, typeID int64) (int64, error) {
	args := m.Called(ctx, id, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductTypeRepository is a mock implementation of repositories.ProductTypeRepository
type MockProductTypeRepository struct {
	mock.Mock
}

func (m *MockProductTypeRepository) GetAll(ctx context.Context) ([]models.ProductType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductType), args.Error(1)
}

func (m *MockProductTypeRepository) GetByID(ctx context.Context, id int64) (*models.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductType), args.Error(1)
}

func (m *MockProductTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductTypeRepository) CountProducts(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductTypeRepository) Create(ctx context.Context, label string) (int64, error) {
	args := m.Called(ctx, label)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductTypeRepository) Update(ctx context.Context, id int64, label string) (int64, error) {
	args := m.Called(ctx, id, label)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductTypeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockGenericRepository is a mock implementation of repositories.GenericRepository
type MockGenericRepository struct {
	mock.Mock
}

func (m *MockGenericRepository) GetAll(ctx context.Context, table string) ([]repositories.Row, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.Row), args.Error(1)
}

func (m *MockGenericRepository) GetByID(ctx context.Context, table, id string) (repositories.Row, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repositories.Row), args.Error(1)
}

func (m *MockGenericRepository) Search(ctx context.Context, table, field, value string) ([]repositories.Row, error) {
	args := m.Called(ctx, table, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.Row), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}
