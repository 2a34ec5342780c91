package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ensabun/internal/apperr"
	"ensabun/internal/models"
	"ensabun/internal/repositories"
	"ensabun/internal/services"
)

func newProductTypeService(t *testing.T) (*services.ProductTypeService, *MockProductTypeRepository, *MockPublisher) {
	t.Helper()
	repo := new(MockProductTypeRepository)
	pub := new(MockPublisher)
	log, _ := test.NewNullLogger()
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})
	return services.NewProductTypeService(repo, pub, log), repo, pub
}

func TestProductTypeService_GetAll(t *testing.T) {
	service, repo, _ := newProductTypeService(t)
	expected := []models.ProductType{{ProductTypeID: 1, ProductType: "Beverage"}}
	repo.On("GetAll", mock.Anything).Return(expected, nil).Once()

	types, err := service.GetAllProductTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, types)
}

func TestProductTypeService_GetByID(t *testing.T) {
	service, repo, _ := newProductTypeService(t)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, repositories.ErrNotFound).Once()

	_, err := service.GetProductTypeByID(context.Background(), 5)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "Product type not found")
}

func TestProductTypeService_Create(t *testing.T) {
	service, repo, pub := newProductTypeService(t)
	repo.On("Create", mock.Anything, "Beverage").Return(int64(1), nil).Once()
	pub.On("Publish", mock.Anything, services.EventProductTypeCreated, mock.Anything).Return(nil).Once()

	created, err := service.CreateProductType(context.Background(), models.ProductTypeInput{ProductType: some(" Beverage ")})
	require.NoError(t, err)
	assert.Equal(t, &models.ProductType{ProductTypeID: 1, ProductType: "Beverage"}, created)
}

func TestProductTypeService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input models.ProductTypeInput
	}{
		{"absent", models.ProductTypeInput{}},
		{"null", models.ProductTypeInput{ProductType: models.Optional[string]{Set: true, Null: true}}},
		{"blank", models.ProductTypeInput{ProductType: some("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newProductTypeService(t)
			_, err := service.CreateProductType(context.Background(), tt.input)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.EqualError(t, err, "productType is required")
		})
	}
}

func TestProductTypeService_Update(t *testing.T) {
	service, repo, pub := newProductTypeService(t)
	ctx := context.Background()

	repo.On("Update", mock.Anything, int64(1), "Drinks").Return(int64(1), nil).Once()
	pub.On("Publish", mock.Anything, services.EventProductTypeUpdated, mock.Anything).Return(nil).Once()
	affected, err := service.UpdateProductType(ctx, 1, models.ProductTypeInput{ProductType: some("Drinks")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	repo.On("Update", mock.Anything, int64(9), "Drinks").Return(int64(0), nil).Once()
	_, err = service.UpdateProductType(ctx, 9, models.ProductTypeInput{ProductType: some("Drinks")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProductTypeService_Delete(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		service, repo, _ := newProductTypeService(t)
		repo.On("CountProducts", mock.Anything, int64(1)).Return(int64(3), nil).Once()

		_, err := service.DeleteProductType(context.Background(), 1)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.EqualError(t, err, "Cannot delete product type. There are products using this type.")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unused", func(t *testing.T) {
		service, repo, pub := newProductTypeService(t)
		repo.On("CountProducts", mock.Anything, int64(2)).Return(int64(0), nil).Once()
		repo.On("Delete", mock.Anything, int64(2)).Return(int64(1), nil).Once()
		pub.On("Publish", mock.Anything, services.EventProductTypeDeleted, map[string]int64{"productTypeID": 2}).Return(nil).Once()

		affected, err := service.DeleteProductType(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("missing", func(t *testing.T) {
		service, repo, _ := newProductTypeService(t)
		repo.On("CountProducts", mock.Anything, int64(9)).Return(int64(0), nil).Once()
		repo.On("Delete", mock.Anything, int64(9)).Return(int64(0), nil).Once()

		_, err := service.DeleteProductType(context.Background(), 9)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("count fails", func(t *testing.T) {
		service, repo, _ := newProductTypeService(t)
		repo.On("CountProducts", mock.Anything, int64(4)).Return(int64(0), errors.New("gone")).Once()

		_, err := service.DeleteProductType(context.Background(), 4)
		assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
	})
}
