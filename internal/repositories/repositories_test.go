package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ensabun/internal/models"
	"ensabun/internal/query"
	"ensabun/internal/repositories"
)

// newSQLiteStore opens a private in-memory database with the inventory schema.
func newSQLiteStore(t *testing.T) (*repositories.GORMStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.ProductType{}, &models.Product{}))
	return repositories.NewGORMStore(db), db
}

func TestProductTypeRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteStore(t)
	repo := repositories.NewSQLProductTypeRepository(store)

	id, err := repo.Create(ctx, "Beverage")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repo.Create(ctx, "Snack")
	require.NoError(t, err)

	types, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Beverage", types[0].ProductType)

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 99)
	require.NoError(t, err)
	assert.False(t, exists)

	affected, err := repo.Update(ctx, id, "Drinks")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	pt, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", pt.ProductType)

	affected, err = repo.Update(ctx, 99, "Nothing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	affected, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductTypeRepository_CountProducts(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLProductTypeRepository(store)

	require.NoError(t, db.Create(&models.ProductType{ProductType: "Beverage"}).Error)
	require.NoError(t, db.Create(&models.Product{ProductName: "Tea", ProductTypeID: 1}).Error)
	require.NoError(t, db.Create(&models.Product{ProductName: "Coffee", ProductTypeID: 1}).Error)

	count, err := repo.CountProducts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountProducts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestProductRepository_CreateAndReadBack(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLProductRepository(store)
	require.NoError(t, db.Create(&models.ProductType{ProductType: "Beverage"}).Error)

	id, err := repo.Create(ctx, query.ProductRow{ProductName: "Tea", ProductTypeID: 1})
	require.NoError(t, err)

	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tea", p.ProductName)
	assert.Equal(t, float64(0), p.TotalCost)
	assert.Equal(t, float64(0), p.SalePrice)
	assert.Equal(t, int64(0), p.StockAmount)
	require.NotNil(t, p.ProductType)
	assert.Equal(t, "Beverage", *p.ProductType)

	_, err = repo.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductRepository_DanglingTypeReadsAsNullLabel(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLProductRepository(store)
	require.NoError(t, db.Create(&models.Product{ProductName: "Orphan", ProductTypeID: 42}).Error)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].ProductType)
}

func TestProductRepository_PartialUpdateAndType(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLProductRepository(store)
	require.NoError(t, db.Create(&models.ProductType{ProductType: "Beverage"}).Error)
	require.NoError(t, db.Create(&models.ProductType{ProductType: "Snack"}).Error)
	require.NoError(t, db.Create(&models.Product{ProductName: "Tea", SalePrice: 3, StockAmount: 20, ProductTypeID: 1}).Error)

	affected, err := repo.Update(ctx, 1, []query.Assignment{{Column: "stockAmount", Value: int64(5)}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.StockAmount)
	assert.Equal(t, float64(3), p.SalePrice)
	assert.Equal(t, "Tea", p.ProductName)

	affected, err = repo.UpdateType(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	p, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Snack", *p.ProductType)

	_, err = repo.Update(ctx, 1, nil)
	assert.ErrorIs(t, err, query.ErrNoAssignments)

	affected, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestProductRepository_Listings(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLProductRepository(store)
	require.NoError(t, db.Create(&models.ProductType{ProductType: "Beverage"}).Error)
	require.NoError(t, db.Create(&models.ProductType{ProductType: "Snack"}).Error)
	for _, p := range []models.Product{
		{ProductName: "Green Tea", StockAmount: 3, ProductTypeID: 1},
		{ProductName: "Black Tea", StockAmount: 3, ProductTypeID: 1},
		{ProductName: "Chips", StockAmount: 50, ProductTypeID: 2},
		{ProductName: "Cookies", StockAmount: 10, ProductTypeID: 2},
	} {
		p := p
		require.NoError(t, db.Create(&p).Error)
	}

	found, err := repo.SearchByName(ctx, "Tea")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Black Tea", found[0].ProductName)

	byType, err := repo.GetByType(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byType, 2)
	assert.Equal(t, "Chips", byType[0].ProductName)

	low, err := repo.GetLowStock(ctx, "10")
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, []string{"Black Tea", "Green Tea", "Cookies"},
		[]string{low[0].ProductName, low[1].ProductName, low[2].ProductName})

	none, err := repo.SearchByName(ctx, "Nope")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGenericRepository(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	repo := repositories.NewSQLGenericRepository(store)
	require.NoError(t, db.Exec("CREATE TABLE widgets (id INTEGER PRIMARY KEY, label TEXT)").Error)
	require.NoError(t, db.Exec("INSERT INTO widgets (id, label) VALUES (1, 'navy blue'), (2, 'red')").Error)

	rows, err := repo.GetAll(ctx, "widgets")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	row, err := repo.GetByID(ctx, "widgets", "2")
	require.NoError(t, err)
	assert.Equal(t, "red", row["label"])

	_, err = repo.GetByID(ctx, "widgets", "9")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	rows, err = repo.Search(ctx, "widgets", "label", "blue")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0]["id"])

	rows, err = repo.Search(ctx, "widgets", "label", "green")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	_, err = repo.GetAll(ctx, "nonexistentTable")
	assert.Error(t, err)

	_, err = repo.GetAll(ctx, "widgets; DROP TABLE product")
	assert.ErrorIs(t, err, query.ErrInvalidIdentifier)

	// product has no id column, so the store rejects the lookup
	_, err = repo.GetByID(ctx, "product", "1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrNotFound)
}
