package repositories

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"ensabun/internal/query"
)

// Row is one record of an arbitrary table keyed by column name.
type Row = map[string]interface{}

// GenericRepository reads arbitrary tables named at request time.
type GenericRepository interface {
	GetAll(ctx context.Context, table string) ([]Row, error)
	GetByID(ctx context.Context, table, id string) (Row, error)
	Search(ctx context.Context, table, field, value string) ([]Row, error)
}

// SQLGenericRepository implements GenericRepository on a Store.
type SQLGenericRepository struct {
	store Store
}

// NewSQLGenericRepository creates a new instance of SQLGenericRepository.
func NewSQLGenericRepository(store Store) *SQLGenericRepository {
	return &SQLGenericRepository{store: store}
}

func (r *SQLGenericRepository) rows(ctx context.Context, q query.Query, err error) ([]Row, error) {
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := r.store.Select(ctx, q, &rows); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read table")
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// GetAll returns every row of table.
func (r *SQLGenericRepository) GetAll(ctx context.Context, table string) ([]Row, error) {
	q, err := query.SelectAll(table)
	return r.rows(ctx, q, err)
}

// GetByID returns the first row whose id column equals id, or ErrNotFound.
func (r *SQLGenericRepository) GetByID(ctx context.Context, table, id string) (Row, error) {
	q, err := query.SelectByID(table, id)
	rows, err := r.rows(ctx, q, err)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Search returns rows whose field contains value.
func (r *SQLGenericRepository) Search(ctx context.Context, table, field, value string) ([]Row, error) {
	q, err := query.SearchTable(table, field, value)
	return r.rows(ctx, q, err)
}
