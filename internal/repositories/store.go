package repositories

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ensabun/internal/query"
)

// ErrNotFound is returned when an id-targeted read matches no row.
var ErrNotFound = errors.New("record not found")

// Result is the outcome of a mutating statement.
type Result struct {
	AffectedRows int64
	InsertID     int64
}

// Store executes built queries against the backing database.
type Store interface {
	// Select runs q and scans all rows into dest, a pointer to a slice of
	// structs or to []map[string]interface{}.
	Select(ctx context.Context, q query.Query, dest interface{}) error
	// Exec runs a mutating statement. When q.Key is set the generated key
	// is returned as InsertID.
	Exec(ctx context.Context, q query.Query) (Result, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) bool
}

// GORMStore is a Store backed by gorm. Identifier arguments are quoted by
// the gorm dialect in use.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

// Select runs a read query.
func (s *GORMStore) Select(ctx context.Context, q query.Query, dest interface{}) error {
	if err := s.db.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(dest).Error; err != nil {
		return pkgerrors.Wrap(err, "select")
	}
	return nil
}

// Exec runs a write query.
func (s *GORMStore) Exec(ctx context.Context, q query.Query) (Result, error) {
	if q.Key != "" {
		return s.insert(ctx, q)
	}
	tx := s.db.WithContext(ctx).Exec(q.SQL, q.Args...)
	if tx.Error != nil {
		return Result{}, pkgerrors.Wrap(tx.Error, "exec")
	}
	return Result{AffectedRows: tx.RowsAffected}, nil
}

// insert returns the generated key: via RETURNING on postgres, via
// LastInsertId elsewhere.
func (s *GORMStore) insert(ctx context.Context, q query.Query) (Result, error) {
	if s.db.Dialector.Name() == "postgres" {
		var id int64
		returning := append(append([]interface{}{}, q.Args...), clause.Column{Name: q.Key})
		tx := s.db.WithContext(ctx).Raw(q.SQL+" RETURNING ?", returning...).Scan(&id)
		if tx.Error != nil {
			return Result{}, pkgerrors.Wrap(tx.Error, "insert")
		}
		return Result{AffectedRows: tx.RowsAffected, InsertID: id}, nil
	}

	stmt := s.db.Session(&gorm.Session{DryRun: true}).Exec(q.SQL, q.Args...).Statement
	sqlDB, err := s.db.DB()
	if err != nil {
		return Result{}, pkgerrors.Wrap(err, "insert")
	}
	res, err := sqlDB.ExecContext(ctx, stmt.SQL.String(), stmt.Vars...)
	if err != nil {
		return Result{}, pkgerrors.Wrap(err, "insert")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, pkgerrors.Wrap(err, "insert rows affected")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, pkgerrors.Wrap(err, "insert id")
	}
	return Result{AffectedRows: affected, InsertID: id}, nil
}

// Ping checks connectivity with a round trip to the database.
func (s *GORMStore) Ping(ctx context.Context) bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
