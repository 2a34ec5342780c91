package services

import (
	"context"
	"errors"

	"ensabun/internal/apperr"
	"ensabun/internal/query"
	"ensabun/internal/repositories"
)

// GenericService exposes read access to tables named by the caller.
type GenericService struct {
	repo repositories.GenericRepository
}

// NewGenericService creates a new GenericService.
func NewGenericService(repo repositories.GenericRepository) *GenericService {
	return &GenericService{repo: repo}
}

// GetAll returns every row of table.
func (s *GenericService) GetAll(ctx context.Context, table string) ([]repositories.Row, error) {
	rows, err := s.repo.GetAll(ctx, table)
	if err != nil {
		return nil, genericError(err, "Error fetching data")
	}
	return rows, nil
}

// GetByID returns the first row of table whose id matches.
func (s *GenericService) GetByID(ctx context.Context, table, id string) (repositories.Row, error) {
	row, err := s.repo.GetByID(ctx, table, id)
	if err != nil {
		return nil, genericError(err, "Error fetching record")
	}
	return row, nil
}

// Search returns the rows of table whose field contains value.
func (s *GenericService) Search(ctx context.Context, table, field, value string) ([]repositories.Row, error) {
	rows, err := s.repo.Search(ctx, table, field, value)
	if err != nil {
		return nil, genericError(err, "Error searching records")
	}
	return rows, nil
}

func genericError(err error, msg string) error {
	switch {
	case errors.Is(err, query.ErrInvalidIdentifier):
		return apperr.Validation("Invalid table or field name")
	case errors.Is(err, repositories.ErrNotFound):
		return apperr.NotFound("Record not found")
	default:
		return apperr.Store(msg, err)
	}
}
