package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindBySKU(ctx context.Context, sku string) (*model.Item, error) {
	var item model.Item
	query := `SELECT * FROM items WHERE sku = $1`
	err := r.DB.GetContext(ctx, &item, query, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	query := `SELECT * FROM items WHERE id = $1`
	err := r.DB.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) ListByType(ctx context.Context, itemType string) ([]model.Item, error) {
	var items []model.Item
	// Backing-store iteration order is not guaranteed; the explicit SKU sort
	// keeps candidate enumeration stable across calls.
	query := `SELECT * FROM items WHERE type = $1 ORDER BY sku ASC`
	err := r.DB.SelectContext(ctx, &items, query, itemType)
	return items, err
}
