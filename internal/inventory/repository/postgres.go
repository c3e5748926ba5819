package repository

import (
	"context"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListByItem(ctx context.Context, itemID string) ([]model.StockRecord, error) {
	var records []model.StockRecord
	query := `SELECT * FROM stock WHERE item_id = $1 ORDER BY warehouse, location`
	err := r.DB.SelectContext(ctx, &records, query, itemID)
	return records, err
}
