package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/ducktide/factory-service/internal/purchasing/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	query := `
        INSERT INTO purchase_orders (
            id, supplier_name, item_id, item_sku, qty, status,
            expected_delivery, ordered_at, received_at
        )
        VALUES (
            :id, :supplier_name, :item_id, :item_sku, :qty, :status,
            :expected_delivery, :ordered_at, :received_at
        )`
	_, err := r.DB.NamedExecContext(ctx, query, po)
	return err
}

func (r *PGRepository) Get(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	query := `SELECT * FROM purchase_orders WHERE id = $1`
	err := r.DB.GetContext(ctx, &po, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (r *PGRepository) ReceiveWithStock(ctx context.Context, po *model.PurchaseOrder, stock *model.StockRecord) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	poQuery := `
        UPDATE purchase_orders
        SET status = :status, received_at = :received_at
        WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, poQuery, po); err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}

	stockQuery := `
        INSERT INTO stock (id, item_id, warehouse, location, on_hand, created_at)
        VALUES (:id, :item_id, :warehouse, :location, :on_hand, :created_at)`
	if _, err := tx.NamedExecContext(ctx, stockQuery, stock); err != nil {
		return fmt.Errorf("failed to post received stock: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) ListBelowReorder(ctx context.Context) ([]dto.ReorderCandidate, error) {
	type row struct {
		model.Item
		CurrentStock float64 `db:"current_stock"`
	}

	var rows []row
	query := `
        SELECT i.*, COALESCE(SUM(s.on_hand), 0) AS current_stock
        FROM items i
        LEFT JOIN stock s ON i.id = s.item_id
        WHERE i.type IN ($1, $2) AND i.reorder_qty > 0
        GROUP BY i.id
        HAVING COALESCE(SUM(s.on_hand), 0) < i.reorder_qty
        ORDER BY i.sku`
	if err := r.DB.SelectContext(ctx, &rows, query, model.ItemTypeMaterial, model.ItemTypeComponent); err != nil {
		return nil, err
	}

	candidates := make([]dto.ReorderCandidate, 0, len(rows))
	for _, rw := range rows {
		candidates = append(candidates, dto.ReorderCandidate{Item: rw.Item, CurrentStock: rw.CurrentStock})
	}
	return candidates, nil
}
