package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ducktide/factory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateOrderWithLines(ctx context.Context, order *model.SalesOrder, lines []model.SalesOrderLine) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
        INSERT INTO sales_orders (id, customer_id, requested_delivery_date, status, note, created_at)
        VALUES (:id, :customer_id, :requested_delivery_date, :status, :note, :created_at)`
	if _, err := tx.NamedExecContext(ctx, orderQuery, order); err != nil {
		return fmt.Errorf("failed to insert sales order: %w", err)
	}

	lineQuery := `
        INSERT INTO sales_order_lines (id, sales_order_id, item_id, qty)
        VALUES (:id, :sales_order_id, :item_id, :qty)`
	for i := range lines {
		if _, err := tx.NamedExecContext(ctx, lineQuery, &lines[i]); err != nil {
			return fmt.Errorf("failed to insert sales order line: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) GetOrder(ctx context.Context, id string) (*model.SalesOrder, error) {
	var order model.SalesOrder
	query := `SELECT * FROM sales_orders WHERE id = $1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	linesQuery := `
        SELECT sol.id, sol.sales_order_id, sol.item_id, sol.qty, i.sku
        FROM sales_order_lines sol
        JOIN items i ON sol.item_id = i.id
        WHERE sol.sales_order_id = $1
        ORDER BY sol.id`
	if err := r.DB.SelectContext(ctx, &order.Lines, linesQuery, id); err != nil {
		return nil, err
	}

	return &order, nil
}
