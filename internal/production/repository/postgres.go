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

func (r *PGRepository) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	query := `
        SELECT r.id, r.output_item_id, r.output_qty, r.production_time_hours,
               i.sku AS output_sku, i.name AS output_name
        FROM recipes r
        JOIN items i ON r.output_item_id = i.id
        WHERE r.id = $1`
	err := r.DB.GetContext(ctx, &recipe, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	ingredientsQuery := `
        SELECT ri.id, ri.recipe_id, ri.input_item_id, ri.input_qty, ri.unit, ri.sequence_order,
               i.sku AS ingredient_sku, i.name AS ingredient_name
        FROM recipe_ingredients ri
        JOIN items i ON ri.input_item_id = i.id
        WHERE ri.recipe_id = $1
        ORDER BY ri.sequence_order`
	if err := r.DB.SelectContext(ctx, &recipe.Ingredients, ingredientsQuery, id); err != nil {
		return nil, err
	}

	operationsQuery := `
        SELECT id, recipe_id, operation_name, duration_hours, sequence_order
        FROM recipe_operations
        WHERE recipe_id = $1
        ORDER BY sequence_order`
	if err := r.DB.SelectContext(ctx, &recipe.Operations, operationsQuery, id); err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (r *PGRepository) ListRecipes(ctx context.Context, outputItemID string, limit int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := `
        SELECT r.id, r.output_item_id, r.output_qty, r.production_time_hours,
               i.sku AS output_sku, i.name AS output_name
        FROM recipes r
        JOIN items i ON r.output_item_id = i.id`
	args := []interface{}{}
	if outputItemID != "" {
		query += ` WHERE r.output_item_id = $1 ORDER BY r.id LIMIT $2`
		args = append(args, outputItemID, limit)
	} else {
		query += ` ORDER BY r.id LIMIT $1`
		args = append(args, limit)
	}
	err := r.DB.SelectContext(ctx, &recipes, query, args...)
	return recipes, err
}

func (r *PGRepository) GetOrder(ctx context.Context, id string) (*model.ProductionOrder, error) {
	var order model.ProductionOrder
	query := `SELECT * FROM production_orders WHERE id = $1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	opsQuery := `
        SELECT * FROM production_operations
        WHERE production_order_id = $1
        ORDER BY sequence_order`
	if err := r.DB.SelectContext(ctx, &order.Operations, opsQuery, id); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *PGRepository) CreateOrderWithOperations(ctx context.Context, order *model.ProductionOrder, ops []model.ProductionOperation) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
        INSERT INTO production_orders (
            id, recipe_id, item_id, status, current_operation,
            qty_produced, eta_finish, eta_ship, notes, created_at, completed_at
        )
        VALUES (
            :id, :recipe_id, :item_id, :status, :current_operation,
            :qty_produced, :eta_finish, :eta_ship, :notes, :created_at, :completed_at
        )`
	if _, err := tx.NamedExecContext(ctx, orderQuery, order); err != nil {
		return fmt.Errorf("failed to insert production order: %w", err)
	}

	opQuery := `
        INSERT INTO production_operations (
            id, production_order_id, recipe_operation_id,
            sequence_order, operation_name, duration_hours, status
        )
        VALUES (
            :id, :production_order_id, :recipe_operation_id,
            :sequence_order, :operation_name, :duration_hours, :status
        )`
	for i := range ops {
		if _, err := tx.NamedExecContext(ctx, opQuery, &ops[i]); err != nil {
			return fmt.Errorf("failed to insert production operation: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) Start(ctx context.Context, id string, currentOperation *string) error {
	query := `
        UPDATE production_orders
        SET status = $1, current_operation = $2
        WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, model.ProductionStatusInProgress, currentOperation, id)
	return err
}

func (r *PGRepository) CompleteWithStock(ctx context.Context, order *model.ProductionOrder, stock *model.StockRecord) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
        UPDATE production_orders
        SET status = :status, current_operation = NULL,
            qty_produced = :qty_produced, completed_at = :completed_at
        WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, orderQuery, order); err != nil {
		return fmt.Errorf("failed to complete production order: %w", err)
	}

	stockQuery := `
        INSERT INTO stock (id, item_id, warehouse, location, on_hand, created_at)
        VALUES (:id, :item_id, :warehouse, :location, :on_hand, :created_at)`
	if _, err := tx.NamedExecContext(ctx, stockQuery, stock); err != nil {
		return fmt.Errorf("failed to post produced stock: %w", err)
	}

	return tx.Commit()
}
