package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"souq-api/config"
	"souq-api/models"
	"souq-api/utils"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// orderNumberAttempts bounds regeneration when the random suffix collides
// with an existing order number.
const orderNumberAttempts = 3

// CreateOrderTx places an order atomically: every requested product is
// locked and re-read inside the transaction (FOR UPDATE), validated,
// decremented, and the order row plus items are inserted with status
// pending. Any failure rolls back the whole scope, so no partial stock
// decrement is ever observable.
func (r *OrderRepository) CreateOrderTx(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order, err := r.createOrderOnce(ctx, userID, req)
		if err == nil {
			return order, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("order number collision persisted: %w", lastErr)
}

func (r *OrderRepository) createOrderOnce(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items := make([]models.OrderItem, 0, len(req.Items))
	now := time.Now()

	for _, line := range req.Items {
		product := &models.Product{}
		err := scanProduct(
			tx.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1 FOR UPDATE", line.ProductID),
			product,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound("product.not_found")
		}
		if err != nil {
			return nil, err
		}

		item, err := models.BuildOrderItem(product, line.Quantity)
		if err != nil {
			return nil, err
		}

		_, err = tx.Exec(ctx,
			"UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3",
			line.Quantity, now, line.ProductID)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCashOnDelivery
	}

	order := &models.Order{
		OrderNumber:     utils.GenerateOrderNumber(now),
		UserID:          userID,
		Items:           items,
		TotalAmount:     models.SumItems(items),
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: req.ShippingAddress,
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, total_amount, status, payment_method,
			shipping_street, shipping_city, shipping_state, shipping_zip_code, shipping_country,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber,
		order.UserID,
		order.TotalAmount,
		order.Status,
		order.PaymentMethod,
		order.ShippingAddress.Street,
		order.ShippingAddress.City,
		order.ShippingAddress.State,
		order.ShippingAddress.ZipCode,
		order.ShippingAddress.Country,
		order.Notes,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, price, subtotal) VALUES ($1, $2, $3, $4, $5)",
			order.ID, item.ProductID, item.Quantity, item.Price, item.Subtotal)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `
	id, order_number, user_id, total_amount, status, payment_method,
	COALESCE(shipping_street, ''), COALESCE(shipping_city, ''), COALESCE(shipping_state, ''),
	COALESCE(shipping_zip_code, ''), COALESCE(shipping_country, ''),
	notes, created_at, updated_at
`

func scanOrder(row pgx.Row, o *models.Order) error {
	return row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.TotalAmount,
		&o.Status,
		&o.PaymentMethod,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.City,
		&o.ShippingAddress.State,
		&o.ShippingAddress.ZipCode,
		&o.ShippingAddress.Country,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

func (r *OrderRepository) loadItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT oi.product_id, p.name_en, COALESCE(p.name_ar, ''), p.sku, oi.quantity, oi.price, oi.subtotal
		 FROM order_items oi
		 JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ProductID,
			&item.ProductName.EN,
			&item.ProductName.AR,
			&item.SKU,
			&item.Quantity,
			&item.Price,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByID loads an order with its items. When ownerID > 0 the lookup is
// scoped to that user, so non-admin callers cannot read others' orders.
func (r *OrderRepository) FindByID(ctx context.Context, orderID, ownerID int) (*models.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	args := []interface{}{orderID}
	if ownerID > 0 {
		query += " AND user_id = $2"
		args = append(args, ownerID)
	}

	order := &models.Order{}
	if err := scanOrder(config.DB.QueryRow(ctx, query, args...), order); err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// OrderFilter narrows listings; UserID == 0 means all users (admin).
type OrderFilter struct {
	UserID int
	Status string
	Page   int
	Limit  int
}

func (r *OrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]models.Order, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.UserID > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, filter.UserID)
		argIndex++
	}
	if filter.Status != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + orderColumns + " FROM orders" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

// UpdateStatus applies a plain (non-cancelling) status change after
// validating the transition against the state machine.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := r.FindByID(ctx, orderID, 0)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound("order.not_found")
	}
	if err != nil {
		return nil, err
	}

	if order.Status == models.StatusCancelled {
		return nil, models.ErrInvalidTransition("order.cancelled_cannot_update")
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, models.ErrInvalidTransition("order.invalid_transition")
	}

	_, err = config.DB.Exec(ctx,
		"UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3",
		newStatus, time.Now(), orderID)
	if err != nil {
		return nil, err
	}

	order.Status = newStatus
	return order, nil
}

// CancelTx cancels an order and restores the originally decremented
// quantities in one transaction. When ownerID > 0 the order must belong
// to that user. Only pending and confirmed orders can be cancelled.
func (r *OrderRepository) CancelTx(ctx context.Context, orderID, ownerID int) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	args := []interface{}{orderID}
	if ownerID > 0 {
		query += " AND user_id = $2"
		args = append(args, ownerID)
	}
	query += " FOR UPDATE"

	order := &models.Order{}
	err = scanOrder(tx.QueryRow(ctx, query, args...), order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound("order.not_found")
	}
	if err != nil {
		return nil, err
	}

	if !order.Status.CanCancel() {
		return nil, models.ErrInvalidTransition("order.cannot_cancel")
	}

	rows, err := tx.Query(ctx,
		"SELECT product_id, quantity FROM order_items WHERE order_id = $1", order.ID)
	if err != nil {
		return nil, err
	}

	type restore struct {
		productID int
		quantity  int
	}
	restores := []restore{}
	for rows.Next() {
		var rec restore
		if err := rows.Scan(&rec.productID, &rec.quantity); err != nil {
			rows.Close()
			return nil, err
		}
		restores = append(restores, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	for _, rec := range restores {
		_, err = tx.Exec(ctx,
			"UPDATE products SET stock = stock + $1, updated_at = $2 WHERE id = $3",
			rec.quantity, now, rec.productID)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx,
		"UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3",
		models.StatusCancelled, now, order.ID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.Status = models.StatusCancelled
	order.UpdatedAt = now
	return order, nil
}

// Statistics aggregates per-status counts and overall revenue (admin).
func (r *OrderRepository) Statistics(ctx context.Context) ([]models.OrderStatusStat, models.OrderTotals, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders GROUP BY status ORDER BY status")
	if err != nil {
		return nil, models.OrderTotals{}, err
	}
	defer rows.Close()

	stats := []models.OrderStatusStat{}
	for rows.Next() {
		var s models.OrderStatusStat
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount); err != nil {
			return nil, models.OrderTotals{}, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, models.OrderTotals{}, err
	}

	var totals models.OrderTotals
	err = config.DB.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(AVG(total_amount), 0) FROM orders").
		Scan(&totals.TotalOrders, &totals.TotalRevenue, &totals.AverageOrderValue)
	if err != nil {
		return nil, models.OrderTotals{}, err
	}

	return stats, totals, nil
}
