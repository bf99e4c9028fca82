package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/shop-admin/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetOrder = `SELECT id, user_id, items, shipping, payment, items_price, tax_price, shipping_price, total_price, status, created_at, delivered_at
				FROM ORDERS WHERE id=$1;`
	GetOrders = `SELECT id, user_id, items, shipping, payment, items_price, tax_price, shipping_price, total_price, status, created_at, delivered_at
				 FROM ORDERS ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	GetOrdersSummary = `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM ORDERS;`
	InsertOrder      = `INSERT INTO ORDERS (id, user_id, items, shipping, payment, items_price, tax_price, shipping_price, total_price, status, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
						ON CONFLICT (id) DO NOTHING
						RETURNING id;`
	// цены заказа после создания не меняются, обновляются только статус и отметка доставки
	UpdateOrderStatus = `UPDATE ORDERS
						 SET
						     status = $1,
						     delivered_at = COALESCE($2, delivered_at),
						     updated_at = NOW()
						 WHERE id = $3
						 RETURNING id;`
	DeleteOrder = `DELETE FROM ORDERS WHERE id=$1 RETURNING id;`
	// выборка отправленных заказов для опроса службы доставки
	ClaimShippedOrders = `UPDATE ORDERS
						  SET checked_at = NOW()
						  WHERE id IN (
						      SELECT id FROM ORDERS
						      WHERE status = 'Shipped'
						      ORDER BY checked_at NULLS FIRST
						      LIMIT $1
						      FOR UPDATE SKIP LOCKED
						  )
						  RETURNING id;`
	// группировка по календарному месяцу: январи разных лет сливаются в одну строку
	GetOrdersByMonth = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*), COALESCE(SUM(total_price), 0)
						FROM ORDERS
						GROUP BY month
						ORDER BY month;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

func (s *OrderDatabase) scanOrder(row pgx.Row) (*models.OrderData, error) {
	var (
		order    models.OrderData
		items    []byte
		shipping []byte
		payment  []byte
	)
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&items,
		&shipping,
		&payment,
		&order.ItemsPrice,
		&order.TaxPrice,
		&order.ShippingPrice,
		&order.TotalPrice,
		&order.Status,
		&order.CreatedAt,
		&order.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(shipping, &order.Shipping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}
	if err := json.Unmarshal(payment, &order.Payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment reference: %w", err)
	}
	return &order, nil
}

func (s *OrderDatabase) GetOrder(ctx context.Context, id string) (*models.OrderData, error) {
	order, err := s.scanOrder(s.DB.Pool.QueryRow(ctx, GetOrder, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) GetOrders(ctx context.Context, limit int, offset int) ([]models.OrderData, error) {
	var orders []models.OrderData
	rows, err := s.DB.Pool.Query(ctx, GetOrders, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		order, err := s.scanOrder(rows)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// GetOrdersSummary - количество заказов и сумма по всей коллекции
func (s *OrderDatabase) GetOrdersSummary(ctx context.Context) (int64, decimal.Decimal, error) {
	var (
		count int64
		total decimal.Decimal
	)
	err := s.DB.Pool.QueryRow(ctx, GetOrdersSummary).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to get orders summary: %w", err)
	}
	return count, total, nil
}

func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderData) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}
	shipping, err := json.Marshal(order.Shipping)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	payment, err := json.Marshal(order.Payment)
	if err != nil {
		return fmt.Errorf("failed to marshal payment reference: %w", err)
	}

	var prevID string
	err = s.DB.Pool.QueryRow(ctx, InsertOrder,
		order.ID,
		order.UserID,
		items,
		shipping,
		payment,
		order.ItemsPrice,
		order.TaxPrice,
		order.ShippingPrice,
		order.TotalPrice,
		order.Status,
		order.CreatedAt,
	).Scan(&prevID)

	if err == nil {
		return nil
	}

	// ON CONFLICT DO NOTHING не возвращает строку при дубликате идентификатора
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add order: %w", err)
}

// UpdateOrderStatus - обновление статуса заказа; ценовые поля не трогаем
func (s *OrderDatabase) UpdateOrderStatus(ctx context.Context, id string, status string, deliveredAt *time.Time) error {
	var updatedID string
	err := s.DB.Pool.QueryRow(ctx, UpdateOrderStatus, status, deliveredAt, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (s *OrderDatabase) DeleteOrder(ctx context.Context, id string) error {
	var deletedID string
	err := s.DB.Pool.QueryRow(ctx, DeleteOrder, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *OrderDatabase) ClaimShippedOrders(ctx context.Context, count int) ([]string, error) {
	var ids []string
	rows, err := s.DB.Pool.Query(ctx, ClaimShippedOrders, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipped orders: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return ids, fmt.Errorf("failed scan shipped order id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetOrdersByMonth - количество заказов и выручка по календарным месяцам
func (s *OrderDatabase) GetOrdersByMonth(ctx context.Context) ([]models.MonthlyRow, error) {
	var buckets []models.MonthlyRow
	rows, err := s.DB.Pool.Query(ctx, GetOrdersByMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders by month: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket models.MonthlyRow
		if err := rows.Scan(&bucket.Month, &bucket.Count, &bucket.Sum); err != nil {
			return buckets, fmt.Errorf("failed scan monthly bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, rows.Err()
}
