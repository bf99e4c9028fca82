package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/storage"
	"github.com/denmor86/shop-admin/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidCardNumber  = errors.New("invalid card number")
	ErrUnknownStatus      = errors.New("status is not in the allowed set")
	ErrInvalidTransition  = errors.New("status transition is not allowed")
	ErrInvalidOrderAmount = errors.New("invalid order amount")
)

type OrdersService interface {
	CreateOrder(ctx context.Context, login string, request models.CreateOrderRequest) (*models.OrderData, error)
	GetOrders(ctx context.Context, limit int, offset int) ([]models.OrderData, int64, decimal.Decimal, error)
	ChangeStatus(ctx context.Context, id string, status string) error
	DeleteOrder(ctx context.Context, id string) error
	ClaimShippedOrders(ctx context.Context, count int) ([]string, error)
	ProcessShipment(ctx context.Context, id string) error
}

type Orders struct {
	Storage  storage.IStorage
	Tracking TrackingService
}

// Создание сервиса
func NewOrders(storage storage.IStorage, tracking TrackingService) *Orders {
	return &Orders{Storage: storage, Tracking: tracking}
}

// CreateOrder - оформляет новый заказ. Итоговая цена считается один раз
// при создании: позиции + налог + доставка. Дальше меняется только статус.
func (s *Orders) CreateOrder(ctx context.Context, login string, request models.CreateOrderRequest) (*models.OrderData, error) {
	// Получаем пользователя по логину
	user, err := s.Storage.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}

	if len(request.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !validators.CheckCardNumber(request.CardNumber) {
		return nil, ErrInvalidCardNumber
	}

	// Сумма по позициям
	itemsPrice := decimal.Zero
	for _, item := range request.Items {
		if item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, ErrInvalidOrderAmount
		}
		itemsPrice = itemsPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	taxPrice := decimal.NewFromFloat(request.TaxPrice)
	shippingPrice := decimal.NewFromFloat(request.ShippingPrice)
	if taxPrice.IsNegative() || shippingPrice.IsNegative() {
		return nil, ErrInvalidOrderAmount
	}

	order := models.OrderData{
		ID:       uuid.New().String(),
		UserID:   user.UserID,
		Items:    request.Items,
		Shipping: request.Shipping,
		Payment: models.PaymentReference{
			Provider:   request.Provider,
			CardNumber: validators.MaskCardNumber(request.CardNumber),
		},
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    itemsPrice.Add(taxPrice).Add(shippingPrice),
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders - страница заказов и сводка (количество и сумма) по всей коллекции
func (s *Orders) GetOrders(ctx context.Context, limit int, offset int) ([]models.OrderData, int64, decimal.Decimal, error) {
	count, total, err := s.Storage.GetOrdersSummary(ctx)
	if err != nil {
		return nil, 0, decimal.Zero, err
	}
	orders, err := s.Storage.GetOrders(ctx, limit, offset)
	if err != nil {
		return nil, 0, decimal.Zero, err
	}
	return orders, count, total, nil
}

// ChangeStatus - применяет смену статуса заказа.
// Статус должен входить в канонический набор, переход - в таблицу переходов.
// При любой ошибке заказ остаётся нетронутым.
func (s *Orders) ChangeStatus(ctx context.Context, id string, status string) error {
	if !models.KnownStatus(status) {
		return ErrUnknownStatus
	}

	order, err := s.Storage.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if !models.AllowedTransition(order.Status, status) {
		logger.Warn("Rejected status transition", order.Status, "->", status)
		return ErrInvalidTransition
	}

	// Отметка о доставке ставится в момент перехода в Delivered
	var deliveredAt *time.Time
	if status == models.OrderStatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	return s.Storage.UpdateOrderStatus(ctx, id, status, deliveredAt)
}

// DeleteOrder - административное удаление заказа (жёсткое, без тумбстоунов)
func (s *Orders) DeleteOrder(ctx context.Context, id string) error {
	err := s.Storage.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// ClaimShippedOrders - выборка отправленных заказов для опроса службы доставки
func (s *Orders) ClaimShippedOrders(ctx context.Context, count int) ([]string, error) {
	return s.Storage.ClaimShippedOrders(ctx, count)
}

// ProcessShipment - запрашивает у службы доставки состояние отправления
// и проводит заказ через смену статуса, когда доставка завершена
// (подтверждена или отправление потеряно)
func (s *Orders) ProcessShipment(ctx context.Context, id string) error {
	status, err := s.Tracking.GetShipmentStatus(ctx, id)
	if err != nil {
		return err
	}
	if status != models.OrderStatusDelivered && status != models.OrderStatusCancelled {
		// заказ ещё в пути, вернёмся к нему на следующем цикле
		return nil
	}
	return s.ChangeStatus(ctx, id, status)
}
