package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказов
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusPackaging  = "Packaging"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses - канонический набор статусов заказа
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusPackaging,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Transitions - таблица допустимых переходов статуса заказа.
// Заказ движется только вперёд по цепочке обработки,
// отмена возможна из любого нетерминального статуса.
var Transitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusPackaging, OrderStatusCancelled},
	OrderStatusPackaging:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// KnownStatus - проверка вхождения статуса в канонический набор
func KnownStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AllowedTransition - проверка допустимости перехода из статуса from в статус to
func AllowedTransition(from string, to string) bool {
	for _, s := range Transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderItem - позиция заказа (денормализованные имя и картинка товара)
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// ShippingAddress - адрес доставки заказа
type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// PaymentReference - данные об оплате (номер карты хранится маскированным)
type PaymentReference struct {
	Provider   string `json:"provider"`
	CardNumber string `json:"card_number"`
}

// OrderData - модель заказа из хранилища
type OrderData struct {
	ID            string
	UserID        string
	Items         []OrderItem
	Shipping      ShippingAddress
	Payment       PaymentReference
	ItemsPrice    decimal.Decimal
	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
	Status        string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// OrderResponse - модель заказа для выдачи
type OrderResponse struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	ItemsPrice    float64     `json:"items_price"`
	TaxPrice      float64     `json:"tax_price"`
	ShippingPrice float64     `json:"shipping_price"`
	TotalPrice    float64     `json:"total_price"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"created_at"`
	DeliveredAt   string      `json:"delivered_at,omitempty"`
}

// OrdersListResponse - страница заказов со сводкой по всей коллекции
type OrdersListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	OrderCount  int64           `json:"orderCount"`
	TotalAmount float64         `json:"totalAmount"`
}

// CreateOrderRequest - модель запроса оформления заказа, приходит извне
type CreateOrderRequest struct {
	Items         []OrderItem     `json:"items"`
	Shipping      ShippingAddress `json:"shipping"`
	Provider      string          `json:"provider"`
	CardNumber    string          `json:"card_number"`
	TaxPrice      float64         `json:"tax_price"`
	ShippingPrice float64         `json:"shipping_price"`
}

// StatusUpdateRequest - модель запроса смены статуса заказа
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
