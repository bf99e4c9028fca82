package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/denmor86/shop-admin/internal/helpers"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NewOrderResponse - преобразование модели заказа из хранилища в модель для выдачи
func NewOrderResponse(order models.OrderData) models.OrderResponse {
	itemsPrice, _ := order.ItemsPrice.Float64()
	taxPrice, _ := order.TaxPrice.Float64()
	shippingPrice, _ := order.ShippingPrice.Float64()
	totalPrice, _ := order.TotalPrice.Float64()

	item := models.OrderResponse{
		ID:            order.ID,
		Items:         order.Items,
		ItemsPrice:    itemsPrice,
		TaxPrice:      taxPrice,
		ShippingPrice: shippingPrice,
		TotalPrice:    totalPrice,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	if order.DeliveredAt != nil {
		item.DeliveredAt = order.DeliveredAt.Format(time.RFC3339)
	}
	return item
}

// CreateOrderHandler — оформление нового заказа пользователем
func CreateOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var request models.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		order, err := s.CreateOrder(r.Context(), username, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCardNumber):
				http.Error(w, "Invalid card number format", http.StatusUnprocessableEntity)
				return
			case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrInvalidOrderAmount):
				http.Error(w, "Invalid order content", http.StatusBadRequest)
				return
			default:
				logger.Error("Failed to create order:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(NewOrderResponse(*order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOrdersHandler — страница заказов со сводкой по всей коллекции
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit < 1 {
			limit = DefaultPageSize
		}
		if limit > MaxPageSize {
			limit = MaxPageSize
		}

		orders, count, total, err := s.GetOrders(r.Context(), limit, (page-1)*limit)
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		totalAmount, _ := total.Float64()
		response := models.OrdersListResponse{
			Orders:      make([]models.OrderResponse, 0, len(orders)),
			OrderCount:  count,
			TotalAmount: totalAmount,
		}
		for _, order := range orders {
			response.Orders = append(response.Orders, NewOrderResponse(order))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateOrderStatusHandler — применение смены статуса заказа
func UpdateOrderStatusHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		var request models.StatusUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.ChangeStatus(r.Context(), orderID, request.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			case errors.Is(err, services.ErrUnknownStatus):
				http.Error(w, "Unknown order status", http.StatusUnprocessableEntity)
				return
			case errors.Is(err, services.ErrInvalidTransition):
				http.Error(w, "Status transition is not allowed", http.StatusConflict)
				return
			default:
				logger.Error("Failed to update order status:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

// DeleteOrderHandler — административное удаление заказа
func DeleteOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		err := s.DeleteOrder(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to delete order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
