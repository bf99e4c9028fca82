package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/denmor86/shop-admin/internal/client"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
)

type TrackingService interface {
	GetShipmentStatus(ctx context.Context, orderID string) (string, error)
}

type Tracking struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

func NewTracking(baseURL string) TrackingService {
	return &Tracking{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// GetShipmentStatus - состояние отправления, переведённое в статус заказа
func (s *Tracking) GetShipmentStatus(ctx context.Context, orderID string) (string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := s.Client.GetShipment(ctx, orderID)
	if err != nil {
		// проверка большого количества запросов
		if rateLimitErr, ok := err.(*client.RateLimitError); ok {
			logger.Warn("Too many requests to tracking service:", orderID)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return models.OrderStatusShipped, nil
		}
		return "", err
	}
	// проверяем возможные статусы отправления
	switch resp.Status {
	case client.ShipmentStatusDelivered:
		return models.OrderStatusDelivered, nil
	case client.ShipmentStatusRegistered, client.ShipmentStatusInTransit:
		return models.OrderStatusShipped, nil
	case client.ShipmentStatusLost:
		return models.OrderStatusCancelled, nil
	default:
		logger.Error("Undefined shipment status:", resp.Status)
		return "", fmt.Errorf("undefined shipment status %s", resp.Status)
	}
}
