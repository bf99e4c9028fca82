package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Статусы отправления в ответах службы доставки
const (
	ShipmentStatusRegistered = "REGISTERED"
	ShipmentStatusInTransit  = "IN_TRANSIT"
	ShipmentStatusDelivered  = "DELIVERED"
	ShipmentStatusLost       = "LOST"
)

type ShipmentResponse struct {
	Order  string `json:"order"`
	Status string `json:"status"`
}

type TrackingClient interface {
	GetShipmentStatus(ctx context.Context, orderID string) (string, error)
}

var (
	ErrServiceUnavailable    = errors.New("tracking service unavailable")
	ErrShipmentNotRegistered = errors.New("shipment not registered")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
