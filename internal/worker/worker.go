package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "tracking-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker", name, "state changed:", from.String(), "->", to.String())
		},
	})
}

// DeliveryWorker - воркер опроса службы доставки по отправленным заказам
type DeliveryWorker struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewDeliveryWorker - конструктор обработчика отслеживания доставки
func NewDeliveryWorker(orders services.OrdersService, cfg config.TrackingConfig) *DeliveryWorker {
	return &DeliveryWorker{
		Orders:       orders,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *DeliveryWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *DeliveryWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *DeliveryWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("DeliveryWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessShipments(ctx)
		}
	}
}

// ProcessShipments - обработка пачки отправленных заказов
func (w *DeliveryWorker) ProcessShipments(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return
	}

	orderIDs, err := w.Orders.ClaimShippedOrders(ctx, w.BatchSize)

	if err != nil {
		logger.Error("error get orders for tracking", err)
		return
	}

	for _, orderID := range orderIDs {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Orders.ProcessShipment(ctx, orderID)
		})

		if err != nil {
			logger.Error("Error shipment processing", err)
		}
	}
}
