package services

import (
	"context"
	"time"

	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/storage"
	"golang.org/x/sync/errgroup"
)

type MetricsService interface {
	BuildDashboard(ctx context.Context, window int, now time.Time) (*models.DashboardResponse, error)
	GetCategories(ctx context.Context) ([]models.CategoryCount, error)
	GetProductCount(ctx context.Context) (int64, error)
}

type Metrics struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewMetrics(storage storage.IStorage) MetricsService {
	return &Metrics{Storage: storage}
}

// MonthlyCounts - раскладывает строки агрегации в плотную серию из 12
// календарных месяцев. Строки с одинаковым месяцем (разные годы)
// суммируются в один бакет.
func MonthlyCounts(rows []models.MonthlyRow) []models.MonthlyBucket {
	series := make([]models.MonthlyBucket, len(models.MonthNames))
	for i, name := range models.MonthNames {
		series[i].Month = name
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		series[row.Month-1].Value += float64(row.Count)
	}
	return series
}

// MonthlyRevenue - месячная серия денежных сумм
func MonthlyRevenue(rows []models.MonthlyRow) []models.MonthlyBucket {
	series := make([]models.MonthlyBucket, len(models.MonthNames))
	for i, name := range models.MonthNames {
		series[i].Month = name
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		sum, _ := row.Sum.Float64()
		series[row.Month-1].Value += sum
	}
	return series
}

// CumulativeWindow - выбирает окно из window месяцев, отсчитанных
// циклически назад от месяца anchor, и считает бегущую сумму по окну.
// Серия зависит от месяца вызова - для окна "последние N месяцев"
// это ожидаемое поведение, а не ошибка.
func CumulativeWindow(series []models.MonthlyBucket, window int, anchor time.Month) []models.CumulativePoint {
	points := make([]models.CumulativePoint, 0, window)
	running := 0.0
	current := int(anchor) - 1
	for i := 0; i < window; i++ {
		idx := (current - window + i + 1 + 12) % 12
		if idx < 0 {
			idx += 12
		}
		running += series[idx].Value
		points = append(points, models.CumulativePoint{
			Month:      series[idx].Month,
			Value:      series[idx].Value,
			Cumulative: running,
		})
	}
	return points
}

// BuildDashboard - сборка метрик панели администратора.
// Серии и счётчики запрашиваются параллельно и независимо,
// общего снимка данных нет: под конкурентной записью карточки
// могут отражать разные моменты времени.
func (s *Metrics) BuildDashboard(ctx context.Context, window int, now time.Time) (*models.DashboardResponse, error) {
	var (
		orderRows  []models.MonthlyRow
		signupRows []models.MonthlyRow
		categories []models.CategoryCount

		customerCount int64
		productCount  int64
		orderCount    int64
		totalIncome   float64
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orderRows, err = s.Storage.GetOrdersByMonth(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		signupRows, err = s.Storage.GetSignupsByMonth(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Storage.GetCategories(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.Storage.GetUserCount(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		productCount, err = s.Storage.GetProductCount(groupCtx)
		return err
	})
	g.Go(func() error {
		count, total, err := s.Storage.GetOrdersSummary(groupCtx)
		if err != nil {
			return err
		}
		orderCount = count
		totalIncome, _ = total.Float64()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to build dashboard:", err)
		return nil, err
	}

	orders := MonthlyCounts(orderRows)
	return &models.DashboardResponse{
		Users:         MonthlyCounts(signupRows),
		Orders:        CumulativeWindow(orders, window, now.Month()),
		Revenue:       MonthlyRevenue(orderRows),
		Categories:    categories,
		CustomerCount: customerCount,
		OrderCount:    orderCount,
		ProductCount:  productCount,
		TotalIncome:   totalIncome,
	}, nil
}

func (s *Metrics) GetCategories(ctx context.Context) ([]models.CategoryCount, error) {
	return s.Storage.GetCategories(ctx)
}

func (s *Metrics) GetProductCount(ctx context.Context) (int64, error) {
	return s.Storage.GetProductCount(ctx)
}
