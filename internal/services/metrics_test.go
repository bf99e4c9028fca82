package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func bucketValues(series []models.MonthlyBucket) []float64 {
	values := make([]float64, 0, len(series))
	for _, bucket := range series {
		values = append(values, bucket.Value)
	}
	return values
}

func TestMonthlyCounts(t *testing.T) {
	testCases := []struct {
		TestName       string
		Rows           []models.MonthlyRow
		ExpectedValues []float64
	}{
		{
			TestName:       "Empty collection #1",
			Rows:           nil,
			ExpectedValues: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			// заказы в январе и два в марте
			TestName: "Jan and double Mar #2",
			Rows: []models.MonthlyRow{
				{Month: 1, Count: 1},
				{Month: 3, Count: 2},
			},
			ExpectedValues: []float64{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			// январи разных лет сливаются в один бакет - это документированное
			// поведение месячной агрегации, а не ошибка
			TestName: "Years merge into the same month #3",
			Rows: []models.MonthlyRow{
				{Month: 1, Count: 1},
				{Month: 1, Count: 1},
			},
			ExpectedValues: []float64{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			TestName: "Out of range month is skipped #4",
			Rows: []models.MonthlyRow{
				{Month: 0, Count: 5},
				{Month: 13, Count: 5},
				{Month: 12, Count: 1},
			},
			ExpectedValues: []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			series := MonthlyCounts(tc.Rows)
			if len(series) != 12 {
				t.Fatalf("Expected 12 buckets, got %d", len(series))
			}
			if series[0].Month != "Jan" || series[11].Month != "Dec" {
				t.Errorf("Expected buckets Jan..Dec, got '%s'..'%s'", series[0].Month, series[11].Month)
			}
			diff := cmp.Diff(tc.ExpectedValues, bucketValues(series))
			if len(diff) != 0 {
				t.Errorf("expected values mismatch:\n %s", diff)
			}
		})
	}
}

func TestMonthlyRevenue(t *testing.T) {
	rows := []models.MonthlyRow{
		{Month: 1, Count: 1, Sum: decimal.RequireFromString("112.5")},
		{Month: 3, Count: 2, Sum: decimal.RequireFromString("200")},
	}

	series := MonthlyRevenue(rows)

	expected := []float64{112.5, 0, 200, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	diff := cmp.Diff(expected, bucketValues(series))
	if len(diff) != 0 {
		t.Errorf("expected values mismatch:\n %s", diff)
	}
}

func TestCumulativeWindow(t *testing.T) {
	series := func(values [12]float64) []models.MonthlyBucket {
		buckets := make([]models.MonthlyBucket, 12)
		for i := range buckets {
			buckets[i] = models.MonthlyBucket{Month: models.MonthNames[i], Value: values[i]}
		}
		return buckets
	}

	testCases := []struct {
		TestName string
		Values   [12]float64
		Window   int
		Anchor   time.Month
		Expected []models.CumulativePoint
	}{
		{
			// окно из 6 месяцев с якорем в июне: бегущая сумма по Jan..Jun
			TestName: "Prefix sum over half a year #1",
			Values:   [12]float64{2, 3, 0, 1, 0, 0},
			Window:   6,
			Anchor:   time.June,
			Expected: []models.CumulativePoint{
				{Month: "Jan", Value: 2, Cumulative: 2},
				{Month: "Feb", Value: 3, Cumulative: 5},
				{Month: "Mar", Value: 0, Cumulative: 5},
				{Month: "Apr", Value: 1, Cumulative: 6},
				{Month: "May", Value: 0, Cumulative: 6},
				{Month: "Jun", Value: 0, Cumulative: 6},
			},
		},
		{
			// якорь в январе: окно циклически заворачивается через декабрь
			TestName: "Window wraps around the year #2",
			Values:   [12]float64{1, 0, 0, 0, 0, 0, 0, 2, 0, 0, 4, 8},
			Window:   6,
			Anchor:   time.January,
			Expected: []models.CumulativePoint{
				{Month: "Aug", Value: 2, Cumulative: 2},
				{Month: "Sep", Value: 0, Cumulative: 2},
				{Month: "Oct", Value: 0, Cumulative: 2},
				{Month: "Nov", Value: 4, Cumulative: 6},
				{Month: "Dec", Value: 8, Cumulative: 14},
				{Month: "Jan", Value: 1, Cumulative: 15},
			},
		},
		{
			TestName: "Full year window #3",
			Values:   [12]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			Window:   12,
			Anchor:   time.December,
			Expected: []models.CumulativePoint{
				{Month: "Jan", Value: 1, Cumulative: 1},
				{Month: "Feb", Value: 1, Cumulative: 2},
				{Month: "Mar", Value: 1, Cumulative: 3},
				{Month: "Apr", Value: 1, Cumulative: 4},
				{Month: "May", Value: 1, Cumulative: 5},
				{Month: "Jun", Value: 1, Cumulative: 6},
				{Month: "Jul", Value: 1, Cumulative: 7},
				{Month: "Aug", Value: 1, Cumulative: 8},
				{Month: "Sep", Value: 1, Cumulative: 9},
				{Month: "Oct", Value: 1, Cumulative: 10},
				{Month: "Nov", Value: 1, Cumulative: 11},
				{Month: "Dec", Value: 1, Cumulative: 12},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			points := CumulativeWindow(series(tc.Values), tc.Window, tc.Anchor)
			diff := cmp.Diff(tc.Expected, points)
			if len(diff) != 0 {
				t.Errorf("expected points mismatch:\n %s", diff)
			}
		})
	}
}

func TestMetricsService_BuildDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	metrics := NewMetrics(mockStorage)

	t.Run("Success. Series and scalars assembled #1", func(t *testing.T) {
		mockStorage.EXPECT().GetOrdersByMonth(gomock.Any()).Return([]models.MonthlyRow{
			{Month: 1, Count: 2, Sum: decimal.RequireFromString("225")},
		}, nil)
		mockStorage.EXPECT().GetSignupsByMonth(gomock.Any()).Return([]models.MonthlyRow{
			{Month: 3, Count: 4},
		}, nil)
		mockStorage.EXPECT().GetCategories(gomock.Any()).Return([]models.CategoryCount{
			{Name: "mugs", ProductCount: 7},
		}, nil)
		mockStorage.EXPECT().GetUserCount(gomock.Any()).Return(int64(4), nil)
		mockStorage.EXPECT().GetProductCount(gomock.Any()).Return(int64(7), nil)
		mockStorage.EXPECT().GetOrdersSummary(gomock.Any()).Return(int64(2), decimal.RequireFromString("225"), nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// якорь - июнь, окно 6 месяцев: Jan..Jun
		now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		dashboard, err := metrics.BuildDashboard(ctx, 6, now)
		if err != nil {
			t.Fatalf("Expected no error, got '%v'", err)
		}

		if dashboard.CustomerCount != 4 || dashboard.OrderCount != 2 || dashboard.ProductCount != 7 {
			t.Errorf("Unexpected scalar counters: %d %d %d",
				dashboard.CustomerCount, dashboard.OrderCount, dashboard.ProductCount)
		}
		if dashboard.TotalIncome != 225 {
			t.Errorf("Expected total income 225, got %v", dashboard.TotalIncome)
		}
		if dashboard.Users[2].Value != 4 {
			t.Errorf("Expected 4 signups in Mar, got %v", dashboard.Users[2].Value)
		}
		if dashboard.Revenue[0].Value != 225 {
			t.Errorf("Expected revenue 225 in Jan, got %v", dashboard.Revenue[0].Value)
		}

		expectedOrders := []models.CumulativePoint{
			{Month: "Jan", Value: 2, Cumulative: 2},
			{Month: "Feb", Value: 0, Cumulative: 2},
			{Month: "Mar", Value: 0, Cumulative: 2},
			{Month: "Apr", Value: 0, Cumulative: 2},
			{Month: "May", Value: 0, Cumulative: 2},
			{Month: "Jun", Value: 0, Cumulative: 2},
		}
		diff := cmp.Diff(expectedOrders, dashboard.Orders)
		if len(diff) != 0 {
			t.Errorf("expected orders series mismatch:\n %s", diff)
		}
	})

	t.Run("Error. Storage failure fails the whole dashboard #2", func(t *testing.T) {
		mockStorage.EXPECT().GetOrdersByMonth(gomock.Any()).Return(nil, errors.New("failed to get orders by month"))
		mockStorage.EXPECT().GetSignupsByMonth(gomock.Any()).Return(nil, nil).AnyTimes()
		mockStorage.EXPECT().GetCategories(gomock.Any()).Return(nil, nil).AnyTimes()
		mockStorage.EXPECT().GetUserCount(gomock.Any()).Return(int64(0), nil).AnyTimes()
		mockStorage.EXPECT().GetProductCount(gomock.Any()).Return(int64(0), nil).AnyTimes()
		mockStorage.EXPECT().GetOrdersSummary(gomock.Any()).Return(int64(0), decimal.Zero, nil).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := metrics.BuildDashboard(ctx, 12, time.Now())
		if err == nil {
			t.Errorf("Expected error, got none")
		}
	})
}
