package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/storage"
	"github.com/denmor86/shop-admin/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, nil)

	validItems := []models.OrderItem{
		{ProductID: "p1", Name: "mug", Price: decimal.NewFromInt(30), Quantity: 2},
		{ProductID: "p2", Name: "plate", Price: decimal.NewFromInt(40), Quantity: 1},
	}

	testCases := []struct {
		TestName      string
		Login         string
		Request       models.CreateOrderRequest
		SetupMocks    func()
		ExpectedTotal string
		ExpectedError error
	}{
		{
			TestName: "Error. User not found #1",
			Login:    "mda",
			Request:  models.CreateOrderRequest{Items: validItems, CardNumber: "4242424242424242"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: storage.ErrUserNotFound,
		},
		{
			TestName: "Error. Empty order #2",
			Login:    "mda",
			Request:  models.CreateOrderRequest{CardNumber: "4242424242424242"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
			},
			ExpectedError: ErrEmptyOrder,
		},
		{
			TestName: "Error. Invalid card number #3",
			Login:    "mda",
			Request:  models.CreateOrderRequest{Items: validItems, CardNumber: "4242424242424241"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
			},
			ExpectedError: ErrInvalidCardNumber,
		},
		{
			TestName: "Error. Invalid quantity #4",
			Login:    "mda",
			Request: models.CreateOrderRequest{
				Items:      []models.OrderItem{{ProductID: "p1", Price: decimal.NewFromInt(10), Quantity: 0}},
				CardNumber: "4242424242424242",
			},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
			},
			ExpectedError: ErrInvalidOrderAmount,
		},
		{
			// позиции на 100, налог 7.5, доставка 5 -> итог 112.5
			TestName: "Success. Total is items + tax + shipping #5",
			Login:    "mda",
			Request: models.CreateOrderRequest{
				Items:         validItems,
				CardNumber:    "4242424242424242",
				TaxPrice:      7.5,
				ShippingPrice: 5,
			},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockStorage.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedTotal: "112.5",
			ExpectedError: nil,
		},
		{
			TestName: "Error. Add order failure #6",
			Login:    "mda",
			Request: models.CreateOrderRequest{
				Items:      validItems,
				CardNumber: "4242424242424242",
			},
			SetupMocks: func() {
				mockStorage.EXPECT().GetUser(gomock.Any(), "mda").Return(&models.UserData{UserID: "1"}, nil)
				mockStorage.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to add order"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.CreateOrder(ctx, tc.Login, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}

			if tc.ExpectedError == nil {
				if order.TotalPrice.String() != tc.ExpectedTotal {
					t.Errorf("Expected total: '%s', got: '%s'", tc.ExpectedTotal, order.TotalPrice.String())
				}
				if order.Status != models.OrderStatusPending {
					t.Errorf("Expected status: '%s', got: '%s'", models.OrderStatusPending, order.Status)
				}
				if order.Payment.CardNumber == tc.Request.CardNumber {
					t.Errorf("Expected masked card number, got raw: '%s'", order.Payment.CardNumber)
				}
			}
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, nil)

	// заказ на 112.5: статусные переходы цену не трогают,
	// UpdateOrderStatus получает только статус и отметку доставки
	storedOrder := func(status string) *models.OrderData {
		return &models.OrderData{
			ID:         "42",
			Status:     status,
			TotalPrice: decimal.RequireFromString("112.5"),
		}
	}

	testCases := []struct {
		TestName      string
		OrderID       string
		Status        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			// статус вне канонического набора отклоняется до обращения к заказу
			TestName:      "Error. Unknown status #1",
			OrderID:       "42",
			Status:        "Returned",
			SetupMocks:    func() {},
			ExpectedError: ErrUnknownStatus,
		},
		{
			TestName: "Error. Order not found #2",
			OrderID:  "42",
			Status:   models.OrderStatusProcessing,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(nil, storage.ErrOrderNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			// заказ движется только вперёд: Delivered -> Pending запрещён
			TestName: "Error. Backward transition #3",
			OrderID:  "42",
			Status:   models.OrderStatusPending,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(storedOrder(models.OrderStatusDelivered), nil)
			},
			ExpectedError: ErrInvalidTransition,
		},
		{
			TestName: "Error. Skip transition #4",
			OrderID:  "42",
			Status:   models.OrderStatusShipped,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(storedOrder(models.OrderStatusPending), nil)
			},
			ExpectedError: ErrInvalidTransition,
		},
		{
			TestName: "Success. Pending to Processing #5",
			OrderID:  "42",
			Status:   models.OrderStatusProcessing,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(storedOrder(models.OrderStatusPending), nil)
				mockStorage.EXPECT().UpdateOrderStatus(gomock.Any(), "42", models.OrderStatusProcessing, gomock.Nil()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			// достижение Delivered ставит отметку о доставке
			TestName: "Success. Shipped to Delivered stamps delivered_at #6",
			OrderID:  "42",
			Status:   models.OrderStatusDelivered,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(storedOrder(models.OrderStatusShipped), nil)
				mockStorage.EXPECT().UpdateOrderStatus(gomock.Any(), "42", models.OrderStatusDelivered, gomock.Not(gomock.Nil())).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Success. Cancel from Packaging #7",
			OrderID:  "42",
			Status:   models.OrderStatusCancelled,
			SetupMocks: func() {
				mockStorage.EXPECT().GetOrder(gomock.Any(), "42").Return(storedOrder(models.OrderStatusPackaging), nil)
				mockStorage.EXPECT().UpdateOrderStatus(gomock.Any(), "42", models.OrderStatusCancelled, gomock.Nil()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := orders.ChangeStatus(ctx, tc.OrderID, tc.Status)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockStorage, nil)

	testCases := []struct {
		TestName      string
		OrderID       string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Order not found #1",
			OrderID:  "42",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteOrder(gomock.Any(), "42").Return(storage.ErrOrderNotFound)
			},
			ExpectedError: ErrOrderNotFound,
		},
		{
			TestName: "Success. #2",
			OrderID:  "42",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteOrder(gomock.Any(), "42").Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := orders.DeleteOrder(ctx, tc.OrderID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
