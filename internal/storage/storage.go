package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/shop-admin/internal/models"
	"github.com/shopspring/decimal"
)

type OrdersStorage interface {
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetOrders(ctx context.Context, limit int, offset int) ([]models.OrderData, error)
	GetOrdersSummary(ctx context.Context) (int64, decimal.Decimal, error)
	AddOrder(ctx context.Context, order models.OrderData) error
	UpdateOrderStatus(ctx context.Context, id string, status string, deliveredAt *time.Time) error
	DeleteOrder(ctx context.Context, id string) error
	ClaimShippedOrders(ctx context.Context, count int) ([]string, error)
	GetOrdersByMonth(ctx context.Context) ([]models.MonthlyRow, error)
}

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	GetUsers(ctx context.Context) ([]models.UserData, error)
	GetUserCount(ctx context.Context) (int64, error)
	GetSignupsByMonth(ctx context.Context) ([]models.MonthlyRow, error)
}

type CatalogStorage interface {
	GetCategories(ctx context.Context) ([]models.CategoryCount, error)
	GetProductCount(ctx context.Context) (int64, error)
}

// IStorage - общий интерфейс хранилища сервиса
type IStorage interface {
	OrdersStorage
	UsersStorage
	CatalogStorage
}

type Storage struct {
	OrdersStorage
	UsersStorage
	CatalogStorage
}

// Создание хранилища
func NewStorage(db *Database) IStorage {
	return &Storage{
		OrdersStorage:  NewOrdersStorage(db),
		UsersStorage:   NewUsersStorage(db),
		CatalogStorage: NewCatalogStorage(db),
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")
)
