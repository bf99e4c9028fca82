package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/shop-admin/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertUser = `INSERT INTO USERS (id, login, password)
						VALUES ($1, $2, $3)
						ON CONFLICT (login) DO NOTHING
						RETURNING login;`
	GetUser      = `SELECT id, password, login, created_at FROM USERS WHERE login=$1;`
	GetUsers     = `SELECT id, login, created_at FROM USERS ORDER BY created_at;`
	GetUserCount = `SELECT COUNT(*) FROM USERS;`
	// группировка по календарному месяцу: январи разных лет сливаются в одну строку
	GetSignupsByMonth = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*)
						 FROM USERS
						 GROUP BY month
						 ORDER BY month;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	var user models.UserData
	err := s.DB.Pool.QueryRow(ctx, GetUser, login).Scan(&user.UserID, &user.PasswordHash, &user.Login, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, login string, password string) error {
	var prevLogin string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, login, password).Scan(&prevLogin)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// ON CONFLICT DO NOTHING не возвращает строку при дубликате логина
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUsers(ctx context.Context) ([]models.UserData, error) {
	var users []models.UserData
	rows, err := s.DB.Pool.Query(ctx, GetUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var user models.UserData
		if err := rows.Scan(&user.UserID, &user.Login, &user.CreatedAt); err != nil {
			return users, fmt.Errorf("failed scan user data: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *UserDatabase) GetUserCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.Pool.QueryRow(ctx, GetUserCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get user count: %w", err)
	}
	return count, nil
}

// GetSignupsByMonth - количество регистраций по календарным месяцам
func (s *UserDatabase) GetSignupsByMonth(ctx context.Context) ([]models.MonthlyRow, error) {
	var buckets []models.MonthlyRow
	rows, err := s.DB.Pool.Query(ctx, GetSignupsByMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups by month: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bucket models.MonthlyRow
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return buckets, fmt.Errorf("failed scan monthly bucket: %w", err)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, rows.Err()
}
