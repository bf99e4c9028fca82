package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error)
	GetUsers(ctx context.Context) ([]models.UserData, int64, error)
	GenerateJWT(username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
}

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.IStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового пользователя.
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Login)

	existing, err := i.Storage.GetUser(ctx, user.Login)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		logger.Warn("User already exist")
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Storage.AddUser(ctx, user.Login, string(hashedPassword))
	if err != nil {
		// гонка двух регистраций одного логина: вставку выиграл другой запрос
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist")
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Login, err)
		return err
	}
	return nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error) {
	logger.Info("Authenticate user", user.Login)

	stored, err := i.Storage.GetUser(ctx, user.Login)
	if err != nil {
		logger.Error("Error getting user", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Login)
		return false, nil
	}

	logger.Info("User authenticated", user.Login)
	return true, nil
}

// GetUsers - список пользователей с общим количеством
func (i *Identity) GetUsers(ctx context.Context) ([]models.UserData, int64, error) {
	users, err := i.Storage.GetUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.Storage.GetUserCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
