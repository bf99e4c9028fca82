package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/services"
	"go.uber.org/zap"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		// регистрация в Identity
		if err := i.RegisterUser(r.Context(), user); err != nil {
			// пользователь уже существует
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", user.Login)
				http.Error(w, "login already exist", http.StatusConflict)
			} else {
				// ошибка регистрации
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Генерация JWT токена для зарегистрированного пользователя
		token, err := i.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// Пользователь зарегистрирован и авторизован
		logger.Info("User registered and authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandle — аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		// аутентификация в Identity
		authenticated, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			logger.Error("Error authenticate user", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// проверка авторизации
		if !authenticated {
			logger.Warn("Authentication failed", user.Login)
			http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// GetUsersHandler — список пользователей с общим количеством (без хэшей паролей)
func GetUsersHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, count, err := i.GetUsers(r.Context())
		if err != nil {
			logger.Error("Failed to get users:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := models.UsersListResponse{
			Users: make([]models.UserResponse, 0, len(users)),
			Count: count,
		}
		for _, user := range users {
			response.Users = append(response.Users, models.UserResponse{
				ID:        user.UserID,
				Login:     user.Login,
				CreatedAt: user.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
