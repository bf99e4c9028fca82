package models

import "time"

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	UserID       string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserResponse - модель пользователя для выдачи (без хэша пароля)
type UserResponse struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	CreatedAt string `json:"created_at"`
}

// UsersListResponse - список пользователей с общим количеством
type UsersListResponse struct {
	Users []UserResponse `json:"users"`
	Count int64          `json:"count"`
}
