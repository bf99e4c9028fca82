package main

import (
	"fmt"

	"github.com/denmor86/shop-admin/internal/app"
	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// подключение к БД и миграции
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	defer database.Close()
	if err := database.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	// создание маршутизатора и запуск сервера
	app.Run(config, storage.NewStorage(database))
}
