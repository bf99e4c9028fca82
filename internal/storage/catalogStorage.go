package storage

import (
	"context"
	"fmt"

	"github.com/denmor86/shop-admin/internal/models"
)

const (
	GetCategories   = `SELECT category, COUNT(*) FROM PRODUCTS GROUP BY category ORDER BY category;`
	GetProductCount = `SELECT COUNT(*) FROM PRODUCTS;`
)

type CatalogDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCatalogStorage(db *Database) CatalogStorage {
	return &CatalogDatabase{DB: db}
}

// GetCategories - список категорий с количеством товаров в каждой
func (s *CatalogDatabase) GetCategories(ctx context.Context) ([]models.CategoryCount, error) {
	var categories []models.CategoryCount
	rows, err := s.DB.Pool.Query(ctx, GetCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category models.CategoryCount
		if err := rows.Scan(&category.Name, &category.ProductCount); err != nil {
			return categories, fmt.Errorf("failed scan category data: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *CatalogDatabase) GetProductCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.DB.Pool.QueryRow(ctx, GetProductCount).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get product count: %w", err)
	}
	return count, nil
}
