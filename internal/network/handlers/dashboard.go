package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/denmor86/shop-admin/internal/logger"
	"github.com/denmor86/shop-admin/internal/models"
	"github.com/denmor86/shop-admin/internal/services"
	"go.uber.org/zap"
)

const DefaultDashboardWindow = 12

// DashboardHandler — сборка метрик панели администратора.
// Окно накопительной серии заказов выбирается параметром window (6 или 12
// месяцев) и отсчитывается назад от текущего календарного месяца.
func DashboardHandler(m services.MetricsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window := DefaultDashboardWindow
		if param := r.URL.Query().Get("window"); param != "" {
			parsed, err := strconv.Atoi(param)
			if err != nil || (parsed != 6 && parsed != 12) {
				http.Error(w, "Invalid window, expected 6 or 12", http.StatusBadRequest)
				return
			}
			window = parsed
		}

		dashboard, err := m.BuildDashboard(r.Context(), window, time.Now())
		if err != nil {
			logger.Error("Failed to build dashboard:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// CategoriesHandler — список категорий с количеством товаров
func CategoriesHandler(m services.MetricsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := m.GetCategories(r.Context())
		if err != nil {
			logger.Error("Failed to get categories:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.CategoriesResponse{Categories: categories}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ProductCountHandler — количество товаров в каталоге
func ProductCountHandler(m services.MetricsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := m.GetProductCount(r.Context())
		if err != nil {
			logger.Error("Failed to get product count:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.CountResponse{Count: count}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
