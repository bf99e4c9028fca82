package models

import "github.com/shopspring/decimal"

// MonthNames - подписи месяцев для графиков (индекс = номер месяца - 1)
var MonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyRow - строка агрегации из хранилища: номер месяца (1-12),
// количество и денежная сумма. Годы не различаются - январи разных
// лет попадают в одну строку.
type MonthlyRow struct {
	Month int
	Count int64
	Sum   decimal.Decimal
}

// MonthlyBucket - точка месячной серии для графика
type MonthlyBucket struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// CumulativePoint - точка накопительной серии: исходное месячное
// значение и накопленная сумма по выбранному окну
type CumulativePoint struct {
	Month      string  `json:"month"`
	Value      float64 `json:"value"`
	Cumulative float64 `json:"cumulative"`
}

// CategoryCount - количество товаров в категории
type CategoryCount struct {
	Name         string `json:"name"`
	ProductCount int64  `json:"productCount"`
}

// CategoriesResponse - список категорий с количеством товаров
type CategoriesResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// CountResponse - скалярный счётчик
type CountResponse struct {
	Count int64 `json:"count"`
}

// DashboardResponse - сборка метрик для панели администратора.
// Серии собираются независимыми запросами и не разделяют снимок данных.
type DashboardResponse struct {
	Users      []MonthlyBucket   `json:"users"`
	Orders     []CumulativePoint `json:"orders"`
	Revenue    []MonthlyBucket   `json:"revenue"`
	Categories []CategoryCount   `json:"categories"`

	CustomerCount int64   `json:"customerCount"`
	OrderCount    int64   `json:"orderCount"`
	ProductCount  int64   `json:"productCount"`
	TotalIncome   float64 `json:"totalIncome"`
}
