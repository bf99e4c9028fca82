package validators

import (
	"strings"
)

// CheckCardNumber проверяет номер платёжной карты используя алгоритм Луна
func CheckCardNumber(number string) bool {
	// Удаляем пробелы и дефисы
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")

	// Номер карты состоит из 13-19 цифр
	if len(number) < 13 || len(number) > 19 {
		return false
	}

	sum := 0
	alternate := false

	// Идем по цифрам справа налево, любой символ кроме цифры делает номер невалидным
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if alternate {
			digit *= 2
			if digit > 9 {
				digit = (digit % 10) + 1
			}
		}

		sum += digit
		alternate = !alternate
	}

	// Число валидно, если сумма кратна 10
	return sum%10 == 0
}

// MaskCardNumber оставляет от номера карты последние четыре цифры
func MaskCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "-", "")
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
