package ledger

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount   = errors.New("amount not numeric or not positive")
	ErrEmptyField      = errors.New("required field is empty")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// ParseAmountCents разбирает сумму из текстового поля формы в центы.
// Допускаются разделители точка и запятая, максимум два знака после
// разделителя (третий округляется по правилу half-up). Нечисловой ввод,
// ноль и отрицательные значения отклоняются: NaN в журнал не попадает.
func ParseAmountCents(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyField
	}

	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}

	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart == "" && len(parts) == 2 {
		return 0, ErrInvalidAmount
	}

	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	const maxWhole = (1<<63 - 1) / 100
	if whole > maxWhole {
		return 0, ErrInvalidAmount
	}

	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	cents := whole*100 + frac
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}

// FormatCents возвращает сумму в центах как десятичную строку вида 1500.00.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return sign + strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
