package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency это валюта котировок. Допустимы только значения из Currencies.
type Currency string

const (
	USD Currency = "usd"
	TRY Currency = "try"
	EUR Currency = "eur"
)

// Currencies перечисляет поддерживаемые валюты в порядке показа.
var Currencies = []Currency{USD, TRY, EUR}

// DefaultCurrency выбирается, когда валюта не передана.
const DefaultCurrency = USD

// ParseCurrency разбирает строку без учёта регистра. Пустая строка даёт DefaultCurrency.
func ParseCurrency(s string) (Currency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency, nil
	}
	for _, c := range Currencies {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: currency %q", ErrInvalidArgument, s)
}

// Upper возвращает код валюты для отображения (USD, TRY, EUR).
func (c Currency) Upper() string {
	return strings.ToUpper(string(c))
}

// Days это глубина истории цены в днях.
type Days int

// Ranges перечисляет допустимые интервалы графика.
var Ranges = []Days{1, 7, 30, 90, 365}

// DefaultDays выбирается, когда интервал не передан.
const DefaultDays Days = 30

// ParseDays разбирает интервал графика. Пустая строка даёт DefaultDays.
func ParseDays(s string) (Days, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDays, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: days %q", ErrInvalidArgument, s)
	}
	for _, d := range Ranges {
		if int(d) == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: days %d", ErrInvalidArgument, n)
}

func (d Days) String() string {
	return strconv.Itoa(int(d))
}

// Границы размера списка топ-монет. CoinGecko отдаёт не больше 250 строк на страницу.
const (
	DefaultLimit = 100
	MaxLimit     = 250
)

// ParseLimit разбирает размер списка. Пустая строка даёт DefaultLimit.
func ParseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, fmt.Errorf("%w: limit %q (1..%d)", ErrInvalidArgument, s, MaxLimit)
	}
	return n, nil
}

// CoinID это идентификатор монеты у CoinGecko (slug в нижнем регистре, например "bitcoin").
type CoinID string

// DefaultCoin выбирается в деталях и конвертере, если монета не указана.
const DefaultCoin CoinID = "bitcoin"

// ParseCoinID нормализует идентификатор. Пустой идентификатор недопустим.
func ParseCoinID(s string) (CoinID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty coin id", ErrInvalidArgument)
	}
	if strings.ContainsAny(s, "/?#& ") {
		return "", fmt.Errorf("%w: coin id %q", ErrInvalidArgument, s)
	}
	return CoinID(s), nil
}
