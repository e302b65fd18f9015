package dashboard

import (
	"github.com/shopspring/decimal"

	"cryptoTracker/internal/domain"
)

// Request это параметры страницы. Пустые поля заменяются значениями по умолчанию.
type Request struct {
	View     domain.View
	Currency domain.Currency
	Coin     domain.CoinID
	Days     domain.Days
	Amount   decimal.NullDecimal
	Target   domain.Currency
}

// Page это модель страницы дашборда. Заполнен ровно один из блоков Overview, Detail, Converter.
type Page struct {
	View   string              `json:"view"`
	State  domain.RequestState `json:"state"`
	Notice string              `json:"notice,omitempty"`

	Overview  *Overview  `json:"overview,omitempty"`
	Detail    *Detail    `json:"detail,omitempty"`
	Converter *Converter `json:"converter,omitempty"`
}

// Overview это таблица топ-монет.
type Overview struct {
	Currency domain.Currency    `json:"currency"`
	Rows     []domain.MarketRow `json:"rows"`
}

// Selector это список монет для выбора и индекс выбранной (-1, если монеты нет в каталоге).
type Selector struct {
	Options  []domain.CoinID `json:"options"`
	Selected int             `json:"selected"`
}

// Detail это страница анализа монеты: карточка и график.
type Detail struct {
	Coin     domain.CoinID        `json:"coin"`
	Currency domain.Currency      `json:"currency"`
	Days     domain.Days          `json:"days"`
	Ranges   []domain.Days        `json:"ranges"`
	Selector Selector             `json:"selector"`
	Card     *domain.CoinDetail   `json:"card,omitempty"`
	History  *domain.PriceHistory `json:"history,omitempty"`
}

// Converter это страница конвертера.
type Converter struct {
	Coin       domain.CoinID      `json:"coin"`
	Amount     decimal.Decimal    `json:"amount"`
	Target     domain.Currency    `json:"target"`
	Currencies []domain.Currency  `json:"currencies"`
	Selector   Selector           `json:"selector"`
	Result     *domain.Conversion `json:"result,omitempty"`
}
