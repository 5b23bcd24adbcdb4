// Package view содержит модели представления: проекции сырых записей
// с заранее отформатированными полями для отображения.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/orderdesk/internal/model"
)

// Цветовые токены статусов заказа.
const (
	ColorSuccess = "success"
	ColorWarning = "warning"
	ColorDanger  = "danger"
	ColorInfo    = "info"
)

const (
	noItemsSummary    = "Sem itens"
	invalidDateMarker = "Data inválida"
)

// dateLayouts перечисляет принимаемые форматы даты заказа.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Order — модель представления заказа. Все производные поля — чистые
// функции сырого заказа: повторное построение даёт идентичный результат.
type Order struct {
	ID             int64             `json:"id"`
	ClientName     string            `json:"clientName"`
	Status         model.OrderStatus `json:"status"`
	Total          decimal.Decimal   `json:"total"`
	Date           string            `json:"date"`
	Items          []model.OrderItem `json:"items"`
	TotalFormatted string            `json:"totalFormatted"`
	DateFormatted  string            `json:"dateFormatted"`
	ItemsSummary   string            `json:"itemsSummary"`
	StatusColor    string            `json:"statusColor"`
}

// NewOrder строит модель представления из сырого заказа. Построение не
// завершается ошибкой ни для какого корректного заказа: пустой список
// позиций и нераспознанная дата дают фиксированные подстановки.
func NewOrder(o model.Order) Order {
	return Order{
		ID:             o.ID,
		ClientName:     o.ClientName,
		Status:         o.Status,
		Total:          o.Total,
		Date:           o.Date,
		Items:          o.Items,
		TotalFormatted: FormatBRL(o.Total),
		DateFormatted:  FormatDate(o.Date),
		ItemsSummary:   ItemsSummary(o.Items),
		StatusColor:    StatusColor(o.Status),
	}
}

// FormatBRL форматирует сумму как валюту локали pt-BR: "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate приводит дату заказа к короткому формату локали pt-BR
// (дд/мм/гггг). Нераспознанная дата даёт фиксированный маркер, ошибки
// наружу не выходят.
func FormatDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return invalidDateMarker
}

// ItemsSummary строит сводку позиций: название первой позиции и количество
// остальных. Порядок позиций не меняется, первой считается первая во входе.
func ItemsSummary(items []model.OrderItem) string {
	if len(items) == 0 {
		return noItemsSummary
	}
	if len(items) == 1 {
		return items[0].Product
	}
	return fmt.Sprintf("%s e +%d", items[0].Product, len(items)-1)
}

// StatusColor возвращает цветовой токен статуса. Набор закрытый; всё, что
// в него не входит, включая PROCESSADO, получает токен по умолчанию "info".
func StatusColor(status model.OrderStatus) string {
	switch status {
	case model.OrderStatusEntregue:
		return ColorSuccess
	case model.OrderStatusPendente:
		return ColorWarning
	case model.OrderStatusCancelado:
		return ColorDanger
	default:
		return ColorInfo
	}
}
