package view

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/orderdesk/internal/model"
)

func TestItemsSummary(t *testing.T) {
	tests := []struct {
		name  string
		items []model.OrderItem
		want  string
	}{
		{
			name:  "no items",
			items: nil,
			want:  "Sem itens",
		},
		{
			name:  "empty slice",
			items: []model.OrderItem{},
			want:  "Sem itens",
		},
		{
			name: "single item",
			items: []model.OrderItem{
				{Product: "Teclado", Qty: 1},
			},
			want: "Teclado",
		},
		{
			name: "first item wins, others counted",
			items: []model.OrderItem{
				{Product: "Monitor", Qty: 1},
				{Product: "Mouse", Qty: 2},
				{Product: "Cabo HDMI", Qty: 1},
			},
			want: "Monitor e +2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemsSummary(tt.items)
			if got != tt.want {
				t.Fatalf("ItemsSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status model.OrderStatus
		want   string
	}{
		{model.OrderStatusPendente, ColorWarning},
		{model.OrderStatusProcessado, ColorInfo},
		{model.OrderStatusEntregue, ColorSuccess},
		{model.OrderStatusCancelado, ColorDanger},
		{model.OrderStatus("DESCONHECIDO"), ColorInfo},
		{model.OrderStatus(""), ColorInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := StatusColor(tt.status)
			if got != tt.want {
				t.Fatalf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  string
	}{
		{"zero", "0", "R$ 0,00"},
		{"cents only", "0.5", "R$ 0,50"},
		{"no grouping", "150.5", "R$ 150,50"},
		{"thousands", "1234.56", "R$ 1.234,56"},
		{"millions", "1234567.89", "R$ 1.234.567,89"},
		{"rounds to two decimals", "10.999", "R$ 11,00"},
		{"negative", "-1234.5", "-R$ 1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBRL(decimal.RequireFromString(tt.total))
			if got != tt.want {
				t.Fatalf("FormatBRL(%s) = %q, want %q", tt.total, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"date only", "2024-01-15", "15/01/2024"},
		{"rfc3339", "2024-03-02T10:30:00Z", "02/03/2024"},
		{"no timezone", "2024-03-02T10:30:00", "02/03/2024"},
		{"garbage", "not-a-date", "Data inválida"},
		{"empty", "", "Data inválida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.raw)
			if got != tt.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	raw := model.Order{
		ID:         42,
		ClientName: "Maria Silva",
		Status:     model.OrderStatusPendente,
		Total:      decimal.RequireFromString("320.00"),
		Date:       "2024-01-10",
		Items: []model.OrderItem{
			{Product: "Monitor", Qty: 1, Price: decimal.RequireFromString("250.00")},
			{Product: "Mouse", Qty: 1, Price: decimal.RequireFromString("70.00")},
		},
	}

	v := NewOrder(raw)

	if v.ID != 42 || v.ClientName != "Maria Silva" || v.Status != model.OrderStatusPendente {
		t.Fatalf("raw fields not preserved: %+v", v)
	}
	if v.TotalFormatted != "R$ 320,00" {
		t.Fatalf("TotalFormatted = %q", v.TotalFormatted)
	}
	if v.DateFormatted != "10/01/2024" {
		t.Fatalf("DateFormatted = %q", v.DateFormatted)
	}
	if v.ItemsSummary != "Monitor e +1" {
		t.Fatalf("ItemsSummary = %q", v.ItemsSummary)
	}
	if v.StatusColor != ColorWarning {
		t.Fatalf("StatusColor = %q", v.StatusColor)
	}
}

func TestNewOrder_Deterministic(t *testing.T) {
	raw := model.Order{
		ID:         7,
		ClientName: "João Souza",
		Status:     model.OrderStatusEntregue,
		Total:      decimal.RequireFromString("99.90"),
		Date:       "2024-02-20",
	}

	a := NewOrder(raw)
	b := NewOrder(raw)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("NewOrder must be deterministic:\n%+v\n%+v", a, b)
	}
	if a.ItemsSummary != "Sem itens" {
		t.Fatalf("ItemsSummary = %q, want %q", a.ItemsSummary, "Sem itens")
	}
}
