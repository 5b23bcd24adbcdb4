// Package model содержит доменные сущности клиента управления заказами.
package model

import "github.com/shopspring/decimal"

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

const (
	OrderStatusPendente   OrderStatus = "PENDENTE"
	OrderStatusProcessado OrderStatus = "PROCESSADO"
	OrderStatusEntregue   OrderStatus = "ENTREGUE"
	OrderStatusCancelado  OrderStatus = "CANCELADO"
)

// Valid сообщает, входит ли статус в закрытый набор известных значений.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendente, OrderStatusProcessado, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderItem описывает одну позицию заказа.
type OrderItem struct {
	Product string          `json:"product"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
}

// Order описывает заказ в том виде, в котором его отдаёт внешний REST-сервис.
type Order struct {
	ID         int64           `json:"id"`
	ClientName string          `json:"clientName"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Date       string          `json:"date"`
	Items      []OrderItem     `json:"items"`
}

// User описывает учётную запись пользователя внешнего REST-сервиса.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credentials содержит данные для входа пользователя.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrderPayload описывает новый заказ до присвоения идентификатора.
// Статус не передаётся: новые заказы всегда создаются в статусе PENDENTE.
type CreateOrderPayload struct {
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	Date       string          `json:"date"`
	Items      []OrderItem     `json:"items"`
}
