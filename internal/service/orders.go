// Package service реализует бизнес-логику клиента управления заказами.
package service

import (
	"context"

	"github.com/mmeshcher/orderdesk/internal/model"
	"github.com/mmeshcher/orderdesk/internal/view"
)

// OrdersClient описывает контракт доступа к заказам внешнего сервиса.
type OrdersClient interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
}

// baseOrderID — нижняя граница клиентской генерации идентификаторов:
// первый созданный заказ получает id 1001, выше любых демонстрационных данных.
const baseOrderID = 1000

// Orders содержит логику работы с заказами.
type Orders struct {
	client OrdersClient
}

// NewOrders создаёт сервис заказов поверх клиента внешнего сервиса.
func NewOrders(client OrdersClient) *Orders {
	return &Orders{client: client}
}

// List возвращает все заказы в виде моделей представления, сохраняя
// порядок внешнего сервиса.
func (s *Orders) List(ctx context.Context) ([]view.Order, error) {
	raw, err := s.client.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]view.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, view.NewOrder(o))
	}
	return orders, nil
}

// Get возвращает один заказ по идентификатору.
func (s *Orders) Get(ctx context.Context, id int64) (*view.Order, error) {
	raw, err := s.client.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	v := view.NewOrder(*raw)
	return &v, nil
}

// Create создаёт новый заказ. Статус всегда PENDENTE, идентификатор
// вычисляется на стороне клиента: максимум среди существующих плюс один.
// Схема не атомарна и переживает только единственного писателя — внешний
// сервис здесь dev-мок. При нескольких писателях идентификаторы должен
// выдавать сам сервис.
func (s *Orders) Create(ctx context.Context, payload model.CreateOrderPayload) (*view.Order, error) {
	existing, err := s.client.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	order := model.Order{
		ID:         nextOrderID(existing),
		ClientName: payload.ClientName,
		Status:     model.OrderStatusPendente,
		Total:      payload.Total,
		Date:       payload.Date,
		Items:      payload.Items,
	}

	created, err := s.client.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	v := view.NewOrder(*created)
	return &v, nil
}

func nextOrderID(orders []model.Order) int64 {
	maxID := int64(baseOrderID)
	for _, o := range orders {
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	return maxID + 1
}

// UpdateStatus отправляет частичное обновление, меняющее только статус.
// Локальное состояние не трогается: вызывающая сторона перечитывает заказ.
func (s *Orders) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return s.client.UpdateOrderStatus(ctx, id, status)
}
