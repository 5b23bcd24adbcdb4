// Package handler содержит HTTP-обработчики клиента управления заказами.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/orderdesk/internal/api"
	"github.com/mmeshcher/orderdesk/internal/model"
	"github.com/mmeshcher/orderdesk/internal/session"
	"github.com/mmeshcher/orderdesk/internal/view"
)

// Orders описывает контракт сервиса заказов, используемый HTTP-обработчиками.
type Orders interface {
	List(ctx context.Context) ([]view.Order, error)
	Get(ctx context.Context, id int64) (*view.Order, error)
	Create(ctx context.Context, payload model.CreateOrderPayload) (*view.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}

// Session описывает контракт хранилища сессии, используемый HTTP-обработчиками.
type Session interface {
	Login(ctx context.Context, creds model.Credentials) bool
	Logout()
	IsAuthenticated() bool
	Snapshot() session.State
}

// Handler реализует HTTP-обработчики приложения.
type Handler struct {
	orders  Orders
	session Session
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(orders Orders, sess Session, logger *zap.Logger) *Handler {
	return &Handler{
		orders:  orders,
		session: sess,
		logger:  logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Login выполняет вход и возвращает снимок состояния сессии.
// Неудачный вход отвечает 401, текст ошибки лежит в поле error снимка.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if creds.Email == "" || creds.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ok := h.session.Login(r.Context(), creds)

	status := http.StatusOK
	if !ok {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, h.session.Snapshot())
}

// Logout завершает сессию и возвращает снимок анонимного состояния.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout()
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// GetSession возвращает текущий снимок состояния сессии.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) handleOrderError(w http.ResponseWriter, err error, msg string, fields ...zap.Field) {
	switch {
	case errors.Is(err, api.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, api.ErrRemoteUnavailable):
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
	default:
		h.logger.Error(msg, append(fields, zap.Error(err))...)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// GetOrders возвращает список заказов в виде моделей представления.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.handleOrderError(w, err, "list orders error")
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetOrder возвращает один заказ по идентификатору.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		h.handleOrderError(w, err, "get order error", zap.Int64("orderID", id))
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// CreateOrder создаёт новый заказ из присланных данных.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if payload.ClientName == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.orders.Create(r.Context(), payload)
	if err != nil {
		h.handleOrderError(w, err, "create order error")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// UpdateStatus меняет статус заказа. Обновляется только поле статуса;
// свежее состояние заказа вызывающая сторона перечитывает сама.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !req.Status.Valid() {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleOrderError(w, err, "update status error", zap.Int64("orderID", id))
		return
	}

	w.WriteHeader(http.StatusOK)
}
