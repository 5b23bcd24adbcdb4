// Package mockapi реализует dev-мок внешнего REST-сервиса заказов и
// пользователей. Мок — единственный писатель своих данных; именно это
// допущение делает терпимой клиентскую генерацию идентификаторов в
// сервисе заказов.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	custommiddleware "github.com/mmeshcher/orderdesk/internal/middleware"
	"github.com/mmeshcher/orderdesk/internal/model"
)

// SeedUser — запись пользователя мока вместе с паролем в открытом виде.
// Допустимо только потому, что мок — среда разработки, а не хранилище
// учётных данных.
type SeedUser struct {
	model.User
	Password string `json:"password"`
}

// Seed — начальное содержимое мока.
type Seed struct {
	Users  []SeedUser    `json:"users"`
	Orders []model.Order `json:"orders"`
}

// LoadSeed читает начальные данные мока из JSON-файла.
func LoadSeed(path string) (Seed, error) {
	var seed Seed

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read seed file: %w", err)
	}
	if err := json.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed возвращает встроенные демонстрационные данные.
func DefaultSeed() Seed {
	return Seed{
		Users: []SeedUser{
			{
				User: model.User{
					ID:    1,
					Name:  "Allan Sanches",
					Email: "dev@teste.com",
					Role:  "admin",
				},
				Password: "123456",
			},
		},
		Orders: []model.Order{
			{
				ID:         1,
				ClientName: "Maria Silva",
				Status:     model.OrderStatusPendente,
				Total:      decimal.RequireFromString("150.50"),
				Date:       "2024-01-15",
				Items: []model.OrderItem{
					{Product: "Teclado", Qty: 1, Price: decimal.RequireFromString("150.50")},
				},
			},
			{
				ID:         2,
				ClientName: "João Souza",
				Status:     model.OrderStatusEntregue,
				Total:      decimal.RequireFromString("320.00"),
				Date:       "2024-01-10",
				Items: []model.OrderItem{
					{Product: "Monitor", Qty: 1, Price: decimal.RequireFromString("250.00")},
					{Product: "Mouse", Qty: 1, Price: decimal.RequireFromString("70.00")},
				},
			},
		},
	}
}

// Server хранит данные мока в памяти и отдаёт их по REST.
type Server struct {
	logger *zap.Logger

	mu     sync.Mutex
	users  []SeedUser
	orders []model.Order
}

// NewServer создаёт мок с указанными начальными данными.
func NewServer(seed Seed, logger *zap.Logger) *Server {
	return &Server{
		logger: logger,
		users:  seed.Users,
		orders: seed.Orders,
	}
}

// SetupRouter настраивает маршруты мока.
func (s *Server) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.Logger(s.logger))

	r.Get("/orders", s.listOrders)
	r.Post("/orders", s.createOrder)
	r.Get("/orders/{id}", s.getOrder)
	r.Patch("/orders/{id}", s.patchOrder)

	r.Get("/users", s.findUsers)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == order.ID {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
	}

	s.orders = append(s.orders, order)
	writeJSON(w, http.StatusCreated, order)
}

type orderPatch struct {
	ClientName *string            `json:"clientName"`
	Status     *model.OrderStatus `json:"status"`
	Total      *decimal.Decimal   `json:"total"`
	Date       *string            `json:"date"`
	Items      *[]model.OrderItem `json:"items"`
}

func (s *Server) patchOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var patch orderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}

		if patch.ClientName != nil {
			s.orders[i].ClientName = *patch.ClientName
		}
		if patch.Status != nil {
			s.orders[i].Status = *patch.Status
		}
		if patch.Total != nil {
			s.orders[i].Total = *patch.Total
		}
		if patch.Date != nil {
			s.orders[i].Date = *patch.Date
		}
		if patch.Items != nil {
			s.orders[i].Items = *patch.Items
		}

		writeJSON(w, http.StatusOK, s.orders[i])
		return
	}
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

// findUsers отдаёт пользователей с точным совпадением почты и пароля из
// query-параметров. Пароли в ответ не попадают.
func (s *Server) findUsers(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	password := r.URL.Query().Get("password")

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]model.User, 0)
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			matched = append(matched, u.User)
		}
	}

	writeJSON(w, http.StatusOK, matched)
}
