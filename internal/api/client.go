// Package api предоставляет клиент внешнего REST-сервиса заказов и пользователей.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmeshcher/orderdesk/internal/model"
)

// ErrNotFound возвращается, когда внешний сервис не знает запрошенный ресурс.
var (
	ErrNotFound = errors.New("resource not found")
	// ErrRemoteUnavailable возвращается при транспортной ошибке или
	// неуспешном статусе внешнего сервиса. Повторных попыток нет: любая
	// ошибка сразу уходит вызывающей стороне.
	ErrRemoteUnavailable = errors.New("remote service unavailable")
)

// Client инкапсулирует HTTP-взаимодействие с внешним REST-сервисом.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт HTTP-клиент для обращения к внешнему сервису по указанному адресу.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return base + path
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	return resp, nil
}

// ListOrders возвращает все заказы внешнего сервиса в исходном порядке.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	resp, err := c.do(ctx, http.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var orders []model.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return orders, nil
}

// GetOrder возвращает один заказ по идентификатору.
func (c *Client) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var order model.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &order, nil
}

// CreateOrder отправляет новый заказ и возвращает его в том виде,
// в котором внешний сервис его сохранил.
func (c *Client) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	resp, err := c.do(ctx, http.MethodPost, "/orders", order)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var created model.Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &created, nil
}

type statusPatch struct {
	Status model.OrderStatus `json:"status"`
}

// UpdateOrderStatus отправляет частичное обновление заказа, ограниченное
// полем статуса.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", id), statusPatch{Status: status})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
	}
	return nil
}

// FindUser ищет пользователя с точным совпадением почты и пароля.
// Возвращает nil без ошибки, когда совпадения нет. Сравнение с паролем
// в открытом виде допустимо только потому, что внешний сервис — dev-мок.
func (c *Client) FindUser(ctx context.Context, email, password string) (*model.User, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)

	resp, err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
