package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmeshcher/orderdesk/internal/model"
	"github.com/mmeshcher/orderdesk/internal/view"
)

// ErrInvalidCredentials возвращается при несовпадении почты и пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenPrefix = "fake-jwt"

// AuthClient описывает контракт поиска пользователя во внешнем сервисе.
type AuthClient interface {
	FindUser(ctx context.Context, email, password string) (*model.User, error)
}

// Auth содержит логику аутентификации пользователя.
type Auth struct {
	client AuthClient
}

// NewAuth создаёт сервис аутентификации поверх клиента внешнего сервиса.
func NewAuth(client AuthClient) *Auth {
	return &Auth{client: client}
}

// Authenticate проверяет учётные данные и возвращает модель представления
// пользователя вместе с токеном сессии. Токен — локальная заглушка из
// фиксированного префикса, метки времени и идентификатора пользователя;
// он не является проверяемым удостоверением, и никакой компонент не вправе
// им так пользоваться.
func (s *Auth) Authenticate(ctx context.Context, creds model.Credentials) (*view.User, string, error) {
	raw, err := s.client.FindUser(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, "", err
	}
	if raw == nil {
		return nil, "", ErrInvalidCredentials
	}

	u := view.NewUser(*raw)
	token := fmt.Sprintf("%s-%d-%d", tokenPrefix, time.Now().UnixMilli(), u.ID)
	return &u, token, nil
}
