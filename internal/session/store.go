// Package session реализует хранилище состояния аутентификации с
// персистентностью в локальном key-value хранилище.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mmeshcher/orderdesk/internal/model"
	"github.com/mmeshcher/orderdesk/internal/service"
	"github.com/mmeshcher/orderdesk/internal/storage"
	"github.com/mmeshcher/orderdesk/internal/view"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

const (
	guestName         = "Visitante"
	errMsgInvalid     = "Usuário ou senha inválidos"
	errMsgLoginFailed = "Erro ao realizar login"
)

// Authenticator описывает контракт сервиса аутентификации, используемый хранилищем.
type Authenticator interface {
	Authenticate(ctx context.Context, creds model.Credentials) (*view.User, string, error)
}

// State — снимок состояния хранилища для отображения.
type State struct {
	User            *view.User `json:"user"`
	Token           string     `json:"token,omitempty"`
	Loading         bool       `json:"loading"`
	Error           string     `json:"error,omitempty"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	DisplayName     string     `json:"displayName"`
}

// Store хранит текущего пользователя, токен, флаг загрузки и последнюю
// ошибку входа. Состояние меняют только Login и Logout. Пустой токен
// означает его отсутствие.
type Store struct {
	auth    Authenticator
	storage storage.Storage

	mu      sync.Mutex
	user    *view.User
	token   string
	loading bool
	errMsg  string
}

// New создаёт хранилище и восстанавливает состояние из storage. Токен и
// запись пользователя восстанавливаются только парой: отсутствие любой из
// записей или повреждённый JSON пользователя молча дают анонимное состояние.
func New(auth Authenticator, st storage.Storage) *Store {
	s := &Store{auth: auth, storage: st}

	token, ok := st.Get(tokenKey)
	if !ok || token == "" {
		return s
	}
	raw, ok := st.Get(userKey)
	if !ok {
		return s
	}

	var u view.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return s
	}

	s.user = &u
	s.token = token
	return s
}

// Login выполняет вход по учётным данным. На время запроса поднимается
// флаг загрузки, прежняя ошибка сбрасывается. Успех сохраняет пользователя
// и токен в storage; неудача оставляет токен пустым и записывает текст
// ошибки. Возвращает признак успеха.
func (s *Store) Login(ctx context.Context, creds model.Credentials) bool {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	user, token, err := s.auth.Authenticate(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			s.errMsg = errMsgInvalid
		} else {
			s.errMsg = errMsgLoginFailed
		}
		return false
	}

	s.user = user
	s.token = token

	_ = s.storage.Set(tokenKey, token)
	if data, err := json.Marshal(user); err == nil {
		_ = s.storage.Set(userKey, string(data))
	}
	return true
}

// Logout сбрасывает пользователя, токен и ошибку и удаляет сохранённые записи.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.errMsg = ""

	_ = s.storage.Remove(tokenKey)
	_ = s.storage.Remove(userKey)
}

// IsAuthenticated сообщает, есть ли активная сессия.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// DisplayName возвращает имя для приветствия: первое слово имени
// пользователя или фиксированную подстановку для анонима.
func (s *Store) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayNameLocked()
}

func (s *Store) displayNameLocked() string {
	if s.user == nil || s.user.FirstName == "" {
		return guestName
	}
	return s.user.FirstName
}

// Snapshot возвращает копию текущего состояния вместе с производными флагами.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		User:            s.user,
		Token:           s.token,
		Loading:         s.loading,
		Error:           s.errMsg,
		IsAuthenticated: s.token != "",
		DisplayName:     s.displayNameLocked(),
	}
}
