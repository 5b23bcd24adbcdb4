package view

import (
	"strings"
	"unicode"

	"github.com/mmeshcher/orderdesk/internal/model"
)

// User — модель представления пользователя.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	Initials  string `json:"initials"`
}

// NewUser строит модель представления из сырой записи пользователя.
func NewUser(u model.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: firstName(u.Name),
		Initials:  initials(u.Name),
	}
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// initials собирает первые буквы слов имени в верхнем регистре, не более
// двух. Имя из одного слова даёт ровно одну букву: инициалы извлекаются
// по словам, и это намеренное поведение.
func initials(name string) string {
	var rs []rune
	for _, field := range strings.Fields(name) {
		first := []rune(field)[0]
		rs = append(rs, unicode.ToUpper(first))
		if len(rs) == 2 {
			break
		}
	}
	return string(rs)
}
