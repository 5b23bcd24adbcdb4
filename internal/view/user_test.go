package view

import (
	"testing"

	"github.com/mmeshcher/orderdesk/internal/model"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		wantFirstName string
		wantInitials  string
	}{
		{
			name:          "two words",
			userName:      "Allan Sanches",
			wantFirstName: "Allan",
			wantInitials:  "AS",
		},
		{
			// Имя из одного слова даёт одну букву: инициалы извлекаются
			// по словам, это зафиксированное поведение.
			name:          "single word",
			userName:      "Admin",
			wantFirstName: "Admin",
			wantInitials:  "A",
		},
		{
			name:          "three words truncated to two initials",
			userName:      "Ana Beatriz Costa",
			wantFirstName: "Ana",
			wantInitials:  "AB",
		},
		{
			name:          "lowercase uppercased",
			userName:      "joão souza",
			wantFirstName: "joão",
			wantInitials:  "JS",
		},
		{
			name:          "empty name",
			userName:      "",
			wantFirstName: "",
			wantInitials:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser(model.User{ID: 1, Name: tt.userName, Email: "dev@teste.com", Role: "user"})

			if u.FirstName != tt.wantFirstName {
				t.Fatalf("FirstName = %q, want %q", u.FirstName, tt.wantFirstName)
			}
			if u.Initials != tt.wantInitials {
				t.Fatalf("Initials = %q, want %q", u.Initials, tt.wantInitials)
			}
			if u.Name != tt.userName || u.Email != "dev@teste.com" {
				t.Fatalf("raw fields not preserved: %+v", u)
			}
		})
	}
}
