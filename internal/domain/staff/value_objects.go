package staff

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

type Credentials struct {
	Email    Email
	Password string
}
