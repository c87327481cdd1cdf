package domain

import (
	"fmt"
	"strings"
)

type Passenger struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

func NewPassenger(name, surname, email string) Passenger {
	return Passenger{
		Name:    strings.TrimSpace(name),
		Surname: strings.TrimSpace(surname),
		Email:   strings.TrimSpace(email),
	}
}

func (p Passenger) FullName() string {
	return p.Name + " " + p.Surname
}

// Validate only checks that every field is present.
func (p Passenger) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("name is required: %w", ErrInvalidPassenger)
	case strings.TrimSpace(p.Surname) == "":
		return fmt.Errorf("surname is required: %w", ErrInvalidPassenger)
	case strings.TrimSpace(p.Email) == "":
		return fmt.Errorf("email is required: %w", ErrInvalidPassenger)
	}
	return nil
}
