package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrationInput carries the fields submitted to create a user.
// BirthDate and BaseSalary are nil when the caller omitted them.
type RegistrationInput struct {
	FirstName      string
	LastName       string
	BirthDate      *time.Time
	Address        string
	Phone          string
	Email          string
	BaseSalary     *decimal.Decimal
	DocumentNumber string
	Role           string
	Password       string
}

// User is the persisted identity record.
type User struct {
	ID             int64
	FirstName      string
	LastName       string
	BirthDate      time.Time
	Address        string
	Phone          string
	Email          string
	BaseSalary     decimal.Decimal
	DocumentNumber string
	Role           string
	Password       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUserFromInput builds an unsaved record, defaulting the role to USER.
// Callers must validate the input first.
func NewUserFromInput(in RegistrationInput) *User {
	user := &User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		DocumentNumber: in.DocumentNumber,
		Role:           in.Role,
		Password:       in.Password,
	}
	if in.BirthDate != nil {
		user.BirthDate = *in.BirthDate
	}
	if in.BaseSalary != nil {
		user.BaseSalary = *in.BaseSalary
	}
	if user.Role == "" {
		user.Role = RoleUser
	}
	return user
}
