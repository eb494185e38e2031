package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

// DateLayout is the wire format of fechaNacimiento.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date must use %s: %w", DateLayout, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// DocumentNumber accepts either a JSON string or a JSON number.
type DocumentNumber string

// UnmarshalJSON decodes strings verbatim and numbers in their literal form.
func (n *DocumentNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = DocumentNumber(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeroDocumento must be a string or number: %w", err)
	}
	*n = DocumentNumber(num.String())
	return nil
}

// CreateUserRequest payload for POST /api/v1/usuarios.
type CreateUserRequest struct {
	Nombres           string           `json:"nombres"`
	Apellidos         string           `json:"apellidos"`
	FechaNacimiento   *Date            `json:"fechaNacimiento"`
	Direccion         string           `json:"direccion"`
	Telefono          string           `json:"telefono"`
	CorreoElectronico string           `json:"correoElectronico"`
	SalarioBase       *decimal.Decimal `json:"salarioBase"`
	NumeroDocumento   DocumentNumber   `json:"numeroDocumento"`
	Role              string           `json:"role"`
	Password          string           `json:"password"`
}

// ToInput maps the payload onto the registration input.
func (r CreateUserRequest) ToInput() domain.RegistrationInput {
	in := domain.RegistrationInput{
		FirstName:      r.Nombres,
		LastName:       r.Apellidos,
		Address:        r.Direccion,
		Phone:          r.Telefono,
		Email:          r.CorreoElectronico,
		BaseSalary:     r.SalarioBase,
		DocumentNumber: string(r.NumeroDocumento),
		Role:           strings.ToUpper(strings.TrimSpace(r.Role)),
		Password:       r.Password,
	}
	if r.FechaNacimiento != nil {
		birth := r.FechaNacimiento.Time
		in.BirthDate = &birth
	}
	return in
}

// UserResponse is the public view of a user. The password is never included.
type UserResponse struct {
	ID                int64       `json:"id"`
	Nombres           string      `json:"nombres"`
	Apellidos         string      `json:"apellidos"`
	FechaNacimiento   Date        `json:"fechaNacimiento"`
	Direccion         string      `json:"direccion"`
	Telefono          string      `json:"telefono"`
	CorreoElectronico string      `json:"correoElectronico"`
	SalarioBase       json.Number `json:"salarioBase"`
	NumeroDocumento   string      `json:"numeroDocumento,omitempty"`
	Role              string      `json:"role"`
}

// NewUserResponse builds the public view.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Nombres:           u.FirstName,
		Apellidos:         u.LastName,
		FechaNacimiento:   Date{Time: u.BirthDate},
		Direccion:         u.Address,
		Telefono:          u.Phone,
		CorreoElectronico: u.Email,
		SalarioBase:       json.Number(u.BaseSalary.String()),
		NumeroDocumento:   u.DocumentNumber,
		Role:              u.Role,
	}
}

// LoginRequest payload for POST /api/v1/login.
type LoginRequest struct {
	CorreoElectronico string `json:"correoElectronico"`
	Password          string `json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}
