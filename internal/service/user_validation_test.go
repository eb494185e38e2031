package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

func validInput() domain.RegistrationInput {
	birth := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	salary := decimal.NewFromInt(2_000_000)
	return domain.RegistrationInput{
		FirstName:      "Juan",
		LastName:       "Pérez",
		BirthDate:      &birth,
		Address:        "Calle 123",
		Phone:          "1234567890",
		Email:          "juan@ejemplo.com",
		BaseSalary:     &salary,
		DocumentNumber: "1020304050",
		Password:       "12345678",
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, code, de.Code)
	assert.Equal(t, apperrors.KindValidation, de.Kind)
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RegistrationInput)
	}{
		{"first name", func(in *domain.RegistrationInput) { in.FirstName = "" }},
		{"last name", func(in *domain.RegistrationInput) { in.LastName = "" }},
		{"address", func(in *domain.RegistrationInput) { in.Address = "" }},
		{"phone", func(in *domain.RegistrationInput) { in.Phone = "" }},
		{"email", func(in *domain.RegistrationInput) { in.Email = "" }},
		{"birth date", func(in *domain.RegistrationInput) { in.BirthDate = nil }},
		{"salary", func(in *domain.RegistrationInput) { in.BaseSalary = nil }},
		{"several at once", func(in *domain.RegistrationInput) {
			in.FirstName = ""
			in.BaseSalary = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			requireCode(t, ValidateRequiredFields(in), apperrors.CodeMissingFields)
		})
	}

	t.Run("document number is optional", func(t *testing.T) {
		in := validInput()
		in.DocumentNumber = ""
		assert.NoError(t, ValidateRequiredFields(in))
	})
}

func TestValidateSalaryRange(t *testing.T) {
	bounds := DefaultSalaryBounds()

	tests := []struct {
		salary  string
		wantErr bool
	}{
		{"-1", true},
		{"0", true},
		{"0.99", true},
		{"1", false},
		{"2000000", false},
		{"15000000", false},
		{"15000000.00", false},
		{"15000000.01", true},
		{"20000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.salary, func(t *testing.T) {
			in := validInput()
			salary := decimal.RequireFromString(tt.salary)
			in.BaseSalary = &salary

			err := ValidateSalaryRange(in, bounds)
			if tt.wantErr {
				requireCode(t, err, apperrors.CodeInvalidSalary)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSalaryRange_CustomBounds(t *testing.T) {
	bounds := SalaryBounds{Min: decimal.Zero, Max: decimal.NewFromInt(100)}
	in := validInput()
	zero := decimal.Zero
	in.BaseSalary = &zero
	assert.NoError(t, ValidateSalaryRange(in, bounds))
}

func TestValidateRole(t *testing.T) {
	tests := []struct {
		role    string
		wantErr bool
	}{
		{role: ""},
		{role: domain.RoleAdmin},
		{role: "ADMIN,USER,ASESOR,CLIENTE"},
		{role: "ADMIN, USER"},
		{role: "SUPERUSER", wantErr: true},
		{role: "ADMIN,ROOT", wantErr: true},
		{role: "ADMIN,,USER", wantErr: true},
		{role: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			err := ValidateRole(tt.role)
			if tt.wantErr {
				requireCode(t, err, apperrors.CodeInvalidRole)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "", NormalizeRole(""))
	assert.Equal(t, "ADMIN,USER", NormalizeRole(" ADMIN , USER ,ADMIN"))
	assert.Equal(t, "ADMIN,USER,ASESOR,CLIENTE", NormalizeRole("ADMIN,USER,ASESOR,CLIENTE"))
}

func TestValidateRegistration_RejectsUnknownRole(t *testing.T) {
	in := validInput()
	in.Role = "ADMIN,ROOT"
	requireCode(t, ValidateRegistration(in, DefaultSalaryBounds()), apperrors.CodeInvalidRole)
}

func TestValidateRegistration_MissingFieldsWinsOverSalary(t *testing.T) {
	in := validInput()
	in.Phone = ""
	huge := decimal.NewFromInt(99_000_000)
	in.BaseSalary = &huge

	requireCode(t, ValidateRegistration(in, DefaultSalaryBounds()), apperrors.CodeMissingFields)
}
