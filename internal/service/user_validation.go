package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	apperrors "github.com/SergioAyalaHernandez/ms-users-crediya/pkg/util/errorutil"
)

const (
	msgMissingFields = "Todos los elementos son necesarios"
	msgInvalidSalary = "Salario base debe ser positivo y menor o igual a 15,000,000"
	msgInvalidRole   = "Rol no válido"
)

// SalaryBounds is the inclusive range accepted for a base salary.
type SalaryBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultSalaryBounds returns [1, 15000000].
func DefaultSalaryBounds() SalaryBounds {
	return SalaryBounds{Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(15_000_000)}
}

// ValidateRequiredFields fails with MISSING_FIELDS when any required value is
// empty or absent. A single error covers every missing field.
func ValidateRequiredFields(in domain.RegistrationInput) error {
	for _, v := range []string{in.FirstName, in.LastName, in.Address, in.Phone, in.Email} {
		if v == "" {
			return apperrors.NewValidationError(apperrors.CodeMissingFields, msgMissingFields)
		}
	}
	if in.BirthDate == nil || in.BaseSalary == nil {
		return apperrors.NewValidationError(apperrors.CodeMissingFields, msgMissingFields)
	}
	return nil
}

// ValidateSalaryRange fails with INVALID_SALARY outside bounds. Both ends pass.
func ValidateSalaryRange(in domain.RegistrationInput, bounds SalaryBounds) error {
	if in.BaseSalary == nil {
		return apperrors.NewValidationError(apperrors.CodeMissingFields, msgMissingFields)
	}
	salary := *in.BaseSalary
	if salary.LessThan(bounds.Min) || salary.GreaterThan(bounds.Max) {
		return apperrors.NewValidationError(apperrors.CodeInvalidSalary, msgInvalidSalary)
	}
	return nil
}

// ValidateRole fails with INVALID_ROLE unless every comma-separated entry is a
// known role. An empty role is accepted and later defaults to USER.
func ValidateRole(role string) error {
	if role == "" {
		return nil
	}
	for _, part := range strings.Split(role, ",") {
		if !domain.IsKnownRole(strings.TrimSpace(part)) {
			return apperrors.NewValidationError(apperrors.CodeInvalidRole, msgInvalidRole)
		}
	}
	return nil
}

// NormalizeRole trims each entry and drops repeats, keeping first-seen order.
func NormalizeRole(role string) string {
	if role == "" {
		return ""
	}
	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	for _, part := range strings.Split(role, ",") {
		r := strings.TrimSpace(part)
		if _, dup := seen[r]; dup || r == "" {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return strings.Join(out, ",")
}

// ValidateRegistration runs the required-field check, the salary check and
// then the role check.
func ValidateRegistration(in domain.RegistrationInput, bounds SalaryBounds) error {
	if err := ValidateRequiredFields(in); err != nil {
		return err
	}
	if err := ValidateSalaryRange(in, bounds); err != nil {
		return err
	}
	return ValidateRole(in.Role)
}
