package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewUserFromInput(t *testing.T) {
	birth := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	salary := decimal.NewFromInt(2_000_000)

	t.Run("role defaults to USER", func(t *testing.T) {
		user := NewUserFromInput(RegistrationInput{
			FirstName:  "Juan",
			Email:      "juan@ejemplo.com",
			BirthDate:  &birth,
			BaseSalary: &salary,
		})

		assert.Equal(t, RoleUser, user.Role)
		assert.Zero(t, user.ID)
		assert.Equal(t, birth, user.BirthDate)
		assert.True(t, user.BaseSalary.Equal(salary))
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		user := NewUserFromInput(RegistrationInput{Role: RoleAdvisor})
		assert.Equal(t, RoleAdvisor, user.Role)
	})
}

func TestIsKnownRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleAdmin, RoleAdvisor, RoleClient} {
		assert.True(t, IsKnownRole(role), role)
	}
	for _, role := range []string{"", "ROOT", "admin", "ROLE_ADMIN"} {
		assert.False(t, IsKnownRole(role), role)
	}
}

func TestAuthority(t *testing.T) {
	assert.Equal(t, "ROLE_ADMIN", Authority(RoleAdmin))
}
