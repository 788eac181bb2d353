//go:build unit || e2e

package builder

import (
	"testing"

	"carflow/internal/domain/user"
	reqdto "carflow/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "staff@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials(t *testing.T) user.Credentials {
	t.Helper()
	credentials, err := user.NewCredentials(a.Email, a.Password)
	require.NoError(t, err)
	return credentials
}
