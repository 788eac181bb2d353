//go:build unit

package user_test

import (
	"testing"

	"carflow/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Phone{}, user.NationalID{}, user.Email{}),
}

func mustPhone(t *testing.T, s string) user.Phone {
	t.Helper()
	p, err := user.NewPhone(s)
	require.NoError(t, err)
	return p
}

func TestNewCustomer(t *testing.T) {
	phone := mustPhone(t, "09121234567")

	t.Run("creates an active customer", func(t *testing.T) {
		u, err := user.NewCustomer("Alice Buyer", phone)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Alice Buyer", u.FullName())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.Email())
		if diff := cmp.Diff(phone, u.Phone(), cmpOpts...); diff != "" {
			t.Errorf("Phone mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("trims the full name", func(t *testing.T) {
		u, err := user.NewCustomer("  Alice Buyer  ", phone)
		require.NoError(t, err)
		assert.Equal(t, "Alice Buyer", u.FullName())
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		_, err := user.NewCustomer("   ", phone)
		assert.ErrorIs(t, err, user.ErrEmptyFullName)
	})
}

func TestNewStaff(t *testing.T) {
	phone := mustPhone(t, "09121234567")
	email, err := user.NewEmail("staff@example.com")
	require.NoError(t, err)

	t.Run("accepts expert and admin roles", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleExpert, user.RoleAdmin} {
			u, err := user.NewStaff("Staff Member", email, phone, "hashed", role)
			require.NoError(t, err)
			assert.Equal(t, role, u.Role())
			require.NotNil(t, u.Email())
			if diff := cmp.Diff(email, *u.Email(), cmpOpts...); diff != "" {
				t.Errorf("Email mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("rejects the customer role", func(t *testing.T) {
		_, err := user.NewStaff("Staff Member", email, phone, "hashed", user.RoleCustomer)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain mobile number", input: "09121234567", want: "09121234567"},
		{name: "strips formatting", input: " 0912 123-4567 ", want: "09121234567"},
		{name: "too short", input: "12345", wantErr: true},
		{name: "letters only", input: "not-a-number", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := user.NewPhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestNationalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ten digits", input: "1234567890"},
		{name: "with surrounding spaces", input: " 1234567890 "},
		{name: "nine digits", input: "123456789", wantErr: true},
		{name: "eleven digits", input: "12345678901", wantErr: true},
		{name: "non numeric", input: "abcdefghij", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewNationalID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidNationalID)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "valid credentials", email: "staff@example.com", password: "password123"},
		{name: "invalid email", email: "invalid-email", password: "password123", errIs: user.ErrInvalidEmail},
		{name: "short password", email: "staff@example.com", password: "short", errIs: user.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := user.NewCredentials(tt.email, tt.password)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, c.Email().Value())
			assert.Equal(t, tt.password, c.Password().Value())
		})
	}
}
