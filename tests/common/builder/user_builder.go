//go:build unit || e2e

package builder

import (
	"carflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Phone    string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		FullName: "Test Staff",
		Email:    "staff@example.com",
		Phone:    "09121112233",
		Role:     "admin",
		IsActive: true,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildExpertView() *queries.ExpertView {
	return &queries.ExpertView{
		ID:       u.ID,
		FullName: u.FullName,
		Phone:    u.Phone,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
