package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User entity covers every actor: customers created on inquiry submission,
// experts of the assignment pool, and administrators.
type User struct {
	id           uuid.UUID
	fullName     string
	email        *Email
	phone        Phone
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCustomer(fullName string, phone Phone) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	return &User{
		id:       uuid.New(),
		fullName: fullName,
		phone:    phone,
		role:     RoleCustomer,
		isActive: true,
	}, nil
}

func NewStaff(fullName string, email Email, phone Phone, passwordHash string, role Role) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}
	if role != RoleExpert && role != RoleAdmin {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		email:        &email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}, nil
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) FullName() string      { return u.fullName }
func (u *User) Email() *Email         { return u.email }
func (u *User) Phone() Phone          { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
