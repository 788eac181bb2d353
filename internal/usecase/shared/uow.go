package shared

import (
	"context"
	"time"

	"carflow/internal/domain/inquiry"
	"carflow/internal/domain/user"
	"carflow/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Inquiries() InquiryRepository
	Users() UserRepository
	Cursors() CursorRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	InquiryByID(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
	// ExpertPool returns all active experts ordered by creation time ascending.
	// The stable order is what makes the round-robin cursor meaningful.
	ExpertPool(ctx context.Context) ([]ExpertSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	CustomerByPhone(ctx context.Context, phone string) (*UserSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

// Write-side snapshots prevent dependency on read-side query types
type ExpertSnapshot struct {
	ID       uuid.UUID
	FullName string
	Phone    string
}

type UserSnapshot struct {
	ID       uuid.UUID
	FullName string
	Phone    string
	Role     string
	IsActive bool
}

type ProductSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type InquiryRepository interface {
	Create(ctx context.Context, db db.DBTX, inq *inquiry.Inquiry) (uuid.UUID, error)
	// Update persists the mutable fields: status, assignment, rejection
	// reason, down payment.
	Update(ctx context.Context, db db.DBTX, inq *inquiry.Inquiry) error
}

type UserRepository interface {
	CreateCustomer(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}

// CursorRepository advances the per-kind round-robin cursor. Advance is a
// single atomic statement, so concurrent assignments cannot observe the same
// position.
type CursorRepository interface {
	Advance(ctx context.Context, db db.DBTX, kind inquiry.Kind, poolSize int) (int, error)
}

type NotificationRepository interface {
	EnqueueSMS(ctx context.Context, db db.DBTX, pattern, recipient string, params []string, runAt time.Time) error
}

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

func (a Actor) IsExpert() bool {
	return a.Role == user.RoleExpert
}

func (a Actor) IsCustomer() bool {
	return a.Role == user.RoleCustomer
}
