package repository

import (
	"context"
	"errors"

	"carflow/internal/domain/user"
	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

const createCustomerSQL = `
INSERT INTO users (id, full_name, email, phone, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *UserRepository) CreateCustomer(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var email pgtype.Text
	if u.Email() != nil {
		email = pgconv.StringToPgtype(u.Email().Value())
	}

	_, err := dbtx.Exec(ctx, createCustomerSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.FullName(),
		email,
		u.Phone().Value(),
		u.PasswordHash(),
		string(u.Role()),
		u.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err, classifyPgErr(err))
	}
	return u.ID(), nil
}

const updateLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateLastLoginSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// classifyPgErr maps Postgres error codes onto repository error kinds so the
// usecase layer can branch without importing pgx.
func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case "23505":
		return infra.KindDuplicateKey
	case "23503":
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
