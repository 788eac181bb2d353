package readstore

import (
	"context"

	"github.com/google/uuid"

	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/queries"
	"carflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

const findUserByIDSQL = `
SELECT id, full_name, email, phone, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view  queries.AuthorizedUserView
		pgID  pgtype.UUID
		email pgtype.Text
	)
	err := r.dbtx.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &view.FullName, &email, &view.Phone, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.Email = email.String
	return &view, nil
}

const findUserByEmailSQL = `
SELECT id, full_name, email, phone, role, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		pgID         pgtype.UUID
		pgEmail      pgtype.Text
		passwordHash string
	)
	err := r.dbtx.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&pgID, &view.FullName, &pgEmail, &view.Phone, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.Email = pgEmail.String
	return &view, passwordHash, nil
}

const findCustomerByPhoneSQL = `
SELECT id, full_name, phone, role, is_active
FROM users
WHERE phone = $1 AND role = 'customer'`

func (r *UserReadStore) FindCustomerByPhone(ctx context.Context, phone string) (*shared.UserSnapshot, error) {
	snap, err := r.scanSnapshot(r.dbtx.QueryRow(ctx, findCustomerByPhoneSQL, phone))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by phone", err)
	}
	return snap, nil
}

const findSnapshotByIDSQL = `
SELECT id, full_name, phone, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, err := r.scanSnapshot(r.dbtx.QueryRow(ctx, findSnapshotByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return snap, nil
}

// Ascending creation order is load-bearing: the assignment cursor indexes
// into exactly this ordering.
const findExpertPoolSQL = `
SELECT id, full_name, phone
FROM users
WHERE role = 'expert' AND is_active = true
ORDER BY created_at ASC, id ASC`

func (r *UserReadStore) ExpertPool(ctx context.Context) ([]shared.ExpertSnapshot, error) {
	rows, err := r.dbtx.Query(ctx, findExpertPoolSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load expert pool", err)
	}
	defer rows.Close()

	var pool []shared.ExpertSnapshot
	for rows.Next() {
		var (
			pgID pgtype.UUID
			snap shared.ExpertSnapshot
		)
		if err := rows.Scan(&pgID, &snap.FullName, &snap.Phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expert", err)
		}
		snap.ID = uuid.UUID(pgID.Bytes)
		pool = append(pool, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expert pool", err)
	}
	return pool, nil
}

func (r *UserReadStore) FindExperts(ctx context.Context) ([]*queries.ExpertView, error) {
	pool, err := r.ExpertPool(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*queries.ExpertView, len(pool))
	for i, snap := range pool {
		views[i] = &queries.ExpertView{
			ID:       snap.ID,
			FullName: snap.FullName,
			Phone:    snap.Phone,
			IsActive: true,
		}
	}
	return views, nil
}

type pgRow interface {
	Scan(dest ...any) error
}

func (r *UserReadStore) scanSnapshot(row pgRow) (*shared.UserSnapshot, error) {
	var (
		pgID pgtype.UUID
		snap shared.UserSnapshot
	)
	if err := row.Scan(&pgID, &snap.FullName, &snap.Phone, &snap.Role, &snap.IsActive); err != nil {
		return nil, err
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	return &snap, nil
}
