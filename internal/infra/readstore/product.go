package readstore

import (
	"context"

	"github.com/google/uuid"

	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	dbtx db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{dbtx: dbtx}
}

const findProductByIDSQL = `
SELECT id, name, price
FROM products
WHERE id = $1 AND is_active = true`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var (
		snap shared.ProductSnapshot
		pgID pgtype.UUID
	)
	err := r.dbtx.QueryRow(ctx, findProductByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &snap.Name, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	return &snap, nil
}
