package repository

import (
	"context"

	"carflow/internal/domain/inquiry"
	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/usecase/shared"
)

type CursorRepository struct{}

func NewCursorRepository() shared.CursorRepository {
	return &CursorRepository{}
}

// A single upsert keeps the read-modify-write atomic: two transactions
// advancing the same cursor serialize on the row lock and observe distinct
// positions. A fresh cursor starts at -1, so the first advance lands on 0.
const advanceCursorSQL = `
INSERT INTO assignment_cursors (kind, position)
VALUES ($1, 0)
ON CONFLICT (kind)
DO UPDATE SET position = (assignment_cursors.position + 1) % $2
RETURNING position`

func (r *CursorRepository) Advance(ctx context.Context, dbtx db.DBTX, kind inquiry.Kind, poolSize int) (int, error) {
	var position int
	err := dbtx.QueryRow(ctx, advanceCursorSQL, string(kind), int32(poolSize)).Scan(&position)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance assignment cursor", err)
	}
	// The stored position may exceed the current pool if experts were
	// deactivated since the last advance.
	return position % poolSize, nil
}
