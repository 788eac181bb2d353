package commands

import (
	"context"

	"carflow/internal/domain/inquiry"
	"carflow/internal/domain/user"
	"carflow/internal/infra"
	"carflow/internal/pkg/errs"
	"carflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoExpertsAvailable = errs.New("no experts available")
	ErrNotAnExpert        = errs.New("assignee does not hold the expert role")
)

// assignNext picks the round-robin successor from the expert pool and assigns
// it to the inquiry. The cursor lives in the database and advances with a
// single atomic statement, so concurrent assignments against the same kind
// never observe the same position.
func assignNext(ctx context.Context, tx shared.Tx, inq *inquiry.Inquiry) (shared.ExpertSnapshot, error) {
	pool, err := tx.Reads().ExpertPool(ctx)
	if err != nil {
		return shared.ExpertSnapshot{}, err
	}
	if len(pool) == 0 {
		return shared.ExpertSnapshot{}, ErrNoExpertsAvailable
	}

	pos, err := tx.Cursors().Advance(ctx, tx.DB(), inq.Kind(), len(pool))
	if err != nil {
		return shared.ExpertSnapshot{}, err
	}

	expert := pool[pos]
	if err := inq.Assign(expert.ID); err != nil {
		return shared.ExpertSnapshot{}, err
	}
	return expert, nil
}

// resolveExpert validates an explicitly supplied assignee: it must be an
// active user currently holding the expert role.
func resolveExpert(ctx context.Context, reads shared.CommandReads, expertID uuid.UUID) (shared.ExpertSnapshot, error) {
	snap, err := reads.UserByID(ctx, expertID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.ExpertSnapshot{}, ErrNotAnExpert
		}
		return shared.ExpertSnapshot{}, err
	}
	if !snap.IsActive || snap.Role != user.RoleExpert.String() {
		return shared.ExpertSnapshot{}, ErrNotAnExpert
	}
	return shared.ExpertSnapshot{ID: snap.ID, FullName: snap.FullName, Phone: snap.Phone}, nil
}
