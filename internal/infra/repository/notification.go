package repository

import (
	"context"
	"time"

	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/notify"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

const enqueueSMSSQL = `
INSERT INTO notification_jobs (id, pattern, recipient, params, status, attempts, run_at)
VALUES ($1, $2, $3, $4, 'queued', 0, $5)`

// EnqueueSMS writes the job inside the caller's transaction, so a rolled-back
// status change never leaks an SMS.
func (r *NotificationRepository) EnqueueSMS(ctx context.Context, dbtx db.DBTX, pattern, recipient string, params []string, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, enqueueSMSSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		pattern,
		recipient,
		params,
		pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue sms job", err)
	}
	return nil
}

// NotificationOutbox is the dispatcher's view of the same table. It runs on
// the pool, outside command transactions.
type NotificationOutbox struct {
	db db.DBTX
}

func NewNotificationOutbox(pool *pgxpool.Pool) notify.Outbox {
	return &NotificationOutbox{db: pool}
}

// SKIP LOCKED keeps concurrent dispatcher passes from claiming the same job;
// the single UPDATE makes the claim atomic without holding a transaction open
// across the send. Jobs stuck in 'sending' past the visibility timeout are
// reclaimed, so a dispatcher crash between claim and MarkSent/MarkFailed
// never strands them (at-least-once, possibly duplicate).
const claimVisibilityTimeout = "5 minutes"

const claimPendingSQL = `
UPDATE notification_jobs
SET status = 'sending', updated_at = now()
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE (status = 'queued' AND run_at <= now())
	   OR (status = 'sending' AND updated_at < now() - interval '` + claimVisibilityTimeout + `')
	ORDER BY run_at
	LIMIT $1
	FOR UPDATE SKIP LOCKED
)
RETURNING id, pattern, recipient, params, attempts, run_at`

func (o *NotificationOutbox) ClaimPending(ctx context.Context, limit int32) ([]*notify.Job, error) {
	rows, err := o.db.Query(ctx, claimPendingSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending sms jobs", err)
	}
	defer rows.Close()

	var jobs []*notify.Job
	for rows.Next() {
		var job notify.Job
		if err := rows.Scan(&job.ID, &job.Pattern, &job.Recipient, &job.Params, &job.Attempts, &job.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sms job", err)
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sms jobs", err)
	}
	return jobs, nil
}

const markSentSQL = `
UPDATE notification_jobs
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1`

func (o *NotificationOutbox) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := o.db.Exec(ctx, markSentSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to mark sms job sent", err)
	}
	return nil
}

const markFailedSQL = `
UPDATE notification_jobs
SET status = $2, attempts = attempts + 1, last_error = $3, run_at = $4, updated_at = now()
WHERE id = $1`

func (o *NotificationOutbox) MarkFailed(ctx context.Context, id uuid.UUID, sendErr string, retryAt time.Time, dead bool) error {
	status := "queued"
	if dead {
		status = "dead"
	}
	_, err := o.db.Exec(ctx, markFailedSQL,
		pgconv.UUIDToPgtype(id),
		status,
		sendErr,
		pgconv.TimeToPgtype(retryAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark sms job failed", err)
	}
	return nil
}
