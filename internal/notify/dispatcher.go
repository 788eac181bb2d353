package notify

import (
	"context"
	"log/slog"
	"time"

	"carflow/internal/pkg/clock"
	"carflow/internal/pkg/config"

	"github.com/google/uuid"
)

// Job is one queued SMS, claimed from the outbox table.
type Job struct {
	ID        uuid.UUID
	Pattern   string
	Recipient string
	Params    []string
	Attempts  int32
	RunAt     time.Time
}

// Outbox is the persistence side of the dispatcher. ClaimPending must hand
// each due job to exactly one dispatcher pass (SELECT ... FOR UPDATE SKIP
// LOCKED in the Postgres implementation).
type Outbox interface {
	ClaimPending(ctx context.Context, limit int32) ([]*Job, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, sendErr string, retryAt time.Time, dead bool) error
}

// Sender delivers one pattern-based SMS.
type Sender interface {
	Send(ctx context.Context, pattern, recipient string, params []string) error
}

// Dispatcher drains the notification outbox. Delivery is at-least-once: a job
// is marked sent only after the gateway call returns, and failures are
// retried with linear backoff until MaxAttempts.
type Dispatcher struct {
	outbox Outbox
	sender Sender
	cfg    config.NotifyConfig
	clock  clock.Clock
	logger *slog.Logger
}

func NewDispatcher(outbox Outbox, sender Sender, cfg config.NotifyConfig, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		outbox: outbox,
		sender: sender,
		cfg:    cfg,
		clock:  clk,
		logger: logger,
	}
}

// Run polls until the context is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DispatchOnce(ctx); err != nil {
				d.logger.Error("notification dispatch pass failed", "error", err)
			}
		}
	}
}

// DispatchOnce claims one batch of due jobs and delivers them.
func (d *Dispatcher) DispatchOnce(ctx context.Context) error {
	jobs, err := d.outbox.ClaimPending(ctx, d.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		d.deliver(ctx, job)
	}
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, job *Job) {
	if err := d.sender.Send(ctx, job.Pattern, job.Recipient, job.Params); err != nil {
		attempts := job.Attempts + 1
		dead := attempts >= d.cfg.MaxAttempts
		retryAt := d.clock.Now().Add(time.Duration(attempts) * time.Minute)

		d.logger.Warn("sms delivery failed",
			"job_id", job.ID,
			"pattern", job.Pattern,
			"attempts", attempts,
			"dead", dead,
			"error", err)

		if markErr := d.outbox.MarkFailed(ctx, job.ID, err.Error(), retryAt, dead); markErr != nil {
			d.logger.Error("failed to mark notification job failed", "job_id", job.ID, "error", markErr)
		}
		return
	}

	if err := d.outbox.MarkSent(ctx, job.ID); err != nil {
		// The SMS went out but the status write failed; the job will be
		// redelivered. At-least-once, not exactly-once.
		d.logger.Error("failed to mark notification job sent", "job_id", job.ID, "error", err)
	}
}
