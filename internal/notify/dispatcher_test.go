//go:build unit

package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"carflow/internal/notify"
	"carflow/internal/pkg/clock"
	"carflow/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutbox struct {
	pending  []*notify.Job
	sent     []uuid.UUID
	failed   []uuid.UUID
	dead     []uuid.UUID
	retryAts []time.Time
}

func (f *fakeOutbox) ClaimPending(_ context.Context, limit int32) ([]*notify.Job, error) {
	if int32(len(f.pending)) > limit {
		batch := f.pending[:limit]
		f.pending = f.pending[limit:]
		return batch, nil
	}
	batch := f.pending
	f.pending = nil
	return batch, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, id uuid.UUID) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, id uuid.UUID, _ string, retryAt time.Time, dead bool) error {
	f.failed = append(f.failed, id)
	f.retryAts = append(f.retryAts, retryAt)
	if dead {
		f.dead = append(f.dead, id)
	}
	return nil
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(_ context.Context, pattern, _ string, _ []string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, pattern)
	return nil
}

var dispatchNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testDispatcher(outbox notify.Outbox, sender notify.Sender) *notify.Dispatcher {
	cfg := config.NewTestConfig().Notify
	return notify.NewDispatcher(outbox, sender, cfg, clock.NewMockClock(dispatchNow), slog.Default())
}

func job(pattern string, attempts int32) *notify.Job {
	return &notify.Job{
		ID:        uuid.New(),
		Pattern:   pattern,
		Recipient: "09121234567",
		Params:    []string{"Reza Ahmadi"},
		Attempts:  attempts,
	}
}

func TestDispatchOnce(t *testing.T) {
	t.Run("delivers and marks sent", func(t *testing.T) {
		j := job(notify.PatternInquiryRegistered, 0)
		outbox := &fakeOutbox{pending: []*notify.Job{j}}
		sender := &fakeSender{}

		require.NoError(t, testDispatcher(outbox, sender).DispatchOnce(context.Background()))

		assert.Equal(t, []string{notify.PatternInquiryRegistered}, sender.sent)
		assert.Equal(t, []uuid.UUID{j.ID}, outbox.sent)
		assert.Empty(t, outbox.failed)
	})

	t.Run("failure marks job for retry", func(t *testing.T) {
		j := job(notify.PatternExpertAssigned, 0)
		outbox := &fakeOutbox{pending: []*notify.Job{j}}
		sender := &fakeSender{err: errors.New("gateway timeout")}

		require.NoError(t, testDispatcher(outbox, sender).DispatchOnce(context.Background()))

		assert.Empty(t, outbox.sent)
		assert.Equal(t, []uuid.UUID{j.ID}, outbox.failed)
		assert.Empty(t, outbox.dead)
	})

	t.Run("retry backoff grows with the attempt count", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("gateway timeout")}

		for _, attempts := range []int32{0, 1, 2} {
			j := job(notify.PatternExpertAssigned, attempts)
			outbox := &fakeOutbox{pending: []*notify.Job{j}}

			require.NoError(t, testDispatcher(outbox, sender).DispatchOnce(context.Background()))

			require.Len(t, outbox.retryAts, 1)
			want := dispatchNow.Add(time.Duration(attempts+1) * time.Minute)
			assert.True(t, outbox.retryAts[0].Equal(want), "attempt %d retries at %v, want %v", attempts, outbox.retryAts[0], want)
		}
	})

	t.Run("exhausted attempts are marked dead", func(t *testing.T) {
		cfg := config.NewTestConfig().Notify
		j := job(notify.PatternInquiryApproved, cfg.MaxAttempts-1)
		outbox := &fakeOutbox{pending: []*notify.Job{j}}
		sender := &fakeSender{err: errors.New("gateway down")}

		require.NoError(t, testDispatcher(outbox, sender).DispatchOnce(context.Background()))

		assert.Equal(t, []uuid.UUID{j.ID}, outbox.dead)
	})

	t.Run("respects batch size", func(t *testing.T) {
		outbox := &fakeOutbox{}
		for range 50 {
			outbox.pending = append(outbox.pending, job(notify.PatternInquiryRegistered, 0))
		}
		sender := &fakeSender{}

		require.NoError(t, testDispatcher(outbox, sender).DispatchOnce(context.Background()))

		cfg := config.NewTestConfig().Notify
		assert.Len(t, sender.sent, int(cfg.BatchSize))
		assert.Len(t, outbox.pending, 50-int(cfg.BatchSize))
	})
}
