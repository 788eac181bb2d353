//go:build unit

package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"carflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDB records issued statements and plays back canned rows, so outbox
// queries can be checked without a database.
type stubDB struct {
	sql  []string
	args [][]any
	rows [][]any
}

func (s *stubDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.sql = append(s.sql, sql)
	s.args = append(s.args, args)
	return pgconn.CommandTag{}, nil
}

func (s *stubDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.sql = append(s.sql, sql)
	s.args = append(s.args, args)
	return &stubRows{rows: s.rows}, nil
}

func (s *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.sql = append(s.sql, sql)
	s.args = append(s.args, args)
	return &stubRows{rows: s.rows}
}

type stubRows struct {
	rows [][]any
	pos  int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *uuid.UUID:
			*d = row[i].(uuid.UUID)
		case *string:
			*d = row[i].(string)
		case *[]string:
			*d = row[i].([]string)
		case *int32:
			*d = row[i].(int32)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan target %T", d)
		}
	}
	return nil
}

var _ db.DBTX = (*stubDB)(nil)

func TestClaimPending(t *testing.T) {
	jobID := uuid.New()
	runAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("claims in a single atomic update and scans jobs", func(t *testing.T) {
		stub := &stubDB{rows: [][]any{
			{jobID, "inquiry_registered", "09121234567", []string{"Reza Ahmadi"}, int32(2), runAt},
		}}
		outbox := &NotificationOutbox{db: stub}

		jobs, err := outbox.ClaimPending(context.Background(), 25)
		require.NoError(t, err)

		require.Len(t, stub.sql, 1)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(stub.sql[0]), "UPDATE notification_jobs"))
		assert.Contains(t, stub.sql[0], "FOR UPDATE SKIP LOCKED")
		assert.Equal(t, []any{int32(25)}, stub.args[0])

		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, "inquiry_registered", jobs[0].Pattern)
		assert.Equal(t, "09121234567", jobs[0].Recipient)
		assert.Equal(t, []string{"Reza Ahmadi"}, jobs[0].Params)
		assert.Equal(t, int32(2), jobs[0].Attempts)
		assert.True(t, jobs[0].RunAt.Equal(runAt))
	})

	t.Run("claim covers due queued rows and stuck sending rows", func(t *testing.T) {
		stub := &stubDB{}
		outbox := &NotificationOutbox{db: stub}

		_, err := outbox.ClaimPending(context.Background(), 25)
		require.NoError(t, err)

		require.Len(t, stub.sql, 1)
		assert.Contains(t, stub.sql[0], "status = 'queued' AND run_at <= now()")
		assert.Contains(t, stub.sql[0], "status = 'sending' AND updated_at < now() - interval '5 minutes'")
	})
}

func TestMarkFailed(t *testing.T) {
	t.Run("requeues with the retry time", func(t *testing.T) {
		stub := &stubDB{}
		outbox := &NotificationOutbox{db: stub}

		err := outbox.MarkFailed(context.Background(), uuid.New(), "gateway timeout", time.Now().Add(time.Minute), false)
		require.NoError(t, err)

		require.Len(t, stub.args, 1)
		assert.Equal(t, "queued", stub.args[0][1])
		assert.Equal(t, "gateway timeout", stub.args[0][2])
	})

	t.Run("dead jobs leave the retry loop", func(t *testing.T) {
		stub := &stubDB{}
		outbox := &NotificationOutbox{db: stub}

		err := outbox.MarkFailed(context.Background(), uuid.New(), "gateway down", time.Now(), true)
		require.NoError(t, err)

		require.Len(t, stub.args, 1)
		assert.Equal(t, "dead", stub.args[0][1])
	})
}
