//go:build unit

package inquiry_test

import (
	"testing"
	"time"

	"carflow/internal/domain/inquiry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var creationTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newBuyer(t *testing.T) inquiry.Applicant {
	t.Helper()
	buyer, err := inquiry.NewApplicant("Reza Ahmadi", "0012345678", "1990-03-21", "09121234567")
	require.NoError(t, err)
	return buyer
}

func newCash(t *testing.T) *inquiry.Inquiry {
	t.Helper()
	return inquiry.NewCashInquiry(uuid.New(), uuid.New(), newBuyer(t), nil, creationTime)
}

func newInstallment(t *testing.T, outcome inquiry.CreditCheckOutcome) *inquiry.Inquiry {
	t.Helper()
	terms, err := inquiry.NewInstallmentTerms(50_000_000, 12)
	require.NoError(t, err)
	return inquiry.NewInstallmentInquiry(uuid.New(), uuid.New(), newBuyer(t), nil, terms, outcome, nil, nil, creationTime)
}

func TestNewCashInquiry(t *testing.T) {
	inq := newCash(t)

	assert.NotEqual(t, uuid.Nil, inq.ID())
	assert.Equal(t, inquiry.KindCash, inq.Kind())
	assert.Equal(t, inquiry.StatusNew, inq.Status())
	assert.False(t, inq.IsAssigned())
	assert.Nil(t, inq.RejectReason())
	assert.Nil(t, inq.Terms())
	assert.True(t, inq.CreatedAt().Equal(creationTime))
	assert.True(t, inq.UpdatedAt().Equal(creationTime))
}

func TestNewInstallmentInquiry(t *testing.T) {
	t.Run("credit check done starts pending", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckDone)
		assert.Equal(t, inquiry.StatusPending, inq.Status())
	})

	t.Run("credit check skipped starts pending", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckSkipped)
		assert.Equal(t, inquiry.StatusPending, inq.Status())
	})

	t.Run("credit check failure starts failed", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckFailed)
		assert.Equal(t, inquiry.StatusFailed, inq.Status())
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("legal edge succeeds", func(t *testing.T) {
		inq := newCash(t)
		require.NoError(t, inq.ChangeStatus(inquiry.StatusInProgress, nil))
		assert.Equal(t, inquiry.StatusInProgress, inq.Status())
	})

	t.Run("illegal edge is rejected and status unchanged", func(t *testing.T) {
		inq := newCash(t)
		err := inq.ChangeStatus(inquiry.StatusApproved, nil)
		assert.ErrorIs(t, err, inquiry.ErrIllegalTransition)
		assert.Equal(t, inquiry.StatusNew, inq.Status())
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		inq := newCash(t)
		err := inq.ChangeStatus(inquiry.StatusRejected, nil)
		assert.ErrorIs(t, err, inquiry.ErrEmptyRejectReason)
		assert.Equal(t, inquiry.StatusNew, inq.Status())
	})

	t.Run("rejection reason is persisted verbatim", func(t *testing.T) {
		inq := newCash(t)
		reason, err := inquiry.NewRejectReason("incomplete documents")
		require.NoError(t, err)
		require.NoError(t, inq.ChangeStatus(inquiry.StatusRejected, &reason))
		assert.Equal(t, inquiry.StatusRejected, inq.Status())
		require.NotNil(t, inq.RejectReason())
		assert.Equal(t, "incomplete documents", inq.RejectReason().String())
	})

	t.Run("reason forbidden outside rejection", func(t *testing.T) {
		inq := newCash(t)
		reason, err := inquiry.NewRejectReason("not applicable")
		require.NoError(t, err)
		assert.ErrorIs(t, inq.ChangeStatus(inquiry.StatusInProgress, &reason), inquiry.ErrReasonNotAllowed)
	})

	t.Run("terminal status never changes", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckDone)
		require.NoError(t, inq.ChangeStatus(inquiry.StatusUserConfirmed, nil))
		require.NoError(t, inq.ChangeStatus(inquiry.StatusApproved, nil))

		for _, target := range []inquiry.Status{
			inquiry.StatusApproved, inquiry.StatusRejected, inquiry.StatusMoreDocs, inquiry.StatusPending,
		} {
			err := inq.ChangeStatus(target, nil)
			assert.Error(t, err, "target %s", target)
			assert.Equal(t, inquiry.StatusApproved, inq.Status())
		}
	})
}

func TestAssign(t *testing.T) {
	t.Run("assignment moves cash new to referred", func(t *testing.T) {
		inq := newCash(t)
		expertID := uuid.New()
		require.NoError(t, inq.Assign(expertID))
		require.NotNil(t, inq.AssignedExpert())
		assert.Equal(t, expertID, *inq.AssignedExpert())
		assert.Equal(t, inquiry.StatusReferred, inq.Status())
	})

	t.Run("reassignment overwrites", func(t *testing.T) {
		inq := newCash(t)
		first := uuid.New()
		second := uuid.New()
		require.NoError(t, inq.Assign(first))
		require.NoError(t, inq.Assign(second))
		assert.Equal(t, second, *inq.AssignedExpert())
	})

	t.Run("reassigning the same expert is rejected", func(t *testing.T) {
		inq := newCash(t)
		expertID := uuid.New()
		require.NoError(t, inq.Assign(expertID))
		assert.ErrorIs(t, inq.Assign(expertID), inquiry.ErrAlreadyAssigned)
	})

	t.Run("installment assignment leaves status alone", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckDone)
		require.NoError(t, inq.Assign(uuid.New()))
		assert.Equal(t, inquiry.StatusPending, inq.Status())
	})
}

func TestRecordDownPayment(t *testing.T) {
	t.Run("records amount and moves to awaiting", func(t *testing.T) {
		inq := newCash(t)
		require.NoError(t, inq.ChangeStatus(inquiry.StatusInProgress, nil))

		amount, err := inquiry.NewAmount(200_000_000)
		require.NoError(t, err)
		require.NoError(t, inq.RecordDownPayment(amount))

		assert.Equal(t, inquiry.StatusAwaitingDownPayment, inq.Status())
		require.NotNil(t, inq.DownPayment())
		assert.Equal(t, int64(200_000_000), inq.DownPayment().Value())
	})

	t.Run("rejected for installment inquiries", func(t *testing.T) {
		inq := newInstallment(t, inquiry.CreditCheckDone)
		amount, err := inquiry.NewAmount(1000)
		require.NoError(t, err)
		assert.ErrorIs(t, inq.RecordDownPayment(amount), inquiry.ErrDownPaymentKind)
	})

	t.Run("rejected before in_progress", func(t *testing.T) {
		inq := newCash(t)
		amount, err := inquiry.NewAmount(1000)
		require.NoError(t, err)
		assert.ErrorIs(t, inq.RecordDownPayment(amount), inquiry.ErrIllegalTransition)
	})
}

func TestCreditCheckSubject(t *testing.T) {
	buyer := newBuyer(t)

	t.Run("buyer national id by default", func(t *testing.T) {
		assert.Equal(t, "0012345678", inquiry.CreditCheckSubject(buyer, nil))
	})

	t.Run("issuer national id when designated", func(t *testing.T) {
		issuer, err := inquiry.NewApplicant("Sara Karimi", "9876543210", "1985-07-02", "09351112233")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", inquiry.CreditCheckSubject(buyer, &issuer))
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("reject reason trims and validates", func(t *testing.T) {
		_, err := inquiry.NewRejectReason("   ")
		assert.ErrorIs(t, err, inquiry.ErrEmptyRejectReason)

		long := make([]byte, inquiry.MaxRejectReasonLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err = inquiry.NewRejectReason(string(long))
		assert.ErrorIs(t, err, inquiry.ErrRejectReasonTooLong)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := inquiry.NewAmount(-1)
		assert.ErrorIs(t, err, inquiry.ErrNegativeAmount)
	})

	t.Run("installment terms validation", func(t *testing.T) {
		_, err := inquiry.NewInstallmentTerms(1000, 0)
		assert.ErrorIs(t, err, inquiry.ErrInvalidTerm)
		_, err = inquiry.NewInstallmentTerms(-1, 12)
		assert.ErrorIs(t, err, inquiry.ErrNegativeAmount)
	})

	t.Run("applicant validation names first missing field", func(t *testing.T) {
		_, err := inquiry.NewApplicant("", "0012345678", "1990-01-01", "09121234567")
		assert.ErrorIs(t, err, inquiry.ErrEmptyBuyerName)
		_, err = inquiry.NewApplicant("Reza", "123", "1990-01-01", "09121234567")
		assert.Error(t, err)
		_, err = inquiry.NewApplicant("Reza", "0012345678", "", "09121234567")
		assert.ErrorIs(t, err, inquiry.ErrEmptyBirthDate)
		_, err = inquiry.NewApplicant("Reza", "0012345678", "1990-01-01", "12")
		assert.Error(t, err)
	})
}
