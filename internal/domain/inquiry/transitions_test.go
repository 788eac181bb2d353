//go:build unit

package inquiry_test

import (
	"testing"

	"carflow/internal/domain/inquiry"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	type edge struct {
		name string
		kind inquiry.Kind
		from inquiry.Status
		to   inquiry.Status
		ok   bool
	}

	cases := []edge{
		// Cash happy path
		{"cash new to referred", inquiry.KindCash, inquiry.StatusNew, inquiry.StatusReferred, true},
		{"cash new to in_progress", inquiry.KindCash, inquiry.StatusNew, inquiry.StatusInProgress, true},
		{"cash referred to in_progress", inquiry.KindCash, inquiry.StatusReferred, inquiry.StatusInProgress, true},
		{"cash in_progress to awaiting_downpayment", inquiry.KindCash, inquiry.StatusInProgress, inquiry.StatusAwaitingDownPayment, true},
		{"cash awaiting to received", inquiry.KindCash, inquiry.StatusAwaitingDownPayment, inquiry.StatusDownPaymentReceived, true},
		{"cash received to meeting", inquiry.KindCash, inquiry.StatusDownPaymentReceived, inquiry.StatusMeetingScheduled, true},
		{"cash meeting to approved", inquiry.KindCash, inquiry.StatusMeetingScheduled, inquiry.StatusApproved, true},

		// Cash rejection reachable from every non-terminal state
		{"cash new to rejected", inquiry.KindCash, inquiry.StatusNew, inquiry.StatusRejected, true},
		{"cash referred to rejected", inquiry.KindCash, inquiry.StatusReferred, inquiry.StatusRejected, true},
		{"cash in_progress to rejected", inquiry.KindCash, inquiry.StatusInProgress, inquiry.StatusRejected, true},
		{"cash awaiting to rejected", inquiry.KindCash, inquiry.StatusAwaitingDownPayment, inquiry.StatusRejected, true},
		{"cash received to rejected", inquiry.KindCash, inquiry.StatusDownPaymentReceived, inquiry.StatusRejected, true},
		{"cash meeting to rejected", inquiry.KindCash, inquiry.StatusMeetingScheduled, inquiry.StatusRejected, true},

		// Cash illegal edges
		{"cash cannot skip to approved", inquiry.KindCash, inquiry.StatusNew, inquiry.StatusApproved, false},
		{"cash cannot skip downpayment", inquiry.KindCash, inquiry.StatusInProgress, inquiry.StatusMeetingScheduled, false},
		{"cash cannot go backwards", inquiry.KindCash, inquiry.StatusMeetingScheduled, inquiry.StatusInProgress, false},
		{"cash approved is frozen", inquiry.KindCash, inquiry.StatusApproved, inquiry.StatusRejected, false},
		{"cash rejected is frozen", inquiry.KindCash, inquiry.StatusRejected, inquiry.StatusApproved, false},
		{"cash rejected stays rejected", inquiry.KindCash, inquiry.StatusRejected, inquiry.StatusRejected, false},
		{"cash installment status invalid", inquiry.KindCash, inquiry.StatusNew, inquiry.StatusPending, false},

		// Installment happy path
		{"installment pending to failed", inquiry.KindInstallment, inquiry.StatusPending, inquiry.StatusFailed, true},
		{"installment failed back to pending", inquiry.KindInstallment, inquiry.StatusFailed, inquiry.StatusPending, true},
		{"installment pending to user_confirmed", inquiry.KindInstallment, inquiry.StatusPending, inquiry.StatusUserConfirmed, true},
		{"installment confirmed to approved", inquiry.KindInstallment, inquiry.StatusUserConfirmed, inquiry.StatusApproved, true},
		{"installment confirmed to rejected", inquiry.KindInstallment, inquiry.StatusUserConfirmed, inquiry.StatusRejected, true},
		{"installment confirmed to more_docs", inquiry.KindInstallment, inquiry.StatusUserConfirmed, inquiry.StatusMoreDocs, true},
		{"installment more_docs to approved", inquiry.KindInstallment, inquiry.StatusMoreDocs, inquiry.StatusApproved, true},
		{"installment more_docs to rejected", inquiry.KindInstallment, inquiry.StatusMoreDocs, inquiry.StatusRejected, true},

		// Installment illegal edges
		{"installment pending cannot approve", inquiry.KindInstallment, inquiry.StatusPending, inquiry.StatusApproved, false},
		{"installment failed cannot approve", inquiry.KindInstallment, inquiry.StatusFailed, inquiry.StatusApproved, false},
		{"installment rejected cannot recover", inquiry.KindInstallment, inquiry.StatusRejected, inquiry.StatusApproved, false},
		{"installment approved is frozen", inquiry.KindInstallment, inquiry.StatusApproved, inquiry.StatusMoreDocs, false},
		{"installment cash status invalid", inquiry.KindInstallment, inquiry.StatusPending, inquiry.StatusInProgress, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, inquiry.CanTransition(tc.kind, tc.from, tc.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, inquiry.ValidStatus(inquiry.KindCash, inquiry.StatusNew))
	assert.True(t, inquiry.ValidStatus(inquiry.KindCash, inquiry.StatusApproved))
	assert.False(t, inquiry.ValidStatus(inquiry.KindCash, inquiry.StatusPending))
	assert.True(t, inquiry.ValidStatus(inquiry.KindInstallment, inquiry.StatusMoreDocs))
	assert.False(t, inquiry.ValidStatus(inquiry.KindInstallment, inquiry.StatusMeetingScheduled))
	assert.False(t, inquiry.ValidStatus(inquiry.KindInstallment, inquiry.Status("bogus")))
}

func TestCreditCheckOutcomeInitialStatus(t *testing.T) {
	assert.Equal(t, inquiry.StatusPending, inquiry.CreditCheckDone.InitialStatus())
	assert.Equal(t, inquiry.StatusPending, inquiry.CreditCheckSkipped.InitialStatus())
	assert.Equal(t, inquiry.StatusFailed, inquiry.CreditCheckFailed.InitialStatus())
}
