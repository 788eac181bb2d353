package inquiry

type Kind string

const (
	KindCash        Kind = "cash"
	KindInstallment Kind = "installment"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCash, KindInstallment:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

type Status string

// Cash inquiry lifecycle.
const (
	StatusNew                 Status = "new"
	StatusReferred            Status = "referred"
	StatusInProgress          Status = "in_progress"
	StatusAwaitingDownPayment Status = "awaiting_downpayment"
	StatusDownPaymentReceived Status = "downpayment_received"
	StatusMeetingScheduled    Status = "meeting_scheduled"
)

// Installment inquiry lifecycle.
const (
	StatusPending       Status = "pending"
	StatusFailed        Status = "failed"
	StatusUserConfirmed Status = "user_confirmed"
	StatusMoreDocs      Status = "more_docs"
)

// Shared terminal states.
const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CreditCheckOutcome is the tri-state result of the external scoring call.
type CreditCheckOutcome string

const (
	CreditCheckDone    CreditCheckOutcome = "DONE"
	CreditCheckFailed  CreditCheckOutcome = "FAILED"
	CreditCheckSkipped CreditCheckOutcome = "SKIPPED"
)

// InitialStatus maps the credit-check outcome to the status an installment
// inquiry is created with. A failed or unreachable check still creates the
// inquiry, marked failed.
func (o CreditCheckOutcome) InitialStatus() Status {
	if o == CreditCheckFailed {
		return StatusFailed
	}
	return StatusPending
}
