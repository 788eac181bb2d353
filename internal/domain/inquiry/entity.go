package inquiry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyAssigned  = errors.New("inquiry already assigned to this expert")
	ErrDownPaymentKind  = errors.New("down payment applies to cash inquiries only")
	ErrCreditCheckKind  = errors.New("credit check applies to installment inquiries only")
	ErrMissingTerms     = errors.New("installment terms are required")
	ErrReasonNotAllowed = errors.New("rejection reason only applies to rejected status")
)

// Inquiry is a customer's purchase request, cash or installment. Status is
// mutated only through ChangeStatus, which enforces the transition table.
type Inquiry struct {
	id              uuid.UUID
	kind            Kind
	customerID      uuid.UUID
	productID       uuid.UUID
	status          Status
	assignedExpert  *uuid.UUID
	createdByExpert *uuid.UUID
	rejectReason    *RejectReason
	downPayment     *Amount
	terms           *InstallmentTerms
	buyer           Applicant
	issuer          *Applicant
	creditOutcome   *CreditCheckOutcome
	creditResponse  []byte
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCashInquiry materializes a cash purchase request in the initial status.
// now is the caller's clock reading; both timestamps start there and the
// repository persists them as given.
func NewCashInquiry(customerID, productID uuid.UUID, buyer Applicant, createdByExpert *uuid.UUID, now time.Time) *Inquiry {
	return &Inquiry{
		id:              uuid.New(),
		kind:            KindCash,
		customerID:      customerID,
		productID:       productID,
		status:          StatusNew,
		buyer:           buyer,
		createdByExpert: createdByExpert,
		createdAt:       now,
		updatedAt:       now,
	}
}

// NewInstallmentInquiry materializes a credit purchase request. The initial
// status follows the credit-check outcome; the raw response is kept for audit.
func NewInstallmentInquiry(
	customerID, productID uuid.UUID,
	buyer Applicant,
	issuer *Applicant,
	terms InstallmentTerms,
	outcome CreditCheckOutcome,
	creditResponse []byte,
	createdByExpert *uuid.UUID,
	now time.Time,
) *Inquiry {
	return &Inquiry{
		id:              uuid.New(),
		kind:            KindInstallment,
		customerID:      customerID,
		productID:       productID,
		status:          outcome.InitialStatus(),
		buyer:           buyer,
		issuer:          issuer,
		terms:           &terms,
		creditOutcome:   &outcome,
		creditResponse:  creditResponse,
		createdByExpert: createdByExpert,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructInquiry(
	id uuid.UUID,
	kind Kind,
	customerID, productID uuid.UUID,
	status Status,
	assignedExpert, createdByExpert *uuid.UUID,
	rejectReason *RejectReason,
	downPayment *Amount,
	terms *InstallmentTerms,
	buyer Applicant,
	issuer *Applicant,
	creditOutcome *CreditCheckOutcome,
	creditResponse []byte,
	createdAt, updatedAt time.Time,
) *Inquiry {
	return &Inquiry{
		id:              id,
		kind:            kind,
		customerID:      customerID,
		productID:       productID,
		status:          status,
		assignedExpert:  assignedExpert,
		createdByExpert: createdByExpert,
		rejectReason:    rejectReason,
		downPayment:     downPayment,
		terms:           terms,
		buyer:           buyer,
		issuer:          issuer,
		creditOutcome:   creditOutcome,
		creditResponse:  creditResponse,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ChangeStatus moves the inquiry along the transition table. A move to
// rejected requires a reason; any other target forbids one.
func (i *Inquiry) ChangeStatus(to Status, reason *RejectReason) error {
	if !ValidStatus(i.kind, to) {
		return ErrInvalidStatus
	}
	if !CanTransition(i.kind, i.status, to) {
		return ErrIllegalTransition
	}
	if to == StatusRejected {
		if reason == nil {
			return ErrEmptyRejectReason
		}
		i.rejectReason = reason
	} else if reason != nil {
		return ErrReasonNotAllowed
	}
	i.status = to
	return nil
}

// Assign sets the responsible expert. Reassignment overwrites; the field is
// never cleared. A cash inquiry still sitting in new moves to referred.
func (i *Inquiry) Assign(expertID uuid.UUID) error {
	if i.assignedExpert != nil && *i.assignedExpert == expertID {
		return ErrAlreadyAssigned
	}
	id := expertID
	i.assignedExpert = &id
	if i.kind == KindCash && i.status == StatusNew {
		return i.ChangeStatus(StatusReferred, nil)
	}
	return nil
}

// RecordDownPayment stores the requested amount and moves a cash inquiry to
// awaiting_downpayment.
func (i *Inquiry) RecordDownPayment(amount Amount) error {
	if i.kind != KindCash {
		return ErrDownPaymentKind
	}
	if err := i.ChangeStatus(StatusAwaitingDownPayment, nil); err != nil {
		return err
	}
	a := amount
	i.downPayment = &a
	return nil
}

func (i *Inquiry) IsAssigned() bool {
	return i.assignedExpert != nil
}

func (i *Inquiry) ID() uuid.UUID                       { return i.id }
func (i *Inquiry) Kind() Kind                          { return i.kind }
func (i *Inquiry) CustomerID() uuid.UUID               { return i.customerID }
func (i *Inquiry) ProductID() uuid.UUID                { return i.productID }
func (i *Inquiry) Status() Status                      { return i.status }
func (i *Inquiry) AssignedExpert() *uuid.UUID          { return i.assignedExpert }
func (i *Inquiry) CreatedByExpert() *uuid.UUID         { return i.createdByExpert }
func (i *Inquiry) RejectReason() *RejectReason         { return i.rejectReason }
func (i *Inquiry) DownPayment() *Amount                { return i.downPayment }
func (i *Inquiry) Terms() *InstallmentTerms            { return i.terms }
func (i *Inquiry) Buyer() Applicant                    { return i.buyer }
func (i *Inquiry) Issuer() *Applicant                  { return i.issuer }
func (i *Inquiry) CreditOutcome() *CreditCheckOutcome  { return i.creditOutcome }
func (i *Inquiry) CreditResponse() []byte              { return i.creditResponse }
func (i *Inquiry) CreatedAt() time.Time                { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time                { return i.updatedAt }

// CreditCheckSubject returns the national identifier the credit check is keyed
// on: the co-signer's when one is designated, else the buyer's.
func CreditCheckSubject(buyer Applicant, issuer *Applicant) string {
	if issuer != nil {
		return issuer.NationalID().Value()
	}
	return buyer.NationalID().Value()
}
