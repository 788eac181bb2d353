package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"carflow/internal/domain/inquiry"
	"carflow/internal/domain/user"
	"carflow/internal/infra"
	"carflow/internal/notify"
	"carflow/internal/pkg/clock"
	"carflow/internal/pkg/errs"
	"carflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound   = errs.New("inquiry not found")
	ErrProductNotFound   = errs.New("product not found")
	ErrNotAuthorized     = errs.New("actor not authorized for this operation")
	ErrInvalidTransition = errs.New("illegal status transition")
	ErrDomainValidation  = errs.New("domain validation error")
)

// CreditChecker is the external credit scoring boundary. Implementations
// never fail the creation flow: an unreachable service maps to the FAILED
// outcome with the transport error recorded separately.
type CreditChecker interface {
	Check(ctx context.Context, nationalID string) (inquiry.CreditCheckOutcome, []byte, error)
}

type ApplicantInput struct {
	FullName   string
	NationalID string
	BirthDate  string
	Phone      string
}

type CreateCashInquiryInput struct {
	ProductID uuid.UUID
	Buyer     ApplicantInput
	// ExpertID is an administrator's explicit assignee; nil means round-robin
	// for admins and self-assignment for experts.
	ExpertID *uuid.UUID
}

type CreateInstallmentInquiryInput struct {
	ProductID   uuid.UUID
	Buyer       ApplicantInput
	Issuer      *ApplicantInput
	DownPayment int64
	TermMonths  int32
	ExpertID    *uuid.UUID
}

type SetStatusInput struct {
	Status       string
	RejectReason *string
	// ExpertID optionally overrides round-robin when an approval triggers
	// auto-assignment. Admin only.
	ExpertID *uuid.UUID
}

type CreateInquiryResult struct {
	InquiryID  uuid.UUID
	CustomerID uuid.UUID
	Status     inquiry.Status
}

type InquiryCommands interface {
	CreateCash(ctx context.Context, actor shared.Actor, in CreateCashInquiryInput) (*CreateInquiryResult, error)
	CreateInstallment(ctx context.Context, actor shared.Actor, in CreateInstallmentInquiryInput) (*CreateInquiryResult, error)
	SetStatus(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, in SetStatusInput) error
	AssignExpert(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, expertID *uuid.UUID) (uuid.UUID, error)
	SetDownPayment(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, amount int64) error
}

type inquiryCommandsImpl struct {
	uow         shared.UnitOfWork
	creditCheck CreditChecker
	clock       clock.Clock
}

func NewInquiryCommands(uow shared.UnitOfWork, creditCheck CreditChecker, clk clock.Clock) InquiryCommands {
	return &inquiryCommandsImpl{
		uow:         uow,
		creditCheck: creditCheck,
		clock:       clk,
	}
}

func (uc *inquiryCommandsImpl) CreateCash(ctx context.Context, actor shared.Actor, in CreateCashInquiryInput) (*CreateInquiryResult, error) {
	buyer, err := newApplicant(in.Buyer)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result CreateInquiryResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, derr := uc.requireProduct(ctx, tx, in.ProductID)
		if derr != nil {
			return derr
		}

		customerID, derr := uc.resolveCustomer(ctx, tx, buyer)
		if derr != nil {
			return derr
		}

		inq := inquiry.NewCashInquiry(customerID, in.ProductID, buyer, createdByExpert(actor), uc.clock.Now())

		assigned, derr := uc.applyCreationAssignment(ctx, tx, actor, inq, in.ExpertID)
		if derr != nil {
			return derr
		}

		if _, derr = tx.Inquiries().Create(ctx, tx.DB(), inq); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = tx.Notifications().EnqueueSMS(ctx, tx.DB(),
			notify.PatternInquiryRegistered, buyer.Phone().Value(),
			[]string{buyer.FullName(), product.Name}, now); derr != nil {
			return derr
		}
		if assigned != nil {
			if derr = uc.notifyExpertAssigned(ctx, tx, *assigned, buyer, product.Name); derr != nil {
				return derr
			}
		}

		result = CreateInquiryResult{InquiryID: inq.ID(), CustomerID: customerID, Status: inq.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *inquiryCommandsImpl) CreateInstallment(ctx context.Context, actor shared.Actor, in CreateInstallmentInquiryInput) (*CreateInquiryResult, error) {
	buyer, err := newApplicant(in.Buyer)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var issuer *inquiry.Applicant
	if in.Issuer != nil {
		applicant, derr := newApplicant(*in.Issuer)
		if derr != nil {
			return nil, errs.Mark(derr, ErrDomainValidation)
		}
		issuer = &applicant
	}

	terms, err := inquiry.NewInstallmentTerms(in.DownPayment, in.TermMonths)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Collaborator call happens outside the transaction. A transport failure
	// still creates the inquiry, marked failed.
	outcome, rawResponse, err := uc.creditCheck.Check(ctx, inquiry.CreditCheckSubject(buyer, issuer))
	if err != nil {
		slog.Warn("credit check unreachable, creating inquiry as failed", "error", err.Error())
		outcome = inquiry.CreditCheckFailed
	}

	var result CreateInquiryResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		product, derr := uc.requireProduct(ctx, tx, in.ProductID)
		if derr != nil {
			return derr
		}

		customerID, derr := uc.resolveCustomer(ctx, tx, buyer)
		if derr != nil {
			return derr
		}

		inq := inquiry.NewInstallmentInquiry(customerID, in.ProductID, buyer, issuer, terms, outcome, rawResponse, createdByExpert(actor), uc.clock.Now())

		assigned, derr := uc.applyCreationAssignment(ctx, tx, actor, inq, in.ExpertID)
		if derr != nil {
			return derr
		}

		if _, derr = tx.Inquiries().Create(ctx, tx.DB(), inq); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		pattern := notify.PatternInquiryRegistered
		params := []string{buyer.FullName(), product.Name}
		if inq.Status() == inquiry.StatusFailed {
			pattern = notify.PatternCreditCheckFailed
			params = []string{buyer.FullName()}
		}
		if derr = tx.Notifications().EnqueueSMS(ctx, tx.DB(), pattern, buyer.Phone().Value(), params, now); derr != nil {
			return derr
		}
		if assigned != nil {
			if derr = uc.notifyExpertAssigned(ctx, tx, *assigned, buyer, product.Name); derr != nil {
				return derr
			}
		}

		result = CreateInquiryResult{InquiryID: inq.ID(), CustomerID: customerID, Status: inq.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *inquiryCommandsImpl) SetStatus(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, in SetStatusInput) error {
	target := inquiry.Status(in.Status)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inq, err := uc.requireInquiry(ctx, tx, inquiryID)
		if err != nil {
			return err
		}

		if err := authorizeTransition(actor, inq, target); err != nil {
			return err
		}

		var reason *inquiry.RejectReason
		if target == inquiry.StatusRejected {
			if in.RejectReason == nil {
				return errs.Mark(inquiry.ErrEmptyRejectReason, ErrDomainValidation)
			}
			r, rerr := inquiry.NewRejectReason(*in.RejectReason)
			if rerr != nil {
				return errs.Mark(rerr, ErrDomainValidation)
			}
			reason = &r
		}

		if err := inq.ChangeStatus(target, reason); err != nil {
			return markTransitionErr(err)
		}

		// An installment approval always implies an assigned expert: honor an
		// admin's explicit choice, otherwise fall back to round-robin.
		var assigned *shared.ExpertSnapshot
		if target == inquiry.StatusApproved && inq.Kind() == inquiry.KindInstallment && !inq.IsAssigned() {
			expert, aerr := uc.chooseExpert(ctx, tx, actor, inq, in.ExpertID)
			if aerr != nil {
				return aerr
			}
			assigned = &expert
		}

		if err := tx.Inquiries().Update(ctx, tx.DB(), inq); err != nil {
			return err
		}

		if err := uc.notifyStatusChanged(ctx, tx, inq, target, reason); err != nil {
			return err
		}
		if assigned != nil {
			product, perr := tx.Reads().ProductByID(ctx, inq.ProductID())
			if perr != nil {
				return perr
			}
			if err := uc.notifyExpertAssigned(ctx, tx, *assigned, inq.Buyer(), product.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *inquiryCommandsImpl) AssignExpert(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, expertID *uuid.UUID) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, ErrNotAuthorized
	}

	var assignedID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inq, err := uc.requireInquiry(ctx, tx, inquiryID)
		if err != nil {
			return err
		}

		expert, err := uc.chooseExpert(ctx, tx, actor, inq, expertID)
		if err != nil {
			return err
		}

		if err := tx.Inquiries().Update(ctx, tx.DB(), inq); err != nil {
			return err
		}

		product, err := tx.Reads().ProductByID(ctx, inq.ProductID())
		if err != nil {
			return err
		}
		if err := uc.notifyExpertAssigned(ctx, tx, expert, inq.Buyer(), product.Name); err != nil {
			return err
		}

		assignedID = expert.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return assignedID, nil
}

func (uc *inquiryCommandsImpl) SetDownPayment(ctx context.Context, actor shared.Actor, inquiryID uuid.UUID, amount int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inq, err := uc.requireInquiry(ctx, tx, inquiryID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && !isAssignedExpert(actor, inq) {
			return ErrNotAuthorized
		}

		a, err := inquiry.NewAmount(amount)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := inq.RecordDownPayment(a); err != nil {
			return markTransitionErr(err)
		}

		if err := tx.Inquiries().Update(ctx, tx.DB(), inq); err != nil {
			return err
		}

		return tx.Notifications().EnqueueSMS(ctx, tx.DB(),
			notify.PatternDownPaymentRequest, inq.Buyer().Phone().Value(),
			[]string{inq.Buyer().FullName(), formatAmount(amount)}, uc.clock.Now())
	})
}

// chooseExpert applies the manual-or-round-robin rule. Explicit choice is an
// administrator privilege; everyone else gets the cursor.
func (uc *inquiryCommandsImpl) chooseExpert(ctx context.Context, tx shared.Tx, actor shared.Actor, inq *inquiry.Inquiry, expertID *uuid.UUID) (shared.ExpertSnapshot, error) {
	if expertID != nil && actor.IsAdmin() {
		expert, err := resolveExpert(ctx, tx.Reads(), *expertID)
		if err != nil {
			return shared.ExpertSnapshot{}, err
		}
		if err := inq.Assign(expert.ID); err != nil {
			return shared.ExpertSnapshot{}, markTransitionErr(err)
		}
		return expert, nil
	}
	return assignNext(ctx, tx, inq)
}

// applyCreationAssignment implements the creation-time rule: experts are
// auto-assigned to their own submissions, administrators follow
// manual-or-round-robin, customer submissions stay unassigned.
func (uc *inquiryCommandsImpl) applyCreationAssignment(ctx context.Context, tx shared.Tx, actor shared.Actor, inq *inquiry.Inquiry, expertID *uuid.UUID) (*shared.ExpertSnapshot, error) {
	switch {
	case actor.IsExpert():
		self, err := tx.Reads().UserByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if err := inq.Assign(actor.ID); err != nil {
			return nil, markTransitionErr(err)
		}
		return &shared.ExpertSnapshot{ID: self.ID, FullName: self.FullName, Phone: self.Phone}, nil

	case actor.IsAdmin():
		expert, err := uc.chooseExpert(ctx, tx, actor, inq, expertID)
		if err != nil {
			return nil, err
		}
		return &expert, nil

	default:
		return nil, nil
	}
}

// resolveCustomer reuses an existing account keyed by the buyer's phone
// number, creating one on first contact. Two submissions with the same phone
// share a customer id.
func (uc *inquiryCommandsImpl) resolveCustomer(ctx context.Context, tx shared.Tx, buyer inquiry.Applicant) (uuid.UUID, error) {
	existing, err := tx.Reads().CustomerByPhone(ctx, buyer.Phone().Value())
	if err == nil {
		return existing.ID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	customer, err := newCustomer(buyer)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	return tx.Users().CreateCustomer(ctx, tx.DB(), customer)
}

func (uc *inquiryCommandsImpl) requireInquiry(ctx context.Context, tx shared.Tx, id uuid.UUID) (*inquiry.Inquiry, error) {
	inq, err := tx.Reads().InquiryByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return inq, nil
}

func (uc *inquiryCommandsImpl) requireProduct(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ProductSnapshot, error) {
	product, err := tx.Reads().ProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (uc *inquiryCommandsImpl) notifyExpertAssigned(ctx context.Context, tx shared.Tx, expert shared.ExpertSnapshot, buyer inquiry.Applicant, productName string) error {
	return tx.Notifications().EnqueueSMS(ctx, tx.DB(),
		notify.PatternExpertAssigned, expert.Phone,
		[]string{buyer.FullName(), buyer.Phone().Value(), productName}, uc.clock.Now())
}

func (uc *inquiryCommandsImpl) notifyStatusChanged(ctx context.Context, tx shared.Tx, inq *inquiry.Inquiry, target inquiry.Status, reason *inquiry.RejectReason) error {
	buyer := inq.Buyer()

	var pattern string
	var params []string
	switch target {
	case inquiry.StatusApproved:
		product, err := tx.Reads().ProductByID(ctx, inq.ProductID())
		if err != nil {
			return err
		}
		pattern = notify.PatternInquiryApproved
		params = []string{buyer.FullName(), product.Name}
	case inquiry.StatusRejected:
		pattern = notify.PatternInquiryRejected
		params = []string{buyer.FullName(), reason.String()}
	case inquiry.StatusUserConfirmed:
		product, err := tx.Reads().ProductByID(ctx, inq.ProductID())
		if err != nil {
			return err
		}
		pattern = notify.PatternUserConfirmed
		params = []string{buyer.FullName(), product.Name}
	case inquiry.StatusMoreDocs:
		pattern = notify.PatternMoreDocsRequested
		params = []string{buyer.FullName()}
	case inquiry.StatusMeetingScheduled:
		product, err := tx.Reads().ProductByID(ctx, inq.ProductID())
		if err != nil {
			return err
		}
		pattern = notify.PatternMeetingScheduled
		params = []string{buyer.FullName(), product.Name}
	case inquiry.StatusDownPaymentReceived:
		pattern = notify.PatternDownPaymentReceived
		params = []string{buyer.FullName()}
	default:
		// No SMS pattern configured for this transition.
		return nil
	}

	return tx.Notifications().EnqueueSMS(ctx, tx.DB(), pattern, buyer.Phone().Value(), params, uc.clock.Now())
}

// authorizeTransition: administrators may perform any legal transition, the
// assigned expert may move their own inquiries, and the owning customer may
// only accept the offer (pending -> user_confirmed).
func authorizeTransition(actor shared.Actor, inq *inquiry.Inquiry, target inquiry.Status) error {
	switch {
	case actor.IsAdmin():
		return nil
	case isAssignedExpert(actor, inq):
		return nil
	case actor.IsCustomer() && actor.ID == inq.CustomerID() && target == inquiry.StatusUserConfirmed:
		return nil
	default:
		return ErrNotAuthorized
	}
}

func isAssignedExpert(actor shared.Actor, inq *inquiry.Inquiry) bool {
	return actor.IsExpert() && inq.AssignedExpert() != nil && *inq.AssignedExpert() == actor.ID
}

func createdByExpert(actor shared.Actor) *uuid.UUID {
	if actor.IsExpert() {
		id := actor.ID
		return &id
	}
	return nil
}

func markTransitionErr(err error) error {
	switch {
	case errors.Is(err, inquiry.ErrIllegalTransition), errors.Is(err, inquiry.ErrInvalidStatus):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func newApplicant(in ApplicantInput) (inquiry.Applicant, error) {
	return inquiry.NewApplicant(in.FullName, in.NationalID, in.BirthDate, in.Phone)
}

func newCustomer(buyer inquiry.Applicant) (*user.User, error) {
	return user.NewCustomer(buyer.FullName(), buyer.Phone())
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}
