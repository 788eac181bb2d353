package repository

import (
	"context"

	"carflow/internal/domain/inquiry"
	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InquiryRepository struct{}

func NewInquiryRepository() shared.InquiryRepository {
	return &InquiryRepository{}
}

const createInquirySQL = `
INSERT INTO inquiries (
	id, kind, customer_id, product_id, status,
	assigned_expert_id, created_by_expert_id,
	reject_reason, down_payment, terms_down_payment, term_months,
	buyer_full_name, buyer_national_id, buyer_birth_date, buyer_phone,
	issuer_full_name, issuer_national_id, issuer_birth_date, issuer_phone,
	credit_outcome, credit_response,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7,
	$8, $9, $10, $11,
	$12, $13, $14, $15,
	$16, $17, $18, $19,
	$20, $21,
	$22, $23
)`

func (r *InquiryRepository) Create(ctx context.Context, dbtx db.DBTX, inq *inquiry.Inquiry) (uuid.UUID, error) {
	var (
		issuerFullName, issuerNationalID, issuerBirthDate, issuerPhone pgtype.Text
	)
	if issuer := inq.Issuer(); issuer != nil {
		issuerFullName = pgconv.StringToPgtype(issuer.FullName())
		issuerNationalID = pgconv.StringToPgtype(issuer.NationalID().Value())
		issuerBirthDate = pgconv.StringToPgtype(issuer.BirthDate())
		issuerPhone = pgconv.StringToPgtype(issuer.Phone().Value())
	}

	_, err := dbtx.Exec(ctx, createInquirySQL,
		pgconv.UUIDToPgtype(inq.ID()),
		string(inq.Kind()),
		pgconv.UUIDToPgtype(inq.CustomerID()),
		pgconv.UUIDToPgtype(inq.ProductID()),
		string(inq.Status()),
		pgconv.UUIDPtrToPgtype(inq.AssignedExpert()),
		pgconv.UUIDPtrToPgtype(inq.CreatedByExpert()),
		rejectReasonText(inq.RejectReason()),
		amountInt8(inq.DownPayment()),
		termsDownPaymentInt8(inq.Terms()),
		termMonthsInt4(inq.Terms()),
		inq.Buyer().FullName(),
		inq.Buyer().NationalID().Value(),
		inq.Buyer().BirthDate(),
		inq.Buyer().Phone().Value(),
		issuerFullName,
		issuerNationalID,
		issuerBirthDate,
		issuerPhone,
		creditOutcomeText(inq.CreditOutcome()),
		inq.CreditResponse(),
		pgconv.TimeToPgtype(inq.CreatedAt()),
		pgconv.TimeToPgtype(inq.UpdatedAt()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create inquiry", err, classifyPgErr(err))
	}
	return inq.ID(), nil
}

const updateInquirySQL = `
UPDATE inquiries SET
	status = $2,
	assigned_expert_id = $3,
	reject_reason = $4,
	down_payment = $5,
	credit_outcome = $6,
	credit_response = $7,
	updated_at = now()
WHERE id = $1`

func (r *InquiryRepository) Update(ctx context.Context, dbtx db.DBTX, inq *inquiry.Inquiry) error {
	tag, err := dbtx.Exec(ctx, updateInquirySQL,
		pgconv.UUIDToPgtype(inq.ID()),
		string(inq.Status()),
		pgconv.UUIDPtrToPgtype(inq.AssignedExpert()),
		rejectReasonText(inq.RejectReason()),
		amountInt8(inq.DownPayment()),
		creditOutcomeText(inq.CreditOutcome()),
		inq.CreditResponse(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update inquiry", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inquiry not found", nil, infra.KindNotFound)
	}
	return nil
}

func rejectReasonText(r *inquiry.RejectReason) pgtype.Text {
	if r == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(r.String())
}

func amountInt8(a *inquiry.Amount) pgtype.Int8 {
	if a == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: a.Value(), Valid: true}
}

func termsDownPaymentInt8(t *inquiry.InstallmentTerms) pgtype.Int8 {
	if t == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: t.DownPayment().Value(), Valid: true}
}

func termMonthsInt4(t *inquiry.InstallmentTerms) pgtype.Int4 {
	if t == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: t.TermMonths(), Valid: true}
}

func creditOutcomeText(o *inquiry.CreditCheckOutcome) pgtype.Text {
	if o == nil {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(string(*o))
}
