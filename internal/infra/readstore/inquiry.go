package readstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"carflow/internal/domain/inquiry"
	"carflow/internal/infra"
	"carflow/internal/infra/db"
	"carflow/internal/pkg/pgconv"
	"carflow/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type InquiryReadStore struct {
	dbtx db.DBTX
}

func NewInquiryReadStore(dbtx db.DBTX) *InquiryReadStore {
	return &InquiryReadStore{dbtx: dbtx}
}

const findInquiryViewSQL = `
SELECT i.id, i.kind, i.customer_id, i.product_id, p.name,
	i.status, i.assigned_expert_id, e.full_name, i.created_by_expert_id,
	i.reject_reason, i.down_payment, i.term_months,
	i.buyer_full_name, i.buyer_national_id, i.buyer_birth_date, i.buyer_phone,
	i.issuer_full_name, i.issuer_national_id, i.issuer_birth_date, i.issuer_phone,
	i.credit_outcome, i.created_at, i.updated_at
FROM inquiries i
JOIN products p ON p.id = i.product_id
LEFT JOIN users e ON e.id = i.assigned_expert_id
WHERE i.id = $1`

func (r *InquiryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InquiryView, error) {
	var (
		view                        queries.InquiryView
		pgID, pgCustomer, pgProduct pgtype.UUID
		pgAssigned, pgCreatedBy     pgtype.UUID
		expertName, rejectReason    pgtype.Text
		downPayment                 pgtype.Int8
		termMonths                  pgtype.Int4
		issuerName, issuerNID       pgtype.Text
		issuerBirth, issuerPhone    pgtype.Text
		creditOutcome               pgtype.Text
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, findInquiryViewSQL, pgconv.UUIDToPgtype(id)).Scan(
		&pgID, &view.Kind, &pgCustomer, &pgProduct, &view.ProductName,
		&view.Status, &pgAssigned, &expertName, &pgCreatedBy,
		&rejectReason, &downPayment, &termMonths,
		&view.Buyer.FullName, &view.Buyer.NationalID, &view.Buyer.BirthDate, &view.Buyer.Phone,
		&issuerName, &issuerNID, &issuerBirth, &issuerPhone,
		&creditOutcome, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry by ID", err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.CustomerID = uuid.UUID(pgCustomer.Bytes)
	view.ProductID = uuid.UUID(pgProduct.Bytes)
	view.AssignedExpertID = pgconv.UUIDPtrFromPgtype(pgAssigned)
	view.AssignedExpertName = pgconv.StringPtrFromPgtype(expertName)
	view.CreatedByExpertID = pgconv.UUIDPtrFromPgtype(pgCreatedBy)
	view.RejectReason = pgconv.StringPtrFromPgtype(rejectReason)
	if downPayment.Valid {
		v := downPayment.Int64
		view.DownPayment = &v
	}
	if termMonths.Valid {
		v := termMonths.Int32
		view.TermMonths = &v
	}
	if issuerName.Valid {
		view.Issuer = &queries.ApplicantView{
			FullName:   issuerName.String,
			NationalID: issuerNID.String,
			BirthDate:  issuerBirth.String,
			Phone:      issuerPhone.String,
		}
	}
	view.CreditOutcome = pgconv.StringPtrFromPgtype(creditOutcome)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listInquiriesSQL = `
SELECT i.id, i.kind, p.name, i.buyer_full_name, i.status, i.assigned_expert_id, i.created_at
FROM inquiries i
JOIN products p ON p.id = i.product_id`

func (r *InquiryReadStore) FindAll(ctx context.Context, filter queries.ListFilter, limit int32) ([]*queries.InquiryListItem, error) {
	where, args := filterClauses(filter, nil)
	return r.list(ctx, where, args, limit)
}

func (r *InquiryReadStore) FindByExpert(ctx context.Context, expertID uuid.UUID, filter queries.ListFilter, limit int32) ([]*queries.InquiryListItem, error) {
	where, args := filterClauses(filter, nil)
	args = append(args, pgconv.UUIDToPgtype(expertID))
	n := len(args)
	where = append(where, "(i.assigned_expert_id = $"+itoa(n)+" OR i.created_by_expert_id = $"+itoa(n)+")")
	return r.list(ctx, where, args, limit)
}

func (r *InquiryReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter queries.ListFilter, limit int32) ([]*queries.InquiryListItem, error) {
	where, args := filterClauses(filter, nil)
	args = append(args, pgconv.UUIDToPgtype(customerID))
	where = append(where, "i.customer_id = $"+itoa(len(args)))
	return r.list(ctx, where, args, limit)
}

func (r *InquiryReadStore) list(ctx context.Context, where []string, args []any, limit int32) ([]*queries.InquiryListItem, error) {
	sql := listInquiriesSQL
	if len(where) > 0 {
		sql += "\nWHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	sql += "\nORDER BY i.created_at DESC\nLIMIT $" + itoa(len(args))

	rows, err := r.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries", err)
	}
	defer rows.Close()

	var items []*queries.InquiryListItem
	for rows.Next() {
		var (
			item       queries.InquiryListItem
			pgID       pgtype.UUID
			pgAssigned pgtype.UUID
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&pgID, &item.Kind, &item.ProductName, &item.BuyerName, &item.Status, &pgAssigned, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inquiry row", err)
		}
		item.ID = uuid.UUID(pgID.Bytes)
		item.AssignedExpertID = pgconv.UUIDPtrFromPgtype(pgAssigned)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inquiry rows", err)
	}
	return items, nil
}

func filterClauses(filter queries.ListFilter, args []any) ([]string, []any) {
	var where []string
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		where = append(where, "i.kind = $"+itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, "i.status = $"+itoa(len(args)))
	}
	return where, args
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

const findAggregateSQL = `
SELECT id, kind, customer_id, product_id, status,
	assigned_expert_id, created_by_expert_id,
	reject_reason, down_payment, terms_down_payment, term_months,
	buyer_full_name, buyer_national_id, buyer_birth_date, buyer_phone,
	issuer_full_name, issuer_national_id, issuer_birth_date, issuer_phone,
	credit_outcome, credit_response, created_at, updated_at
FROM inquiries
WHERE id = $1`

// FindAggregate rebuilds the write-side aggregate for command handling.
func (r *InquiryReadStore) FindAggregate(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	var (
		pgID, pgCustomer, pgProduct pgtype.UUID
		pgAssigned, pgCreatedBy     pgtype.UUID
		kind, status                string
		rejectReason                pgtype.Text
		downPayment, termsDown      pgtype.Int8
		termMonths                  pgtype.Int4
		buyerName, buyerNID         string
		buyerBirth, buyerPhone      string
		issuerName, issuerNID       pgtype.Text
		issuerBirth, issuerPhone    pgtype.Text
		creditOutcome               pgtype.Text
		creditResponse              []byte
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, findAggregateSQL, pgconv.UUIDToPgtype(id)).Scan(
		&pgID, &kind, &pgCustomer, &pgProduct, &status,
		&pgAssigned, &pgCreatedBy,
		&rejectReason, &downPayment, &termsDown, &termMonths,
		&buyerName, &buyerNID, &buyerBirth, &buyerPhone,
		&issuerName, &issuerNID, &issuerBirth, &issuerPhone,
		&creditOutcome, &creditResponse, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry by ID", err)
	}

	buyer, err := inquiry.NewApplicant(buyerName, buyerNID, buyerBirth, buyerPhone)
	if err != nil {
		return nil, infra.WrapRepoErr("inconsistent buyer data", err)
	}

	var issuer *inquiry.Applicant
	if issuerName.Valid {
		applicant, aerr := inquiry.NewApplicant(issuerName.String, issuerNID.String, issuerBirth.String, issuerPhone.String)
		if aerr != nil {
			return nil, infra.WrapRepoErr("inconsistent issuer data", aerr)
		}
		issuer = &applicant
	}

	var reason *inquiry.RejectReason
	if rejectReason.Valid {
		rr, rerr := inquiry.NewRejectReason(rejectReason.String)
		if rerr != nil {
			return nil, infra.WrapRepoErr("inconsistent reject reason", rerr)
		}
		reason = &rr
	}

	var paid *inquiry.Amount
	if downPayment.Valid {
		a, aerr := inquiry.NewAmount(downPayment.Int64)
		if aerr != nil {
			return nil, infra.WrapRepoErr("inconsistent down payment", aerr)
		}
		paid = &a
	}

	var terms *inquiry.InstallmentTerms
	if termMonths.Valid {
		t, terr := inquiry.NewInstallmentTerms(termsDown.Int64, termMonths.Int32)
		if terr != nil {
			return nil, infra.WrapRepoErr("inconsistent installment terms", terr)
		}
		terms = &t
	}

	var outcome *inquiry.CreditCheckOutcome
	if creditOutcome.Valid {
		o := inquiry.CreditCheckOutcome(creditOutcome.String)
		outcome = &o
	}

	return inquiry.ReconstructInquiry(
		uuid.UUID(pgID.Bytes),
		inquiry.Kind(kind),
		uuid.UUID(pgCustomer.Bytes),
		uuid.UUID(pgProduct.Bytes),
		inquiry.Status(status),
		pgconv.UUIDPtrFromPgtype(pgAssigned),
		pgconv.UUIDPtrFromPgtype(pgCreatedBy),
		reason,
		paid,
		terms,
		buyer,
		issuer,
		outcome,
		creditResponse,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
