package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carflow/internal/domain/user"
	"carflow/internal/infra"
	"carflow/internal/pkg/errs"
	"carflow/internal/usecase/shared"
)

var (
	ErrInquiryNotFound = errs.New("inquiry not found")
	ErrInquiryAccess   = errs.New("inquiry access denied")
)

// Read models (DTO for read side)
type ApplicantView struct {
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
}

type InquiryView struct {
	ID                 uuid.UUID      `json:"id"`
	Kind               string         `json:"kind"`
	CustomerID         uuid.UUID      `json:"customer_id"`
	ProductID          uuid.UUID      `json:"product_id"`
	ProductName        string         `json:"product_name"`
	Status             string         `json:"status"`
	AssignedExpertID   *uuid.UUID     `json:"assigned_expert_id,omitempty"`
	AssignedExpertName *string        `json:"assigned_expert_name,omitempty"`
	CreatedByExpertID  *uuid.UUID     `json:"created_by_expert_id,omitempty"`
	RejectReason       *string        `json:"reject_reason,omitempty"`
	DownPayment        *int64         `json:"down_payment,omitempty"`
	TermMonths         *int32         `json:"term_months,omitempty"`
	Buyer              ApplicantView  `json:"buyer"`
	Issuer             *ApplicantView `json:"issuer,omitempty"`
	CreditOutcome      *string        `json:"credit_outcome,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type InquiryListItem struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	ProductName      string     `json:"product_name"`
	BuyerName        string     `json:"buyer_name"`
	Status           string     `json:"status"`
	AssignedExpertID *uuid.UUID `json:"assigned_expert_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ListFilter narrows the inquiry list; zero values mean no filtering.
type ListFilter struct {
	Kind   string
	Status string
}

type InquiryQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InquiryView, error)
	List(ctx context.Context, actor shared.Actor, filter ListFilter, limit int) ([]*InquiryListItem, error)
}

type InquiryViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	FindAll(ctx context.Context, filter ListFilter, limit int32) ([]*InquiryListItem, error)
	FindByExpert(ctx context.Context, expertID uuid.UUID, filter ListFilter, limit int32) ([]*InquiryListItem, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter, limit int32) ([]*InquiryListItem, error)
}

type inquiryQueriesImpl struct {
	repo InquiryViewRepo
}

func NewInquiryQueries(repo InquiryViewRepo) InquiryQueries {
	return &inquiryQueriesImpl{repo: repo}
}

func (q *inquiryQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*InquiryView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}

	if !canReadInquiry(actor, view) {
		return nil, ErrInquiryAccess
	}
	return view, nil
}

func (q *inquiryQueriesImpl) List(ctx context.Context, actor shared.Actor, filter ListFilter, limit int) ([]*InquiryListItem, error) {
	if limit <= 0 {
		limit = 50
	}

	switch actor.Role {
	case user.RoleAdmin:
		return q.repo.FindAll(ctx, filter, int32(limit))
	case user.RoleExpert:
		return q.repo.FindByExpert(ctx, actor.ID, filter, int32(limit))
	default:
		return q.repo.FindByCustomer(ctx, actor.ID, filter, int32(limit))
	}
}

// canReadInquiry: admins see everything, experts see inquiries they are
// assigned to or created, customers only their own.
func canReadInquiry(actor shared.Actor, view *InquiryView) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleExpert:
		if view.AssignedExpertID != nil && *view.AssignedExpertID == actor.ID {
			return true
		}
		return view.CreatedByExpertID != nil && *view.CreatedByExpertID == actor.ID
	default:
		return view.CustomerID == actor.ID
	}
}
