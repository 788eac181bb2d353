package response

import (
	"time"

	"carflow/internal/usecase/commands"
	"carflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApplicantResponse struct {
	FullName   string `json:"fullName"`
	NationalID string `json:"nationalId"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone"`
}

type InquiryResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Kind               string             `json:"kind"`
	CustomerID         uuid.UUID          `json:"customerId"`
	ProductID          uuid.UUID          `json:"productId"`
	ProductName        string             `json:"productName"`
	Status             string             `json:"status"`
	AssignedExpertID   *uuid.UUID         `json:"assignedExpertId,omitempty"`
	AssignedExpertName *string            `json:"assignedExpertName,omitempty"`
	RejectReason       *string            `json:"rejectReason,omitempty"`
	DownPayment        *int64             `json:"downPayment,omitempty"`
	TermMonths         *int32             `json:"termMonths,omitempty"`
	Buyer              ApplicantResponse  `json:"buyer"`
	Issuer             *ApplicantResponse `json:"issuer,omitempty"`
	CreditOutcome      *string            `json:"creditOutcome,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type InquiryListResponse struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	ProductName      string     `json:"productName"`
	BuyerName        string     `json:"buyerName"`
	Status           string     `json:"status"`
	AssignedExpertID *uuid.UUID `json:"assignedExpertId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type CreateInquiryResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Status     string    `json:"status"`
}

type AssignExpertResponse struct {
	ExpertID uuid.UUID `json:"expertId"`
}

type ExpertResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Phone    string    `json:"phone"`
	IsActive bool      `json:"isActive"`
}

func FromInquiryView(rm *queries.InquiryView) *InquiryResponse {
	resp := &InquiryResponse{
		ID:                 rm.ID,
		Kind:               rm.Kind,
		CustomerID:         rm.CustomerID,
		ProductID:          rm.ProductID,
		ProductName:        rm.ProductName,
		Status:             rm.Status,
		AssignedExpertID:   rm.AssignedExpertID,
		AssignedExpertName: rm.AssignedExpertName,
		RejectReason:       rm.RejectReason,
		DownPayment:        rm.DownPayment,
		TermMonths:         rm.TermMonths,
		Buyer:              fromApplicantView(rm.Buyer),
		CreditOutcome:      rm.CreditOutcome,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
	if rm.Issuer != nil {
		issuer := fromApplicantView(*rm.Issuer)
		resp.Issuer = &issuer
	}
	return resp
}

func fromApplicantView(v queries.ApplicantView) ApplicantResponse {
	return ApplicantResponse{
		FullName:   v.FullName,
		NationalID: v.NationalID,
		BirthDate:  v.BirthDate,
		Phone:      v.Phone,
	}
}

func FromInquiryListItems(items []*queries.InquiryListItem) []*InquiryListResponse {
	result := make([]*InquiryListResponse, len(items))
	for i, item := range items {
		result[i] = &InquiryListResponse{
			ID:               item.ID,
			Kind:             item.Kind,
			ProductName:      item.ProductName,
			BuyerName:        item.BuyerName,
			Status:           item.Status,
			AssignedExpertID: item.AssignedExpertID,
			CreatedAt:        item.CreatedAt,
		}
	}
	return result
}

func FromCreateResult(r *commands.CreateInquiryResult) *CreateInquiryResponse {
	return &CreateInquiryResponse{
		ID:         r.InquiryID,
		CustomerID: r.CustomerID,
		Status:     r.Status.String(),
	}
}

func FromExpertViews(views []*queries.ExpertView) []*ExpertResponse {
	result := make([]*ExpertResponse, len(views))
	for i, v := range views {
		result[i] = &ExpertResponse{
			ID:       v.ID,
			FullName: v.FullName,
			Phone:    v.Phone,
			IsActive: v.IsActive,
		}
	}
	return result
}
