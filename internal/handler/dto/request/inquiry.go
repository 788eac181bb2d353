package request

import (
	"github.com/google/uuid"

	"carflow/internal/usecase/commands"
)

type ApplicantPayload struct {
	FullName   string `json:"full_name" binding:"required"`
	NationalID string `json:"national_id" binding:"required,len=10"`
	BirthDate  string `json:"birth_date" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

func (p ApplicantPayload) toInput() commands.ApplicantInput {
	return commands.ApplicantInput{
		FullName:   p.FullName,
		NationalID: p.NationalID,
		BirthDate:  p.BirthDate,
		Phone:      p.Phone,
	}
}

type CreateCashInquiryRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Buyer     ApplicantPayload `json:"buyer" binding:"required"`
	ExpertID  *uuid.UUID       `json:"expert_id,omitempty"`
}

func (r CreateCashInquiryRequest) ToInput() commands.CreateCashInquiryInput {
	return commands.CreateCashInquiryInput{
		ProductID: r.ProductID,
		Buyer:     r.Buyer.toInput(),
		ExpertID:  r.ExpertID,
	}
}

type CreateInstallmentInquiryRequest struct {
	ProductID   uuid.UUID         `json:"product_id" binding:"required"`
	Buyer       ApplicantPayload  `json:"buyer" binding:"required"`
	Issuer      *ApplicantPayload `json:"issuer,omitempty"`
	DownPayment int64             `json:"down_payment" binding:"min=0"`
	TermMonths  int32             `json:"term_months" binding:"required,min=1"`
	ExpertID    *uuid.UUID        `json:"expert_id,omitempty"`
}

func (r CreateInstallmentInquiryRequest) ToInput() commands.CreateInstallmentInquiryInput {
	in := commands.CreateInstallmentInquiryInput{
		ProductID:   r.ProductID,
		Buyer:       r.Buyer.toInput(),
		DownPayment: r.DownPayment,
		TermMonths:  r.TermMonths,
		ExpertID:    r.ExpertID,
	}
	if r.Issuer != nil {
		issuer := r.Issuer.toInput()
		in.Issuer = &issuer
	}
	return in
}

type SetStatusRequest struct {
	Status       string     `json:"status" binding:"required"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	ExpertID     *uuid.UUID `json:"expert_id,omitempty"`
}

func (r SetStatusRequest) ToInput() commands.SetStatusInput {
	return commands.SetStatusInput{
		Status:       r.Status,
		RejectReason: r.RejectReason,
		ExpertID:     r.ExpertID,
	}
}

type AssignExpertRequest struct {
	ExpertID *uuid.UUID `json:"expert_id,omitempty"`
}

type SetDownPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}
