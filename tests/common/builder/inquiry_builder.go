//go:build unit || e2e

package builder

import (
	"time"

	reqdto "carflow/internal/handler/dto/request"
	"carflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type InquiryBuilder struct {
	ID          uuid.UUID
	Kind        string
	CustomerID  uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Status      string
	BuyerName   string
	BuyerPhone  string
	NationalID  string
	ExpertID    *uuid.UUID
}

func NewInquiryBuilder() *InquiryBuilder {
	return &InquiryBuilder{
		ID:          uuid.New(),
		Kind:        "cash",
		CustomerID:  uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Sedan X",
		Status:      "new",
		BuyerName:   "Alice Buyer",
		BuyerPhone:  "09121234567",
		NationalID:  "1234567890",
	}
}

func (b *InquiryBuilder) BuildCashDTO() reqdto.CreateCashInquiryRequest {
	return reqdto.CreateCashInquiryRequest{
		ProductID: b.ProductID,
		Buyer:     b.buildApplicantPayload(),
	}
}

func (b *InquiryBuilder) BuildInstallmentDTO() reqdto.CreateInstallmentInquiryRequest {
	return reqdto.CreateInstallmentInquiryRequest{
		ProductID:   b.ProductID,
		Buyer:       b.buildApplicantPayload(),
		DownPayment: 100_000_000,
		TermMonths:  24,
	}
}

func (b *InquiryBuilder) BuildView() *queries.InquiryView {
	now := time.Now()
	return &queries.InquiryView{
		ID:               b.ID,
		Kind:             b.Kind,
		CustomerID:       b.CustomerID,
		ProductID:        b.ProductID,
		ProductName:      b.ProductName,
		Status:           b.Status,
		AssignedExpertID: b.ExpertID,
		Buyer: queries.ApplicantView{
			FullName:   b.BuyerName,
			NationalID: b.NationalID,
			BirthDate:  "1990-03-14",
			Phone:      b.BuyerPhone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *InquiryBuilder) BuildListItem() *queries.InquiryListItem {
	return &queries.InquiryListItem{
		ID:               b.ID,
		Kind:             b.Kind,
		ProductName:      b.ProductName,
		BuyerName:        b.BuyerName,
		Status:           b.Status,
		AssignedExpertID: b.ExpertID,
		CreatedAt:        time.Now(),
	}
}

func (b *InquiryBuilder) buildApplicantPayload() reqdto.ApplicantPayload {
	return reqdto.ApplicantPayload{
		FullName:   b.BuyerName,
		NationalID: b.NationalID,
		BirthDate:  "1990-03-14",
		Phone:      b.BuyerPhone,
	}
}

// Fluent builder methods
func (b *InquiryBuilder) WithKind(kind string) *InquiryBuilder {
	b.Kind = kind
	return b
}

func (b *InquiryBuilder) WithStatus(status string) *InquiryBuilder {
	b.Status = status
	return b
}

func (b *InquiryBuilder) WithExpert(expertID uuid.UUID) *InquiryBuilder {
	b.ExpertID = &expertID
	return b
}
