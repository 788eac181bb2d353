package inquiry

import (
	"errors"
	"strings"

	"carflow/internal/domain/user"
)

var (
	ErrInvalidKind         = errors.New("invalid inquiry kind")
	ErrInvalidStatus       = errors.New("invalid inquiry status")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrEmptyRejectReason   = errors.New("rejection reason is required")
	ErrRejectReasonTooLong = errors.New("rejection reason too long")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrEmptyBuyerName      = errors.New("buyer full name is required")
	ErrEmptyBirthDate      = errors.New("buyer birth date is required")
	ErrInvalidTerm         = errors.New("installment term must be positive")
)

const MaxRejectReasonLength = 500

type RejectReason struct {
	value string
}

func NewRejectReason(s string) (RejectReason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RejectReason{}, ErrEmptyRejectReason
	}
	if len(s) > MaxRejectReasonLength {
		return RejectReason{}, ErrRejectReasonTooLong
	}
	return RejectReason{value: s}, nil
}

func (r RejectReason) String() string {
	return r.value
}

// Amount is a monetary value in the smallest currency unit.
type Amount struct {
	value int64
}

func NewAmount(v int64) (Amount, error) {
	if v < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: v}, nil
}

func (a Amount) Value() int64 {
	return a.value
}

// Applicant carries the identity fields of the buyer, or of the designated
// co-signer whose document backs the credit transaction.
type Applicant struct {
	fullName   string
	nationalID user.NationalID
	birthDate  string
	phone      user.Phone
}

func NewApplicant(fullName, nationalID, birthDate, phone string) (Applicant, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Applicant{}, ErrEmptyBuyerName
	}
	nid, err := user.NewNationalID(nationalID)
	if err != nil {
		return Applicant{}, err
	}
	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		return Applicant{}, ErrEmptyBirthDate
	}
	ph, err := user.NewPhone(phone)
	if err != nil {
		return Applicant{}, err
	}
	return Applicant{
		fullName:   fullName,
		nationalID: nid,
		birthDate:  birthDate,
		phone:      ph,
	}, nil
}

func (a Applicant) FullName() string            { return a.fullName }
func (a Applicant) NationalID() user.NationalID { return a.nationalID }
func (a Applicant) BirthDate() string           { return a.birthDate }
func (a Applicant) Phone() user.Phone           { return a.phone }

// InstallmentTerms are the requested financing parameters.
type InstallmentTerms struct {
	downPayment Amount
	termMonths  int32
}

func NewInstallmentTerms(downPayment int64, termMonths int32) (InstallmentTerms, error) {
	dp, err := NewAmount(downPayment)
	if err != nil {
		return InstallmentTerms{}, err
	}
	if termMonths <= 0 {
		return InstallmentTerms{}, ErrInvalidTerm
	}
	return InstallmentTerms{downPayment: dp, termMonths: termMonths}, nil
}

func (t InstallmentTerms) DownPayment() Amount { return t.downPayment }
func (t InstallmentTerms) TermMonths() int32   { return t.termMonths }
