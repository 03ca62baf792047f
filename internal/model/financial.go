package model

import "time"

type FinancialRecordType string

const (
	FinancialRecordTypeIncome  FinancialRecordType = "income"
	FinancialRecordTypeExpense FinancialRecordType = "expense"
)

// FinancialRecord amounts are signed: income is positive, expenses may be
// entered as either sign and are classified by Type. Summaries use the
// magnitude for expenses.
type FinancialRecord struct {
	Base
	Amount        float64             `json:"amount"`
	Description   string              `json:"description"`
	Date          time.Time           `json:"date"`
	Type          FinancialRecordType `json:"type"`
	Category      string              `json:"category,omitempty"`
	ClientID      string              `json:"client_id,omitempty"`
	AppointmentID string              `json:"appointment_id,omitempty"`
}

type CreateFinancialRecordRequest struct {
	Amount        float64 `json:"amount" validate:"required"`
	Description   string  `json:"description" validate:"required,min=2"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Type          string  `json:"type" validate:"required,oneof=income expense"`
	Category      string  `json:"category" validate:"max=100"`
	ClientID      string  `json:"client_id"`
	AppointmentID string  `json:"appointment_id"`
}

type UpdateFinancialRecordRequest struct {
	Amount        *float64 `json:"amount"`
	Description   *string  `json:"description" validate:"omitempty,min=2"`
	Date          *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type          *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category      *string  `json:"category" validate:"omitempty,max=100"`
	ClientID      *string  `json:"client_id"`
	AppointmentID *string  `json:"appointment_id"`
}

// FinancialSummary aggregates the records inside a date range.
type FinancialSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}
