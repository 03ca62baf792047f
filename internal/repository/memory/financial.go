package memory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

type FinancialRepository struct {
	*Repository[*model.FinancialRecord]
}

func NewFinancialRepository(store *Store[*model.FinancialRecord]) *FinancialRepository {
	return &FinancialRepository{Repository: NewRepository(store, "fin")}
}

func (r *FinancialRepository) Update(ctx context.Context, userID, id string, req *model.UpdateFinancialRecordRequest) (*model.FinancialRecord, error) {
	var date time.Time
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		date = d
	}
	return r.Repository.Update(ctx, userID, id, func(rec *model.FinancialRecord) {
		if req.Amount != nil {
			rec.Amount = *req.Amount
		}
		if req.Description != nil {
			rec.Description = *req.Description
		}
		if req.Date != nil {
			rec.Date = date
		}
		if req.Type != nil {
			rec.Type = model.FinancialRecordType(*req.Type)
		}
		if req.Category != nil {
			rec.Category = *req.Category
		}
		if req.ClientID != nil {
			rec.ClientID = *req.ClientID
		}
		if req.AppointmentID != nil {
			rec.AppointmentID = *req.AppointmentID
		}
	})
}

// ListByDateRange is inclusive on both ends; record dates are compared as
// parsed times, not strings.
func (r *FinancialRepository) ListByDateRange(ctx context.Context, userID string, start, end time.Time) []*model.FinancialRecord {
	return r.filter(ctx, userID, func(rec *model.FinancialRecord) bool {
		return !rec.Date.Before(start) && !rec.Date.After(end)
	})
}

func (r *FinancialRepository) ListByClient(ctx context.Context, userID, clientID string) []*model.FinancialRecord {
	return r.filter(ctx, userID, func(rec *model.FinancialRecord) bool {
		return rec.ClientID == clientID
	})
}

func (r *FinancialRepository) ListByCategory(ctx context.Context, userID, category string) []*model.FinancialRecord {
	return r.filter(ctx, userID, func(rec *model.FinancialRecord) bool {
		return rec.Category == category
	})
}

// Summary totals the records within the range: income sums income amounts,
// expenses sums expense magnitudes regardless of the stored sign, and
// balance is income minus expenses.
func (r *FinancialRepository) Summary(ctx context.Context, userID string, start, end time.Time) *model.FinancialSummary {
	summary := &model.FinancialSummary{}
	for _, rec := range r.ListByDateRange(ctx, userID, start, end) {
		switch rec.Type {
		case model.FinancialRecordTypeIncome:
			summary.Income += rec.Amount
		case model.FinancialRecordTypeExpense:
			summary.Expenses += math.Abs(rec.Amount)
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	return summary
}

func (r *FinancialRepository) filter(ctx context.Context, userID string, keep func(*model.FinancialRecord) bool) []*model.FinancialRecord {
	records := r.List(ctx, userID)
	out := make([]*model.FinancialRecord, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
