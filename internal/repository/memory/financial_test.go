package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func seedRecords(t *testing.T) (*FinancialRepository, context.Context) {
	t.Helper()
	repo := NewFinancialRepository(NewStore[*model.FinancialRecord]())
	ctx := context.Background()

	repo.Create(ctx, "user-1", &model.FinancialRecord{
		Amount: 100, Description: "session", Date: day(t, "2024-01-10"),
		Type: model.FinancialRecordTypeIncome, ClientID: "cli_a", Category: "sessions",
	})
	repo.Create(ctx, "user-1", &model.FinancialRecord{
		Amount: -40, Description: "office supplies", Date: day(t, "2024-01-20"),
		Type: model.FinancialRecordTypeExpense, Category: "supplies",
	})
	repo.Create(ctx, "user-1", &model.FinancialRecord{
		Amount: 250, Description: "workshop", Date: day(t, "2024-02-05"),
		Type: model.FinancialRecordTypeIncome, Category: "workshops",
	})
	return repo, ctx
}

func TestFinancialSummary(t *testing.T) {
	repo, ctx := seedRecords(t)

	summary := repo.Summary(ctx, "user-1", day(t, "2024-01-01"), day(t, "2024-01-31"))
	assert.Equal(t, 100.0, summary.Income)
	assert.Equal(t, 40.0, summary.Expenses, "expense magnitude regardless of stored sign")
	assert.Equal(t, 60.0, summary.Balance)
}

func TestFinancialSummaryEmptyRange(t *testing.T) {
	repo, ctx := seedRecords(t)

	summary := repo.Summary(ctx, "user-1", day(t, "2023-01-01"), day(t, "2023-12-31"))
	assert.Zero(t, summary.Income)
	assert.Zero(t, summary.Expenses)
	assert.Zero(t, summary.Balance)
}

func TestFinancialByDateRangeInclusive(t *testing.T) {
	repo, ctx := seedRecords(t)

	records := repo.ListByDateRange(ctx, "user-1", day(t, "2024-01-10"), day(t, "2024-01-20"))
	require.Len(t, records, 2)
	assert.Equal(t, "session", records[0].Description)
	assert.Equal(t, "office supplies", records[1].Description)
}

func TestFinancialByClientAndCategory(t *testing.T) {
	repo, ctx := seedRecords(t)

	byClient := repo.ListByClient(ctx, "user-1", "cli_a")
	require.Len(t, byClient, 1)
	assert.Equal(t, "session", byClient[0].Description)

	byCategory := repo.ListByCategory(ctx, "user-1", "workshops")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "workshop", byCategory[0].Description)
}

func TestFinancialUpdateParsesDate(t *testing.T) {
	repo, ctx := seedRecords(t)
	records := repo.List(ctx, "user-1")
	require.NotEmpty(t, records)

	newDate := "2024-03-01"
	updated, err := repo.Update(ctx, "user-1", records[0].ID, &model.UpdateFinancialRecordRequest{Date: &newDate})
	require.NoError(t, err)

	assert.Equal(t, day(t, "2024-03-01"), updated.Date)
	assert.Equal(t, 100.0, updated.Amount, "amount must be preserved")
}

func TestFinancialUpdateRejectsBadDate(t *testing.T) {
	repo, ctx := seedRecords(t)
	records := repo.List(ctx, "user-1")
	require.NotEmpty(t, records)
	before := records[0].Date

	badDate := "01/03/2024"
	amount := 999.0
	_, err := repo.Update(ctx, "user-1", records[0].ID, &model.UpdateFinancialRecordRequest{Date: &badDate, Amount: &amount})
	require.Error(t, err)

	stored, ok := repo.Get(ctx, "user-1", records[0].ID)
	require.True(t, ok)
	assert.Equal(t, before, stored.Date, "failed update must not change the record")
	assert.Equal(t, 100.0, stored.Amount, "failed update must not change the record")
}
