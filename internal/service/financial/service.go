package financial

import (
	"context"
	"errors"
	"time"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo     repository.FinancialRepository
	validate *validator.Validator
}

func NewService(repo repository.FinancialRepository, validate *validator.Validator) *Service {
	return &Service{repo: repo, validate: validate}
}

func (s *Service) List(ctx context.Context, userID string) []*model.FinancialRecord {
	return s.repo.List(ctx, userID)
}

func (s *Service) ListByDateRange(ctx context.Context, userID, start, end string) ([]*model.FinancialRecord, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, userID, from, to), nil
}

func (s *Service) ListByClient(ctx context.Context, userID, clientID string) []*model.FinancialRecord {
	return s.repo.ListByClient(ctx, userID, clientID)
}

func (s *Service) ListByCategory(ctx context.Context, userID, category string) []*model.FinancialRecord {
	return s.repo.ListByCategory(ctx, userID, category)
}

func (s *Service) Summary(ctx context.Context, userID, start, end string) (*model.FinancialSummary, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.repo.Summary(ctx, userID, from, to), nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*model.FinancialRecord, error) {
	record, ok := s.repo.Get(ctx, userID, id)
	if !ok {
		return nil, apperrors.NotFound("financial record", nil)
	}
	return record, nil
}

func (s *Service) Create(ctx context.Context, userID string, req *model.CreateFinancialRecordRequest) (*model.FinancialRecord, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date", err)
	}

	record := &model.FinancialRecord{
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Type:          model.FinancialRecordType(req.Type),
		Category:      req.Category,
		ClientID:      req.ClientID,
		AppointmentID: req.AppointmentID,
	}
	return s.repo.Create(ctx, userID, record), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *model.UpdateFinancialRecordRequest) (*model.FinancialRecord, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	record, err := s.repo.Update(ctx, userID, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("financial record", err)
		}
		return nil, apperrors.Internal(err)
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) bool {
	return s.repo.Delete(ctx, userID, id)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.BadRequest("invalid start date", err)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.BadRequest("invalid end date", err)
	}
	return from, to, nil
}
