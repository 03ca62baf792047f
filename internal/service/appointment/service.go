package appointment

import (
	"context"
	"errors"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

type Service struct {
	repo       repository.AppointmentRepository
	clientRepo repository.ClientRepository
	validate   *validator.Validator
}

func NewService(repo repository.AppointmentRepository, clientRepo repository.ClientRepository, validate *validator.Validator) *Service {
	return &Service{repo: repo, clientRepo: clientRepo, validate: validate}
}

func (s *Service) List(ctx context.Context, userID string) []*model.Appointment {
	return s.repo.List(ctx, userID)
}

func (s *Service) ListByDate(ctx context.Context, userID, date string) []*model.Appointment {
	return s.repo.ListByDate(ctx, userID, date)
}

func (s *Service) ListByDateRange(ctx context.Context, userID, start, end string) []*model.Appointment {
	return s.repo.ListByDateRange(ctx, userID, start, end)
}

func (s *Service) ListByClient(ctx context.Context, userID, clientID string) []*model.Appointment {
	return s.repo.ListByClient(ctx, userID, clientID)
}

func (s *Service) ListByStatus(ctx context.Context, userID string, status model.AppointmentStatus) []*model.Appointment {
	return s.repo.ListByStatus(ctx, userID, status)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*model.Appointment, error) {
	appointment, ok := s.repo.Get(ctx, userID, id)
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return appointment, nil
}

// Create resolves the referenced client and denormalizes its name onto the
// appointment so lists render without a join.
func (s *Service) Create(ctx context.Context, userID string, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	client, ok := s.clientRepo.Get(ctx, userID, req.ClientID)
	if !ok {
		return nil, apperrors.NotFound("client", nil)
	}

	appointment := &model.Appointment{
		ClientID:   req.ClientID,
		ClientName: client.Name,
		Type:       req.Type,
		Date:       req.Date,
		Time:       req.Time,
		Duration:   req.Duration,
		Location:   model.AppointmentLocation(req.Location),
		Status:     model.AppointmentStatus(req.Status),
		Notes:      req.Notes,
	}
	return s.repo.Create(ctx, userID, appointment), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	var clientName string
	if req.ClientID != nil {
		client, ok := s.clientRepo.Get(ctx, userID, *req.ClientID)
		if !ok {
			return nil, apperrors.NotFound("client", nil)
		}
		clientName = client.Name
	}

	appointment, err := s.repo.Update(ctx, userID, id, req, clientName)
	return s.wrapNotFound(appointment, err)
}

func (s *Service) wrapNotFound(appointment *model.Appointment, err error) (*model.Appointment, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment", err)
		}
		return nil, apperrors.Internal(err)
	}
	return appointment, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) bool {
	return s.repo.Delete(ctx, userID, id)
}
