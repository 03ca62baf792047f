package appointmenttype

import (
	"context"
	"errors"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

type Service struct {
	repo     repository.AppointmentTypeRepository
	validate *validator.Validator
}

func NewService(repo repository.AppointmentTypeRepository, validate *validator.Validator) *Service {
	return &Service{repo: repo, validate: validate}
}

func (s *Service) List(ctx context.Context, userID string) []*model.AppointmentType {
	return s.repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*model.AppointmentType, error) {
	appointmentType, ok := s.repo.Get(ctx, userID, id)
	if !ok {
		return nil, apperrors.NotFound("appointment type", nil)
	}
	return appointmentType, nil
}

func (s *Service) Create(ctx context.Context, userID string, req *model.CreateAppointmentTypeRequest) (*model.AppointmentType, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}
	return s.repo.Create(ctx, userID, &model.AppointmentType{Label: req.Label}), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentTypeRequest) (*model.AppointmentType, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	appointmentType, err := s.repo.Update(ctx, userID, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("appointment type", err)
		}
		return nil, apperrors.Internal(err)
	}
	return appointmentType, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) bool {
	return s.repo.Delete(ctx, userID, id)
}
