package client

import (
	"context"
	"errors"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

type Service struct {
	repo     repository.ClientRepository
	validate *validator.Validator
}

func NewService(repo repository.ClientRepository, validate *validator.Validator) *Service {
	return &Service{repo: repo, validate: validate}
}

func (s *Service) List(ctx context.Context, userID string) []*model.Client {
	return s.repo.List(ctx, userID)
}

// Search returns the clients matching the free-text query; an empty query
// returns the full list.
func (s *Service) Search(ctx context.Context, userID, query string) []*model.Client {
	return s.repo.Search(ctx, userID, query)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*model.Client, error) {
	client, ok := s.repo.Get(ctx, userID, id)
	if !ok {
		return nil, apperrors.NotFound("client", nil)
	}
	return client, nil
}

func (s *Service) Create(ctx context.Context, userID string, req *model.CreateClientRequest) (*model.Client, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	client := &model.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Birthdate: req.Birthdate,
		Notes:     req.Notes,
	}
	return s.repo.Create(ctx, userID, client), nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req *model.UpdateClientRequest) (*model.Client, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	client, err := s.repo.Update(ctx, userID, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("client", err)
		}
		return nil, apperrors.Internal(err)
	}
	return client, nil
}

// Delete removes the client record only. Appointments, financial records
// and attachments referencing it are left in place; there is no cascade.
func (s *Service) Delete(ctx context.Context, userID, id string) bool {
	return s.repo.Delete(ctx, userID, id)
}
