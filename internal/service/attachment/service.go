package attachment

import (
	"context"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

type Service struct {
	repo       repository.AttachmentRepository
	clientRepo repository.ClientRepository
	validate   *validator.Validator
}

func NewService(repo repository.AttachmentRepository, clientRepo repository.ClientRepository, validate *validator.Validator) *Service {
	return &Service{repo: repo, clientRepo: clientRepo, validate: validate}
}

func (s *Service) List(ctx context.Context, userID string) []*model.Attachment {
	return s.repo.List(ctx, userID)
}

func (s *Service) ListByClient(ctx context.Context, userID, clientID string) []*model.Attachment {
	return s.repo.ListByClient(ctx, userID, clientID)
}

func (s *Service) Get(ctx context.Context, userID, id string) (*model.Attachment, error) {
	attachment, ok := s.repo.Get(ctx, userID, id)
	if !ok {
		return nil, apperrors.NotFound("attachment", nil)
	}
	return attachment, nil
}

func (s *Service) Create(ctx context.Context, userID string, req *model.CreateAttachmentRequest) (*model.Attachment, error) {
	if errs := s.validate.Validate(req); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	if _, ok := s.clientRepo.Get(ctx, userID, req.ClientID); !ok {
		return nil, apperrors.NotFound("client", nil)
	}

	attachment := &model.Attachment{
		ClientID: req.ClientID,
		Name:     req.Name,
	}
	return s.repo.Create(ctx, userID, attachment), nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) bool {
	return s.repo.Delete(ctx, userID, id)
}
