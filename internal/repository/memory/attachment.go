package memory

import (
	"context"
	"time"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

type AttachmentRepository struct {
	*Repository[*model.Attachment]
	now func() time.Time
}

func NewAttachmentRepository(store *Store[*model.Attachment]) *AttachmentRepository {
	return &AttachmentRepository{
		Repository: NewRepository(store, "att"),
		now:        time.Now,
	}
}

// Create stamps the upload date itself. ID, UserID and DateUploaded are
// always computed here; whatever the caller put in those fields is
// discarded.
func (r *AttachmentRepository) Create(ctx context.Context, userID string, attachment *model.Attachment) *model.Attachment {
	attachment.DateUploaded = r.now()
	return r.Repository.Create(ctx, userID, attachment)
}

func (r *AttachmentRepository) ListByClient(ctx context.Context, userID, clientID string) []*model.Attachment {
	attachments := r.List(ctx, userID)
	out := make([]*model.Attachment, 0, len(attachments))
	for _, a := range attachments {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out
}
