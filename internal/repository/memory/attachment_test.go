package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

func TestAttachmentCreateStampsSystemFields(t *testing.T) {
	repo := NewAttachmentRepository(NewStore[*model.Attachment]())
	uploadedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return uploadedAt }
	ctx := context.Background()

	created := repo.Create(ctx, "user-1", &model.Attachment{
		Base:         model.Base{ID: "att_forged", UserID: "someone-else"},
		ClientID:     "cli_a",
		Name:         "intake-form.pdf",
		DateUploaded: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NotEqual(t, "att_forged", created.ID, "caller-supplied id must be discarded")
	assert.Equal(t, "user-1", created.UserID, "caller-supplied owner must be discarded")
	assert.Equal(t, uploadedAt, created.DateUploaded, "upload date is system-assigned")
}

func TestAttachmentsByClient(t *testing.T) {
	repo := NewAttachmentRepository(NewStore[*model.Attachment]())
	ctx := context.Background()

	repo.Create(ctx, "user-1", &model.Attachment{ClientID: "cli_a", Name: "one.pdf"})
	repo.Create(ctx, "user-1", &model.Attachment{ClientID: "cli_a", Name: "two.pdf"})
	repo.Create(ctx, "user-1", &model.Attachment{ClientID: "cli_b", Name: "three.pdf"})

	results := repo.ListByClient(ctx, "user-1", "cli_a")
	require.Len(t, results, 2)
	assert.Equal(t, "one.pdf", results[0].Name)
	assert.Equal(t, "two.pdf", results[1].Name)
}

func TestAppointmentTypeCRUD(t *testing.T) {
	repo := NewAppointmentTypeRepository(NewStore[*model.AppointmentType]())
	ctx := context.Background()

	created := repo.Create(ctx, "user-1", &model.AppointmentType{Label: "Initial consultation"})
	assert.Contains(t, created.ID, "aty_")

	label := "Follow-up"
	updated, err := repo.Update(ctx, "user-1", created.ID, &model.UpdateAppointmentTypeRequest{Label: &label})
	require.NoError(t, err)
	assert.Equal(t, "Follow-up", updated.Label)

	assert.True(t, repo.Delete(ctx, "user-1", created.ID))
	assert.Empty(t, repo.List(ctx, "user-1"))
}
