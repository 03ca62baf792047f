package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository/memory"
	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

func newTestService(t *testing.T) (*Service, *memory.ClientRepository) {
	t.Helper()
	clientRepo := memory.NewClientRepository(memory.NewStore[*model.Client]())
	repo := memory.NewAppointmentRepository(memory.NewStore[*model.Appointment]())
	return NewService(repo, clientRepo, validator.New()), clientRepo
}

func validRequest(clientID string) *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		ClientID: clientID,
		Type:     "session",
		Date:     "2024-04-01",
		Time:     "09:30",
		Duration: 50,
		Location: "online",
		Status:   "scheduled",
	}
}

func TestCreateDenormalizesClientName(t *testing.T) {
	svc, clientRepo := newTestService(t)
	ctx := context.Background()

	client := clientRepo.Create(ctx, "user-1", &model.Client{Name: "Maria Silva", Phone: "11999990000"})

	appointment, err := svc.Create(ctx, "user-1", validRequest(client.ID))
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", appointment.ClientName)
	assert.Equal(t, client.ID, appointment.ClientID)
}

func TestCreateRejectsUnknownClient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "user-1", validRequest("cli_missing"))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateValidatesBeforeMutation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest("cli_whatever")
	req.Location = "teleport"

	_, err := svc.Create(ctx, "user-1", req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "location")

	assert.Empty(t, svc.List(ctx, "user-1"), "validation failure must not create anything")
}

func TestUpdateRefreshesDenormalizedName(t *testing.T) {
	svc, clientRepo := newTestService(t)
	ctx := context.Background()

	first := clientRepo.Create(ctx, "user-1", &model.Client{Name: "Maria Silva", Phone: "11999990000"})
	second := clientRepo.Create(ctx, "user-1", &model.Client{Name: "João Pereira", Phone: "21988887777"})

	appointment, err := svc.Create(ctx, "user-1", validRequest(first.ID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", appointment.ID, &model.UpdateAppointmentRequest{ClientID: &second.ID})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ClientID)
	assert.Equal(t, "João Pereira", updated.ClientName)

	// The refresh must be persisted, not only present on the returned value.
	stored, err := svc.Get(ctx, "user-1", appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "João Pereira", stored.ClientName)
}

func TestUpdateMissingAppointment(t *testing.T) {
	svc, _ := newTestService(t)

	status := "confirmed"
	_, err := svc.Update(context.Background(), "user-1", "apt_missing", &model.UpdateAppointmentRequest{Status: &status})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
