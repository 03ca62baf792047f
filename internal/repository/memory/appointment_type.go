package memory

import (
	"context"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

// AppointmentTypeRepository is plain CRUD; the type catalog has no queries
// beyond listing.
type AppointmentTypeRepository struct {
	*Repository[*model.AppointmentType]
}

func NewAppointmentTypeRepository(store *Store[*model.AppointmentType]) *AppointmentTypeRepository {
	return &AppointmentTypeRepository{Repository: NewRepository(store, "aty")}
}

func (r *AppointmentTypeRepository) Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentTypeRequest) (*model.AppointmentType, error) {
	return r.Repository.Update(ctx, userID, id, func(t *model.AppointmentType) {
		if req.Label != nil {
			t.Label = *req.Label
		}
	})
}
