package memory

import (
	"context"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

type AppointmentRepository struct {
	*Repository[*model.Appointment]
}

func NewAppointmentRepository(store *Store[*model.Appointment]) *AppointmentRepository {
	return &AppointmentRepository{Repository: NewRepository(store, "apt")}
}

// Update merges req into the stored appointment. The denormalized client
// name travels with the client id: when req.ClientID is set, clientName is
// stored with it, otherwise clientName is ignored.
func (r *AppointmentRepository) Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentRequest, clientName string) (*model.Appointment, error) {
	return r.Repository.Update(ctx, userID, id, func(a *model.Appointment) {
		if req.ClientID != nil {
			a.ClientID = *req.ClientID
			a.ClientName = clientName
		}
		if req.Type != nil {
			a.Type = *req.Type
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Time != nil {
			a.Time = *req.Time
		}
		if req.Duration != nil {
			a.Duration = *req.Duration
		}
		if req.Location != nil {
			a.Location = model.AppointmentLocation(*req.Location)
		}
		if req.Status != nil {
			a.Status = model.AppointmentStatus(*req.Status)
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}
	})
}

func (r *AppointmentRepository) ListByDate(ctx context.Context, userID, date string) []*model.Appointment {
	return r.filter(ctx, userID, func(a *model.Appointment) bool {
		return a.Date == date
	})
}

// ListByDateRange is inclusive on both ends. Dates are ISO strings, so the
// range check is a lexicographic comparison.
func (r *AppointmentRepository) ListByDateRange(ctx context.Context, userID, start, end string) []*model.Appointment {
	return r.filter(ctx, userID, func(a *model.Appointment) bool {
		return a.Date >= start && a.Date <= end
	})
}

func (r *AppointmentRepository) ListByClient(ctx context.Context, userID, clientID string) []*model.Appointment {
	return r.filter(ctx, userID, func(a *model.Appointment) bool {
		return a.ClientID == clientID
	})
}

func (r *AppointmentRepository) ListByStatus(ctx context.Context, userID string, status model.AppointmentStatus) []*model.Appointment {
	return r.filter(ctx, userID, func(a *model.Appointment) bool {
		return a.Status == status
	})
}

func (r *AppointmentRepository) filter(ctx context.Context, userID string, keep func(*model.Appointment) bool) []*model.Appointment {
	appointments := r.List(ctx, userID)
	out := make([]*model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
