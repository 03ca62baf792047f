package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

// ErrNotFound is returned by Update when no entity with the given id exists
// for the user. Reads report absence through their comma-ok result instead.
var ErrNotFound = errors.New("entity not found")

type ClientRepository interface {
	List(ctx context.Context, userID string) []*model.Client
	Get(ctx context.Context, userID, id string) (*model.Client, bool)
	Create(ctx context.Context, userID string, client *model.Client) *model.Client
	Update(ctx context.Context, userID, id string, req *model.UpdateClientRequest) (*model.Client, error)
	Delete(ctx context.Context, userID, id string) bool
	Search(ctx context.Context, userID, query string) []*model.Client
}

type AppointmentRepository interface {
	List(ctx context.Context, userID string) []*model.Appointment
	Get(ctx context.Context, userID, id string) (*model.Appointment, bool)
	Create(ctx context.Context, userID string, appointment *model.Appointment) *model.Appointment
	// Update applies req to the stored appointment. clientName is the
	// resolved name of req.ClientID and is written alongside it; it is
	// ignored when req.ClientID is nil.
	Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentRequest, clientName string) (*model.Appointment, error)
	Delete(ctx context.Context, userID, id string) bool
	ListByDate(ctx context.Context, userID, date string) []*model.Appointment
	ListByDateRange(ctx context.Context, userID, start, end string) []*model.Appointment
	ListByClient(ctx context.Context, userID, clientID string) []*model.Appointment
	ListByStatus(ctx context.Context, userID string, status model.AppointmentStatus) []*model.Appointment
}

type FinancialRepository interface {
	List(ctx context.Context, userID string) []*model.FinancialRecord
	Get(ctx context.Context, userID, id string) (*model.FinancialRecord, bool)
	Create(ctx context.Context, userID string, record *model.FinancialRecord) *model.FinancialRecord
	Update(ctx context.Context, userID, id string, req *model.UpdateFinancialRecordRequest) (*model.FinancialRecord, error)
	Delete(ctx context.Context, userID, id string) bool
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) []*model.FinancialRecord
	ListByClient(ctx context.Context, userID, clientID string) []*model.FinancialRecord
	ListByCategory(ctx context.Context, userID, category string) []*model.FinancialRecord
	Summary(ctx context.Context, userID string, start, end time.Time) *model.FinancialSummary
}

type AttachmentRepository interface {
	List(ctx context.Context, userID string) []*model.Attachment
	Get(ctx context.Context, userID, id string) (*model.Attachment, bool)
	Create(ctx context.Context, userID string, attachment *model.Attachment) *model.Attachment
	Delete(ctx context.Context, userID, id string) bool
	ListByClient(ctx context.Context, userID, clientID string) []*model.Attachment
}

type AppointmentTypeRepository interface {
	List(ctx context.Context, userID string) []*model.AppointmentType
	Get(ctx context.Context, userID, id string) (*model.AppointmentType, bool)
	Create(ctx context.Context, userID string, appointmentType *model.AppointmentType) *model.AppointmentType
	Update(ctx context.Context, userID, id string, req *model.UpdateAppointmentTypeRequest) (*model.AppointmentType, error)
	Delete(ctx context.Context, userID, id string) bool
}
