package model

// AppointmentType is a per-user catalog entry for the selectable kinds of
// appointment (e.g. "initial consultation", "follow-up").
type AppointmentType struct {
	Base
	Label string `json:"label"`
}

type CreateAppointmentTypeRequest struct {
	Label string `json:"label" validate:"required,min=2,max=100"`
}

type UpdateAppointmentTypeRequest struct {
	Label *string `json:"label" validate:"omitempty,min=2,max=100"`
}
