package model

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type AppointmentLocation string

const (
	AppointmentLocationOnline    AppointmentLocation = "online"
	AppointmentLocationInPerson  AppointmentLocation = "in_person"
	AppointmentLocationHomeVisit AppointmentLocation = "home_visit"
)

// Appointment dates are ISO calendar dates (YYYY-MM-DD), which keeps
// range queries a plain lexicographic comparison.
type Appointment struct {
	Base
	ClientID   string              `json:"client_id"`
	ClientName string              `json:"client_name"`
	Type       string              `json:"type"`
	Date       string              `json:"date"`
	Time       string              `json:"time"`
	Duration   int                 `json:"duration"`
	Location   AppointmentLocation `json:"location"`
	Status     AppointmentStatus   `json:"status"`
	Notes      string              `json:"notes,omitempty"`
}

type CreateAppointmentRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Location string `json:"location" validate:"required,oneof=online in_person home_visit"`
	Status   string `json:"status" validate:"required,oneof=scheduled confirmed completed canceled no_show"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type UpdateAppointmentRequest struct {
	ClientID *string `json:"client_id"`
	Type     *string `json:"type"`
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     *string `json:"time" validate:"omitempty,datetime=15:04"`
	Duration *int    `json:"duration" validate:"omitempty,gt=0"`
	Location *string `json:"location" validate:"omitempty,oneof=online in_person home_visit"`
	Status   *string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed canceled no_show"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}
