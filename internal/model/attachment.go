package model

import "time"

// Attachment metadata for a file kept against a client record. DateUploaded
// is system-assigned at creation; caller-supplied values are ignored.
type Attachment struct {
	Base
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	DateUploaded time.Time `json:"date_uploaded"`
}

type CreateAttachmentRequest struct {
	ClientID string `json:"client_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
}
