package model

type Client struct {
	Base
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Birthdate string `json:"birthdate,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type CreateClientRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"required,min=8"`
	Email     string `json:"email" validate:"omitempty,email"`
	Birthdate string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Notes     string `json:"notes" validate:"max=2000"`
}

type UpdateClientRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	Phone     *string `json:"phone" validate:"omitempty,min=8"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}
