package model

// Base contains the identity fields shared by all models. Every entity is
// owned by exactly one user; both fields are assigned by the repository at
// creation and never change afterwards.
type Base struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

func (b *Base) EntityID() string         { return b.ID }
func (b *Base) OwnerID() string          { return b.UserID }
func (b *Base) SetEntityID(id string)    { b.ID = id }
func (b *Base) SetOwnerID(userID string) { b.UserID = userID }

// Owned is implemented by every entity kept in a per-user store.
type Owned interface {
	EntityID() string
	OwnerID() string
	SetEntityID(id string)
	SetOwnerID(userID string)
}
