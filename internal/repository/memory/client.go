package memory

import (
	"context"
	"strings"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

type ClientRepository struct {
	*Repository[*model.Client]
}

func NewClientRepository(store *Store[*model.Client]) *ClientRepository {
	return &ClientRepository{Repository: NewRepository(store, "cli")}
}

func (r *ClientRepository) Update(ctx context.Context, userID, id string, req *model.UpdateClientRequest) (*model.Client, error) {
	return r.Repository.Update(ctx, userID, id, func(c *model.Client) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Birthdate != nil {
			c.Birthdate = *req.Birthdate
		}
		if req.Notes != nil {
			c.Notes = *req.Notes
		}
	})
}

// Search matches the query case-insensitively as a substring of name,
// phone or email. An empty or whitespace-only query returns everything.
func (r *ClientRepository) Search(ctx context.Context, userID, query string) []*model.Client {
	clients := r.List(ctx, userID)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	matched := make([]*model.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matched = append(matched, c)
		}
	}
	return matched
}
