package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

func seedClients(t *testing.T) (*ClientRepository, context.Context) {
	t.Helper()
	repo := NewClientRepository(NewStore[*model.Client]())
	ctx := context.Background()

	repo.Create(ctx, "user-1", &model.Client{Name: "Maria Silva", Phone: "11999990000", Email: "maria@example.com"})
	repo.Create(ctx, "user-1", &model.Client{Name: "João Pereira", Phone: "21988887777", Email: "joao@example.com"})
	repo.Create(ctx, "user-1", &model.Client{Name: "Ana Costa", Phone: "31977776666"})
	return repo, ctx
}

func TestClientSearchByName(t *testing.T) {
	repo, ctx := seedClients(t)

	results := repo.Search(ctx, "user-1", "aria")
	require.Len(t, results, 1)
	assert.Equal(t, "Maria Silva", results[0].Name)
}

func TestClientSearchIsCaseInsensitive(t *testing.T) {
	repo, ctx := seedClients(t)

	results := repo.Search(ctx, "user-1", "MARIA")
	require.Len(t, results, 1)
	assert.Equal(t, "Maria Silva", results[0].Name)
}

func TestClientSearchByPhoneAndEmail(t *testing.T) {
	repo, ctx := seedClients(t)

	byPhone := repo.Search(ctx, "user-1", "2198888")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "João Pereira", byPhone[0].Name)

	byEmail := repo.Search(ctx, "user-1", "joao@")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "João Pereira", byEmail[0].Name)
}

func TestClientSearchEmptyQueryReturnsAll(t *testing.T) {
	repo, ctx := seedClients(t)

	assert.Len(t, repo.Search(ctx, "user-1", ""), 3)
	assert.Len(t, repo.Search(ctx, "user-1", "   "), 3)
}

func TestClientUpdateMergesPointerFields(t *testing.T) {
	repo, ctx := seedClients(t)
	clients := repo.List(ctx, "user-1")
	require.NotEmpty(t, clients)

	notes := "new notes"
	updated, err := repo.Update(ctx, "user-1", clients[0].ID, &model.UpdateClientRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, "new notes", updated.Notes)
	assert.Equal(t, "Maria Silva", updated.Name)
	assert.Equal(t, "maria@example.com", updated.Email)
}
