package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository"
)

// Repository provides the CRUD operations common to all entity kinds
// against a per-user store. Every method is scoped by an explicit userID;
// no call can observe or mutate another user's entities. Specialized
// repositories embed a Repository and add query methods on top of List.
// Methods are safe for concurrent use; the store's mutex covers every
// load-mutate-save sequence.
type Repository[T model.Owned] struct {
	store  *Store[T]
	prefix string
}

// NewRepository creates a repository over store. prefix namespaces the
// generated IDs per entity kind so IDs never collide across kinds.
func NewRepository[T model.Owned](store *Store[T], prefix string) *Repository[T] {
	return &Repository[T]{store: store, prefix: prefix}
}

func (r *Repository[T]) nextID() string {
	return fmt.Sprintf("%s_%s", r.prefix, uuid.NewString())
}

// List returns all entities owned by the user in insertion order. It never
// fails; an unknown user yields an empty slice.
func (r *Repository[T]) List(ctx context.Context, userID string) []T {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entities := r.store.load(userID)
	out := make([]T, len(entities))
	copy(out, entities)
	return out
}

// Get looks an entity up within the user's entities only. Absence,
// including an id owned by another user, is reported as false.
func (r *Repository[T]) Get(ctx context.Context, userID, id string) (T, bool) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.load(userID) {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns a fresh id and the owning user, appends the entity to the
// user's sequence and returns it. There is no idempotency key: calling
// Create twice stores two entities.
func (r *Repository[T]) Create(ctx context.Context, userID string, entity T) T {
	entity.SetEntityID(r.nextID())
	entity.SetOwnerID(userID)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.save(userID, append(r.store.load(userID), entity))
	return entity
}

// Update locates the entity and applies merge to it in place. merge must
// only overwrite the fields the caller supplied; everything else is
// preserved. Returns repository.ErrNotFound when the id is absent for the
// user, including when the user has no entities at all. Last write wins;
// there is no version check.
func (r *Repository[T]) Update(ctx context.Context, userID, id string, merge func(T)) (T, error) {
	var zero T
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entities := r.store.load(userID)
	if len(entities) == 0 {
		return zero, repository.ErrNotFound
	}
	for _, e := range entities {
		if e.EntityID() == id {
			merge(e)
			r.store.save(userID, entities)
			return e, nil
		}
	}
	return zero, repository.ErrNotFound
}

// Delete removes the entity if the user owns it. Deleting a nonexistent id
// is not exceptional: it returns false and mutates nothing.
func (r *Repository[T]) Delete(ctx context.Context, userID, id string) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entities := r.store.load(userID)
	for i, e := range entities {
		if e.EntityID() == id {
			r.store.save(userID, append(entities[:i:i], entities[i+1:]...))
			return true
		}
	}
	return false
}
