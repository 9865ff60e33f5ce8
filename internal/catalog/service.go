package catalog

import (
	"context"

	"github.com/Bilal-AKAG/autogitignore/internal/logging"
	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
)

// Service resolves the template catalog for a session: the cached copy when
// one exists, otherwise a single remote fetch persisted best-effort.
type Service struct {
	client *Client
	store  *Store
}

// NewService wires a client and a cache store together.
func NewService(client *Client, store *Store) *Service {
	return &Service{client: client, store: store}
}

// Load returns the catalog snapshot. A persist failure after a successful
// fetch is logged and does not invalidate the snapshot.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	if snap, ok := s.store.Load(); ok {
		return snap, nil
	}
	snap, err := s.client.Fetch(ctx)
	if err != nil {
		events.Catalog.FetchError(err)
		return Snapshot{}, err
	}
	events.Catalog.Fetched(len(snap.Names))
	if err := s.store.Save(snap); err != nil {
		events.Catalog.PersistError(err)
		logging.Error(err)
	}
	return snap, nil
}
