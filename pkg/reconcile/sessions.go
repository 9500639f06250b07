package reconcile

import (
	"context"
	"fmt"
	"sync"

	"receipt-ledger/domain"
)

// Sessions keeps the open workspaces keyed by receipt id.
type Sessions struct {
	mu      sync.Mutex
	store   Store
	vendors VendorResolver
	open    map[string]*Workspace
	locale  string
}

func NewSessions(store Store, vendors VendorResolver) *Sessions {
	return &Sessions{
		store:   store,
		vendors: vendors,
		open:    map[string]*Workspace{},
	}
}

// WithLocale sets the locale new workspaces render display values in.
func (s *Sessions) WithLocale(locale string) *Sessions {
	s.locale = locale
	return s
}

// Open loads the receipt fresh from the store, discarding any workspace
// already open for it.
func (s *Sessions) Open(ctx context.Context, id string) (*Workspace, error) {
	w, err := OpenWorkspace(ctx, s.store, s.vendors, id)
	if err != nil {
		return nil, err
	}
	w.SetLocale(s.locale)

	s.mu.Lock()
	s.open[id] = w
	s.mu.Unlock()
	return w, nil
}

func (s *Sessions) Get(id string) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.open[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkspaceNotOpen, id)
	}
	return w, nil
}

// Close drops the workspace and its unsaved edits.
func (s *Sessions) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrWorkspaceNotOpen, id)
	}
	delete(s.open, id)
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}
