package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/domain/entity"
	"pixelity_site/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ErrViewNotFound is returned for unknown or expired page views.
var ErrViewNotFound = errors.New("view not found")

type viewEntry struct {
	mu   sync.Mutex
	view entity.View
}

func (e *viewEntry) snapshot() entity.View {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := e.view
	if v.Info != nil {
		info := *v.Info
		v.Info = &info
	}
	return v
}

// Registry implements port.ViewRegistry. Each page load opens a view; a view that is
// not touched for ttl is forgotten, so nothing survives past the page's lifetime.
type Registry struct {
	connector port.WalletConnector
	views     *cache.Cache
	logger    port.Logger
}

// NewRegistry creates a registry whose views expire after ttl of inactivity.
func NewRegistry(connector port.WalletConnector, ttl time.Duration, l port.Logger) *Registry {
	r := &Registry{
		connector: connector,
		views:     cache.New(ttl, ttl),
		logger:    l.With("component", "view_registry"),
	}
	r.views.OnEvicted(func(string, interface{}) {
		metrics.SetOpenViews(r.views.ItemCount())
	})
	return r
}

// Open starts a new page view in the Disconnected state.
func (r *Registry) Open() entity.View {
	e := &viewEntry{view: entity.View{
		ID:        uuid.NewString(),
		State:     entity.Disconnected,
		CreatedAt: time.Now().UTC(),
	}}
	r.views.Set(e.view.ID, e, cache.DefaultExpiration)
	metrics.SetOpenViews(r.views.ItemCount())
	r.logger.Debug("View opened", "view", e.view.ID)
	return e.snapshot()
}

// Get returns a snapshot of the view.
func (r *Registry) Get(viewID string) (entity.View, error) {
	e, err := r.touch(viewID)
	if err != nil {
		return entity.View{}, err
	}
	return e.snapshot(), nil
}

// Connect runs the wallet connector and records the result on the view only when it
// succeeds. On failure the view is returned unchanged together with the error.
func (r *Registry) Connect(ctx context.Context, viewID string) (entity.View, error) {
	e, err := r.touch(viewID)
	if err != nil {
		return entity.View{}, err
	}

	info, err := r.connector.Connect(ctx)
	if err != nil {
		r.logger.Info("View stays disconnected", "view", viewID, "kind", entity.ConnectionErrorKindOf(err))
		return e.snapshot(), err
	}

	e.mu.Lock()
	e.view.State = entity.Connected
	e.view.Info = &info
	e.mu.Unlock()
	return e.snapshot(), nil
}

// SetHover toggles the details disclosure. It never touches the connection state or the provider.
func (r *Registry) SetHover(viewID string, visible bool) (entity.View, error) {
	e, err := r.touch(viewID)
	if err != nil {
		return entity.View{}, err
	}
	e.mu.Lock()
	e.view.Hover = visible
	e.mu.Unlock()
	return e.snapshot(), nil
}

// Len reports how many views are held.
func (r *Registry) Len() int {
	return r.views.ItemCount()
}

func (r *Registry) touch(viewID string) (*viewEntry, error) {
	if _, err := uuid.Parse(viewID); err != nil {
		return nil, ErrViewNotFound
	}
	v, ok := r.views.Get(viewID)
	if !ok {
		return nil, ErrViewNotFound
	}
	e := v.(*viewEntry)
	r.views.Set(viewID, e, cache.DefaultExpiration)
	return e, nil
}
