/* registry.go
 * Contains the in-memory registry of open selections and viewers. Entries expire after Timeout without use so
 * abandoned sessions are garbage collected
 */

package session

import (
	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

type Registry struct {
	entries *cache.Cache
}

// NewRegistry creates an empty registry that evicts entries idle for Timeout
func NewRegistry() *Registry {
	return &Registry{entries: cache.New(Timeout, 2*Timeout)}
}

func selectionKey(id string) string { return "selection:" + id }
func viewerKey(id string) string    { return "viewer:" + id }

func (r *Registry) PutSelection(s *Selection) {
	r.entries.Set(selectionKey(s.ID), s, cache.DefaultExpiration)
}

// Selection returns the selection with the given id and extends its lifetime
func (r *Registry) Selection(id string) (*Selection, bool) {
	v, ok := r.entries.Get(selectionKey(id))
	if !ok {
		return nil, false
	}
	s := v.(*Selection)
	r.entries.Set(selectionKey(id), s, cache.DefaultExpiration)
	return s, true
}

func (r *Registry) PutViewer(v *Viewer) {
	r.entries.Set(viewerKey(v.ID), v, cache.DefaultExpiration)
}

// Viewer returns the viewer with the given id and extends its lifetime
func (r *Registry) Viewer(id string) (*Viewer, bool) {
	v, ok := r.entries.Get(viewerKey(id))
	if !ok {
		return nil, false
	}
	viewer := v.(*Viewer)
	r.entries.Set(viewerKey(id), viewer, cache.DefaultExpiration)
	return viewer, true
}

// Remove drops a selection or viewer by id
func (r *Registry) Remove(id string) {
	r.entries.Delete(selectionKey(id))
	r.entries.Delete(viewerKey(id))
}

// Len returns the number of open sessions, including ones expired but not yet evicted
func (r *Registry) Len() int {
	return r.entries.ItemCount()
}

var Module = fx.Provide(NewRegistry)
