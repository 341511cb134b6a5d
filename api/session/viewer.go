/* viewer.go
 * Contains the interactive match viewer: a paginator guarded by owner and inactivity checks
 */

package session

import (
	"time"
	"valorant-bot/api/logic"

	"github.com/google/uuid"
)

// Direction is a navigation action on a Viewer
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

type Viewer struct {
	guard
	ID    string
	pager *Paginator
}

func newViewer(ownerID string, pager *Paginator, now func() time.Time) *Viewer {
	v := &Viewer{
		ID:    uuid.NewString(),
		pager: pager,
	}
	v.begin(ownerID, now)
	return v
}

// NewViewer creates a viewer over an existing paginator
func NewViewer(ownerID string, pager *Paginator, now func() time.Time) *Viewer {
	return newViewer(ownerID, pager, now)
}

// Current renders the page the viewer is on
func (v *Viewer) Current() (logic.Document, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Render()
}

// Index returns the zero based page index
func (v *Viewer) Index() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Index()
}

// Count returns the number of pages
func (v *Viewer) Count() int {
	return v.pager.Count()
}

// Navigate moves one page in dir.
// Preconditions: receives the id of the acting user and the direction
// Postconditions: returns moved=true with the new page when the index changed. At a list edge moved is false and
// nothing is rendered, the caller still has to acknowledge the action. Returns shared.ErrSessionExpired or
// shared.ErrUnauthorizedInteractor without changing state. A render error is returned alongside the partial page
func (v *Viewer) Navigate(actorID string, dir Direction) (doc logic.Document, moved bool, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.admit(actorID); err != nil {
		return logic.Document{}, false, err
	}
	v.touch()

	switch dir {
	case Next:
		moved = v.pager.Advance()
	case Previous:
		moved = v.pager.Retreat()
	}
	if !moved {
		return logic.Document{}, false, nil
	}

	doc, err = v.pager.Render()
	return doc, true, err
}
