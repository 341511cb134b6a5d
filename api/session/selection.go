/* selection.go
 * Contains the mode selection step of a lookup. A Selection holds the confirmed player's match batch until the
 * owner picks a mode, then hands a filtered list to a new Viewer
 */

package session

import (
	"fmt"
	"time"
	"valorant-bot/api/external"
	"valorant-bot/api/logic"
	"valorant-bot/api/shared"

	"github.com/google/uuid"
)

type Selection struct {
	guard
	ID       string
	Identity shared.PlayerIdentity
	batch    []external.MatchRecord
}

// NewSelection creates the mode selection state for a confirmed player
func NewSelection(ownerID string, identity shared.PlayerIdentity, batch []external.MatchRecord, now func() time.Time) *Selection {
	s := &Selection{
		ID:       uuid.NewString(),
		Identity: identity,
		batch:    batch,
	}
	s.begin(ownerID, now)
	return s
}

// Choose applies the owner's mode pick.
// Preconditions: receives the id of the acting user and the chosen mode
// Postconditions: returns a Viewer positioned on the first match. Returns shared.ErrSessionExpired,
// shared.ErrUnauthorizedInteractor or shared.ErrNoMatchesForMode without changing state otherwise.
// The selection stays open so the owner can pick another mode
func (s *Selection) Choose(actorID string, mode shared.GameMode) (*Viewer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.admit(actorID); err != nil {
		return nil, err
	}
	s.touch()

	filtered := logic.FilterByMode(s.batch, mode)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrNoMatchesForMode, mode)
	}

	pager, err := NewPaginator(filtered, s.Identity, mode)
	if err != nil {
		return nil, err
	}
	return newViewer(s.ownerID, pager, s.now), nil
}
