/* guard.go
 * Contains the owner and inactivity checks shared by every interactive session
 */

package session

import (
	"sync"
	"time"
	"valorant-bot/api/shared"
)

// Timeout is how long a session stays usable without any action from its owner
const Timeout = 60 * time.Second

// guard serialises actions on one session. discordgo dispatches events on their own goroutines, so two clicks on
// the same message can race
type guard struct {
	mu         sync.Mutex
	ownerID    string
	lastActive time.Time
	now        func() time.Time
}

func (g *guard) begin(ownerID string, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	g.ownerID = ownerID
	g.now = now
	g.lastActive = now()
}

// admit checks an action from actorID. The caller must hold mu.
// Expiry is checked first so an expired session ignores everyone
func (g *guard) admit(actorID string) error {
	if g.now().Sub(g.lastActive) >= Timeout {
		return shared.ErrSessionExpired
	}
	if actorID != g.ownerID {
		return shared.ErrUnauthorizedInteractor
	}
	return nil
}

func (g *guard) touch() {
	g.lastActive = g.now()
}

// OwnerID returns the id of the user that started the session
func (g *guard) OwnerID() string {
	return g.ownerID
}

// Expired reports whether the session has been idle for Timeout or longer
func (g *guard) Expired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.now().Sub(g.lastActive) >= Timeout
}
