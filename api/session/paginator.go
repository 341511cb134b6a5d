/* paginator.go
 * Contains the pagination controller: an index over a filtered match list bounded by [0, count-1]
 */

package session

import (
	"errors"
	"valorant-bot/api/external"
	"valorant-bot/api/logic"
	"valorant-bot/api/shared"
)

// ErrEmptyPaginator is returned when a paginator is built from an empty match list
var ErrEmptyPaginator = errors.New("paginator needs at least one match")

type Paginator struct {
	matches  []external.MatchRecord
	index    int
	identity shared.PlayerIdentity
	mode     shared.GameMode
}

// NewPaginator creates a paginator positioned on the first match.
// Preconditions: receives the filtered match list, which must not be empty
// Postconditions: returns the paginator at index 0, or ErrEmptyPaginator
func NewPaginator(matches []external.MatchRecord, identity shared.PlayerIdentity, mode shared.GameMode) (*Paginator, error) {
	if len(matches) == 0 {
		return nil, ErrEmptyPaginator
	}
	return &Paginator{
		matches:  matches,
		identity: identity,
		mode:     mode,
	}, nil
}

func (p *Paginator) Index() int {
	return p.index
}

func (p *Paginator) Count() int {
	return len(p.matches)
}

// Advance moves to the next match. Returns false and leaves the index unchanged on the last page
func (p *Paginator) Advance() bool {
	if p.index >= len(p.matches)-1 {
		return false
	}
	p.index++
	return true
}

// Retreat moves to the previous match. Returns false and leaves the index unchanged on the first page
func (p *Paginator) Retreat() bool {
	if p.index <= 0 {
		return false
	}
	p.index--
	return true
}

// Render renders the current page. See logic.Render for the error contract
func (p *Paginator) Render() (logic.Document, error) {
	return logic.Render(p.matches[p.index], p.identity, p.mode, p.index, len(p.matches))
}
