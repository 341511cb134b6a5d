/* api.go
 * This file contains the public methods the bot uses to run a lookup: confirm the player, pick a mode, page through
 * matches. The chat platform never reaches the sub packages directly
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"time"
	"valorant-bot/api/external"
	"valorant-bot/api/logic"
	"valorant-bot/api/session"
	"valorant-bot/api/shared"
	"valorant-bot/api/store"
	"valorant-bot/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// MatchFetcher is the statistics API dependency, implemented by *external.Client
type MatchFetcher interface {
	FetchMatches(ctx context.Context, region string, name string, tag string) ([]external.MatchRecord, error)
}

var _ MatchFetcher = (*external.Client)(nil)

// API provides methods for running lookups on behalf of chat users
type API struct {
	Fetcher  MatchFetcher
	Store    store.Interface
	Sessions *session.Registry
	Region   string
	// Now is the clock handed to new sessions, nil means time.Now
	Now    func() time.Time
	logger zerolog.Logger
}

// NewAPI creates a new API instance with the provided dependencies
func NewAPI(fetcher MatchFetcher, st store.Interface, sessions *session.Registry, logger zerolog.Logger) *API {
	if st == nil {
		st = store.NopStore{}
	}
	return &API{
		Fetcher:  fetcher,
		Store:    st,
		Sessions: sessions,
		Region:   config.Region,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// StartLookup parses the user's name#tag and confirms the player exists.
// Preconditions: receives the requesting user and the raw name#tag argument
// Postconditions: returns an open Selection holding the player's match batch. Returns an error wrapping
// shared.ErrUserInput (no network call made), shared.ErrPlayerNotFound or shared.ErrTransient otherwise
func (a *API) StartLookup(ctx context.Context, user shared.User, input string) (*session.Selection, error) {
	identity, err := logic.ParseIdentity(input)
	if err != nil {
		a.record(ctx, user, identity, "", store.OutcomeInvalidInput, err)
		return nil, err
	}

	batch, err := a.Fetcher.FetchMatches(ctx, a.Region, identity.Name, identity.Tag)
	if err != nil {
		outcome := store.OutcomePlayerNotFound
		event := a.logger.Info()
		if !errors.Is(err, shared.ErrPlayerNotFound) {
			outcome = store.OutcomeTransientError
			event = a.logger.Error()
		}
		event.Err(err).
			Str("user_id", user.UserID).
			Str("player", identity.String()).
			Msg("player lookup failed")
		a.record(ctx, user, identity, "", outcome, err)
		return nil, err
	}

	selection := session.NewSelection(user.UserID, identity, batch, a.Now)
	a.Sessions.PutSelection(selection)

	a.logger.Debug().
		Str("user_id", user.UserID).
		Str("player", identity.String()).
		Str("selection_id", selection.ID).
		Int("match_count", len(batch)).
		Msg("player confirmed")
	a.record(ctx, user, identity, "", store.OutcomeConfirmed, nil)
	return selection, nil
}

// ChooseMode applies a mode pick to an open selection.
// Preconditions: receives the acting user, the selection id from the menu and the chosen mode
// Postconditions: returns a registered Viewer and its first page. Returns shared.ErrSessionExpired for unknown or
// expired selections, shared.ErrUnauthorizedInteractor for anyone but the owner and shared.ErrNoMatchesForMode when
// the filter leaves nothing
func (a *API) ChooseMode(ctx context.Context, user shared.User, selectionID string, mode shared.GameMode) (*session.Viewer, logic.Document, error) {
	if !mode.Valid() {
		return nil, logic.Document{}, fmt.Errorf("%w: unknown mode %q", shared.ErrUserInput, mode)
	}

	selection, ok := a.Sessions.Selection(selectionID)
	if !ok {
		return nil, logic.Document{}, shared.ErrSessionExpired
	}

	viewer, err := selection.Choose(user.UserID, mode)
	if err != nil {
		if errors.Is(err, shared.ErrNoMatchesForMode) {
			a.record(ctx, user, selection.Identity, mode, store.OutcomeNoMatches, err)
		}
		return nil, logic.Document{}, err
	}
	a.Sessions.PutViewer(viewer)

	doc, err := viewer.Current()
	a.checkRender(err, viewer.ID)

	a.logger.Debug().
		Str("user_id", user.UserID).
		Str("player", selection.Identity.String()).
		Str("mode", string(mode)).
		Str("viewer_id", viewer.ID).
		Int("pages", viewer.Count()).
		Msg("match viewer opened")
	a.record(ctx, user, selection.Identity, mode, store.OutcomeShown, nil)
	return viewer, doc, nil
}

// Navigate moves an open viewer one page.
// Preconditions: receives the acting user, the viewer id from the button and the direction
// Postconditions: returns the new page and moved=true when the page changed; at an edge moved is false. Returns
// shared.ErrSessionExpired for unknown or expired viewers and shared.ErrUnauthorizedInteractor for anyone but the owner
func (a *API) Navigate(user shared.User, viewerID string, dir session.Direction) (logic.Document, bool, error) {
	viewer, ok := a.Sessions.Viewer(viewerID)
	if !ok {
		return logic.Document{}, false, shared.ErrSessionExpired
	}

	doc, moved, err := viewer.Navigate(user.UserID, dir)
	if err != nil && !errors.Is(err, shared.ErrDataInconsistency) {
		return logic.Document{}, false, err
	}
	a.checkRender(err, viewerID)
	return doc, moved, nil
}

// OpenSessions returns the number of selections and viewers currently held
func (a *API) OpenSessions() int {
	return a.Sessions.Len()
}

// checkRender logs a render that could not find the player. The partial page is still shown
func (a *API) checkRender(err error, viewerID string) {
	if err != nil {
		a.logger.Warn().Err(err).Str("viewer_id", viewerID).Msg("rendered partial match page")
	}
}

// record writes an audit entry. Failures are logged and otherwise ignored
func (a *API) record(ctx context.Context, user shared.User, identity shared.PlayerIdentity, mode shared.GameMode, outcome store.Outcome, cause error) {
	rec := store.LookupRecord{
		UserID:   user.UserID,
		Username: user.Username,
		GuildID:  user.GuildID,
		Name:     identity.Name,
		Tag:      identity.Tag,
		Mode:     string(mode),
		Outcome:  outcome,
	}
	if cause != nil {
		rec.Detail = cause.Error()
	}
	if err := a.Store.RecordLookup(ctx, rec); err != nil {
		a.logger.Warn().Err(err).Str("user_id", user.UserID).Msg("failed to record lookup")
	}
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(external.NewClient, fx.As(new(MatchFetcher)))),
	fx.Provide(NewAPI),
)
