/* errors.go
 * Error taxonomy shared by the api packages and the bot adapter. Lower layers wrap these with %w and the
 * bot layer classifies them with errors.Is to pick the user facing message
 */

package shared

import "errors"

var (
	// ErrUserInput is returned for a malformed name#tag argument
	ErrUserInput = errors.New("invalid player identifier, expected name#tag")
	// ErrPlayerNotFound is returned when the statistics API answers with a non-200 status
	ErrPlayerNotFound = errors.New("player not found")
	// ErrTransient covers network failures and unparseable API responses
	ErrTransient = errors.New("statistics api unavailable")
	// ErrNoMatchesForMode is returned when the mode filter leaves nothing to show
	ErrNoMatchesForMode = errors.New("no matches found for this mode")
	// ErrUnauthorizedInteractor is returned when someone other than the session owner drives a session
	ErrUnauthorizedInteractor = errors.New("only the command author can use this session")
	// ErrSessionExpired is returned for actions on a session that has been idle for too long
	ErrSessionExpired = errors.New("session expired")
	// ErrDataInconsistency is returned when the looked up player is missing from a match record
	ErrDataInconsistency = errors.New("player missing from match record")
)
