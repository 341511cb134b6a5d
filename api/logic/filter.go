/* filter.go
 * Contains the mode filter applied to a player's match batch
 */

package logic

import (
	"strings"
	"valorant-bot/api/external"
	"valorant-bot/api/shared"
)

// MaxMatches is the number of matches a session pages through
const MaxMatches = 5

// FilterByMode keeps the matches whose mode label equals the mode keyword (ignoring case), in input order,
// capped at MaxMatches.
// Preconditions: receives the unfiltered batch (most recent first) and the selected mode
// Postconditions: returns a new slice, possibly empty. The caller must check for the empty case
func FilterByMode(batch []external.MatchRecord, mode shared.GameMode) []external.MatchRecord {
	filtered := make([]external.MatchRecord, 0, MaxMatches)
	for _, match := range batch {
		if len(filtered) == MaxMatches {
			break
		}
		if strings.ToLower(match.Metadata.Mode) == strings.ToLower(string(mode)) {
			filtered = append(filtered, match)
		}
	}
	return filtered
}
