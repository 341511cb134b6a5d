/* modes.go
 * Contains the logic for matching a user typed game mode against the selectable modes
 */

package logic

import (
	"sort"
	"strings"
	"valorant-bot/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParseMode resolves user input such as "comp" or "Swift" to a game mode.
// Preconditions: receives free form text
// Postconditions: returns the mode and true when the input matches exactly or fuzzily matches exactly one mode
// keyword or label, else returns false
func ParseMode(input string) (shared.GameMode, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", false
	}

	// Exact keyword or label match wins
	lookup := make(map[string]shared.GameMode)
	var targets []string
	for _, mode := range shared.Modes {
		for _, name := range []string{string(mode), strings.ToLower(mode.Label())} {
			if _, seen := lookup[name]; seen {
				continue
			}
			lookup[name] = mode
			targets = append(targets, name)
		}
	}
	if mode, ok := lookup[input]; ok {
		return mode, true
	}

	ranks := fuzzy.RankFindFold(input, targets)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)

	// Reject input that is ambiguous between two different modes at the same distance
	best := lookup[ranks[0].Target]
	for _, r := range ranks[1:] {
		if r.Distance == ranks[0].Distance && lookup[r.Target] != best {
			return "", false
		}
	}
	return best, true
}
