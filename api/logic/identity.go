/* identity.go
 * Contains the logic for turning user supplied text into a player identity
 */

package logic

import (
	"fmt"
	"strings"
	"valorant-bot/api/shared"
)

// ParseIdentity splits "name#tag" into a PlayerIdentity.
// Preconditions: receives the raw argument the user typed
// Postconditions: returns the identity with both parts trimmed, or an error wrapping shared.ErrUserInput when the
// separator is missing or appears more than once. Empty parts are passed through and fail at the API
func ParseIdentity(input string) (shared.PlayerIdentity, error) {
	if strings.Count(input, "#") != 1 {
		return shared.PlayerIdentity{}, fmt.Errorf("%w: %q", shared.ErrUserInput, input)
	}

	name, tag, _ := strings.Cut(input, "#")
	return shared.PlayerIdentity{
		Name: strings.TrimSpace(name),
		Tag:  strings.TrimSpace(tag),
	}, nil
}
