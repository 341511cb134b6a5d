/* models.go
 * This file contain the structs and helper functions that are shared between sub packages
 */

package shared

import "strings"

// User is the chat platform user that issued a command or interaction
type User struct {
	UserID   string
	Username string
	GuildID  string
}

// PlayerIdentity is a Riot id split into its name and tag parts
type PlayerIdentity struct {
	Name string
	Tag  string
}

func (p PlayerIdentity) String() string {
	return p.Name + "#" + p.Tag
}

// Matches reports whether name and tag equal the identity, ignoring case
func (p PlayerIdentity) Matches(name string, tag string) bool {
	return strings.EqualFold(p.Name, name) && strings.EqualFold(p.Tag, tag)
}

// GameMode is the keyword the statistics API uses for a game variant
type GameMode string

const (
	Competitive GameMode = "competitive"
	Unrated     GameMode = "unrated"
	Swiftplay   GameMode = "swiftplay"
)

// Modes lists the selectable game modes in menu order
var Modes = []GameMode{Competitive, Unrated, Swiftplay}

var modeLabels = map[GameMode]string{
	Competitive: "Competitive",
	Unrated:     "Unrated",
	Swiftplay:   "Swiftplay",
}

// Label returns the display label of the mode, or the raw keyword for unknown modes
func (m GameMode) Label() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return string(m)
}

// Valid reports whether m is one of the selectable modes
func (m GameMode) Valid() bool {
	_, ok := modeLabels[m]
	return ok
}
