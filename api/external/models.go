/* models.go
 * This file contains the models used by the external package when decoding match history from the statistics API
 */

package external

import (
	"strings"
	"time"
)

// MatchesResponse is the body of GET /valorant/v3/matches/{region}/{name}/{tag}
type MatchesResponse struct {
	Status int           `json:"status"`
	Data   []MatchRecord `json:"data"`
}

// MatchRecord is one played match. Only the fields the bot renders are decoded
type MatchRecord struct {
	Metadata MatchMetadata `json:"metadata"`
	Players  MatchPlayers  `json:"players"`
	Teams    MatchTeams    `json:"teams"`
}

type MatchMetadata struct {
	MatchID      string `json:"matchid"`
	Map          string `json:"map"`
	Mode         string `json:"mode"`
	ModeID       string `json:"mode_id"`
	Queue        string `json:"queue"`
	Region       string `json:"region"`
	Cluster      string `json:"cluster"`
	RoundsPlayed int    `json:"rounds_played"`
	GameStart    int64  `json:"game_start"`
}

// StartedAt returns the match start time, or the zero time when the API did not supply one
func (m MatchMetadata) StartedAt() time.Time {
	if m.GameStart <= 0 {
		return time.Time{}
	}
	return time.Unix(m.GameStart, 0).UTC()
}

type MatchPlayers struct {
	AllPlayers []PlayerStats `json:"all_players"`
}

type PlayerStats struct {
	PUUID     string       `json:"puuid"`
	Name      string       `json:"name"`
	Tag       string       `json:"tag"`
	Team      string       `json:"team"`
	Character string       `json:"character"`
	Stats     KDA          `json:"stats"`
	Assets    PlayerAssets `json:"assets"`
}

type KDA struct {
	Score   int `json:"score"`
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

type PlayerAssets struct {
	Card  map[string]string `json:"card,omitempty"`
	Agent AgentAssets       `json:"agent"`
}

type AgentAssets struct {
	Small    string `json:"small"`
	Bust     string `json:"bust"`
	Full     string `json:"full"`
	Killfeed string `json:"killfeed"`
}

// MatchTeams holds the two team aggregates keyed by colour
type MatchTeams struct {
	Red  TeamResult `json:"red"`
	Blue TeamResult `json:"blue"`
}

type TeamResult struct {
	HasWon     bool `json:"has_won"`
	RoundsWon  int  `json:"rounds_won"`
	RoundsLost int  `json:"rounds_lost"`
}

// ByColor returns the aggregate for "red" or "blue" (any case)
func (t MatchTeams) ByColor(color string) (TeamResult, bool) {
	switch strings.ToLower(color) {
	case "red":
		return t.Red, true
	case "blue":
		return t.Blue, true
	}
	return TeamResult{}, false
}
