/* test_helpers.go
 * Contains helpers that build match records for tests in this and dependent packages
 */

package external

import "fmt"

// CreateSampleMatch builds a match in which name#tag played on the blue team and won 13-9
func CreateSampleMatch(id string, mode string, name string, tag string) MatchRecord {
	return MatchRecord{
		Metadata: MatchMetadata{MatchID: id, Map: "Ascent", Mode: mode, GameStart: 1700000000},
		Players: MatchPlayers{AllPlayers: []PlayerStats{
			{
				Name:      "Teammate",
				Tag:       "0001",
				Team:      "Blue",
				Character: "Sage",
				Stats:     KDA{Kills: 5, Deaths: 12, Assists: 9},
			},
			{
				Name:      name,
				Tag:       tag,
				Team:      "Blue",
				Character: "Jett",
				Stats:     KDA{Kills: 21, Deaths: 14, Assists: 7},
				Assets:    PlayerAssets{Agent: AgentAssets{Small: "https://media.valorant-api.com/agents/jett/displayicon.png"}},
			},
			{
				Name:      "Opponent",
				Tag:       "9999",
				Team:      "Red",
				Character: "Omen",
				Stats:     KDA{Kills: 17, Deaths: 18, Assists: 3},
			},
		}},
		Teams: MatchTeams{
			Red:  TeamResult{HasWon: false, RoundsWon: 9, RoundsLost: 13},
			Blue: TeamResult{HasWon: true, RoundsWon: 13, RoundsLost: 9},
		},
	}
}

// CreateSampleBatch builds a batch with the given number of matches per mode, in the order the modes are given
func CreateSampleBatch(name string, tag string, counts ...ModeCount) []MatchRecord {
	var batch []MatchRecord
	for _, c := range counts {
		for i := 0; i < c.Count; i++ {
			batch = append(batch, CreateSampleMatch(fmt.Sprintf("%s-%d", c.Mode, i), c.Mode, name, tag))
		}
	}
	return batch
}

// ModeCount pairs a mode label with a number of matches for CreateSampleBatch
type ModeCount struct {
	Mode  string
	Count int
}
