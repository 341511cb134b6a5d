/* render.go
 * Contains the match renderer. It turns one match record into a platform independent document that the bot
 * layer converts into an embed
 */

package logic

import (
	"fmt"
	"math"
	"strings"
	"time"
	"valorant-bot/api/external"
	"valorant-bot/api/shared"
)

const (
	// NavigationHint is shown at the bottom of every match page
	NavigationHint = "🕒 Use the buttons to change page."
	// AuthorIcon is the icon shown next to the player's name
	AuthorIcon = "https://img.icons8.com/color/512/valorant.png"
)

// Document is the rendered form of one match page
type Document struct {
	Player    string
	ModeLabel string
	Page      int
	PageCount int

	Map         string
	Won         bool
	ScoreLine   string
	Kills       int
	Deaths      int
	Assists     int
	KDA         float64
	Agent       string
	PortraitURL string
	PlayedAt    time.Time
	Footer      string

	// Partial is set when the player could not be found in the match and only the header was filled
	Partial bool
}

// Header returns the page description line, e.g. "**Competitive** matches • Page 1/5"
func (d Document) Header() string {
	return fmt.Sprintf("**%s** matches • Page %d/%d", d.ModeLabel, d.Page, d.PageCount)
}

// ResultLabel returns the win or loss label
func (d Document) ResultLabel() string {
	if d.Won {
		return "✅ Victory"
	}
	return "❌ Defeat"
}

// KDARatio computes (kills + assists) / max(deaths, 1) rounded to two decimal places
func KDARatio(kills int, deaths int, assists int) float64 {
	ratio := float64(kills+assists) / float64(max(deaths, 1))
	return math.Round(ratio*100) / 100
}

// ScoreLine formats the rounds won as "<blue>-<red>" regardless of the player's team
func ScoreLine(teams external.MatchTeams) string {
	return fmt.Sprintf("%d-%d", teams.Blue.RoundsWon, teams.Red.RoundsWon)
}

// Render builds the document for one match page.
// Preconditions: receives the match, the looked up identity, the mode, the zero based page index and the page count
// Postconditions: returns the full document. If the identity is not in the match's player list the header only
// document is returned together with an error wrapping shared.ErrDataInconsistency, so callers can log it and
// still show the page
func Render(match external.MatchRecord, identity shared.PlayerIdentity, mode shared.GameMode, pageIndex int, pageCount int) (Document, error) {
	doc := Document{
		Player:    identity.String(),
		ModeLabel: mode.Label(),
		Page:      pageIndex + 1,
		PageCount: pageCount,
	}

	var player *external.PlayerStats
	for i := range match.Players.AllPlayers {
		p := &match.Players.AllPlayers[i]
		if identity.Matches(p.Name, p.Tag) {
			player = p
			break
		}
	}
	if player == nil {
		doc.Partial = true
		return doc, fmt.Errorf("%w: %s in match %s", shared.ErrDataInconsistency, identity, match.Metadata.MatchID)
	}

	team, _ := match.Teams.ByColor(player.Team)
	doc.Map = match.Metadata.Map
	doc.Won = team.HasWon
	doc.ScoreLine = ScoreLine(match.Teams)
	doc.Kills = player.Stats.Kills
	doc.Deaths = player.Stats.Deaths
	doc.Assists = player.Stats.Assists
	doc.KDA = KDARatio(player.Stats.Kills, player.Stats.Deaths, player.Stats.Assists)
	doc.Agent = player.Character
	doc.PortraitURL = strings.TrimSpace(player.Assets.Agent.Small)
	doc.PlayedAt = match.Metadata.StartedAt()
	doc.Footer = NavigationHint

	return doc, nil
}
