/* embeds.go
 * Contains the builders for the embeds and message components the bot sends: match pages, help text, the mode
 * menu and the navigation buttons
 */

package bot

import (
	"fmt"
	"strconv"
	"strings"
	"valorant-bot/api/logic"
	"valorant-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

// Component custom ids are "valorant:<action>:<session id>"
const (
	customIDPrefix = "valorant"
	actionMode     = "mode"
	actionPrevious = "prev"
	actionNext     = "next"
)

// blankName is a zero width space, embed fields need a non empty name
const blankName = "\u200b"

func customID(action string, sessionID string) string {
	return customIDPrefix + ":" + action + ":" + sessionID
}

// parseCustomID splits a component custom id into its action and session id
func parseCustomID(id string) (action string, sessionID string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != customIDPrefix || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// codeBlock wraps text in a fenced block, with an optional highlighting language
func codeBlock(lang string, text string) string {
	if lang == "" {
		return "```" + text + "```"
	}
	return "```" + lang + "\n" + text + "```"
}

// matchEmbed converts a rendered match page into an embed.
// Preconditions: receives a document from the renderer
// Postconditions: returns the embed. A partial document only carries the author and page header
func matchEmbed(doc logic.Document) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: doc.Header(),
		Color:       embedColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    doc.Player,
			IconURL: logic.AuthorIcon,
		},
	}
	if doc.Partial {
		return embed
	}

	mapLine := "🗺️ " + doc.Map
	if !doc.PlayedAt.IsZero() {
		mapLine += " • " + humanize.Time(doc.PlayedAt)
	}

	resultLang := "fix"
	if doc.Won {
		resultLang = "yaml"
	}

	kda := strconv.FormatFloat(doc.KDA, 'f', -1, 64)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: blankName, Value: codeBlock("", mapLine)},
		{Name: blankName, Value: codeBlock(resultLang, fmt.Sprintf("%s • %s", doc.ResultLabel(), doc.ScoreLine))},
		{Name: blankName, Value: codeBlock("ml", fmt.Sprintf("🎯 K/D/A: %d/%d/%d (KDA: %s)", doc.Kills, doc.Deaths, doc.Assists, kda))},
		{Name: blankName, Value: codeBlock("ml", "🦸 Agent: "+doc.Agent)},
	}
	if doc.PortraitURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: doc.PortraitURL}
	}
	if doc.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: doc.Footer}
	}
	return embed
}

// helpEmbed lists the lookup command in the form the user invoked help with, "/valorant" or "!valorant"
func helpEmbed(command string) *discordgo.MessageEmbed {
	var body strings.Builder
	body.WriteString("\nShows the last 5 matches of the given player.\n\n")
	body.WriteString(fmt.Sprintf("Example: %s Player#TAG\n\n", command))
	body.WriteString("• Match history for Competitive, Unrated and Swiftplay\n")
	body.WriteString("• K/D/A, map and score\n")
	body.WriteString("• Agent and match result")

	return &discordgo.MessageEmbed{
		Title:       "Bot Commands",
		Description: "List of available commands.",
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: command + " <player#tag> [mode]", Value: codeBlock("", body.String())},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "❓ Contact the developer for more information."},
	}
}

// usageEmbed is sent for a bare lookup command with no player
func usageEmbed(command string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: codeBlock("", "Example: "+command+" Player#TAG"),
		Color:       embedColor,
	}
}

// modeMenu is the single choice game mode menu for a selection
func modeMenu(selectionID string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(shared.Modes))
	for _, mode := range shared.Modes {
		options = append(options, discordgo.SelectMenuOption{Label: mode.Label(), Value: string(mode)})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID(actionMode, selectionID),
				Placeholder: "Select a game mode...",
				Options:     options,
			},
		}},
	}
}

// navButtons are the previous and next buttons of a match viewer
func navButtons(viewerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "◀", Style: discordgo.SecondaryButton, CustomID: customID(actionPrevious, viewerID)},
			discordgo.Button{Label: "▶", Style: discordgo.SecondaryButton, CustomID: customID(actionNext, viewerID)},
		}},
	}
}
