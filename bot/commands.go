/* commands.go
 * Contains the slash command definitions registered when the bot connects
 */

package bot

import (
	"valorant-bot/api/shared"

	"github.com/bwmarrin/discordgo"
)

const (
	commandValorant = "valorant"
	commandHelp     = "help"

	optionPlayer = "player"
	optionMode   = "mode"
)

// slashCommands returns the application commands the bot serves
func slashCommands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(shared.Modes))
	for _, mode := range shared.Modes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: mode.Label(), Value: string(mode)})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandValorant,
			Description: "Shows the recent matches of a Valorant player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionPlayer,
					Description: "The player's name#tag. Example: Player#TAG",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionMode,
					Description: "Skip the mode menu",
					Choices:     choices,
				},
			},
		},
		{
			Name:        commandHelp,
			Description: "Shows information about the bot commands",
		},
	}
}

// readyHandler registers the slash commands and sets the "watching /help" presence once the gateway is ready.
// Preconditions: receives the session and the bot's user id, used when no application id is configured
// Postconditions: failures are logged, the bot keeps serving prefix commands either way
func (b *Bot) readyHandler(s DiscordSession, botUserID string) {
	appID := b.ApplicationID
	if appID == "" {
		appID = botUserID
	}

	if _, err := s.ApplicationCommandBulkOverwrite(appID, "", slashCommands()); err != nil {
		b.logger.Error().Err(err).Str("application_id", appID).Msg("failed to register slash commands")
	}
	if err := s.UpdateWatchStatus(0, "/"+commandHelp); err != nil {
		b.logger.Warn().Err(err).Msg("failed to set presence")
	}
	b.logger.Info().Str("user_id", botUserID).Msg("bot ready")
}
