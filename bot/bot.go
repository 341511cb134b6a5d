/* bot.go
 * Contains the Bot type and the helpers shared by the message and interaction handlers. The bot token, command
 * prefix and API are passed in from main.go
 */

package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"valorant-bot/api/api"
	"valorant-bot/api/shared"
	"valorant-bot/config"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

const (
	embedColor = 0xFD4556

	// lookupTimeout bounds one call to the statistics API
	lookupTimeout = 10 * time.Second

	msgUsage          = "❌ Please use the name#tag format. Example: Player#TAG"
	msgPlayerNotFound = "❌ Player not found."
	msgGenericError   = "❌ Something went wrong, try again later."
	msgNotOwner       = "❌ Only the person who ran the command can use this menu."
	msgNoMatches      = "❌ No %s matches found."
	msgSearching      = "🔍 Searching for player..."
	msgChooseMode     = "Please select a game mode:"
)

type Bot struct {
	BotToken      string
	APIPtr        *api.API
	Prefix        string
	ApplicationID string
	logger        zerolog.Logger
	session       *discordgo.Session
}

// NewBot creates the bot from the process configuration.
// Preconditions: receives the loaded config, the API facade and the process logger
// Postconditions: returns the bot, or an error when no token is configured
func NewBot(cfg *config.Config, apiPtr *api.API, logger zerolog.Logger) (*Bot, error) {
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}

	return &Bot{
		BotToken:      cfg.DiscordToken,
		APIPtr:        apiPtr,
		Prefix:        prefix,
		ApplicationID: cfg.ApplicationID,
		logger:        logger.With().Str("component", "bot").Logger(),
	}, nil
}

// userMessage converts a flow error into the short text shown to the user. The raw error is never shown
func userMessage(err error, mode shared.GameMode) string {
	switch {
	case errors.Is(err, shared.ErrUserInput):
		return msgUsage
	case errors.Is(err, shared.ErrPlayerNotFound):
		return msgPlayerNotFound
	case errors.Is(err, shared.ErrNoMatchesForMode):
		return fmt.Sprintf(msgNoMatches, mode.Label())
	case errors.Is(err, shared.ErrUnauthorizedInteractor):
		return msgNotOwner
	default:
		return msgGenericError
	}
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	if len(substring) > len(inputString) {
		return false
	}
	return inputString[:len(substring)] == substring
}

// isCommand reports whether content invokes command as a whole word, e.g. "!help" but not "!helpme"
func isCommand(content string, command string) bool {
	if !startsWith(content, command) {
		return false
	}
	rest := content[len(command):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\n'
}

// commandArgument returns the trimmed text following the command word
func commandArgument(content string, command string) string {
	return strings.TrimSpace(content[len(command):])
}

// interactionUser returns the user behind an interaction, a member in guilds and a plain user in DMs
func interactionUser(i *discordgo.Interaction) shared.User {
	var u *discordgo.User
	if i.Member != nil && i.Member.User != nil {
		u = i.Member.User
	} else {
		u = i.User
	}
	if u == nil {
		return shared.User{GuildID: i.GuildID}
	}
	return shared.User{UserID: u.ID, Username: u.Username, GuildID: i.GuildID}
}

func messageUser(message *discordgo.MessageCreate) shared.User {
	return shared.User{UserID: message.Author.ID, Username: message.Author.Username, GuildID: message.GuildID}
}
