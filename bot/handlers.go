/* handlers.go
 * Contains the prefix command handlers. They accept the DiscordSession interface so they can be tested without a
 * gateway connection
 */

package bot

import (
	"context"
	"strings"
	"valorant-bot/api/logic"
	"valorant-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	if message.Author == nil || message.Author.ID == botUserID || message.Author.Bot {
		return
	}

	content := strings.TrimSpace(message.Content)
	switch {
	case isCommand(content, b.Prefix+commandHelp):
		b.helpMessageHandler(session, message)

	case isCommand(content, b.Prefix+commandValorant):
		b.valorantMessageHandler(session, message, commandArgument(content, b.Prefix+commandValorant))
	}
}

// helpMessageHandler handles the help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	_, err := session.ChannelMessageSendComplex(message.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{helpEmbed(b.Prefix + commandValorant)},
	})
	if err != nil {
		b.logger.Error().Err(err).Str("channel_id", message.ChannelID).Msg("failed to send help")
	}
}

// valorantMessageHandler runs the player lookup for the prefix command.
// Preconditions: receives the message and the text after the command word
// Postconditions: sends a usage embed, an error message, the mode menu, or (with a mode shortcut) the first match
// page to the channel the command was run in
func (b *Bot) valorantMessageHandler(session DiscordSession, message *discordgo.MessageCreate, argument string) {
	log := b.logger.With().Str("user_id", message.Author.ID).Str("channel_id", message.ChannelID).Logger()
	send := func(data *discordgo.MessageSend) {
		if _, err := session.ChannelMessageSendComplex(message.ChannelID, data); err != nil {
			log.Error().Err(err).Msg("failed to send message")
		}
	}

	if argument == "" {
		send(&discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{usageEmbed(b.Prefix + commandValorant)}})
		return
	}

	playerArg, mode, hasMode := splitModeShortcut(argument)
	if _, err := logic.ParseIdentity(playerArg); err != nil {
		send(&discordgo.MessageSend{Content: msgUsage})
		return
	}

	status, err := session.ChannelMessageSend(message.ChannelID, msgSearching)
	if err != nil {
		log.Warn().Err(err).Msg("failed to send status message")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	user := messageUser(message)
	selection, err := b.APIPtr.StartLookup(ctx, user, playerArg)

	if status != nil {
		if err := session.ChannelMessageDelete(message.ChannelID, status.ID); err != nil {
			log.Warn().Err(err).Msg("failed to delete status message")
		}
	}

	if err != nil {
		send(&discordgo.MessageSend{Content: userMessage(err, "")})
		return
	}

	if !hasMode {
		send(&discordgo.MessageSend{Content: msgChooseMode, Components: modeMenu(selection.ID)})
		return
	}

	viewer, doc, err := b.APIPtr.ChooseMode(ctx, user, selection.ID, mode)
	// no menu points at the selection when the mode was given up front
	b.APIPtr.Sessions.Remove(selection.ID)
	if err != nil {
		log.Info().Err(err).Str("mode", string(mode)).Msg("mode shortcut failed")
		send(&discordgo.MessageSend{Content: userMessage(err, mode)})
		return
	}
	send(&discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{matchEmbed(doc)},
		Components: navButtons(viewer.ID),
	})
}

// quoteStripper removes the quote marks the argument splitter accepts, Riot IDs cannot contain them
var quoteStripper = strings.NewReplacer(`"`, "", "“", "", "”", "")

// splitModeShortcut separates a trailing mode word from the player argument, e.g. "Ada#1234 comp". The last token
// is only taken as a mode when it has no '#', the text before it does, and it resolves to exactly one mode.
// Quotes around a name with spaces ("Ada Love#EU1" comp) are removed from the returned player
func splitModeShortcut(argument string) (player string, mode shared.GameMode, ok bool) {
	whole := strings.TrimSpace(quoteStripper.Replace(argument))

	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	tokens, err := spaceSplitter.Split(argument)
	if err != nil {
		return whole, "", false
	}

	var words []string
	for _, token := range tokens {
		if token != "" {
			words = append(words, token)
		}
	}
	if len(words) < 2 {
		return whole, "", false
	}

	last := words[len(words)-1]
	if strings.Contains(last, "#") || !strings.HasSuffix(argument, last) {
		return whole, "", false
	}
	rest := strings.TrimSpace(quoteStripper.Replace(strings.TrimSuffix(argument, last)))
	if !strings.Contains(rest, "#") {
		return whole, "", false
	}

	mode, ok = logic.ParseMode(last)
	if !ok {
		return whole, "", false
	}
	return rest, mode, true
}
