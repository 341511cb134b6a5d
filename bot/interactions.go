/* interactions.go
 * Contains the interaction handlers: slash commands, the mode menu and the navigation buttons. Like the message
 * handlers they accept the DiscordSession interface
 */

package bot

import (
	"context"
	"errors"
	"valorant-bot/api/logic"
	"valorant-bot/api/session"
	"valorant-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// interactionHandler routes interactions to appropriate handlers
func (b *Bot) interactionHandler(s DiscordSession, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandValorant:
			b.valorantSlashHandler(s, i.Interaction)
		case commandHelp:
			b.helpSlashHandler(s, i.Interaction)
		}

	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		action, sessionID, ok := parseCustomID(data.CustomID)
		if !ok {
			return
		}
		switch action {
		case actionMode:
			if len(data.Values) == 0 {
				b.acknowledge(s, i.Interaction)
				return
			}
			b.modeSelectHandler(s, i.Interaction, sessionID, shared.GameMode(data.Values[0]))
		case actionPrevious:
			b.navigateHandler(s, i.Interaction, sessionID, session.Previous)
		case actionNext:
			b.navigateHandler(s, i.Interaction, sessionID, session.Next)
		}
	}
}

// helpSlashHandler answers /help with the help embed
func (b *Bot) helpSlashHandler(s DiscordSession, i *discordgo.Interaction) {
	b.respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{helpEmbed("/" + commandValorant)},
	})
}

// valorantSlashHandler runs the player lookup for /valorant.
// Preconditions: receives the command interaction with a player option and an optional mode option
// Postconditions: replies ephemerally with a usage or error message or the mode menu; with a mode option the first
// match page is posted instead of the menu
func (b *Bot) valorantSlashHandler(s DiscordSession, i *discordgo.Interaction) {
	var playerArg string
	var mode shared.GameMode
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case optionPlayer:
			playerArg = opt.StringValue()
		case optionMode:
			mode = shared.GameMode(opt.StringValue())
		}
	}

	if _, err := logic.ParseIdentity(playerArg); err != nil {
		b.respond(s, i, &discordgo.InteractionResponseData{Content: msgUsage, Flags: discordgo.MessageFlagsEphemeral})
		return
	}

	user := interactionUser(i)
	log := b.logger.With().Str("user_id", user.UserID).Str("interaction_id", i.ID).Logger()

	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to defer interaction")
		return
	}
	status := b.followup(s, i, log, &discordgo.WebhookParams{Content: msgSearching, Flags: discordgo.MessageFlagsEphemeral})

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	selection, err := b.APIPtr.StartLookup(ctx, user, playerArg)

	if status != nil {
		if err := s.FollowupMessageDelete(i, status.ID); err != nil {
			log.Warn().Err(err).Msg("failed to delete status message")
		}
	}

	if err != nil {
		b.followup(s, i, log, &discordgo.WebhookParams{Content: userMessage(err, ""), Flags: discordgo.MessageFlagsEphemeral})
		return
	}

	if mode == "" {
		b.followup(s, i, log, &discordgo.WebhookParams{
			Content:    msgChooseMode,
			Components: modeMenu(selection.ID),
			Flags:      discordgo.MessageFlagsEphemeral,
		})
		return
	}

	viewer, doc, err := b.APIPtr.ChooseMode(ctx, user, selection.ID, mode)
	// no menu points at the selection when the mode was given up front
	b.APIPtr.Sessions.Remove(selection.ID)
	if err != nil {
		log.Info().Err(err).Str("mode", string(mode)).Msg("mode option failed")
		b.followup(s, i, log, &discordgo.WebhookParams{Content: userMessage(err, mode), Flags: discordgo.MessageFlagsEphemeral})
		return
	}
	b.followup(s, i, log, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{matchEmbed(doc)},
		Components: navButtons(viewer.ID),
	})
}

// modeSelectHandler applies a pick from the mode menu.
// Preconditions: receives the component interaction, the selection id from its custom id and the picked mode
// Postconditions: posts the first match page, or a no matches or error message. Anyone but the owner gets an
// ephemeral rejection. Expired selections are acknowledged without a reply
func (b *Bot) modeSelectHandler(s DiscordSession, i *discordgo.Interaction, selectionID string, mode shared.GameMode) {
	user := interactionUser(i)
	viewer, doc, err := b.APIPtr.ChooseMode(context.Background(), user, selectionID, mode)
	if err != nil {
		b.rejectOrReport(s, i, err, mode, selectionID)
		return
	}

	b.respond(s, i, &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{matchEmbed(doc)},
		Components: navButtons(viewer.ID),
	})
}

// navigateHandler moves a match viewer one page.
// Preconditions: receives the button interaction, the viewer id from its custom id and the direction
// Postconditions: edits the message in place when the page changed. Edge presses and expired viewers are only
// acknowledged so the button does not appear stuck; anyone but the owner gets an ephemeral rejection
func (b *Bot) navigateHandler(s DiscordSession, i *discordgo.Interaction, viewerID string, dir session.Direction) {
	user := interactionUser(i)
	doc, moved, err := b.APIPtr.Navigate(user, viewerID, dir)
	if err != nil {
		b.rejectOrReport(s, i, err, "", viewerID)
		return
	}
	if !moved {
		b.acknowledge(s, i)
		return
	}

	err = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{matchEmbed(doc)},
			Components: navButtons(viewerID),
		},
	})
	if err != nil {
		b.logger.Error().Err(err).Str("viewer_id", viewerID).Msg("failed to update match page")
	}
}

// rejectOrReport answers a failed component interaction
func (b *Bot) rejectOrReport(s DiscordSession, i *discordgo.Interaction, err error, mode shared.GameMode, sessionID string) {
	user := interactionUser(i)
	log := b.logger.With().Str("user_id", user.UserID).Str("session_id", sessionID).Logger()

	switch {
	case errors.Is(err, shared.ErrSessionExpired):
		log.Debug().Msg("ignored action on expired session")
		b.acknowledge(s, i)
	case errors.Is(err, shared.ErrUnauthorizedInteractor):
		log.Info().Err(err).Msg("rejected action from non owner")
		b.respond(s, i, &discordgo.InteractionResponseData{Content: msgNotOwner, Flags: discordgo.MessageFlagsEphemeral})
	case errors.Is(err, shared.ErrNoMatchesForMode):
		log.Info().Err(err).Str("mode", string(mode)).Msg("no matches for mode")
		b.respond(s, i, &discordgo.InteractionResponseData{Content: userMessage(err, mode)})
	default:
		log.Error().Err(err).Msg("component interaction failed")
		b.respond(s, i, &discordgo.InteractionResponseData{Content: userMessage(err, mode)})
	}
}

// respond sends an immediate message reply to an interaction
func (b *Bot) respond(s DiscordSession, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.logger.Error().Err(err).Str("interaction_id", i.ID).Msg("failed to respond to interaction")
	}
}

// acknowledge answers a component interaction without changing the message
func (b *Bot) acknowledge(s DiscordSession, i *discordgo.Interaction) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate})
	if err != nil {
		b.logger.Error().Err(err).Str("interaction_id", i.ID).Msg("failed to acknowledge interaction")
	}
}

// followup sends a followup message to a deferred interaction and returns it, or nil if sending failed
func (b *Bot) followup(s DiscordSession, i *discordgo.Interaction, log zerolog.Logger, params *discordgo.WebhookParams) *discordgo.Message {
	msg, err := s.FollowupMessageCreate(i, true, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to send followup")
		return nil
	}
	return msg
}
