//go:build !test

/* bot_runtime.go
 * Contains runtime-only Discord bot methods that use *discordgo.Session directly.
 * Delegates to testable handlers in handlers.go and interactions.go to avoid code duplication.
 */

package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

// Start opens the gateway connection and registers the event handlers
func (b *Bot) Start() error {
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	discord.AddHandler(b.ready)
	discord.AddHandler(b.newMessage)
	discord.AddHandler(b.interactionCreate)

	if err := discord.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.session = discord
	b.logger.Info().Str("prefix", b.Prefix).Msg("Valorant bot started")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	if b.session == nil {
		return nil
	}
	return b.session.Close()
}

// ready delegates to the testable readyHandler
func (b *Bot) ready(discord *discordgo.Session, event *discordgo.Ready) {
	b.readyHandler(discord, event.User.ID)
}

// newMessage delegates to the testable newMessageHandler
// *discordgo.Session implements DiscordSession interface
func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	b.newMessageHandler(discord, message, discord.State.User.ID)
}

// interactionCreate delegates to the testable interactionHandler
func (b *Bot) interactionCreate(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {
	b.interactionHandler(discord, interaction)
}

// Register ties the gateway connection to the application lifecycle
func Register(lc fx.Lifecycle, b *Bot) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return b.Start()
		},
		OnStop: func(ctx context.Context) error {
			return b.Stop()
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewBot),
	fx.Invoke(Register),
)
