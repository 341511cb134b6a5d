/* handlers_test.go
 * Contains unit tests for bot command and interaction handlers using mock Discord session
 */

package bot

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"valorant-bot/api/api"
	"valorant-bot/api/external"
	"valorant-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    = "user123"
	intruderID = "user456"
	channelID  = "channel123"
)

// createTestBotWithFetcher creates a Bot whose API knows Ada#1234 with 7 competitive and 2 unrated matches
func createTestBotWithFetcher() (*Bot, *api.MockFetcher) {
	fetcher := api.NewMockFetcher()
	fetcher.Batches["Ada#1234"] = external.CreateSampleBatch("Ada", "1234",
		external.ModeCount{Mode: "Competitive", Count: 7},
		external.ModeCount{Mode: "Unrated", Count: 2},
	)
	return &Bot{
		BotToken: "test_token",
		APIPtr:   api.NewMockAPI(fetcher, &api.MockStore{}),
		Prefix:   "!",
		logger:   zerolog.Nop(),
	}, fetcher
}

func createTestBot() *Bot {
	bot, _ := createTestBotWithFetcher()
	return bot
}

// createMockMessage creates a mock Discord message for testing
func createMockMessage(content, userID, username, channelID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: channelID,
			GuildID:   "guild123",
			Author: &discordgo.User{
				ID:       userID,
				Username: username,
			},
		},
	}
}

// createSlashCommand creates a mock /valorant or /help interaction
func createSlashCommand(name string, userID string, options map[string]string) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for _, key := range []string{optionPlayer, optionMode} {
		if value, ok := options[key]; ok {
			data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
				Name:  key,
				Type:  discordgo.ApplicationCommandOptionString,
				Value: value,
			})
		}
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction123",
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: channelID,
		GuildID:   "guild123",
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID, Username: "tester"}},
		Data:      data,
	}}
}

// createComponent creates a mock select menu or button interaction
func createComponent(userID string, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "interaction456",
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: channelID,
		GuildID:   "guild123",
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID, Username: "tester"}},
		Data:      discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
	}}
}

// componentIDs returns the custom ids of every component in the action rows
func componentIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			switch v := inner.(type) {
			case discordgo.SelectMenu:
				ids = append(ids, v.CustomID)
			case discordgo.Button:
				ids = append(ids, v.CustomID)
			}
		}
	}
	return ids
}

// startLookup runs "!valorant Ada#1234" and returns the selection id from the mode menu
func startLookup(t *testing.T, bot *Bot, mockSession *MockDiscordSession) string {
	t.Helper()
	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ada#1234", ownerID, "Ada", channelID), "bot")
	ids := componentIDs(mockSession.GetLastMessage().Components)
	require.Len(t, ids, 1)
	action, selectionID, ok := parseCustomID(ids[0])
	require.True(t, ok)
	require.Equal(t, actionMode, action)
	return selectionID
}

// openViewer picks competitive on a fresh lookup and returns the viewer id from the navigation buttons
func openViewer(t *testing.T, bot *Bot, mockSession *MockDiscordSession) string {
	t.Helper()
	selectionID := startLookup(t, bot, mockSession)
	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionMode, selectionID), "competitive"))
	ids := componentIDs(mockSession.GetLastMessage().Components)
	require.Len(t, ids, 2)
	_, viewerID, ok := parseCustomID(ids[0])
	require.True(t, ok)
	return viewerID
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// region message routing tests

func TestNewMessageHandler_IgnoresSelf(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!help", "bot", "Bot", channelID), "bot")

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_IgnoresOtherBots(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	message := createMockMessage("!help", "otherbot", "Other", channelID)
	message.Author.Bot = true

	bot.newMessageHandler(mockSession, message, "bot")

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_IgnoresUnrelated(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	for _, content := range []string{"hello", "!valorantAda#1234", "!helpme", "$valorant Ada#1234"} {
		bot.newMessageHandler(mockSession, createMockMessage(content, ownerID, "Ada", channelID), "bot")
	}

	assert.Empty(t, mockSession.SentMessages)
}

func TestNewMessageHandler_CustomPrefix(t *testing.T) {
	bot := createTestBot()
	bot.Prefix = "?"
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("?help", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 1)
	assert.Contains(t, mockSession.GetLastMessage().Embeds[0].Fields[0].Name, "?valorant")
}

// endregion

// region help tests

func TestHelpMessage_Success(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!help", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, channelID, msg.ChannelID)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "Bot Commands", msg.Embeds[0].Title)
	assert.Contains(t, msg.Embeds[0].Fields[0].Name, "!valorant")
	assert.Contains(t, msg.Embeds[0].Fields[0].Value, "Example: !valorant Player#TAG")
}

func TestHelpSlash_Success(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("help", ownerID, nil))

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, KindResponse, msg.Kind)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, msg.ResponseType)
	assert.Contains(t, msg.Embeds[0].Fields[0].Name, "/valorant")
}

// endregion

// region !valorant tests

func TestValorantMessage_NoArgument(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	require.Len(t, msg.Embeds, 1)
	assert.Contains(t, msg.Embeds[0].Description, "Example: !valorant Player#TAG")
	assert.Equal(t, 0, fetcher.CallCount())
}

func TestValorantMessage_InvalidFormat(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ada1234", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 1)
	assert.Equal(t, msgUsage, mockSession.GetLastMessage().Content)
	assert.Equal(t, 0, fetcher.CallCount())
}

func TestValorantMessage_PlayerNotFound(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ghost#0000", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 2)
	assert.Equal(t, msgSearching, mockSession.SentMessages[0].Content)
	assert.Equal(t, []string{mockSession.SentMessages[0].ID}, mockSession.DeletedMessages)
	assert.Equal(t, msgPlayerNotFound, mockSession.GetLastMessage().Content)
}

func TestValorantMessage_TransientError(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	fetcher.ErrorToReturn = fmt.Errorf("%w: connection refused", shared.ErrTransient)
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ada#1234", ownerID, "Ada", channelID), "bot")

	msg := mockSession.GetLastMessage()
	assert.Equal(t, msgGenericError, msg.Content)
	assert.NotContains(t, msg.Content, "connection refused")
}

func TestValorantMessage_ShowsModeMenu(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant  Ada # 1234 ", ownerID, "Ada", channelID), "bot")

	require.Len(t, mockSession.SentMessages, 2)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, msgChooseMode, msg.Content)

	row := msg.Components[0].(discordgo.ActionsRow)
	menu := row.Components[0].(discordgo.SelectMenu)
	assert.True(t, strings.HasPrefix(menu.CustomID, "valorant:mode:"))
	require.Len(t, menu.Options, 3)
	assert.Equal(t, "competitive", menu.Options[0].Value)
	assert.Equal(t, "Swiftplay", menu.Options[2].Label)

	require.Len(t, fetcher.Calls, 1)
	assert.Equal(t, "Ada", fetcher.Calls[0].Name)
	assert.Equal(t, "1234", fetcher.Calls[0].Tag)
	assert.Equal(t, "eu", fetcher.Calls[0].Region)
}

func TestValorantMessage_ModeShortcut(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ada#1234 comp", ownerID, "Ada", channelID), "bot")

	msg := mockSession.GetLastMessage()
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "**Competitive** matches • Page 1/5", msg.Embeds[0].Description)
	assert.Len(t, componentIDs(msg.Components), 2)
	// only the viewer stays open
	assert.Equal(t, 1, bot.APIPtr.Sessions.Len())
}

func TestValorantMessage_ModeShortcutNoMatches(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage("!valorant Ada#1234 swiftplay", ownerID, "Ada", channelID), "bot")

	msg := mockSession.GetLastMessage()
	assert.Equal(t, "❌ No Swiftplay matches found.", msg.Content)
	assert.Empty(t, msg.Components)
	assert.Equal(t, 0, bot.APIPtr.Sessions.Len())
}

func TestValorantMessage_QuotedNameWithModeShortcut(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	fetcher.Batches["Ada Love#EU1"] = external.CreateSampleBatch("Ada Love", "EU1",
		external.ModeCount{Mode: "Competitive", Count: 2},
	)
	mockSession := NewMockDiscordSession()

	bot.newMessageHandler(mockSession, createMockMessage(`!valorant "Ada Love#EU1" comp`, ownerID, "Ada", channelID), "bot")

	require.Len(t, fetcher.Calls, 1)
	assert.Equal(t, "Ada Love", fetcher.Calls[0].Name)
	assert.Equal(t, "EU1", fetcher.Calls[0].Tag)
	msg := mockSession.GetLastMessage()
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "**Competitive** matches • Page 1/2", msg.Embeds[0].Description)
}

func TestSplitModeShortcut(t *testing.T) {
	tests := []struct {
		argument   string
		wantPlayer string
		wantMode   shared.GameMode
		wantOK     bool
	}{
		{"Ada#1234 comp", "Ada#1234", shared.Competitive, true},
		{"Ada Lovelace#1234 unrated", "Ada Lovelace#1234", shared.Unrated, true},
		{"Ada#1234 Swift", "Ada#1234", shared.Swiftplay, true},
		{"Ada#1234", "Ada#1234", "", false},
		{"Ada#12 34", "Ada#12 34", "", false},
		{"Ada Lovelace#1234", "Ada Lovelace#1234", "", false},
		{"Ada comp", "Ada comp", "", false},
		{"Ada#1234 xyz", "Ada#1234 xyz", "", false},
		{`"Ada Love#EU1" comp`, "Ada Love#EU1", shared.Competitive, true},
		{"“Ada Love#EU1” unrated", "Ada Love#EU1", shared.Unrated, true},
		{`"Ada Love#EU1"`, "Ada Love#EU1", "", false},
		{`"Ada Love#EU1" "comp"`, "Ada Love#EU1 comp", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.argument, func(t *testing.T) {
			player, mode, ok := splitModeShortcut(tt.argument)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPlayer, player)
			assert.Equal(t, tt.wantMode, mode)
		})
	}
}

// endregion

// region /valorant tests

func TestValorantSlash_InvalidFormat(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("valorant", ownerID, map[string]string{optionPlayer: "Ada1234"}))

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, msg.ResponseType)
	assert.Equal(t, msgUsage, msg.Content)
	assert.True(t, msg.Ephemeral)
	assert.Equal(t, 0, fetcher.CallCount())
}

func TestValorantSlash_ShowsModeMenu(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("valorant", ownerID, map[string]string{optionPlayer: "Ada#1234"}))

	require.Len(t, mockSession.SentMessages, 3)
	deferred, status, menu := mockSession.SentMessages[0], mockSession.SentMessages[1], mockSession.SentMessages[2]

	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, deferred.ResponseType)
	assert.True(t, deferred.Ephemeral)

	assert.Equal(t, KindFollowup, status.Kind)
	assert.Equal(t, msgSearching, status.Content)
	assert.Equal(t, []string{status.ID}, mockSession.DeletedMessages)

	assert.Equal(t, KindFollowup, menu.Kind)
	assert.Equal(t, msgChooseMode, menu.Content)
	assert.True(t, menu.Ephemeral)
	assert.Len(t, componentIDs(menu.Components), 1)
}

func TestValorantSlash_PlayerNotFound(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("valorant", ownerID, map[string]string{optionPlayer: "Ghost#0000"}))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, msgPlayerNotFound, msg.Content)
	assert.True(t, msg.Ephemeral)
}

func TestValorantSlash_ModeOption(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("valorant", ownerID, map[string]string{
		optionPlayer: "Ada#1234",
		optionMode:   "unrated",
	}))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, KindFollowup, msg.Kind)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "**Unrated** matches • Page 1/2", msg.Embeds[0].Description)
	assert.False(t, msg.Ephemeral)
	assert.Equal(t, 1, bot.APIPtr.Sessions.Len())
}

func TestValorantSlash_ModeOptionNoMatches(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createSlashCommand("valorant", ownerID, map[string]string{
		optionPlayer: "Ada#1234",
		optionMode:   "swiftplay",
	}))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, "❌ No Swiftplay matches found.", msg.Content)
	assert.True(t, msg.Ephemeral)
	assert.Equal(t, 0, bot.APIPtr.Sessions.Len())
}

// endregion

// region mode menu tests

func TestModeSelect_Competitive(t *testing.T) {
	bot, fetcher := createTestBotWithFetcher()
	mockSession := NewMockDiscordSession()
	selectionID := startLookup(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionMode, selectionID), "competitive"))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, msg.ResponseType)
	require.Len(t, msg.Embeds, 1)
	assert.Equal(t, "**Competitive** matches • Page 1/5", msg.Embeds[0].Description)
	assert.Equal(t, "Ada#1234", msg.Embeds[0].Author.Name)

	ids := componentIDs(msg.Components)
	require.Len(t, ids, 2)
	assert.True(t, strings.HasPrefix(ids[0], "valorant:prev:"))
	assert.True(t, strings.HasPrefix(ids[1], "valorant:next:"))

	assert.Equal(t, 1, fetcher.CallCount())
}

func TestModeSelect_NoMatches(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	selectionID := startLookup(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionMode, selectionID), "swiftplay"))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, "❌ No Swiftplay matches found.", msg.Content)
	assert.Empty(t, msg.Embeds)
	assert.Empty(t, msg.Components)
}

func TestModeSelect_Intruder(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	selectionID := startLookup(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(intruderID, customID(actionMode, selectionID), "competitive"))

	msg := mockSession.GetLastMessage()
	assert.Equal(t, msgNotOwner, msg.Content)
	assert.True(t, msg.Ephemeral)
	assert.Empty(t, msg.Embeds)
}

func TestModeSelect_UnknownSelection(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionMode, "missing"), "competitive"))

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, msg.ResponseType)
	assert.Empty(t, msg.Content)
}

func TestModeSelect_NoValues(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	selectionID := startLookup(t, bot, mockSession)
	mockSession.ClearMessages()

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionMode, selectionID)))

	require.Len(t, mockSession.SentMessages, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, mockSession.GetLastMessage().ResponseType)
}

// endregion

// region navigation tests

func TestNavigate_NextAndPrevious(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	viewerID := openViewer(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionNext, viewerID)))
	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, msg.ResponseType)
	assert.Equal(t, "**Competitive** matches • Page 2/5", msg.Embeds[0].Description)
	assert.Equal(t, componentIDs(navButtons(viewerID)), componentIDs(msg.Components))

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionPrevious, viewerID)))
	msg = mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, msg.ResponseType)
	assert.Equal(t, "**Competitive** matches • Page 1/5", msg.Embeds[0].Description)
}

func TestNavigate_EdgesAreAcknowledged(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	viewerID := openViewer(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionPrevious, viewerID)))
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, mockSession.GetLastMessage().ResponseType)

	for i := 0; i < 4; i++ {
		bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionNext, viewerID)))
	}
	assert.Equal(t, "**Competitive** matches • Page 5/5", mockSession.GetLastMessage().Embeds[0].Description)

	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionNext, viewerID)))
	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, msg.ResponseType)
	assert.Empty(t, msg.Embeds)
}

func TestNavigate_Intruder(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()
	viewerID := openViewer(t, bot, mockSession)

	bot.interactionHandler(mockSession, createComponent(intruderID, customID(actionNext, viewerID)))
	msg := mockSession.GetLastMessage()
	assert.Equal(t, msgNotOwner, msg.Content)
	assert.True(t, msg.Ephemeral)

	// the owner's next press still lands on page 2
	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionNext, viewerID)))
	assert.Equal(t, "**Competitive** matches • Page 2/5", mockSession.GetLastMessage().Embeds[0].Description)
}

func TestNavigate_ExpiredSessionIsSilent(t *testing.T) {
	bot := createTestBot()
	clock := &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	bot.APIPtr.Now = clock.Now
	mockSession := NewMockDiscordSession()
	viewerID := openViewer(t, bot, mockSession)

	clock.Advance(61 * time.Second)
	mockSession.ClearMessages()
	bot.interactionHandler(mockSession, createComponent(ownerID, customID(actionNext, viewerID)))

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, msg.ResponseType)
	assert.Empty(t, msg.Embeds)
	assert.Empty(t, msg.Content)
}

func TestInteractionHandler_IgnoresForeignComponents(t *testing.T) {
	bot := createTestBot()
	mockSession := NewMockDiscordSession()

	bot.interactionHandler(mockSession, createComponent(ownerID, "other:button"))
	bot.interactionHandler(mockSession, createComponent(ownerID, "valorant:next:"))

	assert.Empty(t, mockSession.SentMessages)
}

// endregion
