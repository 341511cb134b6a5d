/* mock_session.go
 * Contains mock implementation of DiscordSession for testing
 */

package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// MockMessageKind says which session call produced a MockMessage
type MockMessageKind string

const (
	KindChannel  MockMessageKind = "channel"
	KindResponse MockMessageKind = "response"
	KindFollowup MockMessageKind = "followup"
)

// MockDiscordSession implements DiscordSession for testing purposes
type MockDiscordSession struct {
	mu sync.Mutex
	// SentMessages stores all messages, interaction responses and followups sent during tests
	SentMessages []MockMessage
	// DeletedMessages stores the ids of deleted messages and followups
	DeletedMessages []string
	// Commands stores the last registered slash commands
	Commands []*discordgo.ApplicationCommand
	// WatchStatus stores the last "watching" presence set
	WatchStatus string
	// ErrorToReturn allows tests to simulate errors
	ErrorToReturn error

	nextID int
}

// MockMessage represents a message sent to a channel or in reply to an interaction
type MockMessage struct {
	Kind         MockMessageKind
	ID           string
	ChannelID    string
	Content      string
	Embeds       []*discordgo.MessageEmbed
	Components   []discordgo.MessageComponent
	Ephemeral    bool
	ResponseType discordgo.InteractionResponseType
}

func (m *MockDiscordSession) record(msg MockMessage) *discordgo.Message {
	m.nextID++
	msg.ID = fmt.Sprintf("mock_message_%d", m.nextID)
	m.SentMessages = append(m.SentMessages, msg)
	return &discordgo.Message{ID: msg.ID, ChannelID: msg.ChannelID, Content: msg.Content}
}

// ChannelMessageSend implements DiscordSession.ChannelMessageSend
func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.record(MockMessage{Kind: KindChannel, ChannelID: channelID, Content: content}), nil
}

// ChannelMessageSendComplex implements DiscordSession.ChannelMessageSendComplex
func (m *MockDiscordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.record(MockMessage{
		Kind:       KindChannel,
		ChannelID:  channelID,
		Content:    data.Content,
		Embeds:     data.Embeds,
		Components: data.Components,
	}), nil
}

// ChannelMessageDelete implements DiscordSession.ChannelMessageDelete
func (m *MockDiscordSession) ChannelMessageDelete(channelID string, messageID string, options ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.DeletedMessages = append(m.DeletedMessages, messageID)
	return nil
}

// InteractionRespond implements DiscordSession.InteractionRespond
func (m *MockDiscordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	msg := MockMessage{Kind: KindResponse, ChannelID: interaction.ChannelID, ResponseType: resp.Type}
	if resp.Data != nil {
		msg.Content = resp.Data.Content
		msg.Embeds = resp.Data.Embeds
		msg.Components = resp.Data.Components
		msg.Ephemeral = resp.Data.Flags&discordgo.MessageFlagsEphemeral != 0
	}
	m.record(msg)
	return nil
}

// FollowupMessageCreate implements DiscordSession.FollowupMessageCreate
func (m *MockDiscordSession) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	return m.record(MockMessage{
		Kind:       KindFollowup,
		ChannelID:  interaction.ChannelID,
		Content:    data.Content,
		Embeds:     data.Embeds,
		Components: data.Components,
		Ephemeral:  data.Flags&discordgo.MessageFlagsEphemeral != 0,
	}), nil
}

// FollowupMessageDelete implements DiscordSession.FollowupMessageDelete
func (m *MockDiscordSession) FollowupMessageDelete(interaction *discordgo.Interaction, messageID string, options ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.DeletedMessages = append(m.DeletedMessages, messageID)
	return nil
}

// ApplicationCommandBulkOverwrite implements DiscordSession.ApplicationCommandBulkOverwrite
func (m *MockDiscordSession) ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	m.Commands = commands
	return commands, nil
}

// UpdateWatchStatus implements DiscordSession.UpdateWatchStatus
func (m *MockDiscordSession) UpdateWatchStatus(idle int, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.WatchStatus = name
	return nil
}

// GetLastMessage returns the last message sent, or empty MockMessage if none
func (m *MockDiscordSession) GetLastMessage() MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SentMessages) == 0 {
		return MockMessage{}
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages clears all stored messages
func (m *MockDiscordSession) ClearMessages() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = nil
	m.DeletedMessages = nil
}

// NewMockDiscordSession creates a new MockDiscordSession for testing
func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{
		SentMessages: make([]MockMessage, 0),
	}
}
