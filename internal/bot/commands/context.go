package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

// Sender is the subset of *discordgo.Session used to answer an invocation.
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// Context is the invocation a handler replies through.
type Context interface {
	Name() string
	Author() *discordgo.User
	Send(content string) error
}

type MessageContext struct {
	sender  Sender
	name    string
	message *discordgo.Message
}

func NewMessageContext(sender Sender, name string, m *discordgo.Message) *MessageContext {
	return &MessageContext{sender: sender, name: name, message: m}
}

func (c *MessageContext) Name() string { return c.name }

func (c *MessageContext) Author() *discordgo.User { return c.message.Author }

func (c *MessageContext) Send(content string) error {
	if _, err := c.sender.ChannelMessageSend(c.message.ChannelID, content); err != nil {
		return errors.Wrapf(err, "error sending message to channel %s", c.message.ChannelID)
	}
	return nil
}

type InteractionContext struct {
	sender      Sender
	interaction *discordgo.Interaction
}

func NewInteractionContext(sender Sender, i *discordgo.Interaction) *InteractionContext {
	return &InteractionContext{sender: sender, interaction: i}
}

func (c *InteractionContext) Name() string {
	return c.interaction.ApplicationCommandData().Name
}

// Author returns the invoking user, which Discord puts in Member for guild
// interactions and in User for direct messages.
func (c *InteractionContext) Author() *discordgo.User {
	if c.interaction.User != nil {
		return c.interaction.User
	}
	if c.interaction.Member != nil {
		return c.interaction.Member.User
	}
	return nil
}

func (c *InteractionContext) Send(content string) error {
	err := c.sender.InteractionRespond(c.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		return errors.Wrapf(err, "error responding to interaction %s", c.interaction.ID)
	}
	return nil
}
