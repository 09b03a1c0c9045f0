package bot

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/mhtoin/ju-go-cog/internal/bot/commands"
	"github.com/pkg/errors"
)

func (b *Bot) messageHandler(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := b.handleMessage(s, s.State.User.ID, m.Message); err != nil {
		b.logger.Error("command failed", "channel", m.ChannelID, "err", err)
	}
}

func (b *Bot) interactionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.handleInteraction(s, i.Interaction); err != nil {
		b.logger.Error("command failed", "interaction", i.ID, "err", err)
	}
}

// handleMessage runs the command named by a prefixed message. Messages from
// bots, unprefixed messages and unknown names are ignored.
func (b *Bot) handleMessage(sender commands.Sender, selfID string, m *discordgo.Message) error {
	if m.Author == nil || m.Author.ID == selfID || m.Author.Bot {
		return nil
	}

	name, ok := parseCommand(b.Prefix, m.Content)
	if !ok {
		return nil
	}

	cmd, ok := b.Command(name)
	if !ok {
		return nil
	}

	b.logger.Debug("dispatching command", "command", name, "user", m.Author.ID)
	if err := cmd.Handler(commands.NewMessageContext(sender, name, m)); err != nil {
		return errors.Wrapf(err, "command %s", name)
	}
	return nil
}

func (b *Bot) handleInteraction(sender commands.Sender, i *discordgo.Interaction) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	ctx := commands.NewInteractionContext(sender, i)
	cmd, ok := b.Command(ctx.Name())
	if !ok {
		return nil
	}

	b.logger.Debug("dispatching command", "command", ctx.Name(), "interaction", i.ID)
	if err := cmd.Handler(ctx); err != nil {
		return errors.Wrapf(err, "command %s", ctx.Name())
	}
	return nil
}

// parseCommand returns the word directly after prefix. Whatever follows the
// first whitespace is left to the command.
func parseCommand(prefix, content string) (string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(content, prefix)
	if rest == "" {
		return "", false
	}
	if r, _ := utf8.DecodeRuneInString(rest); unicode.IsSpace(r) {
		return "", false
	}
	return strings.Fields(rest)[0], true
}
