package bot

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	log "github.com/inconshreveable/log15"
	"github.com/mhtoin/ju-go-cog/internal/bot/commands"
	"github.com/mhtoin/ju-go-cog/internal/config"
	"github.com/pkg/errors"
)

const intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

var (
	ErrClosed        = errors.New("bot is closed")
	ErrCogExists     = errors.New("cog already loaded")
	ErrCommandExists = errors.New("command already registered")
)

type route struct {
	cog     string
	command *commands.Command
}

type Bot struct {
	Session      *discordgo.Session
	Token        string
	Prefix       string
	GuildID      string
	SyncCommands bool

	logger log.Logger

	mu      sync.RWMutex
	closed  bool
	cogs    []string
	routes  map[string]route
	ordered []*commands.Command
}

func New(cfg config.Config, logger log.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("token is required")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "!"
	}

	bot := &Bot{
		Token:        cfg.Token,
		Prefix:       prefix,
		GuildID:      cfg.GuildID,
		SyncCommands: cfg.SyncCommands,
		logger:       logger,
		routes:       make(map[string]route),
	}

	return bot, nil
}

// AddCog routes every command of cog to it. Either all of the cog's commands
// are registered or none are.
func (b *Bot) AddCog(cog commands.Cog) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	name := cog.Name()
	for _, c := range b.cogs {
		if c == name {
			return errors.Wrapf(ErrCogExists, "cog %q", name)
		}
	}

	cmds := cog.Commands()
	seen := make(map[string]bool, len(cmds))
	for _, cmd := range cmds {
		if r, ok := b.routes[cmd.Name]; ok {
			return errors.Wrapf(ErrCommandExists, "command %q owned by cog %q", cmd.Name, r.cog)
		}
		if seen[cmd.Name] {
			return errors.Wrapf(ErrCommandExists, "command %q declared twice by cog %q", cmd.Name, name)
		}
		seen[cmd.Name] = true
	}

	for _, cmd := range cmds {
		b.routes[cmd.Name] = route{cog: name, command: cmd}
		b.ordered = append(b.ordered, cmd)
	}
	b.cogs = append(b.cogs, name)
	b.logger.Debug("cog loaded", "cog", name, "commands", len(cmds))
	return nil
}

func (b *Bot) Cogs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.cogs...)
}

func (b *Bot) Command(name string) (*commands.Command, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r, ok := b.routes[name]
	return r.command, ok
}

func (b *Bot) allCommands() []*commands.Command {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*commands.Command(nil), b.ordered...)
}

func (b *Bot) Start() error {
	session, err := discordgo.New("Bot " + b.Token)
	if err != nil {
		return errors.Wrap(err, "error creating Discord session")
	}
	b.Session = session
	b.Session.Identify.Intents = intents

	b.Session.AddHandler(b.readyHandler)
	b.Session.AddHandler(b.messageHandler)
	b.Session.AddHandler(b.interactionHandler)

	if err := b.Session.Open(); err != nil {
		return errors.Wrap(err, "error opening connection")
	}

	if b.SyncCommands {
		if err := b.syncApplicationCommands(); err != nil {
			b.Session.Close()
			return err
		}
	}

	b.logger.Info("bot is now running, press CTRL-C to exit", "prefix", b.Prefix, "cogs", b.Cogs())
	return nil
}

func (b *Bot) syncApplicationCommands() error {
	appCommands := commands.GetApplicationCommands(b.allCommands())
	_, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, b.GuildID, appCommands)
	if err != nil {
		return errors.Wrap(err, "error registering application commands")
	}
	b.logger.Info("application commands registered", "count", len(appCommands), "guild", b.GuildID)
	return nil
}

// Stop closes the session. A stopped bot accepts no further cogs.
func (b *Bot) Stop() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	if b.Session != nil {
		if err := b.Session.Close(); err != nil {
			b.logger.Warn("error closing session", "err", err)
		}
	}
}

func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	b.logger.Info("shutting down")
	b.Stop()
	return nil
}
