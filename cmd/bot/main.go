package main

import (
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/mhtoin/ju-go-cog/internal/bot"
	"github.com/mhtoin/ju-go-cog/internal/bot/cogs/text"
	"github.com/mhtoin/ju-go-cog/internal/bot/commands"
	"github.com/mhtoin/ju-go-cog/internal/config"
)

var extensions = []func(commands.Registrar) error{
	text.Setup,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("failed to load config", err)
	}

	lvl, err := log.LvlFromString(cfg.LogLevel)
	if err != nil {
		fatal("invalid log level", err)
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	discordBot, err := bot.New(cfg, log.New("component", "bot"))
	if err != nil {
		fatal("failed to create bot", err)
	}

	for _, setup := range extensions {
		if err := setup(discordBot); err != nil {
			fatal("failed to load extension", err)
		}
	}

	if err := discordBot.Run(); err != nil {
		fatal("error running bot", err)
	}
}

func fatal(msg string, err error) {
	log.Crit(msg, "err", err)
	os.Exit(1)
}
