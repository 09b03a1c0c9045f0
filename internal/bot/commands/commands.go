package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Command is a single named handler. The same Command serves both the
// prefix form (!name) and the slash form (/name).
type Command struct {
	Name        string
	Description string
	Handler     func(ctx Context) error
}

func (c *Command) ApplicationCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
	}
}

// Cog groups commands that are loaded into a client together.
type Cog interface {
	Name() string
	Commands() []*Command
}

// Registrar is the part of the host client a cog's Setup needs.
type Registrar interface {
	AddCog(cog Cog) error
}

func GetApplicationCommands(cmds []*Command) []*discordgo.ApplicationCommand {
	var appCommands []*discordgo.ApplicationCommand
	for _, cmd := range cmds {
		appCommands = append(appCommands, cmd.ApplicationCommand())
	}
	return appCommands
}
