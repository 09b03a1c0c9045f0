package text

import (
	"github.com/mhtoin/ju-go-cog/internal/bot/commands"
)

const pong = "Pong!"

type Cog struct {
	client commands.Registrar
}

// Setup attaches the text cog to client. It is called once when the client
// loads its extensions.
func Setup(client commands.Registrar) error {
	return client.AddCog(&Cog{client: client})
}

func (c *Cog) Name() string { return "text" }

func (c *Cog) Commands() []*commands.Command {
	return []*commands.Command{
		{
			Name:        "ping",
			Description: "Check if the bot is alive",
			Handler:     c.ping,
		},
	}
}

func (c *Cog) ping(ctx commands.Context) error {
	return ctx.Send(pong)
}
