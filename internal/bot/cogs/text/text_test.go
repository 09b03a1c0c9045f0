package text

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/mhtoin/ju-go-cog/internal/bot/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrar struct {
	cogs []commands.Cog
	err  error
}

func (r *registrar) AddCog(cog commands.Cog) error {
	if r.err != nil {
		return r.err
	}
	r.cogs = append(r.cogs, cog)
	return nil
}

type context struct {
	sent []string
	err  error
}

func (c *context) Name() string            { return "ping" }
func (c *context) Author() *discordgo.User { return &discordgo.User{ID: "u1"} }
func (c *context) Send(content string) error {
	c.sent = append(c.sent, content)
	return c.err
}

func TestSetup(t *testing.T) {
	r := &registrar{}
	require.NoError(t, Setup(r))
	require.Len(t, r.cogs, 1)

	cog := r.cogs[0]
	assert.Equal(t, "text", cog.Name())
	cmds := cog.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "ping", cmds[0].Name)
	assert.NotEmpty(t, cmds[0].Description)
}

func TestSetupReturnsHostError(t *testing.T) {
	hostErr := errors.New("not accepting cogs")
	r := &registrar{err: hostErr}
	assert.Same(t, hostErr, Setup(r))
}

func TestSetupTwiceIsNotGuarded(t *testing.T) {
	r := &registrar{}
	require.NoError(t, Setup(r))
	require.NoError(t, Setup(r))
	assert.Len(t, r.cogs, 2)
}

func TestPing(t *testing.T) {
	cog := &Cog{}
	ping := cog.Commands()[0]

	for i := 0; i < 3; i++ {
		ctx := &context{}
		require.NoError(t, ping.Handler(ctx))
		assert.Equal(t, []string{"Pong!"}, ctx.sent)
	}
}

func TestPingSendError(t *testing.T) {
	sendErr := errors.New("network down")
	ctx := &context{err: sendErr}

	err := (&Cog{}).ping(ctx)
	assert.Same(t, sendErr, err)
	assert.Equal(t, []string{"Pong!"}, ctx.sent)
}
