// Package commandstest provides a recording commands.Sender for tests.
package commandstest

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

type Message struct {
	ChannelID string
	Content   string
}

type Sender struct {
	// Err, when set, is returned from every send.
	Err error

	mu        sync.Mutex
	messages  []Message
	responses []*discordgo.InteractionResponse
}

func (s *Sender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{ChannelID: channelID, Content: content})
	if s.Err != nil {
		return nil, s.Err
	}
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (s *Sender) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, resp)
	return s.Err
}

func (s *Sender) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Sender) Responses() []*discordgo.InteractionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*discordgo.InteractionResponse(nil), s.responses...)
}
