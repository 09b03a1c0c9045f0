package bot

import (
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) readyHandler(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("connected", "user", r.User.Username, "guilds", len(r.Guilds))
	if err := UpdateBotStatus(s, "online", discordgo.ActivityTypeListening, b.Prefix+"ping"); err != nil {
		b.logger.Warn("error updating status", "err", err)
	}
}

func UpdateBotStatus(s *discordgo.Session, status string, activityType discordgo.ActivityType, activityName string) error {
	activity := discordgo.Activity{
		Name: activityName,
		Type: activityType,
	}

	updateData := discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{&activity},
		Status:     status,
		AFK:        false,
	}

	return s.UpdateStatusComplex(updateData)
}
