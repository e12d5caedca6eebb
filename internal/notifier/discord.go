package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/strideapp/stride-api/internal/config"
	"github.com/strideapp/stride-api/internal/models"
	"github.com/strideapp/stride-api/internal/trophy"
)

type Notifier interface {
	NotifyTrophies(user models.User, earned []trophy.Info) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyTrophies(user models.User, earned []trophy.Info) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}
	if len(earned) == 0 {
		return nil
	}

	names := make([]string, 0, len(earned))
	for _, info := range earned {
		names = append(names, fmt.Sprintf("**%s**", info.Name))
	}

	message := fmt.Sprintf("🏆 **New Trophy!**\n**User:** %s (<@%s>)\n**Earned:** %s",
		user.Username,
		user.DiscordID,
		strings.Join(names, ", "),
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
