package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current Ice balance",
		},
		{
			Name:        "daily",
			Description: "Claim your daily free Ice",
		},
		{
			Name:        "flip",
			Description: "Bet on a coin flip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Heads or tails",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "heads", Value: "heads"},
						{Name: "tails", Value: "tails"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of Ice to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "slots",
			Description: "Spin the slots",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of Ice to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "highlow",
			Description: "Guess if the number is high (>50) or low (<50)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "High or low",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "high", Value: "high"},
						{Name: "low", Value: "low"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of Ice to bet",
					Required:    true,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the top 10 Ice Sovereigns",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance":
		b.handleBalance(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "flip":
		b.handleFlip(s, i)
	case "slots":
		b.handleSlots(s, i)
	case "highlow":
		b.handleHighLow(s, i)
	case "leaderboard":
		b.handleLeaderboard(s, i)
	}
}
