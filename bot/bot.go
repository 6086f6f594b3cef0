package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"icedealer/events"
	"icedealer/service"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config      Config
	session     *discordgo.Session
	accounts    service.AccountService
	gambling    service.GamblingService
	daily       service.DailyService
	leaderboard service.LeaderboardService
	flavor      *service.FlavorPicker
	eventBus    *events.Bus
}

func New(config Config, accounts service.AccountService, gambling service.GamblingService, daily service.DailyService, leaderboard service.LeaderboardService, flavor *service.FlavorPicker, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:      config,
		session:     dg,
		accounts:    accounts,
		gambling:    gambling,
		daily:       daily,
		leaderboard: leaderboard,
		flavor:      flavor,
		eventBus:    eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Announce jackpots in the channel-independent log; the command
	// response itself already shows the jackpot embed.
	eventBus.Subscribe(events.EventTypeJackpotHit, func(ctx context.Context, event events.Event) {
		if jackpot, ok := event.(events.JackpotHitEvent); ok {
			log.WithFields(log.Fields{
				"accountID": jackpot.AccountID,
				"symbol":    jackpot.Symbol,
				"payout":    jackpot.Payout,
			}).Info("Jackpot hit")
		}
	})

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}
