package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"icedealer/bot"
	"icedealer/config"
	"icedealer/database"
	"icedealer/events"
	"icedealer/service"
	"icedealer/store"
	"icedealer/store/jsonfile"
	"icedealer/store/postgres"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting ice dealer bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize the ledger store. The flat JSON file is the default;
	// DATABASE_URL switches to Postgres.
	var ledger store.Store
	var db *database.DB
	if cfg.DatabaseURL != "" {
		log.Info("Connecting to database...")
		var err error
		db, err = database.NewConnection(ctx, cfg.DatabaseURL, database.PoolSettings{
			MaxConns: cfg.DatabasePoolMaxConns,
			MinConns: cfg.DatabasePoolMinConns,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		ledger = postgres.New(db)
		log.Info("Database connection established successfully")
	} else {
		log.WithField("path", cfg.DataFile).Info("Using flat-file ledger")
		ledger = jsonfile.New(cfg.DataFile)
	}

	// Initialize event bus
	eventBus := events.NewBus()
	eventBus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if change, ok := event.(events.BalanceChangeEvent); ok {
			log.WithFields(log.Fields{
				"accountID":       change.AccountID,
				"delta":           change.ChangeAmount,
				"newBalance":      change.NewBalance,
				"transactionType": change.TransactionType,
			}).Info("Balance changed")
		}
	})

	// Initialize services
	log.Info("Initializing services...")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	accountService := service.NewAccountService(ledger, eventBus, cfg.StartingBalance)
	gamblingService := service.NewGamblingService(accountService, eventBus, rng)
	dailyService := service.NewDailyService(accountService, eventBus, rng, cfg.DailyRewardMin, cfg.DailyRewardMax, cfg.DailyCooldown)
	leaderboardService := service.NewLeaderboardService(ledger)
	flavor := service.NewFlavorPicker(rng)
	log.Info("Services initialized successfully")

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}
	discordBot, err := bot.New(botConfig, accountService, gamblingService, dailyService, leaderboardService, flavor, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	if db != nil {
		log.Info("Closing database connection...")
		db.Close()
	}

	log.Info("Shutdown completed")
	return nil
}
