package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Ledger configuration. DataFile is the flat-file ledger path;
	// when DatabaseURL is set the Postgres store is used instead.
	DataFile    string
	DatabaseURL string

	// Connection pool sizing for the Postgres store
	DatabasePoolMaxConns int32
	DatabasePoolMinConns int32

	// Economy settings
	StartingBalance int64
	DailyRewardMin  int64
	DailyRewardMax  int64
	DailyCooldown   time.Duration

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Ledger
		DataFile:    os.Getenv("DATA_FILE"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Pool sizing with defaults
		DatabasePoolMaxConns: 4,
		DatabasePoolMinConns: 1,

		// Economy settings with defaults
		StartingBalance: 5000,
		DailyRewardMin:  500,
		DailyRewardMax:  1000,
		DailyCooldown:   24 * time.Hour,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if config.DataFile == "" {
		config.DataFile = "ice_ledger.json"
	}
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if min := os.Getenv("DAILY_REWARD_MIN"); min != "" {
		if parsedMin, err := strconv.ParseInt(min, 10, 64); err == nil {
			config.DailyRewardMin = parsedMin
		}
	}
	if max := os.Getenv("DAILY_REWARD_MAX"); max != "" {
		if parsedMax, err := strconv.ParseInt(max, 10, 64); err == nil {
			config.DailyRewardMax = parsedMax
		}
	}
	if cooldown := os.Getenv("DAILY_COOLDOWN"); cooldown != "" {
		if parsedCooldown, err := time.ParseDuration(cooldown); err == nil {
			config.DailyCooldown = parsedCooldown
		}
	}
	if maxConns := os.Getenv("DATABASE_POOL_MAX_CONNS"); maxConns != "" {
		if parsedMax, err := strconv.ParseInt(maxConns, 10, 32); err == nil {
			config.DatabasePoolMaxConns = int32(parsedMax)
		}
	}
	if minConns := os.Getenv("DATABASE_POOL_MIN_CONNS"); minConns != "" {
		if parsedMin, err := strconv.ParseInt(minConns, 10, 32); err == nil {
			config.DatabasePoolMinConns = int32(parsedMin)
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
	}

	return config, nil
}
