package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"icedealer/models"
	"icedealer/service"
)

// parseAccountID converts the Discord string ID of the invoking user.
func parseAccountID(i *discordgo.InteractionCreate) (int64, error) {
	user := interactionUser(i)
	if user == nil {
		return 0, fmt.Errorf("interaction has no user")
	}
	return strconv.ParseInt(user.ID, 10, 64)
}

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accountID, err := parseAccountID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := b.accounts.GetOrCreateAccount(ctx, accountID)
	if err != nil {
		log.Errorf("Error getting account %d: %v", accountID, err)
		b.respondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	b.respond(s, i, fmt.Sprintf("**Niko's Ledger**: %s, your current Ice balance is **%s %s**.",
		interactionUser(i).Mention(), FormatBalance(account.Balance), IceEmoji))
}

func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accountID, err := parseAccountID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := b.daily.Claim(ctx, accountID, time.Now())
	if err != nil {
		log.Errorf("Error claiming daily for account %d: %v", accountID, err)
		b.respondWithError(s, i, "Unable to process your claim. Please try again.")
		return
	}

	if !result.Claimed {
		quote := b.flavor.Pick(service.QuoteDailyClaimed)
		b.respond(s, i, fmt.Sprintf("**Niko says:** %s You must wait **%s** before the next claim.",
			quote, FormatRemaining(result.Remaining)))
		return
	}

	quote := b.flavor.Pick(service.QuoteWin)
	b.respond(s, i, fmt.Sprintf("**Niko's Gift**: %s, you claimed **%s %s**! **Niko says:** %s Your new balance is **%s %s**.",
		interactionUser(i).Mention(), FormatBalance(result.Reward), IceEmoji,
		quote, FormatBalance(result.NewBalance), IceEmoji))
}

func (b *Bot) handleFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accountID, err := parseAccountID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var choice string
	var amount int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "choice":
			choice = opt.StringValue()
		case "amount":
			amount = opt.IntValue()
		}
	}

	result, err := b.gambling.Flip(ctx, accountID, choice, amount)
	if err != nil {
		b.respondBetError(s, i, accountID, err)
		return
	}

	quote := b.flavor.Pick(outcomeQuote(result.Outcome))
	b.respondEmbed(s, i, flipEmbed(result, quote))
}

func (b *Bot) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accountID, err := parseAccountID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var amount int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			amount = opt.IntValue()
		}
	}

	result, err := b.gambling.Slots(ctx, accountID, amount)
	if err != nil {
		b.respondBetError(s, i, accountID, err)
		return
	}

	quote := b.flavor.Pick(outcomeQuote(result.Outcome))
	b.respondEmbed(s, i, slotsEmbed(result, quote))
}

func (b *Bot) handleHighLow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	accountID, err := parseAccountID(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID: %v", err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var choice string
	var amount int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "choice":
			choice = opt.StringValue()
		case "amount":
			amount = opt.IntValue()
		}
	}

	result, err := b.gambling.HighLow(ctx, accountID, choice, amount)
	if err != nil {
		b.respondBetError(s, i, accountID, err)
		return
	}

	quote := b.flavor.Pick(outcomeQuote(result.Outcome))
	b.respondEmbed(s, i, highLowEmbed(result, quote))
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	top, err := b.leaderboard.TopAccounts(ctx, 10)
	if err != nil {
		log.Errorf("Error reading leaderboard: %v", err)
		b.respondWithError(s, i, "Unable to read the ledger. Please try again.")
		return
	}

	if len(top) == 0 {
		b.respond(s, i, "The Ice Ledger is empty. Go and gamble, darling!")
		return
	}

	lines := make([]string, 0, len(top))
	for rank, account := range top {
		displayName := GetDisplayName(s, i.GuildID, strconv.FormatInt(account.ID, 10))
		lines = append(lines, fmt.Sprintf("**%d.** %s — **%s** %s",
			rank+1, displayName, FormatBalance(account.Balance), IceEmoji))
	}

	b.respondEmbed(s, i, leaderboardEmbed(lines))
}

// outcomeQuote maps a bet outcome to its flavor text category.
func outcomeQuote(outcome models.Outcome) service.QuoteCategory {
	switch outcome {
	case models.OutcomeWin:
		return service.QuoteWin
	case models.OutcomePush:
		return service.QuotePush
	default:
		return service.QuoteLose
	}
}

// respondBetError renders invalid-input rejections as user-facing
// messages; anything else is logged and reported generically.
func (b *Bot) respondBetError(s *discordgo.Session, i *discordgo.InteractionCreate, accountID int64, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidChoice):
		b.respondWithError(s, i, "**Niko says:** Invalid choice, darling. Check the options and try again.")
	case errors.Is(err, service.ErrInvalidWager):
		b.respondWithError(s, i, "**Niko says:** Please bet a positive amount, my pet.")
	case errors.Is(err, service.ErrInsufficientBalance):
		b.respondWithError(s, i, fmt.Sprintf("**Niko says:** %s", b.flavor.Pick(service.QuoteNotEnough)))
	default:
		log.Errorf("Error processing bet for account %d: %v", accountID, err)
		b.respondWithError(s, i, "Unable to process your bet. Please try again.")
	}
}
