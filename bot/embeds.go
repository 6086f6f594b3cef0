package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"icedealer/models"
)

const (
	colorGreen    = 0x2ecc71
	colorRed      = 0xe74c3c
	colorGold     = 0xf1c40f
	colorDarkGray = 0x607d8b
	colorBlue     = 0x3498db
)

func balanceFooter(newBalance int64) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("New Balance: %s %s", FormatBalance(newBalance), IceEmoji),
	}
}

func flipEmbed(result *models.FlipResult, quote string) *discordgo.MessageEmbed {
	landed := strings.ToUpper(string(result.Landed))

	var outcome string
	var color int
	if result.Outcome == models.OutcomeWin {
		outcome = fmt.Sprintf("It landed on **%s**! You win **%s %s**.", landed, FormatBalance(result.Delta), IceEmoji)
		color = colorGreen
	} else {
		outcome = fmt.Sprintf("It landed on **%s**! You lose **%s %s**.", landed, FormatBalance(result.Wager), IceEmoji)
		color = colorRed
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🧊 Coin Flip: %s vs %s 🧊", strings.ToUpper(string(result.Choice)), landed),
		Description: fmt.Sprintf("**Bet:** %s %s\n**Outcome:** %s",
			FormatBalance(result.Wager), IceEmoji, outcome),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Niko Says", Value: quote},
		},
		Footer: balanceFooter(result.NewBalance),
	}
}

func slotsEmbed(result *models.SlotsResult, quote string) *discordgo.MessageEmbed {
	var title, payout string
	var color int
	switch {
	case result.Jackpot:
		title = "💰 JACKPOT!!! 💰"
		color = colorGold
	case result.Outcome == models.OutcomeWin:
		title = "⭐ Double Match ⭐"
		color = colorGreen
	default:
		title = "💔 Spin Result: Loss 💔"
		color = colorRed
	}

	if result.Outcome == models.OutcomeWin {
		payout = fmt.Sprintf("You hit a match! Net winnings: **+%s %s**.", FormatBalance(result.Delta), IceEmoji)
	} else {
		payout = fmt.Sprintf("No luck, darling. The Ice remains ours. Loss: **%s %s**.", FormatBalance(result.Wager), IceEmoji)
	}

	reels := fmt.Sprintf("%s | %s | %s", result.Reels[0], result.Reels[1], result.Reels[2])

	return &discordgo.MessageEmbed{
		Title: title,
		Description: fmt.Sprintf("**Reels:** `%s`\n**Bet:** %s %s",
			reels, FormatBalance(result.Wager), IceEmoji),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Payout Details", Value: payout},
			{Name: "Niko Says", Value: quote},
		},
		Footer: balanceFooter(result.NewBalance),
	}
}

func highLowEmbed(result *models.HighLowResult, quote string) *discordgo.MessageEmbed {
	var details string
	var color int
	switch result.Outcome {
	case models.OutcomePush:
		details = fmt.Sprintf("The number was **50**! It's a push. Your **%s %s** is returned.",
			FormatBalance(result.Wager), IceEmoji)
		color = colorDarkGray
	case models.OutcomeWin:
		details = fmt.Sprintf("The number was **%d**! You were right, darling. You win **%s %s**.",
			result.Draw, FormatBalance(result.Delta), IceEmoji)
		color = colorGreen
	default:
		details = fmt.Sprintf("The number was **%d**. Unlucky. You lose **%s %s**.",
			result.Draw, FormatBalance(result.Wager), IceEmoji)
		color = colorRed
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔼 High-Low: %s 🔽", strings.ToUpper(string(result.Choice))),
		Description: fmt.Sprintf("**Draw:** %d\n**Bet:** %s %s",
			result.Draw, FormatBalance(result.Wager), IceEmoji),
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Details", Value: details},
			{Name: "Niko Says", Value: quote},
		},
		Footer: balanceFooter(result.NewBalance),
	}
}

func leaderboardEmbed(lines []string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🧊 Niko's Leaderboard: The Ice Sovereigns 🧊",
		Description: strings.Join(lines, "\n"),
		Color:       colorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "I track the cold, hard currency. Get on my list, darling.",
		},
	}
}
