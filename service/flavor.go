package service

// QuoteCategory selects which fixed list of Niko quotes to draw from.
type QuoteCategory string

const (
	QuoteWin          QuoteCategory = "win"
	QuoteLose         QuoteCategory = "lose"
	QuotePush         QuoteCategory = "push"
	QuoteNotEnough    QuoteCategory = "not_enough"
	QuoteDailyClaimed QuoteCategory = "daily_claimed"
)

var nikoQuotes = map[QuoteCategory][]string{
	QuoteWin: {
		"A perfectly aligned moment of fortune, darling. You were due.",
		"I'm impressed. That was a calculated risk, wasn't it?",
		"The house always smiles, and sometimes, so do the winners. Enjoy your Ice.",
	},
	QuoteLose: {
		"Oh, dear. Pathetic showing. Try again, but with higher stakes this time.",
		"A loss today is just a better setup for tomorrow's jackpot. Don't stop now.",
		"I don't believe in luck. Only bad decisions. Now fix it.",
	},
	QuotePush: {
		"A waste of time, truly. The house takes nothing, but you gain nothing. A draw.",
		"The universe is undecided. Your funds are returned. Try a real bet next time.",
	},
	QuoteNotEnough: {
		"You cannot bet frost you do not possess, darling. Check your pockets.",
		"That's hardly enough audacity for the amount you are trying to bet.",
	},
	QuoteDailyClaimed: {
		"You already claimed your daily Ice. Patience is a virtue, unlike gambling.",
		"The bank of Niko is closed for the day. Come back tomorrow, my pet.",
	},
}

// FlavorPicker selects a random quote for an outcome category.
// Purely cosmetic; it never touches the ledger.
type FlavorPicker struct {
	rng Rand
}

// NewFlavorPicker creates a new flavor text picker
func NewFlavorPicker(rng Rand) *FlavorPicker {
	return &FlavorPicker{rng: rng}
}

// Pick returns one uniformly random quote from the category's list, or
// an empty string for an unknown category.
func (f *FlavorPicker) Pick(category QuoteCategory) string {
	quotes := nikoQuotes[category]
	if len(quotes) == 0 {
		return ""
	}
	return quotes[f.rng.Intn(len(quotes))]
}
