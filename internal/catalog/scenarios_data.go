package catalog

import "wealth-sprint/internal/models"

// Теги, по которым работает контекстный подбор сценариев.
const (
	TagFinancialCrisis = "Financial crisis"
	TagBurnout         = "Burnout"
	TagMotivation      = "Motivation"
	TagLeadership      = "Leadership"
)

func choice(text string, e fx, desc string) models.ScenarioChoice {
	return models.ScenarioChoice{Text: text, Effects: e, Description: desc}
}

// scenarioRegistry - статический каталог сценариев, порядок объявления важен для фильтров.
var scenarioRegistry = []models.GameScenario{
	{
		ID: 1, Section: models.SectionFinance, Urgency: models.UrgencyHigh,
		Title:       "Emergency Fund Drained",
		Description: "An unexpected expense wiped out most of your savings. Rent is due next week.",
		Tags:        []string{TagFinancialCrisis, "Savings"},
		Options: []models.ScenarioChoice{
			choice("Take a personal loan", fx{BankBalance: 20000, MonthlyExpenses: 2500, Stress: 10}, "Cash now, payments later."),
			choice("Sell some belongings", fx{InHandCash: 8000, Emotion: -6}, "Painful but debt free."),
			choice("Ask family for help", fx{BankBalance: 10000, Karma: -3, Emotion: -4}, ""),
		},
	},
	{
		ID: 2, Section: models.SectionFinance, Urgency: models.UrgencyHigh,
		Title:       "Credit Card Bill Shock",
		Description: "Your credit card statement is far higher than you expected.",
		Tags:        []string{TagFinancialCrisis, "Debt"},
		Options: []models.ScenarioChoice{
			choice("Pay it in full", fx{BankBalance: -15000, Stress: -5, Logic: 4}, ""),
			choice("Pay the minimum", fx{BankBalance: -2000, MonthlyExpenses: 1500, Stress: 6}, ""),
			choice("Convert to instalments", fx{MonthlyExpenses: 2500, Logic: 3}, ""),
		},
	},
	{
		ID: 3, Section: models.SectionFinance, Urgency: models.UrgencyMedium,
		Title:       "Tax Season",
		Description: "Your tax return is due and you have not organized your receipts.",
		Tags:        []string{"Taxes", "Planning"},
		Options: []models.ScenarioChoice{
			choice("Hire an accountant", fx{BankBalance: -5000, Stress: -6, Logic: 2}, ""),
			choice("File it yourself", fx{Logic: 6, Energy: -6, Stress: 4}, ""),
		},
	},
	{
		ID: 4, Section: models.SectionEmotion, Urgency: models.UrgencyHigh,
		Title:       "Running on Empty",
		Description: "You have worked sixty-hour weeks for a month and you can't focus anymore.",
		Tags:        []string{TagBurnout, "Health"},
		Options: []models.ScenarioChoice{
			choice("Take a full week off", fx{Stress: -20, Energy: 15, MainIncome: -3000}, ""),
			choice("Cut back to normal hours", fx{Stress: -10, Energy: 8, Reputation: -2}, ""),
			choice("Power through", fx{Stress: 10, Energy: -10, Emotion: -5}, ""),
		},
	},
	{
		ID: 5, Section: models.SectionEmotion, Urgency: models.UrgencyMedium,
		Title:       "Lost Your Spark",
		Description: "Nothing about your goals excites you lately.",
		Tags:        []string{TagMotivation, "Mindset"},
		Options: []models.ScenarioChoice{
			choice("Find a mentor", fx{Emotion: 10, Logic: 4, MonthlyExpenses: 1000}, ""),
			choice("Start a creative hobby", fx{Emotion: 8, Energy: 4, InHandCash: -2000}, ""),
			choice("Ignore the feeling", fx{Emotion: -5, Stress: 4}, ""),
		},
	},
	{
		ID: 6, Section: models.SectionPersonal, Urgency: models.UrgencyLow,
		Title:       "Comparing Yourself Online",
		Description: "Social media makes everyone else look more successful than you.",
		Tags:        []string{TagMotivation, "Social media"},
		Options: []models.ScenarioChoice{
			choice("Take a social media break", fx{Emotion: 8, Stress: -6}, ""),
			choice("Use it as fuel", fx{Emotion: 3, Energy: 4, Stress: 3}, ""),
		},
	},
	{
		ID: 7, Section: models.SectionPersonal, Urgency: models.UrgencyMedium,
		Title:       "Sleepless Nights",
		Description: "Worries about work keep you up at night.",
		Tags:        []string{TagBurnout, "Sleep"},
		Options: []models.ScenarioChoice{
			choice("See a therapist", fx{BankBalance: -4000, Stress: -12, Emotion: 6}, ""),
			choice("Set a strict bedtime routine", fx{Stress: -6, Energy: 6, Logic: 2}, ""),
			choice("Work late anyway", fx{Energy: -8, Stress: 8}, ""),
		},
	},
	{
		ID: 8, Section: models.SectionBusiness, Urgency: models.UrgencyHigh,
		Title:       "Key Client Threatens to Leave",
		Description: "Your biggest client is unhappy with recent delays.",
		Tags:        []string{"Clients", "Retention"},
		Options: []models.ScenarioChoice{
			choice("Offer a discount", fx{SideIncome: -3000, Reputation: 4}, ""),
			choice("Fly out to meet them", fx{BankBalance: -6000, Reputation: 8, Energy: -6}, ""),
			choice("Let them go", fx{SideIncome: -8000, Stress: -4}, ""),
		},
	},
	{
		ID: 9, Section: models.SectionBusiness, Urgency: models.UrgencyLow,
		Title:       "Speaking Invitation",
		Description: "A business school invites you to give a guest lecture on leadership.",
		Tags:        []string{TagLeadership, "Networking"},
		Options: []models.ScenarioChoice{
			choice("Accept and prepare thoroughly", fx{Reputation: 10, Energy: -5, Logic: 3}, ""),
			choice("Send a deputy", fx{Reputation: 3, Karma: 3}, ""),
			choice("Decline", fx{Reputation: -2}, ""),
		},
	},
	{
		ID: 10, Section: models.SectionInvestment, Urgency: models.UrgencyMedium,
		Title:       "Angel Investment Opportunity",
		Description: "A promising startup offers you an early stake.",
		Tags:        []string{"Startups", "Equity"},
		Options: []models.ScenarioChoice{
			choice("Invest a large check", fx{BankBalance: -50000, SideIncome: 6000, Stress: 8}, ""),
			choice("Invest a small check", fx{BankBalance: -10000, SideIncome: 1200, Logic: 3}, ""),
			choice("Pass", fx{Logic: 2}, ""),
		},
	},
	{
		ID: 11, Section: models.SectionInvestment, Urgency: models.UrgencyLow,
		Title:       "Portfolio Rebalancing",
		Description: "Your portfolio drifted far from your target allocation.",
		Tags:        []string{"Portfolio", "Planning"},
		Options: []models.ScenarioChoice{
			choice("Rebalance now", fx{BankBalance: -1000, Logic: 6, Stress: -3}, ""),
			choice("Let winners run", fx{Stress: 4, Emotion: 3}, ""),
		},
	},
	{
		ID: 12, Section: models.SectionInvestment, Urgency: models.UrgencyHigh,
		Title:       "Market Crash",
		Description: "Markets fell twenty percent this week.",
		Tags:        []string{"Volatility", TagFinancialCrisis},
		Options: []models.ScenarioChoice{
			choice("Buy the dip", fx{BankBalance: -20000, SideIncome: 2500, Stress: 10}, ""),
			choice("Hold steady", fx{Logic: 5, Stress: 4}, ""),
			choice("Sell everything", fx{BankBalance: 15000, SideIncome: -3000, Emotion: -8}, ""),
		},
	},
	{
		ID: 13, Section: models.SectionHRTeam, Urgency: models.UrgencyMedium,
		Title:       "Team Morale Is Low",
		Description: "Your team seems disengaged after a tough quarter.",
		Tags:        []string{TagLeadership, "Morale"},
		Options: []models.ScenarioChoice{
			choice("Organize a team outing", fx{BankBalance: -8000, Reputation: 6, Emotion: 4}, ""),
			choice("Hold one-on-ones", fx{Reputation: 5, Energy: -5, Karma: 3}, ""),
			choice("Push for results", fx{Reputation: -5, Stress: 5}, ""),
		},
	},
	{
		ID: 14, Section: models.SectionHRTeam, Urgency: models.UrgencyHigh,
		Title:       "Star Employee Poached",
		Description: "A competitor offered your best engineer double the salary.",
		Tags:        []string{"Retention", "Hiring"},
		Options: []models.ScenarioChoice{
			choice("Match the offer", fx{MonthlyExpenses: 8000, Reputation: 3}, ""),
			choice("Offer equity and growth", fx{Reputation: 5, Logic: 3}, ""),
			choice("Wish them well", fx{Karma: 4, Stress: 6}, ""),
		},
	},
	{
		ID: 15, Section: models.SectionHRTeam, Urgency: models.UrgencyLow,
		Title:       "Mentoring Program",
		Description: "Junior staff ask you to start a mentoring program.",
		Tags:        []string{TagLeadership, TagMotivation},
		Options: []models.ScenarioChoice{
			choice("Start the program", fx{Reputation: 8, Karma: 6, Energy: -6}, ""),
			choice("Recommend external courses", fx{MonthlyExpenses: 1500, Reputation: 3}, ""),
		},
	},
	{
		ID: 16, Section: models.SectionPersonal, Urgency: models.UrgencyMedium,
		Title:       "Old Friend in Need",
		Description: "A childhood friend lost their job and asks for help finding work.",
		Tags:        []string{"Friendship", "Karma"},
		Options: []models.ScenarioChoice{
			choice("Make introductions", fx{Karma: 8, Reputation: 2, Energy: -3}, ""),
			choice("Lend some money", fx{InHandCash: -5000, Karma: 6}, ""),
			choice("Say you're too busy", fx{Karma: -6, Emotion: -3}, ""),
		},
	},
}
