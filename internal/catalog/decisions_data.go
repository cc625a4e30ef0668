package catalog

import "wealth-sprint/internal/models"

type fx = models.Effects

func opt(id, text string, e fx, desc string) models.DecisionOption {
	return models.DecisionOption{ID: id, Text: text, Consequences: e, Description: desc}
}

// decisionRegistry - все решения каталога, по порядку дней.
// Для дня d каждое решение обязано иметь Day == d (проверяется в тестах).
var decisionRegistry = []models.Decision{
	// --- День 1 ---
	{
		ID: "d1_real_estate_1", Day: 1, Category: models.CategoryRealEstate,
		Question: "A broker offers you a small studio apartment below market price, but you must decide this week. What do you do?",
		Options: []models.DecisionOption{
			opt("d1_r1_research", "Research the neighbourhood first", fx{Logic: 8, Stress: -5}, "Patience keeps the pressure off and sharpens your judgement."),
			opt("d1_r1_buy", "Buy it immediately", fx{Financial: -25000, Stress: 10, Logic: -3}, "You own property now, but the rush left you uneasy."),
			opt("d1_r1_pass", "Pass on the deal", fx{Emotion: -3, Logic: 2}, "Nothing gained, nothing lost."),
		},
	},
	{
		ID: "d1_lifestyle_1", Day: 1, Category: models.CategoryLifestyle,
		Question: "Friends invite you on an expensive weekend trip. Do you go?",
		Options: []models.DecisionOption{
			opt("d1_l1_accept", "Go on the trip", fx{Financial: -8000, Emotion: 10, Energy: 5}, "Great memories, lighter wallet."),
			opt("d1_l1_decline", "Decline and stay on budget", fx{Logic: 5, Emotion: -5, Stress: 5}, "Disciplined, but you feel left out."),
		},
	},

	// --- День 2 ---
	{
		ID: "d2_career_1", Day: 2, Category: models.CategoryCareer,
		Question: "Your manager offers a promotion that comes with longer hours. Accept?",
		Options: []models.DecisionOption{
			opt("d2_c1_accept", "Accept the promotion", fx{MainIncome: 15000, Stress: 12, Energy: -8, Reputation: 6}, ""),
			opt("d2_c1_negotiate", "Negotiate flexible hours", fx{MainIncome: 8000, Logic: 6, Reputation: 3}, ""),
			opt("d2_c1_decline", "Decline politely", fx{Emotion: 4, Reputation: -4}, ""),
		},
	},
	{
		ID: "d2_investment_1", Day: 2, Category: models.CategoryInvestment,
		Question: "A colleague pitches a hot stock tip. How do you respond?",
		Options: []models.DecisionOption{
			opt("d2_i1_allin", "Invest a large amount", fx{Financial: -20000, Stress: 15, Karma: -2}, ""),
			opt("d2_i1_small", "Invest a small test amount", fx{Financial: -3000, Logic: 4}, ""),
			opt("d2_i1_ignore", "Ignore the tip", fx{Logic: 6, Stress: -2}, ""),
		},
	},
	{
		ID: "d2_family_1", Day: 2, Category: models.CategoryFamily,
		Question: "A relative asks to borrow money for a medical bill.",
		Options: []models.DecisionOption{
			opt("d2_f1_lend", "Lend the money", fx{Financial: -10000, Karma: 12, Emotion: 6}, ""),
			opt("d2_f1_partial", "Help with part of it", fx{Financial: -4000, Karma: 6, Emotion: 2}, ""),
			opt("d2_f1_refuse", "Refuse", fx{Karma: -8, Emotion: -6, Stress: 4}, ""),
		},
	},

	// --- День 3 ---
	{
		ID: "d3_health_1", Day: 3, Category: models.CategoryHealth,
		Question: "You have been skipping sleep to work. A gym membership is on offer.",
		Options: []models.DecisionOption{
			opt("d3_h1_join", "Join the gym", fx{MonthlyExpenses: 2000, Energy: 12, Stress: -8}, ""),
			opt("d3_h1_walk", "Start walking every morning", fx{Energy: 6, Stress: -4, Logic: 2}, ""),
			opt("d3_h1_ignore", "Keep grinding", fx{Energy: -10, Stress: 10, MainIncome: 2000}, ""),
		},
	},
	{
		ID: "d3_education_1", Day: 3, Category: models.CategoryEducation,
		Question: "An online finance course promises to double your investing skills.",
		Options: []models.DecisionOption{
			opt("d3_e1_enroll", "Enroll in the course", fx{Financial: -6000, Logic: 10, Energy: -3}, ""),
			opt("d3_e1_books", "Read free books instead", fx{Logic: 5, Energy: -2}, ""),
		},
	},

	// --- День 4 ---
	{
		ID: "d4_business_1", Day: 4, Category: models.CategoryBusiness,
		Question: "A friend wants you as a co-founder in a small cafe.",
		Options: []models.DecisionOption{
			opt("d4_b1_join", "Join as co-founder", fx{Financial: -30000, SideIncome: 6000, Stress: 10, Reputation: 4}, ""),
			opt("d4_b1_advise", "Offer advice only", fx{Karma: 4, Reputation: 2}, ""),
			opt("d4_b1_decline", "Decline", fx{Emotion: -2}, ""),
		},
	},
	{
		ID: "d4_lifestyle_1", Day: 4, Category: models.CategoryLifestyle,
		Question: "Your phone is old. A new flagship model just launched.",
		Options: []models.DecisionOption{
			opt("d4_l1_buy", "Buy the flagship", fx{InHandCash: -9000, Emotion: 6}, ""),
			opt("d4_l1_midrange", "Buy a mid-range phone", fx{InHandCash: -3000, Logic: 3}, ""),
			opt("d4_l1_keep", "Keep the old one", fx{Logic: 4, Emotion: -2}, ""),
		},
	},
	{
		ID: "d4_investment_1", Day: 4, Category: models.CategoryInvestment,
		Question: "Your bank suggests moving savings into a fixed deposit.",
		Options: []models.DecisionOption{
			opt("d4_i1_deposit", "Open the fixed deposit", fx{SideIncome: 1500, Logic: 4, Stress: -3}, ""),
			opt("d4_i1_mutual", "Choose an index fund", fx{SideIncome: 2500, Stress: 3, Logic: 5}, ""),
		},
	},
	{
		ID: "d4_career_1", Day: 4, Category: models.CategoryCareer,
		Question: "A recruiter calls with an offer from a competitor.",
		Options: []models.DecisionOption{
			opt("d4_c1_interview", "Go to the interview", fx{Energy: -4, Logic: 3, Stress: 4}, ""),
			opt("d4_c1_leverage", "Use it to ask for a raise", fx{MainIncome: 5000, Reputation: -3, Stress: 5}, ""),
			opt("d4_c1_ignore", "Ignore the call", fx{Karma: 2}, ""),
		},
	},

	// --- День 5 ---
	{
		ID: "d5_team_1", Day: 5, Category: models.CategoryTeam,
		Question: "Two teammates are in constant conflict. How do you handle it?",
		Options: []models.DecisionOption{
			opt("d5_t1_mediate", "Mediate a conversation", fx{Reputation: 6, Energy: -5, Karma: 4}, ""),
			opt("d5_t1_escalate", "Escalate to HR", fx{Stress: -2, Reputation: -2}, ""),
			opt("d5_t1_ignore", "Let them sort it out", fx{Stress: 6, Reputation: -4}, ""),
		},
	},
	{
		ID: "d5_health_1", Day: 5, Category: models.CategoryHealth,
		Question: "You feel a burnout coming. Take a day off?",
		Options: []models.DecisionOption{
			opt("d5_h1_rest", "Take the day off", fx{Energy: 12, Stress: -10, MainIncome: -1000}, ""),
			opt("d5_h1_push", "Push through", fx{Energy: -8, Stress: 8}, ""),
		},
	},
	{
		ID: "d5_family_1", Day: 5, Category: models.CategoryFamily,
		Question: "Your partner wants to plan a vacation for next month.",
		Options: []models.DecisionOption{
			opt("d5_f1_plan", "Plan a proper vacation", fx{Financial: -15000, Emotion: 12, Stress: -6}, ""),
			opt("d5_f1_staycation", "Suggest a staycation", fx{Financial: -2000, Emotion: 5}, ""),
			opt("d5_f1_postpone", "Postpone it", fx{Emotion: -6, Karma: -2}, ""),
		},
	},
	{
		ID: "d5_marketing_1", Day: 5, Category: models.CategoryMarketing,
		Question: "A local influencer offers to promote your side project.",
		Options: []models.DecisionOption{
			opt("d5_m1_pay", "Pay for promotion", fx{InHandCash: -4000, SideIncome: 3000, Reputation: 4}, ""),
			opt("d5_m1_organic", "Grow organically", fx{Logic: 4, Energy: -3}, ""),
		},
	},
	{
		ID: "d5_tech_1", Day: 5, Category: models.CategoryBusiness, Sector: models.SectorTechStartups,
		Question: "Your startup's lead engineer asks for equity instead of a raise.",
		Options: []models.DecisionOption{
			opt("d5_ts1_equity", "Grant equity", fx{Reputation: 6, Karma: 4, Logic: 2}, ""),
			opt("d5_ts1_raise", "Give a cash raise", fx{MonthlyExpenses: 5000, Reputation: 2}, ""),
			opt("d5_ts1_refuse", "Refuse both", fx{Reputation: -8, Stress: 6}, ""),
		},
	},

	// --- День 6 ---
	{
		ID: "d6_real_estate_1", Day: 6, Category: models.CategoryRealEstate,
		Question: "Your landlord raises rent by 15%.",
		Options: []models.DecisionOption{
			opt("d6_r1_pay", "Accept the increase", fx{MonthlyExpenses: 3000, Stress: 4}, ""),
			opt("d6_r1_negotiate", "Negotiate", fx{MonthlyExpenses: 1000, Logic: 5, Energy: -2}, ""),
			opt("d6_r1_move", "Move somewhere cheaper", fx{Financial: -5000, MonthlyExpenses: -2000, Energy: -8, Stress: 6}, ""),
		},
	},
	{
		ID: "d6_investment_1", Day: 6, Category: models.CategoryInvestment,
		Question: "Crypto prices are surging. Everyone is talking about it.",
		Options: []models.DecisionOption{
			opt("d6_i1_buy", "Buy in now", fx{Financial: -12000, Stress: 12, Emotion: 4}, ""),
			opt("d6_i1_dca", "Start a small monthly plan", fx{MonthlyExpenses: 1000, Logic: 4}, ""),
			opt("d6_i1_skip", "Stay out", fx{Logic: 3, Emotion: -2}, ""),
		},
	},
	{
		ID: "d6_career_1", Day: 6, Category: models.CategoryCareer,
		Question: "You are asked to present at an industry conference.",
		Options: []models.DecisionOption{
			opt("d6_c1_present", "Accept and prepare", fx{Reputation: 10, Stress: 8, Energy: -6}, ""),
			opt("d6_c1_decline", "Decline", fx{Stress: -3, Reputation: -2}, ""),
		},
	},
	{
		ID: "d6_lifestyle_1", Day: 6, Category: models.CategoryLifestyle,
		Question: "You keep ordering takeout. Cook at home instead?",
		Options: []models.DecisionOption{
			opt("d6_l1_cook", "Start cooking", fx{MonthlyExpenses: -1500, Energy: -2, Emotion: 3}, ""),
			opt("d6_l1_mealplan", "Subscribe to a meal plan", fx{MonthlyExpenses: 1000, Energy: 4}, ""),
			opt("d6_l1_continue", "Keep ordering", fx{MonthlyExpenses: 500, Emotion: 2}, ""),
		},
	},

	// --- День 7 ---
	{
		ID: "d7_business_1", Day: 7, Category: models.CategoryBusiness,
		Question: "A supplier offers a bulk discount if you pay upfront.",
		Options: []models.DecisionOption{
			opt("d7_b1_upfront", "Pay upfront", fx{Financial: -18000, SideIncome: 4000, Logic: 3}, ""),
			opt("d7_b1_monthly", "Stay on monthly terms", fx{Stress: -2}, ""),
		},
	},
	{
		ID: "d7_team_1", Day: 7, Category: models.CategoryTeam,
		Question: "A junior colleague made an expensive mistake.",
		Options: []models.DecisionOption{
			opt("d7_t1_coach", "Coach them privately", fx{Karma: 8, Reputation: 5, Energy: -3}, ""),
			opt("d7_t1_blame", "Report it publicly", fx{Karma: -8, Reputation: -3, Stress: -2}, ""),
			opt("d7_t1_cover", "Cover for them", fx{Karma: 4, Stress: 6}, ""),
		},
	},
	{
		ID: "d7_education_1", Day: 7, Category: models.CategoryEducation,
		Question: "Your company will sponsor an MBA if you commit to five more years.",
		Options: []models.DecisionOption{
			opt("d7_e1_accept", "Accept the sponsorship", fx{Logic: 12, Energy: -10, Stress: 6, MainIncome: 3000}, ""),
			opt("d7_e1_decline", "Decline to stay flexible", fx{Emotion: 3, Logic: -2}, ""),
		},
	},
	{
		ID: "d7_health_1", Day: 7, Category: models.CategoryHealth,
		Question: "Your insurance renewal is due with a higher premium.",
		Options: []models.DecisionOption{
			opt("d7_h1_renew", "Renew full coverage", fx{Financial: -7000, Stress: -6}, ""),
			opt("d7_h1_basic", "Downgrade to basic", fx{Financial: -3000, Stress: 3}, ""),
			opt("d7_h1_skip", "Skip insurance this year", fx{Stress: 10, Karma: -2}, ""),
		},
	},
	{
		ID: "d7_fastfood_1", Day: 7, Category: models.CategoryOperations, Sector: models.SectorFastFood,
		Question: "Your burger outlet's fryer broke down during the lunch rush.",
		Options: []models.DecisionOption{
			opt("d7_ff1_replace", "Replace it today", fx{Financial: -12000, Reputation: 4}, ""),
			opt("d7_ff1_repair", "Call for a repair", fx{Financial: -3000, Stress: 5}, ""),
			opt("d7_ff1_limit", "Run a limited menu", fx{SideIncome: -2000, Reputation: -5}, ""),
		},
	},

	// --- День 8 ---
	{
		ID: "d8_investment_1", Day: 8, Category: models.CategoryInvestment,
		Question: "Gold prices dipped. Buy some as a hedge?",
		Options: []models.DecisionOption{
			opt("d8_i1_buy", "Buy gold", fx{Financial: -10000, Logic: 4, Stress: -2}, ""),
			opt("d8_i1_wait", "Wait for a bigger dip", fx{Logic: 2}, ""),
		},
	},
	{
		ID: "d8_family_1", Day: 8, Category: models.CategoryFamily,
		Question: "A family wedding needs your contribution.",
		Options: []models.DecisionOption{
			opt("d8_f1_generous", "Contribute generously", fx{Financial: -15000, Karma: 8, Emotion: 8}, ""),
			opt("d8_f1_modest", "Give a modest gift", fx{Financial: -4000, Karma: 3}, ""),
			opt("d8_f1_skip", "Skip the wedding", fx{Karma: -6, Emotion: -8}, ""),
		},
	},
	{
		ID: "d8_career_1", Day: 8, Category: models.CategoryCareer,
		Question: "You can take on a freelance project on weekends.",
		Options: []models.DecisionOption{
			opt("d8_c1_take", "Take the project", fx{SideIncome: 7000, Energy: -10, Stress: 6}, ""),
			opt("d8_c1_refer", "Refer a friend", fx{Karma: 5, Reputation: 3}, ""),
			opt("d8_c1_decline", "Protect your weekends", fx{Energy: 5, Emotion: 3}, ""),
		},
	},
	{
		ID: "d8_lifestyle_1", Day: 8, Category: models.CategoryLifestyle,
		Question: "Your car needs a major service. Sell it and use public transport?",
		Options: []models.DecisionOption{
			opt("d8_l1_service", "Service the car", fx{Financial: -6000, Energy: 2}, ""),
			opt("d8_l1_sell", "Sell the car", fx{Financial: 40000, MonthlyExpenses: -2500, Energy: -5}, ""),
		},
	},
	{
		ID: "d8_ecommerce_1", Day: 8, Category: models.CategoryMarketing, Sector: models.SectorEcommerce,
		Question: "Your online store can join a marketplace festival sale.",
		Options: []models.DecisionOption{
			opt("d8_ec1_join", "Join with deep discounts", fx{SideIncome: 6000, Stress: 8, Reputation: 4}, ""),
			opt("d8_ec1_skip", "Skip the festival", fx{SideIncome: -1000, Energy: 3}, ""),
		},
	},

	// --- День 9 ---
	{
		ID: "d9_business_1", Day: 9, Category: models.CategoryBusiness,
		Question: "A competitor wants to buy your side business.",
		Options: []models.DecisionOption{
			opt("d9_b1_sell", "Sell it", fx{Financial: 60000, SideIncome: -5000, Emotion: -4}, ""),
			opt("d9_b1_counter", "Make a counter-offer", fx{Logic: 6, Stress: 4}, ""),
			opt("d9_b1_keep", "Keep building", fx{Emotion: 4, Reputation: 3}, ""),
		},
	},
	{
		ID: "d9_team_1", Day: 9, Category: models.CategoryTeam,
		Question: "Your team asks for a remote-work day every week.",
		Options: []models.DecisionOption{
			opt("d9_t1_allow", "Allow it", fx{Reputation: 6, Emotion: 4, Logic: -1}, ""),
			opt("d9_t1_trial", "Run a one-month trial", fx{Reputation: 4, Logic: 4}, ""),
			opt("d9_t1_deny", "Deny the request", fx{Reputation: -6, Stress: 3}, ""),
		},
	},
	{
		ID: "d9_health_1", Day: 9, Category: models.CategoryHealth,
		Question: "A friend recommends a meditation retreat.",
		Options: []models.DecisionOption{
			opt("d9_h1_go", "Go to the retreat", fx{Financial: -9000, Stress: -15, Emotion: 8, Energy: 6}, ""),
			opt("d9_h1_app", "Try a meditation app", fx{MonthlyExpenses: 300, Stress: -5}, ""),
		},
	},
	{
		ID: "d9_investment_1", Day: 9, Category: models.CategoryInvestment,
		Question: "An old friend asks you to invest in his restaurant.",
		Options: []models.DecisionOption{
			opt("d9_i1_invest", "Invest", fx{Financial: -25000, SideIncome: 3500, Karma: 4}, ""),
			opt("d9_i1_loan", "Offer a loan with interest", fx{Financial: -15000, SideIncome: 1500, Logic: 3}, ""),
			opt("d9_i1_refuse", "Refuse", fx{Karma: -3}, ""),
		},
	},

	// --- День 10 ---
	{
		ID: "d10_career_1", Day: 10, Category: models.CategoryCareer,
		Question: "Rumours of layoffs are spreading at work.",
		Options: []models.DecisionOption{
			opt("d10_c1_upskill", "Upskill quietly", fx{Logic: 8, Energy: -6}, ""),
			opt("d10_c1_search", "Start a job search", fx{Stress: 6, Logic: 3}, ""),
			opt("d10_c1_wait", "Wait and see", fx{Stress: 8}, ""),
		},
	},
	{
		ID: "d10_real_estate_1", Day: 10, Category: models.CategoryRealEstate,
		Question: "Your studio could be rented out on short-term stays.",
		Options: []models.DecisionOption{
			opt("d10_r1_rent", "List it", fx{SideIncome: 5000, Stress: 4, Energy: -3}, ""),
			opt("d10_r1_longterm", "Find a long-term tenant", fx{SideIncome: 3500, Stress: -2}, ""),
		},
	},
	{
		ID: "d10_lifestyle_1", Day: 10, Category: models.CategoryLifestyle,
		Question: "It's your birthday. How do you celebrate?",
		Options: []models.DecisionOption{
			opt("d10_l1_party", "Throw a big party", fx{Financial: -12000, Emotion: 12, Reputation: 4}, ""),
			opt("d10_l1_dinner", "Quiet dinner with close friends", fx{Financial: -3000, Emotion: 8}, ""),
			opt("d10_l1_work", "Work as usual", fx{Emotion: -8, Logic: 2}, ""),
		},
	},
	{
		ID: "d10_family_1", Day: 10, Category: models.CategoryFamily,
		Question: "Your parents want to renovate their home and ask for help.",
		Options: []models.DecisionOption{
			opt("d10_f1_pay", "Pay for the renovation", fx{Financial: -35000, Karma: 12, Emotion: 6}, ""),
			opt("d10_f1_help", "Help with planning and labour", fx{Energy: -8, Karma: 8}, ""),
			opt("d10_f1_decline", "Say you can't right now", fx{Karma: -4, Stress: 3}, ""),
		},
	},
	{
		ID: "d10_healthcare_1", Day: 10, Category: models.CategoryOperations, Sector: models.SectorHealthcare,
		Question: "Your clinic's compliance audit found outdated equipment.",
		Options: []models.DecisionOption{
			opt("d10_hc1_upgrade", "Upgrade everything", fx{Financial: -40000, Reputation: 10}, ""),
			opt("d10_hc1_phase", "Upgrade in phases", fx{Financial: -15000, Reputation: 4, Stress: 4}, ""),
			opt("d10_hc1_appeal", "Appeal the finding", fx{Reputation: -6, Stress: 8}, ""),
		},
	},

	// --- День 11: только fast food ---
	{
		ID: "d11_fastfood_1", Day: 11, Category: models.CategoryOperations, Sector: models.SectorFastFood,
		Question: "A food critic is visiting your outlet tomorrow.",
		Options: []models.DecisionOption{
			opt("d11_ff1_special", "Prepare a special menu", fx{Financial: -5000, Reputation: 10, Stress: 6}, ""),
			opt("d11_ff1_normal", "Serve as usual", fx{Reputation: 2}, ""),
		},
	},
	{
		ID: "d11_fastfood_2", Day: 11, Category: models.CategoryTeam, Sector: models.SectorFastFood,
		Question: "Your kitchen staff want higher wages for night shifts.",
		Options: []models.DecisionOption{
			opt("d11_ff2_raise", "Raise night-shift pay", fx{MonthlyExpenses: 6000, Reputation: 6, Karma: 5}, ""),
			opt("d11_ff2_bonus", "Offer a performance bonus", fx{MonthlyExpenses: 2500, Reputation: 3}, ""),
			opt("d11_ff2_refuse", "Refuse", fx{Reputation: -8, Stress: 6}, ""),
		},
	},
	{
		ID: "d11_fastfood_3", Day: 11, Category: models.CategoryMarketing, Sector: models.SectorFastFood,
		Question: "A delivery app offers exclusive listing at a high commission.",
		Options: []models.DecisionOption{
			opt("d11_ff3_exclusive", "Go exclusive", fx{SideIncome: 8000, MonthlyExpenses: 3000}, ""),
			opt("d11_ff3_multi", "Stay on multiple apps", fx{SideIncome: 4000, Logic: 3}, ""),
			opt("d11_ff3_own", "Build your own delivery", fx{Financial: -20000, SideIncome: 6000, Energy: -8}, ""),
		},
	},

	// --- День 12 ---
	{
		ID: "d12_tech_1", Day: 12, Category: models.CategoryInvestment, Sector: models.SectorTechStartups,
		Question: "A venture fund offers a term sheet with aggressive terms.",
		Options: []models.DecisionOption{
			opt("d12_ts1_sign", "Sign the term sheet", fx{Financial: 100000, Stress: 12, Emotion: 4}, ""),
			opt("d12_ts1_negotiate", "Negotiate better terms", fx{Logic: 8, Stress: 6}, ""),
			opt("d12_ts1_bootstrap", "Keep bootstrapping", fx{Emotion: 3, Energy: -4}, ""),
		},
	},
	{
		ID: "d12_tech_2", Day: 12, Category: models.CategoryOperations, Sector: models.SectorTechStartups,
		Question: "Your cloud bill doubled this month.",
		Options: []models.DecisionOption{
			opt("d12_ts2_optimize", "Spend a week optimizing", fx{MonthlyExpenses: -3000, Energy: -6, Logic: 5}, ""),
			opt("d12_ts2_pay", "Just pay it", fx{MonthlyExpenses: 4000}, ""),
		},
	},
	{
		ID: "d12_business_1", Day: 12, Category: models.CategoryBusiness,
		Question: "You are invited to join a local business network.",
		Options: []models.DecisionOption{
			opt("d12_b1_join", "Pay the membership", fx{Financial: -5000, Reputation: 8}, ""),
			opt("d12_b1_decline", "Decline", fx{Reputation: -2}, ""),
		},
	},
	{
		ID: "d12_health_1", Day: 12, Category: models.CategoryHealth,
		Question: "A routine check-up shows high cholesterol.",
		Options: []models.DecisionOption{
			opt("d12_h1_diet", "Change your diet", fx{Energy: 6, Emotion: -2, MonthlyExpenses: 800}, ""),
			opt("d12_h1_meds", "Take medication", fx{MonthlyExpenses: 1200, Stress: -3}, ""),
			opt("d12_h1_ignore", "Ignore it", fx{Stress: 5, Energy: -4}, ""),
		},
	},
	{
		ID: "d12_career_1", Day: 12, Category: models.CategoryCareer,
		Question: "Your boss takes credit for your idea in a meeting.",
		Options: []models.DecisionOption{
			opt("d12_c1_confront", "Confront them privately", fx{Reputation: 3, Stress: 6, Logic: 2}, ""),
			opt("d12_c1_document", "Document your work going forward", fx{Logic: 6}, ""),
			opt("d12_c1_let_go", "Let it go", fx{Emotion: -6, Karma: 2}, ""),
		},
	},

	// --- День 13 ---
	{
		ID: "d13_ecommerce_1", Day: 13, Category: models.CategoryOperations, Sector: models.SectorEcommerce,
		Question: "Returns are eating into your store's margins.",
		Options: []models.DecisionOption{
			opt("d13_ec1_strict", "Tighten the return policy", fx{SideIncome: 2000, Reputation: -4}, ""),
			opt("d13_ec1_quality", "Improve product photos and sizing", fx{Financial: -6000, Reputation: 5, SideIncome: 1500}, ""),
		},
	},
	{
		ID: "d13_ecommerce_2", Day: 13, Category: models.CategoryBusiness, Sector: models.SectorEcommerce,
		Question: "A warehouse offers fulfilment services.",
		Options: []models.DecisionOption{
			opt("d13_ec2_outsource", "Outsource fulfilment", fx{MonthlyExpenses: 5000, Energy: 8, Stress: -6}, ""),
			opt("d13_ec2_inhouse", "Keep it in-house", fx{Energy: -6, Logic: 3}, ""),
		},
	},
	{
		ID: "d13_investment_1", Day: 13, Category: models.CategoryInvestment,
		Question: "Interest rates are dropping. Refinance your loan?",
		Options: []models.DecisionOption{
			opt("d13_i1_refinance", "Refinance", fx{Financial: -2000, MonthlyExpenses: -2500, Logic: 4}, ""),
			opt("d13_i1_prepay", "Prepay part of the loan", fx{Financial: -20000, MonthlyExpenses: -3500, Stress: -4}, ""),
			opt("d13_i1_nothing", "Do nothing", fx{}, ""),
		},
	},
	{
		ID: "d13_team_1", Day: 13, Category: models.CategoryTeam,
		Question: "Your top performer wants a four-day week.",
		Options: []models.DecisionOption{
			opt("d13_t1_approve", "Approve it", fx{Reputation: 6, Karma: 4}, ""),
			opt("d13_t1_counter", "Counter with a raise", fx{MonthlyExpenses: 3000, Reputation: 2}, ""),
			opt("d13_t1_refuse", "Refuse", fx{Reputation: -5, Stress: 4}, ""),
		},
	},

	// --- День 14 ---
	{
		ID: "d14_healthcare_1", Day: 14, Category: models.CategoryBusiness, Sector: models.SectorHealthcare,
		Question: "A hospital chain wants to partner with your clinic.",
		Options: []models.DecisionOption{
			opt("d14_hc1_partner", "Partner with them", fx{SideIncome: 12000, Reputation: 6, Stress: 6}, ""),
			opt("d14_hc1_independent", "Stay independent", fx{Emotion: 4, Karma: 3}, ""),
		},
	},
	{
		ID: "d14_healthcare_2", Day: 14, Category: models.CategoryOperations, Sector: models.SectorHealthcare,
		Question: "Patients complain about long waiting times.",
		Options: []models.DecisionOption{
			opt("d14_hc2_hire", "Hire another doctor", fx{MonthlyExpenses: 9000, Reputation: 8}, ""),
			opt("d14_hc2_booking", "Introduce online booking", fx{Financial: -4000, Reputation: 5, Logic: 3}, ""),
			opt("d14_hc2_nothing", "Do nothing", fx{Reputation: -8}, ""),
		},
	},
	{
		ID: "d14_lifestyle_1", Day: 14, Category: models.CategoryLifestyle,
		Question: "You have been invited to an exclusive club.",
		Options: []models.DecisionOption{
			opt("d14_l1_join", "Join the club", fx{Financial: -20000, Reputation: 8, Emotion: 4}, ""),
			opt("d14_l1_decline", "Decline", fx{Logic: 3}, ""),
		},
	},
	{
		ID: "d14_education_1", Day: 14, Category: models.CategoryEducation,
		Question: "A mentor offers weekly coaching sessions.",
		Options: []models.DecisionOption{
			opt("d14_e1_accept", "Accept the coaching", fx{MonthlyExpenses: 2000, Logic: 8, Emotion: 4}, ""),
			opt("d14_e1_decline", "Decline", fx{Logic: -2}, ""),
		},
	},
	{
		ID: "d14_family_1", Day: 14, Category: models.CategoryFamily,
		Question: "Your sibling wants to start a business with you.",
		Options: []models.DecisionOption{
			opt("d14_f1_join", "Start it together", fx{Financial: -20000, SideIncome: 4000, Emotion: 6, Stress: 6}, ""),
			opt("d14_f1_support", "Support from the sidelines", fx{Karma: 5}, ""),
			opt("d14_f1_refuse", "Refuse", fx{Emotion: -5, Karma: -3}, ""),
		},
	},
}
