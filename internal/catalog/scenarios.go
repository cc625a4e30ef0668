package catalog

import (
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"
)

// Пороги контекстного подбора.
const (
	LowBalanceThreshold     = 5000
	HighStressThreshold     = 70
	LowEmotionThreshold     = 30
	HighReputationThreshold = 70
	HighWealthThreshold     = 100000
	MaxContextualResults    = 3
)

func cloneScenario(s models.GameScenario) models.GameScenario {
	s.Tags = append([]string(nil), s.Tags...)
	s.Options = append([]models.ScenarioChoice(nil), s.Options...)
	return s
}

func filterScenarios(keep func(models.GameScenario) bool) []models.GameScenario {
	out := make([]models.GameScenario, 0)
	for _, s := range scenarioRegistry {
		if keep(s) {
			out = append(out, cloneScenario(s))
		}
	}
	return out
}

// AllScenarios возвращает копию каталога в порядке объявления.
func AllScenarios() []models.GameScenario {
	return filterScenarios(func(models.GameScenario) bool { return true })
}

// ScenarioByID ищет сценарий по числовому ID.
func ScenarioByID(id int) (models.GameScenario, bool) {
	for _, s := range scenarioRegistry {
		if s.ID == id {
			return cloneScenario(s), true
		}
	}
	return models.GameScenario{}, false
}

// RandomScenarios возвращает count сценариев без повторов в случайном порядке.
// Если count больше каталога, возвращается весь каталог, перемешанный.
func RandomScenarios(rng random.Source, count int) []models.GameScenario {
	if count <= 0 {
		return []models.GameScenario{}
	}
	all := AllScenarios()
	random.Shuffle(rng, len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	if count < len(all) {
		all = all[:count]
	}
	return all
}

// ScenariosBySection - точный фильтр по разделу.
func ScenariosBySection(section models.ScenarioSection) []models.GameScenario {
	return filterScenarios(func(s models.GameScenario) bool { return s.Section == section })
}

// ScenariosByUrgency - точный фильтр по срочности.
func ScenariosByUrgency(urgency models.Urgency) []models.GameScenario {
	return filterScenarios(func(s models.GameScenario) bool { return s.Urgency == urgency })
}

// ScenariosByTag - точный фильтр по тегу.
func ScenariosByTag(tag string) []models.GameScenario {
	return filterScenarios(func(s models.GameScenario) bool { return s.HasTag(tag) })
}

// ContextualScenarios подбирает сценарии по состоянию игрока.
// Все сработавшие правила объединяются без приоритетов, дубликаты убираются,
// результат перемешивается и обрезается до MaxContextualResults.
func ContextualScenarios(rng random.Source, stats models.PlayerStats, fin models.FinancialData) []models.GameScenario {
	var pool []models.GameScenario
	if fin.BankBalance < LowBalanceThreshold {
		pool = append(pool, ScenariosByTag(TagFinancialCrisis)...)
	}
	if stats.Stress > HighStressThreshold {
		pool = append(pool, ScenariosByTag(TagBurnout)...)
	}
	if stats.Emotion < LowEmotionThreshold {
		pool = append(pool, ScenariosByTag(TagMotivation)...)
	}
	if stats.Reputation > HighReputationThreshold {
		pool = append(pool, ScenariosByTag(TagLeadership)...)
	}
	if fin.BankBalance > HighWealthThreshold {
		pool = append(pool, ScenariosBySection(models.SectionInvestment)...)
	}

	seen := make(map[int]struct{}, len(pool))
	unique := make([]models.GameScenario, 0, len(pool))
	for _, s := range pool {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		unique = append(unique, s)
	}

	random.Shuffle(rng, len(unique), func(i, j int) { unique[i], unique[j] = unique[j], unique[i] })
	if len(unique) > MaxContextualResults {
		unique = unique[:MaxContextualResults]
	}
	return unique
}
