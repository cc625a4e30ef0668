// Package catalog holds the static registries of day decisions and ad-hoc
// scenarios together with pure query functions over them.
package catalog

import (
	"sort"

	"wealth-sprint/internal/models"
)

var (
	decisionsByDay = indexDecisionsByDay(decisionRegistry)
	decisionsByID  = indexDecisionsByID(decisionRegistry)
)

func indexDecisionsByDay(list []models.Decision) map[int][]models.Decision {
	idx := make(map[int][]models.Decision)
	for _, d := range list {
		idx[d.Day] = append(idx[d.Day], d)
	}
	return idx
}

func indexDecisionsByID(list []models.Decision) map[string]models.Decision {
	idx := make(map[string]models.Decision, len(list))
	for _, d := range list {
		idx[d.ID] = d
	}
	return idx
}

func cloneDecision(d models.Decision) models.Decision {
	d.Options = append([]models.DecisionOption(nil), d.Options...)
	return d
}

// DecisionsForDay возвращает решения дня, сектор которых общий или входит в purchased.
// Неизвестный день даёт пустой срез.
func DecisionsForDay(day int, purchased []models.Sector) []models.Decision {
	owned := make(map[models.Sector]struct{}, len(purchased))
	for _, s := range purchased {
		owned[s] = struct{}{}
	}

	result := make([]models.Decision, 0, len(decisionsByDay[day]))
	for _, d := range decisionsByDay[day] {
		if !d.Sector.IsGeneral() {
			if _, ok := owned[d.Sector]; !ok {
				continue
			}
		}
		result = append(result, cloneDecision(d))
	}
	return result
}

// DecisionByID ищет решение по ID во всём каталоге.
func DecisionByID(id string) (models.Decision, bool) {
	d, ok := decisionsByID[id]
	if !ok {
		return models.Decision{}, false
	}
	return cloneDecision(d), true
}

// Days возвращает все дни, для которых есть решения, по возрастанию.
func Days() []int {
	days := make([]int, 0, len(decisionsByDay))
	for day := range decisionsByDay {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// AllDecisions возвращает копию всего реестра решений.
func AllDecisions() []models.Decision {
	out := make([]models.Decision, len(decisionRegistry))
	for i, d := range decisionRegistry {
		out[i] = cloneDecision(d)
	}
	return out
}
