package catalog_test

import (
	"testing"

	"wealth-sprint/internal/catalog"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []models.Decision) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.ID)
	}
	return out
}

func TestDecisionsForDay_FixedDayCounts(t *testing.T) {
	assert.Len(t, catalog.DecisionsForDay(1, nil), 2)
	assert.Len(t, catalog.DecisionsForDay(2, nil), 3)
	assert.Len(t, catalog.DecisionsForDay(3, nil), 2)
	assert.Equal(t, []string{"d1_real_estate_1", "d1_lifestyle_1"}, ids(catalog.DecisionsForDay(1, nil)))
}

func TestDecisionsForDay_SectorFiltering(t *testing.T) {
	t.Run("Day 11 without fast food is empty", func(t *testing.T) {
		assert.Empty(t, catalog.DecisionsForDay(11, []models.Sector{}))
	})

	t.Run("Day 11 with fast food returns all three", func(t *testing.T) {
		got := catalog.DecisionsForDay(11, []models.Sector{models.SectorFastFood})
		assert.Equal(t, []string{"d11_fastfood_1", "d11_fastfood_2", "d11_fastfood_3"}, ids(got))
	})

	t.Run("Every returned decision is general or owned", func(t *testing.T) {
		sets := [][]models.Sector{
			nil,
			{models.SectorFastFood},
			{models.SectorTechStartups, models.SectorHealthcare},
			models.PurchasableSectors,
		}
		for _, owned := range sets {
			ownedSet := map[models.Sector]bool{}
			for _, s := range owned {
				ownedSet[s] = true
			}
			for _, day := range catalog.Days() {
				for _, d := range catalog.DecisionsForDay(day, owned) {
					assert.True(t, d.Sector.IsGeneral() || ownedSet[d.Sector],
						"decision %s (sector %q) leaked for owned=%v", d.ID, d.Sector, owned)
				}
			}
		}
	})

	t.Run("Unknown day is empty", func(t *testing.T) {
		assert.Empty(t, catalog.DecisionsForDay(999, models.PurchasableSectors))
	})
}

func TestDecisionRegistryIntegrity(t *testing.T) {
	seenDecisions := map[string]bool{}
	seenOptions := map[string]bool{}
	for _, day := range catalog.Days() {
		for _, d := range catalog.DecisionsForDay(day, models.PurchasableSectors) {
			assert.Equal(t, day, d.Day, "decision %s", d.ID)
			assert.False(t, seenDecisions[d.ID], "duplicate decision id %s", d.ID)
			seenDecisions[d.ID] = true
			assert.True(t, d.Sector.IsValid(), "decision %s has unknown sector", d.ID)
			assert.NotEmpty(t, d.Question)
			require.GreaterOrEqual(t, len(d.Options), 2, "decision %s", d.ID)
			for _, o := range d.Options {
				assert.False(t, seenOptions[o.ID], "duplicate option id %s", o.ID)
				seenOptions[o.ID] = true
			}
		}
	}
	assert.Len(t, seenDecisions, len(catalog.AllDecisions()))
}

func TestRandomDaysHaveEnoughGeneralDecisions(t *testing.T) {
	for day := 4; day <= 10; day++ {
		assert.GreaterOrEqual(t, len(catalog.DecisionsForDay(day, nil)), 4, "day %d", day)
	}
}

func TestDecisionByID(t *testing.T) {
	d, ok := catalog.DecisionByID("d1_real_estate_1")
	require.True(t, ok)
	opt, ok := d.Option("d1_r1_research")
	require.True(t, ok)
	assert.Equal(t, models.Effects{Logic: 8, Stress: -5}, opt.Consequences)

	_, ok = catalog.DecisionByID("missing")
	assert.False(t, ok)
}

func TestDecisionsAreCopies(t *testing.T) {
	first := catalog.DecisionsForDay(1, nil)
	first[0].Options[0].Text = "mutated"
	again := catalog.DecisionsForDay(1, nil)
	assert.NotEqual(t, "mutated", again[0].Options[0].Text)
}

func TestScenarioQueries(t *testing.T) {
	all := catalog.AllScenarios()
	require.NotEmpty(t, all)

	for _, s := range catalog.ScenariosBySection(models.SectionInvestment) {
		assert.Equal(t, models.SectionInvestment, s.Section)
	}
	for _, s := range catalog.ScenariosByUrgency(models.UrgencyHigh) {
		assert.Equal(t, models.UrgencyHigh, s.Urgency)
	}
	for _, s := range catalog.ScenariosByTag(catalog.TagBurnout) {
		assert.True(t, s.HasTag(catalog.TagBurnout))
	}
	assert.Empty(t, catalog.ScenariosByTag("burnout"), "tag match is exact")

	s, ok := catalog.ScenarioByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, s.ID)
	_, ok = catalog.ScenarioByID(-1)
	assert.False(t, ok)
}

func TestRandomScenarios(t *testing.T) {
	rng := random.New(42)
	got := catalog.RandomScenarios(rng, 5)
	require.Len(t, got, 5)
	seen := map[int]bool{}
	for _, s := range got {
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}

	assert.Len(t, catalog.RandomScenarios(rng, 1000), len(catalog.AllScenarios()))
	assert.Empty(t, catalog.RandomScenarios(rng, 0))
}

func TestContextualScenarios(t *testing.T) {
	calm := models.PlayerStats{Emotion: 60, Stress: 40, Reputation: 50}
	comfortable := models.FinancialData{BankBalance: 20000}

	t.Run("No rule fires", func(t *testing.T) {
		assert.Empty(t, catalog.ContextualScenarios(random.New(1), calm, comfortable))
	})

	t.Run("Low balance picks financial crisis", func(t *testing.T) {
		got := catalog.ContextualScenarios(random.New(1), calm, models.FinancialData{BankBalance: 4999})
		require.NotEmpty(t, got)
		for _, s := range got {
			assert.True(t, s.HasTag(catalog.TagFinancialCrisis))
		}
	})

	t.Run("Threshold boundaries are strict", func(t *testing.T) {
		edge := models.PlayerStats{Emotion: catalog.LowEmotionThreshold, Stress: catalog.HighStressThreshold, Reputation: catalog.HighReputationThreshold}
		assert.Empty(t, catalog.ContextualScenarios(random.New(1), edge, models.FinancialData{BankBalance: catalog.LowBalanceThreshold}))
		assert.Empty(t, catalog.ContextualScenarios(random.New(1), calm, models.FinancialData{BankBalance: catalog.HighWealthThreshold}))
	})

	t.Run("High wealth picks investment section", func(t *testing.T) {
		got := catalog.ContextualScenarios(random.New(1), calm, models.FinancialData{BankBalance: 150000})
		require.NotEmpty(t, got)
		for _, s := range got {
			assert.Equal(t, models.SectionInvestment, s.Section)
		}
	})

	t.Run("Union is deduplicated and capped", func(t *testing.T) {
		stressed := models.PlayerStats{Emotion: 10, Stress: 90, Reputation: 90}
		for seed := uint64(0); seed < 20; seed++ {
			got := catalog.ContextualScenarios(random.New(seed), stressed, models.FinancialData{BankBalance: 100})
			assert.LessOrEqual(t, len(got), catalog.MaxContextualResults)
			seen := map[int]bool{}
			for _, s := range got {
				assert.False(t, seen[s.ID], "duplicate scenario %d", s.ID)
				seen[s.ID] = true
			}
		}
	})
}
