// Package effects sums option effects and applies them to the player-stat and
// financial stores, clamping stats into [0, 100] and flooring money at 0.
package effects

import (
	"context"
	"fmt"

	"wealth-sprint/internal/models"
	"wealth-sprint/internal/store"

	"go.uber.org/zap"
)

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Floor не даёт значению опуститься ниже 0.
func Floor(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Sum складывает все наборы эффектов покомпонентно (агрегированный вид для экрана итогов).
func Sum(list ...models.Effects) models.Effects {
	var total models.Effects
	for _, e := range list {
		total = total.Add(e)
	}
	return total
}

// Split раскладывает эффекты по адресатам. financial и bankBalance сливаются в одну дельту баланса.
func Split(e models.Effects) (models.StatDeltas, models.FinancialDeltas) {
	stats := models.StatDeltas{
		Emotion:    e.Emotion,
		Stress:     e.Stress,
		Karma:      e.Karma,
		Logic:      e.Logic,
		Reputation: e.Reputation,
		Energy:     e.Energy,
	}
	fin := models.FinancialDeltas{
		BankBalance:     e.Financial + e.BankBalance,
		InHandCash:      e.InHandCash,
		MainIncome:      e.MainIncome,
		SideIncome:      e.SideIncome,
		MonthlyExpenses: e.MonthlyExpenses,
	}
	return stats, fin
}

// Applier применяет эффекты к внешним хранилищам.
type Applier struct {
	stats     store.PlayerStatsStore
	financial store.FinancialStore
	logger    *zap.Logger
}

// NewApplier создает Applier.
func NewApplier(stats store.PlayerStatsStore, financial store.FinancialStore, logger *zap.Logger) *Applier {
	return &Applier{stats: stats, financial: financial, logger: logger.Named("EffectApplier")}
}

// Apply применяет один набор эффектов сразу.
// Статы: текущее + дельта, затем зажим в [0, 100]. Финансы: текущее + дельта, затем пол в 0.
// NetWorth сдвигается на фактическое изменение баланса и наличных.
// Ошибку может вернуть только хранилище.
func (a *Applier) Apply(ctx context.Context, e models.Effects) (models.AppliedEffects, error) {
	statDeltas, finDeltas := Split(e)
	applied := models.AppliedEffects{StatDeltas: statDeltas, FinancialDeltas: finDeltas}

	curStats, err := a.stats.Get(ctx)
	if err != nil {
		return applied, fmt.Errorf("get player stats: %w", err)
	}
	statPatch := statsPatch(curStats, statDeltas)
	if !statPatch.IsEmpty() {
		if err := a.stats.Update(ctx, statPatch); err != nil {
			return applied, fmt.Errorf("update player stats: %w", err)
		}
	}
	applied.Stats = statPatch.ApplyTo(curStats)

	curFin, err := a.financial.Get(ctx)
	if err != nil {
		return applied, fmt.Errorf("get financial data: %w", err)
	}
	finPatch := financialPatch(curFin, finDeltas)
	if !finPatch.IsEmpty() {
		if err := a.financial.Update(ctx, finPatch); err != nil {
			return applied, fmt.Errorf("update financial data: %w", err)
		}
	}
	applied.Financial = finPatch.ApplyTo(curFin)

	a.logger.Debug("Effects applied",
		zap.Any("statDeltas", statDeltas),
		zap.Any("financialDeltas", finDeltas),
		zap.Any("stats", applied.Stats),
		zap.Int("bankBalance", applied.Financial.BankBalance),
	)
	return applied, nil
}

// ApplyAll применяет наборы по очереди: каждый следующий видит результат предыдущего.
// Возвращается сумма дельт и результат последнего применения.
func (a *Applier) ApplyAll(ctx context.Context, list []models.Effects) (models.Effects, models.AppliedEffects, error) {
	var last models.AppliedEffects
	for i, e := range list {
		applied, err := a.Apply(ctx, e)
		if err != nil {
			return Sum(list[:i]...), last, err
		}
		last = applied
	}
	return Sum(list...), last, nil
}

func statsPatch(cur models.PlayerStats, d models.StatDeltas) models.PlayerStatsPatch {
	var p models.PlayerStatsPatch
	p.Emotion = clampedStat(cur.Emotion, d.Emotion)
	p.Stress = clampedStat(cur.Stress, d.Stress)
	p.Karma = clampedStat(cur.Karma, d.Karma)
	p.Logic = clampedStat(cur.Logic, d.Logic)
	p.Reputation = clampedStat(cur.Reputation, d.Reputation)
	p.Energy = clampedStat(cur.Energy, d.Energy)
	return p
}

func financialPatch(cur models.FinancialData, d models.FinancialDeltas) models.FinancialPatch {
	var p models.FinancialPatch
	p.BankBalance = flooredMoney(cur.BankBalance, d.BankBalance)
	p.InHandCash = flooredMoney(cur.InHandCash, d.InHandCash)
	p.MainIncome = flooredMoney(cur.MainIncome, d.MainIncome)
	p.SideIncome = flooredMoney(cur.SideIncome, d.SideIncome)
	p.MonthlyExpenses = flooredMoney(cur.MonthlyExpenses, d.MonthlyExpenses)

	if p.BankBalance != nil || p.InHandCash != nil {
		liquid := 0
		if p.BankBalance != nil {
			liquid += *p.BankBalance - cur.BankBalance
		}
		if p.InHandCash != nil {
			liquid += *p.InHandCash - cur.InHandCash
		}
		net := cur.NetWorth + liquid
		p.NetWorth = &net
	}
	return p
}

// clampedStat возвращает nil, если дельта нулевая.
func clampedStat(cur, delta int) *int {
	if delta == 0 {
		return nil
	}
	v := Clamp(cur+delta, models.StatMin, models.StatMax)
	return &v
}

// flooredMoney возвращает nil, если дельта нулевая.
func flooredMoney(cur, delta int) *int {
	if delta == 0 {
		return nil
	}
	v := Floor(cur + delta)
	return &v
}
