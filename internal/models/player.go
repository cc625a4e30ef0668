package models

// Границы статов игрока.
const (
	StatMin = 0
	StatMax = 100
)

// PlayerStats - текущие статы игрока, каждый в диапазоне [StatMin, StatMax].
type PlayerStats struct {
	Emotion    int `json:"emotion" redis:"emotion"`
	Stress     int `json:"stress" redis:"stress"`
	Karma      int `json:"karma" redis:"karma"`
	Logic      int `json:"logic" redis:"logic"`
	Reputation int `json:"reputation" redis:"reputation"`
	Energy     int `json:"energy" redis:"energy"`
}

// Get возвращает значение стата по измерению.
func (p PlayerStats) Get(d Dimension) int {
	switch d {
	case DimensionEmotion:
		return p.Emotion
	case DimensionStress:
		return p.Stress
	case DimensionKarma:
		return p.Karma
	case DimensionLogic:
		return p.Logic
	case DimensionReputation:
		return p.Reputation
	case DimensionEnergy:
		return p.Energy
	}
	return 0
}

// PlayerStatsPatch - частичное обновление статов. nil-поле не меняется.
type PlayerStatsPatch struct {
	Emotion    *int `json:"emotion,omitempty"`
	Stress     *int `json:"stress,omitempty"`
	Karma      *int `json:"karma,omitempty"`
	Logic      *int `json:"logic,omitempty"`
	Reputation *int `json:"reputation,omitempty"`
	Energy     *int `json:"energy,omitempty"`
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p PlayerStatsPatch) IsEmpty() bool {
	return p == PlayerStatsPatch{}
}

// ApplyTo накладывает патч на статы.
func (p PlayerStatsPatch) ApplyTo(s PlayerStats) PlayerStats {
	if p.Emotion != nil {
		s.Emotion = *p.Emotion
	}
	if p.Stress != nil {
		s.Stress = *p.Stress
	}
	if p.Karma != nil {
		s.Karma = *p.Karma
	}
	if p.Logic != nil {
		s.Logic = *p.Logic
	}
	if p.Reputation != nil {
		s.Reputation = *p.Reputation
	}
	if p.Energy != nil {
		s.Energy = *p.Energy
	}
	return s
}

// FinancialData - финансовое состояние игрока.
type FinancialData struct {
	BankBalance     int `json:"bankBalance" redis:"bank_balance"`
	InHandCash      int `json:"inHandCash" redis:"in_hand_cash"`
	MainIncome      int `json:"mainIncome" redis:"main_income"`
	SideIncome      int `json:"sideIncome" redis:"side_income"`
	MonthlyExpenses int `json:"monthlyExpenses" redis:"monthly_expenses"`
	NetWorth        int `json:"netWorth" redis:"net_worth"`
}

// FinancialPatch - частичное обновление финансов. nil-поле не меняется.
type FinancialPatch struct {
	BankBalance     *int `json:"bankBalance,omitempty"`
	InHandCash      *int `json:"inHandCash,omitempty"`
	MainIncome      *int `json:"mainIncome,omitempty"`
	SideIncome      *int `json:"sideIncome,omitempty"`
	MonthlyExpenses *int `json:"monthlyExpenses,omitempty"`
	NetWorth        *int `json:"netWorth,omitempty"`
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p FinancialPatch) IsEmpty() bool {
	return p == FinancialPatch{}
}

// ApplyTo накладывает патч на финансовые данные.
func (p FinancialPatch) ApplyTo(f FinancialData) FinancialData {
	if p.BankBalance != nil {
		f.BankBalance = *p.BankBalance
	}
	if p.InHandCash != nil {
		f.InHandCash = *p.InHandCash
	}
	if p.MainIncome != nil {
		f.MainIncome = *p.MainIncome
	}
	if p.SideIncome != nil {
		f.SideIncome = *p.SideIncome
	}
	if p.MonthlyExpenses != nil {
		f.MonthlyExpenses = *p.MonthlyExpenses
	}
	if p.NetWorth != nil {
		f.NetWorth = *p.NetWorth
	}
	return f
}
