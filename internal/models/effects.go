package models

// Dimension - имя измерения, на которое влияет выбор игрока.
type Dimension string

const (
	DimensionFinancial       Dimension = "financial" // Синоним bankBalance в каталоге решений
	DimensionBankBalance     Dimension = "bankBalance"
	DimensionInHandCash      Dimension = "inHandCash"
	DimensionMainIncome      Dimension = "mainIncome"
	DimensionSideIncome      Dimension = "sideIncome"
	DimensionMonthlyExpenses Dimension = "monthlyExpenses"
	DimensionEmotion         Dimension = "emotion"
	DimensionStress          Dimension = "stress"
	DimensionKarma           Dimension = "karma"
	DimensionLogic           Dimension = "logic"
	DimensionReputation      Dimension = "reputation"
	DimensionEnergy          Dimension = "energy"
)

// StatDimensions - измерения, которые попадают в статы игрока и зажимаются в [0, 100].
var StatDimensions = []Dimension{
	DimensionEmotion,
	DimensionStress,
	DimensionKarma,
	DimensionLogic,
	DimensionReputation,
	DimensionEnergy,
}

// FinancialDimensions - измерения, которые попадают в финансовые данные и не опускаются ниже 0.
var FinancialDimensions = []Dimension{
	DimensionFinancial,
	DimensionBankBalance,
	DimensionInHandCash,
	DimensionMainIncome,
	DimensionSideIncome,
	DimensionMonthlyExpenses,
}

// AllDimensions возвращает все измерения в порядке отображения.
func AllDimensions() []Dimension {
	all := make([]Dimension, 0, len(FinancialDimensions)+len(StatDimensions))
	all = append(all, FinancialDimensions...)
	all = append(all, StatDimensions...)
	return all
}

// IsStat сообщает, относится ли измерение к статам игрока.
func (d Dimension) IsStat() bool {
	for _, s := range StatDimensions {
		if s == d {
			return true
		}
	}
	return false
}

// Effects - разреженный набор дельт по измерениям.
// Ноль означает "нет эффекта" при отображении (см. NonZero), но при агрегации
// каждое поле участвует всегда, отсутствующее и нулевое значения неразличимы.
type Effects struct {
	Financial       int `json:"financial,omitempty"`
	BankBalance     int `json:"bankBalance,omitempty"`
	InHandCash      int `json:"inHandCash,omitempty"`
	MainIncome      int `json:"mainIncome,omitempty"`
	SideIncome      int `json:"sideIncome,omitempty"`
	MonthlyExpenses int `json:"monthlyExpenses,omitempty"`
	Emotion         int `json:"emotion,omitempty"`
	Stress          int `json:"stress,omitempty"`
	Karma           int `json:"karma,omitempty"`
	Logic           int `json:"logic,omitempty"`
	Reputation      int `json:"reputation,omitempty"`
	Energy          int `json:"energy,omitempty"`
}

// field возвращает указатель на поле, соответствующее измерению, или nil.
func (e *Effects) field(d Dimension) *int {
	switch d {
	case DimensionFinancial:
		return &e.Financial
	case DimensionBankBalance:
		return &e.BankBalance
	case DimensionInHandCash:
		return &e.InHandCash
	case DimensionMainIncome:
		return &e.MainIncome
	case DimensionSideIncome:
		return &e.SideIncome
	case DimensionMonthlyExpenses:
		return &e.MonthlyExpenses
	case DimensionEmotion:
		return &e.Emotion
	case DimensionStress:
		return &e.Stress
	case DimensionKarma:
		return &e.Karma
	case DimensionLogic:
		return &e.Logic
	case DimensionReputation:
		return &e.Reputation
	case DimensionEnergy:
		return &e.Energy
	}
	return nil
}

// Get возвращает дельту по измерению. Неизвестное измерение даёт 0.
func (e Effects) Get(d Dimension) int {
	if f := e.field(d); f != nil {
		return *f
	}
	return 0
}

// With возвращает копию с установленным значением измерения.
func (e Effects) With(d Dimension, v int) Effects {
	if f := e.field(d); f != nil {
		*f = v
	}
	return e
}

// Add складывает два набора эффектов покомпонентно.
func (e Effects) Add(other Effects) Effects {
	for _, d := range AllDimensions() {
		e = e.With(d, e.Get(d)+other.Get(d))
	}
	return e
}

// IsZero сообщает, что ни одно измерение не задано.
func (e Effects) IsZero() bool {
	return e == Effects{}
}

// NonZero возвращает только ненулевые измерения (для экранов результатов).
func (e Effects) NonZero() map[Dimension]int {
	out := make(map[Dimension]int)
	for _, d := range AllDimensions() {
		if v := e.Get(d); v != 0 {
			out[d] = v
		}
	}
	return out
}

// StatDeltas - дельты статов игрока.
type StatDeltas struct {
	Emotion    int `json:"emotion"`
	Stress     int `json:"stress"`
	Karma      int `json:"karma"`
	Logic      int `json:"logic"`
	Reputation int `json:"reputation"`
	Energy     int `json:"energy"`
}

// FinancialDeltas - дельты финансовых полей. Financial уже слит с BankBalance.
type FinancialDeltas struct {
	BankBalance     int `json:"bankBalance"`
	InHandCash      int `json:"inHandCash"`
	MainIncome      int `json:"mainIncome"`
	SideIncome      int `json:"sideIncome"`
	MonthlyExpenses int `json:"monthlyExpenses"`
}

// AppliedEffects - результат применения одного набора эффектов к хранилищам.
type AppliedEffects struct {
	StatDeltas      StatDeltas      `json:"statDeltas"`
	FinancialDeltas FinancialDeltas `json:"financialDeltas"`
	Stats           PlayerStats     `json:"stats"`     // Значения после зажима
	Financial       FinancialData   `json:"financial"` // Значения после пола в 0
}
