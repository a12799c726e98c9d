package classifier

// Tier holds the floor of one score tier. PEMax is a ceiling rather than a floor.
type Tier struct {
	ROE           float64
	NetMargin     float64
	RevenueGrowth float64
	DividendYield float64
	PEMax         float64
}

// Criteria is the threshold table the classifier scores against.
type Criteria struct {
	Excellent Tier
	Good      Tier
	Caution   Tier

	// Debt/equity is scored on strict upper bounds.
	LeverageExcellent float64
	LeverageGood      float64
}

// DefaultCriteria is the standard screening table.
var DefaultCriteria = Criteria{
	Excellent: Tier{ROE: 20, NetMargin: 15, RevenueGrowth: 10, DividendYield: 2, PEMax: 25},
	Good:      Tier{ROE: 15, NetMargin: 10, RevenueGrowth: 5, DividendYield: 1, PEMax: 35},
	Caution:   Tier{ROE: 10, NetMargin: 5, RevenueGrowth: 0, DividendYield: 0, PEMax: 50},

	LeverageExcellent: 50,
	LeverageGood:      100,
}

// MaxScore is the score of a symbol that is excellent on every criterion.
const MaxScore = 6.0

// Status cut-offs as a percentage of MaxScore.
const (
	ExcellentPct = 80.0
	GoodPct      = 60.0
	CautionPct   = 40.0
)
