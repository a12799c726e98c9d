package statement

// Field names a canonical line item.
type Field string

// Canonical fields.
const (
	FieldNetIncome   Field = "netIncome"
	FieldRevenue     Field = "revenue"
	FieldEquity      Field = "equity"
	FieldTotalAssets Field = "totalAssets"
	FieldTotalDebt   Field = "totalDebt"
)

// AliasTable lists, per canonical field, the line item labels to try in
// priority order. The first label present in the statement wins.
type AliasTable struct {
	NetIncome   []string
	Revenue     []string
	Equity      []string
	TotalAssets []string
	TotalDebt   []string
}

// DefaultAliases covers the labels produced by Yahoo Finance statements in
// both their display form and their raw key form.
var DefaultAliases = AliasTable{
	NetIncome: []string{
		"Net Income", "NetIncome", "Net Income Common Stockholders",
		"netIncome", "netIncomeApplicableToCommonShares",
	},
	Revenue: []string{
		"Total Revenue", "TotalRevenue", "Total Revenues",
		"totalRevenue",
	},
	Equity: []string{
		"Total Stockholder Equity", "Stockholders Equity", "StockholdersEquity",
		"Total Equity Gross Minority Interest", "totalStockholderEquity",
	},
	TotalAssets: []string{
		"Total Assets", "TotalAssets", "totalAssets",
	},
	TotalDebt: []string{
		"Total Debt", "Long Term Debt", "TotalDebt", "longTermDebt",
	},
}
