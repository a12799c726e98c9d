package resolver

// DefaultTable maps receipt codes whose underlying symbol cannot be derived by
// stripping digits (renamed issuers, share classes, reused codes).
var DefaultTable = map[string]string{
	"AAPL34": "AAPL", "MSFT34": "MSFT", "GOGL34": "GOOGL", "AMZO34": "AMZN",
	"NVDC34": "NVDA", "M1TA34": "META", "TSLA34": "TSLA", "NFLX34": "NFLX",
	"A1MD34": "AMD", "ITLC34": "INTC", "ORCL34": "ORCL", "AVGO34": "AVGO",
	"ADBE34": "ADBE", "CSCO34": "CSCO", "QCOM34": "QCOM", "TXAS34": "TXN",
	"I2BM34": "IBM", "S2EA34": "EA", "ROXO34": "RBLX", "C2OI34": "COIN",
	"P2LT34": "PLTR", "MUTC34": "MU", "M2RV34": "MRVL", "VISA34": "V",
	"V2SA34": "V", "M2ST34": "MA", "PYPL34": "PYPL", "BERK34": "BRK-B",
	"CTGP34": "C", "PAGS34": "PAGS", "STOC34": "STNE", "WALM34": "WMT",
	"COCA34": "KO", "P3EP34": "PEP", "PGCO34": "PG", "NIKE34": "NKE",
	"M1CD34": "MCD", "H0MC34": "HD", "DISB34": "DIS", "JNJB34": "JNJ",
	"LILY34": "LLY", "ABBV34": "ABBV", "P1FE34": "PFE", "EXXO34": "XOM",
	"CHVX34": "CVX", "BOEI34": "BA", "C1AT34": "CAT", "D1EE34": "DE",
	"U2PS34": "UPS", "FCXO34": "FCX", "N1VO34": "NEM", "F2NV34": "FNV",
	"A2RR34": "ARR", "BABA34": "BABA", "BIDU34": "BIDU", "MELI34": "MELI",
	"REGN34": "REGN", "BKNG34": "BKNG", "CMCS34": "CMCSA", "EQIX34": "EQIX",
	"A1MT34": "AMT", "P1LD34": "PLD", "MDLZ34": "MDLZ", "SCHW34": "SCHW",
	"RGTI34": "RGTI", "T2DH34": "TDG", "DUOL34": "DUOL", "B1AX34": "BAX",
	"TSMC34": "TSM", "ASML34": "ASML", "N1VS34": "NVS", "D1HI34": "DHI",
	"GPRK34": "GPRK", "C1NS34": "CNS", "T2ER34": "TER", "F1MC34": "FMC",
	"G1LO34": "GLOB", "T1RI34": "TRI", "R1MD34": "RMD", "S2NA34": "SNA",
	"A1MP34": "AMP", "G1SK34": "GSK",
}

// ReceiptSuffixes are the code endings used by depositary receipts on B3.
var ReceiptSuffixes = []string{"31", "32", "33", "34", "35", "39"}
