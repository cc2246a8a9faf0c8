package models

// Series identifiers published by the Banxico SIE API.
const (
	SeriesDollarFix       = "SF43718" // FIX exchange rate, MXN per USD
	SeriesTargetRate      = "SF61745" // overnight interbank target rate
	SeriesAnnualInflation = "SP68279" // INPC annual inflation
)
