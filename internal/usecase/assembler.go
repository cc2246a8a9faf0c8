package usecase

import (
	"time"

	"SADE/internal/domain/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Variation is the percentage change from previous to latest rounded to two
// places, halves away from zero. previous must be non-zero.
func Variation(previous, latest decimal.Decimal) decimal.Decimal {
	return latest.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// Assemble builds the consolidated snapshot. dollar needs at least two points
// (previous, latest) with numeric values; rate and inflation pass their last
// point through as published.
func Assemble(now time.Time, dollar, rate, inflation []models.DataPoint) models.Snapshot {
	hoy := dollar[len(dollar)-1].Value
	ayer := dollar[len(dollar)-2].Value
	tasa := rate[len(rate)-1]
	inpc := inflation[len(inflation)-1]

	return models.Snapshot{
		FechaActualizacion: now.UTC().Format(time.DateOnly),
		Items: []models.Item{
			{
				Icono:     "💵",
				Label:     "Dólar FIX",
				Valor:     "$" + hoy.StringFixed(2),
				Variacion: Variation(ayer, hoy).StringFixed(2) + "%",
			},
			{
				Icono: "🏛️",
				Label: "Tasa Objetivo",
				Valor: tasa.Dato + "%",
			},
			{
				Icono:      "📉",
				Label:      "INPC Anual",
				Valor:      inpc.Dato + "%",
				UltimoDato: inpc.Fecha,
			},
		},
	}
}
