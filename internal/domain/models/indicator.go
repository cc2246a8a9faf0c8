package models

import "github.com/shopspring/decimal"

// Snapshot is the consolidated payload served to the frontend and persisted
// as the cache document.
type Snapshot struct {
	FechaActualizacion string `json:"fecha_actualizacion"`
	Items              []Item `json:"items"`
}

// Item is one display row of the snapshot. Identity is its position.
type Item struct {
	Icono      string `json:"icono"`
	Label      string `json:"label"`
	Valor      string `json:"valor"`
	Variacion  string `json:"variacion,omitempty"`
	UltimoDato string `json:"ultimo_dato,omitempty"`
}

// DataPoint is one observation of a Banxico series. Value is only meaningful
// when Numeric is set; "N/E" and other placeholders keep it zero.
type DataPoint struct {
	Fecha   string          // dd/mm/yyyy as published
	Dato    string          // raw value as published
	Value   decimal.Decimal // parsed Dato
	Numeric bool
}
