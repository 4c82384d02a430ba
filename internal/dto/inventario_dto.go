package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ItemRequest carries an inventory write body. Pointer and raw fields keep
// the "present vs omitted" distinction the partial-update semantics depend
// on: a nil field was not in the JSON body and must preserve the stored
// value, a present field overwrites — including an explicit empty string
// for supplier and notes.
type ItemRequest struct {
	Nombre    *string         `json:"name"`
	Categoria *string         `json:"category"`
	Cantidad  json.RawMessage `json:"quantity"`
	Unidad    *string         `json:"unit"`
	Precio    json.RawMessage `json:"price"`
	Proveedor *string         `json:"supplier"`
	Notas     *string         `json:"notes"`
}

// ResumenCategoria aggregates one category inside the valuation report.
type ResumenCategoria struct {
	Categoria string          `json:"category"`
	Items     int             `json:"items"`
	Valor     decimal.Decimal `json:"value"`
}

// ResumenInventario is the inventory valuation report. Rows whose quantity
// or price is not a finite number are counted in Omitidos and excluded
// from every total.
type ResumenInventario struct {
	Items      int                `json:"items"`
	Omitidos   int                `json:"skipped"`
	Valor      decimal.Decimal    `json:"value"`
	Categorias []ResumenCategoria `json:"categories"`
}
