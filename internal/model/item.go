package model

import "time"

// Item is one kitchen inventory entry. Cantidad and Precio are Cifra on
// purpose: the store persists whatever the caller supplied, NaN included.
type Item struct {
	ID        string     `json:"id"`
	Nombre    string     `json:"name"`
	Categoria string     `json:"category"`
	Cantidad  Cifra      `json:"quantity"`
	Unidad    string     `json:"unit"`
	Precio    Cifra      `json:"price"`
	Proveedor string     `json:"supplier"`
	Notas     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
