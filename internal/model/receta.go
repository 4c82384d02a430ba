package model

import "time"

// Receta is one cooking recipe. The id is assigned once by the store and
// never changes; Ingredientes keeps insertion order.
type Receta struct {
	ID            string     `json:"id"`
	Nombre        string     `json:"name"`
	Categoria     string     `json:"category"` // panaderia|postres|comida|bebidas|otros — not enforced on write
	Ingredientes  []string   `json:"ingredients"`
	Instrucciones string     `json:"instructions"`
	Porciones     *int       `json:"servings,omitempty"`
	TiempoPrep    *int       `json:"prepTime,omitempty"` // minutes
	Imagen        *string    `json:"image"`              // public path under /uploads, null when none
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}
