package dto

// RecetaForm carries the multipart form fields of a recipe create/update.
// Every field is optional on update; empty means "not supplied" because the
// browser form posts text inputs, where absent and blank are the same thing.
type RecetaForm struct {
	Nombre        string `form:"name"`
	Categoria     string `form:"category"`
	Ingredientes  string `form:"ingredients"` // JSON-encoded array of strings
	Instrucciones string `form:"instructions"`
	Porciones     string `form:"servings"`
	TiempoPrep    string `form:"prepTime"`
}
