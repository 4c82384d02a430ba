package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recetario/internal/config"
	"recetario/internal/model"
	"recetario/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servidorDePrueba(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	base := t.TempDir()
	cfg := &config.Config{
		Port:               0,
		Env:                "development",
		DataDir:            filepath.Join(base, "data"),
		UploadsDir:         filepath.Join(base, "uploads"),
		PublicDir:          filepath.Join(base, "public"),
		RateLimitPerMinute: 100000,
	}
	recetaRepo, err := repository.NewRecetaRepository(cfg.RecipesFile())
	require.NoError(t, err)
	inventarioRepo, err := repository.NewInventarioRepository(cfg.InventoryFile())
	require.NoError(t, err)
	r, err := New(cfg, recetaRepo, inventarioRepo)
	require.NoError(t, err)
	return r, cfg
}

func hacerJSON(t *testing.T, r *gin.Engine, metodo, ruta, cuerpo string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(metodo, ruta, strings.NewReader(cuerpo))
	if cuerpo != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodificar[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "cuerpo: %s", w.Body.String())
	return v
}

func TestInventarioCicloCompleto(t *testing.T) {
	r, _ := servidorDePrueba(t)

	// Alta con cuerpo del escenario de referencia.
	w := hacerJSON(t, r, http.MethodPost, "/api/inventory",
		`{"name":"Flour","category":"panaderia","quantity":10,"unit":"kg","price":1.5}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creado := decodificar[model.Item](t, w)
	require.NotEmpty(t, creado.ID)
	assert.False(t, creado.CreatedAt.IsZero())
	assert.Equal(t, "", creado.Proveedor)
	assert.Equal(t, "", creado.Notas)
	assert.Equal(t, 10.0, creado.Cantidad.Float64())

	time.Sleep(5 * time.Millisecond)

	// Actualización parcial: solo price.
	w = hacerJSON(t, r, http.MethodPut, "/api/inventory/"+creado.ID, `{"price": 2.0}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	actualizado := decodificar[model.Item](t, w)
	assert.Equal(t, "Flour", actualizado.Nombre)
	assert.Equal(t, 10.0, actualizado.Cantidad.Float64())
	assert.Equal(t, 2.0, actualizado.Precio.Float64())
	require.NotNil(t, actualizado.UpdatedAt)
	assert.True(t, actualizado.UpdatedAt.After(actualizado.CreatedAt))

	// Lectura individual y de colección.
	w = hacerJSON(t, r, http.MethodGet, "/api/inventory/"+creado.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = hacerJSON(t, r, http.MethodGet, "/api/inventory", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodificar[[]model.Item](t, w)
	require.Len(t, items, 1)

	// Baja y 404 en la segunda baja.
	w = hacerJSON(t, r, http.MethodDelete, "/api/inventory/"+creado.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Item eliminado correctamente")

	w = hacerJSON(t, r, http.MethodDelete, "/api/inventory/"+creado.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item no encontrado"}`, w.Body.String())
}

func TestEliminarRecetaInexistente(t *testing.T) {
	r, _ := servidorDePrueba(t)

	w := hacerJSON(t, r, http.MethodDelete, "/api/recipes/no-existe", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Receta no encontrada"}`, w.Body.String())
}

func formularioReceta(t *testing.T, campos map[string]string, archivo, tipo string, contenido []byte) (*bytes.Buffer, string) {
	t.Helper()
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for clave, valor := range campos {
		require.NoError(t, w.WriteField(clave, valor))
	}
	if archivo != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, archivo))
		h.Set("Content-Type", tipo)
		parte, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = parte.Write(contenido)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &b, w.FormDataContentType()
}

func TestCrearRecetaConImagen(t *testing.T) {
	r, cfg := servidorDePrueba(t)

	cuerpo, tipo := formularioReceta(t, map[string]string{
		"name":         "Pan casero",
		"category":     "panaderia",
		"ingredients":  `["Harina","","Agua","Sal"]`,
		"instructions": "Amasar y hornear",
		"servings":     "4",
		"prepTime":     "90",
	}, "foto.png", "image/png", []byte("png falso"))

	req := httptest.NewRequest(http.MethodPost, "/api/recipes", cuerpo)
	req.Header.Set("Content-Type", tipo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	receta := decodificar[model.Receta](t, w)
	require.NotEmpty(t, receta.ID)
	assert.Equal(t, []string{"Harina", "Agua", "Sal"}, receta.Ingredientes)
	require.NotNil(t, receta.Porciones)
	assert.Equal(t, 4, *receta.Porciones)
	require.NotNil(t, receta.Imagen)
	require.True(t, strings.HasPrefix(*receta.Imagen, "/uploads/"), *receta.Imagen)

	// El archivo quedó escrito en el área de subidas.
	_, err := os.Stat(filepath.Join(cfg.UploadsDir, strings.TrimPrefix(*receta.Imagen, "/uploads/")))
	require.NoError(t, err)

	// Round-trip por id.
	w2 := hacerJSON(t, r, http.MethodGet, "/api/recipes/"+receta.ID, "")
	require.Equal(t, http.StatusOK, w2.Code)
	leida := decodificar[model.Receta](t, w2)
	assert.Equal(t, receta.Nombre, leida.Nombre)
	assert.Equal(t, receta.Ingredientes, leida.Ingredientes)
}

func TestSubidaInvalidaNoCreaReceta(t *testing.T) {
	r, _ := servidorDePrueba(t)

	cuerpo, tipo := formularioReceta(t, map[string]string{
		"name": "Torta",
	}, "notas.txt", "text/plain", []byte("no soy una imagen"))

	req := httptest.NewRequest(http.MethodPost, "/api/recipes", cuerpo)
	req.Header.Set("Content-Type", tipo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Solo se permiten im")

	w2 := hacerJSON(t, r, http.MethodGet, "/api/recipes", "")
	require.Equal(t, http.StatusOK, w2.Code)
	recetas := decodificar[[]model.Receta](t, w2)
	assert.Empty(t, recetas)
}

func TestObtenerRecetaInexistente(t *testing.T) {
	r, _ := servidorDePrueba(t)
	w := hacerJSON(t, r, http.MethodGet, "/api/recipes/404404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Receta no encontrada"}`, w.Body.String())
}

func TestReporteDeInventario(t *testing.T) {
	r, _ := servidorDePrueba(t)

	w := hacerJSON(t, r, http.MethodPost, "/api/inventory",
		`{"name":"Harina","category":"panaderia","quantity":10,"unit":"kg","price":1.5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = hacerJSON(t, r, http.MethodPost, "/api/inventory",
		`{"name":"Misterio","category":"otros","quantity":"???","unit":"u","price":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = hacerJSON(t, r, http.MethodGet, "/api/reports/inventory", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resumen struct {
		Items    int    `json:"items"`
		Omitidos int    `json:"skipped"`
		Valor    string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))
	assert.Equal(t, 1, resumen.Items)
	assert.Equal(t, 1, resumen.Omitidos)
	assert.Equal(t, "15", resumen.Valor)
}

func TestHealth(t *testing.T) {
	r, _ := servidorDePrueba(t)
	w := hacerJSON(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestMetricsExpuestas(t *testing.T) {
	r, _ := servidorDePrueba(t)
	// Genera al menos una solicitud medida antes de raspar.
	hacerJSON(t, r, http.MethodGet, "/api/recipes", "")

	w := hacerJSON(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recetario_http_requests_total")
}
