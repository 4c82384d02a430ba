package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"recetario/internal/model"
	"recetario/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escribirArchivo(t *testing.T, ruta string, antiguedad time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(ruta, []byte("img"), 0o644))
	if antiguedad > 0 {
		pasado := time.Now().Add(-antiguedad)
		require.NoError(t, os.Chtimes(ruta, pasado, pasado))
	}
}

func TestBarrerEliminaSoloHuerfanasViejas(t *testing.T) {
	base := t.TempDir()
	uploads := filepath.Join(base, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))

	repo, err := repository.NewRecetaRepository(filepath.Join(base, "recipes.json"))
	require.NoError(t, err)

	imagen := "/uploads/referenciada.png"
	_, err = repo.Create(context.Background(), model.Receta{Nombre: "Pan", Imagen: &imagen})
	require.NoError(t, err)

	escribirArchivo(t, filepath.Join(uploads, "referenciada.png"), 2*time.Hour)
	escribirArchivo(t, filepath.Join(uploads, "huerfana.png"), 2*time.Hour)
	escribirArchivo(t, filepath.Join(uploads, "reciente.png"), 0)

	s := NewSweeper(repo, uploads, time.Hour)
	borrados, err := s.Barrer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, borrados)

	_, err = os.Stat(filepath.Join(uploads, "referenciada.png"))
	assert.NoError(t, err, "la imagen referenciada debe sobrevivir")
	_, err = os.Stat(filepath.Join(uploads, "reciente.png"))
	assert.NoError(t, err, "la imagen reciente queda protegida por el período de gracia")
	_, err = os.Stat(filepath.Join(uploads, "huerfana.png"))
	assert.True(t, os.IsNotExist(err), "la huérfana vieja debe eliminarse")
}

func TestBarrerSinRecetas(t *testing.T) {
	base := t.TempDir()
	uploads := filepath.Join(base, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))

	repo, err := repository.NewRecetaRepository(filepath.Join(base, "recipes.json"))
	require.NoError(t, err)

	escribirArchivo(t, filepath.Join(uploads, "suelta.png"), 3*time.Hour)

	s := NewSweeper(repo, uploads, time.Hour)
	borrados, err := s.Barrer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, borrados)
}
