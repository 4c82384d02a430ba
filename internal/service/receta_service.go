package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"recetario/internal/dto"
	"recetario/internal/model"
	"recetario/internal/repository"
)

// RecetaService owns the recipe write semantics: ingredient ingestion,
// optional image attachment and the merge rules for partial updates.
type RecetaService interface {
	Listar(ctx context.Context) ([]model.Receta, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Receta, error)
	Crear(ctx context.Context, form dto.RecetaForm, imagen *multipart.FileHeader) (*model.Receta, error)
	Actualizar(ctx context.Context, id string, form dto.RecetaForm, imagen *multipart.FileHeader) (*model.Receta, error)
	Eliminar(ctx context.Context, id string) error
}

type recetaService struct {
	repo     repository.RecetaRepository
	imagenes *AlmacenImagenes
}

func NewRecetaService(repo repository.RecetaRepository, imagenes *AlmacenImagenes) RecetaService {
	return &recetaService{repo: repo, imagenes: imagenes}
}

func (s *recetaService) Listar(ctx context.Context) ([]model.Receta, error) {
	return s.repo.List(ctx)
}

func (s *recetaService) ObtenerPorID(ctx context.Context, id string) (*model.Receta, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *recetaService) Crear(ctx context.Context, form dto.RecetaForm, imagen *multipart.FileHeader) (*model.Receta, error) {
	// Image validation runs first: a rejected upload fails the request
	// before the store is touched.
	ruta, err := s.guardarImagen(imagen)
	if err != nil {
		return nil, err
	}
	ingredientes, err := parsearIngredientes(form.Ingredientes)
	if err != nil {
		return nil, err
	}
	rec := model.Receta{
		Nombre:        form.Nombre,
		Categoria:     form.Categoria,
		Ingredientes:  ingredientes,
		Instrucciones: form.Instrucciones,
		Porciones:     enteroPositivo(form.Porciones),
		TiempoPrep:    enteroPositivo(form.TiempoPrep),
		Imagen:        ruta,
	}
	return s.repo.Create(ctx, rec)
}

// Actualizar merges only the supplied form fields onto the stored recipe.
// The browser form cannot distinguish absent from blank, so blank preserves.
func (s *recetaService) Actualizar(ctx context.Context, id string, form dto.RecetaForm, imagen *multipart.FileHeader) (*model.Receta, error) {
	ruta, err := s.guardarImagen(imagen)
	if err != nil {
		return nil, err
	}
	var ingredientes []string
	if form.Ingredientes != "" {
		if ingredientes, err = parsearIngredientes(form.Ingredientes); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, func(r *model.Receta) {
		if form.Nombre != "" {
			r.Nombre = form.Nombre
		}
		if form.Categoria != "" {
			r.Categoria = form.Categoria
		}
		if form.Ingredientes != "" {
			r.Ingredientes = ingredientes
		}
		if form.Instrucciones != "" {
			r.Instrucciones = form.Instrucciones
		}
		if v := enteroPositivo(form.Porciones); v != nil {
			r.Porciones = v
		}
		if v := enteroPositivo(form.TiempoPrep); v != nil {
			r.TiempoPrep = v
		}
		if ruta != nil {
			r.Imagen = ruta
		}
	})
}

func (s *recetaService) Eliminar(ctx context.Context, id string) error {
	// The uploaded image stays behind on purpose; reclaiming it is the
	// sweeper's job and only when the operator enables it.
	return s.repo.Delete(ctx, id)
}

func (s *recetaService) guardarImagen(imagen *multipart.FileHeader) (*string, error) {
	if imagen == nil {
		return nil, nil
	}
	ruta, err := s.imagenes.Guardar(imagen)
	if err != nil {
		return nil, err
	}
	return &ruta, nil
}

// parsearIngredientes decodes the JSON-encoded array the client posts and
// drops blank entries, keeping the order of the rest.
func parsearIngredientes(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var crudos []string
	if err := json.Unmarshal([]byte(raw), &crudos); err != nil {
		return nil, fmt.Errorf("ingredientes invalidos: %w", err)
	}
	ingredientes := make([]string, 0, len(crudos))
	for _, ing := range crudos {
		if strings.TrimSpace(ing) == "" {
			continue
		}
		ingredientes = append(ingredientes, ing)
	}
	return ingredientes, nil
}

// enteroPositivo parses an optional positive integer form field; empty or
// unparsable input counts as not supplied.
func enteroPositivo(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}
