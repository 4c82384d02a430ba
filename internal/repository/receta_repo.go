package repository

import (
	"context"
	"time"

	"recetario/internal/model"
)

// RecetaRepository defines the data access contract for recipes.
// Services depend on this interface, not on the JSON-file implementation,
// so a future swap to a real database touches nothing above this line.
type RecetaRepository interface {
	List(ctx context.Context) ([]model.Receta, error)
	FindByID(ctx context.Context, id string) (*model.Receta, error)
	Create(ctx context.Context, rec model.Receta) (*model.Receta, error)
	// Update applies the caller's merge under the collection write lock,
	// then stamps UpdatedAt and persists.
	Update(ctx context.Context, id string, aplicar func(*model.Receta)) (*model.Receta, error)
	Delete(ctx context.Context, id string) error
}

type recetaRepo struct {
	col *coleccion[model.Receta]
}

func NewRecetaRepository(ruta string) (RecetaRepository, error) {
	col, err := abrirColeccion(ruta, func(r *model.Receta) string { return r.ID })
	if err != nil {
		return nil, err
	}
	return &recetaRepo{col: col}, nil
}

func (r *recetaRepo) List(_ context.Context) ([]model.Receta, error) {
	return r.col.listar(), nil
}

func (r *recetaRepo) FindByID(_ context.Context, id string) (*model.Receta, error) {
	return r.col.obtener(id)
}

func (r *recetaRepo) Create(_ context.Context, rec model.Receta) (*model.Receta, error) {
	return r.col.mutar(func(regs []model.Receta) ([]model.Receta, *model.Receta, error) {
		rec.ID = r.col.ids.siguiente()
		rec.CreatedAt = time.Now().UTC()
		regs = append(regs, rec)
		return regs, &rec, nil
	})
}

func (r *recetaRepo) Update(_ context.Context, id string, aplicar func(*model.Receta)) (*model.Receta, error) {
	return r.col.mutar(func(regs []model.Receta) ([]model.Receta, *model.Receta, error) {
		for i := range regs {
			if regs[i].ID != id {
				continue
			}
			aplicar(&regs[i])
			ahora := time.Now().UTC()
			regs[i].UpdatedAt = &ahora
			return regs, &regs[i], nil
		}
		return nil, nil, ErrNotFound
	})
}

func (r *recetaRepo) Delete(_ context.Context, id string) error {
	_, err := r.col.mutar(func(regs []model.Receta) ([]model.Receta, *model.Receta, error) {
		for i := range regs {
			if regs[i].ID == id {
				return append(regs[:i], regs[i+1:]...), nil, nil
			}
		}
		return nil, nil, ErrNotFound
	})
	return err
}
