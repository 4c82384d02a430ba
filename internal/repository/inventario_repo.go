package repository

import (
	"context"
	"time"

	"recetario/internal/model"
)

// InventarioRepository defines the data access contract for inventory items.
type InventarioRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, it model.Item) (*model.Item, error)
	Update(ctx context.Context, id string, aplicar func(*model.Item)) (*model.Item, error)
	Delete(ctx context.Context, id string) error
}

type inventarioRepo struct {
	col *coleccion[model.Item]
}

func NewInventarioRepository(ruta string) (InventarioRepository, error) {
	col, err := abrirColeccion(ruta, func(it *model.Item) string { return it.ID })
	if err != nil {
		return nil, err
	}
	return &inventarioRepo{col: col}, nil
}

func (r *inventarioRepo) List(_ context.Context) ([]model.Item, error) {
	return r.col.listar(), nil
}

func (r *inventarioRepo) FindByID(_ context.Context, id string) (*model.Item, error) {
	return r.col.obtener(id)
}

func (r *inventarioRepo) Create(_ context.Context, it model.Item) (*model.Item, error) {
	return r.col.mutar(func(regs []model.Item) ([]model.Item, *model.Item, error) {
		it.ID = r.col.ids.siguiente()
		it.CreatedAt = time.Now().UTC()
		regs = append(regs, it)
		return regs, &it, nil
	})
}

func (r *inventarioRepo) Update(_ context.Context, id string, aplicar func(*model.Item)) (*model.Item, error) {
	return r.col.mutar(func(regs []model.Item) ([]model.Item, *model.Item, error) {
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

func (r *inventarioRepo) Delete(_ context.Context, id string) error {
	_, err := r.col.mutar(func(regs []model.Item) ([]model.Item, *model.Item, error) {
		for i := range regs {
			if regs[i].ID == id {
				return append(regs[:i], regs[i+1:]...), nil, nil
			}
		}
		return nil, nil, ErrNotFound
	})
	return err
}
