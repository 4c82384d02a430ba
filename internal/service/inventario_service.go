package service

import (
	"context"
	"sort"

	"recetario/internal/dto"
	"recetario/internal/model"
	"recetario/internal/repository"

	"github.com/shopspring/decimal"
)

// InventarioService owns the inventory write semantics and the valuation
// report. Writes are deliberately permissive: categories are not checked
// and non-numeric quantity/price coerce to NaN instead of failing.
type InventarioService interface {
	Listar(ctx context.Context) ([]model.Item, error)
	ObtenerPorID(ctx context.Context, id string) (*model.Item, error)
	Crear(ctx context.Context, req dto.ItemRequest) (*model.Item, error)
	Actualizar(ctx context.Context, id string, req dto.ItemRequest) (*model.Item, error)
	Eliminar(ctx context.Context, id string) error
	Resumen(ctx context.Context) (*dto.ResumenInventario, error)
}

type inventarioService struct {
	repo repository.InventarioRepository
}

func NewInventarioService(repo repository.InventarioRepository) InventarioService {
	return &inventarioService{repo: repo}
}

func (s *inventarioService) Listar(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *inventarioService) ObtenerPorID(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *inventarioService) Crear(ctx context.Context, req dto.ItemRequest) (*model.Item, error) {
	it := model.Item{
		Nombre:    valorO(req.Nombre),
		Categoria: valorO(req.Categoria),
		Cantidad:  model.CifraDesdeJSON(req.Cantidad),
		Unidad:    valorO(req.Unidad),
		Precio:    model.CifraDesdeJSON(req.Precio),
		Proveedor: valorO(req.Proveedor),
		Notas:     valorO(req.Notas),
	}
	return s.repo.Create(ctx, it)
}

// Actualizar merges the supplied fields onto the stored item. Name,
// category and unit only overwrite with non-empty text; quantity and price
// overwrite whenever the key was present, whatever it coerces to; supplier
// and notes overwrite whenever present, an explicit "" included.
func (s *inventarioService) Actualizar(ctx context.Context, id string, req dto.ItemRequest) (*model.Item, error) {
	return s.repo.Update(ctx, id, func(it *model.Item) {
		if req.Nombre != nil && *req.Nombre != "" {
			it.Nombre = *req.Nombre
		}
		if req.Categoria != nil && *req.Categoria != "" {
			it.Categoria = *req.Categoria
		}
		if req.Cantidad != nil {
			it.Cantidad = model.CifraDesdeJSON(req.Cantidad)
		}
		if req.Unidad != nil && *req.Unidad != "" {
			it.Unidad = *req.Unidad
		}
		if req.Precio != nil {
			it.Precio = model.CifraDesdeJSON(req.Precio)
		}
		if req.Proveedor != nil {
			it.Proveedor = *req.Proveedor
		}
		if req.Notas != nil {
			it.Notas = *req.Notas
		}
	})
}

func (s *inventarioService) Eliminar(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Resumen values the whole inventory with exact decimal arithmetic,
// skipping rows whose quantity or price never was a usable number.
func (s *inventarioService) Resumen(ctx context.Context) (*dto.ResumenInventario, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenInventario{Valor: decimal.Zero}
	porCategoria := make(map[string]*dto.ResumenCategoria)
	for _, it := range items {
		if !it.Cantidad.EsValida() || !it.Precio.EsValida() {
			resumen.Omitidos++
			continue
		}
		valor := decimal.NewFromFloat(it.Cantidad.Float64()).
			Mul(decimal.NewFromFloat(it.Precio.Float64()))

		cat, ok := porCategoria[it.Categoria]
		if !ok {
			cat = &dto.ResumenCategoria{Categoria: it.Categoria, Valor: decimal.Zero}
			porCategoria[it.Categoria] = cat
		}
		cat.Items++
		cat.Valor = cat.Valor.Add(valor)
		resumen.Items++
		resumen.Valor = resumen.Valor.Add(valor)
	}

	resumen.Categorias = make([]dto.ResumenCategoria, 0, len(porCategoria))
	for _, cat := range porCategoria {
		resumen.Categorias = append(resumen.Categorias, *cat)
	}
	sort.Slice(resumen.Categorias, func(i, j int) bool {
		return resumen.Categorias[i].Categoria < resumen.Categorias[j].Categoria
	})
	return resumen, nil
}

func valorO(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
