package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/xtreme-academy/cuentas-api/internal/application/dto"
	"github.com/xtreme-academy/cuentas-api/internal/application/persist"
	"github.com/xtreme-academy/cuentas-api/internal/domain"
	"github.com/xtreme-academy/cuentas-api/internal/domain/entity"
	"github.com/xtreme-academy/cuentas-api/pkg/validation"
)

// InventarioUseCase maneja el inventario de la plantilla activa.
type InventarioUseCase struct {
	co *persist.Coordinator
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(co *persist.Coordinator) *InventarioUseCase {
	return &InventarioUseCase{co: co}
}

// Listar devuelve el inventario de la plantilla activa.
func (uc *InventarioUseCase) Listar(ctx context.Context) ([]entity.Articulo, error) {
	var articulos []entity.Articulo
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		articulos = append([]entity.Articulo{}, t.Inventario...)
		return nil
	})
	return articulos, err
}

// BajoStock devuelve los artículos en o por debajo de su mínimo.
func (uc *InventarioUseCase) BajoStock(ctx context.Context) ([]entity.Articulo, error) {
	var bajos []entity.Articulo
	err := uc.co.View(ctx, func(t *entity.Plantilla) error {
		for _, art := range t.Inventario {
			if art.BajoStock() {
				bajos = append(bajos, art)
			}
		}
		return nil
	})
	return bajos, err
}

// Crear da de alta un artículo.
func (uc *InventarioUseCase) Crear(ctx context.Context, in dto.CrearArticuloRequest) (*entity.Articulo, error) {
	producto, err := validation.TextoObligatorio(in.Producto, "el producto")
	if err != nil {
		return nil, err
	}
	categoria, err := validation.TextoObligatorio(in.Categoria, "la categoría")
	if err != nil {
		return nil, err
	}
	if in.Stock < 0 || in.Minimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	art := entity.Articulo{
		ID:        uuid.New().String(),
		Categoria: categoria,
		Producto:  producto,
		Stock:     in.Stock,
		Minimo:    in.Minimo,
		Costo:     in.Costo,
	}
	err = uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		t.Inventario = append(t.Inventario, art)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// Actualizar edita un artículo campo a campo.
func (uc *InventarioUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarArticuloRequest) (*entity.Articulo, error) {
	var actualizado entity.Articulo
	err := uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		var art *entity.Articulo
		for i := range t.Inventario {
			if t.Inventario[i].ID == id {
				art = &t.Inventario[i]
				break
			}
		}
		if art == nil {
			return domain.ErrNotFound
		}
		if in.Producto != nil {
			producto, err := validation.TextoObligatorio(*in.Producto, "el producto")
			if err != nil {
				return err
			}
			art.Producto = producto
		}
		if in.Categoria != nil {
			art.Categoria = *in.Categoria
		}
		if in.Stock != nil {
			if *in.Stock < 0 {
				return domain.ErrInvalidInput
			}
			art.Stock = *in.Stock
		}
		if in.Minimo != nil {
			if *in.Minimo < 0 {
				return domain.ErrInvalidInput
			}
			art.Minimo = *in.Minimo
		}
		if in.Costo != nil {
			art.Costo = in.Costo
		}
		actualizado = *art
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar borra un artículo.
func (uc *InventarioUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.co.Mutate(ctx, func(t *entity.Plantilla) error {
		for i := range t.Inventario {
			if t.Inventario[i].ID == id {
				t.Inventario = append(t.Inventario[:i], t.Inventario[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
