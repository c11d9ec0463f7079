package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/fechas"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

type ProductoService struct {
	productos  repository.ProductoRepository
	categorias repository.CategoriaRepository
	reportes   repository.ReporteRepository
	loc        *time.Location
}

func NewProductoService(
	productos repository.ProductoRepository,
	categorias repository.CategoriaRepository,
	reportes repository.ReporteRepository,
	loc *time.Location,
) *ProductoService {
	return &ProductoService{productos: productos, categorias: categorias, reportes: reportes, loc: loc}
}

// Listar returns the catalog decorated with today's units sold per product.
func (s *ProductoService) Listar(ctx context.Context) ([]dto.ProductoConVentas, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, err
	}

	inicio, fin := fechas.Ventana(fechas.PeriodoDia, s.loc, time.Now())
	vendidos, err := s.reportes.CantidadVendidaPorProducto(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductoConVentas, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoConVentas{
			Producto:        p,
			CantidadVendida: vendidos[p.ID],
		})
	}
	return out, nil
}

func (s *ProductoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	producto, err := s.productos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Producto", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *ProductoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, &NotFoundError{Recurso: "Categoría", ID: req.CategoriaID}
	}
	if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Recurso: "Categoría", ID: req.CategoriaID}
		}
		return nil, err
	}

	producto := &model.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Inventario:  req.Inventario,
		Activo:      true,
		CategoriaID: categoriaID,
	}
	if err := s.productos.Create(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *ProductoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	producto, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		producto.Nombre = *req.Nombre
	}
	if req.Precio != nil {
		producto.Precio = *req.Precio
	}
	if req.Inventario != nil {
		producto.Inventario = *req.Inventario
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, &NotFoundError{Recurso: "Categoría", ID: *req.CategoriaID}
		}
		if _, err := s.categorias.FindByID(ctx, categoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Recurso: "Categoría", ID: *req.CategoriaID}
			}
			return nil, err
		}
		producto.CategoriaID = categoriaID
	}

	producto.Categoria = nil
	if err := s.productos.Update(ctx, producto); err != nil {
		return nil, err
	}
	return producto, nil
}

// Eliminar resolves the deletion policy: a product referenced by sale lines
// is deactivated so historic sales keep their joins, otherwise it is removed.
func (s *ProductoService) Eliminar(ctx context.Context, id uuid.UUID) (DeletionPolicy, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return "", err
	}

	referencias, err := s.productos.CountReferenciasVenta(ctx, id)
	if err != nil {
		return "", err
	}
	if referencias > 0 {
		if err := s.productos.SoftDelete(ctx, id); err != nil {
			return "", err
		}
		return DeletionSoft, nil
	}
	if err := s.productos.HardDelete(ctx, id); err != nil {
		return "", err
	}
	return DeletionHard, nil
}

func (s *ProductoService) Reactivar(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	if err := s.productos.Reactivar(ctx, id); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, id)
}
