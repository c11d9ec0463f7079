package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

type CategoriaService struct {
	categorias repository.CategoriaRepository
}

func NewCategoriaService(categorias repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categorias: categorias}
}

func (s *CategoriaService) Listar(ctx context.Context) ([]model.Categoria, error) {
	return s.categorias.List(ctx)
}

func (s *CategoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	categoria := &model.Categoria{Nombre: req.Nombre}
	if err := s.categorias.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

func (s *CategoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*model.Categoria, error) {
	categoria, err := s.categorias.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Categoría", ID: id.String()}
	}
	if err != nil {
		return nil, err
	}

	categoria.Nombre = req.Nombre
	if err := s.categorias.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// Eliminar hard-deletes the category, but only when no product references
// it. Categories carry no sale history of their own, so an unreferenced one
// can go for real.
func (s *CategoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categorias.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Recurso: "Categoría", ID: id.String()}
		}
		return err
	}

	productos, err := s.categorias.CountProductos(ctx, id)
	if err != nil {
		return err
	}
	if productos > 0 {
		return &ErrCategoriaConProductos{Cantidad: productos}
	}
	return s.categorias.Delete(ctx, id)
}
