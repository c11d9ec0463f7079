package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

type ClienteService struct {
	clientes repository.ClienteRepository
}

func NewClienteService(clientes repository.ClienteRepository) *ClienteService {
	return &ClienteService{clientes: clientes}
}

func (s *ClienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.clientes.List(ctx)
}

// BuscarPorTelefono is the POS lookup used before creating a pedido.
func (s *ClienteService) BuscarPorTelefono(ctx context.Context, telefono string) (*model.Cliente, error) {
	cliente, err := s.clientes.FindByTelefono(ctx, telefono)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Recurso: "Cliente", ID: telefono}
	}
	if err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	cliente := &model.Cliente{Nombre: req.Nombre, Telefono: req.Telefono}
	err := s.clientes.Create(ctx, cliente)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrTelefonoDuplicado
	}
	if err != nil {
		return nil, err
	}
	return cliente, nil
}
