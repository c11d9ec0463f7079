package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

type PedidoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	FindByIDConPagos(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// ListActivos returns non-terminal pedidos ordered by delivery date.
	ListActivos(ctx context.Context) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error

	// Payment entries are always written inside a transaction, both the
	// deposit at creation time and the balance legs at settlement.
	CreatePagoTx(tx *gorm.DB, pago *model.Pago) error
	CompletarTx(tx *gorm.DB, id uuid.UUID, descuentoSaldo decimal.Decimal) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Cliente").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) FindByIDConPagos(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Pagos").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) ListActivos(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("estado NOT IN ?", []string{model.EstadoCompletado, model.EstadoCancelado}).
		Preload("Cliente").
		Order("fecha_entrega ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) CreatePagoTx(tx *gorm.DB, pago *model.Pago) error {
	return tx.Create(pago).Error
}

func (r *pedidoRepo) CompletarTx(tx *gorm.DB, id uuid.UUID, descuentoSaldo decimal.Decimal) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", id).Updates(map[string]interface{}{
		"descuento_saldo": descuentoSaldo,
		"estado":          model.EstadoCompletado,
	}).Error
}
