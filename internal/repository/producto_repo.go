package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// FindByIDs batch-resolves a cart in one read.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	ListInventarioBajo(ctx context.Context, umbral int) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	// CountReferenciasVenta counts sale lines referencing the product —
	// drives the soft-vs-hard deletion policy.
	CountReferenciasVenta(ctx context.Context, id uuid.UUID) (int64, error)

	// DescontarStockTx decrements stock inside a settlement transaction with
	// a conditional guard: ok=false when on-hand stock was insufficient at
	// commit time (concurrent sale won the race).
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Categoria").Order("nombre ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListInventarioBajo(ctx context.Context, umbral int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("inventario <= ? AND activo = true", umbral).
		Order("inventario ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *productoRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error
}

func (r *productoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *productoRepo) CountReferenciasVenta(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VentaProducto{}).Where("producto_id = ?", id).Count(&count).Error
	return count, err
}

func (r *productoRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	res := tx.Model(&model.Producto{}).
		Where("id = ? AND inventario >= ?", id, cantidad).
		Update("inventario", gorm.Expr("inventario - ?", cantidad))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
