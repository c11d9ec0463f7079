package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductoRepo is an in-memory ProductoRepository for testing.
type stubProductoRepo struct {
	productos   map[uuid.UUID]*model.Producto
	referencias map[uuid.UUID]int64
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:   make(map[uuid.UUID]*model.Producto),
		referencias: make(map[uuid.UUID]int64),
	}
}

func (r *stubProductoRepo) agregar(p model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = &p
	return &p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) ListInventarioBajo(_ context.Context, umbral int) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Activo && p.Inventario <= umbral {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = false
	}
	return nil
}

func (r *stubProductoRepo) HardDelete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	if p, ok := r.productos[id]; ok {
		p.Activo = true
	}
	return nil
}

func (r *stubProductoRepo) CountReferenciasVenta(_ context.Context, id uuid.UUID) (int64, error) {
	return r.referencias[id], nil
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad int) (bool, error) {
	p, ok := r.productos[id]
	if !ok || p.Inventario < cantidad {
		return false, nil
	}
	p.Inventario -= cantidad
	return true, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubVentaRepo captures created sales for assertion.
type stubVentaRepo struct {
	ventas []*model.Venta
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreadoEn.IsZero() {
		v.CreadoEn = time.Now()
	}
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) ListEnVentana(_ context.Context, inicio, fin time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if !v.CreadoEn.Before(inicio) && !v.CreadoEn.After(fin) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubPedidoRepo is an in-memory PedidoRepository.
type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
	pagos   []model.Pago
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) agregar(p model.Pedido) *model.Pedido {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = &p
	return &p
}

func (r *stubPedidoRepo) CreateTx(_ *gorm.DB, p *model.Pedido) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubPedidoRepo) FindByIDConPagos(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, pago := range r.pagos {
		if pago.PedidoID != nil && *pago.PedidoID == id {
			p.Pagos = append(p.Pagos, pago)
		}
	}
	return p, nil
}

func (r *stubPedidoRepo) ListActivos(_ context.Context) ([]model.Pedido, error) {
	var out []model.Pedido
	for _, p := range r.pedidos {
		if !model.EstadoTerminal(p.Estado) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) CreatePagoTx(_ *gorm.DB, pago *model.Pago) error {
	if pago.ID == uuid.Nil {
		pago.ID = uuid.New()
	}
	r.pagos = append(r.pagos, *pago)
	return nil
}

func (r *stubPedidoRepo) CompletarTx(_ *gorm.DB, id uuid.UUID, descuentoSaldo decimal.Decimal) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.DescuentoSaldo = descuentoSaldo
	p.Estado = model.EstadoCompletado
	return nil
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) agregar(c model.Cliente) *model.Cliente {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = &c
	return &c
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	for _, existente := range r.clientes {
		if existente.Telefono == c.Telefono {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByTelefono(_ context.Context, telefono string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Telefono == telefono {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubCategoriaRepo is an in-memory CategoriaRepository.
type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
	productos  map[uuid.UUID]int64
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias: make(map[uuid.UUID]*model.Categoria),
		productos:  make(map[uuid.UUID]int64),
	}
}

func (r *stubCategoriaRepo) agregar(c model.Categoria) *model.Categoria {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = &c
	return &c
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	out := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) Update(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categorias, id)
	return nil
}

func (r *stubCategoriaRepo) CountProductos(_ context.Context, id uuid.UUID) (int64, error) {
	return r.productos[id], nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// stubUsuarioRepo is an in-memory UsuarioRepository.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) agregar(u model.Usuario) *model.Usuario {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = &u
	return &u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existente := range r.usuarios {
		if existente.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *u
	return &copia, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	if u, ok := r.usuarios[id]; ok {
		u.Activo = false
	}
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubReporteRepo returns canned aggregate rows. The *Ajenos fields hold
// rows belonging to other sellers: they only show up when the query runs
// unscoped (vendedorID == nil), mirroring the vendedor_id filter of the
// real queries.
type stubReporteRepo struct {
	ventasPorMetodo    []repository.FilaMetodo
	anticiposPorMetodo []repository.FilaMetodo
	anticiposAjenos    []repository.FilaMetodo
	saldoPorMetodo     []repository.FilaMetodo
	descVentas         decimal.Decimal
	descSaldo          decimal.Decimal
	descSaldoAjeno     decimal.Decimal
	productosVendidos  []repository.FilaProductoVendido
	vendidosPorID      map[uuid.UUID]int
	resumenTotal       decimal.Decimal
	resumenCantidad    int64
	ranking            []repository.FilaProductoVendido

	// últimos vendedorID con los que se consultó cada agregado
	ventasVendedorID    *uuid.UUID
	anticiposVendedorID *uuid.UUID
	descSaldoVendedorID *uuid.UUID
}

func (r *stubReporteRepo) SumPagosVentaPorMetodo(_ context.Context, _, _ time.Time, vendedorID *uuid.UUID) ([]repository.FilaMetodo, error) {
	r.ventasVendedorID = vendedorID
	return r.ventasPorMetodo, nil
}

func (r *stubReporteRepo) SumAnticiposPorMetodo(_ context.Context, _, _ time.Time, vendedorID *uuid.UUID) ([]repository.FilaMetodo, error) {
	r.anticiposVendedorID = vendedorID
	if vendedorID == nil {
		propios := append([]repository.FilaMetodo{}, r.anticiposPorMetodo...)
		return append(propios, r.anticiposAjenos...), nil
	}
	return r.anticiposPorMetodo, nil
}

func (r *stubReporteRepo) SumPagosSaldoPorMetodo(_ context.Context, _, _ time.Time) ([]repository.FilaMetodo, error) {
	return r.saldoPorMetodo, nil
}

func (r *stubReporteRepo) SumDescuentosVentas(_ context.Context, _, _ time.Time, _ *uuid.UUID) (decimal.Decimal, error) {
	return r.descVentas, nil
}

func (r *stubReporteRepo) SumDescuentosSaldo(_ context.Context, _, _ time.Time, vendedorID *uuid.UUID) (decimal.Decimal, error) {
	r.descSaldoVendedorID = vendedorID
	if vendedorID == nil {
		return r.descSaldo.Add(r.descSaldoAjeno), nil
	}
	return r.descSaldo, nil
}

func (r *stubReporteRepo) ProductosVendidos(_ context.Context, _, _ time.Time, _ *uuid.UUID) ([]repository.FilaProductoVendido, error) {
	return r.productosVendidos, nil
}

func (r *stubReporteRepo) CantidadVendidaPorProducto(_ context.Context, _, _ time.Time) (map[uuid.UUID]int, error) {
	if r.vendidosPorID == nil {
		return map[uuid.UUID]int{}, nil
	}
	return r.vendidosPorID, nil
}

func (r *stubReporteRepo) ResumenVentas(_ context.Context, _, _ time.Time) (decimal.Decimal, int64, error) {
	return r.resumenTotal, r.resumenCantidad, nil
}

func (r *stubReporteRepo) RankingProductos(_ context.Context) ([]repository.FilaProductoVendido, error) {
	return r.ranking, nil
}

var _ repository.ReporteRepository = (*stubReporteRepo)(nil)
