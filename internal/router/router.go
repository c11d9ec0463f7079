package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dussanclaurer/pepito-s-app/internal/config"
	"github.com/dussanclaurer/pepito-s-app/internal/fechas"
	"github.com/dussanclaurer/pepito-s-app/internal/handler"
	"github.com/dussanclaurer/pepito-s-app/internal/middleware"
	"github.com/dussanclaurer/pepito-s-app/internal/model"
	"github.com/dussanclaurer/pepito-s-app/internal/repository"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	loc := fechas.Zona(cfg.Timezone)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, reporteRepo, loc)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, loc)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo)
	reporteSvc := service.NewReporteService(
		reporteRepo, productoRepo, rdb,
		time.Duration(cfg.ReportCacheSeconds)*time.Second,
		cfg.UmbralInventario, loc,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		// Ventas — any authenticated role
		api.POST("/ventas", ventasH.RegistrarVenta)
		api.GET("/historial-ventas", ventasH.HistorialVentas)
		api.GET("/ventas/:id/recibo", ventasH.Recibo)

		// Pedidos — any authenticated role
		api.GET("/pedidos", pedidosH.ListarPedidos)
		api.POST("/pedidos", pedidosH.CrearPedido)
		api.GET("/pedidos/:id", pedidosH.ObtenerPedido)
		api.PATCH("/pedidos/:id", pedidosH.ActualizarPedido)
		api.POST("/pedidos/:id/pagar", pedidosH.PagarSaldo)

		// Clientes — any authenticated role
		api.GET("/clientes", clientesH.ListarClientes)
		api.POST("/clientes", clientesH.CrearCliente)

		// Productos — all can read, ADMIN writes
		api.GET("/productos", productosH.ListarProductos)
		prods := api.Group("/productos", middleware.RequireRole(model.RolAdmin))
		{
			prods.POST("", productosH.CrearProducto)
			prods.PATCH("/:id", productosH.ActualizarProducto)
			prods.DELETE("/:id", productosH.EliminarProducto)
			prods.POST("/:id/reactivar", productosH.ReactivarProducto)
		}

		// Categorías — all can read, ADMIN writes
		api.GET("/categorias", categoriasH.ListarCategorias)
		categorias := api.Group("/categorias", middleware.RequireRole(model.RolAdmin))
		{
			categorias.POST("", categoriasH.CrearCategoria)
			categorias.PATCH("/:id", categoriasH.ActualizarCategoria)
			categorias.DELETE("/:id", categoriasH.EliminarCategoria)
		}

		// Reportes — cierre-caja scopes itself per role
		api.GET("/reportes/cierre-caja", reportesH.CierreCaja)
		api.GET("/reportes/resumen", reportesH.Resumen)
		api.GET("/reportes/mas-vendidos", reportesH.MasVendidos)

		// Usuarios — ADMIN only
		usuarios := api.Group("/usuarios", middleware.RequireRole(model.RolAdmin))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PATCH("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
