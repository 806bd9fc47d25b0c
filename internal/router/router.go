package router

import (
	"time"

	"github.com/FN2184/tiny-business-manager/internal/config"
	"github.com/FN2184/tiny-business-manager/internal/handler"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/middleware"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/service"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/gin-gonic/gin"
)

// Repos groups the in-memory aggregates. They are built in main so the
// snapshot rehydration runs before the first request is served.
type Repos struct {
	Catalogo   repository.CatalogoRepository
	Categorias repository.CategoriaRepository
	Clientes   repository.ClienteRepository
	Carrito    repository.CarritoRepository
	Tasa       repository.TasaRepository
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← snapshot store
func New(cfg *config.Config, repos Repos, store infra.SnapshotStore, dispatcher *worker.Dispatcher) *gin.Engine {
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

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	productoSvc := service.NewProductoService(repos.Catalogo, repos.Categorias, repos.Tasa, dispatcher)
	inventarioSvc := service.NewInventarioService(repos.Catalogo, repos.Tasa, dispatcher)
	archivoSvc := service.NewCatalogoArchivoService(repos.Catalogo, repos.Categorias, dispatcher)
	carritoSvc := service.NewCarritoService(repos.Carrito, repos.Catalogo, repos.Tasa)
	clienteSvc := service.NewClienteService(repos.Clientes, repos.Tasa, dispatcher)
	categoriaSvc := service.NewCategoriaService(repos.Categorias, dispatcher)
	tasaSvc := service.NewTasaService(repos.Tasa, dispatcher)
	ventaSvc := service.NewVentaService(repos.Carrito, repos.Catalogo, repos.Clientes, repos.Tasa, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	catalogoH := handler.NewCatalogoHandler(archivoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	tasaH := handler.NewTasaHandler(tasaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(store, dispatcher))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes — single operator, one JWT covers everything
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PATCH("/:id/stock", inventarioH.ActualizarStock)
		}

		inv := v1.Group("/inventario")
		{
			inv.GET("/stock-bajo", inventarioH.StockBajo)
			inv.GET("/mas-vendidos", inventarioH.MasVendidos)
		}

		catalogo := v1.Group("/catalogo")
		{
			catalogo.POST("/importar", catalogoH.Importar)
			catalogo.GET("/exportar", catalogoH.Exportar)
		}

		carrito := v1.Group("/carrito")
		{
			carrito.GET("", carritoH.Ver)
			carrito.POST("/items", carritoH.Agregar)
			carrito.PUT("/items/:id", carritoH.FijarCantidad)
			carrito.DELETE("/items/:id", carritoH.Quitar)
			carrito.DELETE("", carritoH.Vaciar)
			carrito.POST("/vuelto", carritoH.CalcularVuelto)
		}

		v1.POST("/ventas", ventasH.Checkout)

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.POST("/:id/credito", clientesH.AjustarCredito)
			clientes.POST("/:id/abonos", clientesH.Abonar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.POST("", categoriasH.Crear)
		}

		tasa := v1.Group("/tasa")
		{
			tasa.GET("", tasaH.Obtener)
			tasa.PUT("", tasaH.Fijar)
		}
	}

	return r
}
