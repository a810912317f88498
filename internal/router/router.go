package router

import (
	"time"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/config"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/handler"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/importer"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/infra"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/middleware"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/repository"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, distribuidorCB *infra.CircuitBreaker) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	itemRepo := repository.NewItemRepository(db)
	reglaRepo := repository.NewReglaRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	importacionRepo := repository.NewImportacionRepository(db)

	// ── Importer ─────────────────────────────────────────────────────────────
	impCfg := importer.DefaultConfig()
	if cfg.ImportMaxFilasEncabezado > 0 {
		impCfg.MaxFilasEncabezado = cfg.ImportMaxFilasEncabezado
	}
	if cfg.ImportCorteSeccionMM > 0 {
		impCfg.CorteSeccionMM = cfg.ImportCorteSeccionMM
	}
	if cfg.ImportMinAgroSimple > 0 {
		impCfg.MinAgroSimple = cfg.ImportMinAgroSimple
	}
	normalizador := importer.NuevoNormalizador(impCfg)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	itemSvc := service.NewItemService(itemRepo, rdb)
	reglaSvc := service.NewReglaService(reglaRepo, rdb)
	importacionSvc := service.NewImportacionService(normalizador, itemRepo, importacionRepo, rdb)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, itemRepo, reglaRepo, dispatcher)
	precioSvc := service.NewPrecioService(itemRepo, reglaRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	reglasH := handler.NewReglasHandler(reglaSvc)
	importacionesH := handler.NewImportacionesHandler(importacionSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	preciosH := handler.NewPreciosHandler(precioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, distribuidorCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Inventario — lectura para todo usuario autenticado
		v1.GET("/items", middleware.RequireRole("vendedor", "administrador"), itemsH.Listar)
		v1.GET("/items/:id", middleware.RequireRole("vendedor", "administrador"), itemsH.ObtenerPorID)
		// Escritura — administrador
		items := v1.Group("/items", middleware.RequireRole("administrador"))
		{
			items.POST("", itemsH.Crear)
			items.PUT("/:id", itemsH.Actualizar)
			items.PUT("/:id/precio-manual", itemsH.FijarPrecioManual)
			items.PATCH("/:id/stock", itemsH.AjustarStock)
			items.DELETE("/:id", itemsH.Desactivar)
			items.PATCH("/:id/reactivar", itemsH.Reactivar)
		}

		// Motor de precios — consulta para vendedores, reglas solo administrador
		v1.GET("/precios/catalogo", middleware.RequireRole("vendedor", "administrador"), preciosH.Catalogo)
		v1.GET("/precios/:id", middleware.RequireRole("vendedor", "administrador"), preciosH.Consultar)

		v1.GET("/reglas", middleware.RequireRole("vendedor", "administrador"), reglasH.Listar)
		reglas := v1.Group("/reglas", middleware.RequireRole("administrador"))
		{
			reglas.POST("", reglasH.Crear)
			reglas.GET("/:id", reglasH.ObtenerPorID)
			reglas.PUT("/:id", reglasH.Actualizar)
			reglas.DELETE("/:id", reglasH.Eliminar)
		}

		// Importación de planillas — administrador
		importaciones := v1.Group("/importaciones", middleware.RequireRole("administrador"))
		{
			importaciones.POST("", importacionesH.Importar)
			importaciones.GET("", importacionesH.Listar)
			importaciones.GET("/:id", importacionesH.ObtenerPorID)
		}

		// Cotizaciones — vendedores y administrador
		cotizaciones := v1.Group("/cotizaciones", middleware.RequireRole("vendedor", "administrador"))
		{
			cotizaciones.POST("", cotizacionesH.Crear)
			cotizaciones.GET("", cotizacionesH.Listar)
			cotizaciones.GET("/:id", cotizacionesH.ObtenerPorID)
		}

		// Usuarios — administrador
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
