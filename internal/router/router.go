package router

import (
	"net/http"
	"time"

	"recetario/internal/config"
	"recetario/internal/handler"
	"recetario/internal/middleware"
	"recetario/internal/repository"
	"recetario/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New wires services and handlers onto a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← JSON files
func New(cfg *config.Config, recetaRepo repository.RecetaRepository, inventarioRepo repository.InventarioRepository) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	imagenes, err := service.NewAlmacenImagenes(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	recetasH := handler.NewRecetasHandler(service.NewRecetaService(recetaRepo, imagenes))
	inventarioH := handler.NewInventarioHandler(service.NewInventarioService(inventarioRepo))

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))
	r.Use(middleware.Metrics())

	r.GET("/health", handler.Health(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		recipes := api.Group("/recipes")
		{
			recipes.GET("", recetasH.Listar)
			recipes.GET("/:id", recetasH.ObtenerPorID)
			recipes.POST("", recetasH.Crear)
			recipes.PUT("/:id", recetasH.Actualizar)
			recipes.DELETE("/:id", recetasH.Eliminar)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventarioH.Listar)
			inventory.GET("/:id", inventarioH.ObtenerPorID)
			inventory.POST("", inventarioH.Crear)
			inventory.PUT("/:id", inventarioH.Actualizar)
			inventory.DELETE("/:id", inventarioH.Eliminar)
		}

		api.GET("/reports/inventory", inventarioH.Resumen)
	}

	// Uploaded images are read-only static content.
	r.Static("/uploads", cfg.UploadsDir)

	// Everything else falls through to the bundled browser client.
	publico := http.FileServer(http.Dir(cfg.PublicDir))
	r.NoRoute(func(c *gin.Context) {
		publico.ServeHTTP(c.Writer, c.Request)
	})

	return r, nil
}
