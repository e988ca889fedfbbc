// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tiendago/tienda-backend/internal/config"
	"github.com/tiendago/tienda-backend/internal/handlers"
	"github.com/tiendago/tienda-backend/internal/middleware"
	"github.com/tiendago/tienda-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productoService := services.NewProductoService(db)
	clienteService := services.NewClienteService(db)
	ventaService := services.NewVentaService(db)

	// Initialize handlers
	productoHandler := handlers.NewProductoHandler(productoService)
	clienteHandler := handlers.NewClienteHandler(clienteService)
	ventaHandler := handlers.NewVentaHandler(ventaService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		productos := api.Group("/productos")
		{
			productos.GET("", productoHandler.Listar)
			productos.GET("/:id", productoHandler.Obtener)
			productos.POST("", productoHandler.Crear)
			productos.PUT("/:id", productoHandler.Actualizar)
			productos.DELETE("/:id", productoHandler.Eliminar)
		}

		clientes := api.Group("/clientes")
		{
			clientes.GET("", clienteHandler.Listar)
			clientes.GET("/:id", clienteHandler.Obtener)
			clientes.GET("/email/:email", clienteHandler.ObtenerPorEmail)
			clientes.POST("", clienteHandler.Crear)
			clientes.PUT("/:id", clienteHandler.Actualizar)
			clientes.DELETE("/:id", clienteHandler.Eliminar)
		}

		ventas := api.Group("/ventas")
		{
			ventas.POST("", ventaHandler.Registrar)
			ventas.GET("/cliente/:clienteId", ventaHandler.HistorialPorCliente)
		}
	}

	return r
}
