// internal/handlers/producto_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tiendago/tienda-backend/internal/services"
)

func setupProductoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	productoHandler := NewProductoHandler(services.NewProductoService(nil))
	r.GET("/api/productos/:id", productoHandler.Obtener)
	r.POST("/api/productos", productoHandler.Crear)
	r.PUT("/api/productos/:id", productoHandler.Actualizar)
	r.DELETE("/api/productos/:id", productoHandler.Eliminar)

	return r
}

func TestObtenerProductoRechazaIDInvalido(t *testing.T) {
	r := setupProductoRouter()

	req, _ := http.NewRequest("GET", "/api/productos/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearProductoRechazaNombreEnBlanco(t *testing.T) {
	r := setupProductoRouter()

	w := postJSON(t, r, "/api/productos", map[string]interface{}{
		"nombre": "  ",
		"precio": "10.00",
		"stock":  5,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response["success"].(bool))
}

func TestCrearProductoRechazaStockNegativo(t *testing.T) {
	r := setupProductoRouter()

	w := postJSON(t, r, "/api/productos", map[string]interface{}{
		"nombre": "Mate Imperial",
		"precio": "10.00",
		"stock":  -1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEliminarProductoRechazaIDInvalido(t *testing.T) {
	r := setupProductoRouter()

	req, _ := http.NewRequest("DELETE", "/api/productos/123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
