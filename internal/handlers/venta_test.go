// internal/handlers/venta_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendago/tienda-backend/internal/services"
)

// Requests rejected by input validation never reach the database, so
// the handlers run against services with no storage behind them.
func setupVentaRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ventaHandler := NewVentaHandler(services.NewVentaService(nil))
	r.POST("/api/ventas", ventaHandler.Registrar)
	r.GET("/api/ventas/cliente/:clienteId", ventaHandler.HistorialPorCliente)

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestRegistrarVentaRechazaJSONInvalido(t *testing.T) {
	r := setupVentaRouter()

	req, _ := http.NewRequest("POST", "/api/ventas", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response["success"].(bool))
}

func TestRegistrarVentaRechazaCamposVacios(t *testing.T) {
	r := setupVentaRouter()

	w := postJSON(t, r, "/api/ventas", map[string]interface{}{
		"nombreCliente":   "   ",
		"apellidoCliente": "Gomez",
		"emailCliente":    "ana@x.com",
		"detalles": []map[string]interface{}{
			{"productoId": "7f9c24e5-2f86-4f6b-8c8e-111111111111", "cantidad": 1},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response["success"].(bool))
}

func TestRegistrarVentaRechazaSinDetalles(t *testing.T) {
	r := setupVentaRouter()

	w := postJSON(t, r, "/api/ventas", map[string]interface{}{
		"nombreCliente":   "Ana",
		"apellidoCliente": "Gomez",
		"emailCliente":    "ana@x.com",
		"detalles":        []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrarVentaRechazaCantidadCero(t *testing.T) {
	r := setupVentaRouter()

	w := postJSON(t, r, "/api/ventas", map[string]interface{}{
		"nombreCliente":   "Ana",
		"apellidoCliente": "Gomez",
		"emailCliente":    "ana@x.com",
		"detalles": []map[string]interface{}{
			{"productoId": "7f9c24e5-2f86-4f6b-8c8e-111111111111", "cantidad": 0},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistorialRechazaIDInvalido(t *testing.T) {
	r := setupVentaRouter()

	req, _ := http.NewRequest("GET", "/api/ventas/cliente/no-es-un-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response["success"].(bool))
}
