// internal/handlers/venta.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tiendago/tienda-backend/internal/services"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type VentaHandler struct {
	ventaService *services.VentaService
}

func NewVentaHandler(ventaService *services.VentaService) *VentaHandler {
	return &VentaHandler{ventaService: ventaService}
}

// POST /api/ventas
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req services.RegistrarVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Datos de entrada invalidos", err.Error())
		return
	}

	venta, err := h.ventaService.Registrar(&req)
	if err != nil {
		// Within sale registration every caller-correctable error,
		// missing products included, surfaces as a 400 with a
		// human-readable message.
		var validationErr *services.ValidationError
		var notFoundErr *services.NotFoundError
		var stockErr *services.InsufficientStockError
		if errors.As(err, &validationErr) || errors.As(err, &notFoundErr) || errors.As(err, &stockErr) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"venta": venta,
	})
}

// GET /api/ventas/cliente/:clienteId
func (h *VentaHandler) HistorialPorCliente(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de cliente invalido", nil)
		return
	}

	ventas, err := h.ventaService.HistorialPorCliente(clienteID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ventas": ventas,
	})
}
