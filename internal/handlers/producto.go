// internal/handlers/producto.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tiendago/tienda-backend/internal/services"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type ProductoHandler struct {
	productoService *services.ProductoService
}

func NewProductoHandler(productoService *services.ProductoService) *ProductoHandler {
	return &ProductoHandler{productoService: productoService}
}

// GET /api/productos
func (h *ProductoHandler) Listar(c *gin.Context) {
	productos, err := h.productoService.Listar()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"productos": productos,
	})
}

// GET /api/productos/:id
func (h *ProductoHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de producto invalido", nil)
		return
	}

	producto, err := h.productoService.Obtener(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"producto": producto,
	})
}

// POST /api/productos
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req services.CrearProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Datos de entrada invalidos", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	producto, err := h.productoService.Crear(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"producto": producto,
	})
}

// PUT /api/productos/:id
func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de producto invalido", nil)
		return
	}

	var req services.ActualizarProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Datos de entrada invalidos", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	producto, err := h.productoService.Actualizar(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"producto": producto,
	})
}

// DELETE /api/productos/:id
func (h *ProductoHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de producto invalido", nil)
		return
	}

	if err := h.productoService.Eliminar(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Producto eliminado",
	})
}
