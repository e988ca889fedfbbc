// internal/handlers/cliente.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tiendago/tienda-backend/internal/services"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type ClienteHandler struct {
	clienteService *services.ClienteService
}

func NewClienteHandler(clienteService *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

// GET /api/clientes
func (h *ClienteHandler) Listar(c *gin.Context) {
	clientes, err := h.clienteService.Listar()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"clientes": clientes,
	})
}

// GET /api/clientes/:id
func (h *ClienteHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de cliente invalido", nil)
		return
	}

	cliente, err := h.clienteService.Obtener(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cliente": cliente,
	})
}

// GET /api/clientes/email/:email
func (h *ClienteHandler) ObtenerPorEmail(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		utils.BadRequestResponse(c, "Email invalido", nil)
		return
	}

	cliente, err := h.clienteService.ObtenerPorEmail(email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cliente": cliente,
	})
}

// POST /api/clientes
func (h *ClienteHandler) Crear(c *gin.Context) {
	var req services.CrearClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Datos de entrada invalidos", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cliente, err := h.clienteService.Crear(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"cliente": cliente,
	})
}

// PUT /api/clientes/:id
func (h *ClienteHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de cliente invalido", nil)
		return
	}

	var req services.ActualizarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Datos de entrada invalidos", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cliente, err := h.clienteService.Actualizar(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cliente": cliente,
	})
}

// DELETE /api/clientes/:id
func (h *ClienteHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID de cliente invalido", nil)
		return
	}

	if err := h.clienteService.Eliminar(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Cliente eliminado",
	})
}
