// internal/services/cliente_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tiendago/tienda-backend/internal/models"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type ClienteService struct {
	db *gorm.DB
}

type CrearClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,notblank,max=100"`
	Apellido string `json:"apellido" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,notblank,max=255"`
}

type ActualizarClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,notblank,max=100"`
	Apellido string `json:"apellido" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,notblank,max=255"`
}

func NewClienteService(db *gorm.DB) *ClienteService {
	return &ClienteService{db: db}
}

func (s *ClienteService) Crear(req *CrearClienteRequest) (*models.Cliente, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	cliente := &models.Cliente{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
	}

	if err := s.db.Create(cliente).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return cliente, nil
}

func (s *ClienteService) Obtener(id uuid.UUID) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := s.db.First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Cliente", ID: id.String()}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &cliente, nil
}

// ObtenerPorEmail returns the first customer registered under the given
// email. Email is the natural key for history lookups but is not
// enforced unique.
func (s *ClienteService) ObtenerPorEmail(email string) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := s.db.Where("email = ?", email).Order("created_at").First(&cliente).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Cliente"}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &cliente, nil
}

func (s *ClienteService) Listar() ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := s.db.Order("created_at").Find(&clientes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return clientes, nil
}

func (s *ClienteService) Actualizar(id uuid.UUID, req *ActualizarClienteRequest) (*models.Cliente, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	var cliente models.Cliente
	if err := s.db.First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Cliente", ID: id.String()}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"nombre":   req.Nombre,
		"apellido": req.Apellido,
		"email":    req.Email,
	}

	if err := s.db.Model(&cliente).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &cliente, nil
}

func (s *ClienteService) Eliminar(id uuid.UUID) error {
	var cliente models.Cliente
	if err := s.db.First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Cliente", ID: id.String()}
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; past sales keep their snapshotted customer fields
	if err := s.db.Delete(&cliente).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
