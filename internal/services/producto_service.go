// internal/services/producto_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tiendago/tienda-backend/internal/models"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type ProductoService struct {
	db *gorm.DB
}

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,notblank,max=255"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImagenURL   string          `json:"imagenUrl" validate:"max=512"`
}

// ActualizarProductoRequest replaces every mutable field, matching the
// PUT semantics of the endpoint.
type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,notblank,max=255"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImagenURL   string          `json:"imagenUrl" validate:"max=512"`
}

func NewProductoService(db *gorm.DB) *ProductoService {
	return &ProductoService{db: db}
}

func (s *ProductoService) Crear(req *CrearProductoRequest) (*models.Producto, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	if req.Precio.IsNegative() {
		return nil, &ValidationError{Message: "el precio no puede ser negativo"}
	}

	producto := &models.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
		ImagenURL:   req.ImagenURL,
	}

	if err := s.db.Create(producto).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return producto, nil
}

func (s *ProductoService) Obtener(id uuid.UUID) (*models.Producto, error) {
	var producto models.Producto
	if err := s.db.First(&producto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Producto", ID: id.String()}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &producto, nil
}

func (s *ProductoService) Listar() ([]models.Producto, error) {
	var productos []models.Producto
	if err := s.db.Order("created_at").Find(&productos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return productos, nil
}

func (s *ProductoService) Actualizar(id uuid.UUID, req *ActualizarProductoRequest) (*models.Producto, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	if req.Precio.IsNegative() {
		return nil, &ValidationError{Message: "el precio no puede ser negativo"}
	}

	var producto models.Producto
	if err := s.db.First(&producto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Producto", ID: id.String()}
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"nombre":      req.Nombre,
		"descripcion": req.Descripcion,
		"precio":      req.Precio,
		"stock":       req.Stock,
		"imagen_url":  req.ImagenURL,
	}

	if err := s.db.Model(&producto).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &producto, nil
}

func (s *ProductoService) Eliminar(id uuid.UUID) error {
	var producto models.Producto
	if err := s.db.First(&producto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Producto", ID: id.String()}
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete; historical sale lines keep their producto_id reference
	if err := s.db.Delete(&producto).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
