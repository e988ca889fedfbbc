// internal/services/venta_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendago/tienda-backend/internal/database"
	"github.com/tiendago/tienda-backend/internal/models"
	"github.com/tiendago/tienda-backend/internal/utils"
)

type VentaService struct {
	db *gorm.DB
}

type RegistrarVentaRequest struct {
	NombreCliente   string                `json:"nombreCliente" validate:"required,notblank,max=100"`
	ApellidoCliente string                `json:"apellidoCliente" validate:"required,notblank,max=100"`
	EmailCliente    string                `json:"emailCliente" validate:"required,notblank,max=255"`
	Detalles        []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
}

type DetalleVentaRequest struct {
	ProductoID uuid.UUID `json:"productoId" validate:"required"`
	Cantidad   int       `json:"cantidad" validate:"required,gt=0"`
}

func NewVentaService(db *gorm.DB) *VentaService {
	return &VentaService{db: db}
}

// Registrar validates the request, verifies stock for every line item
// and then decrements stock and persists the sale. Verification and
// commit run inside one transaction with the touched product rows
// locked FOR UPDATE, so two concurrent sales cannot both pass
// verification against stock that only one of them can satisfy.
// Nothing is persisted unless every line item passes.
func (s *VentaService) Registrar(req *RegistrarVentaRequest) (*models.Venta, error) {
	if err := utils.ValidateStruct(req); err != nil {
		if ve := utils.GetValidationErrors(err); len(ve) > 0 {
			return nil, &ValidationError{Message: ve[0].Message}
		}
		return nil, &ValidationError{Message: fmt.Sprintf("validation failed: %v", err)}
	}

	var venta *models.Venta
	productos := make(map[uuid.UUID]*models.Producto, len(req.Detalles))

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		// Verification pass: lock and load every referenced product
		// before touching anything.
		for _, item := range req.Detalles {
			if _, ok := productos[item.ProductoID]; ok {
				continue
			}

			var producto models.Producto
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&producto, "id = ?", item.ProductoID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &NotFoundError{Resource: "Producto", ID: item.ProductoID.String()}
				}
				return fmt.Errorf("database error: %w", err)
			}
			productos[item.ProductoID] = &producto
		}

		// Duplicate product ids within one request are checked against
		// their summed demand, so the check matches what the commit
		// pass will decrement in total.
		demanda := make(map[uuid.UUID]int, len(productos))
		for _, item := range req.Detalles {
			producto := productos[item.ProductoID]
			demanda[item.ProductoID] += item.Cantidad
			if producto.Stock < demanda[item.ProductoID] {
				return &InsufficientStockError{Producto: producto.Nombre}
			}
		}

		// Commit pass: snapshot prices, accumulate the total with exact
		// decimal arithmetic and build the line items.
		total := decimal.Zero
		detalles := make([]models.DetalleVenta, 0, len(req.Detalles))
		for _, item := range req.Detalles {
			producto := productos[item.ProductoID]
			total = total.Add(producto.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
			detalles = append(detalles, models.DetalleVenta{
				ProductoID:     producto.ID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: producto.Precio,
			})
		}

		for id, cantidad := range demanda {
			if err := tx.Model(&models.Producto{}).Where("id = ?", id).
				UpdateColumn("stock", gorm.Expr("stock - ?", cantidad)).Error; err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}
			productos[id].Stock -= cantidad
		}

		venta = &models.Venta{
			Fecha:           time.Now(),
			NombreCliente:   req.NombreCliente,
			ApellidoCliente: req.ApellidoCliente,
			EmailCliente:    req.EmailCliente,
			Total:           total,
			Detalles:        detalles,
		}

		if err := tx.Create(venta).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"venta_id": venta.ID,
		"email":    venta.EmailCliente,
		"total":    venta.Total,
		"items":    len(venta.Detalles),
	}).Info("Sale registered")

	// Attach the referenced products for the response, keeping the
	// request's line item order.
	for i := range venta.Detalles {
		venta.Detalles[i].Producto = productos[venta.Detalles[i].ProductoID]
	}

	return venta, nil
}

// HistorialPorCliente returns every sale whose snapshotted email
// matches the given customer's email, newest first, with line items
// and the current catalog record of each referenced product. An
// unresolvable customer id yields an empty list, not an error.
func (s *VentaService) HistorialPorCliente(clienteID uuid.UUID) ([]models.Venta, error) {
	var cliente models.Cliente
	if err := s.db.First(&cliente, "id = ?", clienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Venta{}, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	ventas := []models.Venta{}
	if err := s.db.Where("email_cliente = ?", cliente.Email).
		Order("fecha DESC").
		Preload("Detalles").
		Preload("Detalles.Producto").
		Find(&ventas).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	return ventas, nil
}
