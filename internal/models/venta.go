// internal/models/venta.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is immutable once registered. Customer identity fields are
// snapshots taken at registration time, not references to the live
// Cliente record; history queries match on the email snapshot.
type Venta struct {
	BaseModel
	Fecha           time.Time       `json:"fecha" gorm:"not null;index"`
	NombreCliente   string          `json:"nombreCliente" gorm:"size:100;not null"`
	ApellidoCliente string          `json:"apellidoCliente" gorm:"size:100;not null"`
	EmailCliente    string          `json:"emailCliente" gorm:"size:255;not null;index"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`

	Detalles []DetalleVenta `json:"detalles" gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

// DetalleVenta belongs to exactly one Venta and has no identity of its
// own on the wire. PrecioUnitario is the product price at sale time, so
// later catalog price changes never rewrite history.
type DetalleVenta struct {
	ID             uuid.UUID       `json:"-" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `json:"-" gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `json:"productoId" gorm:"type:uuid;not null;index"`
	Cantidad       int             `json:"cantidad" gorm:"not null"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario" gorm:"type:decimal(10,2);not null"`

	Producto *Producto `json:"producto,omitempty" gorm:"foreignKey:ProductoID"`
}
