// internal/models/producto.go
package models

import (
	"github.com/shopspring/decimal"
)

type Producto struct {
	BaseModel
	Nombre      string          `json:"nombre" gorm:"size:255;not null"`
	Descripcion string          `json:"descripcion" gorm:"type:text"`
	Precio      decimal.Decimal `json:"precio" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	ImagenURL   string          `json:"imagenUrl" gorm:"size:512"`
}
