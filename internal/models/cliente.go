// internal/models/cliente.go
package models

type Cliente struct {
	BaseModel
	Nombre   string `json:"nombre" gorm:"size:100;not null"`
	Apellido string `json:"apellido" gorm:"size:100;not null"`
	Email    string `json:"email" gorm:"size:255;not null;index"`
}
