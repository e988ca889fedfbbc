// internal/services/catalogo_integration_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CatalogoSuite struct {
	suite.Suite
	db        *gorm.DB
	productos *ProductoService
	clientes  *ClienteService
}

func (s *CatalogoSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.productos = NewProductoService(s.db)
	s.clientes = NewClienteService(s.db)
}

func (s *CatalogoSuite) TestProductoCRUD() {
	creado, err := s.productos.Crear(&CrearProductoRequest{
		Nombre:      "Mate Imperial",
		Descripcion: "Mate de calabaza",
		Precio:      decimal.RequireFromString("25.50"),
		Stock:       30,
		ImagenURL:   "https://example.com/mate.jpg",
	})
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, creado.ID)

	obtenido, err := s.productos.Obtener(creado.ID)
	s.Require().NoError(err)
	s.Equal("Mate Imperial", obtenido.Nombre)
	s.True(obtenido.Precio.Equal(decimal.RequireFromString("25.50")))

	lista, err := s.productos.Listar()
	s.Require().NoError(err)
	s.Len(lista, 1)

	actualizado, err := s.productos.Actualizar(creado.ID, &ActualizarProductoRequest{
		Nombre:      "Mate Imperial Premium",
		Descripcion: "Mate de calabaza forrado en cuero",
		Precio:      decimal.RequireFromString("29.90"),
		Stock:       25,
		ImagenURL:   "https://example.com/mate2.jpg",
	})
	s.Require().NoError(err)
	s.Equal("Mate Imperial Premium", actualizado.Nombre)
	s.Equal(25, actualizado.Stock)

	s.Require().NoError(s.productos.Eliminar(creado.ID))

	_, err = s.productos.Obtener(creado.ID)
	var notFoundErr *NotFoundError
	s.ErrorAs(err, &notFoundErr)
}

func (s *CatalogoSuite) TestProductoNoEncontrado() {
	_, err := s.productos.Obtener(uuid.New())

	var notFoundErr *NotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("Producto", notFoundErr.Resource)

	err = s.productos.Eliminar(uuid.New())
	s.ErrorAs(err, &notFoundErr)
}

func (s *CatalogoSuite) TestProductoPrecioNegativoRechazado() {
	_, err := s.productos.Crear(&CrearProductoRequest{
		Nombre: "Mate Imperial",
		Precio: decimal.RequireFromString("-1.00"),
		Stock:  10,
	})

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *CatalogoSuite) TestClienteCRUD() {
	creado, err := s.clientes.Crear(&CrearClienteRequest{
		Nombre:   "Ana",
		Apellido: "Gomez",
		Email:    "ana@x.com",
	})
	s.Require().NoError(err)

	obtenido, err := s.clientes.Obtener(creado.ID)
	s.Require().NoError(err)
	s.Equal("Ana", obtenido.Nombre)

	porEmail, err := s.clientes.ObtenerPorEmail("ana@x.com")
	s.Require().NoError(err)
	s.Equal(creado.ID, porEmail.ID)

	actualizado, err := s.clientes.Actualizar(creado.ID, &ActualizarClienteRequest{
		Nombre:   "Ana Maria",
		Apellido: "Gomez",
		Email:    "ana@x.com",
	})
	s.Require().NoError(err)
	s.Equal("Ana Maria", actualizado.Nombre)

	s.Require().NoError(s.clientes.Eliminar(creado.ID))

	_, err = s.clientes.ObtenerPorEmail("ana@x.com")
	var notFoundErr *NotFoundError
	s.ErrorAs(err, &notFoundErr)
}

func (s *CatalogoSuite) TestClienteEmailRepetidoDevuelveElPrimero() {
	primero, err := s.clientes.Crear(&CrearClienteRequest{
		Nombre: "Ana", Apellido: "Gomez", Email: "ana@x.com",
	})
	s.Require().NoError(err)

	_, err = s.clientes.Crear(&CrearClienteRequest{
		Nombre: "Ana B", Apellido: "Gomez", Email: "ana@x.com",
	})
	s.Require().NoError(err)

	porEmail, err := s.clientes.ObtenerPorEmail("ana@x.com")
	s.Require().NoError(err)
	s.Equal(primero.ID, porEmail.ID)
}

func TestCatalogoSuite(t *testing.T) {
	suite.Run(t, new(CatalogoSuite))
}
