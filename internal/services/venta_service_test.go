// internal/services/venta_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Input validation rejects the request before any storage access, so
// these run against a service with no database behind it.

func validRegistrarRequest() *RegistrarVentaRequest {
	return &RegistrarVentaRequest{
		NombreCliente:   "Ana",
		ApellidoCliente: "Gomez",
		EmailCliente:    "ana@x.com",
		Detalles: []DetalleVentaRequest{
			{ProductoID: uuid.New(), Cantidad: 1},
		},
	}
}

func TestRegistrarRechazaNombreVacio(t *testing.T) {
	svc := NewVentaService(nil)

	req := validRegistrarRequest()
	req.NombreCliente = ""

	_, err := svc.Registrar(req)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegistrarRechazaCamposEnBlanco(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegistrarVentaRequest)
	}{
		{"nombre con espacios", func(r *RegistrarVentaRequest) { r.NombreCliente = "   " }},
		{"apellido con espacios", func(r *RegistrarVentaRequest) { r.ApellidoCliente = "\t " }},
		{"email vacio", func(r *RegistrarVentaRequest) { r.EmailCliente = "" }},
		{"email con espacios", func(r *RegistrarVentaRequest) { r.EmailCliente = "  " }},
	}

	svc := NewVentaService(nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistrarRequest()
			tc.mutate(req)

			_, err := svc.Registrar(req)
			require.Error(t, err)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestRegistrarRechazaDetallesVacios(t *testing.T) {
	svc := NewVentaService(nil)

	req := validRegistrarRequest()
	req.Detalles = nil

	_, err := svc.Registrar(req)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	req = validRegistrarRequest()
	req.Detalles = []DetalleVentaRequest{}

	_, err = svc.Registrar(req)
	require.Error(t, err)
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegistrarRechazaCantidadNoPositiva(t *testing.T) {
	svc := NewVentaService(nil)

	for _, cantidad := range []int{0, -1, -100} {
		req := validRegistrarRequest()
		req.Detalles = []DetalleVentaRequest{
			{ProductoID: uuid.New(), Cantidad: 5},
			{ProductoID: uuid.New(), Cantidad: cantidad},
		}

		_, err := svc.Registrar(req)
		require.Error(t, err, "cantidad %d should be rejected", cantidad)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestRegistrarRechazaProductoIDVacio(t *testing.T) {
	svc := NewVentaService(nil)

	req := validRegistrarRequest()
	req.Detalles = []DetalleVentaRequest{{Cantidad: 1}}

	_, err := svc.Registrar(req)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
