// pkg/apiclient/client.go

// Package apiclient is a thin typed wrapper over the tienda HTTP API.
// It deserializes responses and carries no business logic.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tiendago/tienda-backend/internal/models"
	"github.com/tiendago/tienda-backend/internal/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Error is a failed API response, preserving the server's error code
// and message.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

func (c *Client) ObtenerProductos(ctx context.Context) ([]models.Producto, error) {
	var data struct {
		Productos []models.Producto `json:"productos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/productos", nil, &data); err != nil {
		return nil, err
	}
	return data.Productos, nil
}

func (c *Client) ObtenerProducto(ctx context.Context, id uuid.UUID) (*models.Producto, error) {
	var data struct {
		Producto *models.Producto `json:"producto"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/productos/"+id.String(), nil, &data); err != nil {
		return nil, err
	}
	return data.Producto, nil
}

func (c *Client) CrearProducto(ctx context.Context, req *services.CrearProductoRequest) (*models.Producto, error) {
	var data struct {
		Producto *models.Producto `json:"producto"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/productos", req, &data); err != nil {
		return nil, err
	}
	return data.Producto, nil
}

func (c *Client) RegistrarVenta(ctx context.Context, req *services.RegistrarVentaRequest) (*models.Venta, error) {
	var data struct {
		Venta *models.Venta `json:"venta"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/ventas", req, &data); err != nil {
		return nil, err
	}
	return data.Venta, nil
}

func (c *Client) ObtenerClientePorEmail(ctx context.Context, email string) (*models.Cliente, error) {
	var data struct {
		Cliente *models.Cliente `json:"cliente"`
	}
	path := "/api/clientes/email/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Cliente, nil
}

func (c *Client) HistorialPorCliente(ctx context.Context, clienteID uuid.UUID) ([]models.Venta, error) {
	var data struct {
		Ventas []models.Venta `json:"ventas"`
	}
	path := "/api/ventas/cliente/" + clienteID.String()
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Ventas, nil
}

// HistorialPorEmail resolves the customer id behind an email and then
// fetches that customer's sales. An unknown email yields an empty
// history, mirroring the browser client's lookup flow.
func (c *Client) HistorialPorEmail(ctx context.Context, email string) ([]models.Venta, error) {
	cliente, err := c.ObtenerClientePorEmail(ctx, email)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return []models.Venta{}, nil
		}
		return nil, err
	}

	return c.HistorialPorCliente(ctx, cliente.ID)
}
