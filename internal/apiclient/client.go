// Package apiclient is the only code that talks to the upstream business
// backend. Every call resolves to a Resultado envelope; callers branch on
// Success and never see a transport, HTTP or decode error as a Go error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tienda-movil/internal/models"
	"tienda-movil/internal/observability"
)

// Resultado is the uniform response envelope. Exactly one of Data and Error
// is meaningful: Error is empty iff Success is true, and Data is the zero
// value for void responses (204 / empty body / non-JSON body).
type Resultado[T any] struct {
	Success bool
	Data    T
	Error   string
}

// Void marks operations whose successful response carries no body.
type Void struct{}

type Client struct {
	baseURL string
	http    *http.Client
	headers map[string]string
	logger  *slog.Logger
}

// New builds a client for the backend at baseURL (including the /api base
// path). The default headers are merged into every request; a per-call
// header with the same name wins.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		headers: map[string]string{
			"Content-Type": "application/json",
		},
		logger: logger,
	}
}

func fetch[T any](ctx context.Context, c *Client, method, path string, body any, headers map[string]string) Resultado[T] {
	ctx, span := observability.StartSpan(ctx, fmt.Sprintf("backend %s %s", method, path))
	defer span.Finish()
	span.SetTag("http.method", method)
	span.SetTag("http.path", path)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			span.SetError(err)
			return fallo[T](err.Error())
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		span.SetError(err)
		return fallo[T](err.Error())
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.SetError(err)
		c.logger.Debug("backend request failed", "method", method, "path", path, "error", err)
		return fallo[T](err.Error())
	}
	defer resp.Body.Close()

	span.SetTag("http.status_code", strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorDeRespuesta(resp)
		span.SetError(fmt.Errorf("HTTP %d", resp.StatusCode))
		c.logger.Debug("backend returned error", "method", method, "path", path, "status", resp.StatusCode, "error", msg)
		return fallo[T](msg)
	}

	if resp.StatusCode == http.StatusNoContent || resp.Header.Get("Content-Length") == "0" {
		return Resultado[T]{Success: true}
	}

	if contentType := resp.Header.Get("Content-Type"); strings.Contains(contentType, "application/json") {
		var data T
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			span.SetError(err)
			return fallo[T](err.Error())
		}
		return Resultado[T]{Success: true, Data: data}
	}

	// Success status with a non-JSON body: treat as a void result.
	return Resultado[T]{Success: true}
}

// errorDeRespuesta extracts the backend's message field from an error body,
// falling back to a status-derived string when the body is not usable JSON.
func errorDeRespuesta(resp *http.Response) string {
	fallback := fmt.Sprintf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return fallback
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == "" {
		return fallback
	}
	return parsed.Message
}

func fallo[T any](msg string) Resultado[T] {
	return Resultado[T]{Success: false, Error: msg}
}

// ===== Usuarios =====

func (c *Client) Usuarios(ctx context.Context) Resultado[[]models.Usuario] {
	return fetch[[]models.Usuario](ctx, c, http.MethodGet, "/UsuariosApi", nil, nil)
}

func (c *Client) Usuario(ctx context.Context, id int) Resultado[models.Usuario] {
	return fetch[models.Usuario](ctx, c, http.MethodGet, fmt.Sprintf("/UsuariosApi/%d", id), nil, nil)
}

func (c *Client) CreateUsuario(ctx context.Context, dto models.CreateUsuarioDto) Resultado[models.Usuario] {
	return fetch[models.Usuario](ctx, c, http.MethodPost, "/UsuariosApi", dto, nil)
}

func (c *Client) UpdateUsuario(ctx context.Context, id int, dto models.UpdateUsuarioDto) Resultado[Void] {
	return fetch[Void](ctx, c, http.MethodPut, fmt.Sprintf("/UsuariosApi/%d", id), dto, nil)
}

func (c *Client) DeleteUsuario(ctx context.Context, id int) Resultado[Void] {
	return fetch[Void](ctx, c, http.MethodDelete, fmt.Sprintf("/UsuariosApi/%d", id), nil, nil)
}

// ===== Productos =====

func (c *Client) Productos(ctx context.Context) Resultado[[]models.Producto] {
	return fetch[[]models.Producto](ctx, c, http.MethodGet, "/ProductosApi", nil, nil)
}

func (c *Client) Producto(ctx context.Context, id int) Resultado[models.Producto] {
	return fetch[models.Producto](ctx, c, http.MethodGet, fmt.Sprintf("/ProductosApi/%d", id), nil, nil)
}

func (c *Client) ProductosDeUsuario(ctx context.Context, usuarioID int) Resultado[[]models.Producto] {
	return fetch[[]models.Producto](ctx, c, http.MethodGet, fmt.Sprintf("/ProductosApi/usuario/%d", usuarioID), nil, nil)
}

func (c *Client) CreateProducto(ctx context.Context, dto models.CreateProductoDto) Resultado[models.Producto] {
	return fetch[models.Producto](ctx, c, http.MethodPost, "/ProductosApi", dto, nil)
}

func (c *Client) UpdateProducto(ctx context.Context, id int, dto models.UpdateProductoDto) Resultado[Void] {
	return fetch[Void](ctx, c, http.MethodPut, fmt.Sprintf("/ProductosApi/%d", id), dto, nil)
}

func (c *Client) DeleteProducto(ctx context.Context, id int) Resultado[Void] {
	return fetch[Void](ctx, c, http.MethodDelete, fmt.Sprintf("/ProductosApi/%d", id), nil, nil)
}

// ===== Compras =====

func (c *Client) Compras(ctx context.Context) Resultado[[]models.Compra] {
	return fetch[[]models.Compra](ctx, c, http.MethodGet, "/ComprasApi", nil, nil)
}

func (c *Client) ComprasDeUsuario(ctx context.Context, usuarioID int) Resultado[[]models.Compra] {
	return fetch[[]models.Compra](ctx, c, http.MethodGet, fmt.Sprintf("/ComprasApi/usuario/%d", usuarioID), nil, nil)
}

func (c *Client) CreateCompra(ctx context.Context, dto models.CreateCompraDto) Resultado[models.Compra] {
	return fetch[models.Compra](ctx, c, http.MethodPost, "/ComprasApi", dto, nil)
}

// ===== Estadísticas =====

func (c *Client) Estadisticas(ctx context.Context) Resultado[models.EstadisticasCompras] {
	return fetch[models.EstadisticasCompras](ctx, c, http.MethodGet, "/ComprasApi/estadisticas", nil, nil)
}
