package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"tienda-movil/internal/errors"
	"tienda-movil/internal/observability"
	"tienda-movil/internal/screens"
)

// APIHandlers exposes the screens' loaded state as JSON, wrapped in the
// uniform success/error envelope.
type APIHandlers struct {
	usuarios     *screens.UsuariosScreen
	productos    *screens.ProductosScreen
	compras      *screens.ComprasScreen
	estadisticas *screens.EstadisticasScreen
	logger       *slog.Logger
}

func NewAPIHandlers(usuarios *screens.UsuariosScreen, productos *screens.ProductosScreen, compras *screens.ComprasScreen, estadisticas *screens.EstadisticasScreen, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		usuarios:     usuarios,
		productos:    productos,
		compras:      compras,
		estadisticas: estadisticas,
		logger:       logger,
	}
}

func (h *APIHandlers) HandleUsuarios(w http.ResponseWriter, r *http.Request) {
	h.usuarios.Cargar(r.Context())

	vista := h.usuarios.Vista()
	if vista.Error != "" {
		errors.WriteError(w, h.logger, errors.Upstream(vista.Error), observability.GetRequestID(r.Context()))
		return
	}
	errors.WriteSuccess(w, vista.Usuarios)
}

func (h *APIHandlers) HandleProductos(w http.ResponseWriter, r *http.Request) {
	h.productos.Cargar(r.Context())

	vista := h.productos.Vista()
	if vista.Error != "" {
		errors.WriteError(w, h.logger, errors.Upstream(vista.Error), observability.GetRequestID(r.Context()))
		return
	}
	errors.WriteSuccess(w, vista.Productos)
}

func (h *APIHandlers) HandleCompras(w http.ResponseWriter, r *http.Request) {
	h.compras.Cargar(r.Context())

	vista := h.compras.Vista()
	if vista.Error != "" {
		errors.WriteError(w, h.logger, errors.Upstream(vista.Error), observability.GetRequestID(r.Context()))
		return
	}
	errors.WriteSuccess(w, vista.Compras)
}

func (h *APIHandlers) HandleEstadisticas(w http.ResponseWriter, r *http.Request) {
	h.estadisticas.Cargar(r.Context())

	vista := h.estadisticas.Vista()
	if vista.Error != "" {
		errors.WriteError(w, h.logger, errors.Upstream(vista.Error), observability.GetRequestID(r.Context()))
		return
	}
	errors.WriteSuccess(w, vista.Datos)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}
