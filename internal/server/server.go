package server

import (
	"log/slog"
	"net/http"

	"tienda-movil/internal/handlers"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Shell http.HandlerFunc
}

func NewServer(apiHandlers *handlers.APIHandlers, sseHandlers *handlers.SSEHandlers, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: apiHandlers,
		sseHandlers: sseHandlers,
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Shell and health
	s.mux.HandleFunc("GET /{$}", templateHandlers.Shell)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)

	// JSON state endpoints
	s.mux.HandleFunc("GET /api/usuarios", s.apiHandlers.HandleUsuarios)
	s.mux.HandleFunc("GET /api/productos", s.apiHandlers.HandleProductos)
	s.mux.HandleFunc("GET /api/compras", s.apiHandlers.HandleCompras)
	s.mux.HandleFunc("GET /api/estadisticas", s.apiHandlers.HandleEstadisticas)

	// Usuarios screen
	s.mux.HandleFunc("GET /sse/usuarios", s.sseHandlers.HandleUsuarios)
	s.mux.HandleFunc("POST /sse/usuarios", s.sseHandlers.HandleUsuarioCrear)
	s.mux.HandleFunc("POST /sse/usuarios/nuevo", s.sseHandlers.HandleUsuarioNuevo)
	s.mux.HandleFunc("POST /sse/usuarios/cerrar", s.sseHandlers.HandleUsuariosCerrar)
	s.mux.HandleFunc("POST /sse/usuarios/{id}/editar", s.sseHandlers.HandleUsuarioEditar)
	s.mux.HandleFunc("PUT /sse/usuarios/{id}", s.sseHandlers.HandleUsuarioActualizar)
	s.mux.HandleFunc("DELETE /sse/usuarios/{id}", s.sseHandlers.HandleUsuarioEliminar)

	// Productos screen
	s.mux.HandleFunc("GET /sse/productos", s.sseHandlers.HandleProductos)
	s.mux.HandleFunc("POST /sse/productos", s.sseHandlers.HandleProductoCrear)
	s.mux.HandleFunc("POST /sse/productos/nuevo", s.sseHandlers.HandleProductoNuevo)
	s.mux.HandleFunc("POST /sse/productos/cerrar", s.sseHandlers.HandleProductosCerrar)
	s.mux.HandleFunc("POST /sse/productos/{id}/editar", s.sseHandlers.HandleProductoEditar)
	s.mux.HandleFunc("PUT /sse/productos/{id}", s.sseHandlers.HandleProductoActualizar)
	s.mux.HandleFunc("DELETE /sse/productos/{id}", s.sseHandlers.HandleProductoEliminar)

	// Compras screen and wizard
	s.mux.HandleFunc("GET /sse/compras", s.sseHandlers.HandleCompras)
	s.mux.HandleFunc("POST /sse/compras/nueva", s.sseHandlers.HandleCompraNueva)
	s.mux.HandleFunc("POST /sse/compras/cerrar", s.sseHandlers.HandleComprasCerrar)
	s.mux.HandleFunc("POST /sse/compras/categoria", s.sseHandlers.HandleCompraCategoria)
	s.mux.HandleFunc("POST /sse/compras/usuario", s.sseHandlers.HandleCompraUsuario)
	s.mux.HandleFunc("POST /sse/compras/producto", s.sseHandlers.HandleCompraProducto)
	s.mux.HandleFunc("POST /sse/compras/volver", s.sseHandlers.HandleCompraVolver)

	// Estadísticas screen
	s.mux.HandleFunc("GET /sse/estadisticas", s.sseHandlers.HandleEstadisticas)

	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
